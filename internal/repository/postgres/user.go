package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bookshelf-backend/internal/domain"
	"bookshelf-backend/internal/repository"

	"github.com/lib/pq"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, password_hash, first_name, last_name, roles, enabled, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	u.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx, query, u.Email, u.PasswordHash, u.FirstName, u.LastName, pq.Array(u.Roles), u.Enabled, u.CreatedOn).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, email, password_hash, first_name, last_name, roles, enabled, created_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, pq.Array(&u.Roles), &u.Enabled, &u.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("user", id)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, email, password_hash, first_name, last_name, roles, enabled, created_on FROM users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, pq.Array(&u.Roles), &u.Enabled, &u.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Enable(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET enabled = true WHERE id = $1`, id)
	return err
}
