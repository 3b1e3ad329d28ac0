package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bookshelf-backend/internal/domain"
	"bookshelf-backend/internal/repository"
)

type tokenRepository struct {
	db *sql.DB
}

func NewTokenRepository(db *sql.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, t *domain.Token) error {
	query := `INSERT INTO tokens (user_id, token, created_on, expires_on)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	t.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx, query, t.UserID, t.Token, t.CreatedOn, t.ExpiresOn).Scan(&t.ID)
}

func (r *tokenRepository) GetByToken(ctx context.Context, token string) (*domain.Token, error) {
	t := &domain.Token{}
	query := `SELECT id, user_id, token, created_on, expires_on, validated_on FROM tokens WHERE token = $1`
	err := r.db.QueryRowContext(ctx, query, token).Scan(&t.ID, &t.UserID, &t.Token, &t.CreatedOn, &t.ExpiresOn, &t.ValidatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *tokenRepository) MarkValidated(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tokens SET validated_on = $1 WHERE id = $2`, time.Now(), id)
	return err
}

func (r *tokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tokens WHERE validated_on IS NULL AND expires_on < $1`, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
