package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bookshelf-backend/internal/domain"
	"bookshelf-backend/internal/repository"
)

const bookColumns = `id, owner_id, title, author_name, isbn, synopsis, book_cover, shareable, archived, created_on, updated_on`

type bookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, b *domain.Book) error {
	query := `INSERT INTO books (owner_id, title, author_name, isbn, synopsis, book_cover, shareable, archived, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now()
	b.CreatedOn = now
	b.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query, b.OwnerID, b.Title, b.AuthorName, b.ISBN, b.Synopsis, b.BookCover, b.Shareable, b.Archived, b.CreatedOn, b.UpdatedOn).Scan(&b.ID)
}

func (r *bookRepository) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	b := &domain.Book{}
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.OwnerID, &b.Title, &b.AuthorName, &b.ISBN, &b.Synopsis, &b.BookCover, &b.Shareable, &b.Archived, &b.CreatedOn, &b.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("book", id)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookRepository) Update(ctx context.Context, b *domain.Book) error {
	query := `UPDATE books SET title=$1, author_name=$2, isbn=$3, synopsis=$4, book_cover=$5, shareable=$6, archived=$7, updated_on=$8 WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query, b.Title, b.AuthorName, b.ISBN, b.Synopsis, b.BookCover, b.Shareable, b.Archived, time.Now(), b.ID)
	return err
}

// The toggles flip the flag inside the UPDATE itself; a read-then-write
// would let two concurrent toggles cancel each other out.
func (r *bookRepository) ToggleShareable(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `UPDATE books SET shareable = NOT shareable, updated_on = $2 WHERE id = $1`, id, time.Now())
	return err
}

func (r *bookRepository) ToggleArchived(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `UPDATE books SET archived = NOT archived, updated_on = $2 WHERE id = $1`, id, time.Now())
	return err
}

func (r *bookRepository) PageDisplayable(ctx context.Context, viewerID int32, page, size int32) ([]domain.Book, int64, error) {
	where := `FROM books WHERE NOT archived AND (shareable OR owner_id = $1)`
	return r.pageBooks(ctx, where, viewerID, page, size)
}

func (r *bookRepository) PageByOwner(ctx context.Context, ownerID int32, page, size int32) ([]domain.Book, int64, error) {
	where := `FROM books WHERE owner_id = $1`
	return r.pageBooks(ctx, where, ownerID, page, size)
}

func (r *bookRepository) pageBooks(ctx context.Context, where string, userID int32, page, size int32) ([]domain.Book, int64, error) {
	var count int64
	countSql := `SELECT count(*) ` + where
	if err := r.db.QueryRowContext(ctx, countSql, userID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s %s ORDER BY created_on DESC LIMIT $2 OFFSET $3`, bookColumns, where)
	rows, err := r.db.QueryContext(ctx, query, userID, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(&b.ID, &b.OwnerID, &b.Title, &b.AuthorName, &b.ISBN, &b.Synopsis, &b.BookCover, &b.Shareable, &b.Archived, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, 0, err
		}
		books = append(books, b)
	}
	return books, count, rows.Err()
}
