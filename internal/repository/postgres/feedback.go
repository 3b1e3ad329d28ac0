package postgres

import (
	"context"
	"database/sql"
	"time"

	"bookshelf-backend/internal/domain"
	"bookshelf-backend/internal/repository"
)

type feedbackRepository struct {
	db *sql.DB
}

func NewFeedbackRepository(db *sql.DB) repository.FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, fb *domain.Feedback) error {
	query := `INSERT INTO feedbacks (book_id, author_id, note, comment, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	fb.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx, query, fb.BookID, fb.AuthorID, fb.Note, fb.Comment, fb.CreatedOn).Scan(&fb.ID)
}

func (r *feedbackRepository) PageByBook(ctx context.Context, bookID int32, page, size int32) ([]domain.Feedback, int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM feedbacks WHERE book_id = $1`, bookID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, book_id, author_id, note, comment, created_on FROM feedbacks
	          WHERE book_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, bookID, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var feedbacks []domain.Feedback
	for rows.Next() {
		var fb domain.Feedback
		if err := rows.Scan(&fb.ID, &fb.BookID, &fb.AuthorID, &fb.Note, &fb.Comment, &fb.CreatedOn); err != nil {
			return nil, 0, err
		}
		feedbacks = append(feedbacks, fb)
	}
	return feedbacks, count, rows.Err()
}
