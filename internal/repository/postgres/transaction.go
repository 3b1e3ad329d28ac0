package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bookshelf-backend/internal/domain"
	"bookshelf-backend/internal/repository"

	"github.com/lib/pq"
)

type transactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

// Borrow creates a loan for (bookID, borrowerID). The duplicate checks and
// the insert run in one transaction holding a row lock on the book, so two
// concurrent borrows of the same book serialize and exactly one succeeds.
// The partial unique index on (book_id) WHERE NOT returned backstops the
// same invariant; a unique violation surfaces as the same denial.
func (r *transactionRepository) Borrow(ctx context.Context, bookID, borrowerID int32) (int32, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin borrow transaction: %w", err)
	}
	defer tx.Rollback()

	var lockedID int32
	err = tx.QueryRowContext(ctx, `SELECT id FROM books WHERE id = $1 FOR UPDATE`, bookID).Scan(&lockedID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.NewNotFound("book", bookID)
	}
	if err != nil {
		return 0, err
	}

	// The caller's own open loan is checked first so the more specific
	// denial wins over the generic "already borrowed" one.
	var openByUser bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM book_transactions WHERE book_id = $1 AND borrower_id = $2 AND NOT return_approved)`,
		bookID, borrowerID).Scan(&openByUser)
	if err != nil {
		return 0, err
	}
	if openByUser {
		return 0, domain.NotPermitted(domain.ReasonAlreadyBorrowedByUser)
	}

	var active bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM book_transactions WHERE book_id = $1 AND NOT returned)`,
		bookID).Scan(&active)
	if err != nil {
		return 0, err
	}
	if active {
		return 0, domain.NotPermitted(domain.ReasonAlreadyBorrowed)
	}

	var id int32
	now := time.Now()
	err = tx.QueryRowContext(ctx,
		`INSERT INTO book_transactions (book_id, borrower_id, returned, return_approved, created_on, updated_on)
		 VALUES ($1, $2, false, false, $3, $4) RETURNING id`,
		bookID, borrowerID, now, now).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.NotPermitted(domain.ReasonAlreadyBorrowed)
		}
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return 0, domain.NotPermitted(domain.ReasonAlreadyBorrowed)
		}
		return 0, fmt.Errorf("commit borrow transaction: %w", err)
	}
	return id, nil
}

// MarkReturned flips returned on the caller's open loan. The state check
// is part of the UPDATE's predicate, so two concurrent returns of the same
// loan cannot both succeed: the loser matches zero rows and is denied.
func (r *transactionRepository) MarkReturned(ctx context.Context, bookID, borrowerID int32) (int32, error) {
	var id int32
	err := r.db.QueryRowContext(ctx,
		`UPDATE book_transactions SET returned = true, updated_on = $3
		 WHERE book_id = $1 AND borrower_id = $2 AND NOT returned
		 RETURNING id`,
		bookID, borrowerID, time.Now()).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.NotPermitted(domain.ReasonDidNotBorrow)
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// MarkReturnApproved flips return_approved on the returned loan of a book
// the caller owns, with the same guarded-update shape as MarkReturned.
func (r *transactionRepository) MarkReturnApproved(ctx context.Context, bookID, ownerID int32) (int32, error) {
	var id int32
	err := r.db.QueryRowContext(ctx,
		`UPDATE book_transactions t SET return_approved = true, updated_on = $3
		 FROM books b
		 WHERE b.id = t.book_id AND t.book_id = $1 AND b.owner_id = $2
		   AND t.returned AND NOT t.return_approved
		 RETURNING t.id`,
		bookID, ownerID, time.Now()).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.NotPermitted(domain.ReasonNotReturnedYet)
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *transactionRepository) PageBorrowed(ctx context.Context, userID int32, returned bool, page, size int32) ([]domain.BorrowedBook, int64, error) {
	where := `FROM book_transactions t JOIN books b ON b.id = t.book_id WHERE t.borrower_id = $1 AND t.returned = $2`

	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) `+where, userID, returned).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT t.id, t.book_id, b.title, b.author_name, b.isbn, t.returned, t.return_approved, t.created_on ` +
		where + ` ORDER BY t.created_on DESC LIMIT $3 OFFSET $4`
	rows, err := r.db.QueryContext(ctx, query, userID, returned, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var loans []domain.BorrowedBook
	for rows.Next() {
		var l domain.BorrowedBook
		if err := rows.Scan(&l.TransactionID, &l.BookID, &l.Title, &l.AuthorName, &l.ISBN, &l.Returned, &l.ReturnApproved, &l.BorrowedOn); err != nil {
			return nil, 0, err
		}
		loans = append(loans, l)
	}
	return loans, count, rows.Err()
}

func (r *transactionRepository) ListOverdueLoans(ctx context.Context, olderThan time.Time) ([]domain.OverdueLoan, error) {
	query := `SELECT t.id, b.title, u.email, u.first_name || ' ' || u.last_name, t.created_on
	          FROM book_transactions t
	          JOIN books b ON b.id = t.book_id
	          JOIN users u ON u.id = t.borrower_id
	          WHERE NOT t.returned AND t.created_on < $1
	          ORDER BY t.created_on`
	rows, err := r.db.QueryContext(ctx, query, olderThan)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []domain.OverdueLoan
	for rows.Next() {
		var l domain.OverdueLoan
		if err := rows.Scan(&l.TransactionID, &l.BookTitle, &l.BorrowerEmail, &l.BorrowerName, &l.BorrowedOn); err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
