package repository

import (
	"context"
	"time"

	"bookshelf-backend/internal/domain"
)

type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id int32) (*domain.Book, error)
	Update(ctx context.Context, book *domain.Book) error
	// ToggleShareable and ToggleArchived flip the flag in a single
	// statement, so concurrent toggles never lose an update.
	ToggleShareable(ctx context.Context, id int32) error
	ToggleArchived(ctx context.Context, id int32) error
	// PageDisplayable returns books visible to the viewer: every shareable
	// non-archived book plus the viewer's own non-archived books.
	PageDisplayable(ctx context.Context, viewerID int32, page, size int32) ([]domain.Book, int64, error)
	PageByOwner(ctx context.Context, ownerID int32, page, size int32) ([]domain.Book, int64, error)
}

type TransactionRepository interface {
	// Borrow runs the duplicate-loan checks and the insert as one atomic
	// unit against the store. It returns the new transaction id, or an
	// OperationNotPermittedError when the book already has an open loan.
	Borrow(ctx context.Context, bookID, borrowerID int32) (int32, error)
	// MarkReturned and MarkReturnApproved are guarded single-statement
	// updates: the state check is part of the UPDATE's predicate, so of
	// two concurrent calls exactly one succeeds and the other gets an
	// OperationNotPermittedError.
	MarkReturned(ctx context.Context, bookID, borrowerID int32) (int32, error)
	MarkReturnApproved(ctx context.Context, bookID, ownerID int32) (int32, error)
	PageBorrowed(ctx context.Context, userID int32, returned bool, page, size int32) ([]domain.BorrowedBook, int64, error)
	ListOverdueLoans(ctx context.Context, olderThan time.Time) ([]domain.OverdueLoan, error)
}

type FeedbackRepository interface {
	Create(ctx context.Context, fb *domain.Feedback) error
	PageByBook(ctx context.Context, bookID int32, page, size int32) ([]domain.Feedback, int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Enable(ctx context.Context, id int32) error
}

type TokenRepository interface {
	Create(ctx context.Context, token *domain.Token) error
	GetByToken(ctx context.Context, token string) (*domain.Token, error)
	MarkValidated(ctx context.Context, id int32) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
