package service

import (
	"context"

	"bookshelf-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password, firstName, lastName string) error
	ActivateAccount(ctx context.Context, token string) error
	Authenticate(ctx context.Context, email, password string) (string, error)
}

type BookService interface {
	Create(ctx context.Context, req domain.BookRequest, principal domain.Principal) (int32, error)
	GetByID(ctx context.Context, bookID int32) (*domain.Book, error)
	ListDisplayable(ctx context.Context, principal domain.Principal, page, size int32) (domain.PageResponse[domain.Book], error)
	ListByOwner(ctx context.Context, principal domain.Principal, page, size int32) (domain.PageResponse[domain.Book], error)
	ToggleShareable(ctx context.Context, bookID int32, principal domain.Principal) (int32, error)
	ToggleArchived(ctx context.Context, bookID int32, principal domain.Principal) (int32, error)
	UploadCover(ctx context.Context, bookID int32, principal domain.Principal, content []byte, filename string) error
}

type LendingService interface {
	Borrow(ctx context.Context, bookID int32, principal domain.Principal) (int32, error)
	ReturnBook(ctx context.Context, bookID int32, principal domain.Principal) (int32, error)
	ApproveReturn(ctx context.Context, bookID int32, principal domain.Principal) (int32, error)
	ListBorrowed(ctx context.Context, principal domain.Principal, page, size int32) (domain.PageResponse[domain.BorrowedBook], error)
	ListReturned(ctx context.Context, principal domain.Principal, page, size int32) (domain.PageResponse[domain.BorrowedBook], error)
}

type FeedbackService interface {
	Submit(ctx context.Context, req domain.FeedbackRequest, principal domain.Principal) (int32, error)
	ListByBook(ctx context.Context, bookID int32, principal domain.Principal, page, size int32) (domain.PageResponse[domain.FeedbackEntry], error)
}

type EmailService interface {
	SendActivationEmail(ctx context.Context, email, name, activationURL, token string) error
	SendOverdueLoanReminder(ctx context.Context, email, name, bookTitle string, daysHeld int) error
}
