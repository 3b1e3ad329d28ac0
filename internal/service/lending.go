package service

import (
	"context"

	"bookshelf-backend/internal/domain"
	"bookshelf-backend/internal/logger"
	"bookshelf-backend/internal/repository"
)

type lendingService struct {
	bookRepo repository.BookRepository
	txRepo   repository.TransactionRepository
}

func NewLendingService(bookRepo repository.BookRepository, txRepo repository.TransactionRepository) LendingService {
	return &lendingService{
		bookRepo: bookRepo,
		txRepo:   txRepo,
	}
}

// Borrow starts a loan. The authorization checks run here; the duplicate
// loan checks and the insert run inside the repository's atomic borrow
// unit so concurrent borrows of the same book cannot both succeed.
func (s *lendingService) Borrow(ctx context.Context, bookID int32, principal domain.Principal) (int32, error) {
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return 0, err
	}
	if err := canBorrow(principal, book); err != nil {
		return 0, err
	}
	id, err := s.txRepo.Borrow(ctx, bookID, principal.ID)
	if err != nil {
		return 0, err
	}
	logger.Info("book borrowed", "book_id", bookID, "borrower_id", principal.ID, "transaction_id", id)
	return id, nil
}

// ReturnBook flips the caller's open loan to returned. The loan lookup is
// part of the repository's guarded update, so a concurrent double return
// cannot slip past the denial.
func (s *lendingService) ReturnBook(ctx context.Context, bookID int32, principal domain.Principal) (int32, error) {
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return 0, err
	}
	if err := canReturn(principal, book); err != nil {
		return 0, err
	}
	id, err := s.txRepo.MarkReturned(ctx, bookID, principal.ID)
	if err != nil {
		return 0, err
	}
	logger.Info("book returned", "book_id", bookID, "transaction_id", id)
	return id, nil
}

func (s *lendingService) ApproveReturn(ctx context.Context, bookID int32, principal domain.Principal) (int32, error) {
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return 0, err
	}
	if err := canApprove(principal, book); err != nil {
		return 0, err
	}
	id, err := s.txRepo.MarkReturnApproved(ctx, bookID, principal.ID)
	if err != nil {
		return 0, err
	}
	logger.Info("return approved", "book_id", bookID, "transaction_id", id)
	return id, nil
}

func (s *lendingService) ListBorrowed(ctx context.Context, principal domain.Principal, page, size int32) (domain.PageResponse[domain.BorrowedBook], error) {
	loans, total, err := s.txRepo.PageBorrowed(ctx, principal.ID, false, page, size)
	if err != nil {
		return domain.PageResponse[domain.BorrowedBook]{}, err
	}
	return domain.NewPageResponse(loans, page, size, total), nil
}

func (s *lendingService) ListReturned(ctx context.Context, principal domain.Principal, page, size int32) (domain.PageResponse[domain.BorrowedBook], error) {
	loans, total, err := s.txRepo.PageBorrowed(ctx, principal.ID, true, page, size)
	if err != nil {
		return domain.PageResponse[domain.BorrowedBook]{}, err
	}
	return domain.NewPageResponse(loans, page, size, total), nil
}
