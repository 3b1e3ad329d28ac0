package service

import (
	"context"

	"bookshelf-backend/internal/domain"
	"bookshelf-backend/internal/logger"
	"bookshelf-backend/internal/repository"
	"bookshelf-backend/internal/storage"
)

type bookService struct {
	bookRepo repository.BookRepository
	files    storage.FileStorage
}

func NewBookService(bookRepo repository.BookRepository, files storage.FileStorage) BookService {
	return &bookService{
		bookRepo: bookRepo,
		files:    files,
	}
}

func (s *bookService) Create(ctx context.Context, req domain.BookRequest, principal domain.Principal) (int32, error) {
	book := &domain.Book{
		OwnerID:    principal.ID,
		Title:      req.Title,
		AuthorName: req.AuthorName,
		ISBN:       req.ISBN,
		Synopsis:   req.Synopsis,
		Shareable:  req.Shareable,
	}
	if err := s.bookRepo.Create(ctx, book); err != nil {
		return 0, err
	}
	return book.ID, nil
}

func (s *bookService) GetByID(ctx context.Context, bookID int32) (*domain.Book, error) {
	return s.bookRepo.GetByID(ctx, bookID)
}

func (s *bookService) ListDisplayable(ctx context.Context, principal domain.Principal, page, size int32) (domain.PageResponse[domain.Book], error) {
	books, total, err := s.bookRepo.PageDisplayable(ctx, principal.ID, page, size)
	if err != nil {
		return domain.PageResponse[domain.Book]{}, err
	}
	return domain.NewPageResponse(books, page, size, total), nil
}

func (s *bookService) ListByOwner(ctx context.Context, principal domain.Principal, page, size int32) (domain.PageResponse[domain.Book], error) {
	books, total, err := s.bookRepo.PageByOwner(ctx, principal.ID, page, size)
	if err != nil {
		return domain.PageResponse[domain.Book]{}, err
	}
	return domain.NewPageResponse(books, page, size, total), nil
}

func (s *bookService) ToggleShareable(ctx context.Context, bookID int32, principal domain.Principal) (int32, error) {
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return 0, err
	}
	if err := canToggleFlag(principal, book, domain.ReasonUpdateOthersShareable); err != nil {
		return 0, err
	}
	if err := s.bookRepo.ToggleShareable(ctx, bookID); err != nil {
		return 0, err
	}
	return bookID, nil
}

func (s *bookService) ToggleArchived(ctx context.Context, bookID int32, principal domain.Principal) (int32, error) {
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return 0, err
	}
	if err := canToggleFlag(principal, book, domain.ReasonUpdateOthersArchived); err != nil {
		return 0, err
	}
	if err := s.bookRepo.ToggleArchived(ctx, bookID); err != nil {
		return 0, err
	}
	return bookID, nil
}

func (s *bookService) UploadCover(ctx context.Context, bookID int32, principal domain.Principal, content []byte, filename string) error {
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return err
	}
	if err := canToggleFlag(principal, book, domain.ReasonUpdateOthersCover); err != nil {
		return err
	}
	ref, err := s.files.SaveFile(ctx, content, filename, bookID, principal.ID)
	if err != nil {
		return err
	}
	book.BookCover = &ref
	if err := s.bookRepo.Update(ctx, book); err != nil {
		return err
	}
	logger.Info("book cover updated", "book_id", bookID, "cover", ref)
	return nil
}
