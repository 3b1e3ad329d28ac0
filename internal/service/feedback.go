package service

import (
	"context"

	"bookshelf-backend/internal/domain"
	"bookshelf-backend/internal/repository"
)

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	bookRepo     repository.BookRepository
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository, bookRepo repository.BookRepository) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		bookRepo:     bookRepo,
	}
}

func (s *feedbackService) Submit(ctx context.Context, req domain.FeedbackRequest, principal domain.Principal) (int32, error) {
	book, err := s.bookRepo.GetByID(ctx, req.BookID)
	if err != nil {
		return 0, err
	}
	if err := canGiveFeedback(principal, book); err != nil {
		return 0, err
	}
	fb := &domain.Feedback{
		BookID:   req.BookID,
		AuthorID: principal.ID,
		Note:     req.Note,
		Comment:  req.Comment,
	}
	if err := s.feedbackRepo.Create(ctx, fb); err != nil {
		return 0, err
	}
	return fb.ID, nil
}

func (s *feedbackService) ListByBook(ctx context.Context, bookID int32, principal domain.Principal, page, size int32) (domain.PageResponse[domain.FeedbackEntry], error) {
	feedbacks, total, err := s.feedbackRepo.PageByBook(ctx, bookID, page, size)
	if err != nil {
		return domain.PageResponse[domain.FeedbackEntry]{}, err
	}
	entries := make([]domain.FeedbackEntry, 0, len(feedbacks))
	for _, fb := range feedbacks {
		entries = append(entries, domain.FeedbackEntry{
			Note:        fb.Note,
			Comment:     fb.Comment,
			OwnFeedback: fb.AuthorID == principal.ID,
		})
	}
	return domain.NewPageResponse(entries, page, size, total), nil
}
