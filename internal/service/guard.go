package service

import "bookshelf-backend/internal/domain"

// Pure authorization predicates shared by the book, lending and feedback
// services. They have no side effects; a denial is always an
// OperationNotPermittedError carrying one of the domain.Reason* strings.

func isOwner(p domain.Principal, b *domain.Book) bool {
	return p.ID == b.OwnerID
}

func isBorrowable(b *domain.Book) bool {
	return !b.Archived && b.Shareable
}

func canBorrow(p domain.Principal, b *domain.Book) error {
	if !isBorrowable(b) {
		return domain.NotPermitted(domain.ReasonBookNotBorrowable)
	}
	if isOwner(p, b) {
		return domain.NotPermitted(domain.ReasonBorrowOwnBook)
	}
	return nil
}

func canReturn(p domain.Principal, b *domain.Book) error {
	if !isBorrowable(b) {
		return domain.NotPermitted(domain.ReasonBookNotShareable)
	}
	if isOwner(p, b) {
		return domain.NotPermitted(domain.ReasonReturnOwnBook)
	}
	return nil
}

func canApprove(p domain.Principal, b *domain.Book) error {
	if !isBorrowable(b) {
		return domain.NotPermitted(domain.ReasonBookNotShareable)
	}
	if !isOwner(p, b) {
		return domain.NotPermitted(domain.ReasonApproveNotOwner)
	}
	return nil
}

func canToggleFlag(p domain.Principal, b *domain.Book, reason string) error {
	if !isOwner(p, b) {
		return domain.NotPermitted(reason)
	}
	return nil
}

func canGiveFeedback(p domain.Principal, b *domain.Book) error {
	if !isBorrowable(b) {
		return domain.NotPermitted(domain.ReasonFeedbackNotShareable)
	}
	if isOwner(p, b) {
		return domain.NotPermitted(domain.ReasonFeedbackOwnBook)
	}
	return nil
}
