package domain

import (
	"errors"
	"fmt"
)

// ErrConflict signals that a concurrent write violated the single active
// loan constraint at the storage layer.
var ErrConflict = errors.New("conflicting concurrent update")

// Denial reasons, kept word for word across releases because clients and
// log pipelines match on them.
const (
	ReasonBookNotBorrowable     = "the requested book cannot be borrowed since it is archived or not shareable"
	ReasonBookNotShareable      = "the requested book is archived or not shareable"
	ReasonBorrowOwnBook         = "you cannot borrow your own book"
	ReasonReturnOwnBook         = "you cannot borrow or return your own book"
	ReasonApproveNotOwner       = "you cannot approve the return of a book you do not own"
	ReasonAlreadyBorrowedByUser = "you already borrowed this book and it is still not returned or the return is not approved by the owner"
	ReasonAlreadyBorrowed       = "the requested book is already borrowed"
	ReasonDidNotBorrow          = "you did not borrow this book"
	ReasonNotReturnedYet        = "the book is not returned yet, you cannot approve its return"
	ReasonUpdateOthersShareable = "you cannot update others books shareable status"
	ReasonUpdateOthersArchived  = "you cannot update others books archived status"
	ReasonUpdateOthersCover     = "you cannot update others books cover"
	ReasonFeedbackNotShareable  = "you cannot give a feedback for an archived or not shareable book"
	ReasonFeedbackOwnBook       = "you cannot give feedback to your own book"
)

// NotFoundError reports a missing entity by kind and id.
type NotFoundError struct {
	Entity string
	ID     int32
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s found with ID:: %d", e.Entity, e.ID)
}

func NewNotFound(entity string, id int32) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// OperationNotPermittedError reports an authorization or state-machine
// precondition failure. The reason is one of the Reason* constants.
type OperationNotPermittedError struct {
	Reason string
}

func (e *OperationNotPermittedError) Error() string {
	return e.Reason
}

func NotPermitted(reason string) error {
	return &OperationNotPermittedError{Reason: reason}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsNotPermitted reports whether err is an OperationNotPermittedError.
func IsNotPermitted(err error) bool {
	var np *OperationNotPermittedError
	return errors.As(err, &np)
}
