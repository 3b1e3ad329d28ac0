package domain

import "time"

// BookTransaction records one loan episode. A row is created on borrow,
// flipped to returned on return and to return_approved on owner approval.
// Rows are never deleted; they are the audit trail of the book.
type BookTransaction struct {
	ID             int32     `json:"id"`
	BookID         int32     `json:"book_id"`
	BorrowerID     int32     `json:"borrower_id"`
	Returned       bool      `json:"returned"`
	ReturnApproved bool      `json:"return_approved"`
	CreatedOn      time.Time `json:"created_on"`
	UpdatedOn      time.Time `json:"updated_on"`
}

// BorrowedBook is a loan row joined with the metadata of the book it
// refers to, shaped for the borrowed/returned list views.
type BorrowedBook struct {
	TransactionID  int32     `json:"transaction_id"`
	BookID         int32     `json:"book_id"`
	Title          string    `json:"title"`
	AuthorName     string    `json:"author_name"`
	ISBN           string    `json:"isbn"`
	Returned       bool      `json:"returned"`
	ReturnApproved bool      `json:"return_approved"`
	BorrowedOn     time.Time `json:"borrowed_on"`
}

// OverdueLoan is an active loan older than the reminder threshold,
// joined with the borrower contact details the reminder job needs.
type OverdueLoan struct {
	TransactionID int32
	BookTitle     string
	BorrowerEmail string
	BorrowerName  string
	BorrowedOn    time.Time
}
