package domain

import "time"

type Book struct {
	ID         int32     `json:"id"`
	OwnerID    int32     `json:"owner_id"`
	Title      string    `json:"title"`
	AuthorName string    `json:"author_name"`
	ISBN       string    `json:"isbn"`
	Synopsis   string    `json:"synopsis"`
	BookCover  *string   `json:"book_cover,omitempty"`
	Shareable  bool      `json:"shareable"`
	Archived   bool      `json:"archived"`
	CreatedOn  time.Time `json:"created_on"`
	UpdatedOn  time.Time `json:"updated_on"`
}

// BookRequest carries the owner-supplied fields for creating a book.
type BookRequest struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
	ISBN       string `json:"isbn"`
	Synopsis   string `json:"synopsis"`
	Shareable  bool   `json:"shareable"`
}
