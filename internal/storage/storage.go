package storage

import "context"

// FileStorage persists uploaded cover files and hands back an opaque
// reference. The core stores only the reference on the book.
type FileStorage interface {
	SaveFile(ctx context.Context, content []byte, filename string, bookID, userID int32) (string, error)
}
