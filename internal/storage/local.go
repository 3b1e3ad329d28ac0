package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalFileStorage stores cover files on the local filesystem under
// <uploadsDir>/users/<userID>/. For object stores the returned reference
// would be the object key; here it is the relative file path.
type LocalFileStorage struct {
	uploadsDir string
}

func NewLocalFileStorage(uploadsDir string) (*LocalFileStorage, error) {
	if err := os.MkdirAll(uploadsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &LocalFileStorage{uploadsDir: uploadsDir}, nil
}

func (s *LocalFileStorage) SaveFile(ctx context.Context, content []byte, filename string, bookID, userID int32) (string, error) {
	userDir := filepath.Join(s.uploadsDir, "users", fmt.Sprint(userID))
	if err := os.MkdirAll(userDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create user upload directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.NewString() + ext
	target := filepath.Join(userDir, name)
	if err := os.WriteFile(target, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write cover file: %w", err)
	}
	return target, nil
}
