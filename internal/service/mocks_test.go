package service

import (
	"context"
	"time"

	"bookshelf-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockBookRepo
type MockBookRepo struct {
	mock.Mock
}

func (m *MockBookRepo) Create(ctx context.Context, b *domain.Book) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookRepo) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookRepo) Update(ctx context.Context, b *domain.Book) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookRepo) ToggleShareable(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookRepo) ToggleArchived(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookRepo) PageDisplayable(ctx context.Context, viewerID int32, page, size int32) ([]domain.Book, int64, error) {
	args := m.Called(ctx, viewerID, page, size)
	return args.Get(0).([]domain.Book), args.Get(1).(int64), args.Error(2)
}
func (m *MockBookRepo) PageByOwner(ctx context.Context, ownerID int32, page, size int32) ([]domain.Book, int64, error) {
	args := m.Called(ctx, ownerID, page, size)
	return args.Get(0).([]domain.Book), args.Get(1).(int64), args.Error(2)
}

// MockTransactionRepo
type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Borrow(ctx context.Context, bookID, borrowerID int32) (int32, error) {
	args := m.Called(ctx, bookID, borrowerID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockTransactionRepo) MarkReturned(ctx context.Context, bookID, borrowerID int32) (int32, error) {
	args := m.Called(ctx, bookID, borrowerID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockTransactionRepo) MarkReturnApproved(ctx context.Context, bookID, ownerID int32) (int32, error) {
	args := m.Called(ctx, bookID, ownerID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockTransactionRepo) PageBorrowed(ctx context.Context, userID int32, returned bool, page, size int32) ([]domain.BorrowedBook, int64, error) {
	args := m.Called(ctx, userID, returned, page, size)
	return args.Get(0).([]domain.BorrowedBook), args.Get(1).(int64), args.Error(2)
}
func (m *MockTransactionRepo) ListOverdueLoans(ctx context.Context, olderThan time.Time) ([]domain.OverdueLoan, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).([]domain.OverdueLoan), args.Error(1)
}

// MockFeedbackRepo
type MockFeedbackRepo struct {
	mock.Mock
}

func (m *MockFeedbackRepo) Create(ctx context.Context, fb *domain.Feedback) error {
	args := m.Called(ctx, fb)
	return args.Error(0)
}
func (m *MockFeedbackRepo) PageByBook(ctx context.Context, bookID int32, page, size int32) ([]domain.Feedback, int64, error) {
	args := m.Called(ctx, bookID, page, size)
	return args.Get(0).([]domain.Feedback), args.Get(1).(int64), args.Error(2)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Enable(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTokenRepo
type MockTokenRepo struct {
	mock.Mock
}

func (m *MockTokenRepo) Create(ctx context.Context, t *domain.Token) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTokenRepo) GetByToken(ctx context.Context, token string) (*domain.Token, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Token), args.Error(1)
}
func (m *MockTokenRepo) MarkValidated(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockTokenRepo) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendActivationEmail(ctx context.Context, email, name, activationURL, token string) error {
	args := m.Called(ctx, email, name, activationURL, token)
	return args.Error(0)
}
func (m *MockEmailService) SendOverdueLoanReminder(ctx context.Context, email, name, bookTitle string, daysHeld int) error {
	args := m.Called(ctx, email, name, bookTitle, daysHeld)
	return args.Error(0)
}

// MockFileStorage
type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) SaveFile(ctx context.Context, content []byte, filename string, bookID, userID int32) (string, error) {
	args := m.Called(ctx, content, filename, bookID, userID)
	return args.String(0), args.Error(1)
}
