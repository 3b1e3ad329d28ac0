package postgres

import (
	"context"
	"testing"
	"time"

	"bookshelf-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestTransactionRepository_Borrow(t *testing.T) {
	ctx := context.Background()

	newMock := func(t *testing.T) (*transactionRepository, sqlmock.Sqlmock, func()) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		return &transactionRepository{db: db}, mock, func() { db.Close() }
	}

	t.Run("Success", func(t *testing.T) {
		repo, mock, closeDB := newMock(t)
		defer closeDB()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM books WHERE id = \\$1 FOR UPDATE").
			WithArgs(int32(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectQuery("SELECT EXISTS (.+) borrower_id = \\$2 AND NOT return_approved").
			WithArgs(int32(7), int32(3)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery("SELECT EXISTS (.+) NOT returned").
			WithArgs(int32(7)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery("INSERT INTO book_transactions").
			WithArgs(int32(7), int32(3), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
		mock.ExpectCommit()

		id, err := repo.Borrow(ctx, 7, 3)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("BookNotFound", func(t *testing.T) {
		repo, mock, closeDB := newMock(t)
		defer closeDB()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM books WHERE id = \\$1 FOR UPDATE").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		_, err := repo.Borrow(ctx, 99, 3)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("OpenLoanByCaller", func(t *testing.T) {
		repo, mock, closeDB := newMock(t)
		defer closeDB()

		mock.ExpectBegin()
		mock.ExpectQuery("FOR UPDATE").
			WithArgs(int32(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectQuery("SELECT EXISTS (.+) borrower_id = \\$2 AND NOT return_approved").
			WithArgs(int32(7), int32(3)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		_, err := repo.Borrow(ctx, 7, 3)
		assert.True(t, domain.IsNotPermitted(err))
		assert.ErrorContains(t, err, domain.ReasonAlreadyBorrowedByUser)
	})

	t.Run("ActiveLoanByOther", func(t *testing.T) {
		repo, mock, closeDB := newMock(t)
		defer closeDB()

		mock.ExpectBegin()
		mock.ExpectQuery("FOR UPDATE").
			WithArgs(int32(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectQuery("SELECT EXISTS (.+) borrower_id = \\$2 AND NOT return_approved").
			WithArgs(int32(7), int32(3)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery("SELECT EXISTS (.+) NOT returned").
			WithArgs(int32(7)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		_, err := repo.Borrow(ctx, 7, 3)
		assert.True(t, domain.IsNotPermitted(err))
		assert.ErrorContains(t, err, domain.ReasonAlreadyBorrowed)
	})

	t.Run("UniqueViolationOnInsert", func(t *testing.T) {
		repo, mock, closeDB := newMock(t)
		defer closeDB()

		mock.ExpectBegin()
		mock.ExpectQuery("FOR UPDATE").
			WithArgs(int32(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectQuery("SELECT EXISTS (.+) borrower_id = \\$2 AND NOT return_approved").
			WithArgs(int32(7), int32(3)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery("SELECT EXISTS (.+) NOT returned").
			WithArgs(int32(7)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery("INSERT INTO book_transactions").
			WithArgs(int32(7), int32(3), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		_, err := repo.Borrow(ctx, 7, 3)
		assert.True(t, domain.IsNotPermitted(err))
		assert.ErrorContains(t, err, domain.ReasonAlreadyBorrowed)
	})
}

func TestTransactionRepository_MarkReturned(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewTransactionRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("WHERE book_id = \\$1 AND borrower_id = \\$2 AND NOT returned").
			WithArgs(int32(7), int32(3), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

		id, err := repo.MarkReturned(ctx, 7, 3)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), id)
	})

	t.Run("NoOpenLoan", func(t *testing.T) {
		// The guarded update matches no row when the caller never borrowed
		// or already returned, so a concurrent double return loses here.
		mock.ExpectQuery("UPDATE book_transactions SET returned = true").
			WithArgs(int32(7), int32(3), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.MarkReturned(ctx, 7, 3)
		assert.True(t, domain.IsNotPermitted(err))
		assert.EqualError(t, err, domain.ReasonDidNotBorrow)
	})
}

func TestTransactionRepository_MarkReturnApproved(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewTransactionRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("t.returned AND NOT t.return_approved").
			WithArgs(int32(7), int32(1), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

		id, err := repo.MarkReturnApproved(ctx, 7, 1)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), id)
	})

	t.Run("NothingToApprove", func(t *testing.T) {
		mock.ExpectQuery("UPDATE book_transactions t SET return_approved = true").
			WithArgs(int32(7), int32(1), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.MarkReturnApproved(ctx, 7, 1)
		assert.True(t, domain.IsNotPermitted(err))
		assert.EqualError(t, err, domain.ReasonNotReturnedYet)
	})
}

func TestTransactionRepository_PageBorrowed(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewTransactionRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM book_transactions t JOIN books b").
		WithArgs(int32(3), false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("ORDER BY t.created_on DESC LIMIT \\$3 OFFSET \\$4").
		WithArgs(int32(3), false, int32(10), int32(0)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "book_id", "title", "author_name", "isbn", "returned", "return_approved", "created_on"}).
			AddRow(42, 7, "Dune", "Frank Herbert", "9780441172719", false, false, time.Now()))

	loans, total, err := repo.PageBorrowed(ctx, 3, false, 0, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, loans, 1)
	assert.Equal(t, "Dune", loans[0].Title)
}

func TestTransactionRepository_ListOverdueLoans(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewTransactionRepository(db)
	ctx := context.Background()
	cutoff := time.Now().AddDate(0, 0, -30)

	mock.ExpectQuery("WHERE NOT t.returned AND t.created_on < \\$1").
		WithArgs(cutoff).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "email", "name", "created_on"}).
			AddRow(42, "Dune", "jane@test.com", "Jane Doe", cutoff.AddDate(0, 0, -5)))

	loans, err := repo.ListOverdueLoans(ctx, cutoff)
	assert.NoError(t, err)
	assert.Len(t, loans, 1)
	assert.Equal(t, "jane@test.com", loans[0].BorrowerEmail)
}
