package postgres

import (
	"database/sql"

	"bookshelf-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.TokenRepository
	repository.BookRepository
	repository.TransactionRepository
	repository.FeedbackRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		UserRepository:        NewUserRepository(db),
		TokenRepository:       NewTokenRepository(db),
		BookRepository:        NewBookRepository(db),
		TransactionRepository: NewTransactionRepository(db),
		FeedbackRepository:    NewFeedbackRepository(db),
	}
}
