package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "bookshelf-backend/internal/api/http"
	"bookshelf-backend/internal/config"
	"bookshelf-backend/internal/logger"
	"bookshelf-backend/internal/repository/postgres"
	"bookshelf-backend/internal/security"
	"bookshelf-backend/internal/service"
	"bookshelf-backend/internal/storage"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Bookshelf Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	fileStorage, err := storage.NewLocalFileStorage(cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize file storage", "error", err)
		log.Fatalf("Failed to initialize file storage: %v", err)
	}

	emailService := service.NewEmailService(cfg.Mail.APIKey, cfg.Mail.FromEmail, cfg.Mail.FromName)
	authService := service.NewAuthService(store.UserRepository, store.TokenRepository, emailService, tokenManager, cfg.Mail.ActivationURL, cfg.Mail.ActivationExpiryMins)
	bookService := service.NewBookService(store.BookRepository, fileStorage)
	lendingService := service.NewLendingService(store.BookRepository, store.TransactionRepository)
	feedbackService := service.NewFeedbackService(store.FeedbackRepository, store.BookRepository)

	router := httpapi.NewRouter(
		httpapi.NewAuthHandler(authService),
		httpapi.NewBookHandler(bookService, lendingService),
		httpapi.NewFeedbackHandler(feedbackService),
		httpapi.NewAuthMiddleware(tokenManager),
	)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
