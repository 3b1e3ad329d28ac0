package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"bookshelf-backend/internal/config"
	"bookshelf-backend/internal/jobs"
	"bookshelf-backend/internal/logger"
	"bookshelf-backend/internal/repository/postgres"
	"bookshelf-backend/internal/scheduler"
	"bookshelf-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit ('send-overdue-reminders', 'purge-expired-tokens', 'all-nightly')")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Bookshelf Cronjob Runner...", "log_level", cfg.Log.Level)

	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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
	emailService := service.NewEmailService(cfg.Mail.APIKey, cfg.Mail.FromEmail, cfg.Mail.FromName)
	jobRunner := jobs.NewJobRunner(store, emailService, cfg)

	if *runOnce != "" {
		switch *runOnce {
		case "send-overdue-reminders":
			jobRunner.SendOverdueLoanReminders()
		case "purge-expired-tokens":
			jobRunner.PurgeExpiredActivationTokens()
		case "all-nightly":
			jobRunner.RunAllNightlyJobs()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		return
	}

	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down cronjob runner...")
}
