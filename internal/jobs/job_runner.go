package jobs

import (
	"log/slog"

	"bookshelf-backend/internal/config"
	"bookshelf-backend/internal/logger"
	"bookshelf-backend/internal/repository/postgres"
	"bookshelf-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	store  *postgres.Store
	email  service.EmailService
	config *config.Config
	log    *slog.Logger
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store *postgres.Store, email service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:  store,
		email:  email,
		config: cfg,
		log:    logger.WithService("jobs"),
	}
}

// Config exposes the configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			jr.log.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	jr.log.Info("Starting job", "job", jobName)
	jobFunc()
	jr.log.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.SendOverdueLoanReminders()
	jr.PurgeExpiredActivationTokens()
}
