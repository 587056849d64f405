// Package jobs provides the scheduled background tasks of the service.
//
// The only job today is OrderExpirationJob, a cron-driven sweep built on
// github.com/robfig/cron/v3 that cancels Pending orders whose payment window
// elapsed. Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(cancelExpiredHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs

import (
	"fmt"
	"log/slog"

	"fastfood/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderExpirationJob *OrderExpirationJob
}

// NewJobManager creates a job manager with all jobs wired to their handlers.
func NewJobManager(
	cancelExpiredHandler commands.CancelExpiredOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderExpirationJob: NewOrderExpirationJob(cancelExpiredHandler, logger),
	}
}

// StartAll starts every scheduled job.
func (jm *JobManager) StartAll() error {
	if err := jm.orderExpirationJob.Start(); err != nil {
		return fmt.Errorf("failed to start order expiration job: %w", err)
	}
	return nil
}

// StopAll stops every scheduled job gracefully.
func (jm *JobManager) StopAll() {
	jm.orderExpirationJob.Stop()
}
