package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"restaurant/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the kitchen worker.
// Provides a unified interface to start and stop background jobs.
type JobManager struct {
	preparationJob *PreparationJob
}

// NewJobManager creates a job manager with all required jobs.
// Takes command handlers as dependencies to wire up job execution.
func NewJobManager(
	markOrdersReadyHandler commands.MarkOrdersReadyCommandHandler,
	prepTime time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		preparationJob: NewPreparationJob(markOrdersReadyHandler, prepTime, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.preparationJob.Start(); err != nil {
		return fmt.Errorf("failed to start preparation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.preparationJob.Stop()
}
