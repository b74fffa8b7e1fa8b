package jobs

import (
	"context"
	"log/slog"
	"time"

	"restaurant/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PreparationJob sweeps the kitchen on a schedule and marks orders whose
// preparation time has elapsed as ready. The preparation time is measured
// from the moment the order entered preparation.
type PreparationJob struct {
	handler  commands.MarkOrdersReadyCommandHandler
	prepTime time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPreparationJob creates the kitchen sweep job. Orders in preparation for
// at least prepTime are moved to ready on each tick.
func NewPreparationJob(
	handler commands.MarkOrdersReadyCommandHandler,
	prepTime time.Duration,
	logger *slog.Logger,
) *PreparationJob {
	return &PreparationJob{
		handler:  handler,
		prepTime: prepTime,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "preparation_job"),
	}
}

// Start begins the sweep, running every second.
func (j *PreparationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewMarkOrdersReadyCommand(time.Now().UTC().Add(-j.prepTime))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "failed to build sweep command", "error", cmdErr)
			return
		}

		finished, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "kitchen sweep failed", "error", handleErr)
			return
		}

		if finished > 0 {
			j.logger.InfoContext(ctx, "orders marked ready", "count", finished)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "preparation job started",
		"prepTime", j.prepTime.String())
	return nil
}

// Stop stops the preparation job.
func (j *PreparationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "preparation job stopped")
}
