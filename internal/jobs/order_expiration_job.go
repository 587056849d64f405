package jobs

import (
	"context"
	"log/slog"

	"fastfood/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// orderExpirationSchedule fires at the top of every third minute.
const orderExpirationSchedule = "0 */3 * * * *"

// OrderExpirationJob sweeps Pending orders whose payment window has elapsed
// and cancels them. Runs every three minutes.
type OrderExpirationJob struct {
	handler commands.CancelExpiredOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderExpirationJob creates the expiration sweep job.
func NewOrderExpirationJob(
	handler commands.CancelExpiredOrdersCommandHandler,
	logger *slog.Logger,
) *OrderExpirationJob {
	return &OrderExpirationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_expiration_job"),
	}
}

// Start schedules the sweep. An order created just after a tick waits the
// full window plus at most one interval before it is cancelled.
func (j *OrderExpirationJob) Start() error {
	_, err := j.cron.AddFunc(orderExpirationSchedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelExpiredOrdersCommand()
		if err != nil {
			j.logger.ErrorContext(ctx, "Order expiration job failed to build command", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order expiration job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order expiration job started (running every 3 minutes)")
	return nil
}

// Stop stops the expiration job.
func (j *OrderExpirationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order expiration job stopped")
}
