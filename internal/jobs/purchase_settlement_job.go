package jobs

import (
	"context"
	"errors"
	"log/slog"

	"purchasing/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PurchaseSettlementJob manages the scheduled settlement of placed purchases.
// Runs every second to settle everything the customers have placed.
type PurchaseSettlementJob struct {
	handler commands.SettlePurchasesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPurchaseSettlementJob creates a new job for settling purchases.
// Uses SettlePurchasesCommandHandler to process settlements every second.
func NewPurchaseSettlementJob(handler commands.SettlePurchasesCommandHandler, logger *slog.Logger) *PurchaseSettlementJob {
	return &PurchaseSettlementJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "purchase_settlement_job"),
	}
}

// Start begins the purchase settlement job to run every second.
func (j *PurchaseSettlementJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSettlePurchasesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty batch is an expected business scenario, not a failure
			if !errors.Is(err, commands.ErrNoPlacedPurchasesFound) {
				j.logger.ErrorContext(ctx, "Purchase settlement job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Purchase settlement job started (running every second)")
	return nil
}

// Stop stops the purchase settlement job.
func (j *PurchaseSettlementJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Purchase settlement job stopped")
}
