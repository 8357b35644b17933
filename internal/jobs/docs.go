// Package jobs provides scheduled background tasks for the purchasing system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the purchasing service.
//
// # Available Jobs
//
// 1. PurchaseSettlementJob - Runs every second to settle all placed purchases
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(settlePurchasesHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The settlement job uses the cron expression "* * * * * *" which means it
// runs every second, keeping settlement latency low without an external queue.
//
// # Error Handling
//
// The settlement job ignores the expected empty-batch scenario
// (commands.ErrNoPlacedPurchasesFound) and logs everything else.
package jobs
