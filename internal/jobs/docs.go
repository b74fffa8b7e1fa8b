// Package jobs provides scheduled background tasks for the kitchen worker.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and managed
// through JobManager:
//
//	jobManager := jobs.NewJobManager(markOrdersReadyHandler, prepTime, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// PreparationJob runs every second ("* * * * * *" with seconds enabled) and
// moves orders that have spent the configured preparation time in the
// IN_PREPARATION status to READY. A tick that finds nothing due is silent;
// sweep failures are logged and retried on the next tick.
package jobs
