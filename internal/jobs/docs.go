// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are built on github.com/robfig/cron/v3 with a leading seconds field.
//
// # Available Jobs
//
// OrderStatsJob counts the stored orders of every status through the
// CountOrdersByStatus query, publishes the counts on the orders_by_status
// gauge and logs them as one line.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(countHandler, appMetrics, "0 */5 * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// An empty schedule leaves the job disabled.
package jobs
