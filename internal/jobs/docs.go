// Package jobs provides scheduled background tasks for the trip planner.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six field form with a leading seconds field.
//
// # Available Jobs
//
// 1. RoadGraphEvictionJob - Drops cached road graphs whose time to live has passed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewRoadGraphEvictionJob(network, metrics, "0 */10 * * * *", logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - An invalid schedule fails StartAll
// - Failed job starts will stop any already running jobs
package jobs
