// Package jobs provides scheduled background tasks for the cafeteria service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use six fields, the first one being seconds.
//
// # Available Jobs
//
// 1. DailySalesReportJob - Logs the day's order counts, sales and active
// users. Runs at 18:00 unless REPORT_SCHEDULE says otherwise.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(adminStatsHandler, jobs.Config{
//		ReportSchedule: cfg.ReportSchedule,
//		Location:       cfg.Location,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed report run is logged and the schedule continues. An invalid
// schedule makes StartAll fail.
package jobs
