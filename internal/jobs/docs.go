// Package jobs provides scheduled background tasks for the shop floor.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules are six-field expressions with a leading seconds field.
//
// # Available Jobs
//
// 1. ShortageWatchJob - Opens one InventoryShort exception (severity High) per
// kitted or in-fabrication package that is still short, unless one is already
// active for that package
// 2. AuditRelayJob - Polls the audit log from a cursor and hands new records to
// an AuditSink (SlogAuditSink by default)
//
// # Usage
//
//	shortages := jobs.NewShortageWatchJob(scanHandler, cfg.ShortageScanSchedule, logger)
//	relay := jobs.NewAuditRelayJob(auditHandler, jobs.NewSlogAuditSink(logger), cfg.AuditRelaySchedule, logger)
//	jobManager := jobs.NewJobManager(shortages, relay)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Both jobs log failures and try again on the next tick
// - The relay cursor only advances past records the sink accepted
// - Failed job starts will stop any already running jobs
package jobs
