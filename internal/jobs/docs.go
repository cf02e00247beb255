// Package jobs provides scheduled background tasks for the routing service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds).
//
// # Available Jobs
//
// RuleIntegrityJob lists (route, target) pairs that carry more than one
// Action and logs each of them at Error level. Resolution keeps working in
// that state and returns the oldest Action of the pair.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(conflictsHandler, config.IntegrityCheckSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
