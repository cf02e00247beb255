package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	ruleIntegrityJob *RuleIntegrityJob
}

// NewJobManager creates a job manager. schedule is the cron expression of the
// rule integrity check.
func NewJobManager(conflictFinder ConflictFinder, schedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		ruleIntegrityJob: NewRuleIntegrityJob(conflictFinder, schedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.ruleIntegrityJob.Start(); err != nil {
		return fmt.Errorf("failed to start rule integrity job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.ruleIntegrityJob.Stop()
}
