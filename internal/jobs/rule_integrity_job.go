package jobs

import (
	"context"
	"log/slog"

	"routing/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultIntegritySchedule runs the check at second zero of every minute.
const DefaultIntegritySchedule = "0 * * * * *"

// ConflictFinder is satisfied by queries.FindConflictingActionsQueryHandler.
type ConflictFinder interface {
	Handle(ctx context.Context, query queries.FindConflictingActionsQuery) ([]queries.ActionConflict, error)
}

// RuleIntegrityJob periodically reports (route, target) pairs that carry more
// than one Action. Resolution silently picks the oldest of them, so every
// conflict is logged at Error level for an operator to clean up.
type RuleIntegrityJob struct {
	finder   ConflictFinder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRuleIntegrityJob creates the job. An empty schedule falls back to
// DefaultIntegritySchedule; the expression uses six fields (with seconds).
func NewRuleIntegrityJob(finder ConflictFinder, schedule string, logger *slog.Logger) *RuleIntegrityJob {
	if schedule == "" {
		schedule = DefaultIntegritySchedule
	}
	return &RuleIntegrityJob{
		finder:   finder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "rule_integrity_job"),
	}
}

// Start registers the check and starts the scheduler.
func (j *RuleIntegrityJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rule integrity job started", "schedule", j.schedule)
	return nil
}

// Run performs one check and returns the number of conflicts found.
func (j *RuleIntegrityJob) Run(ctx context.Context) int {
	conflicts, err := j.finder.Handle(ctx, queries.NewFindConflictingActionsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Rule integrity job failed", "error", err)
		return 0
	}

	for _, c := range conflicts {
		if len(c.ActionIDs) == 0 {
			continue
		}
		ids := make([]string, len(c.ActionIDs))
		for i, id := range c.ActionIDs {
			ids[i] = id.String()
		}
		j.logger.ErrorContext(ctx, "Conflicting actions for one target",
			"route", c.RouteID,
			"location", c.LocationKey,
			"location_group", c.LocationGroupName,
			"action_ids", ids,
			"effective_action_id", ids[0],
		)
	}
	return len(conflicts)
}

// Stop waits for a running check to finish.
func (j *RuleIntegrityJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Rule integrity job stopped")
}
