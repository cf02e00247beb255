package jobs_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"routing/internal/core/application/usecases/queries"
	"routing/internal/core/domain/model/kernel"
	"routing/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockConflictFinder struct {
	mock.Mock
}

func (m *MockConflictFinder) Handle(ctx context.Context, query queries.FindConflictingActionsQuery) ([]queries.ActionConflict, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.ActionConflict), args.Error(1)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) records(t *testing.T) []map[string]any {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(b.buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func newLogger(buf *syncBuffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRuleIntegrityJob_Run(t *testing.T) {
	t.Run("logs every conflict at error level", func(t *testing.T) {
		buf := &syncBuffer{}
		oldest, newer := kernel.NewUUID(), kernel.NewUUID()
		finder := &MockConflictFinder{}
		finder.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.FindConflictingActionsQuery) bool {
			return q.Validate() == nil
		})).Return([]queries.ActionConflict{
			{RouteID: "R1", LocationGroupName: "ZoneA", ActionIDs: []kernel.UUID{oldest, newer}},
			{RouteID: "R2", LocationKey: "L-01", ActionIDs: []kernel.UUID{newer, oldest}},
		}, nil).Once()

		job := jobs.NewRuleIntegrityJob(finder, "", newLogger(buf))
		n := job.Run(t.Context())

		assert.Equal(t, 2, n)
		finder.AssertExpectations(t)

		records := buf.records(t)
		require.Len(t, records, 2)
		first := records[0]
		assert.Equal(t, "ERROR", first["level"])
		assert.Equal(t, "rule_integrity_job", first["component"])
		assert.Equal(t, "R1", first["route"])
		assert.Equal(t, "ZoneA", first["location_group"])
		assert.Equal(t, oldest.String(), first["effective_action_id"])
		assert.Equal(t, []any{oldest.String(), newer.String()}, first["action_ids"])
		assert.Equal(t, "L-01", records[1]["location"])
	})

	t.Run("clean store logs nothing", func(t *testing.T) {
		buf := &syncBuffer{}
		finder := &MockConflictFinder{}
		finder.On("Handle", mock.Anything, mock.Anything).Return([]queries.ActionConflict{}, nil).Once()

		n := jobs.NewRuleIntegrityJob(finder, "", newLogger(buf)).Run(t.Context())

		assert.Zero(t, n)
		assert.Empty(t, buf.records(t))
	})

	t.Run("query failure is logged", func(t *testing.T) {
		buf := &syncBuffer{}
		finder := &MockConflictFinder{}
		finder.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

		n := jobs.NewRuleIntegrityJob(finder, "", newLogger(buf)).Run(t.Context())

		assert.Zero(t, n)
		records := buf.records(t)
		require.Len(t, records, 1)
		assert.Equal(t, "Rule integrity job failed", records[0]["msg"])
		assert.Equal(t, "db down", records[0]["error"])
	})
}

func TestRuleIntegrityJob_Start(t *testing.T) {
	t.Run("rejects an invalid schedule", func(t *testing.T) {
		job := jobs.NewRuleIntegrityJob(&MockConflictFinder{}, "every minute", newLogger(&syncBuffer{}))

		require.Error(t, job.Start())
	})

	t.Run("starts and stops", func(t *testing.T) {
		buf := &syncBuffer{}
		job := jobs.NewRuleIntegrityJob(&MockConflictFinder{}, "0 0 0 1 1 *", newLogger(buf))

		require.NoError(t, job.Start())
		job.Stop()

		records := buf.records(t)
		require.Len(t, records, 2)
		assert.Equal(t, "Rule integrity job started", records[0]["msg"])
		assert.Equal(t, "0 0 0 1 1 *", records[0]["schedule"])
		assert.Equal(t, "Rule integrity job stopped", records[1]["msg"])
	})
}

func TestJobManager(t *testing.T) {
	t.Run("invalid schedule fails StartAll", func(t *testing.T) {
		jm := jobs.NewJobManager(&MockConflictFinder{}, "not a cron", newLogger(&syncBuffer{}))

		err := jm.StartAll()

		require.ErrorContains(t, err, "failed to start rule integrity job")
	})

	t.Run("starts and stops all jobs", func(t *testing.T) {
		jm := jobs.NewJobManager(&MockConflictFinder{}, "0 0 0 1 1 *", newLogger(&syncBuffer{}))

		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})
}
