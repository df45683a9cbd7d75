package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinity-ai/trinity/pkg/models"
)

type memScheduleStore struct {
	mu        sync.Mutex
	schedules map[string]*models.Schedule
	locks     map[string]string
	unlocks   int
}

func newMemScheduleStore(schedules ...*models.Schedule) *memScheduleStore {
	m := &memScheduleStore{
		schedules: make(map[string]*models.Schedule),
		locks:     make(map[string]string),
	}
	for _, s := range schedules {
		m.schedules[s.ID] = s
	}
	return m
}

func (m *memScheduleStore) ListEnabledSchedules(context.Context) ([]*models.Schedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Schedule
	for _, s := range m.schedules {
		if s.Enabled {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *memScheduleStore) TryLockSchedule(_ context.Context, id, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[id] != "" {
		return false, nil
	}
	m.locks[id] = token
	return true, nil
}

func (m *memScheduleStore) UnlockSchedule(_ context.Context, id, token string, firedAt, nextFireAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[id] != token {
		return models.NewError(models.KindStateConflict, "lock token mismatch for schedule %s", id)
	}
	delete(m.locks, id)
	m.unlocks++
	if s, ok := m.schedules[id]; ok {
		t := firedAt
		s.LastFiredAt = &t
		s.NextFireAt = nextFireAt
	}
	return nil
}

func (m *memScheduleStore) get(id string) models.Schedule {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.schedules[id]
}

type recordTrigger struct {
	mu    sync.Mutex
	fires []string
}

func (r *recordTrigger) TriggerScheduled(_ context.Context, sched *models.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fires = append(r.fires, sched.ID)
	return nil
}

func (r *recordTrigger) fired() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.fires...)
}

func newTestScheduler(store Store, trigger Trigger) *Scheduler {
	s := New(store, trigger, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.jitter = func() time.Duration { return 0 }
	return s
}

func schedule(id, cronExpr string, next time.Time) *models.Schedule {
	return &models.Schedule{
		ID:          id,
		ProcessID:   "def-1",
		ProcessName: "nightly-report",
		Cron:        cronExpr,
		Enabled:     true,
		NextFireAt:  next,
		OwnerUser:   "alice",
	}
}

func TestNextFire(t *testing.T) {
	t.Run("standard expression", func(t *testing.T) {
		after := time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC)
		next, err := NextFire("0 12 * * *", "", after)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC), next.UTC())
	})

	t.Run("timezone aware", func(t *testing.T) {
		after := time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC)
		next, err := NextFire("0 9 * * *", "America/New_York", after)
		require.NoError(t, err)
		loc, _ := time.LoadLocation("America/New_York")
		assert.Equal(t, 9, next.In(loc).Hour())
	})

	t.Run("invalid expression", func(t *testing.T) {
		_, err := NextFire("not a cron", "", time.Now())
		require.Error(t, err)
		assert.True(t, models.IsKind(err, models.KindValidation))
	})

	t.Run("unknown timezone", func(t *testing.T) {
		_, err := NextFire("* * * * *", "Mars/Olympus", time.Now())
		require.Error(t, err)
		assert.True(t, models.IsKind(err, models.KindValidation))
	})
}

func TestScheduler_FiresDueSchedule(t *testing.T) {
	store := newMemScheduleStore(schedule("sched-1", "* * * * *", time.Now().Add(-time.Second)))
	trigger := &recordTrigger{}
	s := newTestScheduler(store, trigger)

	s.tick(context.Background())

	assert.Equal(t, []string{"sched-1"}, trigger.fired())
	got := store.get("sched-1")
	require.NotNil(t, got.LastFiredAt)
	assert.True(t, got.NextFireAt.After(time.Now()), "next fire recomputed into the future")
}

func TestScheduler_SkipsFutureSchedule(t *testing.T) {
	store := newMemScheduleStore(schedule("sched-1", "* * * * *", time.Now().Add(time.Hour)))
	trigger := &recordTrigger{}
	s := newTestScheduler(store, trigger)

	wait := s.tick(context.Background())

	assert.Empty(t, trigger.fired())
	assert.LessOrEqual(t, wait, pollInterval)
}

func TestScheduler_DisabledScheduleNeverFires(t *testing.T) {
	sched := schedule("sched-1", "* * * * *", time.Now().Add(-time.Minute))
	sched.Enabled = false
	store := newMemScheduleStore(sched)
	trigger := &recordTrigger{}
	s := newTestScheduler(store, trigger)

	s.tick(context.Background())

	assert.Empty(t, trigger.fired())
}

func TestScheduler_SimultaneousFiresInIDOrder(t *testing.T) {
	due := time.Now().Add(-time.Second)
	store := newMemScheduleStore(
		schedule("sched-b", "* * * * *", due),
		schedule("sched-a", "* * * * *", due),
		schedule("sched-c", "* * * * *", due),
	)
	trigger := &recordTrigger{}
	s := newTestScheduler(store, trigger)

	s.tick(context.Background())

	assert.Equal(t, []string{"sched-a", "sched-b", "sched-c"}, trigger.fired())
}

func TestScheduler_LockPreventsDoubleFire(t *testing.T) {
	sched := schedule("sched-1", "* * * * *", time.Now().Add(-time.Second))
	store := newMemScheduleStore(sched)
	store.locks["sched-1"] = "held-elsewhere"
	trigger := &recordTrigger{}
	s := newTestScheduler(store, trigger)

	s.tick(context.Background())

	assert.Empty(t, trigger.fired())
	assert.Equal(t, 0, store.unlocks)
}

func TestScheduler_TriggerErrorStillAdvancesSchedule(t *testing.T) {
	store := newMemScheduleStore(schedule("sched-1", "* * * * *", time.Now().Add(-time.Second)))
	s := newTestScheduler(store, failingTrigger{})

	s.tick(context.Background())

	got := store.get("sched-1")
	assert.True(t, got.NextFireAt.After(time.Now()),
		"a failed fire must not wedge the schedule at a due next_fire_at")
}

type failingTrigger struct{}

func (failingTrigger) TriggerScheduled(context.Context, *models.Schedule) error {
	return models.NewError(models.KindLimitExceeded, "global execution limit reached")
}

func TestScheduler_StartStop(t *testing.T) {
	store := newMemScheduleStore(schedule("sched-1", "* * * * *", time.Now().Add(-time.Second)))
	trigger := &recordTrigger{}
	s := newTestScheduler(store, trigger)

	s.Start(context.Background())
	require.Eventually(t, func() bool { return len(trigger.fired()) >= 1 },
		2*time.Second, 5*time.Millisecond)
	s.Stop()
}
