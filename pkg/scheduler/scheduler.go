// Package scheduler fires cron schedules. A single loop wakes at the
// earliest next_fire_at across enabled schedules; each fire is guarded by a
// per-schedule lock token in the schedule store so concurrent schedulers
// (or a restart mid-fire) cannot double-trigger the same tick.
package scheduler

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/trinity-ai/trinity/pkg/models"
)

// Store is the schedule persistence surface the loop needs. TryLock is a
// compare-and-set on the schedule's lock_token column: it succeeds only when
// no token is held. Unlock records the fire and clears the token.
type Store interface {
	ListEnabledSchedules(ctx context.Context) ([]*models.Schedule, error)
	TryLockSchedule(ctx context.Context, scheduleID, token string) (bool, error)
	UnlockSchedule(ctx context.Context, scheduleID, token string, firedAt, nextFireAt time.Time) error
}

// Trigger starts an execution for a fired schedule. Implemented by a thin
// adapter over the engine and the definition store.
type Trigger interface {
	TriggerScheduled(ctx context.Context, sched *models.Schedule) error
}

const (
	// pollInterval bounds how stale the loop's view of the schedule table
	// can get (new/re-enabled schedules are noticed within this window).
	pollInterval = 30 * time.Second
	// maxJitter spreads simultaneous fires to reduce thundering herds.
	maxJitter = 500 * time.Millisecond
)

// Scheduler runs the firing loop.
type Scheduler struct {
	store   Store
	trigger Trigger
	logger  *slog.Logger

	jitter func() time.Duration

	quit chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// New creates a scheduler.
func New(store Store, trigger Trigger, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		store:   store,
		trigger: trigger,
		logger:  logger.With("component", "scheduler"),
		jitter:  func() time.Duration { return time.Duration(rand.Int64N(int64(maxJitter))) },
		quit:    make(chan struct{}),
	}
}

// Start launches the loop.
func (s *Scheduler) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.run(context.WithoutCancel(ctx))
	s.logger.Info("Scheduler started")
}

// Stop terminates the loop and waits for an in-progress tick to finish.
func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.quit) })
	s.wg.Wait()
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()
	for {
		wait := s.tick(ctx)
		timer := time.NewTimer(wait)
		select {
		case <-s.quit:
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

// tick fires every due schedule and returns how long to sleep until the
// next one (capped at pollInterval).
func (s *Scheduler) tick(ctx context.Context) time.Duration {
	schedules, err := s.store.ListEnabledSchedules(ctx)
	if err != nil {
		s.logger.Error("Failed to list schedules", "error", err)
		return pollInterval
	}

	now := time.Now()
	var due []*models.Schedule
	wait := pollInterval
	for _, sched := range schedules {
		if !sched.NextFireAt.After(now) {
			due = append(due, sched)
			continue
		}
		if d := sched.NextFireAt.Sub(now); d < wait {
			wait = d
		}
	}

	// Simultaneous fires dispatch in schedule id order.
	sort.Slice(due, func(i, j int) bool { return due[i].ID < due[j].ID })
	for _, sched := range due {
		select {
		case <-s.quit:
			return pollInterval
		default:
		}
		s.fire(ctx, sched)
	}
	if len(due) > 0 {
		// Recompute promptly after a burst of fires.
		return time.Millisecond
	}
	return wait
}

// fire triggers one schedule under the store lock. Missed occurrences are
// not back-filled: the next fire is computed from now.
func (s *Scheduler) fire(ctx context.Context, sched *models.Schedule) {
	token := uuid.New().String()
	locked, err := s.store.TryLockSchedule(ctx, sched.ID, token)
	if err != nil {
		s.logger.Error("Failed to lock schedule", "schedule_id", sched.ID, "error", err)
		return
	}
	if !locked {
		s.logger.Debug("Schedule locked by another fire, skipping", "schedule_id", sched.ID)
		return
	}

	if j := s.jitter(); j > 0 {
		select {
		case <-time.After(j):
		case <-s.quit:
		}
	}

	firedAt := time.Now()
	if err := s.trigger.TriggerScheduled(ctx, sched); err != nil {
		s.logger.Warn("Schedule fire failed",
			"schedule_id", sched.ID, "process", sched.ProcessName, "error", err)
	} else {
		s.logger.Info("Schedule fired",
			"schedule_id", sched.ID, "process", sched.ProcessName)
	}

	next, err := NextFire(sched.Cron, sched.Timezone, firedAt)
	if err != nil {
		// Unparseable cron on a stored schedule: park it a poll interval out
		// rather than hot-looping.
		s.logger.Error("Failed to compute next fire", "schedule_id", sched.ID, "error", err)
		next = firedAt.Add(pollInterval)
	}
	if err := s.store.UnlockSchedule(ctx, sched.ID, token, firedAt, next); err != nil {
		s.logger.Error("Failed to unlock schedule", "schedule_id", sched.ID, "error", err)
	}
}
