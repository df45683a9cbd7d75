package services

import (
	"context"
	"time"

	"github.com/trinity-ai/trinity/ent"
	"github.com/trinity-ai/trinity/ent/schedule"
	"github.com/trinity-ai/trinity/pkg/models"
)

// ScheduleService persists cron schedules and implements the fire lock the
// scheduler uses to keep concurrent pollers from double-firing a schedule.
type ScheduleService struct {
	client *ent.Client
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(client *ent.Client) *ScheduleService {
	return &ScheduleService{client: client}
}

// CreateSchedule inserts a new schedule.
func (s *ScheduleService) CreateSchedule(httpCtx context.Context, sched *models.Schedule) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.Schedule.Create().
		SetID(sched.ID).
		SetProcessID(sched.ProcessID).
		SetProcessName(sched.ProcessName).
		SetCron(sched.Cron).
		SetTimezone(sched.Timezone).
		SetEnabled(sched.Enabled).
		SetNextFireAt(sched.NextFireAt).
		SetOwnerUser(sched.OwnerUser).
		SetOwnerTeam(sched.OwnerTeam)
	if sched.Input != nil {
		create.SetInput(sched.Input)
	}

	if _, err := create.Save(ctx); err != nil {
		return translate(err, "failed to create schedule %s", sched.ID)
	}
	return nil
}

// GetSchedule retrieves a schedule by id.
func (s *ScheduleService) GetSchedule(ctx context.Context, id string) (*models.Schedule, error) {
	row, err := s.client.Schedule.Get(ctx, id)
	if err != nil {
		return nil, translate(err, "failed to get schedule %s", id)
	}
	return scheduleFromRow(row), nil
}

// ListSchedules returns all schedules, optionally narrowed to one process.
func (s *ScheduleService) ListSchedules(ctx context.Context, processName string) ([]*models.Schedule, error) {
	q := s.client.Schedule.Query()
	if processName != "" {
		q = q.Where(schedule.ProcessNameEQ(processName))
	}
	rows, err := q.Order(ent.Asc(schedule.FieldNextFireAt)).All(ctx)
	if err != nil {
		return nil, translate(err, "failed to list schedules")
	}
	return schedulesFromRows(rows), nil
}

// UpdateSchedule writes back the mutable fields of a schedule. The caller
// recomputes next_fire_at when the cron expression or timezone changed.
func (s *ScheduleService) UpdateSchedule(httpCtx context.Context, sched *models.Schedule) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Schedule.UpdateOneID(sched.ID).
		SetCron(sched.Cron).
		SetTimezone(sched.Timezone).
		SetEnabled(sched.Enabled).
		SetNextFireAt(sched.NextFireAt)
	if sched.Input != nil {
		update.SetInput(sched.Input)
	} else {
		update.ClearInput()
	}

	if _, err := update.Save(ctx); err != nil {
		return translate(err, "failed to update schedule %s", sched.ID)
	}
	return nil
}

// DeleteSchedule removes a schedule.
func (s *ScheduleService) DeleteSchedule(httpCtx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.client.Schedule.DeleteOneID(id).Exec(ctx); err != nil {
		return translate(err, "failed to delete schedule %s", id)
	}
	return nil
}

// ListEnabledSchedules returns the schedules the poll loop considers.
func (s *ScheduleService) ListEnabledSchedules(ctx context.Context) ([]*models.Schedule, error) {
	rows, err := s.client.Schedule.Query().
		Where(schedule.EnabledEQ(true)).
		Order(ent.Asc(schedule.FieldNextFireAt)).
		All(ctx)
	if err != nil {
		return nil, translate(err, "failed to list enabled schedules")
	}
	return schedulesFromRows(rows), nil
}

// TryLockSchedule attempts to take the fire lock. Returns false when another
// poller holds it. The conditional update is the mutual exclusion: only one
// writer can move lock_token off the empty value.
func (s *ScheduleService) TryLockSchedule(httpCtx context.Context, scheduleID, token string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.Schedule.Update().
		Where(
			schedule.IDEQ(scheduleID),
			schedule.LockTokenEQ(""),
		).
		SetLockToken(token).
		Save(ctx)
	if err != nil {
		return false, translate(err, "failed to lock schedule %s", scheduleID)
	}
	return n > 0, nil
}

// UnlockSchedule releases the fire lock and records the fire. Guarded on the
// token so a crashed-and-recovered poller cannot release someone else's lock.
func (s *ScheduleService) UnlockSchedule(httpCtx context.Context, scheduleID, token string, firedAt, nextFireAt time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.Schedule.Update().
		Where(
			schedule.IDEQ(scheduleID),
			schedule.LockTokenEQ(token),
		).
		SetLockToken("").
		SetLastFiredAt(firedAt).
		SetNextFireAt(nextFireAt).
		Save(ctx)
	if err != nil {
		return translate(err, "failed to unlock schedule %s", scheduleID)
	}
	if n == 0 {
		return models.NewError(models.KindStateConflict, "schedule %s lock not held by this poller", scheduleID)
	}
	return nil
}

// ReleaseStaleLocks clears fire locks left behind by a crashed poller.
// Called once at startup before the scheduler begins polling.
func (s *ScheduleService) ReleaseStaleLocks(httpCtx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.Schedule.Update().
		Where(schedule.LockTokenNEQ("")).
		SetLockToken("").
		Save(ctx)
	if err != nil {
		return 0, translate(err, "failed to release stale schedule locks")
	}
	return n, nil
}

func schedulesFromRows(rows []*ent.Schedule) []*models.Schedule {
	scheds := make([]*models.Schedule, 0, len(rows))
	for _, row := range rows {
		scheds = append(scheds, scheduleFromRow(row))
	}
	return scheds
}

func scheduleFromRow(row *ent.Schedule) *models.Schedule {
	return &models.Schedule{
		ID:          row.ID,
		ProcessID:   row.ProcessID,
		ProcessName: row.ProcessName,
		Cron:        row.Cron,
		Timezone:    row.Timezone,
		Enabled:     row.Enabled,
		LastFiredAt: row.LastFiredAt,
		NextFireAt:  row.NextFireAt,
		OwnerUser:   row.OwnerUser,
		OwnerTeam:   row.OwnerTeam,
		Input:       row.Input,
	}
}
