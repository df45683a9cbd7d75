package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinity-ai/trinity/pkg/models"
)

func testSchedule(processName string) *models.Schedule {
	return &models.Schedule{
		ID:          uuid.New().String(),
		ProcessID:   uuid.New().String(),
		ProcessName: processName,
		Cron:        "0 9 * * 1",
		Timezone:    "UTC",
		Enabled:     true,
		NextFireAt:  time.Now().Add(time.Hour).UTC().Truncate(time.Millisecond),
		OwnerUser:   "alice",
		OwnerTeam:   "platform",
		Input:       map[string]any{"report": "weekly"},
	}
}

func TestScheduleService_CreateAndGet(t *testing.T) {
	client := newTestClient(t)
	svc := NewScheduleService(client.Client)
	ctx := context.Background()

	sched := testSchedule("weekly-report")
	require.NoError(t, svc.CreateSchedule(ctx, sched))

	got, err := svc.GetSchedule(ctx, sched.ID)
	require.NoError(t, err)
	assert.Equal(t, "weekly-report", got.ProcessName)
	assert.Equal(t, "0 9 * * 1", got.Cron)
	assert.True(t, got.Enabled)
	assert.Nil(t, got.LastFiredAt)
	assert.Equal(t, map[string]any{"report": "weekly"}, got.Input)
}

func TestScheduleService_ListEnabledOnly(t *testing.T) {
	client := newTestClient(t)
	svc := NewScheduleService(client.Client)
	ctx := context.Background()

	enabled := testSchedule("weekly-report")
	require.NoError(t, svc.CreateSchedule(ctx, enabled))

	disabled := testSchedule("nightly-scan")
	disabled.Enabled = false
	require.NoError(t, svc.CreateSchedule(ctx, disabled))

	scheds, err := svc.ListEnabledSchedules(ctx)
	require.NoError(t, err)
	require.Len(t, scheds, 1)
	assert.Equal(t, enabled.ID, scheds[0].ID)
}

func TestScheduleService_LockExcludesSecondPoller(t *testing.T) {
	client := newTestClient(t)
	svc := NewScheduleService(client.Client)
	ctx := context.Background()

	sched := testSchedule("weekly-report")
	require.NoError(t, svc.CreateSchedule(ctx, sched))

	ok, err := svc.TryLockSchedule(ctx, sched.ID, "token-a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.TryLockSchedule(ctx, sched.ID, "token-b")
	require.NoError(t, err)
	assert.False(t, ok, "second poller must not acquire a held lock")

	firedAt := time.Now().UTC().Truncate(time.Millisecond)
	nextFire := firedAt.Add(7 * 24 * time.Hour)
	require.NoError(t, svc.UnlockSchedule(ctx, sched.ID, "token-a", firedAt, nextFire))

	got, err := svc.GetSchedule(ctx, sched.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastFiredAt)
	assert.WithinDuration(t, firedAt, *got.LastFiredAt, time.Second)
	assert.WithinDuration(t, nextFire, got.NextFireAt, time.Second)

	// Released: lockable again.
	ok, err = svc.TryLockSchedule(ctx, sched.ID, "token-b")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestScheduleService_UnlockRequiresToken(t *testing.T) {
	client := newTestClient(t)
	svc := NewScheduleService(client.Client)
	ctx := context.Background()

	sched := testSchedule("weekly-report")
	require.NoError(t, svc.CreateSchedule(ctx, sched))

	ok, err := svc.TryLockSchedule(ctx, sched.ID, "token-a")
	require.NoError(t, err)
	require.True(t, ok)

	err = svc.UnlockSchedule(ctx, sched.ID, "wrong-token", time.Now(), time.Now().Add(time.Hour))
	require.Error(t, err)
	assert.True(t, models.IsKind(err, models.KindStateConflict))
}

func TestScheduleService_ReleaseStaleLocks(t *testing.T) {
	client := newTestClient(t)
	svc := NewScheduleService(client.Client)
	ctx := context.Background()

	a := testSchedule("proc-a")
	require.NoError(t, svc.CreateSchedule(ctx, a))
	b := testSchedule("proc-b")
	require.NoError(t, svc.CreateSchedule(ctx, b))

	ok, err := svc.TryLockSchedule(ctx, a.ID, "crashed-poller")
	require.NoError(t, err)
	require.True(t, ok)

	n, err := svc.ReleaseStaleLocks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	ok, err = svc.TryLockSchedule(ctx, a.ID, "token-new")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestScheduleService_UpdateAndDelete(t *testing.T) {
	client := newTestClient(t)
	svc := NewScheduleService(client.Client)
	ctx := context.Background()

	sched := testSchedule("weekly-report")
	require.NoError(t, svc.CreateSchedule(ctx, sched))

	sched.Cron = "0 18 * * 5"
	sched.Enabled = false
	sched.NextFireAt = time.Now().Add(48 * time.Hour).UTC().Truncate(time.Millisecond)
	require.NoError(t, svc.UpdateSchedule(ctx, sched))

	got, err := svc.GetSchedule(ctx, sched.ID)
	require.NoError(t, err)
	assert.Equal(t, "0 18 * * 5", got.Cron)
	assert.False(t, got.Enabled)

	require.NoError(t, svc.DeleteSchedule(ctx, sched.ID))
	_, err = svc.GetSchedule(ctx, sched.ID)
	assert.True(t, models.IsKind(err, models.KindNotFound))
}
