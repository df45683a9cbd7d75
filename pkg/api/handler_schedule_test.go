package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trinity-ai/trinity/pkg/models"
)

func storedSchedule(f *testFixture, id string) *models.Schedule {
	sched := &models.Schedule{
		ID:          id,
		ProcessID:   "def-1",
		ProcessName: "nightly-report",
		Cron:        "0 2 * * *",
		Enabled:     true,
		NextFireAt:  time.Now().Add(time.Hour),
		OwnerUser:   "alice",
		OwnerTeam:   "sre",
	}
	f.scheds.scheds[id] = sched
	return sched
}

func TestCreateSchedule(t *testing.T) {
	f := newTestFixture(t)
	publishedDef(t, f, "nightly-report", "1.0.0")

	rec := f.do(t, asUser(jsonRequest(t, http.MethodPost, "/api/v1/schedules", map[string]any{
		"process_name": "nightly-report",
		"cron":         "0 2 * * *",
		"timezone":     "UTC",
		"input":        map[string]any{"day": "monday"},
	}), "alice", "operator"))
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "nightly-report", body["process_name"])
	assert.Equal(t, true, body["enabled"])
	assert.Equal(t, "alice", body["owner_user"])
	assert.NotEmpty(t, body["next_fire_at"])
	assert.Contains(t, f.audits.actions(), "schedule.created")
}

func TestCreateScheduleInvalidCron(t *testing.T) {
	f := newTestFixture(t)
	publishedDef(t, f, "nightly-report", "1.0.0")

	rec := f.do(t, asUser(jsonRequest(t, http.MethodPost, "/api/v1/schedules", map[string]any{
		"process_name": "nightly-report",
		"cron":         "not a cron",
	}), "alice", "operator"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, string(models.KindValidation), decodeBody(t, rec)["code"])
}

func TestCreateScheduleUnpublishedProcess(t *testing.T) {
	f := newTestFixture(t)
	require.NoError(t, f.defs.CreateDefinition(t.Context(), testDef("nightly-report", "1.0.0")))

	rec := f.do(t, asUser(jsonRequest(t, http.MethodPost, "/api/v1/schedules", map[string]any{
		"process_name": "nightly-report",
		"cron":         "0 2 * * *",
	}), "alice", "operator"))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDisableAndEnableSchedule(t *testing.T) {
	f := newTestFixture(t)
	storedSchedule(f, "sched-1")

	rec := f.do(t, asUser(jsonRequest(t, http.MethodPost, "/api/v1/schedules/sched-1/disable", nil), "alice", "operator"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["enabled"])

	rec = f.do(t, asUser(jsonRequest(t, http.MethodPost, "/api/v1/schedules/sched-1/enable", nil), "alice", "operator"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["enabled"])

	got, err := f.scheds.GetSchedule(t.Context(), "sched-1")
	require.NoError(t, err)
	assert.True(t, got.NextFireAt.After(time.Now()), "re-enable recomputes next fire")
}

func TestTriggerScheduleNow(t *testing.T) {
	f := newTestFixture(t)
	storedSchedule(f, "sched-1")

	rec := f.do(t, asUser(jsonRequest(t, http.MethodPost, "/api/v1/schedules/sched-1/trigger", nil), "alice", "operator"))
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, []string{"sched-1"}, f.trigger.fired)
	assert.Contains(t, f.audits.actions(), "schedule.triggered")
}

func TestListSchedulesByProcess(t *testing.T) {
	f := newTestFixture(t)
	storedSchedule(f, "sched-1")
	other := storedSchedule(f, "sched-2")
	other.ProcessName = "weekly-digest"

	rec := f.do(t, asUser(httptest.NewRequest(http.MethodGet, "/api/v1/schedules?process_name=nightly-report", nil), "alice", "viewer"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decodeBody(t, rec)["count"])
}

func TestDeleteSchedule(t *testing.T) {
	f := newTestFixture(t)
	storedSchedule(f, "sched-1")

	rec := f.do(t, asUser(httptest.NewRequest(http.MethodDelete, "/api/v1/schedules/sched-1", nil), "alice", "operator"))
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, err := f.scheds.GetSchedule(t.Context(), "sched-1")
	assert.True(t, models.IsKind(err, models.KindNotFound))
}
