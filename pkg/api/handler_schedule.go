package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/trinity-ai/trinity/pkg/auth"
	"github.com/trinity-ai/trinity/pkg/models"
	"github.com/trinity-ai/trinity/pkg/scheduler"
)

// createScheduleHandler registers a cron trigger for a published process.
func (s *Server) createScheduleHandler(c *echo.Context) error {
	var req createScheduleRequest
	if err := c.Bind(&req); err != nil {
		return respondValidationError(c, "invalid request body")
	}
	if req.ProcessName == "" {
		return respondValidationError(c, "process_name is required")
	}
	if err := scheduler.ValidateCron(req.Cron, req.Timezone); err != nil {
		return respondDomainError(c, err)
	}

	ctx := c.Request().Context()
	def, err := s.definitions.GetPublishedDefinitionByName(ctx, req.ProcessName)
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := s.authorize(c, auth.PermExecutionTrigger, auth.Resource{Type: "process", ID: def.ID, OwnerTeam: def.OwnerTeam}); err != nil {
		return respondDomainError(c, err)
	}

	next, err := scheduler.NextFire(req.Cron, req.Timezone, time.Now())
	if err != nil {
		return respondDomainError(c, err)
	}

	id := identity(c)
	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	sched := &models.Schedule{
		ID:          uuid.New().String(),
		ProcessID:   def.ID,
		ProcessName: def.Name,
		Cron:        req.Cron,
		Timezone:    req.Timezone,
		Enabled:     enabled,
		NextFireAt:  next,
		OwnerUser:   id.User,
		OwnerTeam:   def.OwnerTeam,
		Input:       req.Input,
	}
	if err := s.schedules.CreateSchedule(ctx, sched); err != nil {
		return respondDomainError(c, err)
	}

	s.recorder.Record(ctx, id.User, "schedule.created", "schedule", sched.ID, map[string]any{
		"process_name": sched.ProcessName,
		"cron":         sched.Cron,
		"timezone":     sched.Timezone,
	}, requestMeta(c))
	return c.JSON(http.StatusCreated, sched)
}

func (s *Server) listSchedulesHandler(c *echo.Context) error {
	if err := s.authorize(c, auth.PermProcessRead, auth.Resource{Type: "schedule"}); err != nil {
		return respondDomainError(c, err)
	}
	scheds, err := s.schedules.ListSchedules(c.Request().Context(), c.QueryParam("process_name"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"schedules": scheds, "count": len(scheds)})
}

func (s *Server) getScheduleHandler(c *echo.Context) error {
	sched, err := s.schedules.GetSchedule(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := s.authorize(c, auth.PermProcessRead, scheduleResource(sched)); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, sched)
}

func (s *Server) deleteScheduleHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	sched, err := s.schedules.GetSchedule(ctx, c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := s.authorize(c, auth.PermExecutionTrigger, scheduleResource(sched)); err != nil {
		return respondDomainError(c, err)
	}
	if err := s.schedules.DeleteSchedule(ctx, sched.ID); err != nil {
		return respondDomainError(c, err)
	}
	s.recorder.Record(ctx, identity(c).User, "schedule.deleted", "schedule", sched.ID,
		map[string]any{"process_name": sched.ProcessName}, requestMeta(c))
	c.Response().WriteHeader(http.StatusNoContent)
	return nil
}

func (s *Server) enableScheduleHandler(c *echo.Context) error {
	return s.setScheduleEnabled(c, true)
}

func (s *Server) disableScheduleHandler(c *echo.Context) error {
	return s.setScheduleEnabled(c, false)
}

// setScheduleEnabled flips the enabled flag. Re-enabling recomputes the next
// fire time so the schedule does not immediately fire for every missed slot.
func (s *Server) setScheduleEnabled(c *echo.Context, enabled bool) error {
	ctx := c.Request().Context()
	sched, err := s.schedules.GetSchedule(ctx, c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := s.authorize(c, auth.PermExecutionTrigger, scheduleResource(sched)); err != nil {
		return respondDomainError(c, err)
	}

	sched.Enabled = enabled
	if enabled {
		next, err := scheduler.NextFire(sched.Cron, sched.Timezone, time.Now())
		if err != nil {
			return respondDomainError(c, err)
		}
		sched.NextFireAt = next
	}
	if err := s.schedules.UpdateSchedule(ctx, sched); err != nil {
		return respondDomainError(c, err)
	}

	action := "schedule.disabled"
	if enabled {
		action = "schedule.enabled"
	}
	s.recorder.Record(ctx, identity(c).User, action, "schedule", sched.ID,
		map[string]any{"process_name": sched.ProcessName}, requestMeta(c))
	return c.JSON(http.StatusOK, sched)
}

// triggerScheduleHandler fires the schedule immediately, outside its cadence.
func (s *Server) triggerScheduleHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	sched, err := s.schedules.GetSchedule(ctx, c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := s.authorize(c, auth.PermExecutionTrigger, scheduleResource(sched)); err != nil {
		return respondDomainError(c, err)
	}
	if err := s.trigger.TriggerScheduled(ctx, sched); err != nil {
		return respondDomainError(c, err)
	}
	s.recorder.Record(ctx, identity(c).User, "schedule.triggered", "schedule", sched.ID,
		map[string]any{"process_name": sched.ProcessName}, requestMeta(c))
	return c.JSON(http.StatusAccepted, map[string]any{"schedule_id": sched.ID, "status": "triggered"})
}

func scheduleResource(sched *models.Schedule) auth.Resource {
	return auth.Resource{
		Type:      "schedule",
		ID:        sched.ID,
		OwnerUser: sched.OwnerUser,
		OwnerTeam: sched.OwnerTeam,
	}
}
