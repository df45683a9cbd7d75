package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/trinity-ai/trinity/pkg/auth"
	"github.com/trinity-ai/trinity/pkg/models"
)

// createProcessHandler registers a new draft definition.
func (s *Server) createProcessHandler(c *echo.Context) error {
	var req createProcessRequest
	if err := c.Bind(&req); err != nil {
		return respondValidationError(c, "invalid request body")
	}
	if req.Name == "" {
		return respondValidationError(c, "name is required")
	}
	if req.Version == "" {
		return respondValidationError(c, "version is required")
	}

	if err := s.authorize(c, auth.PermProcessCreate, auth.Resource{Type: "process", OwnerTeam: req.OwnerTeam}); err != nil {
		return respondDomainError(c, err)
	}

	id := identity(c)
	def := &models.ProcessDefinition{
		ID:                 uuid.New().String(),
		Name:               req.Name,
		Version:            req.Version,
		Status:             models.DefinitionDraft,
		Steps:              req.Steps,
		Triggers:           req.Triggers,
		Output:             req.Output,
		CreatedBy:          id.User,
		OwnerTeam:          req.OwnerTeam,
		CreatedAt:          time.Now().UTC(),
		MaxConcurrent:      req.MaxConcurrent,
		MaxCost:            req.MaxCost,
		Priority:           req.Priority,
		DataClassification: req.DataClassification,
	}
	if err := s.definitions.CreateDefinition(c.Request().Context(), def); err != nil {
		return respondDomainError(c, err)
	}

	s.recorder.Record(c.Request().Context(), id.User, "process.created", "process", def.ID,
		map[string]any{"name": def.Name, "version": def.Version}, requestMeta(c))
	return c.JSON(http.StatusCreated, def)
}

// listProcessesHandler returns definitions filtered by name and status.
func (s *Server) listProcessesHandler(c *echo.Context) error {
	if err := s.authorize(c, auth.PermProcessRead, auth.Resource{Type: "process"}); err != nil {
		return respondDomainError(c, err)
	}

	status := models.DefinitionStatus(c.QueryParam("status"))
	limit := intQueryParam(c, "limit", 50)
	offset := intQueryParam(c, "offset", 0)

	defs, err := s.definitions.ListDefinitions(c.Request().Context(), c.QueryParam("name"), status, limit, offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"processes": defs, "count": len(defs)})
}

func (s *Server) getProcessHandler(c *echo.Context) error {
	def, err := s.definitions.GetDefinition(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := s.authorize(c, auth.PermProcessRead, auth.Resource{Type: "process", ID: def.ID, OwnerTeam: def.OwnerTeam}); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, def)
}

// updateProcessHandler replaces the mutable content of a draft. Published and
// archived versions are immutable; changes go through a new version.
func (s *Server) updateProcessHandler(c *echo.Context) error {
	var req createProcessRequest
	if err := c.Bind(&req); err != nil {
		return respondValidationError(c, "invalid request body")
	}

	def, err := s.definitions.GetDefinition(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := s.authorize(c, auth.PermProcessUpdate, auth.Resource{Type: "process", ID: def.ID, OwnerTeam: def.OwnerTeam}); err != nil {
		return respondDomainError(c, err)
	}
	if def.Status != models.DefinitionDraft {
		return respondDomainError(c, models.NewError(models.KindStateConflict,
			"definition %q is %s, only drafts can be edited", def.Name, def.Status))
	}

	if req.Version != "" {
		def.Version = req.Version
	}
	def.Steps = req.Steps
	def.Triggers = req.Triggers
	def.Output = req.Output
	if req.OwnerTeam != "" {
		def.OwnerTeam = req.OwnerTeam
	}
	def.MaxConcurrent = req.MaxConcurrent
	def.MaxCost = req.MaxCost
	def.Priority = req.Priority
	def.DataClassification = req.DataClassification

	if err := s.definitions.SaveDefinition(c.Request().Context(), def); err != nil {
		return respondDomainError(c, err)
	}
	s.recorder.Record(c.Request().Context(), identity(c).User, "process.updated", "process", def.ID,
		map[string]any{"name": def.Name, "version": def.Version}, requestMeta(c))
	return c.JSON(http.StatusOK, def)
}

// publishProcessHandler validates the draft and makes it the single published
// version of its name, archiving any predecessor.
func (s *Server) publishProcessHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	def, err := s.definitions.GetDefinition(ctx, c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := s.authorize(c, auth.PermProcessPublish, auth.Resource{Type: "process", ID: def.ID, OwnerTeam: def.OwnerTeam}); err != nil {
		return respondDomainError(c, err)
	}

	if err := s.definitions.ArchivePublished(ctx, def.Name); err != nil {
		return respondDomainError(c, err)
	}
	if err := def.Publish(time.Now().UTC()); err != nil {
		return respondDomainError(c, err)
	}
	if err := s.definitions.SaveDefinition(ctx, def); err != nil {
		return respondDomainError(c, err)
	}

	s.recorder.Record(ctx, identity(c).User, "process.published", "process", def.ID,
		map[string]any{"name": def.Name, "version": def.Version}, requestMeta(c))
	return c.JSON(http.StatusOK, def)
}

func (s *Server) deleteProcessHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	def, err := s.definitions.GetDefinition(ctx, c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := s.authorize(c, auth.PermProcessDelete, auth.Resource{Type: "process", ID: def.ID, OwnerTeam: def.OwnerTeam}); err != nil {
		return respondDomainError(c, err)
	}
	if err := s.definitions.DeleteDefinition(ctx, def.ID); err != nil {
		return respondDomainError(c, err)
	}
	s.recorder.Record(ctx, identity(c).User, "process.deleted", "process", def.ID,
		map[string]any{"name": def.Name, "version": def.Version}, requestMeta(c))
	c.Response().WriteHeader(http.StatusNoContent)
	return nil
}

// intQueryParam parses an integer query parameter, falling back on absent or
// malformed values.
func intQueryParam(c *echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
