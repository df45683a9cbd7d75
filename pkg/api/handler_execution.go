package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/trinity-ai/trinity/pkg/auth"
	"github.com/trinity-ai/trinity/pkg/models"
	"github.com/trinity-ai/trinity/pkg/services"
)

// triggerExecutionHandler starts a process by name. Limit rejections come
// back as 429 with a Retry-After hint so clients can back off.
func (s *Server) triggerExecutionHandler(c *echo.Context) error {
	var req triggerExecutionRequest
	if err := c.Bind(&req); err != nil {
		return respondValidationError(c, "invalid request body")
	}
	if req.ProcessName == "" {
		return respondValidationError(c, "process_name is required")
	}

	ctx := c.Request().Context()
	def, err := s.resolveDefinition(c, req.ProcessName, req.Version)
	if err != nil {
		return respondDomainError(c, err)
	}
	if def == nil {
		// resolveDefinition already wrote the 410 for archived versions.
		return nil
	}
	if err := s.authorize(c, auth.PermExecutionTrigger, auth.Resource{Type: "process", ID: def.ID, OwnerTeam: def.OwnerTeam}); err != nil {
		return respondDomainError(c, err)
	}

	id := identity(c)
	executionID, err := s.engine.Start(ctx, def, req.Input, models.TriggeredBy{
		Kind:  models.TriggerManual,
		Actor: id.User,
	})
	if err != nil {
		return respondDomainError(c, err)
	}

	s.recorder.Record(ctx, id.User, "execution.triggered", "execution", executionID,
		map[string]any{"process_name": def.Name, "process_version": def.Version}, requestMeta(c))
	return c.JSON(http.StatusAccepted, map[string]any{
		"execution_id":    executionID,
		"process_name":    def.Name,
		"process_version": def.Version,
	})
}

// resolveDefinition finds the definition to run. An empty version means the
// currently published one; a pinned version must not be archived. Writes the
// 410 response itself for archived versions and returns (nil, nil).
func (s *Server) resolveDefinition(c *echo.Context, name, version string) (*models.ProcessDefinition, error) {
	ctx := c.Request().Context()
	if version == "" {
		return s.definitions.GetPublishedDefinitionByName(ctx, name)
	}

	defs, err := s.definitions.ListDefinitions(ctx, name, "", 0, 0)
	if err != nil {
		return nil, err
	}
	for _, def := range defs {
		if def.Version != version {
			continue
		}
		if def.Status == models.DefinitionArchived {
			return nil, c.JSON(http.StatusGone, errorBody{
				Code:    string(models.KindStateConflict),
				Message: "process version is archived",
				Details: map[string]any{"process_name": name, "version": version},
			})
		}
		return def, nil
	}
	return nil, models.NewError(models.KindNotFound, "process %q version %q not found", name, version)
}

// listExecutionsHandler returns executions visible to the caller. Without
// admin.view_all the listing is scoped to the caller's own executions.
func (s *Server) listExecutionsHandler(c *echo.Context) error {
	id := identity(c)
	filter := services.ExecutionFilter{
		Status:      models.ExecutionStatus(c.QueryParam("status")),
		ProcessName: c.QueryParam("process_name"),
		Limit:       intQueryParam(c, "limit", 50),
		Offset:      intQueryParam(c, "offset", 0),
	}
	if !s.authz.Authorize(id, auth.PermAdminViewAll, auth.Resource{Type: "execution"}).Allowed {
		filter.OwnerUser = id.User
	}

	execs, err := s.executions.ListExecutions(c.Request().Context(), filter)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"executions": execs, "count": len(execs)})
}

func (s *Server) getExecutionHandler(c *echo.Context) error {
	exec, err := s.executions.GetExecution(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := s.authorize(c, auth.PermExecutionView, executionResource(exec)); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, exec)
}

// cancelExecutionHandler requests cooperative cancellation; the engine
// cascades to delegated child executions.
func (s *Server) cancelExecutionHandler(c *echo.Context) error {
	var req cancelExecutionRequest
	if err := c.Bind(&req); err != nil {
		return respondValidationError(c, "invalid request body")
	}

	ctx := c.Request().Context()
	exec, err := s.executions.GetExecution(ctx, c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := s.authorize(c, auth.PermExecutionCancel, executionResource(exec)); err != nil {
		return respondDomainError(c, err)
	}

	id := identity(c)
	if err := s.engine.Cancel(ctx, exec.ID, id.User, req.Reason); err != nil {
		return respondDomainError(c, err)
	}
	s.recorder.Record(ctx, id.User, "execution.cancelled", "execution", exec.ID,
		map[string]any{"reason": req.Reason}, requestMeta(c))
	return c.JSON(http.StatusAccepted, map[string]any{"execution_id": exec.ID, "status": "cancelling"})
}

func (s *Server) listExecutionApprovalsHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	exec, err := s.executions.GetExecution(ctx, c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if err := s.authorize(c, auth.PermExecutionView, executionResource(exec)); err != nil {
		return respondDomainError(c, err)
	}
	approvals, err := s.approvals.ListApprovalsForExecution(ctx, exec.ID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"approvals": approvals, "count": len(approvals)})
}

// recoveryStatusHandler reports the outcome of the startup recovery scan.
func (s *Server) recoveryStatusHandler(c *echo.Context) error {
	if err := s.authorize(c, auth.PermExecutionView, auth.Resource{Type: "execution"}); err != nil {
		return respondDomainError(c, err)
	}
	resp := map[string]any{"done": s.recoveryDone.Load()}
	if report := s.recovery.LastReport(); report != nil {
		resp["report"] = report
	}
	return c.JSON(http.StatusOK, resp)
}

func executionResource(exec *models.ProcessExecution) auth.Resource {
	return auth.Resource{
		Type:      "execution",
		ID:        exec.ID,
		OwnerUser: exec.OwnerUser,
		OwnerTeam: exec.OwnerTeam,
	}
}
