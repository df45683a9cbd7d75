package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/trinity-ai/trinity/pkg/auth"
	"github.com/trinity-ai/trinity/pkg/models"
)

// listAuditHandler queries the append-only audit log. Admin only.
func (s *Server) listAuditHandler(c *echo.Context) error {
	if err := s.authorize(c, auth.PermAdminViewAll, auth.Resource{Type: "audit"}); err != nil {
		return respondDomainError(c, err)
	}

	filter := models.AuditFilter{
		Actor:        c.QueryParam("actor"),
		Action:       c.QueryParam("action"),
		ResourceType: c.QueryParam("resource_type"),
		ResourceID:   c.QueryParam("resource_id"),
	}
	var err error
	if filter.Since, err = timeQueryParam(c, "since"); err != nil {
		return respondValidationError(c, "since must be RFC 3339")
	}
	if filter.Until, err = timeQueryParam(c, "until"); err != nil {
		return respondValidationError(c, "until must be RFC 3339")
	}

	entries, err := s.audits.ListAuditEntries(c.Request().Context(), filter,
		intQueryParam(c, "limit", 100), intQueryParam(c, "offset", 0))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"entries": entries, "count": len(entries)})
}

func (s *Server) getAuditHandler(c *echo.Context) error {
	if err := s.authorize(c, auth.PermAdminViewAll, auth.Resource{Type: "audit"}); err != nil {
		return respondDomainError(c, err)
	}
	entry, err := s.audits.GetAuditEntry(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(http.StatusOK, entry)
}

func timeQueryParam(c *echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
