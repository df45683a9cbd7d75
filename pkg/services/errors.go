package services

import (
	"fmt"

	"github.com/trinity-ai/trinity/ent"
	"github.com/trinity-ai/trinity/pkg/models"
)

// translate maps persistence errors onto the domain error taxonomy so that
// callers (engine, API) can branch on the kind instead of driver details.
func translate(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	switch {
	case ent.IsNotFound(err):
		return models.WrapError(models.KindNotFound, err, "%s", msg)
	case ent.IsConstraintError(err):
		return models.WrapError(models.KindStateConflict, err, "%s", msg)
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
