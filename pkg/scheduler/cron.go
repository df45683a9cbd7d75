package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/trinity-ai/trinity/pkg/models"
)

// NextFire computes the next fire time of a standard 5-field cron expression
// after the given instant, evaluated in the schedule's timezone (UTC when
// empty).
func NextFire(expr, timezone string, after time.Time) (time.Time, error) {
	loc := time.UTC
	if timezone != "" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return time.Time{}, models.WrapError(models.KindValidation, err,
				"unknown timezone %q", timezone)
		}
		loc = l
	}
	sched, err := cron.ParseStandard(expr)
	if err != nil {
		return time.Time{}, models.WrapError(models.KindValidation, err,
			"invalid cron expression %q", expr)
	}
	return sched.Next(after.In(loc)), nil
}

// ValidateCron checks a cron expression and timezone without computing.
func ValidateCron(expr, timezone string) error {
	_, err := NextFire(expr, timezone, time.Now())
	return err
}
