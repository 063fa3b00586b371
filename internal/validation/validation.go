// Package validation checks domain records before they are sent to the
// remote API, so obviously bad writes fail locally with a field-level error
// instead of a remote round trip.
package validation

import (
	"strings"

	apperrors "github.com/notiplan/notiplan/internal/errors"
	"github.com/notiplan/notiplan/internal/models"
)

// ValidateTask rejects tasks that cannot be created remotely.
func ValidateTask(t models.Task) error {
	if strings.TrimSpace(t.Title) == "" {
		return &apperrors.ValidationError{Field: "title", Reason: "title is required"}
	}
	if t.EstimateHours != nil && *t.EstimateHours <= 0 {
		return &apperrors.ValidationError{Field: "estimate_hours", Reason: "estimate must be a positive number of hours"}
	}
	if t.Progress != nil && (*t.Progress < 0 || *t.Progress > 100) {
		return &apperrors.ValidationError{Field: "progress", Reason: "progress must be between 0 and 100"}
	}
	return nil
}

// ValidateEvent rejects calendar events that cannot be created remotely.
func ValidateEvent(e models.CalendarEvent) error {
	if strings.TrimSpace(e.Title) == "" {
		return &apperrors.ValidationError{Field: "title", Reason: "title is required"}
	}
	if e.StartTime.IsZero() {
		return &apperrors.ValidationError{Field: "start_time", Reason: "start time is required"}
	}
	if e.DurationMin < 0 {
		return &apperrors.ValidationError{Field: "duration_min", Reason: "duration cannot be negative"}
	}
	return nil
}
