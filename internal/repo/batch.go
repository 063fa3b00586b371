package repo

import (
	"context"
	"fmt"

	"github.com/notiplan/notiplan/internal/models"
)

// BatchError records one failed item in a batch operation.
type BatchError struct {
	Index  int
	TaskID string
	Err    error
}

func (e BatchError) Error() string {
	if e.TaskID != "" {
		return fmt.Sprintf("item %d (task %s): %v", e.Index, e.TaskID, e.Err)
	}
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e BatchError) Unwrap() error { return e.Err }

// BatchResult summarizes a batch operation. Failures never abort the batch;
// every item is attempted.
type BatchResult struct {
	Success []models.CalendarEvent
	Errors  []BatchError
	Total   int
}

// Failed reports whether any item failed.
func (r BatchResult) Failed() bool { return len(r.Errors) > 0 }

// BatchCreateEvents creates several events, collecting per-item failures.
func (r *EventRepository) BatchCreateEvents(ctx context.Context, events []models.CalendarEvent) BatchResult {
	result := BatchResult{Total: len(events)}
	for i, e := range events {
		created, err := r.Create(ctx, e)
		if err != nil {
			result.Errors = append(result.Errors, BatchError{Index: i, Err: err})
			continue
		}
		result.Success = append(result.Success, created)
	}
	return result
}
