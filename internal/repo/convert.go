package repo

import (
	"context"
	"time"

	"github.com/notiplan/notiplan/internal/constants"
	"github.com/notiplan/notiplan/internal/models"
)

// EventOverrides adjusts the event derived from a task conversion. Zero
// members fall back to the derivation rules.
type EventOverrides struct {
	Title       string
	StartTime   *time.Time
	DurationMin int
	EventType   string
	Location    string
	Description string
}

// Converter turns tasks into scheduled calendar blocks.
type Converter struct {
	Tasks  *TaskRepository
	Events *EventRepository

	// now is swappable for tests.
	now func() time.Time
}

// NewConverter wires a converter over both repositories.
func NewConverter(tasks *TaskRepository, events *EventRepository) *Converter {
	return &Converter{Tasks: tasks, Events: events, now: time.Now}
}

// ConvertTaskToEvent schedules a work block for a task. The block starts at
// the task's due date (or now, when the task has none), runs for the task's
// estimate, and links back to the task through the relation field.
func (c *Converter) ConvertTaskToEvent(ctx context.Context, taskID string, ov EventOverrides) (models.CalendarEvent, error) {
	task, err := c.Tasks.Get(ctx, taskID)
	if err != nil {
		return models.CalendarEvent{}, err
	}

	title := ov.Title
	if title == "" {
		title = "Work on: " + task.Title
	}

	start := c.now()
	if ov.StartTime != nil {
		start = *ov.StartTime
	} else if task.DueDate != nil {
		start = *task.DueDate
	}

	duration := ov.DurationMin
	if duration <= 0 {
		duration = constants.DefaultEventDurationMin
		if task.EstimateHours != nil && *task.EstimateHours > 0 {
			duration = int(*task.EstimateHours * 60)
		}
	}

	eventType := ov.EventType
	if eventType == "" {
		eventType = constants.EventTypeWork
	}

	event := models.CalendarEvent{
		Title:         title,
		StartTime:     start,
		DurationMin:   duration,
		EventType:     eventType,
		Priority:      task.Priority,
		Category:      task.Category,
		Location:      ov.Location,
		Description:   ov.Description,
		RelatedTaskID: task.ID,
	}
	return c.Events.Create(ctx, event)
}

// BulkConvertTasksToEvents converts several tasks, collecting per-task
// failures instead of stopping at the first one.
func (c *Converter) BulkConvertTasksToEvents(ctx context.Context, taskIDs []string, ov EventOverrides) BatchResult {
	result := BatchResult{Total: len(taskIDs)}
	for i, id := range taskIDs {
		event, err := c.ConvertTaskToEvent(ctx, id, ov)
		if err != nil {
			result.Errors = append(result.Errors, BatchError{Index: i, TaskID: id, Err: err})
			continue
		}
		result.Success = append(result.Success, event)
	}
	return result
}
