package models

import (
	"time"

	"github.com/notiplan/notiplan/internal/constants"
)

// WorkloadItem is one entry in a day bucket: either a task due that day or an
// event starting that day.
type WorkloadItem struct {
	Kind  string         `json:"kind"` // "task" or "event"
	Task  *Task          `json:"task,omitempty"`
	Event *CalendarEvent `json:"event,omitempty"`
}

// WorkloadDay is one calendar day's aggregated load. Level is relative to the
// heaviest day in the queried range, not an absolute measure.
type WorkloadDay struct {
	Date       time.Time               `json:"date"`
	TaskCount  int                     `json:"task_count"`
	EventCount int                     `json:"event_count"`
	TotalHours float64                 `json:"total_hours"`
	Level      constants.WorkloadLevel `json:"level"`
	Items      []WorkloadItem          `json:"items"`
}

// WorkloadSummary aggregates over the whole queried range.
type WorkloadSummary struct {
	TotalTasks         int     `json:"total_tasks"`
	TotalEvents        int     `json:"total_events"`
	AverageHoursPerDay float64 `json:"average_hours_per_day"`
	HeavyDays          int     `json:"heavy_days"`
	LightDays          int     `json:"light_days"`
}

// WorkloadReport is the dense per-day output of a workload analysis: one
// bucket per calendar day in range, in ascending date order, every day
// present even when empty.
type WorkloadReport struct {
	Days    []WorkloadDay   `json:"days"`
	Summary WorkloadSummary `json:"summary"`
}

// Day returns the bucket for the given date, or nil if the date is outside
// the analyzed range.
func (r *WorkloadReport) Day(date time.Time) *WorkloadDay {
	for i := range r.Days {
		d := r.Days[i].Date
		if d.Year() == date.Year() && d.YearDay() == date.YearDay() {
			return &r.Days[i]
		}
	}
	return nil
}

// Suggestion is one ranked day recommendation for placing a task.
type Suggestion struct {
	Date          time.Time            `json:"date"`
	Reason        string               `json:"reason"`
	Confidence    constants.Confidence `json:"confidence"`
	WorkloadHours float64              `json:"workload_hours"`
}
