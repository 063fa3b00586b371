package repo

import (
	"context"
	"math"
	"time"

	"github.com/notiplan/notiplan/internal/models"
	"github.com/notiplan/notiplan/internal/query"
	"github.com/notiplan/notiplan/internal/utils"
)

// ComputeTaskStats summarizes a task list as of now. Due-date buckets use
// now's location; completed tasks never count as overdue.
func (r *TaskRepository) ComputeTaskStats(tasks []models.Task, now time.Time) models.TaskStats {
	stats := models.TaskStats{Total: len(tasks)}
	loc := now.Location()
	today := utils.StartOfDay(now, loc)
	weekEnd := today.AddDate(0, 0, 7)

	for _, t := range tasks {
		completed := t.Status == r.profile.CompletedStatus
		switch t.Status {
		case r.profile.CompletedStatus:
			stats.Completed++
		case r.profile.InProgressStatus:
			stats.InProgress++
		case r.profile.DefaultStatus:
			stats.NotStarted++
		}
		if t.DueDate == nil {
			continue
		}
		due := t.DueDate.In(loc)
		if utils.SameDay(due, now, loc) {
			stats.DueToday++
		}
		if !due.Before(today) && due.Before(weekEnd) {
			stats.DueThisWeek++
		}
		if due.Before(now) && !completed {
			stats.Overdue++
		}
	}

	if stats.Total > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
	}
	return stats
}

// Stats fetches all tasks and summarizes them.
func (r *TaskRepository) Stats(ctx context.Context, now time.Time) (models.TaskStats, error) {
	tasks, err := r.List(ctx, query.Filter{}, nil)
	if err != nil {
		return models.TaskStats{}, err
	}
	return r.ComputeTaskStats(tasks, now), nil
}
