// Package workload analyzes how much work sits on each calendar day and
// recommends days for new work. Reports are dense: every day in the queried
// range gets a bucket, empty or not, so renderers never have to fill gaps.
package workload

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/notiplan/notiplan/internal/constants"
	"github.com/notiplan/notiplan/internal/logger"
	"github.com/notiplan/notiplan/internal/models"
	"github.com/notiplan/notiplan/internal/utils"
)

// ErrSuperseded reports that a newer analysis started while this one was
// fetching, so its result would be stale and must not be rendered.
var ErrSuperseded = errors.New("workload analysis superseded by a newer request")

// TaskSource lists tasks due inside an inclusive range.
type TaskSource interface {
	DueBetween(ctx context.Context, start, end time.Time) ([]models.Task, error)
}

// EventSource lists events starting inside an inclusive range.
type EventSource interface {
	StartingBetween(ctx context.Context, start, end time.Time) ([]models.CalendarEvent, error)
}

// Aggregator buckets tasks and events by calendar day. It is safe for
// concurrent use; when analyses overlap, only the most recently started one
// returns a report.
type Aggregator struct {
	tasks  TaskSource
	events EventSource
	loc    *time.Location

	seq atomic.Uint64
}

// NewAggregator builds an aggregator bucketing days in the given location.
// A nil location buckets in local time.
func NewAggregator(tasks TaskSource, events EventSource, loc *time.Location) *Aggregator {
	if loc == nil {
		loc = time.Local
	}
	return &Aggregator{tasks: tasks, events: events, loc: loc}
}

func taskHours(t models.Task) float64 {
	if t.EstimateHours != nil && *t.EstimateHours > 0 {
		return *t.EstimateHours
	}
	return constants.DefaultEstimateHours
}

func eventHours(e models.CalendarEvent) float64 {
	if e.DurationMin > 0 {
		return float64(e.DurationMin) / 60
	}
	return float64(constants.DefaultEventDurationMin) / 60
}

// Analyze fetches tasks and events concurrently and buckets them by day over
// the inclusive range. Day levels are relative to the heaviest day in this
// range; an all-empty range is uniformly light.
func (a *Aggregator) Analyze(ctx context.Context, start, end time.Time) (*models.WorkloadReport, error) {
	my := a.seq.Add(1)

	rangeStart := utils.StartOfDay(start, a.loc)
	rangeEnd := utils.EndOfDay(end, a.loc)

	var (
		wg       sync.WaitGroup
		tasks    []models.Task
		events   []models.CalendarEvent
		taskErr  error
		eventErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		tasks, taskErr = a.tasks.DueBetween(ctx, rangeStart, rangeEnd)
	}()
	go func() {
		defer wg.Done()
		events, eventErr = a.events.StartingBetween(ctx, rangeStart, rangeEnd)
	}()
	wg.Wait()

	if taskErr != nil {
		return nil, taskErr
	}
	if eventErr != nil {
		return nil, eventErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if a.seq.Load() != my {
		logger.Debug("workload analysis superseded", "sequence", my)
		return nil, ErrSuperseded
	}

	report := &models.WorkloadReport{}
	index := map[string]int{}
	for day := rangeStart; !day.After(rangeEnd); day = day.AddDate(0, 0, 1) {
		index[utils.DayKey(day, a.loc)] = len(report.Days)
		report.Days = append(report.Days, models.WorkloadDay{Date: day})
	}

	for i := range tasks {
		t := &tasks[i]
		if t.DueDate == nil {
			continue
		}
		di, ok := index[utils.DayKey(*t.DueDate, a.loc)]
		if !ok {
			continue
		}
		day := &report.Days[di]
		day.TaskCount++
		day.TotalHours += taskHours(*t)
		day.Items = append(day.Items, models.WorkloadItem{Kind: "task", Task: t})
	}
	for i := range events {
		e := &events[i]
		di, ok := index[utils.DayKey(e.StartTime, a.loc)]
		if !ok {
			continue
		}
		day := &report.Days[di]
		day.EventCount++
		day.TotalHours += eventHours(*e)
		day.Items = append(day.Items, models.WorkloadItem{Kind: "event", Event: e})
	}

	var maxHours, totalHours float64
	for _, day := range report.Days {
		if day.TotalHours > maxHours {
			maxHours = day.TotalHours
		}
		totalHours += day.TotalHours
	}
	for i := range report.Days {
		day := &report.Days[i]
		day.Level = classify(day.TotalHours, maxHours)
		switch day.Level {
		case constants.WorkloadHeavy:
			report.Summary.HeavyDays++
		case constants.WorkloadLight:
			report.Summary.LightDays++
		}
	}

	report.Summary.TotalTasks = len(tasks)
	report.Summary.TotalEvents = len(events)
	if n := len(report.Days); n > 0 {
		report.Summary.AverageHoursPerDay = totalHours / float64(n)
	}
	return report, nil
}

// classify grades a day against the heaviest day in range. Boundaries are
// inclusive on the lighter side.
func classify(hours, maxHours float64) constants.WorkloadLevel {
	if maxHours == 0 || hours == 0 {
		return constants.WorkloadLight
	}
	switch {
	case hours <= maxHours*constants.LightWorkloadRatio:
		return constants.WorkloadLight
	case hours <= maxHours*constants.HeavyWorkloadRatio:
		return constants.WorkloadMedium
	default:
		return constants.WorkloadHeavy
	}
}
