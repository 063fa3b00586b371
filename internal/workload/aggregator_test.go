package workload

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/notiplan/notiplan/internal/constants"
	"github.com/notiplan/notiplan/internal/models"
)

type fakeTasks struct {
	tasks   []models.Task
	err     error
	entered chan struct{}
	block   chan struct{}
}

func (f *fakeTasks) DueBetween(ctx context.Context, start, end time.Time) ([]models.Task, error) {
	if f.entered != nil {
		close(f.entered)
	}
	if f.block != nil {
		<-f.block
	}
	return f.tasks, f.err
}

type fakeEvents struct {
	events []models.CalendarEvent
	err    error
}

func (f *fakeEvents) StartingBetween(ctx context.Context, start, end time.Time) ([]models.CalendarEvent, error) {
	return f.events, f.err
}

func day(yyyy int, mm time.Month, dd int) time.Time {
	return time.Date(yyyy, mm, dd, 0, 0, 0, 0, time.UTC)
}

func hoursTask(due time.Time, hours float64) models.Task {
	return models.Task{Title: "t", DueDate: &due, EstimateHours: &hours}
}

func TestAnalyzeEmptyRangeIsDenseAndLight(t *testing.T) {
	agg := NewAggregator(&fakeTasks{}, &fakeEvents{}, time.UTC)
	report, err := agg.Analyze(context.Background(), day(2026, 9, 1), day(2026, 9, 5))
	if err != nil {
		t.Fatalf("Analyze() failed: %v", err)
	}

	if len(report.Days) != 5 {
		t.Fatalf("days = %d, want dense 5-day range", len(report.Days))
	}
	for _, d := range report.Days {
		if d.Level != constants.WorkloadLight {
			t.Errorf("%s level = %s, want light for an empty range", d.Date.Format("2006-01-02"), d.Level)
		}
		if d.TotalHours != 0 || len(d.Items) != 0 {
			t.Errorf("%s should be empty", d.Date.Format("2006-01-02"))
		}
	}
	if report.Summary.AverageHoursPerDay != 0 {
		t.Errorf("average = %f, want 0", report.Summary.AverageHoursPerDay)
	}
	if report.Summary.LightDays != 5 || report.Summary.HeavyDays != 0 {
		t.Errorf("summary = %+v", report.Summary)
	}
}

func TestAnalyzeRelativeClassification(t *testing.T) {
	// Daily loads 0, 3 and 10 hours: 3 sits exactly on the light boundary
	// (0.3 of the 10-hour peak) and must stay light.
	tasks := &fakeTasks{tasks: []models.Task{
		hoursTask(day(2026, 9, 2).Add(9*time.Hour), 3),
		hoursTask(day(2026, 9, 3).Add(9*time.Hour), 10),
	}}
	agg := NewAggregator(tasks, &fakeEvents{}, time.UTC)

	report, err := agg.Analyze(context.Background(), day(2026, 9, 1), day(2026, 9, 3))
	if err != nil {
		t.Fatalf("Analyze() failed: %v", err)
	}

	want := []constants.WorkloadLevel{constants.WorkloadLight, constants.WorkloadLight, constants.WorkloadHeavy}
	for i, lvl := range want {
		if report.Days[i].Level != lvl {
			t.Errorf("day %d level = %s, want %s", i, report.Days[i].Level, lvl)
		}
	}
	if report.Summary.HeavyDays != 1 || report.Summary.LightDays != 2 {
		t.Errorf("summary = %+v", report.Summary)
	}
}

func TestAnalyzeMediumBand(t *testing.T) {
	tasks := &fakeTasks{tasks: []models.Task{
		hoursTask(day(2026, 9, 1).Add(9*time.Hour), 5),
		hoursTask(day(2026, 9, 2).Add(9*time.Hour), 10),
	}}
	agg := NewAggregator(tasks, &fakeEvents{}, time.UTC)

	report, err := agg.Analyze(context.Background(), day(2026, 9, 1), day(2026, 9, 2))
	if err != nil {
		t.Fatalf("Analyze() failed: %v", err)
	}
	if report.Days[0].Level != constants.WorkloadMedium {
		t.Errorf("5h against a 10h peak = %s, want medium", report.Days[0].Level)
	}
}

func TestAnalyzeCombinesTasksAndEvents(t *testing.T) {
	due := day(2026, 9, 1).Add(10 * time.Hour)
	est := 2.0
	tasks := &fakeTasks{tasks: []models.Task{{Title: "deep work", DueDate: &due, EstimateHours: &est}}}
	events := &fakeEvents{events: []models.CalendarEvent{
		{Title: "standup", StartTime: day(2026, 9, 1).Add(9 * time.Hour), DurationMin: 30},
	}}
	agg := NewAggregator(tasks, events, time.UTC)

	report, err := agg.Analyze(context.Background(), day(2026, 9, 1), day(2026, 9, 1))
	if err != nil {
		t.Fatalf("Analyze() failed: %v", err)
	}

	d := report.Days[0]
	if d.TaskCount != 1 || d.EventCount != 1 {
		t.Errorf("counts = %d tasks %d events, want 1 each", d.TaskCount, d.EventCount)
	}
	if d.TotalHours != 2.5 {
		t.Errorf("hours = %f, want 2.5", d.TotalHours)
	}
	if len(d.Items) != 2 {
		t.Errorf("items = %d, want 2", len(d.Items))
	}
	if report.Summary.TotalTasks != 1 || report.Summary.TotalEvents != 1 {
		t.Errorf("summary = %+v", report.Summary)
	}
}

func TestAnalyzeDefaultsForMissingEstimates(t *testing.T) {
	due := day(2026, 9, 1).Add(10 * time.Hour)
	tasks := &fakeTasks{tasks: []models.Task{{Title: "no estimate", DueDate: &due}}}
	events := &fakeEvents{events: []models.CalendarEvent{
		{Title: "no duration", StartTime: day(2026, 9, 1).Add(13 * time.Hour)},
	}}
	agg := NewAggregator(tasks, events, time.UTC)

	report, err := agg.Analyze(context.Background(), day(2026, 9, 1), day(2026, 9, 1))
	if err != nil {
		t.Fatalf("Analyze() failed: %v", err)
	}
	// 1h default estimate plus 60m default duration.
	if report.Days[0].TotalHours != 2 {
		t.Errorf("hours = %f, want 2", report.Days[0].TotalHours)
	}
}

func TestAnalyzePropagatesSourceError(t *testing.T) {
	wantErr := errors.New("remote down")
	agg := NewAggregator(&fakeTasks{err: wantErr}, &fakeEvents{}, time.UTC)
	_, err := agg.Analyze(context.Background(), day(2026, 9, 1), day(2026, 9, 2))
	if !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want %v", err, wantErr)
	}
}

func TestAnalyzeSupersededByNewerRequest(t *testing.T) {
	block := make(chan struct{})
	entered := make(chan struct{})
	tasks := &fakeTasks{entered: entered, block: block}
	agg := NewAggregator(tasks, &fakeEvents{}, time.UTC)

	done := make(chan error, 1)
	go func() {
		_, err := agg.Analyze(context.Background(), day(2026, 9, 1), day(2026, 9, 2))
		done <- err
	}()

	// Bump the sequence while the first analysis is blocked in its fetch.
	<-entered
	agg.seq.Add(1)
	close(block)

	if err := <-done; !errors.Is(err, ErrSuperseded) {
		t.Errorf("error = %v, want ErrSuperseded", err)
	}
}

func TestAnalyzeBucketsLocalMidnightDueWestOfUTC(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// A date-only due date resolves to local midnight; it must stay in that
	// calendar day's bucket, not slip into the previous one.
	due := time.Date(2026, 9, 10, 0, 0, 0, 0, loc)
	agg := NewAggregator(&fakeTasks{tasks: []models.Task{hoursTask(due, 2)}}, &fakeEvents{}, loc)

	start := time.Date(2026, 9, 9, 0, 0, 0, 0, loc)
	report, err := agg.Analyze(context.Background(), start, start.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("Analyze() failed: %v", err)
	}
	if len(report.Days) != 2 {
		t.Fatalf("days = %d, want 2", len(report.Days))
	}
	if report.Days[0].TaskCount != 0 {
		t.Errorf("Sep 9 tasks = %d, want 0", report.Days[0].TaskCount)
	}
	if report.Days[1].TaskCount != 1 || report.Days[1].TotalHours != 2 {
		t.Errorf("Sep 10 bucket = %+v, want the due task", report.Days[1])
	}
}
