package workload

import (
	"context"
	"testing"
	"time"

	"github.com/notiplan/notiplan/internal/constants"
	"github.com/notiplan/notiplan/internal/models"
)

// 2026-09-07 is a Monday.
var monday = time.Date(2026, 9, 7, 8, 30, 0, 0, time.UTC)

func newTestAdvisor(tasks *fakeTasks, events *fakeEvents) *Advisor {
	agg := NewAggregator(tasks, events, time.UTC)
	adv := NewAdvisor(agg, "High")
	adv.now = func() time.Time { return monday }
	return adv
}

func TestSuggestRanksLightDaysAscending(t *testing.T) {
	// Load every day except Tuesday and Thursday relative to an 8h peak.
	var busy []models.CalendarEvent
	for i := 0; i < constants.SchedulingWindowDays; i++ {
		d := monday.AddDate(0, 0, i)
		if wd := d.Weekday(); wd == time.Tuesday || wd == time.Thursday {
			continue
		}
		busy = append(busy, models.CalendarEvent{
			Title:       "busy",
			StartTime:   time.Date(d.Year(), d.Month(), d.Day(), 9, 0, 0, 0, time.UTC),
			DurationMin: 8 * 60,
		})
	}
	adv := newTestAdvisor(&fakeTasks{}, &fakeEvents{events: busy})

	got, err := adv.Suggest(context.Background(), models.Task{Title: "new work"})
	if err != nil {
		t.Fatalf("Suggest() failed: %v", err)
	}

	if len(got) != constants.MaxSuggestions {
		t.Fatalf("suggestions = %d, want capped at %d", len(got), constants.MaxSuggestions)
	}
	for i := 1; i < len(got); i++ {
		if !got[i-1].Date.Before(got[i].Date) {
			t.Errorf("suggestions out of order: %v before %v", got[i-1].Date, got[i].Date)
		}
	}
	if wd := got[0].Date.Weekday(); wd != time.Tuesday {
		t.Errorf("first suggestion = %s, want the first free Tuesday", wd)
	}
	for _, s := range got {
		if s.Confidence != constants.ConfidenceHigh {
			t.Errorf("confidence = %s, want high without an energy match", s.Confidence)
		}
	}
}

func TestSuggestHighEnergyEarlyWeekBump(t *testing.T) {
	adv := newTestAdvisor(&fakeTasks{}, &fakeEvents{})

	got, err := adv.Suggest(context.Background(), models.Task{Title: "hard", EnergyLevel: "High"})
	if err != nil {
		t.Fatalf("Suggest() failed: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("expected suggestions in an empty window")
	}
	// Empty window: every day is light, so the first candidates are
	// Monday through Wednesday and all qualify for the bump.
	for _, s := range got {
		if s.Confidence != constants.ConfidenceVeryHigh {
			t.Errorf("%s confidence = %s, want very-high for early-week high-energy", s.Date.Weekday(), s.Confidence)
		}
	}
}

func TestSuggestNoEnergyBumpLateWeek(t *testing.T) {
	// Occupy Monday through Wednesday so only late-week days stay light.
	var busy []models.CalendarEvent
	for i := 0; i < constants.SchedulingWindowDays; i++ {
		d := monday.AddDate(0, 0, i)
		if wd := d.Weekday(); wd == time.Monday || wd == time.Tuesday || wd == time.Wednesday {
			busy = append(busy, models.CalendarEvent{
				Title:       "busy",
				StartTime:   time.Date(d.Year(), d.Month(), d.Day(), 9, 0, 0, 0, time.UTC),
				DurationMin: 8 * 60,
			})
		}
	}
	adv := newTestAdvisor(&fakeTasks{}, &fakeEvents{events: busy})

	got, err := adv.Suggest(context.Background(), models.Task{Title: "hard", EnergyLevel: "High"})
	if err != nil {
		t.Fatalf("Suggest() failed: %v", err)
	}
	for _, s := range got {
		if s.Confidence != constants.ConfidenceHigh {
			t.Errorf("%s confidence = %s, want high (no early-week day available)", s.Date.Weekday(), s.Confidence)
		}
	}
}

func TestSuggestEmptyWhenNoLightDay(t *testing.T) {
	// Equal nonzero days all classify as heavy against their own peak.
	var busy []models.CalendarEvent
	for i := 0; i < constants.SchedulingWindowDays; i++ {
		d := monday.AddDate(0, 0, i)
		busy = append(busy, models.CalendarEvent{
			Title:       "busy",
			StartTime:   time.Date(d.Year(), d.Month(), d.Day(), 9, 0, 0, 0, time.UTC),
			DurationMin: 8 * 60,
		})
	}
	adv := newTestAdvisor(&fakeTasks{}, &fakeEvents{events: busy})

	got, err := adv.Suggest(context.Background(), models.Task{Title: "anything"})
	if err != nil {
		t.Fatalf("Suggest() failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("suggestions = %+v, want none when every day is heavy", got)
	}
}
