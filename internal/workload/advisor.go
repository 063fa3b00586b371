package workload

import (
	"context"
	"fmt"
	"time"

	"github.com/notiplan/notiplan/internal/constants"
	"github.com/notiplan/notiplan/internal/models"
	"github.com/notiplan/notiplan/internal/utils"
)

// Advisor recommends days for placing a task, based on the relative workload
// over the upcoming scheduling window.
type Advisor struct {
	agg        *Aggregator
	highEnergy string

	// now is swappable for tests.
	now func() time.Time
}

// NewAdvisor builds an advisor. highEnergy is the profile's high-energy
// label; tasks carrying it get an early-week confidence bump.
func NewAdvisor(agg *Aggregator, highEnergy string) *Advisor {
	return &Advisor{agg: agg, highEnergy: highEnergy, now: time.Now}
}

func earlyWeek(d time.Weekday) bool {
	return d == time.Monday || d == time.Tuesday || d == time.Wednesday
}

// Suggest ranks the lightest upcoming days for the task, earliest first.
// High-energy tasks landing on Monday through Wednesday are upgraded to
// very-high confidence. An empty result means no light day exists in the
// window; the caller decides how to present that.
func (a *Advisor) Suggest(ctx context.Context, task models.Task) ([]models.Suggestion, error) {
	today := utils.StartOfDay(a.now().In(a.agg.loc), a.agg.loc)
	windowEnd := today.AddDate(0, 0, constants.SchedulingWindowDays-1)

	report, err := a.agg.Analyze(ctx, today, windowEnd)
	if err != nil {
		return nil, err
	}

	highEnergy := a.highEnergy != "" && task.EnergyLevel == a.highEnergy

	var candidates []models.Suggestion
	for _, day := range report.Days {
		if day.Level != constants.WorkloadLight || day.Date.Before(today) {
			continue
		}
		candidates = append(candidates, models.Suggestion{
			Date:          day.Date,
			Reason:        fmt.Sprintf("light day (%.1fh scheduled)", day.TotalHours),
			Confidence:    constants.ConfidenceHigh,
			WorkloadHours: day.TotalHours,
		})
		if len(candidates) == constants.MaxSuggestionCandidates {
			break
		}
	}

	if highEnergy {
		for i := range candidates {
			if earlyWeek(candidates[i].Date.Weekday()) {
				candidates[i].Confidence = constants.ConfidenceVeryHigh
				candidates[i].Reason += ", early-week day suits a high-energy task"
			}
		}
	}

	if len(candidates) > constants.MaxSuggestions {
		candidates = candidates[:constants.MaxSuggestions]
	}
	return candidates, nil
}
