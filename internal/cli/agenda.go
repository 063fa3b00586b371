package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/notiplan/notiplan/internal/models"
	"github.com/notiplan/notiplan/internal/utils"
)

type AgendaCmd struct {
	Date string `arg:"" optional:"" help:"Day to show (YYYY-MM-DD); defaults to today."`
}

// Run prints one day's combined timeline: timed events in start order, then
// all-day events, then tasks due that day.
func (c *AgendaCmd) Run(appCtx *Context) error {
	svc, err := appCtx.Services()
	if err != nil {
		return err
	}

	day := utils.StartOfDay(time.Now().In(svc.Location), svc.Location)
	if c.Date != "" {
		day, _, err = ParseWhen(c.Date, svc.Location)
		if err != nil {
			return err
		}
	}

	report, err := svc.Workload.Analyze(context.Background(), day, day)
	if err != nil {
		return err
	}
	bucket := report.Day(day)
	if bucket == nil || len(bucket.Items) == 0 {
		fmt.Printf("Nothing scheduled for %s\n", utils.DayKey(day, svc.Location))
		return nil
	}

	var timed, allDay []*models.CalendarEvent
	var due []*models.Task
	for _, item := range bucket.Items {
		switch {
		case item.Event != nil && item.Event.AllDay:
			allDay = append(allDay, item.Event)
		case item.Event != nil:
			timed = append(timed, item.Event)
		case item.Task != nil:
			due = append(due, item.Task)
		}
	}
	sort.Slice(timed, func(i, j int) bool { return timed[i].StartTime.Before(timed[j].StartTime) })

	fmt.Printf("%s %s (%s, %.1fh):\n", day.Format("Mon"), utils.DayKey(day, svc.Location), bucket.Level, bucket.TotalHours)
	for _, e := range allDay {
		fmt.Printf("  all day      %s\n", e.Title)
	}
	for _, e := range timed {
		start := e.StartTime.In(svc.Location)
		fmt.Printf("  %s-%s  %s (%s)\n",
			start.Format("15:04"), e.EffectiveEnd().In(svc.Location).Format("15:04"), e.Title, e.EventType)
	}
	for _, t := range due {
		fmt.Printf("  due          %s [%s]\n", t.Title, t.Status)
	}
	return nil
}
