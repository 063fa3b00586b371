package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/notiplan/notiplan/internal/constants"
	"github.com/notiplan/notiplan/internal/utils"
	"github.com/notiplan/notiplan/internal/workload"
)

var (
	lightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	mediumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	heavyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func levelStyle(level constants.WorkloadLevel) lipgloss.Style {
	switch level {
	case constants.WorkloadHeavy:
		return heavyStyle
	case constants.WorkloadMedium:
		return mediumStyle
	default:
		return lightStyle
	}
}

type WorkloadCmd struct {
	From  string `help:"First day of the range (YYYY-MM-DD); defaults to today."`
	Days  int    `short:"n" help:"Number of days to analyze." default:"7"`
	Items bool   `help:"List each day's tasks and events."`
}

func (c *WorkloadCmd) Validate() error {
	if c.Days < 1 {
		return fmt.Errorf("days must be at least 1")
	}
	return nil
}

func (c *WorkloadCmd) Run(appCtx *Context) error {
	svc, err := appCtx.Services()
	if err != nil {
		return err
	}

	start := utils.StartOfDay(time.Now().In(svc.Location), svc.Location)
	if c.From != "" {
		start, _, err = ParseWhen(c.From, svc.Location)
		if err != nil {
			return err
		}
	}
	end := start.AddDate(0, 0, c.Days-1)

	report, err := svc.Workload.Analyze(context.Background(), start, end)
	if err != nil {
		if errors.Is(err, workload.ErrSuperseded) {
			return nil
		}
		return err
	}

	fmt.Printf("Workload %s to %s:\n", utils.DayKey(start, svc.Location), utils.DayKey(end, svc.Location))
	for _, day := range report.Days {
		label := levelStyle(day.Level).Render(string(day.Level))
		fmt.Printf("  %s %s  %5.1fh  %d tasks, %d events  %s\n",
			day.Date.Format("Mon"), utils.DayKey(day.Date, svc.Location),
			day.TotalHours, day.TaskCount, day.EventCount, label)
		if c.Items {
			for _, item := range day.Items {
				switch {
				case item.Task != nil:
					fmt.Printf("      %s %s\n", dimStyle.Render("task "), item.Task.Title)
				case item.Event != nil:
					fmt.Printf("      %s %s\n", dimStyle.Render("event"), item.Event.Title)
				}
			}
		}
	}

	s := report.Summary
	fmt.Printf("\n  %d tasks, %d events; %.1fh/day average; %d heavy, %d light\n",
		s.TotalTasks, s.TotalEvents, s.AverageHoursPerDay, s.HeavyDays, s.LightDays)
	return nil
}
