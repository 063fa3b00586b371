package events

import (
	"context"
	"fmt"

	"github.com/notiplan/notiplan/internal/cli"
	"github.com/notiplan/notiplan/internal/models"
)

type EventAddCmd struct {
	Title       string `arg:"" help:"Event title."`
	Start       string `short:"s" help:"Start (YYYY-MM-DD or \"YYYY-MM-DD HH:MM\")." required:""`
	End         string `short:"e" help:"End (same formats as --start)."`
	Duration    int    `short:"d" help:"Length in minutes when no end is given."`
	AllDay      bool   `help:"All-day event; the time component is ignored."`
	Type        string `short:"t" help:"Event type label."`
	Priority    string `short:"p" help:"Priority label."`
	Category    string `short:"c" help:"Category label."`
	Location    string `short:"l" help:"Location."`
	MeetingURL  string `help:"Video call link."`
	Attendees   string `help:"Comma-separated attendees."`
	Reminders   string `help:"Comma-separated reminder labels."`
	Recurring   string `help:"Recurrence label (informational)."`
	Description string `help:"Longer description."`
}

func (c *EventAddCmd) Run(appCtx *cli.Context) error {
	svc, err := appCtx.Services()
	if err != nil {
		return err
	}

	start, dateOnly, err := cli.ParseWhen(c.Start, svc.Location)
	if err != nil {
		return err
	}

	event := models.CalendarEvent{
		Title:       c.Title,
		StartTime:   start,
		AllDay:      c.AllDay || (dateOnly && c.End == "" && c.Duration == 0),
		DurationMin: c.Duration,
		EventType:   c.Type,
		Priority:    c.Priority,
		Category:    c.Category,
		Location:    c.Location,
		MeetingURL:  c.MeetingURL,
		Attendees:   cli.SplitList(c.Attendees),
		Reminders:   cli.SplitList(c.Reminders),
		Recurring:   c.Recurring,
		Description: c.Description,
	}
	if c.End != "" {
		end, _, err := cli.ParseWhen(c.End, svc.Location)
		if err != nil {
			return err
		}
		event.EndTime = &end
	}

	created, err := svc.Events.Create(context.Background(), event)
	if err != nil {
		return err
	}

	when := created.StartTime.Format("2006-01-02 15:04")
	if created.AllDay {
		when = created.StartTime.Format("2006-01-02") + " (all day)"
	}
	fmt.Printf("Added event: %s at %s (ID: %s)\n", created.Title, when, created.ID)
	return nil
}
