package events

import (
	"context"
	"fmt"

	"github.com/notiplan/notiplan/internal/cli"
	"github.com/notiplan/notiplan/internal/query"
	"github.com/notiplan/notiplan/internal/utils"
)

type EventListCmd struct {
	Status   string `short:"s" help:"Comma-separated status labels."`
	Type     string `short:"t" help:"Comma-separated event type labels."`
	Category string `short:"c" help:"Comma-separated category labels."`
	Search   string `help:"Match against title and description."`
	From     string `help:"Earliest start date (YYYY-MM-DD)."`
	To       string `help:"Latest start date (YYYY-MM-DD)."`
	ShowIDs  bool   `help:"Show event IDs." name:"show-ids"`
}

func (c *EventListCmd) Run(appCtx *cli.Context) error {
	svc, err := appCtx.Services()
	if err != nil {
		return err
	}

	f := query.Filter{
		Status:    cli.SplitList(c.Status),
		EventType: cli.SplitList(c.Type),
		Category:  cli.SplitList(c.Category),
		Search:    c.Search,
	}
	if c.From != "" || c.To != "" {
		r := &query.DateRange{}
		if c.From != "" {
			from, _, err := cli.ParseWhen(c.From, svc.Location)
			if err != nil {
				return err
			}
			r.Start = &from
		}
		if c.To != "" {
			to, _, err := cli.ParseWhen(c.To, svc.Location)
			if err != nil {
				return err
			}
			end := utils.EndOfDay(to, svc.Location)
			r.End = &end
		}
		f.DateRange = r
	}

	events, err := svc.Events.List(context.Background(), f, nil)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Println("No events found")
		return nil
	}

	fmt.Println("Events:")
	for _, e := range events {
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", e.ID)
		}
		when := e.StartTime.In(svc.Location).Format("2006-01-02 15:04")
		if e.AllDay {
			when = e.StartTime.In(svc.Location).Format("2006-01-02") + " all day"
		}
		fmt.Printf("  [%s] %s%s - %s, %dm (%s)\n", e.Status, e.Title, idStr, when, e.DurationMin, e.EventType)
		if e.Location != "" {
			fmt.Printf("      at %s\n", e.Location)
		}
	}
	return nil
}
