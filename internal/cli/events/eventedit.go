package events

import (
	"context"
	"fmt"

	"github.com/notiplan/notiplan/internal/cli"
	"github.com/notiplan/notiplan/internal/schema"
)

type EventEditCmd struct {
	ID            string `arg:"" help:"Event id."`
	Title         string `help:"New title."`
	Start         string `short:"s" help:"New start (YYYY-MM-DD or \"YYYY-MM-DD HH:MM\")."`
	End           string `short:"e" help:"New end (same formats)."`
	ClearEnd      bool   `help:"Remove the end time."`
	Duration      int    `short:"d" help:"New length in minutes." default:"-1"`
	Status        string `help:"New status label."`
	Type          string `short:"t" help:"New event type label."`
	Priority      string `short:"p" help:"New priority label."`
	Category      string `short:"c" help:"New category label."`
	Location      string `short:"l" help:"New location."`
	ClearLocation bool   `help:"Remove the location."`
	MeetingURL    string `help:"New video call link."`
	Description   string `help:"New description."`
}

func (c *EventEditCmd) Validate() error {
	if c.End != "" && c.ClearEnd {
		return fmt.Errorf("--end and --clear-end are mutually exclusive")
	}
	if c.Location != "" && c.ClearLocation {
		return fmt.Errorf("--location and --clear-location are mutually exclusive")
	}
	return nil
}

func (c *EventEditCmd) Run(appCtx *cli.Context) error {
	svc, err := appCtx.Services()
	if err != nil {
		return err
	}

	patch := schema.Patch{}
	if c.Title != "" {
		patch[schema.FieldTitle] = c.Title
	}
	if c.Start != "" {
		start, _, err := cli.ParseWhen(c.Start, svc.Location)
		if err != nil {
			return err
		}
		patch[schema.FieldStartTime] = start
	}
	if c.ClearEnd {
		patch[schema.FieldEndTime] = schema.Clear
	} else if c.End != "" {
		end, _, err := cli.ParseWhen(c.End, svc.Location)
		if err != nil {
			return err
		}
		patch[schema.FieldEndTime] = end
	}
	if c.Duration >= 0 {
		patch[schema.FieldDuration] = c.Duration
	}
	if c.Status != "" {
		patch[schema.FieldStatus] = c.Status
	}
	if c.Type != "" {
		patch[schema.FieldEventType] = c.Type
	}
	if c.Priority != "" {
		patch[schema.FieldPriority] = c.Priority
	}
	if c.Category != "" {
		patch[schema.FieldCategory] = c.Category
	}
	if c.ClearLocation {
		patch[schema.FieldLocation] = schema.Clear
	} else if c.Location != "" {
		patch[schema.FieldLocation] = c.Location
	}
	if c.MeetingURL != "" {
		patch[schema.FieldMeetingURL] = c.MeetingURL
	}
	if c.Description != "" {
		patch[schema.FieldDescription] = c.Description
	}

	if len(patch) == 0 {
		return fmt.Errorf("nothing to change")
	}

	event, err := svc.Events.Update(context.Background(), c.ID, patch)
	if err != nil {
		return err
	}
	fmt.Printf("Updated event: %s\n", event.Title)
	return nil
}
