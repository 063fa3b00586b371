package tasks

import (
	"context"
	"fmt"

	"github.com/notiplan/notiplan/internal/cli"
	"github.com/notiplan/notiplan/internal/repo"
)

type TaskConvertCmd struct {
	IDs      []string `arg:"" help:"Task ids to convert into calendar blocks."`
	Start    string   `short:"s" help:"Block start (YYYY-MM-DD or \"YYYY-MM-DD HH:MM\"); defaults to the task's due date."`
	Duration int      `short:"d" help:"Block length in minutes; defaults to the task's estimate."`
	Type     string   `help:"Event type label."`
	Location string   `help:"Event location."`
}

func (c *TaskConvertCmd) Run(appCtx *cli.Context) error {
	svc, err := appCtx.Services()
	if err != nil {
		return err
	}

	ov := repo.EventOverrides{
		DurationMin: c.Duration,
		EventType:   c.Type,
		Location:    c.Location,
	}
	if c.Start != "" {
		start, _, err := cli.ParseWhen(c.Start, svc.Location)
		if err != nil {
			return err
		}
		ov.StartTime = &start
	}

	ctx := context.Background()
	if len(c.IDs) == 1 {
		event, err := svc.Converter.ConvertTaskToEvent(ctx, c.IDs[0], ov)
		if err != nil {
			return err
		}
		fmt.Printf("Scheduled: %s at %s (%dm)\n", event.Title, event.StartTime.Format("2006-01-02 15:04"), event.DurationMin)
		return nil
	}

	result := svc.Converter.BulkConvertTasksToEvents(ctx, c.IDs, ov)
	fmt.Printf("Converted %d/%d tasks\n", len(result.Success), result.Total)
	for _, be := range result.Errors {
		fmt.Printf("  failed: %v\n", be)
	}
	if result.Failed() {
		return fmt.Errorf("%d conversions failed", len(result.Errors))
	}
	return nil
}
