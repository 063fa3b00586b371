package tasks

import (
	"context"
	"fmt"

	"github.com/notiplan/notiplan/internal/cli"
	"github.com/notiplan/notiplan/internal/schema"
)

type TaskEditCmd struct {
	ID          string  `arg:"" help:"Task id."`
	Title       string  `help:"New title."`
	Status      string  `short:"s" help:"New status label."`
	Priority    string  `short:"p" help:"New priority label."`
	Category    string  `short:"c" help:"New category label."`
	Due         string  `short:"d" help:"New due date (YYYY-MM-DD or \"YYYY-MM-DD HH:MM\")."`
	ClearDue    bool    `help:"Remove the due date."`
	Estimate    float64 `short:"e" help:"New estimate in hours."`
	Energy      string  `help:"New energy level label."`
	Context     string  `help:"New context label."`
	Description string  `help:"New description."`
	Tags        string  `short:"t" help:"Replacement comma-separated tags."`
	ClearTags   bool    `help:"Remove all tags."`
	Progress    int     `help:"Completion percentage (0-100)." default:"-1"`
}

func (c *TaskEditCmd) Validate() error {
	if c.Due != "" && c.ClearDue {
		return fmt.Errorf("--due and --clear-due are mutually exclusive")
	}
	if c.Tags != "" && c.ClearTags {
		return fmt.Errorf("--tags and --clear-tags are mutually exclusive")
	}
	if c.Progress > 100 {
		return fmt.Errorf("progress must be between 0 and 100")
	}
	return nil
}

func (c *TaskEditCmd) Run(appCtx *cli.Context) error {
	svc, err := appCtx.Services()
	if err != nil {
		return err
	}

	patch := schema.Patch{}
	if c.Title != "" {
		patch[schema.FieldTitle] = c.Title
	}
	if c.Status != "" {
		patch[schema.FieldStatus] = c.Status
	}
	if c.Priority != "" {
		patch[schema.FieldPriority] = c.Priority
	}
	if c.Category != "" {
		patch[schema.FieldCategory] = c.Category
	}
	if c.ClearDue {
		patch[schema.FieldDueDate] = schema.Clear
	} else if c.Due != "" {
		due, _, err := cli.ParseWhen(c.Due, svc.Location)
		if err != nil {
			return err
		}
		patch[schema.FieldDueDate] = due
	}
	if c.Estimate > 0 {
		patch[schema.FieldEstimate] = c.Estimate
	}
	if c.Energy != "" {
		patch[schema.FieldEnergy] = c.Energy
	}
	if c.Context != "" {
		patch[schema.FieldContext] = c.Context
	}
	if c.Description != "" {
		patch[schema.FieldDescription] = c.Description
	}
	if c.ClearTags {
		patch[schema.FieldTags] = schema.Clear
	} else if c.Tags != "" {
		patch[schema.FieldTags] = cli.SplitList(c.Tags)
	}
	if c.Progress >= 0 {
		patch[schema.FieldProgress] = c.Progress
	}

	if len(patch) == 0 {
		return fmt.Errorf("nothing to change")
	}

	task, err := svc.Tasks.Update(context.Background(), c.ID, patch)
	if err != nil {
		return err
	}
	fmt.Printf("Updated task: %s\n", task.Title)
	return nil
}
