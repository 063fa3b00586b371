package tasks

import (
	"context"
	"fmt"

	"github.com/notiplan/notiplan/internal/cli"
	"github.com/notiplan/notiplan/internal/models"
)

type TaskAddCmd struct {
	Title       string  `arg:"" help:"Task title."`
	Due         string  `short:"d" help:"Due date (YYYY-MM-DD or \"YYYY-MM-DD HH:MM\")."`
	Priority    string  `short:"p" help:"Priority label."`
	Category    string  `short:"c" help:"Category label."`
	Estimate    float64 `short:"e" help:"Estimated hours of work."`
	Energy      string  `help:"Energy level label."`
	Context     string  `help:"Context label."`
	Description string  `help:"Longer description."`
	Tags        string  `short:"t" help:"Comma-separated tags."`
}

func (c *TaskAddCmd) Validate() error {
	if c.Estimate < 0 {
		return fmt.Errorf("estimate must be a positive number of hours")
	}
	return nil
}

func (c *TaskAddCmd) Run(appCtx *cli.Context) error {
	svc, err := appCtx.Services()
	if err != nil {
		return err
	}

	task := models.Task{
		Title:       c.Title,
		Priority:    c.Priority,
		Category:    c.Category,
		EnergyLevel: c.Energy,
		Context:     c.Context,
		Description: c.Description,
		Tags:        cli.SplitList(c.Tags),
	}
	if c.Due != "" {
		due, _, err := cli.ParseWhen(c.Due, svc.Location)
		if err != nil {
			return err
		}
		task.DueDate = &due
	}
	if c.Estimate > 0 {
		task.EstimateHours = &c.Estimate
	}

	created, err := svc.Tasks.Create(context.Background(), task)
	if err != nil {
		return err
	}

	fmt.Printf("Added task: %s (ID: %s)\n", created.Title, created.ID)
	return nil
}
