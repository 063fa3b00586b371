package tasks

import (
	"context"
	"fmt"

	"github.com/notiplan/notiplan/internal/cli"
)

type TaskDoneCmd struct {
	ID string `arg:"" help:"Task id."`
}

func (c *TaskDoneCmd) Run(appCtx *cli.Context) error {
	svc, err := appCtx.Services()
	if err != nil {
		return err
	}
	task, err := svc.Tasks.Complete(context.Background(), c.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Completed task: %s\n", task.Title)
	return nil
}
