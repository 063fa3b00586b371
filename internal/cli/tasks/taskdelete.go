package tasks

import (
	"context"
	"fmt"

	"github.com/notiplan/notiplan/internal/cli"
)

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task id."`
}

func (c *TaskDeleteCmd) Run(appCtx *cli.Context) error {
	svc, err := appCtx.Services()
	if err != nil {
		return err
	}
	if err := svc.Tasks.Delete(context.Background(), c.ID); err != nil {
		return err
	}
	fmt.Printf("Archived task %s\n", c.ID)
	return nil
}
