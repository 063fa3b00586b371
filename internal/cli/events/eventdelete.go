package events

import (
	"context"
	"fmt"

	"github.com/notiplan/notiplan/internal/cli"
)

type EventDeleteCmd struct {
	ID string `arg:"" help:"Event id."`
}

func (c *EventDeleteCmd) Run(appCtx *cli.Context) error {
	svc, err := appCtx.Services()
	if err != nil {
		return err
	}
	if err := svc.Events.Delete(context.Background(), c.ID); err != nil {
		return err
	}
	fmt.Printf("Archived event %s\n", c.ID)
	return nil
}
