package cli

import (
	"context"
	"fmt"

	"github.com/notiplan/notiplan/internal/constants"
	"github.com/notiplan/notiplan/internal/utils"
)

type SuggestCmd struct {
	TaskID string `arg:"" help:"Task to find a day for."`
}

func (c *SuggestCmd) Run(appCtx *Context) error {
	svc, err := appCtx.Services()
	if err != nil {
		return err
	}

	ctx := context.Background()
	task, err := svc.Tasks.Get(ctx, c.TaskID)
	if err != nil {
		return err
	}

	suggestions, err := svc.Advisor.Suggest(ctx, task)
	if err != nil {
		return err
	}
	if len(suggestions) == 0 {
		fmt.Printf("No light days in the next %d days; try 'workload' to see where the load sits\n",
			constants.SchedulingWindowDays)
		return nil
	}

	fmt.Printf("Suggested days for %q:\n", task.Title)
	for _, s := range suggestions {
		marker := "  "
		if s.Confidence == constants.ConfidenceVeryHigh {
			marker = "★ "
		}
		fmt.Printf("  %s%s %s  %s (%s confidence)\n",
			marker, s.Date.Format("Mon"), utils.DayKey(s.Date, svc.Location), s.Reason, s.Confidence)
	}
	return nil
}
