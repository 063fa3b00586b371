package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/notiplan/notiplan/internal/cli"
)

type TaskStatsCmd struct{}

func (c *TaskStatsCmd) Run(appCtx *cli.Context) error {
	svc, err := appCtx.Services()
	if err != nil {
		return err
	}

	stats, err := svc.Tasks.Stats(context.Background(), time.Now().In(svc.Location))
	if err != nil {
		return err
	}

	fmt.Println("Task statistics:")
	fmt.Printf("  Total:         %d\n", stats.Total)
	fmt.Printf("  Completed:     %d (%d%%)\n", stats.Completed, stats.CompletionRate)
	fmt.Printf("  In progress:   %d\n", stats.InProgress)
	fmt.Printf("  Not started:   %d\n", stats.NotStarted)
	fmt.Printf("  Overdue:       %d\n", stats.Overdue)
	fmt.Printf("  Due today:     %d\n", stats.DueToday)
	fmt.Printf("  Due this week: %d\n", stats.DueThisWeek)
	return nil
}
