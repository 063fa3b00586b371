package tasks

import (
	"context"
	"fmt"

	"github.com/notiplan/notiplan/internal/cli"
	"github.com/notiplan/notiplan/internal/query"
	"github.com/notiplan/notiplan/internal/utils"
)

type TaskListCmd struct {
	Status   string `short:"s" help:"Comma-separated status labels."`
	Priority string `short:"p" help:"Comma-separated priority labels."`
	Category string `short:"c" help:"Comma-separated category labels."`
	Search   string `help:"Match against title and description."`
	From     string `help:"Earliest due date (YYYY-MM-DD)."`
	To       string `help:"Latest due date (YYYY-MM-DD)."`
	Sort     string `help:"Sort key (dueDate|priority|title|createdTime|updatedTime)."`
	Desc     bool   `help:"Sort descending."`
	ShowIDs  bool   `help:"Show task IDs." name:"show-ids"`
}

func (c *TaskListCmd) Run(appCtx *cli.Context) error {
	svc, err := appCtx.Services()
	if err != nil {
		return err
	}

	f := query.Filter{
		Status:   cli.SplitList(c.Status),
		Priority: cli.SplitList(c.Priority),
		Category: cli.SplitList(c.Category),
		Search:   c.Search,
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

	var sorts []query.SortSpec
	if c.Sort != "" {
		sorts = []query.SortSpec{{Field: query.SortField(c.Sort), Descending: c.Desc}}
	}

	tasks, err := svc.Tasks.List(context.Background(), f, sorts)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Println("Tasks:")
	for _, task := range tasks {
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", task.ID)
		}
		due := "no due date"
		if task.DueDate != nil {
			due = "due " + utils.DayKey(*task.DueDate, svc.Location)
		}
		fmt.Printf("  [%s] %s%s - %s (%s)\n", task.Status, task.Title, idStr, due, task.Priority)
		if task.Description != "" {
			fmt.Printf("      %s\n", task.Description)
		}
	}
	return nil
}
