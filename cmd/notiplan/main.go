package main

import (
	"strings"

	"github.com/alecthomas/kong"

	"github.com/notiplan/notiplan/internal/cli"
	"github.com/notiplan/notiplan/internal/cli/events"
	"github.com/notiplan/notiplan/internal/cli/system"
	"github.com/notiplan/notiplan/internal/cli/tasks"
	"github.com/notiplan/notiplan/internal/constants"
	apperrors "github.com/notiplan/notiplan/internal/errors"
	"github.com/notiplan/notiplan/internal/keyring"
	"github.com/notiplan/notiplan/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string." type:"string" default:"~/.config/notiplan/notiplan.db"`

	Setup  system.SetupCmd  `cmd:"" help:"Connect a workspace and choose a field profile."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Logout system.LogoutCmd `cmd:"" help:"Remove the stored credential."`
	Task   struct {
		Add     tasks.TaskAddCmd     `cmd:"" help:"Add a new task."`
		List    tasks.TaskListCmd    `cmd:"" help:"List tasks."`
		Edit    tasks.TaskEditCmd    `cmd:"" help:"Edit an existing task."`
		Done    tasks.TaskDoneCmd    `cmd:"" help:"Mark a task completed."`
		Delete  tasks.TaskDeleteCmd  `cmd:"" help:"Archive a task."`
		Stats   tasks.TaskStatsCmd   `cmd:"" help:"Show task statistics."`
		Convert tasks.TaskConvertCmd `cmd:"" help:"Schedule calendar blocks for tasks."`
	} `cmd:"" help:"Manage tasks."`
	Event struct {
		Add    events.EventAddCmd    `cmd:"" help:"Add a calendar event."`
		List   events.EventListCmd   `cmd:"" help:"List calendar events."`
		Edit   events.EventEditCmd   `cmd:"" help:"Edit an existing event."`
		Delete events.EventDeleteCmd `cmd:"" help:"Archive an event."`
	} `cmd:"" help:"Manage calendar events."`
	Agenda   cli.AgendaCmd   `cmd:"" help:"Show one day's combined timeline."`
	Workload cli.WorkloadCmd `cmd:"" help:"Analyze per-day workload."`
	Suggest  cli.SuggestCmd  `cmd:"" help:"Suggest days for a task."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Task and calendar planner backed by your Notion workspace"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	// Initialize storage based on config format
	var store storage.Provider
	if strings.HasPrefix(CLI.Config, "postgres://") || strings.HasPrefix(CLI.Config, "postgresql://") {
		if storage.HasEmbeddedCredentials(CLI.Config) {
			apperrors.Fatalf("PostgreSQL connection strings with embedded credentials are not allowed; use environment variables or a .pgpass file instead")
		}
		store = storage.NewPostgresStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(storage.ExpandPath(CLI.Config))
	}

	appCtx := &cli.Context{
		Store:   store,
		Keyring: keyring.NewProvider(),
	}

	// Load the store before running the command (setup handles its own init)
	if ctx.Selected() != nil && ctx.Selected().Name != "setup" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}

	apperrors.Fatal(ctx.Run(appCtx))
}
