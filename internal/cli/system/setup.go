package system

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/notiplan/notiplan/internal/cli"
	"github.com/notiplan/notiplan/internal/constants"
	"github.com/notiplan/notiplan/internal/models"
	"github.com/notiplan/notiplan/internal/notion"
	"github.com/notiplan/notiplan/internal/schema"
	"github.com/notiplan/notiplan/internal/setup"
	"github.com/notiplan/notiplan/internal/utils"
)

type SetupCmd struct {
	Token            string `help:"API integration token. Prompted for when omitted."`
	Profile          string `help:"Field-label profile (plain|emoji)." default:""`
	TaskDatabase     string `help:"Existing task database id."`
	CalendarDatabase string `help:"Existing calendar database id."`
	Timezone         string `help:"IANA timezone for day bucketing." default:"Local"`
	CreateDatabases  bool   `help:"Create fresh databases instead of binding existing ones."`
	ParentPage       string `help:"Parent page id for created databases (requires --create-databases)."`
}

func (c *SetupCmd) Validate() error {
	if c.CreateDatabases && c.ParentPage == "" {
		return fmt.Errorf("--parent-page is required with --create-databases")
	}
	if !utils.ValidateTimezone(c.Timezone) {
		return fmt.Errorf("invalid timezone: %s", c.Timezone)
	}
	return nil
}

func (c *SetupCmd) Run(appCtx *cli.Context) error {
	if err := appCtx.Store.Init(); err != nil {
		return err
	}

	profileName := constants.ProfileName(c.Profile)
	token := c.Token

	if token == "" || c.Profile == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Integration token").
					Description("Created under your workspace's integration settings.").
					EchoMode(huh.EchoModePassword).
					Value(&token),
				huh.NewSelect[constants.ProfileName]().
					Title("Field-label profile").
					Description("Must match how your databases name their properties.").
					Options(
						huh.NewOption("Plain labels (Not started, High, ...)", constants.ProfilePlain),
						huh.NewOption("Emoji labels (📋 Not Started, ⚡ High, ...)", constants.ProfileEmoji),
					).
					Value(&profileName),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}
	if token == "" {
		return fmt.Errorf("an integration token is required")
	}

	profile, err := schema.ByName(profileName)
	if err != nil {
		return err
	}

	if err := appCtx.Keyring.Save(notion.Credential{Token: token}); err != nil {
		return err
	}

	cfg := models.Config{
		Profile:            profileName,
		TaskDatabaseID:     c.TaskDatabase,
		CalendarDatabaseID: c.CalendarDatabase,
		Timezone:           c.Timezone,
	}

	client := notion.NewClient(appCtx.Keyring)
	ctx := context.Background()

	if c.CreateDatabases {
		taskDB, err := client.CreateDatabase(ctx, setup.TaskDatabase(c.ParentPage, profile))
		if err != nil {
			return fmt.Errorf("create task database: %w", err)
		}
		calDB, err := client.CreateDatabase(ctx, setup.CalendarDatabase(c.ParentPage, taskDB.ID, profile))
		if err != nil {
			return fmt.Errorf("create calendar database: %w", err)
		}
		cfg.TaskDatabaseID = taskDB.ID
		cfg.CalendarDatabaseID = calDB.ID
		fmt.Printf("Created task database %s and calendar database %s\n", taskDB.ID, calDB.ID)
	} else if cfg.TaskDatabaseID == "" {
		// Try to find databases by title so manual id copying stays optional.
		resp, err := client.Search(ctx, notion.SearchRequest{
			Filter: &notion.SearchFilter{Value: "database", Property: "object"},
		})
		if err != nil {
			return fmt.Errorf("search databases: %w", err)
		}
		for _, db := range resp.Results {
			switch notion.PlainText(db.Title) {
			case "Tasks", "📋 Tasks":
				if cfg.TaskDatabaseID == "" {
					cfg.TaskDatabaseID = db.ID
				}
			case "Calendar":
				if cfg.CalendarDatabaseID == "" {
					cfg.CalendarDatabaseID = db.ID
				}
			}
		}
		if cfg.TaskDatabaseID == "" {
			return fmt.Errorf("no task database found; pass --task-database or --create-databases")
		}
	}

	if err := appCtx.Store.SaveConfig(cfg); err != nil {
		return err
	}

	fmt.Printf("Setup complete (profile %s, config at %s)\n", profileName, appCtx.Store.GetConfigPath())
	return nil
}
