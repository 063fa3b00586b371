package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/notiplan/notiplan/internal/keyring"
	"github.com/notiplan/notiplan/internal/models"
	"github.com/notiplan/notiplan/internal/notion"
	"github.com/notiplan/notiplan/internal/repo"
	"github.com/notiplan/notiplan/internal/schema"
	"github.com/notiplan/notiplan/internal/storage"
	"github.com/notiplan/notiplan/internal/utils"
	"github.com/notiplan/notiplan/internal/workload"
)

type Context struct {
	Store   storage.Provider
	Keyring *keyring.Provider

	services *Services
}

// Services is the wired object graph behind every remote command: config,
// profile, transport, repositories, and the workload layer.
type Services struct {
	Config    models.Config
	Profile   *schema.Profile
	Location  *time.Location
	Client    *notion.Client
	Tasks     *repo.TaskRepository
	Events    *repo.EventRepository
	Converter *repo.Converter
	Workload  *workload.Aggregator
	Advisor   *workload.Advisor
}

// Services builds the object graph on first use. Setup and doctor commands
// never call this, so they work before configuration exists.
func (c *Context) Services() (*Services, error) {
	if c.services != nil {
		return c.services, nil
	}

	cfg, err := c.Store.GetConfig()
	if err != nil {
		return nil, err
	}
	profile, err := schema.ByName(cfg.Profile)
	if err != nil {
		return nil, fmt.Errorf("stored config is invalid: %w", err)
	}
	loc, err := utils.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("stored timezone is invalid: %w", err)
	}

	client := notion.NewClient(c.Keyring)
	tasks := repo.NewTaskRepository(client, cfg.TaskDatabaseID, profile, loc)
	events := repo.NewEventRepository(client, cfg.CalendarDatabaseID, profile, loc)
	agg := workload.NewAggregator(tasks, events, loc)

	c.services = &Services{
		Config:    cfg,
		Profile:   profile,
		Location:  loc,
		Client:    client,
		Tasks:     tasks,
		Events:    events,
		Converter: repo.NewConverter(tasks, events),
		Workload:  agg,
		Advisor:   workload.NewAdvisor(agg, profile.HighEnergy),
	}
	return c.services, nil
}

// ParseWhen parses a date or date-time argument in the configured location.
// Accepted forms: "2006-01-02" and "2006-01-02 15:04".
func ParseWhen(s string, loc *time.Location) (time.Time, bool, error) {
	if t, err := time.ParseInLocation("2006-01-02 15:04", s, loc); err == nil {
		return t, false, nil
	}
	t, err := utils.ParseDateInLocation(s, loc)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or \"YYYY-MM-DD HH:MM\")", s)
	}
	return t, true, nil
}

// SplitList splits a comma-separated flag value, dropping empty entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
