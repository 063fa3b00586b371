package repo

import (
	"context"
	"time"

	"github.com/notiplan/notiplan/internal/constants"
	"github.com/notiplan/notiplan/internal/models"
	"github.com/notiplan/notiplan/internal/notion"
	"github.com/notiplan/notiplan/internal/query"
	"github.com/notiplan/notiplan/internal/schema"
	"github.com/notiplan/notiplan/internal/validation"
)

// EventRepository persists calendar events in one remote database.
type EventRepository struct {
	client     *notion.Client
	databaseID string
	profile    *schema.Profile
	loc        *time.Location
}

// NewEventRepository binds a repository to its database, profile, and the
// location date-only dates resolve in. A nil location means the system zone.
func NewEventRepository(client *notion.Client, databaseID string, profile *schema.Profile, loc *time.Location) *EventRepository {
	if loc == nil {
		loc = time.Local
	}
	return &EventRepository{client: client, databaseID: databaseID, profile: profile, loc: loc}
}

// Create validates and stores a new event.
func (r *EventRepository) Create(ctx context.Context, e models.CalendarEvent) (models.CalendarEvent, error) {
	if err := validation.ValidateEvent(e); err != nil {
		return models.CalendarEvent{}, err
	}
	props, err := schema.EventProperties(e, r.profile)
	if err != nil {
		return models.CalendarEvent{}, err
	}
	page, err := r.client.CreatePage(ctx, notion.CreatePageRequest{
		Parent:     notion.Parent{Type: "database_id", DatabaseID: r.databaseID},
		Properties: props,
	})
	if err != nil {
		return models.CalendarEvent{}, err
	}
	return schema.EventFromPage(page, r.profile, r.loc), nil
}

// Get fetches one event by id.
func (r *EventRepository) Get(ctx context.Context, id string) (models.CalendarEvent, error) {
	page, err := r.client.GetPage(ctx, id)
	if err != nil {
		return models.CalendarEvent{}, err
	}
	return schema.EventFromPage(page, r.profile, r.loc), nil
}

// List queries events matching the filter, start time ascending by default.
func (r *EventRepository) List(ctx context.Context, f query.Filter, sorts []query.SortSpec) ([]models.CalendarEvent, error) {
	req := notion.QueryRequest{
		Filter:   query.Events(f, r.profile),
		Sorts:    query.EventSorts(sorts, r.profile),
		PageSize: constants.DefaultQueryPageSize,
	}
	var events []models.CalendarEvent
	for {
		resp, err := r.client.QueryDatabase(ctx, r.databaseID, req)
		if err != nil {
			return nil, err
		}
		for _, page := range resp.Results {
			events = append(events, schema.EventFromPage(page, r.profile, r.loc))
		}
		if !resp.HasMore || resp.NextCursor == "" {
			return events, nil
		}
		req.StartCursor = resp.NextCursor
	}
}

// Update applies a partial patch with the same semantics as task updates.
func (r *EventRepository) Update(ctx context.Context, id string, patch schema.Patch) (models.CalendarEvent, error) {
	props, err := schema.EventPatchProperties(patch, r.profile)
	if err != nil {
		return models.CalendarEvent{}, err
	}
	page, err := r.client.UpdatePage(ctx, id, notion.UpdatePageRequest{Properties: props})
	if err != nil {
		return models.CalendarEvent{}, err
	}
	return schema.EventFromPage(page, r.profile, r.loc), nil
}

// Delete archives an event.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	archived := true
	_, err := r.client.UpdatePage(ctx, id, notion.UpdatePageRequest{Archived: &archived})
	return err
}

// StartingBetween lists events whose start time falls inside the inclusive
// range.
func (r *EventRepository) StartingBetween(ctx context.Context, start, end time.Time) ([]models.CalendarEvent, error) {
	return r.List(ctx, query.Filter{DateRange: &query.DateRange{Start: &start, End: &end}}, nil)
}
