// Package repo exposes the task and calendar-event repositories. Each
// repository binds the transport, one database id, and the active field
// profile; callers deal only in domain records and never see the remote
// property format.
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

// TaskRepository persists tasks in one remote database.
type TaskRepository struct {
	client     *notion.Client
	databaseID string
	profile    *schema.Profile
	loc        *time.Location
}

// NewTaskRepository binds a repository to its database, profile, and the
// location date-only dates resolve in. A nil location means the system zone.
func NewTaskRepository(client *notion.Client, databaseID string, profile *schema.Profile, loc *time.Location) *TaskRepository {
	if loc == nil {
		loc = time.Local
	}
	return &TaskRepository{client: client, databaseID: databaseID, profile: profile, loc: loc}
}

// Create validates and stores a new task, returning the stored record with
// its remote id and timestamps filled in.
func (r *TaskRepository) Create(ctx context.Context, t models.Task) (models.Task, error) {
	if err := validation.ValidateTask(t); err != nil {
		return models.Task{}, err
	}
	props, err := schema.TaskProperties(t, r.profile)
	if err != nil {
		return models.Task{}, err
	}
	page, err := r.client.CreatePage(ctx, notion.CreatePageRequest{
		Parent:     notion.Parent{Type: "database_id", DatabaseID: r.databaseID},
		Properties: props,
	})
	if err != nil {
		return models.Task{}, err
	}
	return schema.TaskFromPage(page, r.profile, r.loc), nil
}

// Get fetches one task by id.
func (r *TaskRepository) Get(ctx context.Context, id string) (models.Task, error) {
	page, err := r.client.GetPage(ctx, id)
	if err != nil {
		return models.Task{}, err
	}
	return schema.TaskFromPage(page, r.profile, r.loc), nil
}

// List queries tasks matching the filter, in the given sort order. Archived
// records never appear.
func (r *TaskRepository) List(ctx context.Context, f query.Filter, sorts []query.SortSpec) ([]models.Task, error) {
	req := notion.QueryRequest{
		Filter:   query.Tasks(f, r.profile),
		Sorts:    query.TaskSorts(sorts, r.profile),
		PageSize: constants.DefaultQueryPageSize,
	}
	var tasks []models.Task
	for {
		resp, err := r.client.QueryDatabase(ctx, r.databaseID, req)
		if err != nil {
			return nil, err
		}
		for _, page := range resp.Results {
			tasks = append(tasks, schema.TaskFromPage(page, r.profile, r.loc))
		}
		if !resp.HasMore || resp.NextCursor == "" {
			return tasks, nil
		}
		req.StartCursor = resp.NextCursor
	}
}

// Update applies a partial patch. Fields absent from the patch keep their
// remote value; fields set to schema.Clear are erased.
func (r *TaskRepository) Update(ctx context.Context, id string, patch schema.Patch) (models.Task, error) {
	props, err := schema.TaskPatchProperties(patch, r.profile)
	if err != nil {
		return models.Task{}, err
	}
	page, err := r.client.UpdatePage(ctx, id, notion.UpdatePageRequest{Properties: props})
	if err != nil {
		return models.Task{}, err
	}
	return schema.TaskFromPage(page, r.profile, r.loc), nil
}

// Complete marks a task done using the profile's completed label.
func (r *TaskRepository) Complete(ctx context.Context, id string) (models.Task, error) {
	return r.Update(ctx, id, schema.Patch{schema.FieldStatus: r.profile.CompletedStatus})
}

// Delete archives a task. The record stays fetchable by id but drops out of
// every query.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	archived := true
	_, err := r.client.UpdatePage(ctx, id, notion.UpdatePageRequest{Archived: &archived})
	return err
}

// DueBetween lists tasks whose due date falls inside the inclusive range.
func (r *TaskRepository) DueBetween(ctx context.Context, start, end time.Time) ([]models.Task, error) {
	return r.List(ctx, query.Filter{DateRange: &query.DateRange{Start: &start, End: &end}}, nil)
}
