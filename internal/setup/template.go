// Package setup builds the database-creation requests used when a workspace
// has no task or calendar database yet. Templates follow the active profile
// so the created schemas match the field mappings exactly.
package setup

import (
	"github.com/notiplan/notiplan/internal/constants"
	"github.com/notiplan/notiplan/internal/notion"
	"github.com/notiplan/notiplan/internal/schema"
)

func selectSchema(options []notion.SelectOption) *notion.SelectSchema {
	return &notion.SelectSchema{Options: options}
}

// TaskDatabase builds the creation request for a task database under the
// given parent page, with the profile's property names and option lists.
func TaskDatabase(parentPageID string, p *schema.Profile) notion.CreateDatabaseRequest {
	f := p.TaskFields
	props := map[string]notion.PropertySchema{
		f[schema.FieldTitle].Name:       {Title: &notion.EmptyObject{}},
		f[schema.FieldPriority].Name:    {Select: selectSchema(p.PriorityOptions)},
		f[schema.FieldCategory].Name:    {Select: selectSchema(p.CategoryOptions)},
		f[schema.FieldDueDate].Name:     {Date: &notion.EmptyObject{}},
		f[schema.FieldEstimate].Name:    {Number: &notion.NumberSchema{Format: "number"}},
		f[schema.FieldEnergy].Name:      {Select: selectSchema(p.EnergyOptions)},
		f[schema.FieldContext].Name:     {Select: selectSchema(p.ContextOptions)},
		f[schema.FieldDescription].Name: {RichText: &notion.EmptyObject{}},
		f[schema.FieldTags].Name:        {MultiSelect: selectSchema(p.TagOptions)},
		f[schema.FieldProgress].Name:    {Number: &notion.NumberSchema{Format: "percent"}},
	}
	// The creation API cannot declare a native status property, so both
	// profiles bootstrap status as a select.
	props[f[schema.FieldStatus].Name] = notion.PropertySchema{Select: selectSchema(p.StatusOptions)}

	title := "Tasks"
	if p.Name == constants.ProfileEmoji {
		title = "📋 Tasks"
	}
	return notion.CreateDatabaseRequest{
		Parent:     notion.Parent{Type: "page_id", PageID: parentPageID},
		Title:      notion.NewRichText(title),
		Properties: props,
	}
}

// CalendarDatabase builds the creation request for a calendar database. The
// related-task relation targets the task database, so that id must exist
// first.
func CalendarDatabase(parentPageID, taskDatabaseID string, p *schema.Profile) notion.CreateDatabaseRequest {
	f := p.CalendarFields
	props := map[string]notion.PropertySchema{
		f[schema.FieldTitle].Name:     {Title: &notion.EmptyObject{}},
		f[schema.FieldStartTime].Name: {Date: &notion.EmptyObject{}},
		f[schema.FieldEndTime].Name:   {Date: &notion.EmptyObject{}},
		f[schema.FieldAllDay].Name:    {Checkbox: &notion.EmptyObject{}},
		f[schema.FieldDuration].Name:  {Number: &notion.NumberSchema{Format: "number"}},
		f[schema.FieldEventType].Name: {Select: selectSchema([]notion.SelectOption{
			{Name: constants.EventTypeMeeting, Color: "blue"},
			{Name: constants.EventTypeAppointment, Color: "green"},
			{Name: constants.EventTypeDeadline, Color: "red"},
			{Name: constants.EventTypePersonal, Color: "purple"},
			{Name: constants.EventTypeWork, Color: "orange"},
			{Name: constants.EventTypeBreak, Color: "yellow"},
			{Name: constants.EventTypeTravel, Color: "pink"},
			{Name: constants.EventTypeReview, Color: "gray"},
		})},
		f[schema.FieldPriority].Name: {Select: selectSchema([]notion.SelectOption{
			{Name: "Urgent", Color: "red"},
			{Name: "High", Color: "orange"},
			{Name: "Medium", Color: "yellow"},
			{Name: "Low", Color: "blue"},
		})},
		f[schema.FieldStatus].Name: {Select: selectSchema([]notion.SelectOption{
			{Name: constants.EventStatusScheduled, Color: "blue"},
			{Name: constants.EventStatusConfirmed, Color: "green"},
			{Name: constants.EventStatusInProgress, Color: "yellow"},
			{Name: constants.EventStatusCompleted, Color: "gray"},
			{Name: constants.EventStatusCancelled, Color: "red"},
			{Name: constants.EventStatusPostponed, Color: "orange"},
		})},
		f[schema.FieldCategory].Name: {Select: selectSchema([]notion.SelectOption{
			{Name: "Work", Color: "blue"},
			{Name: "Personal", Color: "green"},
			{Name: "Health", Color: "red"},
			{Name: "Social", Color: "purple"},
			{Name: "Travel", Color: "pink"},
		})},
		f[schema.FieldLocation].Name:    {RichText: &notion.EmptyObject{}},
		f[schema.FieldDescription].Name: {RichText: &notion.EmptyObject{}},
		f[schema.FieldMeetingURL].Name:  {URL: &notion.EmptyObject{}},
		f[schema.FieldAttendees].Name:   {MultiSelect: selectSchema(nil)},
		f[schema.FieldReminders].Name: {MultiSelect: selectSchema([]notion.SelectOption{
			{Name: "5 minutes", Color: "gray"},
			{Name: "15 minutes", Color: "blue"},
			{Name: "30 minutes", Color: "yellow"},
			{Name: "1 hour", Color: "orange"},
			{Name: "1 day", Color: "red"},
		})},
		f[schema.FieldRecurring].Name: {Select: selectSchema([]notion.SelectOption{
			{Name: constants.RecurringNone, Color: "gray"},
			{Name: constants.RecurringDaily, Color: "blue"},
			{Name: constants.RecurringWeekly, Color: "green"},
			{Name: constants.RecurringMonthly, Color: "yellow"},
			{Name: constants.RecurringYearly, Color: "orange"},
		})},
	}
	if taskDatabaseID != "" {
		props[f[schema.FieldRelatedTask].Name] = notion.PropertySchema{
			Relation: &notion.RelationSchema{DatabaseID: taskDatabaseID},
		}
	}

	return notion.CreateDatabaseRequest{
		Parent:     notion.Parent{Type: "page_id", PageID: parentPageID},
		Title:      notion.NewRichText("Calendar"),
		Properties: props,
	}
}
