package schema

import (
	"fmt"

	"github.com/notiplan/notiplan/internal/constants"
	apperrors "github.com/notiplan/notiplan/internal/errors"
	"github.com/notiplan/notiplan/internal/notion"
)

// Field is a logical domain field name. The profile maps each field to its
// remote property key and type tag; nothing outside this package hard-codes
// a remote property name.
type Field string

// Task fields
const (
	FieldTitle       Field = "title"
	FieldStatus      Field = "status"
	FieldPriority    Field = "priority"
	FieldCategory    Field = "category"
	FieldDueDate     Field = "dueDate"
	FieldEstimate    Field = "estimateHours"
	FieldEnergy      Field = "energyLevel"
	FieldContext     Field = "context"
	FieldDescription Field = "description"
	FieldTags        Field = "tags"
	FieldProgress    Field = "progress"
)

// Calendar event fields
const (
	FieldStartTime   Field = "startTime"
	FieldEndTime     Field = "endTime"
	FieldAllDay      Field = "allDay"
	FieldDuration    Field = "durationMinutes"
	FieldEventType   Field = "eventType"
	FieldLocation    Field = "location"
	FieldMeetingURL  Field = "meetingUrl"
	FieldAttendees   Field = "attendees"
	FieldReminders   Field = "reminders"
	FieldRecurring   Field = "recurring"
	FieldRelatedTask Field = "relatedTaskId"
)

// Mapping pairs a remote property name with its type tag.
type Mapping struct {
	Name string
	Kind notion.PropertyKind
}

// Profile is one field-label configuration: the full field-name table for
// the task and calendar databases plus the default labels applied when a
// remote record omits a field. Profiles are swappable at setup time; mapping
// logic is never duplicated per profile.
type Profile struct {
	Name constants.ProfileName

	TaskFields     map[Field]Mapping
	CalendarFields map[Field]Mapping

	DefaultStatus    string
	CompletedStatus  string
	InProgressStatus string
	DefaultPriority  string
	HighEnergy       string

	StatusOptions   []notion.SelectOption
	PriorityOptions []notion.SelectOption
	CategoryOptions []notion.SelectOption
	EnergyOptions   []notion.SelectOption
	ContextOptions  []notion.SelectOption
	TagOptions      []notion.SelectOption
}

// calendarFields is shared by both profiles; the calendar database has a
// single template in both configurations.
func calendarFields() map[Field]Mapping {
	return map[Field]Mapping{
		FieldTitle:       {Name: "Event Title", Kind: notion.KindTitle},
		FieldStartTime:   {Name: "Start Time", Kind: notion.KindDate},
		FieldEndTime:     {Name: "End Time", Kind: notion.KindDate},
		FieldAllDay:      {Name: "All Day", Kind: notion.KindCheckbox},
		FieldDuration:    {Name: "Duration (minutes)", Kind: notion.KindNumber},
		FieldEventType:   {Name: "Event Type", Kind: notion.KindSelect},
		FieldPriority:    {Name: "Priority", Kind: notion.KindSelect},
		FieldStatus:      {Name: "Status", Kind: notion.KindSelect},
		FieldCategory:    {Name: "Category", Kind: notion.KindSelect},
		FieldLocation:    {Name: "Location", Kind: notion.KindRichText},
		FieldDescription: {Name: "Description", Kind: notion.KindRichText},
		FieldMeetingURL:  {Name: "Meeting URL", Kind: notion.KindURL},
		FieldAttendees:   {Name: "Attendees", Kind: notion.KindMultiSelect},
		FieldReminders:   {Name: "Reminders", Kind: notion.KindMultiSelect},
		FieldRecurring:   {Name: "Recurring", Kind: notion.KindSelect},
		FieldRelatedTask: {Name: "Related Task", Kind: notion.KindRelation},
	}
}

// Plain returns the plain-ASCII label profile. Its task database stores
// status in a native status property.
func Plain() *Profile {
	return &Profile{
		Name: constants.ProfilePlain,
		TaskFields: map[Field]Mapping{
			FieldTitle:       {Name: "Task", Kind: notion.KindTitle},
			FieldStatus:      {Name: "Status", Kind: notion.KindStatus},
			FieldPriority:    {Name: "Priority", Kind: notion.KindSelect},
			FieldCategory:    {Name: "Category", Kind: notion.KindSelect},
			FieldDueDate:     {Name: "Due Date", Kind: notion.KindDate},
			FieldEstimate:    {Name: "Estimate", Kind: notion.KindNumber},
			FieldEnergy:      {Name: "Energy Level", Kind: notion.KindSelect},
			FieldContext:     {Name: "Context", Kind: notion.KindSelect},
			FieldDescription: {Name: "Description", Kind: notion.KindRichText},
			FieldTags:        {Name: "Tags", Kind: notion.KindMultiSelect},
			FieldProgress:    {Name: "Progress", Kind: notion.KindNumber},
		},
		CalendarFields:   calendarFields(),
		DefaultStatus:    "Not started",
		CompletedStatus:  "Completed",
		InProgressStatus: "In progress",
		DefaultPriority:  "Medium",
		HighEnergy:       "High",
		StatusOptions: []notion.SelectOption{
			{Name: "Not started", Color: "gray"},
			{Name: "In progress", Color: "yellow"},
			{Name: "On hold", Color: "orange"},
			{Name: "Completed", Color: "green"},
		},
		PriorityOptions: []notion.SelectOption{
			{Name: "Urgent", Color: "red"},
			{Name: "High", Color: "orange"},
			{Name: "Medium", Color: "yellow"},
			{Name: "Low", Color: "blue"},
		},
		CategoryOptions: []notion.SelectOption{
			{Name: "Work", Color: "blue"},
			{Name: "Personal", Color: "green"},
			{Name: "Project", Color: "purple"},
			{Name: "Learning", Color: "yellow"},
			{Name: "Health", Color: "red"},
		},
		EnergyOptions: []notion.SelectOption{
			{Name: "High", Color: "red"},
			{Name: "Medium", Color: "yellow"},
			{Name: "Low", Color: "green"},
		},
		ContextOptions: []notion.SelectOption{
			{Name: "Computer", Color: "blue"},
			{Name: "Phone", Color: "green"},
			{Name: "Office", Color: "orange"},
			{Name: "Home", Color: "purple"},
			{Name: "Errands", Color: "red"},
		},
		TagOptions: []notion.SelectOption{
			{Name: "urgent", Color: "red"},
			{Name: "important", Color: "orange"},
			{Name: "quick-win", Color: "green"},
			{Name: "blocked", Color: "gray"},
			{Name: "waiting", Color: "blue"},
		},
	}
}

// Emoji returns the emoji-prefixed label profile. Its task database template
// predates native status properties and stores status as a plain select.
func Emoji() *Profile {
	return &Profile{
		Name: constants.ProfileEmoji,
		TaskFields: map[Field]Mapping{
			FieldTitle:       {Name: "Task", Kind: notion.KindTitle},
			FieldStatus:      {Name: "Status", Kind: notion.KindSelect},
			FieldPriority:    {Name: "Priority", Kind: notion.KindSelect},
			FieldCategory:    {Name: "Category", Kind: notion.KindSelect},
			FieldDueDate:     {Name: "Due Date", Kind: notion.KindDate},
			FieldEstimate:    {Name: "Estimate", Kind: notion.KindNumber},
			FieldEnergy:      {Name: "Energy", Kind: notion.KindSelect},
			FieldContext:     {Name: "Context", Kind: notion.KindSelect},
			FieldDescription: {Name: "Description", Kind: notion.KindRichText},
			FieldTags:        {Name: "Tags", Kind: notion.KindMultiSelect},
			FieldProgress:    {Name: "Progress", Kind: notion.KindNumber},
		},
		CalendarFields:   calendarFields(),
		DefaultStatus:    "📋 Not Started",
		CompletedStatus:  "✅ Completed",
		InProgressStatus: "🚀 In Progress",
		DefaultPriority:  "📊 Medium",
		HighEnergy:       "🔋 High Energy",
		StatusOptions: []notion.SelectOption{
			{Name: "📋 Not Started", Color: "gray"},
			{Name: "🚀 In Progress", Color: "yellow"},
			{Name: "⏸️ On Hold", Color: "orange"},
			{Name: "🔄 In Review", Color: "blue"},
			{Name: "✅ Completed", Color: "green"},
			{Name: "❌ Cancelled", Color: "red"},
		},
		PriorityOptions: []notion.SelectOption{
			{Name: "🔥 Urgent", Color: "red"},
			{Name: "⚡ High", Color: "orange"},
			{Name: "📊 Medium", Color: "yellow"},
			{Name: "📝 Low", Color: "blue"},
			{Name: "❄️ Someday", Color: "gray"},
		},
		CategoryOptions: []notion.SelectOption{
			{Name: "💼 Work", Color: "blue"},
			{Name: "🏠 Personal", Color: "green"},
			{Name: "🎯 Project", Color: "purple"},
			{Name: "📚 Learning", Color: "yellow"},
			{Name: "🏃 Health", Color: "red"},
			{Name: "💰 Finance", Color: "orange"},
		},
		EnergyOptions: []notion.SelectOption{
			{Name: "🔋 High Energy", Color: "red"},
			{Name: "⚡ Medium Energy", Color: "yellow"},
			{Name: "🪫 Low Energy", Color: "green"},
		},
		ContextOptions: []notion.SelectOption{
			{Name: "💻 Computer", Color: "blue"},
			{Name: "📱 Phone", Color: "green"},
			{Name: "🏢 Office", Color: "orange"},
			{Name: "🏠 Home", Color: "purple"},
			{Name: "🚗 Errands", Color: "red"},
		},
		TagOptions: []notion.SelectOption{
			{Name: "urgent", Color: "red"},
			{Name: "important", Color: "orange"},
			{Name: "quick-win", Color: "green"},
			{Name: "blocked", Color: "gray"},
			{Name: "waiting", Color: "blue"},
		},
	}
}

// ByName resolves a profile from its persisted configuration name.
func ByName(name constants.ProfileName) (*Profile, error) {
	switch name {
	case constants.ProfilePlain:
		return Plain(), nil
	case constants.ProfileEmoji:
		return Emoji(), nil
	default:
		return nil, fmt.Errorf("unknown profile %q", name)
	}
}

func (p *Profile) taskMapping(f Field) (Mapping, error) {
	m, ok := p.TaskFields[f]
	if !ok {
		return Mapping{}, &apperrors.UnmappedFieldError{Field: string(f), Profile: string(p.Name)}
	}
	return m, nil
}

func (p *Profile) calendarMapping(f Field) (Mapping, error) {
	m, ok := p.CalendarFields[f]
	if !ok {
		return Mapping{}, &apperrors.UnmappedFieldError{Field: string(f), Profile: string(p.Name)}
	}
	return m, nil
}
