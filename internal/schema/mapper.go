package schema

import (
	"time"

	"github.com/notiplan/notiplan/internal/constants"
	"github.com/notiplan/notiplan/internal/models"
	"github.com/notiplan/notiplan/internal/notion"
)

// DefaultTitle is applied when a remote record has no readable title.
const DefaultTitle = "Untitled"

// tzName returns the IANA zone identifier carried by t, or nil when the
// location has no transmittable name ("Local" and the empty name).
func tzName(t time.Time) *string {
	name := t.Location().String()
	if name == "" || name == "Local" {
		return nil
	}
	return &name
}

// labelProperty builds a select or status property from a label, following
// the profile's type tag for the field.
func labelProperty(kind notion.PropertyKind, name string) notion.Property {
	opt := &notion.SelectOption{Name: name}
	if kind == notion.KindStatus {
		return notion.Property{Kind: notion.KindStatus, Status: opt}
	}
	return notion.Property{Kind: notion.KindSelect, Select: opt}
}

// timedDate builds a date property with an explicit start, optional end, and
// the start's zone identifier attached.
func timedDate(start time.Time, end *time.Time) notion.Property {
	v := &notion.DateValue{Start: start.Format(time.RFC3339), TimeZone: tzName(start)}
	if end != nil {
		s := end.Format(time.RFC3339)
		v.End = &s
	}
	return notion.Property{Kind: notion.KindDate, Date: v}
}

// allDayDate builds a date property carrying only the calendar date; the
// time component and end bound are omitted at write time.
func allDayDate(start time.Time) notion.Property {
	return notion.Property{
		Kind: notion.KindDate,
		Date: &notion.DateValue{Start: start.Format(constants.DateFormat)},
	}
}

func numberProperty(n float64) notion.Property {
	return notion.Property{Kind: notion.KindNumber, Number: &n}
}

func richTextProperty(s string) notion.Property {
	return notion.Property{Kind: notion.KindRichText, RichText: notion.NewRichText(s)}
}

func multiSelectProperty(names []string) notion.Property {
	opts := make([]notion.SelectOption, 0, len(names))
	for _, n := range names {
		opts = append(opts, notion.SelectOption{Name: n})
	}
	return notion.Property{Kind: notion.KindMultiSelect, MultiSelect: opts}
}

// TaskProperties converts a domain task into the remote property bag for the
// given profile. Absent optional fields emit no property at all; a field the
// profile cannot map is an UnmappedFieldError, never a silent drop.
func TaskProperties(t models.Task, p *Profile) (notion.Properties, error) {
	props := notion.Properties{}

	set := func(f Field, prop notion.Property) error {
		m, err := p.taskMapping(f)
		if err != nil {
			return err
		}
		props[m.Name] = prop
		return nil
	}
	label := func(f Field, name string) error {
		m, err := p.taskMapping(f)
		if err != nil {
			return err
		}
		props[m.Name] = labelProperty(m.Kind, name)
		return nil
	}

	if err := set(FieldTitle, notion.Property{Kind: notion.KindTitle, Title: notion.NewRichText(t.Title)}); err != nil {
		return nil, err
	}

	status := t.Status
	if status == "" {
		status = p.DefaultStatus
	}
	if err := label(FieldStatus, status); err != nil {
		return nil, err
	}

	priority := t.Priority
	if priority == "" {
		priority = p.DefaultPriority
	}
	if err := label(FieldPriority, priority); err != nil {
		return nil, err
	}

	if t.DueDate != nil {
		if err := set(FieldDueDate, timedDate(*t.DueDate, nil)); err != nil {
			return nil, err
		}
	}
	if t.Category != "" {
		if err := label(FieldCategory, t.Category); err != nil {
			return nil, err
		}
	}
	if t.EstimateHours != nil {
		if err := set(FieldEstimate, numberProperty(*t.EstimateHours)); err != nil {
			return nil, err
		}
	}
	if t.EnergyLevel != "" {
		if err := label(FieldEnergy, t.EnergyLevel); err != nil {
			return nil, err
		}
	}
	if t.Context != "" {
		if err := label(FieldContext, t.Context); err != nil {
			return nil, err
		}
	}
	if t.Description != "" {
		if err := set(FieldDescription, richTextProperty(t.Description)); err != nil {
			return nil, err
		}
	}
	if len(t.Tags) > 0 {
		if err := set(FieldTags, multiSelectProperty(t.Tags)); err != nil {
			return nil, err
		}
	}
	if t.Progress != nil {
		if err := set(FieldProgress, numberProperty(float64(*t.Progress))); err != nil {
			return nil, err
		}
	}

	return props, nil
}

// EventProperties converts a domain calendar event into the remote property
// bag. The effective end time is derived from the duration when absent, and
// an end preceding the start falls back to the default duration.
func EventProperties(e models.CalendarEvent, p *Profile) (notion.Properties, error) {
	props := notion.Properties{}

	set := func(f Field, prop notion.Property) error {
		m, err := p.calendarMapping(f)
		if err != nil {
			return err
		}
		props[m.Name] = prop
		return nil
	}
	label := func(f Field, name string) error {
		m, err := p.calendarMapping(f)
		if err != nil {
			return err
		}
		props[m.Name] = labelProperty(m.Kind, name)
		return nil
	}

	duration := e.DurationMin
	if duration <= 0 {
		duration = constants.DefaultEventDurationMin
	}
	end := e.EffectiveEnd()
	if e.EndTime == nil {
		end = e.StartTime.Add(time.Duration(duration) * time.Minute)
	}
	if end.Before(e.StartTime) {
		duration = constants.DefaultEventDurationMin
		end = e.StartTime.Add(time.Duration(duration) * time.Minute)
	} else if e.DurationMin <= 0 && e.EndTime != nil && !e.AllDay {
		duration = int(end.Sub(e.StartTime).Minutes())
	}

	if err := set(FieldTitle, notion.Property{Kind: notion.KindTitle, Title: notion.NewRichText(e.Title)}); err != nil {
		return nil, err
	}

	if e.AllDay {
		if err := set(FieldStartTime, allDayDate(e.StartTime)); err != nil {
			return nil, err
		}
	} else {
		if err := set(FieldStartTime, timedDate(e.StartTime, &end)); err != nil {
			return nil, err
		}
		if err := set(FieldEndTime, timedDate(end, nil)); err != nil {
			return nil, err
		}
	}

	if err := set(FieldAllDay, notion.Property{Kind: notion.KindCheckbox, Checkbox: e.AllDay}); err != nil {
		return nil, err
	}

	eventType := e.EventType
	if eventType == "" {
		eventType = constants.EventTypeMeeting
	}
	if err := label(FieldEventType, eventType); err != nil {
		return nil, err
	}

	priority := e.Priority
	if priority == "" {
		priority = "Medium"
	}
	if err := label(FieldPriority, priority); err != nil {
		return nil, err
	}

	status := e.Status
	if status == "" {
		status = constants.EventStatusScheduled
	}
	if err := label(FieldStatus, status); err != nil {
		return nil, err
	}

	if err := set(FieldDuration, numberProperty(float64(duration))); err != nil {
		return nil, err
	}

	if e.Category != "" {
		if err := label(FieldCategory, e.Category); err != nil {
			return nil, err
		}
	}

	recurring := e.Recurring
	if recurring == "" {
		recurring = constants.RecurringNone
	}
	if err := label(FieldRecurring, recurring); err != nil {
		return nil, err
	}

	if e.Location != "" {
		if err := set(FieldLocation, richTextProperty(e.Location)); err != nil {
			return nil, err
		}
	}
	if e.Description != "" {
		if err := set(FieldDescription, richTextProperty(e.Description)); err != nil {
			return nil, err
		}
	}
	if e.MeetingURL != "" {
		u := e.MeetingURL
		if err := set(FieldMeetingURL, notion.Property{Kind: notion.KindURL, URL: &u}); err != nil {
			return nil, err
		}
	}
	if len(e.Attendees) > 0 {
		if err := set(FieldAttendees, multiSelectProperty(e.Attendees)); err != nil {
			return nil, err
		}
	}
	if len(e.Reminders) > 0 {
		if err := set(FieldReminders, multiSelectProperty(e.Reminders)); err != nil {
			return nil, err
		}
	}
	if e.RelatedTaskID != "" {
		if err := set(FieldRelatedTask, notion.Property{
			Kind:     notion.KindRelation,
			Relation: []notion.RelationRef{{ID: e.RelatedTaskID}},
		}); err != nil {
			return nil, err
		}
	}

	return props, nil
}

// parseRemoteTime parses a remote date string, accepting both timestamp and
// date-only forms. The second result reports the date-only case. Date-only
// values carry no offset, so they resolve to midnight in loc: the calendar
// date the record names must stay the same calendar date after parsing.
func parseRemoteTime(s string, loc *time.Location) (time.Time, bool, bool) {
	if s == "" {
		return time.Time{}, false, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, false, true
	}
	if t, err := time.ParseInLocation(constants.DateFormat, s, loc); err == nil {
		return t, true, true
	}
	return time.Time{}, false, false
}

// labelFrom reads a select or status property's label, whichever is present.
func labelFrom(prop notion.Property) string {
	if prop.Select != nil {
		return prop.Select.Name
	}
	if prop.Status != nil {
		return prop.Status.Name
	}
	return ""
}

// TaskFromPage parses a remote page back into a domain task. It never fails:
// every field degrades to its documented default when the property is absent
// or malformed, so one bad property cannot blank a whole list view.
// Date-only due dates resolve to midnight in loc (nil means the system zone).
func TaskFromPage(page notion.Page, p *Profile, loc *time.Location) models.Task {
	if loc == nil {
		loc = time.Local
	}
	t := models.Task{
		ID:        page.ID,
		CreatedAt: page.CreatedTime,
		UpdatedAt: page.LastEditedTime,
		SourceURL: page.URL,
	}

	get := func(f Field) (notion.Property, bool) {
		m, ok := p.TaskFields[f]
		if !ok {
			return notion.Property{}, false
		}
		prop, ok := page.Properties[m.Name]
		return prop, ok
	}

	t.Title = DefaultTitle
	if prop, ok := get(FieldTitle); ok {
		if s := notion.PlainText(prop.Title); s != "" {
			t.Title = s
		}
	}

	t.Status = p.DefaultStatus
	if prop, ok := get(FieldStatus); ok {
		if s := labelFrom(prop); s != "" {
			t.Status = s
		}
	}

	t.Priority = p.DefaultPriority
	if prop, ok := get(FieldPriority); ok {
		if s := labelFrom(prop); s != "" {
			t.Priority = s
		}
	}

	if prop, ok := get(FieldCategory); ok {
		t.Category = labelFrom(prop)
	}
	if prop, ok := get(FieldEnergy); ok {
		t.EnergyLevel = labelFrom(prop)
	}
	if prop, ok := get(FieldContext); ok {
		t.Context = labelFrom(prop)
	}

	if prop, ok := get(FieldDueDate); ok && prop.Date != nil {
		if due, _, ok := parseRemoteTime(prop.Date.Start, loc); ok {
			t.DueDate = &due
		}
	}

	if prop, ok := get(FieldEstimate); ok && prop.Number != nil {
		est := *prop.Number
		t.EstimateHours = &est
	}

	if prop, ok := get(FieldDescription); ok {
		t.Description = notion.PlainText(prop.RichText)
	}

	if prop, ok := get(FieldTags); ok {
		for _, opt := range prop.MultiSelect {
			t.Tags = append(t.Tags, opt.Name)
		}
	}

	if prop, ok := get(FieldProgress); ok && prop.Number != nil {
		progress := int(*prop.Number)
		t.Progress = &progress
	}

	return t
}

// EventFromPage parses a remote page back into a domain calendar event,
// degrading to defaults the same way TaskFromPage does. All-day records are
// read with end-of-day semantics in loc; an end preceding the start resets
// the duration to the configured default.
func EventFromPage(page notion.Page, p *Profile, loc *time.Location) models.CalendarEvent {
	if loc == nil {
		loc = time.Local
	}
	e := models.CalendarEvent{
		ID:        page.ID,
		CreatedAt: page.CreatedTime,
		UpdatedAt: page.LastEditedTime,
		SourceURL: page.URL,
	}

	get := func(f Field) (notion.Property, bool) {
		m, ok := p.CalendarFields[f]
		if !ok {
			return notion.Property{}, false
		}
		prop, ok := page.Properties[m.Name]
		return prop, ok
	}

	e.Title = DefaultTitle
	if prop, ok := get(FieldTitle); ok {
		if s := notion.PlainText(prop.Title); s != "" {
			e.Title = s
		}
	}

	if prop, ok := get(FieldAllDay); ok {
		e.AllDay = prop.Checkbox
	}

	var startEnd *string
	if prop, ok := get(FieldStartTime); ok && prop.Date != nil {
		if start, _, ok := parseRemoteTime(prop.Date.Start, loc); ok {
			e.StartTime = start
		}
		startEnd = prop.Date.End
	}

	if prop, ok := get(FieldEndTime); ok && prop.Date != nil {
		if end, _, ok := parseRemoteTime(prop.Date.Start, loc); ok {
			e.EndTime = &end
		}
	}
	if e.EndTime == nil && startEnd != nil {
		if end, _, ok := parseRemoteTime(*startEnd, loc); ok {
			e.EndTime = &end
		}
	}

	if prop, ok := get(FieldDuration); ok && prop.Number != nil {
		e.DurationMin = int(*prop.Number)
	}

	switch {
	case e.AllDay:
		end := e.StartTime.AddDate(0, 0, 1).Add(-time.Second)
		e.EndTime = &end
		e.DurationMin = 24 * 60
	case e.EndTime != nil && e.EndTime.Before(e.StartTime):
		e.DurationMin = constants.DefaultEventDurationMin
		end := e.StartTime.Add(constants.DefaultEventDurationMin * time.Minute)
		e.EndTime = &end
	case e.DurationMin <= 0 && e.EndTime != nil:
		e.DurationMin = int(e.EndTime.Sub(e.StartTime).Minutes())
	case e.DurationMin <= 0:
		e.DurationMin = constants.DefaultEventDurationMin
	}

	e.EventType = constants.EventTypeMeeting
	if prop, ok := get(FieldEventType); ok {
		if s := labelFrom(prop); s != "" {
			e.EventType = s
		}
	}

	e.Priority = "Medium"
	if prop, ok := get(FieldPriority); ok {
		if s := labelFrom(prop); s != "" {
			e.Priority = s
		}
	}

	e.Status = constants.EventStatusScheduled
	if prop, ok := get(FieldStatus); ok {
		if s := labelFrom(prop); s != "" {
			e.Status = s
		}
	}

	if prop, ok := get(FieldCategory); ok {
		e.Category = labelFrom(prop)
	}

	e.Recurring = constants.RecurringNone
	if prop, ok := get(FieldRecurring); ok {
		if s := labelFrom(prop); s != "" {
			e.Recurring = s
		}
	}

	if prop, ok := get(FieldLocation); ok {
		e.Location = notion.PlainText(prop.RichText)
	}
	if prop, ok := get(FieldDescription); ok {
		e.Description = notion.PlainText(prop.RichText)
	}
	if prop, ok := get(FieldMeetingURL); ok && prop.URL != nil {
		e.MeetingURL = *prop.URL
	}
	if prop, ok := get(FieldAttendees); ok {
		for _, opt := range prop.MultiSelect {
			e.Attendees = append(e.Attendees, opt.Name)
		}
	}
	if prop, ok := get(FieldReminders); ok {
		for _, opt := range prop.MultiSelect {
			e.Reminders = append(e.Reminders, opt.Name)
		}
	}
	if prop, ok := get(FieldRelatedTask); ok && len(prop.Relation) > 0 {
		// Kept as-is even if the referenced task no longer exists.
		e.RelatedTaskID = prop.Relation[0].ID
	}

	return e
}
