package models

import "time"

// CalendarEvent is the domain view of one event page in the calendar database.
// EndTime is derived from StartTime + DurationMin when the remote record omits
// it. RelatedTaskID is a back-reference to a Task page; it is stored as-is and
// never verified on read, so a dangling id is possible.
type CalendarEvent struct {
	ID            string     `json:"id,omitempty"`
	Title         string     `json:"title"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	AllDay        bool       `json:"all_day"`
	DurationMin   int        `json:"duration_min"`
	EventType     string     `json:"event_type,omitempty"`
	Priority      string     `json:"priority,omitempty"`
	Category      string     `json:"category,omitempty"`
	Status        string     `json:"status,omitempty"`
	Location      string     `json:"location,omitempty"`
	MeetingURL    string     `json:"meeting_url,omitempty"`
	Attendees     []string   `json:"attendees,omitempty"`
	Reminders     []string   `json:"reminders,omitempty"`
	Recurring     string     `json:"recurring,omitempty"`
	Description   string     `json:"description,omitempty"`
	RelatedTaskID string     `json:"related_task_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at,omitempty"`
	SourceURL     string     `json:"source_url,omitempty"`
}

// EffectiveEnd returns the event's end time, deriving it from the duration
// when no explicit end is stored.
func (e *CalendarEvent) EffectiveEnd() time.Time {
	if e.EndTime != nil {
		return *e.EndTime
	}
	return e.StartTime.Add(time.Duration(e.DurationMin) * time.Minute)
}
