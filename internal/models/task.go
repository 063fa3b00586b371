package models

import "time"

// Task is the domain view of one task page in the remote database. The ID and
// the timestamp fields are remote-assigned and read-only; label-valued fields
// (Status, Priority, Category, EnergyLevel, Context) hold whatever label set
// the active profile configures.
type Task struct {
	ID            string     `json:"id,omitempty"`
	Title         string     `json:"title"`
	Status        string     `json:"status,omitempty"`
	Priority      string     `json:"priority,omitempty"`
	Category      string     `json:"category,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	EstimateHours *float64   `json:"estimate_hours,omitempty"`
	EnergyLevel   string     `json:"energy_level,omitempty"`
	Context       string     `json:"context,omitempty"`
	Description   string     `json:"description,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
	Progress      *int       `json:"progress,omitempty"`
	CreatedAt     time.Time  `json:"created_at,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at,omitempty"`
	SourceURL     string     `json:"source_url,omitempty"`
}

// TaskStats summarizes a task list for dashboard-style display.
type TaskStats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	InProgress     int `json:"in_progress"`
	NotStarted     int `json:"not_started"`
	Overdue        int `json:"overdue"`
	DueToday       int `json:"due_today"`
	DueThisWeek    int `json:"due_this_week"`
	CompletionRate int `json:"completion_rate"` // percent, 0-100
}
