package constants

// WorkloadLevel classifies a day's aggregate load relative to the queried range
type WorkloadLevel string

// Confidence grades a scheduling suggestion
type Confidence string

// ProfileName identifies a field-label configuration profile
type ProfileName string

const (
	AppName            = "notiplan"
	DefaultKeyringUser = "notion-credential"
	DefaultConfigPath  = "~/.config/notiplan/notiplan.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Notion API constants
	NotionBaseURL = "https://api.notion.com/v1"
	NotionVersion = "2022-06-28"

	// Profile names
	ProfilePlain ProfileName = "plain"
	ProfileEmoji ProfileName = "emoji"

	// Defaults applied when a record omits the field
	DefaultEventDurationMin = 60
	DefaultEstimateHours    = 1.0
	DefaultQueryPageSize    = 100

	// Workload classification thresholds, relative to the heaviest day in range
	LightWorkloadRatio = 0.3
	HeavyWorkloadRatio = 0.7

	WorkloadLight  WorkloadLevel = "light"
	WorkloadMedium WorkloadLevel = "medium"
	WorkloadHeavy  WorkloadLevel = "heavy"

	// Scheduling advisor constants
	SchedulingWindowDays    = 14
	MaxSuggestionCandidates = 5
	MaxSuggestions          = 3

	ConfidenceHigh     Confidence = "high"
	ConfidenceVeryHigh Confidence = "very-high"
)

// Calendar event type labels (single calendar template across profiles)
const (
	EventTypeMeeting     = "Meeting"
	EventTypeAppointment = "Appointment"
	EventTypeDeadline    = "Deadline"
	EventTypePersonal    = "Personal"
	EventTypeWork        = "Work"
	EventTypeBreak       = "Break"
	EventTypeTravel      = "Travel"
	EventTypeReview      = "Review"
)

// Calendar event status labels
const (
	EventStatusScheduled  = "Scheduled"
	EventStatusConfirmed  = "Confirmed"
	EventStatusInProgress = "In Progress"
	EventStatusCompleted  = "Completed"
	EventStatusCancelled  = "Cancelled"
	EventStatusPostponed  = "Postponed"
)

// Calendar event recurrence labels. Informational only; no expansion logic.
const (
	RecurringNone    = "None"
	RecurringDaily   = "Daily"
	RecurringWeekly  = "Weekly"
	RecurringMonthly = "Monthly"
	RecurringYearly  = "Yearly"
)
