package models

import "github.com/notiplan/notiplan/internal/constants"

// Config is the persisted sync configuration: which label profile is active,
// which remote databases to target, and cached workspace metadata. The token
// itself lives in the OS keyring, never here.
type Config struct {
	Profile            constants.ProfileName `json:"profile"`
	TaskDatabaseID     string                `json:"task_database_id"`
	CalendarDatabaseID string                `json:"calendar_database_id"`
	WorkspaceID        string                `json:"workspace_id"`
	WorkspaceName      string                `json:"workspace_name,omitempty"`
	Timezone           string                `json:"timezone"` // IANA name, or "Local" for the system timezone
}
