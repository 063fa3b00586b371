package notion

import "time"

// Properties is one record's property bag keyed by remote property name.
type Properties map[string]Property

// Parent locates a page or database inside the workspace.
type Parent struct {
	Type       string `json:"type,omitempty"`
	DatabaseID string `json:"database_id,omitempty"`
	PageID     string `json:"page_id,omitempty"`
}

// Page is one typed record ("page") inside a remote database.
type Page struct {
	ID             string     `json:"id"`
	CreatedTime    time.Time  `json:"created_time"`
	LastEditedTime time.Time  `json:"last_edited_time"`
	Archived       bool       `json:"archived"`
	URL            string     `json:"url"`
	Parent         *Parent    `json:"parent,omitempty"`
	Properties     Properties `json:"properties"`
}

// CreatePageRequest creates one record in a database.
type CreatePageRequest struct {
	Parent     Parent     `json:"parent"`
	Properties Properties `json:"properties"`
}

// UpdatePageRequest mutates an existing record. Only the properties present
// in the map are transmitted; Archived toggles the logical-delete flag.
type UpdatePageRequest struct {
	Properties Properties `json:"properties,omitempty"`
	Archived   *bool      `json:"archived,omitempty"`
}

// TextCondition matches title or rich_text properties.
type TextCondition struct {
	Equals   string `json:"equals,omitempty"`
	Contains string `json:"contains,omitempty"`
}

// SelectCondition matches select and status properties.
type SelectCondition struct {
	Equals string `json:"equals,omitempty"`
}

// DateCondition matches date properties with inclusive bounds.
type DateCondition struct {
	OnOrAfter  string `json:"on_or_after,omitempty"`
	OnOrBefore string `json:"on_or_before,omitempty"`
}

// Filter is one node of the remote query-filter expression tree. A leaf sets
// Property plus exactly one condition member; a branch sets Or or And. The
// grammar has no IN construct, so multi-value matches are disjunctions of
// equality leaves.
type Filter struct {
	Property string           `json:"property,omitempty"`
	Title    *TextCondition   `json:"title,omitempty"`
	RichText *TextCondition   `json:"rich_text,omitempty"`
	Select   *SelectCondition `json:"select,omitempty"`
	Status   *SelectCondition `json:"status,omitempty"`
	Date     *DateCondition   `json:"date,omitempty"`
	Or       []Filter         `json:"or,omitempty"`
	And      []Filter         `json:"and,omitempty"`
}

// Sort is one sort key. Property sorts name a property; createdTime and
// updatedTime sorts use the Timestamp member instead.
type Sort struct {
	Property  string `json:"property,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Direction string `json:"direction"`
}

// QueryRequest is the body of a database query.
type QueryRequest struct {
	Filter      *Filter `json:"filter,omitempty"`
	Sorts       []Sort  `json:"sorts,omitempty"`
	PageSize    int     `json:"page_size,omitempty"`
	StartCursor string  `json:"start_cursor,omitempty"`
}

// QueryResponse is the result page of a database query.
type QueryResponse struct {
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor,omitempty"`
}

// SearchFilter narrows a workspace search to one object type.
type SearchFilter struct {
	Value    string `json:"value"`
	Property string `json:"property"`
}

// SearchRequest searches the workspace by title.
type SearchRequest struct {
	Query  string        `json:"query,omitempty"`
	Filter *SearchFilter `json:"filter,omitempty"`
}

// Database describes one schema-defined container.
type Database struct {
	ID             string     `json:"id"`
	CreatedTime    time.Time  `json:"created_time"`
	LastEditedTime time.Time  `json:"last_edited_time"`
	Title          []RichText `json:"title"`
	URL            string     `json:"url"`
}

// SearchResponse lists matching databases.
type SearchResponse struct {
	Results    []Database `json:"results"`
	HasMore    bool       `json:"has_more"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

// EmptyObject marshals as {} for schema declarations that carry no options.
type EmptyObject struct{}

// NumberSchema declares a number property's display format.
type NumberSchema struct {
	Format string `json:"format,omitempty"`
}

// SelectSchema declares the option list of a select or multi-select property.
type SelectSchema struct {
	Options []SelectOption `json:"options,omitempty"`
}

// RelationSchema declares a relation property targeting another database.
type RelationSchema struct {
	DatabaseID     string      `json:"database_id"`
	SingleProperty EmptyObject `json:"single_property"`
}

// PropertySchema declares one property in a database-creation request.
// Exactly one member is set.
type PropertySchema struct {
	Title          *EmptyObject    `json:"title,omitempty"`
	RichText       *EmptyObject    `json:"rich_text,omitempty"`
	Number         *NumberSchema   `json:"number,omitempty"`
	Select         *SelectSchema   `json:"select,omitempty"`
	MultiSelect    *SelectSchema   `json:"multi_select,omitempty"`
	Date           *EmptyObject    `json:"date,omitempty"`
	Checkbox       *EmptyObject    `json:"checkbox,omitempty"`
	URL            *EmptyObject    `json:"url,omitempty"`
	Relation       *RelationSchema `json:"relation,omitempty"`
	CreatedTime    *EmptyObject    `json:"created_time,omitempty"`
	LastEditedTime *EmptyObject    `json:"last_edited_time,omitempty"`
}

// CreateDatabaseRequest provisions a new database under a parent page.
type CreateDatabaseRequest struct {
	Parent     Parent                    `json:"parent"`
	Title      []RichText                `json:"title"`
	Properties map[string]PropertySchema `json:"properties"`
}
