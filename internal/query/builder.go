// Package query translates high-level list filters into the remote
// query-filter grammar. The grammar has no IN construct and no implicit
// grouping, so multi-value matches become disjunctions of equality leaves
// and independent groups are conjoined explicitly. A single surviving
// condition is sent bare, never wrapped in a one-element group.
package query

import (
	"time"

	"github.com/notiplan/notiplan/internal/notion"
	"github.com/notiplan/notiplan/internal/schema"
)

// DateRange bounds a date property inclusively. Either side may be nil.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Filter is the high-level list filter. Empty members contribute nothing to
// the remote expression; an entirely empty filter sends no filter at all.
type Filter struct {
	Status    []string
	Priority  []string
	Category  []string
	EventType []string
	Search    string
	DateRange *DateRange
}

// SortField names a sortable key. CreatedTime and UpdatedTime sort on record
// timestamps; the rest sort on mapped properties.
type SortField string

const (
	SortCreatedTime SortField = "createdTime"
	SortUpdatedTime SortField = "updatedTime"
	SortDueDate     SortField = "dueDate"
	SortStartTime   SortField = "startTime"
	SortPriority    SortField = "priority"
	SortTitle       SortField = "title"
)

// SortSpec is one sort key with its direction.
type SortSpec struct {
	Field      SortField
	Descending bool
}

func labelLeaf(m schema.Mapping, value string) notion.Filter {
	cond := &notion.SelectCondition{Equals: value}
	if m.Kind == notion.KindStatus {
		return notion.Filter{Property: m.Name, Status: cond}
	}
	return notion.Filter{Property: m.Name, Select: cond}
}

// labelGroup folds a value list into a single filter node: one value is a
// bare equality, several become a disjunction.
func labelGroup(m schema.Mapping, values []string) *notion.Filter {
	switch len(values) {
	case 0:
		return nil
	case 1:
		leaf := labelLeaf(m, values[0])
		return &leaf
	default:
		leaves := make([]notion.Filter, 0, len(values))
		for _, v := range values {
			leaves = append(leaves, labelLeaf(m, v))
		}
		return &notion.Filter{Or: leaves}
	}
}

func dateGroup(m schema.Mapping, r *DateRange) *notion.Filter {
	if r == nil || (r.Start == nil && r.End == nil) {
		return nil
	}
	cond := &notion.DateCondition{}
	if r.Start != nil {
		cond.OnOrAfter = r.Start.Format(time.RFC3339)
	}
	if r.End != nil {
		cond.OnOrBefore = r.End.Format(time.RFC3339)
	}
	return &notion.Filter{Property: m.Name, Date: cond}
}

// searchGroup matches the term against the title and, when the profile maps
// one, the description.
func searchGroup(title schema.Mapping, description *schema.Mapping, term string) *notion.Filter {
	if term == "" {
		return nil
	}
	leaves := []notion.Filter{
		{Property: title.Name, Title: &notion.TextCondition{Contains: term}},
	}
	if description != nil {
		leaves = append(leaves, notion.Filter{
			Property: description.Name,
			RichText: &notion.TextCondition{Contains: term},
		})
	}
	if len(leaves) == 1 {
		return &leaves[0]
	}
	return &notion.Filter{Or: leaves}
}

func combine(groups []*notion.Filter) *notion.Filter {
	kept := make([]*notion.Filter, 0, len(groups))
	for _, g := range groups {
		if g != nil {
			kept = append(kept, g)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	default:
		all := make([]notion.Filter, 0, len(kept))
		for _, g := range kept {
			all = append(all, *g)
		}
		return &notion.Filter{And: all}
	}
}

// Tasks builds a task-database filter for the profile. A nil result means
// the query should carry no filter.
func Tasks(f Filter, p *schema.Profile) *notion.Filter {
	var groups []*notion.Filter
	if m, ok := p.TaskFields[schema.FieldStatus]; ok {
		groups = append(groups, labelGroup(m, f.Status))
	}
	if m, ok := p.TaskFields[schema.FieldPriority]; ok {
		groups = append(groups, labelGroup(m, f.Priority))
	}
	if m, ok := p.TaskFields[schema.FieldCategory]; ok {
		groups = append(groups, labelGroup(m, f.Category))
	}
	if m, ok := p.TaskFields[schema.FieldDueDate]; ok {
		groups = append(groups, dateGroup(m, f.DateRange))
	}
	if title, ok := p.TaskFields[schema.FieldTitle]; ok {
		var desc *schema.Mapping
		if m, ok := p.TaskFields[schema.FieldDescription]; ok {
			desc = &m
		}
		groups = append(groups, searchGroup(title, desc, f.Search))
	}
	return combine(groups)
}

// Events builds a calendar-database filter. The date range applies to the
// event start time.
func Events(f Filter, p *schema.Profile) *notion.Filter {
	var groups []*notion.Filter
	if m, ok := p.CalendarFields[schema.FieldStatus]; ok {
		groups = append(groups, labelGroup(m, f.Status))
	}
	if m, ok := p.CalendarFields[schema.FieldPriority]; ok {
		groups = append(groups, labelGroup(m, f.Priority))
	}
	if m, ok := p.CalendarFields[schema.FieldCategory]; ok {
		groups = append(groups, labelGroup(m, f.Category))
	}
	if m, ok := p.CalendarFields[schema.FieldEventType]; ok {
		groups = append(groups, labelGroup(m, f.EventType))
	}
	if m, ok := p.CalendarFields[schema.FieldStartTime]; ok {
		groups = append(groups, dateGroup(m, f.DateRange))
	}
	if title, ok := p.CalendarFields[schema.FieldTitle]; ok {
		var desc *schema.Mapping
		if m, ok := p.CalendarFields[schema.FieldDescription]; ok {
			desc = &m
		}
		groups = append(groups, searchGroup(title, desc, f.Search))
	}
	return combine(groups)
}

func sortFor(spec SortSpec, fields map[schema.Field]schema.Mapping, fieldFor map[SortField]schema.Field) (notion.Sort, bool) {
	direction := "ascending"
	if spec.Descending {
		direction = "descending"
	}
	switch spec.Field {
	case SortCreatedTime:
		return notion.Sort{Timestamp: "created_time", Direction: direction}, true
	case SortUpdatedTime:
		return notion.Sort{Timestamp: "last_edited_time", Direction: direction}, true
	}
	f, ok := fieldFor[spec.Field]
	if !ok {
		return notion.Sort{}, false
	}
	m, ok := fields[f]
	if !ok {
		return notion.Sort{}, false
	}
	return notion.Sort{Property: m.Name, Direction: direction}, true
}

var taskSortFields = map[SortField]schema.Field{
	SortDueDate:  schema.FieldDueDate,
	SortPriority: schema.FieldPriority,
	SortTitle:    schema.FieldTitle,
}

var eventSortFields = map[SortField]schema.Field{
	SortStartTime: schema.FieldStartTime,
	SortPriority:  schema.FieldPriority,
	SortTitle:     schema.FieldTitle,
}

// TaskSorts resolves sort specs against the profile. With no specs the
// default ordering is due date ascending, then priority descending.
func TaskSorts(specs []SortSpec, p *schema.Profile) []notion.Sort {
	if len(specs) == 0 {
		specs = []SortSpec{{Field: SortDueDate}, {Field: SortPriority, Descending: true}}
	}
	sorts := make([]notion.Sort, 0, len(specs))
	for _, spec := range specs {
		if s, ok := sortFor(spec, p.TaskFields, taskSortFields); ok {
			sorts = append(sorts, s)
		}
	}
	return sorts
}

// EventSorts resolves sort specs against the profile. With no specs events
// order by start time ascending.
func EventSorts(specs []SortSpec, p *schema.Profile) []notion.Sort {
	if len(specs) == 0 {
		specs = []SortSpec{{Field: SortStartTime}}
	}
	sorts := make([]notion.Sort, 0, len(specs))
	for _, spec := range specs {
		if s, ok := sortFor(spec, p.CalendarFields, eventSortFields); ok {
			sorts = append(sorts, s)
		}
	}
	return sorts
}
