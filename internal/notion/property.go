package notion

import (
	"encoding/json"
	"fmt"
)

// PropertyKind tags the remote representation of one property value. The
// mapper switches on it, so every kind the schema configuration can name
// must be handled there.
type PropertyKind string

const (
	KindTitle          PropertyKind = "title"
	KindRichText       PropertyKind = "rich_text"
	KindSelect         PropertyKind = "select"
	KindStatus         PropertyKind = "status"
	KindMultiSelect    PropertyKind = "multi_select"
	KindDate           PropertyKind = "date"
	KindNumber         PropertyKind = "number"
	KindCheckbox       PropertyKind = "checkbox"
	KindURL            PropertyKind = "url"
	KindRelation       PropertyKind = "relation"
	KindCreatedTime    PropertyKind = "created_time"
	KindLastEditedTime PropertyKind = "last_edited_time"
)

// TextContent is the writable payload of a rich-text run.
type TextContent struct {
	Content string `json:"content"`
}

// RichText is one run of remote rich text. Write paths populate Text; read
// paths usually carry PlainText as well.
type RichText struct {
	Type      string       `json:"type,omitempty"`
	Text      *TextContent `json:"text,omitempty"`
	PlainText string       `json:"plain_text,omitempty"`
}

// NewRichText wraps a plain string in a single-run rich-text sequence.
func NewRichText(s string) []RichText {
	return []RichText{{Text: &TextContent{Content: s}}}
}

// PlainText extracts the plain text of the first run. Multi-run rich text is
// truncated to its first run; this matches the historical behavior of the
// sync layer and keeps round-trips stable for callers that depend on it.
func PlainText(runs []RichText) string {
	if len(runs) == 0 {
		return ""
	}
	r := runs[0]
	if r.PlainText != "" {
		return r.PlainText
	}
	if r.Text != nil {
		return r.Text.Content
	}
	return ""
}

// SelectOption is one select/status/multi-select label.
type SelectOption struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// DateValue is the remote date payload. End and TimeZone are optional; an
// all-day value carries a date-only Start and no End.
type DateValue struct {
	Start    string  `json:"start"`
	End      *string `json:"end,omitempty"`
	TimeZone *string `json:"time_zone,omitempty"`
}

// RelationRef points at another page by id.
type RelationRef struct {
	ID string `json:"id"`
}

// Property is the tagged union of remote property values. Exactly one member
// matching Kind is meaningful; a zero member under a set Kind encodes the
// explicit-clear form for that type (null date, empty rich_text array, and
// so on).
type Property struct {
	Kind PropertyKind

	Title          []RichText
	RichText       []RichText
	Select         *SelectOption
	Status         *SelectOption
	MultiSelect    []SelectOption
	Date           *DateValue
	Number         *float64
	Checkbox       bool
	URL            *string
	Relation       []RelationRef
	CreatedTime    string
	LastEditedTime string
}

// MarshalJSON emits the single-key payload the remote API expects for the
// property's kind. Nil pointer members marshal as explicit nulls and nil
// slice members as empty arrays, which is the wire form of a field clear.
func (p Property) MarshalJSON() ([]byte, error) {
	body := make(map[string]interface{}, 1)
	switch p.Kind {
	case KindTitle:
		runs := p.Title
		if runs == nil {
			runs = []RichText{}
		}
		body["title"] = runs
	case KindRichText:
		runs := p.RichText
		if runs == nil {
			runs = []RichText{}
		}
		body["rich_text"] = runs
	case KindSelect:
		body["select"] = p.Select
	case KindStatus:
		body["status"] = p.Status
	case KindMultiSelect:
		opts := p.MultiSelect
		if opts == nil {
			opts = []SelectOption{}
		}
		body["multi_select"] = opts
	case KindDate:
		body["date"] = p.Date
	case KindNumber:
		body["number"] = p.Number
	case KindCheckbox:
		body["checkbox"] = p.Checkbox
	case KindURL:
		body["url"] = p.URL
	case KindRelation:
		refs := p.Relation
		if refs == nil {
			refs = []RelationRef{}
		}
		body["relation"] = refs
	default:
		return nil, fmt.Errorf("cannot serialize property kind %q", p.Kind)
	}
	return json.Marshal(body)
}

type propertyJSON struct {
	Type           string         `json:"type,omitempty"`
	Title          []RichText     `json:"title,omitempty"`
	RichText       []RichText     `json:"rich_text,omitempty"`
	Select         *SelectOption  `json:"select,omitempty"`
	Status         *SelectOption  `json:"status,omitempty"`
	MultiSelect    []SelectOption `json:"multi_select,omitempty"`
	Date           *DateValue     `json:"date,omitempty"`
	Number         *float64       `json:"number,omitempty"`
	Checkbox       *bool          `json:"checkbox,omitempty"`
	URL            *string        `json:"url,omitempty"`
	Relation       []RelationRef  `json:"relation,omitempty"`
	CreatedTime    string         `json:"created_time,omitempty"`
	LastEditedTime string         `json:"last_edited_time,omitempty"`
}

// UnmarshalJSON accepts the remote property payload. A malformed payload
// leaves the Property zero-valued instead of failing the enclosing record;
// list-view parsing degrades per field, never per page.
func (p *Property) UnmarshalJSON(data []byte) error {
	var raw propertyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		*p = Property{}
		return nil
	}

	*p = Property{
		Title:          raw.Title,
		RichText:       raw.RichText,
		Select:         raw.Select,
		Status:         raw.Status,
		MultiSelect:    raw.MultiSelect,
		Date:           raw.Date,
		Number:         raw.Number,
		URL:            raw.URL,
		Relation:       raw.Relation,
		CreatedTime:    raw.CreatedTime,
		LastEditedTime: raw.LastEditedTime,
	}
	if raw.Checkbox != nil {
		p.Checkbox = *raw.Checkbox
	}

	if raw.Type != "" {
		p.Kind = PropertyKind(raw.Type)
		return nil
	}

	// Older payloads omit the type discriminator; infer from the populated member.
	switch {
	case raw.Title != nil:
		p.Kind = KindTitle
	case raw.RichText != nil:
		p.Kind = KindRichText
	case raw.Select != nil:
		p.Kind = KindSelect
	case raw.Status != nil:
		p.Kind = KindStatus
	case raw.MultiSelect != nil:
		p.Kind = KindMultiSelect
	case raw.Date != nil:
		p.Kind = KindDate
	case raw.Number != nil:
		p.Kind = KindNumber
	case raw.Checkbox != nil:
		p.Kind = KindCheckbox
	case raw.URL != nil:
		p.Kind = KindURL
	case raw.Relation != nil:
		p.Kind = KindRelation
	case raw.CreatedTime != "":
		p.Kind = KindCreatedTime
	case raw.LastEditedTime != "":
		p.Kind = KindLastEditedTime
	}
	return nil
}
