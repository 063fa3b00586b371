package schema

import (
	"fmt"
	"time"

	apperrors "github.com/notiplan/notiplan/internal/errors"
	"github.com/notiplan/notiplan/internal/notion"
)

type clearSentinel struct{}

// Clear marks a patch field for explicit erasure on the remote record. A
// field absent from the patch is left untouched; a field set to Clear is
// written with the property's empty form.
var Clear = clearSentinel{}

// Patch is a partial update keyed by domain field. Values follow the field's
// domain type (string, *time.Time / time.Time, float64, int, bool, []string,
// models types), or Clear.
type Patch map[Field]interface{}

// clearProperty returns the wire form that erases a property of the given
// kind: null for scalars, an empty array for list-valued kinds.
func clearProperty(kind notion.PropertyKind) notion.Property {
	switch kind {
	case notion.KindTitle:
		return notion.Property{Kind: kind, Title: []notion.RichText{}}
	case notion.KindRichText:
		return notion.Property{Kind: kind, RichText: []notion.RichText{}}
	case notion.KindMultiSelect:
		return notion.Property{Kind: kind, MultiSelect: []notion.SelectOption{}}
	case notion.KindRelation:
		return notion.Property{Kind: kind, Relation: []notion.RelationRef{}}
	default:
		// Select, status, date, number, URL and checkbox all clear via null
		// (checkbox via false).
		return notion.Property{Kind: kind}
	}
}

// patchValue converts one patch entry into its wire property for a mapping.
func patchValue(m Mapping, v interface{}) (notion.Property, bool) {
	if _, ok := v.(clearSentinel); ok {
		return clearProperty(m.Kind), true
	}

	switch m.Kind {
	case notion.KindTitle:
		if s, ok := v.(string); ok {
			return notion.Property{Kind: notion.KindTitle, Title: notion.NewRichText(s)}, true
		}
	case notion.KindRichText:
		if s, ok := v.(string); ok {
			return richTextProperty(s), true
		}
	case notion.KindSelect, notion.KindStatus:
		if s, ok := v.(string); ok {
			return labelProperty(m.Kind, s), true
		}
	case notion.KindMultiSelect:
		if names, ok := v.([]string); ok {
			return multiSelectProperty(names), true
		}
	case notion.KindNumber:
		switch n := v.(type) {
		case float64:
			return numberProperty(n), true
		case int:
			return numberProperty(float64(n)), true
		}
	case notion.KindDate:
		switch t := v.(type) {
		case time.Time:
			return timedDate(t, nil), true
		case *time.Time:
			if t == nil {
				return clearProperty(m.Kind), true
			}
			return timedDate(*t, nil), true
		}
	case notion.KindCheckbox:
		if b, ok := v.(bool); ok {
			return notion.Property{Kind: notion.KindCheckbox, Checkbox: b}, true
		}
	case notion.KindURL:
		if s, ok := v.(string); ok {
			return notion.Property{Kind: notion.KindURL, URL: &s}, true
		}
	case notion.KindRelation:
		if id, ok := v.(string); ok {
			return notion.Property{Kind: notion.KindRelation, Relation: []notion.RelationRef{{ID: id}}}, true
		}
	}

	return notion.Property{}, false
}

// TaskPatchProperties converts a task patch into the remote property bag.
// Only fields present in the patch appear in the result, so the remote
// update touches nothing else. A value that does not fit its field's kind is
// a ValidationError, the same loud failure an unmapped field gets.
func TaskPatchProperties(patch Patch, p *Profile) (notion.Properties, error) {
	props := notion.Properties{}
	for f, v := range patch {
		m, err := p.taskMapping(f)
		if err != nil {
			return nil, err
		}
		prop, ok := patchValue(m, v)
		if !ok {
			return nil, &apperrors.ValidationError{
				Field:  string(f),
				Reason: fmt.Sprintf("cannot patch %s field with %T value", m.Kind, v),
			}
		}
		props[m.Name] = prop
	}
	return props, nil
}

// EventPatchProperties converts a calendar event patch into the remote
// property bag, with the same presence and failure semantics as
// TaskPatchProperties.
func EventPatchProperties(patch Patch, p *Profile) (notion.Properties, error) {
	props := notion.Properties{}
	for f, v := range patch {
		m, err := p.calendarMapping(f)
		if err != nil {
			return nil, err
		}
		prop, ok := patchValue(m, v)
		if !ok {
			return nil, &apperrors.ValidationError{
				Field:  string(f),
				Reason: fmt.Sprintf("cannot patch %s field with %T value", m.Kind, v),
			}
		}
		props[m.Name] = prop
	}
	return props, nil
}
