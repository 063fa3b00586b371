package notion

import (
	"encoding/json"
	"testing"
)

func TestPropertyMarshalSingleKey(t *testing.T) {
	tests := []struct {
		name string
		prop Property
		want string
	}{
		{
			"title",
			Property{Kind: KindTitle, Title: NewRichText("Report")},
			`{"title":[{"text":{"content":"Report"}}]}`,
		},
		{
			"select",
			Property{Kind: KindSelect, Select: &SelectOption{Name: "High"}},
			`{"select":{"name":"High"}}`,
		},
		{
			"number",
			Property{Kind: KindNumber, Number: ptr(2.5)},
			`{"number":2.5}`,
		},
		{
			"checkbox false",
			Property{Kind: KindCheckbox},
			`{"checkbox":false}`,
		},
		{
			"clear date",
			Property{Kind: KindDate},
			`{"date":null}`,
		},
		{
			"clear multi-select",
			Property{Kind: KindMultiSelect},
			`{"multi_select":[]}`,
		},
		{
			"relation",
			Property{Kind: KindRelation, Relation: []RelationRef{{ID: "abc"}}},
			`{"relation":[{"id":"abc"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := json.Marshal(tt.prop)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			if string(blob) != tt.want {
				t.Errorf("marshal = %s, want %s", blob, tt.want)
			}
		})
	}
}

func ptr(f float64) *float64 { return &f }

func TestPropertyUnmarshalByDiscriminator(t *testing.T) {
	var p Property
	err := json.Unmarshal([]byte(`{"type":"status","status":{"name":"In progress","color":"yellow"}}`), &p)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if p.Kind != KindStatus {
		t.Errorf("kind = %q, want status", p.Kind)
	}
	if p.Status == nil || p.Status.Name != "In progress" {
		t.Errorf("status = %+v, want In progress", p.Status)
	}
}

func TestPropertyUnmarshalInfersKind(t *testing.T) {
	var p Property
	if err := json.Unmarshal([]byte(`{"number":7}`), &p); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if p.Kind != KindNumber || p.Number == nil || *p.Number != 7 {
		t.Errorf("property = %+v, want number 7", p)
	}
}

func TestPropertyUnmarshalMalformedDegrades(t *testing.T) {
	tests := []string{
		`"just a string"`,
		`{"number":"seven"}`,
		`[1,2,3]`,
	}
	for _, raw := range tests {
		var p Property
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			t.Errorf("unmarshal(%s) returned error %v, want graceful degrade", raw, err)
		}
		if p.Kind != "" {
			t.Errorf("unmarshal(%s) kind = %q, want zero property", raw, p.Kind)
		}
	}
}

func TestPlainTextFirstRun(t *testing.T) {
	runs := []RichText{
		{PlainText: "first"},
		{PlainText: " second"},
	}
	if got := PlainText(runs); got != "first" {
		t.Errorf("PlainText = %q, want first run only", got)
	}
	if got := PlainText(nil); got != "" {
		t.Errorf("PlainText(nil) = %q, want empty", got)
	}
}
