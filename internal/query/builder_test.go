package query

import (
	"testing"
	"time"

	"github.com/notiplan/notiplan/internal/schema"
)

func TestTasksEmptyFilterIsNil(t *testing.T) {
	if f := Tasks(Filter{}, schema.Plain()); f != nil {
		t.Errorf("empty filter should build no remote filter, got %+v", f)
	}
}

func TestTasksSingleValueIsBareEquality(t *testing.T) {
	f := Tasks(Filter{Status: []string{"In progress"}}, schema.Plain())
	if f == nil {
		t.Fatal("filter should not be nil")
	}
	if f.And != nil || f.Or != nil {
		t.Errorf("single condition must not be wrapped in a group: %+v", f)
	}
	if f.Property != "Status" || f.Status == nil || f.Status.Equals != "In progress" {
		t.Errorf("filter = %+v, want bare status equality", f)
	}
}

func TestTasksMultiValueBecomesDisjunction(t *testing.T) {
	f := Tasks(Filter{Priority: []string{"High", "Urgent"}}, schema.Plain())
	if f == nil || len(f.Or) != 2 {
		t.Fatalf("filter = %+v, want a 2-leaf disjunction", f)
	}
	if f.Or[0].Select == nil || f.Or[0].Select.Equals != "High" {
		t.Errorf("first leaf = %+v, want High", f.Or[0])
	}
	if f.Or[1].Select == nil || f.Or[1].Select.Equals != "Urgent" {
		t.Errorf("second leaf = %+v, want Urgent", f.Or[1])
	}
}

func TestTasksMultipleGroupsConjoin(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	f := Tasks(Filter{
		Status:    []string{"Not started", "In progress"},
		Category:  []string{"Work"},
		DateRange: &DateRange{Start: &start, End: &end},
	}, schema.Plain())
	if f == nil || len(f.And) != 3 {
		t.Fatalf("filter = %+v, want a 3-group conjunction", f)
	}

	var sawOr, sawCategory, sawDate bool
	for _, g := range f.And {
		switch {
		case len(g.Or) == 2:
			sawOr = true
		case g.Property == "Category" && g.Select != nil:
			sawCategory = true
		case g.Property == "Due Date" && g.Date != nil:
			sawDate = true
			if g.Date.OnOrAfter != start.Format(time.RFC3339) {
				t.Errorf("on_or_after = %q, want %q", g.Date.OnOrAfter, start.Format(time.RFC3339))
			}
			if g.Date.OnOrBefore != end.Format(time.RFC3339) {
				t.Errorf("on_or_before = %q, want %q", g.Date.OnOrBefore, end.Format(time.RFC3339))
			}
		}
	}
	if !sawOr || !sawCategory || !sawDate {
		t.Errorf("missing groups: or=%v category=%v date=%v", sawOr, sawCategory, sawDate)
	}
}

func TestTasksSearchSpansTitleAndDescription(t *testing.T) {
	f := Tasks(Filter{Search: "review"}, schema.Plain())
	if f == nil || len(f.Or) != 2 {
		t.Fatalf("filter = %+v, want title/description disjunction", f)
	}
	if f.Or[0].Title == nil || f.Or[0].Title.Contains != "review" {
		t.Errorf("title leaf = %+v", f.Or[0])
	}
	if f.Or[1].RichText == nil || f.Or[1].RichText.Contains != "review" {
		t.Errorf("description leaf = %+v", f.Or[1])
	}
}

func TestStatusConditionFollowsProfileKind(t *testing.T) {
	plain := Tasks(Filter{Status: []string{"Completed"}}, schema.Plain())
	if plain == nil || plain.Status == nil || plain.Select != nil {
		t.Errorf("plain profile should filter on a status condition: %+v", plain)
	}

	emoji := Tasks(Filter{Status: []string{"✅ Completed"}}, schema.Emoji())
	if emoji == nil || emoji.Select == nil || emoji.Status != nil {
		t.Errorf("emoji profile should filter on a select condition: %+v", emoji)
	}
}

func TestEventsFilterUsesCalendarFields(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	f := Events(Filter{
		EventType: []string{"Meeting"},
		DateRange: &DateRange{Start: &start},
	}, schema.Plain())
	if f == nil || len(f.And) != 2 {
		t.Fatalf("filter = %+v, want a 2-group conjunction", f)
	}

	var sawType, sawStart bool
	for _, g := range f.And {
		if g.Property == "Event Type" && g.Select != nil && g.Select.Equals == "Meeting" {
			sawType = true
		}
		if g.Property == "Start Time" && g.Date != nil && g.Date.OnOrBefore == "" {
			sawStart = true
		}
	}
	if !sawType || !sawStart {
		t.Errorf("missing groups: type=%v start=%v", sawType, sawStart)
	}
}

func TestTaskSortsDefaults(t *testing.T) {
	sorts := TaskSorts(nil, schema.Plain())
	if len(sorts) != 2 {
		t.Fatalf("default sorts = %+v, want due date then priority", sorts)
	}
	if sorts[0].Property != "Due Date" || sorts[0].Direction != "ascending" {
		t.Errorf("first sort = %+v", sorts[0])
	}
	if sorts[1].Property != "Priority" || sorts[1].Direction != "descending" {
		t.Errorf("second sort = %+v", sorts[1])
	}
}

func TestSortsTimestampKeys(t *testing.T) {
	sorts := TaskSorts([]SortSpec{{Field: SortCreatedTime, Descending: true}}, schema.Plain())
	if len(sorts) != 1 {
		t.Fatalf("sorts = %+v, want one entry", sorts)
	}
	if sorts[0].Timestamp != "created_time" || sorts[0].Property != "" || sorts[0].Direction != "descending" {
		t.Errorf("sort = %+v, want a timestamp sort", sorts[0])
	}
}

func TestEventSortsDefault(t *testing.T) {
	sorts := EventSorts(nil, schema.Plain())
	if len(sorts) != 1 || sorts[0].Property != "Start Time" || sorts[0].Direction != "ascending" {
		t.Errorf("default event sorts = %+v, want start time ascending", sorts)
	}
}
