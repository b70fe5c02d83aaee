package staffing

import "testing"

func TestParseProjectSortField(t *testing.T) {
	cases := map[string]ProjectSortField{
		"StartDate":  SortByStartDate,
		"start_date": SortByStartDate,
		"START-DATE": SortByStartDate,
		"Priority":   SortByPriority,
		" priority ": SortByPriority,
		"Name":       SortByName,
		"":           SortByName,
		"EndDate":    SortByName,
		"bogus":      SortByName,
	}
	for in, want := range cases {
		got := ParseProjectSortField(in)
		if got != want {
			t.Fatalf("ParseProjectSortField(%q): want=%q got=%q", in, want, got)
		}
		if !got.Valid() {
			t.Fatalf("ParseProjectSortField(%q) returned invalid key %q", in, got)
		}
	}
	if ProjectSortField("end_date").Valid() {
		t.Fatalf("end_date must not be a valid sort key")
	}
}
