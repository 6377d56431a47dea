package notify

import (
	"testing"
	"time"
)

func TestParseLead(t *testing.T) {
	cases := []struct {
		in      string
		want    Lead
		wantErr bool
	}{
		{"15m-before", LeadQuarter, false},
		{"  Day-Before ", LeadDayBefore, false},
		{"none", LeadNone, false},
		{"tomorrowish", "", true},
	}
	for _, tc := range cases {
		got, err := ParseLead(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseLead(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLead(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseLead(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFireAt(t *testing.T) {
	due := time.Date(2025, 4, 16, 14, 30, 0, 0, time.UTC)

	if at, ok := LeadQuarter.FireAt(due); !ok || !at.Equal(due.Add(-15*time.Minute)) {
		t.Fatalf("quarter lead: got %v ok=%v", at, ok)
	}
	if at, ok := LeadHourBefore.FireAt(due); !ok || !at.Equal(due.Add(-time.Hour)) {
		t.Fatalf("hour lead: got %v ok=%v", at, ok)
	}
	if at, ok := LeadDayBefore.FireAt(due); !ok || !at.Equal(due.AddDate(0, 0, -1)) {
		t.Fatalf("day-before lead: got %v ok=%v", at, ok)
	}
	if at, ok := LeadDayOf.FireAt(due); !ok || at.Hour() != 9 || at.Day() != due.Day() {
		t.Fatalf("day-of lead: got %v ok=%v", at, ok)
	}
	if _, ok := LeadNone.FireAt(due); ok {
		t.Fatalf("none lead should not fire")
	}
}
