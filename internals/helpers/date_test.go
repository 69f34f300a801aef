package helper

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-03-03")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	want := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got.Location() != time.UTC {
		t.Errorf("dates must be UTC, got %v", got.Location())
	}

	for _, bad := range []string{"03-03-2025", "2025/03/03", "2025-13-01", "besok", ""} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}

func TestDayName(t *testing.T) {
	monday := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	if got := DayName(monday); got != "Monday" {
		t.Errorf("DayName = %q", got)
	}
	sunday := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	if got := DayName(sunday); got != "Sunday" {
		t.Errorf("DayName = %q", got)
	}
}
