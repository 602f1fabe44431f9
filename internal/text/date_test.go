package text

import (
	"testing"
	"time"
)

func TestRelativeDate(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		t        time.Time
		expected string
	}{
		{
			name:     "under an hour",
			t:        now.Add(-30 * time.Minute),
			expected: "just now",
		},
		{
			name:     "same day",
			t:        now.Add(-5 * time.Hour),
			expected: "5h ago",
		},
		{
			name:     "just under a day",
			t:        now.Add(-23 * time.Hour),
			expected: "23h ago",
		},
		{
			name:     "yesterday",
			t:        now.Add(-30 * time.Hour),
			expected: "yesterday",
		},
		{
			name:     "days ago",
			t:        now.Add(-3 * 24 * time.Hour),
			expected: "3d ago",
		},
		{
			name:     "same year falls back to absolute date",
			t:        time.Date(2025, time.March, 2, 9, 0, 0, 0, time.UTC),
			expected: "Mar 2",
		},
		{
			name:     "different year includes year",
			t:        time.Date(2024, time.December, 15, 9, 0, 0, 0, time.UTC),
			expected: "Dec 15, 2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeDate(tt.t, now); got != tt.expected {
				t.Errorf("RelativeDate() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRelativeDateWithTime(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	at := time.Date(2025, time.June, 14, 15, 4, 0, 0, time.UTC)

	got := RelativeDateWithTime(at, now)
	want := "yesterday (3:04 PM)"
	if got != want {
		t.Errorf("RelativeDateWithTime() = %q, want %q", got, want)
	}
}
