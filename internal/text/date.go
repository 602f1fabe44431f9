package text

import (
	"fmt"
	"time"
)

const (
	hoursInDay     = 24
	hoursInTwoDays = 48
	daysInWeek     = 7
)

// RelativeDate renders t relative to now: "just now", "5h ago", "yesterday",
// "3d ago", then an absolute "Jan 2" (with year once it differs from now's).
func RelativeDate(t, now time.Time) string {
	diffHours := int(now.Sub(t).Hours())

	switch {
	case diffHours < 1:
		return "just now"
	case diffHours < hoursInDay:
		return fmt.Sprintf("%dh ago", diffHours)
	case diffHours < hoursInTwoDays:
		return "yesterday"
	}

	diffDays := diffHours / hoursInDay
	if diffDays < daysInWeek {
		return fmt.Sprintf("%dd ago", diffDays)
	}

	if t.Year() != now.Year() {
		return t.Format("Jan 2, 2006")
	}
	return t.Format("Jan 2")
}

// RelativeDateWithTime is RelativeDate with the clock time appended,
// e.g. "yesterday (3:04 PM)".
func RelativeDateWithTime(t, now time.Time) string {
	return fmt.Sprintf("%s (%s)", RelativeDate(t, now), t.Format("3:04 PM"))
}
