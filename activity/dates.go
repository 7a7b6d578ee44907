package activity

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical calendar-day layout.
const DateLayout = "2006-01-02"

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from `from` to
// `to`. The result is negative when to precedes from.
func DaysBetween(from, to time.Time) int {
	return int(Day(to).Sub(Day(from)).Hours() / 24)
}

// WeekStart returns the first day of the week containing t, where weeks
// begin on start.
func WeekStart(t time.Time, start time.Weekday) time.Time {
	d := Day(t)
	offset := (int(d.Weekday()) - int(start) + 7) % 7

	return d.AddDate(0, 0, -offset)
}

// ParseDate accepts YYYY-MM-DD or RFC 3339 and returns the UTC day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable date %q", s)
	}

	return Day(t), nil
}

// ParseWeekday converts a day name such as "monday" or "Sun".
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || (len(s) >= 3 && strings.HasPrefix(name, s)) {
			return d, nil
		}
	}

	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}
