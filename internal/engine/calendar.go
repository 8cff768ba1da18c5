package engine

import (
	"fmt"
	"time"
)

// DateFormat is the calendar date layout used for record IDs, file names and
// the index. Lexicographic order on this layout equals chronological order.
const DateFormat = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string as a UTC civil date. All calendar
// arithmetic happens in UTC so daylight-saving jumps cannot shift a week
// boundary.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// DayOfWeek returns the ISO day-of-week index: Monday = 0 … Sunday = 6.
func DayOfWeek(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// ISOWeek returns the ISO-8601 year and week number for t. Weeks start on
// Monday and week 1 is the week containing the year's first Thursday, so a
// late-December or early-January date may belong to the other year's count.
func ISOWeek(t time.Time) (year, week int) {
	return t.UTC().ISOWeek()
}

// WeekSeed derives the deterministic RNG seed for the ISO week containing t.
func WeekSeed(t time.Time) uint32 {
	y, w := ISOWeek(t)
	return SeedFromString(SeedKey(y, w))
}
