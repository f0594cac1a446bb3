// Package streak computes consecutive-day logging streaks from dated
// log entries. The streak is recomputed from scratch on every call;
// there is no persisted counter to keep consistent.
package streak

import (
	"math"
	"sort"
	"time"
)

// Calculate returns the length of the current unbroken run of
// consecutive calendar days with at least one entry, ending today or
// yesterday. A run whose most recent entry is older than yesterday is
// broken by absence and counts as zero. Input order is not trusted and
// multiple entries on the same day count once.
func Calculate(dates []time.Time, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	today = truncateToDay(today)

	// Collapse entries to unique calendar days
	seen := make(map[time.Time]bool, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := truncateToDay(d)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}

	// Most recent first
	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})

	// The run may legitimately start yesterday and still count as
	// active, but a future-dated entry or a gap of more than one day
	// means there is no current streak.
	gap := daysBetween(days[0], today)
	if gap < 0 || gap > 1 {
		return 0
	}

	// Walk backwards one expected day at a time; a missed day ends the
	// run, the walk does not skip gaps.
	count := 0
	expected := days[0]
	for _, day := range days {
		if !day.Equal(expected) {
			break
		}
		count++
		expected = expected.AddDate(0, 0, -1)
	}

	return count
}

// truncateToDay drops the time-of-day component
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween returns the whole calendar days from a to b.
// Rounded so that DST transitions do not shift a day boundary.
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}
