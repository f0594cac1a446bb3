package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var today = time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return today.AddDate(0, 0, -n)
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{"no entries", nil, 0},
		{"single entry today", []time.Time{daysAgo(0)}, 1},
		{"three consecutive days", []time.Time{daysAgo(0), daysAgo(1), daysAgo(2)}, 3},
		{"gap stops the run", []time.Time{daysAgo(0), daysAgo(3)}, 1},
		{"only two days ago", []time.Time{daysAgo(2)}, 0},
		{"run ending yesterday still counts", []time.Time{daysAgo(1), daysAgo(2), daysAgo(3)}, 3},
		{"unsorted input", []time.Time{daysAgo(2), daysAgo(0), daysAgo(1)}, 3},
		{"future entry breaks the streak", []time.Time{daysAgo(-1), daysAgo(0)}, 0},
		{"gap in the middle", []time.Time{daysAgo(0), daysAgo(1), daysAgo(3), daysAgo(4)}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Calculate(tt.dates, today))
		})
	}
}

func TestCalculateSameDayDuplicatesCountOnce(t *testing.T) {
	dates := []time.Time{
		time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 15, 13, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 15, 20, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, 2, Calculate(dates, today))
}

func TestCalculateIgnoresTimeOfDay(t *testing.T) {
	dates := []time.Time{
		time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC),
		time.Date(2025, 6, 14, 0, 1, 0, 0, time.UTC),
	}

	assert.Equal(t, 2, Calculate(dates, today))
}

func TestCalculateIsPureReduction(t *testing.T) {
	dates := []time.Time{daysAgo(0), daysAgo(1)}

	first := Calculate(dates, today)
	second := Calculate(dates, today)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, first)
}
