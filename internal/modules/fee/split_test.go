package fee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		wantFirst  int
		wantSecond int
	}{
		{name: "same day", start: 540, end: 1020, wantFirst: 480, wantSecond: 0},
		{name: "zero duration", start: 600, end: 600, wantFirst: 0, wantSecond: 0},
		{name: "crosses midnight", start: 1380, end: 60, wantFirst: 60, wantSecond: 60},
		{name: "ends at midnight minus one", start: 0, end: 1439, wantFirst: 1439, wantSecond: 0},
		{name: "starts at midnight", start: 0, end: 1, wantFirst: 1, wantSecond: 0},
		{name: "one minute over midnight", start: 1439, end: 0, wantFirst: 1, wantSecond: 0},
		{name: "almost full day over midnight", start: 1, end: 0, wantFirst: 1439, wantSecond: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, second := split(tt.start, tt.end)
			assert.Equal(t, 0, first.DayOffset)
			assert.Equal(t, 1, second.DayOffset)
			assert.Equal(t, tt.wantFirst, first.Minutes)
			assert.Equal(t, tt.wantSecond, second.Minutes)
		})
	}
}

// The total never exceeds 1439 minutes: a session described by two times of
// day fits strictly within one 24-hour window.
func TestSplitTotalBounded(t *testing.T) {
	for start := 0; start < minutesPerDay; start += 7 {
		for end := 0; end < minutesPerDay; end += 11 {
			first, second := split(start, end)
			total := first.Minutes + second.Minutes
			assert.GreaterOrEqual(t, first.Minutes, 0)
			assert.GreaterOrEqual(t, second.Minutes, 0)
			assert.LessOrEqual(t, total, minutesPerDay-1)
			if end >= start {
				assert.Equal(t, end-start, total)
				assert.Zero(t, second.Minutes)
			} else {
				assert.Equal(t, (minutesPerDay-start)+end, total)
			}
		}
	}
}
