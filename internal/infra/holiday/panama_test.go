package holiday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPanamaCalendar_IsHoliday(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{name: "new year", date: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC), expected: true},
		{name: "independence from spain", date: time.Date(2030, 11, 28, 0, 0, 0, 0, time.UTC), expected: true},
		{name: "christmas eve", date: time.Date(2024, 12, 24, 23, 59, 0, 0, time.UTC), expected: true},
		{name: "carnival 2025", date: time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC), expected: true},
		{name: "good friday 2026", date: time.Date(2026, 4, 3, 12, 0, 0, 0, time.UTC), expected: true},
		{name: "carnival 2025 date in 2024", date: time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC), expected: false},
		{name: "year without variable table", date: time.Date(2027, 2, 16, 12, 0, 0, 0, time.UTC), expected: false},
		{name: "ordinary weekday", date: time.Date(2025, 6, 17, 8, 0, 0, 0, time.UTC), expected: false},
	}

	calendar := NewPanamaCalendar()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calendar.IsHoliday(tt.date))
		})
	}
}

func TestPanamaCalendar_UsesLocalDate(t *testing.T) {
	panama := time.FixedZone("EST", -5*60*60)
	// 03:00 UTC on Jan 2 is still New Year's Day in Panama.
	instant := time.Date(2025, 1, 2, 3, 0, 0, 0, time.UTC)

	assert.False(t, NewPanamaCalendar().IsHoliday(instant))
	assert.True(t, NewPanamaCalendar().IsHoliday(instant.In(panama)))
}
