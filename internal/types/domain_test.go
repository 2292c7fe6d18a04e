package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHourlySample_OnDay(t *testing.T) {
	tests := []struct {
		name string
		ts   string
		date string
		want bool
	}{
		{"exact day", "2026-08-30T14:00", "2026-08-30", true},
		{"different day", "2026-08-31T00:00", "2026-08-30", false},
		{"prefix without separator", "2026-08-301", "2026-08-30", false},
		{"date only", "2026-08-30", "2026-08-30", false},
		{"empty timestamp", "", "2026-08-30", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := HourlySample{Time: tt.ts}
			assert.Equal(t, tt.want, s.OnDay(tt.date))
		})
	}
}

func TestHourlySample_ClockHour(t *testing.T) {
	tests := []struct {
		name   string
		ts     string
		want   int
		wantOK bool
	}{
		{"midday", "2026-08-30T14:00", 14, true},
		{"midnight", "2026-08-30T00:00", 0, true},
		{"last hour", "2026-08-30T23:00", 23, true},
		{"out of range", "2026-08-30T24:00", 0, false},
		{"no time portion", "2026-08-30", 0, false},
		{"truncated", "2026-08-30T1", 0, false},
		{"garbage after separator", "2026-08-30Txx:00", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := HourlySample{Time: tt.ts}
			h, ok := s.ClockHour()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, h)
		})
	}
}

func TestClockOf(t *testing.T) {
	assert.Equal(t, "14:00", ClockOf("2026-08-30T14:00"))
	assert.Equal(t, "07:30", ClockOf("2026-08-30T07:30:00"))
	assert.Equal(t, "2026-08-30", ClockOf("2026-08-30"))
	assert.Equal(t, "9:", ClockOf("xT9:"))
}

func TestUnitSystem_Valid(t *testing.T) {
	assert.True(t, UnitsMetric.Valid())
	assert.True(t, UnitsImperial.Valid())
	assert.False(t, UnitSystem("kelvin").Valid())
	assert.False(t, UnitSystem("").Valid())
}
