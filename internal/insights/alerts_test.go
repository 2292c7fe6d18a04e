package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skycast/internal/types"
)

func TestDayAlerts_QuietDay(t *testing.T) {
	day := types.DailyAggregate{
		RainProbMax:  types.F(30),
		WindSpeedMax: types.F(20),
		UVIndexMax:   types.F(4),
	}

	assert.Empty(t, DayAlerts(day, types.I(2)))
}

func TestDayAlerts_AbsentReadingsRaiseNothing(t *testing.T) {
	assert.Empty(t, DayAlerts(types.DailyAggregate{}, types.Int{}))
}

func TestDayAlerts_Thresholds(t *testing.T) {
	tests := []struct {
		name string
		day  types.DailyAggregate
		code types.Int
		want []string
	}{
		{
			name: "heavy rain",
			day:  types.DailyAggregate{RainProbMax: types.F(80)},
			want: []string{"Heavy rain likely today."},
		},
		{
			name: "rain just under threshold",
			day:  types.DailyAggregate{RainProbMax: types.F(79)},
			want: nil,
		},
		{
			name: "very windy",
			day:  types.DailyAggregate{WindSpeedMax: types.F(60)},
			want: []string{"Very windy/gusty later today."},
		},
		{
			name: "thunderstorm code",
			code: types.I(95),
			want: []string{"Thunderstorms possible."},
		},
		{
			name: "strong uv",
			day:  types.DailyAggregate{UVIndexMax: types.F(8.1)},
			want: []string{"Very strong UV around midday."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayAlerts(tt.day, tt.code))
		})
	}
}

func TestDayAlerts_StackInSeverityOrder(t *testing.T) {
	day := types.DailyAggregate{
		RainProbMax:  types.F(95),
		WindSpeedMax: types.F(70),
		UVIndexMax:   types.F(9),
	}

	got := DayAlerts(day, types.I(96))

	assert.Equal(t, []string{
		"Heavy rain likely today.",
		"Very windy/gusty later today.",
		"Thunderstorms possible.",
		"Very strong UV around midday.",
	}, got)
}
