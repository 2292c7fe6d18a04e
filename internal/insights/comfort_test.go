package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skycast/internal/types"
)

func TestComfortScore_IdealConditions(t *testing.T) {
	got := ComfortScore(types.UnitsMetric,
		types.F(19), types.F(50), types.F(10), types.F(2), types.F(0))

	require.True(t, got.Valid)
	assert.Equal(t, 100.0, got.Value)
}

func TestComfortScore_AbsentTemperature(t *testing.T) {
	got := ComfortScore(types.UnitsMetric,
		types.Float{}, types.F(50), types.F(10), types.F(2), types.F(0))

	assert.False(t, got.Valid)
}

func TestComfortScore_ImperialMatchesMetric(t *testing.T) {
	// 66.2 degF and 6.21371 mph are 19 degC and 10 km/h.
	metric := ComfortScore(types.UnitsMetric,
		types.F(19), types.F(50), types.F(10), types.Float{}, types.Float{})
	imperial := ComfortScore(types.UnitsImperial,
		types.F(66.2), types.F(50), types.F(6.21371), types.Float{}, types.Float{})

	require.True(t, metric.Valid)
	require.True(t, imperial.Valid)
	assert.InDelta(t, metric.Value, imperial.Value, 0.01)
}

func TestComfortScore_ClampedAtZero(t *testing.T) {
	got := ComfortScore(types.UnitsMetric,
		types.F(43), types.F(90), types.F(65), types.F(9), types.F(85))

	require.True(t, got.Valid)
	assert.Equal(t, 0.0, got.Value)
}

func TestComfortScore_TemperaturePenaltyCapped(t *testing.T) {
	// 49 degrees off ideal would be a 122.5-point penalty uncapped.
	got := ComfortScore(types.UnitsMetric,
		types.F(-30), types.Float{}, types.Float{}, types.Float{}, types.Float{})

	require.True(t, got.Valid)
	assert.Equal(t, 40.0, got.Value)
}

func TestComfortScore_PenaltyTiers(t *testing.T) {
	ideal := types.F(19)
	absent := types.Float{}

	tests := []struct {
		name     string
		humidity types.Float
		wind     types.Float
		uv       types.Float
		rain     types.Float
		want     float64
	}{
		{"humidity very high", types.F(85), absent, absent, absent, 85},
		{"humidity high", types.F(70), absent, absent, absent, 92},
		{"humidity very dry", types.F(30), absent, absent, absent, 90},
		{"humidity comfortable", types.F(50), absent, absent, absent, 100},
		{"wind gale", absent, types.F(60), absent, absent, 75},
		{"wind strong", absent, types.F(40), absent, absent, 85},
		{"wind breezy", absent, types.F(25), absent, absent, 93},
		{"wind calm", absent, types.F(10), absent, absent, 100},
		{"uv extreme", absent, absent, types.F(8), absent, 88},
		{"uv high", absent, absent, types.F(6), absent, 93},
		{"uv moderate", absent, absent, types.F(3), absent, 97},
		{"rain near certain", absent, absent, absent, types.F(80), 75},
		{"rain likely", absent, absent, absent, types.F(60), 85},
		{"rain possible", absent, absent, absent, types.F(30), 93},
		{"all absent", absent, absent, absent, absent, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComfortScore(types.UnitsMetric, ideal, tt.humidity, tt.wind, tt.uv, tt.rain)
			require.True(t, got.Valid)
			assert.Equal(t, tt.want, got.Value)
		})
	}
}

func TestSampleComfort_UsesAllReadings(t *testing.T) {
	s := types.HourlySample{
		Time:        "2026-08-30T14:00",
		Temperature: types.F(19),
		Humidity:    types.F(85),
		WindSpeed:   types.F(25),
		UVIndex:     types.F(3),
		RainProb:    types.F(30),
	}

	got := SampleComfort(s)

	require.True(t, got.Valid)
	// 100 - 15 - 7 - 3 - 7
	assert.Equal(t, 68.0, got.Value)
}
