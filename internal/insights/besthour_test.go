package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skycast/internal/types"
)

func hour(ts string, temp, rain, wind float64, code int) types.HourlySample {
	return types.HourlySample{
		Time:        ts,
		Temperature: types.F(temp),
		RainProb:    types.F(rain),
		WindSpeed:   types.F(wind),
		WeatherCode: types.I(code),
	}
}

func TestBestOutdoorHour_EmptyDay(t *testing.T) {
	_, ok := BestOutdoorHour(nil)
	assert.False(t, ok)
}

func TestBestOutdoorHour_PicksCalmestHour(t *testing.T) {
	samples := []types.HourlySample{
		hour("2026-08-30T08:00", 12, 10, 5, 1),
		hour("2026-08-30T11:00", 16, 45, 10, 61),
		hour("2026-08-30T14:00", 19, 0, 8, 0),
		hour("2026-08-30T17:00", 18, 5, 30, 2),
	}

	best, ok := BestOutdoorHour(samples)

	require.True(t, ok)
	assert.Equal(t, "2026-08-30T14:00", best)
}

func TestBestOutdoorHour_TieKeepsEarliest(t *testing.T) {
	samples := []types.HourlySample{
		hour("2026-08-30T13:00", 19, 0, 5, 0),
		hour("2026-08-30T15:00", 19, 0, 5, 0),
	}

	best, ok := BestOutdoorHour(samples)

	require.True(t, ok)
	assert.Equal(t, "2026-08-30T13:00", best)
}

func TestBestOutdoorHour_NoAcceptableHour(t *testing.T) {
	samples := []types.HourlySample{
		hour("2026-08-30T09:00", 5, 90, 20, 63),
		hour("2026-08-30T12:00", 6, 85, 25, 65),
	}

	_, ok := BestOutdoorHour(samples)
	assert.False(t, ok)
}

func TestBestOutdoorHour_StormCodeDisqualifies(t *testing.T) {
	samples := []types.HourlySample{
		hour("2026-08-30T10:00", 19, 0, 5, 95),
		hour("2026-08-30T16:00", 14, 10, 10, 2),
	}

	best, ok := BestOutdoorHour(samples)

	require.True(t, ok)
	assert.Equal(t, "2026-08-30T16:00", best)
}

func TestBestOutdoorHour_SkipsHoursWithoutTemperature(t *testing.T) {
	samples := []types.HourlySample{
		{Time: "2026-08-30T10:00", RainProb: types.F(0)},
		hour("2026-08-30T12:00", 20, 0, 5, 1),
	}

	best, ok := BestOutdoorHour(samples)

	require.True(t, ok)
	assert.Equal(t, "2026-08-30T12:00", best)
}

func TestBestOutdoorHour_MissingSecondarySeriesCountAsZero(t *testing.T) {
	samples := []types.HourlySample{
		{Time: "2026-08-30T15:00", Temperature: types.F(19)},
	}

	best, ok := BestOutdoorHour(samples)

	require.True(t, ok)
	assert.Equal(t, "2026-08-30T15:00", best)
}
