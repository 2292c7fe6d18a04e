package insights

import "skycast/internal/types"

// Alert thresholds over the day's aggregate maxima.
const (
	alertRainProb  = 80
	alertWindSpeed = 60
	alertUVIndex   = 8
	stormCodeFloor = 95
)

// DayAlerts derives the warning banners for a day from its aggregate maxima
// and the current weather code. Absent readings raise nothing; a quiet day
// returns an empty slice.
func DayAlerts(day types.DailyAggregate, code types.Int) []string {
	var alerts []string
	if day.RainProbMax.Valid && day.RainProbMax.Value >= alertRainProb {
		alerts = append(alerts, "Heavy rain likely today.")
	}
	if day.WindSpeedMax.Valid && day.WindSpeedMax.Value >= alertWindSpeed {
		alerts = append(alerts, "Very windy/gusty later today.")
	}
	if code.Valid && code.Value >= stormCodeFloor {
		alerts = append(alerts, "Thunderstorms possible.")
	}
	if day.UVIndexMax.Valid && day.UVIndexMax.Value >= alertUVIndex {
		alerts = append(alerts, "Very strong UV around midday.")
	}
	return alerts
}
