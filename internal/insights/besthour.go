package insights

import (
	"math"

	"skycast/internal/types"
)

// bestHourFloor is the minimum score an hour must reach to be recommended.
// Below it, no hour of the day is judged acceptable for being outdoors.
const bestHourFloor = 40.0

// BestOutdoorHour scans one day's hourly samples in chronological order and
// returns the timestamp of the hour best suited to being outdoors, or
// ("", false) when no hour qualifies.
//
// Hours without a temperature reading are skipped. For the rest, missing
// rain, wind, or code values count as zero -- a gap in a secondary series
// should not disqualify an otherwise fine hour. Ties keep the earliest
// timestamp: the strict > comparison never lets an equal later score
// overwrite the first maximal one.
func BestOutdoorHour(samples []types.HourlySample) (string, bool) {
	bestScore := -1.0
	bestTime := ""

	for _, s := range samples {
		if !s.Temperature.Valid {
			continue
		}
		rain := s.RainProb.Or(0)
		wind := s.WindSpeed.Or(0)
		code := s.WeatherCode.Or(0)

		score := 100.0

		// Rain and storms dominate: a thunderstorm code is as
		// disqualifying as a near-certain shower.
		switch {
		case rain >= 70 || code >= 95:
			score -= 70
		case rain >= 40:
			score -= 40
		case rain >= 20:
			score -= 15
		}

		score -= math.Min(50, math.Abs(s.Temperature.Value-idealTempC)*2.5)

		switch {
		case wind > 50:
			score -= 30
		case wind > 35:
			score -= 15
		case wind > 25:
			score -= 5
		}

		// Overcast and fog shave a little off even when dry.
		if code == 3 || code == 45 || code == 48 {
			score -= 5
		}

		if score > bestScore {
			bestScore = score
			bestTime = s.Time
		}
	}

	if bestScore < bestHourFloor {
		return "", false
	}
	return bestTime, true
}
