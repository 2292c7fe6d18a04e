// Package insights derives outdoor-condition insights from raw forecast
// bundles: a normalized comfort score, the best outdoor hour of a day,
// per-activity hour rankings, and a multi-day trend overview. Every function
// here is pure; absent inputs propagate as absent outputs, never as errors.
package insights

import (
	"math"

	"skycast/internal/types"
	"skycast/internal/units"
)

// idealTempC is the temperature at which the comfort penalty is zero.
const idealTempC = 19.0

// ComfortScore computes the 0-100 comfort index (higher = nicer) for one set
// of readings. Imperial callers are normalized to Celsius and km/h before any
// penalty is applied; scoring itself is always metric.
//
// The score starts at 100 and subtracts a capped temperature-deviation
// penalty plus tiered penalties for humidity, wind, UV, and rain
// probability. The result is clamped to [0,100]. An absent temperature
// yields an absent score.
func ComfortScore(sys types.UnitSystem, temp, humidity, wind, uv, rainProb types.Float) types.Float {
	if !temp.Valid {
		return types.Float{}
	}
	if sys == types.UnitsImperial {
		temp = units.FToC(temp)
		wind = units.MphToKmh(wind)
	}

	score := 100.0
	score -= math.Min(60, math.Abs(temp.Value-idealTempC)*2.5)

	if humidity.Valid {
		switch h := humidity.Value; {
		case h >= 85:
			score -= 15
		case h >= 70:
			score -= 8
		case h <= 30:
			score -= 10
		}
	}

	if wind.Valid {
		switch w := wind.Value; {
		case w >= 60:
			score -= 25
		case w >= 40:
			score -= 15
		case w >= 25:
			score -= 7
		}
	}

	if uv.Valid {
		switch u := uv.Value; {
		case u >= 8:
			score -= 12
		case u >= 6:
			score -= 7
		case u >= 3:
			score -= 3
		}
	}

	if rainProb.Valid {
		switch r := rainProb.Value; {
		case r >= 80:
			score -= 25
		case r >= 60:
			score -= 15
		case r >= 30:
			score -= 7
		}
	}

	return types.F(clamp(score, 0, 100))
}

// SampleComfort scores a metric hourly sample with all penalty inputs.
func SampleComfort(s types.HourlySample) types.Float {
	return ComfortScore(types.UnitsMetric, s.Temperature, s.Humidity, s.WindSpeed, s.UVIndex, s.RainProb)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
