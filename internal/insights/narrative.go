package insights

import (
	"fmt"
	"strings"

	"skycast/internal/types"
)

// InterpretUV maps a UV index to its common exposure band.
func InterpretUV(uv types.Float) string {
	if !uv.Valid {
		return "N/A"
	}
	switch v := uv.Value; {
	case v < 3:
		return "Low"
	case v < 6:
		return "Moderate"
	case v < 8:
		return "High"
	case v < 11:
		return "Very high"
	default:
		return "Extreme"
	}
}

// MicroSummary builds the one-line condition summary shown under a location
// header: a feels-like temperature band plus wind, rain, and storm markers,
// with the best outdoor hour appended when one exists. The wind and rain
// markers read the day's aggregate maxima rather than the current instant,
// so a dry morning ahead of a wet afternoon still flags the rain.
func MicroSummary(cur types.CurrentConditions, day types.DailyAggregate, bestHour string) string {
	var parts []string

	base := cur.ApparentTemp
	if !base.Valid {
		base = cur.Temperature
	}
	if base.Valid {
		switch t := base.Value; {
		case t <= 5:
			parts = append(parts, "Very cold")
		case t <= 12:
			parts = append(parts, "Chilly")
		case t <= 20:
			parts = append(parts, "Cool")
		case t <= 27:
			parts = append(parts, "Mild")
		default:
			parts = append(parts, "Warm")
		}
	}

	if day.WindSpeedMax.Valid && day.WindSpeedMax.Value >= 25 {
		parts = append(parts, "breezy")
	}
	if day.RainProbMax.Valid && day.RainProbMax.Value >= 40 {
		parts = append(parts, "rain possible")
	}
	if cur.WeatherCode.Valid && cur.WeatherCode.Value >= 95 {
		parts = append(parts, "storm risk")
	}

	line := "Mixed conditions"
	if len(parts) > 0 {
		line = strings.Join(parts, ", ")
	}
	if bestHour != "" {
		line += ". Best outdoors ~" + types.ClockOf(bestHour)
	}
	return line
}

// PeriodSummary describes one slice of the day in the day story.
type PeriodSummary struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// dayPeriods are the story slices: [start, end) local hours.
var dayPeriods = []struct {
	name       string
	start, end int
}{
	{"Morning", 6, 12},
	{"Afternoon", 12, 18},
	{"Evening", 18, 24},
}

// DayStory condenses one day's hourly samples into morning, afternoon, and
// evening sentences: a temperature band from the period average, a shower
// band from the period's highest rain probability, and the leading weather
// code's condition text. A period with no temperature readings reports
// "No data."
func DayStory(samples []types.HourlySample) []PeriodSummary {
	out := make([]PeriodSummary, 0, len(dayPeriods))
	for _, p := range dayPeriods {
		out = append(out, PeriodSummary{Name: p.name, Text: describePeriod(samples, p.start, p.end)})
	}
	return out
}

func describePeriod(samples []types.HourlySample, startH, endH int) string {
	var temps []float64
	maxRain := 0.0
	leadCode := types.Int{}

	for _, s := range samples {
		if !s.Temperature.Valid {
			continue
		}
		h, ok := s.ClockHour()
		if !ok || h < startH || h >= endH {
			continue
		}
		temps = append(temps, s.Temperature.Value)
		if r := s.RainProb.Or(0); r > maxRain {
			maxRain = r
		}
		if !leadCode.Valid {
			leadCode = types.I(s.WeatherCode.Or(0))
		}
	}

	if len(temps) == 0 {
		return "No data."
	}

	avg := mean(temps)
	var tempWord string
	switch {
	case avg <= 5:
		tempWord = "very cold"
	case avg <= 12:
		tempWord = "chilly"
	case avg <= 20:
		tempWord = "cool to mild"
	case avg <= 27:
		tempWord = "warm"
	default:
		tempWord = "hot"
	}

	var rainWord string
	switch {
	case maxRain >= 70:
		rainWord = "with frequent showers"
	case maxRain >= 40:
		rainWord = "with some showers around"
	case maxRain >= 20:
		rainWord = "with a small chance of showers"
	default:
		rainWord = "mostly dry"
	}

	return fmt.Sprintf("%s %s (%s), around %.1f°C.",
		tempWord, rainWord, strings.ToLower(types.DescribeWeatherCode(leadCode)), avg)
}
