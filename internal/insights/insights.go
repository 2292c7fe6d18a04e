package insights

import (
	"time"

	"skycast/internal/types"
)

// DayInsights is the full derived output for one day of a forecast bundle:
// everything the presentation layer renders without further computation.
type DayInsights struct {
	Date         string          `json:"date"`
	Condition    string          `json:"condition"`
	Pictogram    types.Pictogram `json:"pictogram"`
	Comfort      types.Float     `json:"comfort"`
	BestHour     string          `json:"best_hour,omitempty"`
	Activities   ActivityRanking `json:"activities"`
	Overview     Overview        `json:"overview"`
	MicroSummary string          `json:"micro_summary"`
	Story        []PeriodSummary `json:"story"`
	UVBand       string          `json:"uv_band"`
	MoonPhase    string          `json:"moon_phase,omitempty"`
	Alerts       []string        `json:"alerts,omitempty"`
}

// ForDay runs every derivation over the bundle for the given ISO date and
// assembles the result. An empty date defaults to the bundle's current day.
// The components run independently over the same bundle; a gap in one series
// degrades only the outputs that need it.
func ForDay(bundle *types.ForecastBundle, date string) DayInsights {
	if date == "" {
		date = bundle.CurrentDate()
	}
	samples := bundle.Hourly.SamplesOn(date)
	days := bundle.Daily.Aggregates()

	cur := bundle.Current
	comfort := ComfortScore(types.UnitsMetric,
		cur.Temperature, cur.Humidity, cur.WindSpeed, types.Float{}, types.Float{})

	bestHour, _ := BestOutdoorHour(samples)

	// The aggregate for an unknown date is the zero value, which leaves its
	// readings absent and degrades the derivations that need them.
	var today types.DailyAggregate
	for _, d := range days {
		if d.Date == date {
			today = d
			break
		}
	}

	out := DayInsights{
		Date:         date,
		Condition:    types.DescribeWeatherCode(cur.WeatherCode),
		Pictogram:    types.PictogramForCode(cur.WeatherCode),
		Comfort:      comfort,
		BestHour:     bestHour,
		Activities:   RankActivityHours(samples),
		Overview:     Summarize(days),
		MicroSummary: MicroSummary(cur, today, bestHour),
		Story:        DayStory(samples),
		UVBand:       InterpretUV(today.UVIndexMax),
		Alerts:       DayAlerts(today, cur.WeatherCode),
	}

	if t, err := time.Parse("2006-01-02", date); err == nil {
		out.MoonPhase = MoonPhase(t)
	}

	return out
}
