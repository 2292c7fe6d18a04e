package insights

import (
	"fmt"

	"skycast/internal/types"
)

// maxOverviewDays caps how many daily aggregates the summarizer considers.
const maxOverviewDays = 12

// Trend phrases emitted by Summarize.
const (
	TrendStable       = "stable"
	TrendMilder       = "turns milder"
	TrendCooler       = "cools down"
	TrendInsufficient = "insufficient data"
)

// Rain character phrases emitted by Summarize.
const (
	RainMostlyDry = "mostly dry"
	RainShowery   = "showery with dry spells"
	RainWet       = "several wetter days"
)

// TempRange is the overall span of the period. Either side may be absent
// when its series has no defined values.
type TempRange struct {
	Low  types.Float `json:"low"`
	High types.Float `json:"high"`
}

// NotableDay marks an extremum within the period: the warmest, coldest,
// wettest, or windiest day.
type NotableDay struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Overview is the structured multi-day narrative handed to the presentation
// layer. Notable-day pointers are nil when every day is missing the
// relevant field.
type Overview struct {
	Days          int         `json:"days"`
	Range         TempRange   `json:"range"`
	Trend         string      `json:"trend"`
	RainCharacter string      `json:"rain_character,omitempty"`
	Warmest       *NotableDay `json:"warmest,omitempty"`
	Coldest       *NotableDay `json:"coldest,omitempty"`
	Wettest       *NotableDay `json:"wettest,omitempty"`
	Windiest      *NotableDay `json:"windiest,omitempty"`
	Headline      string      `json:"headline"`
}

// Summarize consumes up to twelve daily aggregates and derives the overall
// temperature range, a trend direction, the rain character, the notable
// days, and a one-line headline. Each derivation scans only the days that
// define the field it needs; a fully-absent series drops that part of the
// overview rather than failing it.
func Summarize(days []types.DailyAggregate) Overview {
	if len(days) > maxOverviewDays {
		days = days[:maxOverviewDays]
	}

	var highs, lows, rains []float64
	for _, d := range days {
		if d.TempMax.Valid {
			highs = append(highs, d.TempMax.Value)
		}
		if d.TempMin.Valid {
			lows = append(lows, d.TempMin.Value)
		}
		if d.PrecipSum.Valid {
			rains = append(rains, d.PrecipSum.Value)
		}
	}

	ov := Overview{Days: len(days)}

	for _, h := range highs {
		if !ov.Range.High.Valid || h > ov.Range.High.Value {
			ov.Range.High = types.F(h)
		}
	}
	for _, l := range lows {
		if !ov.Range.Low.Valid || l < ov.Range.Low.Value {
			ov.Range.Low = types.F(l)
		}
	}

	ov.Trend = trendPhrase(highs)

	totalRain := 0.0
	for _, r := range rains {
		totalRain += r
	}
	if len(rains) > 0 {
		switch {
		case totalRain < 2:
			ov.RainCharacter = RainMostlyDry
		case totalRain < 10:
			ov.RainCharacter = RainShowery
		default:
			ov.RainCharacter = RainWet
		}
	}

	ov.Warmest = pickDay(days, func(d types.DailyAggregate) types.Float { return d.TempMax }, true)
	ov.Coldest = pickDay(days, func(d types.DailyAggregate) types.Float { return d.TempMin }, false)
	ov.Wettest = pickDay(days, func(d types.DailyAggregate) types.Float { return d.PrecipSum }, true)
	ov.Windiest = pickDay(days, func(d types.DailyAggregate) types.Float { return d.WindSpeedMax }, true)

	ov.Headline = headline(len(days), highs, rains, totalRain)

	return ov
}

// trendPhrase compares the average daily high over the first and last
// min(3, n) defined highs. Fewer than two defined highs cannot support a
// direction.
func trendPhrase(highs []float64) string {
	n := len(highs)
	if n < 2 {
		return TrendInsufficient
	}
	span := n
	if span > 3 {
		span = 3
	}
	earlyAvg := mean(highs[:span])
	lateAvg := mean(highs[n-span:])
	diff := lateAvg - earlyAvg
	switch {
	case diff >= 1 || diff <= -1:
		if diff > 0 {
			return TrendMilder
		}
		return TrendCooler
	default:
		return TrendStable
	}
}

// pickDay finds the day maximizing (or minimizing) the given field with a
// forward linear scan, so the first occurrence wins ties. Days missing the
// field are excluded; nil when no day defines it.
func pickDay(days []types.DailyAggregate, field func(types.DailyAggregate) types.Float, wantMax bool) *NotableDay {
	var best *NotableDay
	for _, d := range days {
		v := field(d)
		if !v.Valid {
			continue
		}
		if best == nil || (wantMax && v.Value > best.Value) || (!wantMax && v.Value < best.Value) {
			best = &NotableDay{Date: d.Date, Value: v.Value}
		}
	}
	return best
}

// headline combines an average-high temperature band with a rain-total band.
func headline(days int, highs, rains []float64, totalRain float64) string {
	tempWord := "mixed"
	if len(highs) > 0 {
		switch avg := mean(highs); {
		case avg <= 5:
			tempWord = "mostly cold"
		case avg <= 12:
			tempWord = "rather cool"
		case avg <= 20:
			tempWord = "mild"
		case avg <= 27:
			tempWord = "warm"
		default:
			tempWord = "quite hot"
		}
	}

	rainWord := "and often dry"
	if len(rains) > 0 {
		switch {
		case totalRain > 8:
			rainWord = "with several wet days"
		case totalRain > 2:
			rainWord = "with occasional showers"
		}
	}

	return fmt.Sprintf("The next %d days look %s %s.", days, tempWord, rainWord)
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
