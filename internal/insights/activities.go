package insights

import (
	"sort"

	"skycast/internal/types"
)

// Activity identifies one of the ranked outdoor activities.
type Activity string

const (
	ActivityWalking    Activity = "walking"
	ActivitySport      Activity = "sport"
	ActivityStargazing Activity = "stargazing"
)

// topHoursPerActivity caps how many hours each ranking returns.
const topHoursPerActivity = 3

// RankedHour is one entry of an activity ranking.
type RankedHour struct {
	Time  string  `json:"time"`
	Score float64 `json:"score"`
}

// ActivityRanking holds the top hours for each activity, best first.
// Lists are shorter than three when fewer valid hours exist, and empty when
// the day has no hour with a temperature reading.
type ActivityRanking struct {
	Walking    []RankedHour `json:"walking"`
	Sport      []RankedHour `json:"sport"`
	Stargazing []RankedHour `json:"stargazing"`
}

// RankActivityHours scores each hour of a day for walking, sport, and
// stargazing and returns the top three hours per activity.
//
// The walking and sport scores build on the hour's comfort index computed
// with humidity omitted; stargazing ignores comfort entirely and rewards
// clear skies and night hours. Ties resolve chronologically: the sort is
// stable and the input arrives in chronological order.
func RankActivityHours(samples []types.HourlySample) ActivityRanking {
	type scoredHour struct {
		time  string
		walk  float64
		sport float64
		star  float64
	}

	var scored []scoredHour
	for _, s := range samples {
		if !s.Temperature.Valid {
			continue
		}

		comfort := ComfortScore(types.UnitsMetric, s.Temperature, types.Float{}, s.WindSpeed, s.UVIndex, s.RainProb).Or(0)
		rain := s.RainProb.Or(0)
		uv := s.UVIndex.Or(0)
		wind := s.WindSpeed.Or(0)
		code := s.WeatherCode.Or(0)

		walk := comfort - rain*0.6 - max0(wind-25)*0.4
		sport := comfort - rain*0.7 - max0(uv-5)*4

		skyBonus := -10.0
		switch code {
		case 0, 1:
			skyBonus = 20
		case 2:
			skyBonus = 5
		}
		nightBonus := 0.0
		if h, ok := s.ClockHour(); ok && (h >= 19 || h <= 5) {
			nightBonus = 15
		}
		star := skyBonus + nightBonus - rain*0.8

		scored = append(scored, scoredHour{time: s.Time, walk: walk, sport: sport, star: star})
	}

	top := func(by func(scoredHour) float64) []RankedHour {
		ranked := make([]scoredHour, len(scored))
		copy(ranked, scored)
		sort.SliceStable(ranked, func(i, j int) bool {
			return by(ranked[i]) > by(ranked[j])
		})
		if len(ranked) > topHoursPerActivity {
			ranked = ranked[:topHoursPerActivity]
		}
		out := make([]RankedHour, 0, len(ranked))
		for _, r := range ranked {
			out = append(out, RankedHour{Time: r.time, Score: by(r)})
		}
		return out
	}

	return ActivityRanking{
		Walking:    top(func(h scoredHour) float64 { return h.walk }),
		Sport:      top(func(h scoredHour) float64 { return h.sport }),
		Stargazing: top(func(h scoredHour) float64 { return h.star }),
	}
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
