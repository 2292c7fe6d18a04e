package types

// ForecastBundle is the raw forecast payload consumed by every scoring
// component. The hourly and daily groups are parallel arrays aligned by
// position, mirroring the upstream Open-Meteo response; JSON tags match the
// wire names exactly so the bundle decodes straight off the API.
type ForecastBundle struct {
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Timezone  string            `json:"timezone,omitempty"`
	Current   CurrentConditions `json:"current"`
	Hourly    HourlyBlock       `json:"hourly"`
	Daily     DailyBlock        `json:"daily"`
}

// CurrentConditions holds the instantaneous observation block.
type CurrentConditions struct {
	Time          string `json:"time"`
	Temperature   Float  `json:"temperature_2m"`
	ApparentTemp  Float  `json:"apparent_temperature"`
	Humidity      Float  `json:"relative_humidity_2m"`
	Precipitation Float  `json:"precipitation"`
	WeatherCode   Int    `json:"weather_code"`
	WindSpeed     Float  `json:"wind_speed_10m"`
	WindDirection Float  `json:"wind_direction_10m"`
	Pressure      Float  `json:"pressure_msl"`
	IsDay         Int    `json:"is_day"`
}

// HourlyBlock carries the hourly parallel arrays.
type HourlyBlock struct {
	Time         []string `json:"time"`
	Temperature  []Float  `json:"temperature_2m"`
	ApparentTemp []Float  `json:"apparent_temperature"`
	Humidity     []Float  `json:"relative_humidity_2m"`
	RainProb     []Float  `json:"precipitation_probability"`
	UVIndex      []Float  `json:"uv_index"`
	WindSpeed    []Float  `json:"wind_speed_10m"`
	WeatherCode  []Int    `json:"weather_code"`
}

// DailyBlock carries the daily parallel arrays.
type DailyBlock struct {
	Time            []string `json:"time"`
	TempMax         []Float  `json:"temperature_2m_max"`
	TempMin         []Float  `json:"temperature_2m_min"`
	ApparentTempMax []Float  `json:"apparent_temperature_max"`
	ApparentTempMin []Float  `json:"apparent_temperature_min"`
	UVIndexMax      []Float  `json:"uv_index_max"`
	PrecipSum       []Float  `json:"precipitation_sum"`
	RainProbMax     []Float  `json:"precipitation_probability_max"`
	WindSpeedMax    []Float  `json:"wind_speed_10m_max"`
	WeatherCode     []Int    `json:"weather_code"`
	Sunrise         []string `json:"sunrise"`
	Sunset          []string `json:"sunset"`
}

// floatAt guards positional access into a parallel array: groups can be
// ragged when the upstream truncates one series.
func floatAt(vals []Float, i int) Float {
	if i < 0 || i >= len(vals) {
		return Float{}
	}
	return vals[i]
}

func intAt(vals []Int, i int) Int {
	if i < 0 || i >= len(vals) {
		return Int{}
	}
	return vals[i]
}

func stringAt(vals []string, i int) string {
	if i < 0 || i >= len(vals) {
		return ""
	}
	return vals[i]
}

// SampleAt materializes the hourly sample at index i.
func (h HourlyBlock) SampleAt(i int) HourlySample {
	return HourlySample{
		Time:         stringAt(h.Time, i),
		Temperature:  floatAt(h.Temperature, i),
		ApparentTemp: floatAt(h.ApparentTemp, i),
		Humidity:     floatAt(h.Humidity, i),
		RainProb:     floatAt(h.RainProb, i),
		UVIndex:      floatAt(h.UVIndex, i),
		WindSpeed:    floatAt(h.WindSpeed, i),
		WeatherCode:  intAt(h.WeatherCode, i),
	}
}

// Samples materializes every hourly sample in upstream (chronological) order.
func (h HourlyBlock) Samples() []HourlySample {
	out := make([]HourlySample, 0, len(h.Time))
	for i := range h.Time {
		out = append(out, h.SampleAt(i))
	}
	return out
}

// SamplesOn returns the hourly samples whose timestamps carry the given ISO
// date prefix, preserving chronological order.
func (h HourlyBlock) SamplesOn(date string) []HourlySample {
	var out []HourlySample
	for i := range h.Time {
		s := h.SampleAt(i)
		if s.OnDay(date) {
			out = append(out, s)
		}
	}
	return out
}

// AggregateAt materializes the daily aggregate at index i.
func (d DailyBlock) AggregateAt(i int) DailyAggregate {
	return DailyAggregate{
		Date:            stringAt(d.Time, i),
		TempMax:         floatAt(d.TempMax, i),
		TempMin:         floatAt(d.TempMin, i),
		ApparentTempMax: floatAt(d.ApparentTempMax, i),
		ApparentTempMin: floatAt(d.ApparentTempMin, i),
		UVIndexMax:      floatAt(d.UVIndexMax, i),
		PrecipSum:       floatAt(d.PrecipSum, i),
		RainProbMax:     floatAt(d.RainProbMax, i),
		WindSpeedMax:    floatAt(d.WindSpeedMax, i),
		WeatherCode:     intAt(d.WeatherCode, i),
		Sunrise:         stringAt(d.Sunrise, i),
		Sunset:          stringAt(d.Sunset, i),
	}
}

// Aggregates materializes every daily aggregate in chronological order.
func (d DailyBlock) Aggregates() []DailyAggregate {
	out := make([]DailyAggregate, 0, len(d.Time))
	for i := range d.Time {
		out = append(out, d.AggregateAt(i))
	}
	return out
}

// CurrentDate returns the ISO date portion of the current-conditions
// timestamp, falling back to the first daily date when the current block is
// missing. Empty when neither is available.
func (b *ForecastBundle) CurrentDate() string {
	t := b.Current.Time
	for i := 0; i < len(t); i++ {
		if t[i] == 'T' {
			return t[:i]
		}
	}
	if len(b.Daily.Time) > 0 {
		return b.Daily.Time[0]
	}
	return ""
}
