package types

import "time"

// UnitSystem selects metric or imperial presentation. The engine always
// scores metric values internally; the unit system participates only in
// cache keying and formatting at the API edge.
type UnitSystem string

const (
	UnitsMetric   UnitSystem = "metric"
	UnitsImperial UnitSystem = "imperial"
)

// Valid reports whether the unit system is one of the two known values.
func (u UnitSystem) Valid() bool {
	return u == UnitsMetric || u == UnitsImperial
}

// Location is a geographic point with an optional human-readable name.
type Location struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"display_name,omitempty"`
}

// HourlySample is one hour of forecast data, assembled from the bundle's
// parallel hourly arrays. Time is the local ISO-8601 timestamp at minute
// precision ("2026-08-30T14:00"). Every numeric field is optional.
type HourlySample struct {
	Time         string `json:"time"`
	Temperature  Float  `json:"temperature"`
	ApparentTemp Float  `json:"apparent_temperature"`
	Humidity     Float  `json:"relative_humidity"`
	RainProb     Float  `json:"precipitation_probability"`
	UVIndex      Float  `json:"uv_index"`
	WindSpeed    Float  `json:"wind_speed"`
	WeatherCode  Int    `json:"weather_code"`
}

// OnDay reports whether the sample belongs to the given ISO date. The match
// is a lexical prefix comparison on the timestamp, not calendar arithmetic:
// upstream timestamps are already expressed in the location's local time.
func (s HourlySample) OnDay(date string) bool {
	return len(s.Time) > len(date) && s.Time[:len(date)] == date && s.Time[len(date)] == 'T'
}

// ClockHour returns the local hour (0-23) parsed from the timestamp, or
// false if the timestamp carries no parseable time component.
func (s HourlySample) ClockHour() (int, bool) {
	t := s.Time
	for i := 0; i < len(t); i++ {
		if t[i] != 'T' {
			continue
		}
		if i+2 >= len(t) {
			return 0, false
		}
		h1, h2 := t[i+1], t[i+2]
		if h1 < '0' || h1 > '9' || h2 < '0' || h2 > '9' {
			return 0, false
		}
		h := int(h1-'0')*10 + int(h2-'0')
		if h > 23 {
			return 0, false
		}
		return h, true
	}
	return 0, false
}

// HourMinute returns the "HH:MM" portion of the timestamp, or the raw string
// when no time component is present.
func (s HourlySample) HourMinute() string {
	return clockPortion(s.Time)
}

// clockPortion extracts "HH:MM" from an ISO-8601 local timestamp.
func clockPortion(ts string) string {
	for i := 0; i < len(ts); i++ {
		if ts[i] == 'T' {
			end := i + 6
			if end > len(ts) {
				end = len(ts)
			}
			return ts[i+1 : end]
		}
	}
	return ts
}

// ClockOf is the exported form of clockPortion for presentation callers.
func ClockOf(ts string) string {
	return clockPortion(ts)
}

// DailyAggregate is one day of forecast data, assembled from the bundle's
// parallel daily arrays. Date is the ISO date string ("2026-08-30").
type DailyAggregate struct {
	Date            string `json:"date"`
	TempMax         Float  `json:"temperature_max"`
	TempMin         Float  `json:"temperature_min"`
	ApparentTempMax Float  `json:"apparent_temperature_max"`
	ApparentTempMin Float  `json:"apparent_temperature_min"`
	UVIndexMax      Float  `json:"uv_index_max"`
	PrecipSum       Float  `json:"precipitation_sum"`
	RainProbMax     Float  `json:"precipitation_probability_max"`
	WindSpeedMax    Float  `json:"wind_speed_max"`
	WeatherCode     Int    `json:"weather_code"`
	Sunrise         string `json:"sunrise,omitempty"`
	Sunset          string `json:"sunset,omitempty"`
}

// FavouriteLocation is a saved location. Favourites are the only
// engine-adjacent entities with a lifecycle beyond a single request; they
// live in Postgres.
type FavouriteLocation struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
}

// GeocodeResult is a single forward-geocoding candidate. Choosing among
// candidates is the caller's concern; the API returns them all.
type GeocodeResult struct {
	Name      string  `json:"name"`
	Admin1    string  `json:"admin1,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone,omitempty"`
}
