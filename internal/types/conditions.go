package types

import "fmt"

// Pictogram is the coarse condition category used to pick an icon for a WMO
// weather code.
type Pictogram string

const (
	PictogramClear        Pictogram = "clear"
	PictogramPartlyCloudy Pictogram = "partly-cloudy"
	PictogramOvercast     Pictogram = "overcast"
	PictogramFog          Pictogram = "fog"
	PictogramDrizzle      Pictogram = "drizzle"
	PictogramRain         Pictogram = "rain"
	PictogramSnow         Pictogram = "snow"
	PictogramShowers      Pictogram = "showers"
	PictogramSnowShowers  Pictogram = "snow-showers"
	PictogramThunderstorm Pictogram = "thunderstorm"
	PictogramUnknown      Pictogram = "unknown"
)

// weatherDescriptions maps WMO weather codes to human-readable condition
// text. The wording is part of the public contract and must not drift.
var weatherDescriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	56: "Light freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Light freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snowfall",
	73: "Moderate snowfall",
	75: "Heavy snowfall",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

// DescribeWeatherCode returns the condition text for a WMO code. Codes
// outside the table fall back to a generic "Weather code N" description;
// an absent code is "Unknown".
func DescribeWeatherCode(code Int) string {
	if !code.Valid {
		return "Unknown"
	}
	if desc, ok := weatherDescriptions[code.Value]; ok {
		return desc
	}
	return fmt.Sprintf("Weather code %d", code.Value)
}

// PictogramForCode maps a WMO code to its pictogram category using the
// standard code ranges.
func PictogramForCode(code Int) Pictogram {
	if !code.Valid {
		return PictogramUnknown
	}
	c := code.Value
	switch {
	case c == 0:
		return PictogramClear
	case c == 1 || c == 2:
		return PictogramPartlyCloudy
	case c == 3:
		return PictogramOvercast
	case c == 45 || c == 48:
		return PictogramFog
	case c >= 51 && c <= 57:
		return PictogramDrizzle
	case c >= 61 && c <= 67:
		return PictogramRain
	case c >= 71 && c <= 77:
		return PictogramSnow
	case c >= 80 && c <= 82:
		return PictogramShowers
	case c == 85 || c == 86:
		return PictogramSnowShowers
	case c >= 95:
		return PictogramThunderstorm
	default:
		return PictogramUnknown
	}
}
