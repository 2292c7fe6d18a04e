package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeWeatherCode(t *testing.T) {
	tests := []struct {
		name string
		code Int
		want string
	}{
		{"clear", I(0), "Clear sky"},
		{"partly cloudy", I(2), "Partly cloudy"},
		{"fog", I(45), "Fog"},
		{"slight rain", I(61), "Slight rain"},
		{"thunderstorm", I(95), "Thunderstorm"},
		{"heavy hail", I(99), "Thunderstorm with heavy hail"},
		{"unmapped", I(42), "Weather code 42"},
		{"absent", Int{}, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DescribeWeatherCode(tt.code))
		})
	}
}

func TestPictogramForCode(t *testing.T) {
	tests := []struct {
		name string
		code Int
		want Pictogram
	}{
		{"clear", I(0), PictogramClear},
		{"mainly clear", I(1), PictogramPartlyCloudy},
		{"overcast", I(3), PictogramOvercast},
		{"fog", I(48), PictogramFog},
		{"drizzle", I(53), PictogramDrizzle},
		{"rain", I(65), PictogramRain},
		{"snow", I(75), PictogramSnow},
		{"showers", I(81), PictogramShowers},
		{"snow showers", I(86), PictogramSnowShowers},
		{"thunderstorm", I(96), PictogramThunderstorm},
		{"unmapped", I(42), PictogramUnknown},
		{"absent", Int{}, PictogramUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PictogramForCode(tt.code))
		})
	}
}
