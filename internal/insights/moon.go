package insights

import "time"

// synodicDays is the mean length of a lunar month.
const synodicDays = 29.53058867

// moonEpoch is a known new moon used as the phase origin.
var moonEpoch = time.Date(2000, time.January, 6, 0, 0, 0, 0, time.UTC)

// MoonPhase names the moon's phase on the given date, derived from the
// fraction of the synodic cycle elapsed since a reference new moon.
func MoonPhase(date time.Time) string {
	days := date.Sub(moonEpoch).Seconds() / 86400.0
	phase := days - float64(int(days/synodicDays))*synodicDays
	if phase < 0 {
		phase += synodicDays
	}
	frac := phase / synodicDays

	switch {
	case frac < 0.03 || frac > 0.97:
		return "New moon"
	case frac < 0.22:
		return "Waxing crescent"
	case frac < 0.28:
		return "First quarter"
	case frac < 0.47:
		return "Waxing gibbous"
	case frac < 0.53:
		return "Full moon"
	case frac < 0.72:
		return "Waning gibbous"
	case frac < 0.78:
		return "Last quarter"
	default:
		return "Waning crescent"
	}
}
