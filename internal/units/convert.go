// Package units provides stateless metric/imperial conversions. The engine
// scores metric values exclusively; these conversions apply only at the
// formatting boundary and when normalizing imperial caller input.
package units

import "skycast/internal/types"

// mmPerInch and kmhPerMph are the exact conversion constants; wind uses the
// common 0.621371 km/h-to-mph factor with division for the inverse so the
// two directions round-trip.
const (
	mmPerInch = 25.4
	kmhPerMph = 0.621371
)

// CToF converts Celsius to Fahrenheit. Absent in, absent out.
func CToF(c types.Float) types.Float {
	if !c.Valid {
		return types.Float{}
	}
	return types.F(c.Value*9/5 + 32)
}

// FToC converts Fahrenheit to Celsius.
func FToC(f types.Float) types.Float {
	if !f.Valid {
		return types.Float{}
	}
	return types.F((f.Value - 32) * 5 / 9)
}

// MmToInch converts precipitation depth from millimeters to inches.
func MmToInch(mm types.Float) types.Float {
	if !mm.Valid {
		return types.Float{}
	}
	return types.F(mm.Value / mmPerInch)
}

// InchToMm converts precipitation depth from inches to millimeters.
func InchToMm(in types.Float) types.Float {
	if !in.Valid {
		return types.Float{}
	}
	return types.F(in.Value * mmPerInch)
}

// KmhToMph converts wind speed from km/h to mph.
func KmhToMph(kmh types.Float) types.Float {
	if !kmh.Valid {
		return types.Float{}
	}
	return types.F(kmh.Value * kmhPerMph)
}

// MphToKmh converts wind speed from mph to km/h.
func MphToKmh(mph types.Float) types.Float {
	if !mph.Valid {
		return types.Float{}
	}
	return types.F(mph.Value / kmhPerMph)
}
