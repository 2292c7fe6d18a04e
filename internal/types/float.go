package types

import (
	"bytes"
	"encoding/json"
	"math"
)

// Float is an optional float64. Meteorological feeds routinely omit values
// (sensor gaps, horizon limits), and an absent reading must flow through every
// formula as "absent" rather than as zero or as an error. The zero value is
// the absent Float.
type Float struct {
	Value float64
	Valid bool
}

// F wraps a known float64 value.
func F(v float64) Float {
	return Float{Value: v, Valid: true}
}

// FloatPtr converts a possibly-nil pointer into a Float.
func FloatPtr(p *float64) Float {
	if p == nil {
		return Float{}
	}
	return F(*p)
}

// Or returns the value if present, otherwise def.
func (f Float) Or(def float64) float64 {
	if !f.Valid {
		return def
	}
	return f.Value
}

// Round3 returns the value rounded to three decimal places. Used for cache
// key coordinates so that near-duplicate positions collapse to one key.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

var jsonNull = []byte("null")

// MarshalJSON encodes an absent Float as JSON null.
func (f Float) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return jsonNull, nil
	}
	return json.Marshal(f.Value)
}

// UnmarshalJSON decodes JSON null (and anything non-numeric the upstream may
// emit for a gap) as the absent Float.
func (f *Float) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*f = Float{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		// Upstream occasionally encodes gaps as strings; treat any
		// non-numeric token as absent rather than failing the decode.
		*f = Float{}
		return nil
	}
	*f = F(v)
	return nil
}

// Int is an optional integer, used for WMO weather codes and flags.
type Int struct {
	Value int
	Valid bool
}

// I wraps a known int value.
func I(v int) Int {
	return Int{Value: v, Valid: true}
}

// Or returns the value if present, otherwise def.
func (i Int) Or(def int) int {
	if !i.Valid {
		return def
	}
	return i.Value
}

// MarshalJSON encodes an absent Int as JSON null.
func (i Int) MarshalJSON() ([]byte, error) {
	if !i.Valid {
		return jsonNull, nil
	}
	return json.Marshal(i.Value)
}

// UnmarshalJSON decodes JSON null or a non-numeric token as the absent Int.
// Weather codes arrive as integers but some feeds emit them as floats.
func (i *Int) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*i = Int{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*i = Int{}
		return nil
	}
	*i = I(int(v))
	return nil
}
