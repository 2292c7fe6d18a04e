package insights

import "skycast/internal/types"

// NormalizeSeries rescales every defined value in the series into [0, 1]
// against the series' own minimum and maximum. A flat series has its upper
// bound padded by one unit so the scale never divides by zero; absent
// values stay absent. The result has the same length and ordering as the
// input, which lets renderers line a scaled series up against its dates.
func NormalizeSeries(values []types.Float) []types.Float {
	out := make([]types.Float, len(values))

	low, high := types.Float{}, types.Float{}
	for _, v := range values {
		if !v.Valid {
			continue
		}
		if !low.Valid || v.Value < low.Value {
			low = v
		}
		if !high.Valid || v.Value > high.Value {
			high = v
		}
	}
	if !low.Valid {
		return out
	}
	if high.Value == low.Value {
		high = types.F(low.Value + 1)
	}

	span := high.Value - low.Value
	for i, v := range values {
		if !v.Valid {
			continue
		}
		out[i] = types.F((v.Value - low.Value) / span)
	}
	return out
}
