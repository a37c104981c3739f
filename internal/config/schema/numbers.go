package schema

// Layer files arrive through different decoders: JSON produces float64,
// TOML produces int64, and the built-in default table uses native Go
// ints. The helpers below normalize across those representations.

// toFloat64 converts any numeric value to float64.
func toFloat64(v any) (float64, bool) {
	switch val := v.(type) {
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	case float32:
		return float64(val), true
	case float64:
		return val, true
	default:
		return 0, false
	}
}

// toInt converts an integral numeric value to int. Floats with a
// fractional part are rejected.
func toInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int32:
		return int(val), true
	case int64:
		return int(val), true
	case uint:
		return int(val), true
	case uint32:
		return int(val), true
	case uint64:
		return int(val), true
	case float32:
		if float32(int(val)) == val {
			return int(val), true
		}
		return 0, false
	case float64:
		if float64(int(val)) == val {
			return int(val), true
		}
		return 0, false
	default:
		return 0, false
	}
}
