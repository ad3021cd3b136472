package pricing

import (
	"math"
	"sort"
	"strconv"
)

// Range is a (min, typical, max) cost band. Construction and sanitizing
// keep min <= typical <= max.
type Range struct {
	Min     float64 `json:"min"`
	Typical float64 `json:"typical"`
	Max     float64 `json:"max"`
}

// NewRange builds a Range, reordering the components if needed.
func NewRange(min, typical, max float64) Range {
	values := []float64{min, typical, max}
	sort.Float64s(values)
	return Range{Min: values[0], Typical: values[1], Max: values[2]}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Mul scales all three components by a quantity, rounded to cents.
func (r Range) Mul(quantity float64) Range {
	return Range{
		Min:     round2(r.Min * quantity),
		Typical: round2(r.Typical * quantity),
		Max:     round2(r.Max * quantity),
	}
}

// Add sums two ranges component-wise.
func (r Range) Add(other Range) Range {
	return Range{
		Min:     r.Min + other.Min,
		Typical: r.Typical + other.Typical,
		Max:     r.Max + other.Max,
	}
}

// Round rounds all components to cents.
func (r Range) Round() Range {
	return Range{Min: round2(r.Min), Typical: round2(r.Typical), Max: round2(r.Max)}
}

// toFloat coerces loosely-typed override values (JSON or YAML decoded) to a
// float. Anything unparsable reports false.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// SanitizeRange parses an externally supplied override into a Range. Each
// malformed component falls back to the matching fallback component; the
// result is reordered to restore min <= typical <= max.
func SanitizeRange(value any, fallback Range) Range {
	raw, ok := value.(map[string]any)
	if !ok {
		return fallback
	}
	parse := func(key string, def float64) float64 {
		v, present := raw[key]
		if !present {
			return def
		}
		f, ok := toFloat(v)
		if !ok {
			return def
		}
		return f
	}
	return NewRange(
		parse("min", fallback.Min),
		parse("typical", fallback.Typical),
		parse("max", fallback.Max),
	)
}
