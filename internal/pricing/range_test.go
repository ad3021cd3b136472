package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRangeReorders(t *testing.T) {
	r := NewRange(100, 20, 50)
	assert.Equal(t, Range{Min: 20, Typical: 50, Max: 100}, r)
}

func TestRangeMulRoundsToCents(t *testing.T) {
	r := Range{Min: 0.8, Typical: 1.2, Max: 1.8}.Mul(3)
	assert.Equal(t, Range{Min: 2.4, Typical: 3.6, Max: 5.4}, r)

	r = Range{Min: 0.333, Typical: 0.666, Max: 0.999}.Mul(1)
	assert.Equal(t, Range{Min: 0.33, Typical: 0.67, Max: 1.0}, r)
}

func TestRangeAdd(t *testing.T) {
	sum := Range{Min: 1, Typical: 2, Max: 3}.Add(Range{Min: 10, Typical: 20, Max: 30})
	assert.Equal(t, Range{Min: 11, Typical: 22, Max: 33}, sum)
}

func TestSanitizeRangeMalformedComponents(t *testing.T) {
	fallback := NewRange(85, 140, 240)

	// Non-map overrides keep the fallback untouched.
	assert.Equal(t, fallback, SanitizeRange("kaputt", fallback))
	assert.Equal(t, fallback, SanitizeRange(nil, fallback))

	// A malformed component falls back individually, then the range is
	// reordered.
	got := SanitizeRange(map[string]any{"min": "x", "typical": 100, "max": 50}, fallback)
	assert.Equal(t, Range{Min: 50, Typical: 85, Max: 100}, got)
}

func TestSanitizeRangeStringNumbers(t *testing.T) {
	fallback := NewRange(10, 20, 30)
	got := SanitizeRange(map[string]any{"min": "12.5", "typical": int64(25), "max": float32(40)}, fallback)
	assert.Equal(t, Range{Min: 12.5, Typical: 25, Max: 40}, got)
}

func TestSanitizeRangeUnsortedInput(t *testing.T) {
	fallback := NewRange(10, 20, 30)
	got := SanitizeRange(map[string]any{"min": 300, "typical": 100, "max": 200}, fallback)
	assert.Equal(t, Range{Min: 100, Typical: 200, Max: 300}, got)
}
