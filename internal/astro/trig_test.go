package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestArcsinSinRoundTrip is testable property #8 (spec.md §8):
// arcsin(sin x) = x for x in [0, 90] degrees.
func TestArcsinSinRoundTrip(t *testing.T) {
	for x := 0.0; x <= 90.0; x += 7.5 {
		got := arcsinD(sinD(x))
		assert.InDelta(t, x, got, 1e-9)
	}
}
