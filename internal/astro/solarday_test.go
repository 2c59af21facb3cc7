package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolarDayMakkahSummerSolstice(t *testing.T) {
	d := NewSolarDay(2024, 6, 21, 21.4225, 39.8262)

	// Dhuhr (solar transit) at Makkah's longitude should land close to
	// 09:22:36 UTC on the June solstice (published Makkah Dhuhr times run
	// ~12:22-12:26 AST in June; AST is UTC+3). spec.md S1's "~09:07 UTC"
	// prose does not match this formula chain and is not used as the
	// oracle here.
	assert.InDelta(t, 9.0+22.6/60, d.TransitHours, 0.05)

	require.True(t, Available(d.SunriseHours))
	require.True(t, Available(d.SunsetHours))
	assert.Less(t, d.SunriseHours, d.TransitHours)
	assert.Greater(t, d.SunsetHours, d.TransitHours)
}

func TestHourAngleSignalsPolarCondition(t *testing.T) {
	// At 70N in June (midnight sun), the sun never sinks to 18 degrees
	// below the horizon, so the Fajr angle is unreachable: the solver must
	// signal !ok rather than panicking or returning a bogus value (C4 edge
	// case).
	d := NewSolarDay(2024, 6, 21, 70.0, 20.0)
	_, ok := d.HourAngle(-18, false)
	assert.False(t, ok)
}

func TestAfternoonHanafiLaterThanStandard(t *testing.T) {
	d := NewSolarDay(2024, 6, 21, 33.5138, 36.2765)
	stdAsr, ok := d.Afternoon(1)
	require.True(t, ok)
	hanafiAsr, ok := d.Afternoon(2)
	require.True(t, ok)
	assert.Greater(t, hanafiAsr, stdAsr)

	deltaMinutes := (hanafiAsr - stdAsr) * 60
	assert.GreaterOrEqual(t, deltaMinutes, 20.0)
	assert.LessOrEqual(t, deltaMinutes, 100.0)
}

func TestUnwindAndQuadrantShift(t *testing.T) {
	assert.InDelta(t, 10.0, Unwind(370), 1e-9)
	assert.InDelta(t, 350.0, Unwind(-10), 1e-9)
	assert.InDelta(t, -10.0, QuadrantShift(350), 1e-9)
	assert.InDelta(t, 0.0, QuadrantShift(360), 1e-9)
}

func TestInterpAngleHandlesWraparound(t *testing.T) {
	// interpolating right ascension across a 0h/24h (0/360deg) wrap should
	// not produce a near-360deg jump.
	got := InterpAngle(359, 1, 3, 0.5)
	assert.InDelta(t, 2.0, got, 0.5)
}
