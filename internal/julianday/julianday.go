// Package julianday converts civil UTC dates to Julian day numbers and
// Julian centuries, the time base every downstream astronomy formula is
// expressed in.
package julianday

import (
	"math"
	"time"
)

// FromDate returns the Julian Day for the given UTC civil date and
// fractional hour of day, using the standard Meeus civil-to-JD reduction
// (ch. 7). The Gregorian calendar is assumed throughout; this library only
// ever sees dates long after the 1582 cutover.
func FromDate(year, month, day int, hour float64) float64 {
	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}
	a := math.Floor(float64(y) / 100)
	b := 2 - a + math.Floor(a/4)
	jd := math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + b - 1524.5 +
		hour/24
	return jd
}

// FromTime returns the Julian Day for a time.Time, converted to UTC first.
func FromTime(t time.Time) float64 {
	u := t.UTC()
	h := float64(u.Hour()) + float64(u.Minute())/60 + float64(u.Second())/3600
	return FromDate(u.Year(), int(u.Month()), u.Day(), h)
}

// AddDays returns the Julian Day offset by n civil days (may be negative
// or fractional).
func AddDays(jd float64, n float64) float64 {
	return jd + n
}

// Century returns T, the number of Julian centuries since epoch J2000.0,
// for the given Julian Day. See Meeus (22.1).
func Century(jd float64) float64 {
	return (jd - 2451545.0) / 36525.0
}
