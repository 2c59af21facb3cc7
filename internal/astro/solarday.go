package astro

import "github.com/masaajid-hub/prayer-times/internal/julianday"

// siderealRate is the number of degrees the Earth rotates (relative to the
// mean equinox) per mean solar day, Meeus p.102 constant used to advance
// Greenwich apparent sidereal time from m0 to the corrected transit.
const siderealRate = 360.985647

// standardRefraction is the altitude (degrees) used for sunrise/sunset:
// -50/60 deg accounts for atmospheric refraction (34') plus the solar
// disk's semidiameter (16').
const standardRefraction = -50.0 / 60.0

// SolarDay is the three-point-interpolated solar transit/hour-angle solver
// for one observer and one civil date (C4). Solar coordinates for the
// previous and next day are retained so HourAngle and Afternoon can
// interpolate across the D-1/D/D+1 triple per Meeus p.102, rather than
// approximating with a single day's coordinates.
type SolarDay struct {
	ApproxTransit float64 // m0, fraction of a day, [0, 1)
	TransitHours  float64 // corrected transit (Dhuhr), decimal UTC hours
	SunriseHours  float64
	SunsetHours   float64

	latitude  float64
	longitude float64
	today     Coordinates
	prev      Coordinates
	next      Coordinates
}

// NewSolarDay builds the solver for civil UTC date (year, month, day) at
// the given observer latitude/longitude (degrees; longitude east
// positive).
func NewSolarDay(year, month, day int, latitude, longitude float64) SolarDay {
	jd := julianday.FromDate(year, month, day, 0)
	today := At(jd)
	prev := At(julianday.AddDays(jd, -1))
	next := At(julianday.AddDays(jd, 1))

	d := SolarDay{
		latitude:  latitude,
		longitude: longitude,
		today:     today,
		prev:      prev,
		next:      next,
	}

	raw := (today.RightAscension - longitude - today.ApparentSiderealTime) / 360
	d.ApproxTransit = Mod(raw, 1)

	d.TransitHours = d.correctedTransit(d.ApproxTransit)

	if h, ok := d.HourAngle(standardRefraction, false); ok {
		d.SunriseHours = h
	} else {
		d.SunriseHours = NotAvailable
	}
	if h, ok := d.HourAngle(standardRefraction, true); ok {
		d.SunsetHours = h
	} else {
		d.SunsetHours = NotAvailable
	}

	return d
}

// NotAvailable marks an hour-angle result as unreachable (the NaN signal
// of DESIGN NOTES, surfaced here as a sentinel rather than a float NaN so
// callers can branch without float comparison footguns).
const NotAvailable = -1e18

// Available reports whether an hour previously returned from SunriseHours
// or SunsetHours represents a real solution.
func Available(hours float64) bool {
	return hours != NotAvailable
}

// correctedTransit implements Meeus p.102's correction of the approximate
// transit m0 into the true solar transit instant, in decimal UTC hours.
func (d SolarDay) correctedTransit(m float64) float64 {
	theta := Unwind(d.today.ApparentSiderealTime + siderealRate*m)
	a := Unwind(InterpAngle(d.prev.RightAscension, d.today.RightAscension, d.next.RightAscension, m))
	h := QuadrantShift(theta - (-d.longitude) - a)
	return (m + h/-360) * 24
}

// HourAngle solves for the decimal UTC hour at which the Sun reaches
// altitude h0 (degrees, negative for below the horizon), before transit
// (afterTransit=false) or after it (afterTransit=true). ok is false when
// the Sun never reaches h0 at this latitude/declination (the |term|>1
// polar-condition signal of C4 step 4).
func (d SolarDay) HourAngle(h0 float64, afterTransit bool) (hours float64, ok bool) {
	phi := d.latitude
	delta := d.today.Declination

	term := (sinD(h0) - sinD(phi)*sinD(delta)) / (cosD(phi) * cosD(delta))
	if term > 1 || term < -1 {
		return 0, false
	}
	h0Angle := arccosD(term)

	m := d.ApproxTransit
	if afterTransit {
		m += h0Angle / 360
	} else {
		m -= h0Angle / 360
	}

	theta := Unwind(d.today.ApparentSiderealTime + siderealRate*m)
	a := Unwind(InterpAngle(d.prev.RightAscension, d.today.RightAscension, d.next.RightAscension, m))
	deltaM := Interp(d.prev.Declination, d.today.Declination, d.next.Declination, m)
	localH := theta - (-d.longitude) - a
	actualAlt := Altitude(phi, deltaM, localH)

	denom := 360 * cosD(deltaM) * cosD(phi) * sinD(localH)
	if denom == 0 {
		return 0, false
	}
	dm := (actualAlt - h0) / denom

	return (m + dm) * 24, true
}

// Afternoon solves the Asr hour angle: the instant the Sun's altitude
// makes an object's shadow equal shadowFactor times the object's own
// length plus its shadow length at transit (shadowFactor=1 Standard,
// shadowFactor=2 Hanafi), per C4 step 6.
func (d SolarDay) Afternoon(shadowFactor float64) (hours float64, ok bool) {
	phi := d.latitude
	delta := d.today.Declination

	tangent := mathAbs(phi - delta)
	angle := arctanD(1 / (shadowFactor + tanD(tangent)))
	return d.HourAngle(angle, true)
}

func mathAbs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
