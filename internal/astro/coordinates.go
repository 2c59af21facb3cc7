package astro

// Coordinates holds the equatorial position of the Sun and Greenwich
// apparent sidereal time for one Julian Day. It depends only on the
// Julian Day — there is no observer dependency here (C3).
type Coordinates struct {
	Declination          float64 // degrees, [-90, 90]
	RightAscension       float64 // degrees, [0, 360)
	ApparentSiderealTime float64 // degrees, not normalized
}

// At computes the Sun's equatorial coordinates for the given Julian Day.
func At(jd float64) Coordinates {
	t := (jd - 2451545.0) / 36525.0
	lambda := apparentSolarLongitude(t)
	eps := apparentObliquity(t)

	decl := arcsinD(sinD(eps) * sinD(lambda))
	ra := Unwind(arctan2D(cosD(eps)*sinD(lambda), cosD(lambda)))
	sidereal := apparentSiderealTime(jd, t)

	return Coordinates{
		Declination:          decl,
		RightAscension:       ra,
		ApparentSiderealTime: sidereal,
	}
}
