package astro

// Mean solar longitude L0(T), Meeus (25.2) low-accuracy series truncated to
// the terms used throughout this package (degrees).
func meanSolarLongitude(t float64) float64 {
	return Unwind(280.46646 + 36000.76983*t + 0.0003032*t*t)
}

// Mean lunar longitude Lp(T), Meeus (47.1) first term (degrees).
func meanLunarLongitude(t float64) float64 {
	return Unwind(218.3165 + 481267.8813*t)
}

// Longitude of the ascending node of the Moon's mean orbit Omega(T),
// Meeus (47.7) (degrees).
func ascendingNode(t float64) float64 {
	return Unwind(125.04452 - 1934.136261*t)
}

// Mean anomaly of the Sun M(T), Meeus (25.3) (degrees).
func meanAnomaly(t float64) float64 {
	return Unwind(357.52911 + 35999.05029*t - 0.0001537*t*t)
}

// Equation of center C(T, M), Meeus (25.4) (degrees).
func equationOfCenter(t, m float64) float64 {
	return (1.914602-0.004817*t-0.000014*t*t)*sinD(m) +
		(0.019993-0.000101*t)*sinD(2*m) +
		0.000289*sinD(3*m)
}

// apparentSolarLongitude returns lambda, the apparent longitude of the Sun
// referred to the true equinox of date, Meeus p.164: L = L0 + C - 0.00569
// - 0.00478*sin(Omega) (degrees).
func apparentSolarLongitude(t float64) float64 {
	l0 := meanSolarLongitude(t)
	m := meanAnomaly(t)
	c := equationOfCenter(t, m)
	omega := ascendingNode(t)
	return l0 + c - 0.00569 - 0.00478*sinD(omega)
}

// meanObliquity returns epsilon0(T), Meeus (22.2) (degrees).
func meanObliquity(t float64) float64 {
	sec := 46.8150*t + 0.00059*t*t - 0.001813*t*t*t
	return 23 + 26/60.0 + 21.448/3600.0 - sec/3600.0
}

// apparentObliquity returns epsilon = epsilon0 + 0.00256*cos(Omega)
// (degrees), Meeus p.165.
func apparentObliquity(t float64) float64 {
	return meanObliquity(t) + 0.00256*cosD(ascendingNode(t))
}

// meanSiderealTime returns Theta0(T), the mean sidereal time at Greenwich,
// using the full Meeus (12.4) four-term expression (degrees, not yet
// normalized — callers that need [0,360) should Unwind the result).
func meanSiderealTime(jd, t float64) float64 {
	return 280.46061837 +
		360.98564736629*(jd-2451545.0) +
		0.000387933*t*t -
		t*t*t/38710000.0
}

// nutation returns the nutation in longitude dPsi and in obliquity dEps
// (degrees), using Meeus's four-term abbreviated series (p.144) built from
// the mean lunar longitude, mean solar longitude, and ascending node.
func nutation(t float64) (dPsi, dEps float64) {
	l0 := meanSolarLongitude(t)
	lp := meanLunarLongitude(t)
	omega := ascendingNode(t)
	dPsi = (-17.2*sinD(omega) + 1.32*sinD(2*l0) + 0.23*sinD(2*lp) + 0.21*sinD(2*omega)) / 3600.0
	dEps = (9.2*cosD(omega) + 0.57*cosD(2*l0) + 0.10*cosD(2*lp) - 0.09*cosD(2*omega)) / 3600.0
	return dPsi, dEps
}

// apparentSiderealTime returns the apparent sidereal time at Greenwich,
// Theta0 + dPsi*cos(epsilon), in degrees (not normalized).
func apparentSiderealTime(jd, t float64) float64 {
	theta0 := meanSiderealTime(jd, t)
	dPsi, dEps := nutation(t)
	eps0 := meanObliquity(t)
	return theta0 + dPsi*cosD(eps0+dEps)
}
