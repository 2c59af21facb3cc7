package prayer

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/masaajid-hub/prayer-times/internal/astro"
)

// CalculationInput bundles everything the core calculation needs, mirroring
// the language-agnostic `calculate(...)` surface of §6.
type CalculationInput struct {
	Date        Date
	Coordinates Coordinates
	MethodId    MethodId
	AsrSchool   AsrSchool
	HighLatRule HighLatitudeRule
	Overrides   Overrides
	Adjustments Adjustments
}

// Calculate is the pure, stateless core entry point (C7): given a date,
// observer, and convention, it returns the six rounded UTC instants plus
// any non-fatal warnings, or a typed CalculationError. It never mutates
// global state and is safe to call concurrently from any number of
// goroutines (§5).
func Calculate(input CalculationInput) (PrayerTimes, []Warning, error) {
	if err := validateCoordinates(input.Coordinates); err != nil {
		return PrayerTimes{}, nil, err
	}
	if err := validateDate(input.Date); err != nil {
		return PrayerTimes{}, nil, err
	}

	params, err := resolveParams(input.MethodId, input.Overrides)
	if err != nil {
		return PrayerTimes{}, nil, err
	}

	lat := input.Coordinates.Latitude
	lon := input.Coordinates.Longitude
	date := input.Date

	today := astro.NewSolarDay(date.Year, date.Month, date.Day, lat, lon)
	prevDate := addDays(date, -1)
	nextDate := addDays(date, 1)
	prevDay := astro.NewSolarDay(prevDate.Year, prevDate.Month, prevDate.Day, lat, lon)
	nextDay := astro.NewSolarDay(nextDate.Year, nextDate.Month, nextDate.Day, lat, lon)

	var warnings []Warning

	sunriseHours := today.SunriseHours
	sunsetHours := today.SunsetHours
	if !astro.Available(sunriseHours) {
		// Polar night: there is no true sunrise today. Treat the day as
		// having collapsed to a single instant at transit so the
		// high-latitude fallbacks below still have a night length to
		// divide, rather than propagating NaN (DESIGN NOTES: "NaN as a
		// signaling value"; decided here since spec.md does not cover the
		// doubly-degenerate case of sunrise itself failing).
		sunriseHours = today.TransitHours
	}
	if !astro.Available(sunsetHours) {
		sunsetHours = today.TransitHours
	}
	prevSunset := prevDay.SunsetHours
	if !astro.Available(prevSunset) {
		prevSunset = prevDay.TransitHours
	}
	nextSunrise := nextDay.SunriseHours
	if !astro.Available(nextSunrise) {
		nextSunrise = nextDay.TransitHours
	}

	sunriseTime := instantFromHours(date, sunriseHours, decimal.Zero)
	sunsetTime := instantFromHours(date, sunsetHours, decimal.Zero)
	prevSunsetTime := instantFromHours(prevDate, prevSunset, decimal.Zero)
	nextSunriseTime := instantFromHours(nextDate, nextSunrise, decimal.Zero)

	nightForFajr := sunriseTime.Sub(prevSunsetTime)
	nightForIsha := nextSunriseTime.Sub(sunsetTime)

	dhuhrHours := today.TransitHours

	fajrHours, fajrWarn, err := resolveFajr(today, input.MethodId, lat, date, params, input.HighLatRule, sunriseHours, nightForFajr)
	if err != nil {
		return PrayerTimes{}, nil, err
	}
	if fajrWarn != nil {
		warnings = append(warnings, *fajrWarn)
	}

	asrHours, ok := today.Afternoon(input.AsrSchool.shadowFactor())
	if !ok {
		return PrayerTimes{}, nil, errPolarUnresolved(Asr.String(), "sun never reaches the Asr shadow angle", errSunNeverReachesAngle)
	}

	maghribHours := maghribFromParams(params, today, sunsetHours)

	ishaHours, ishaWarn, err := resolveIsha(today, input.MethodId, lat, date, params, input.HighLatRule, sunsetHours, nightForIsha)
	if err != nil {
		return PrayerTimes{}, nil, err
	}
	if ishaWarn != nil {
		warnings = append(warnings, *ishaWarn)
	}

	times := PrayerTimes{
		Fajr:    instantFromHours(date, fajrHours, correctionFor(params, input.Adjustments, Fajr)),
		Sunrise: instantFromHours(date, sunriseHours, correctionFor(params, input.Adjustments, Sunrise)),
		Dhuhr:   instantFromHours(date, dhuhrHours, correctionFor(params, input.Adjustments, Dhuhr)),
		Asr:     instantFromHours(date, asrHours, correctionFor(params, input.Adjustments, Asr)),
		Maghrib: instantFromHours(date, maghribHours, correctionFor(params, input.Adjustments, Maghrib)),
		Isha:    instantFromHours(date, ishaHours, correctionFor(params, input.Adjustments, Isha)),
	}

	orderingWarnings, err := validate(times, lat)
	if err != nil {
		return PrayerTimes{}, nil, err
	}
	warnings = append(warnings, orderingWarnings...)

	return times, warnings, nil
}

// maghribFromParams implements §4.7 step 6.
func maghribFromParams(params MethodParams, today astro.SolarDay, sunsetHours float64) float64 {
	if !params.HasMaghrib {
		return sunsetHours
	}
	if params.Maghrib.IsInterval {
		return sunsetHours + params.Maghrib.Interval.Hours()
	}
	if h, ok := today.HourAngle(-params.Maghrib.Degrees, true); ok {
		return h
	}
	return sunsetHours
}

// resolveFajr implements §4.7 step 4 plus the C6 fallback trigger (NaN, no
// true sunrise today, or a "safe window" violation: the angle-based Fajr
// lands earlier than the NightMiddle-implied earliest Fajr).
func resolveFajr(today astro.SolarDay, methodId MethodId, latitude float64, date Date, params MethodParams, rule HighLatitudeRule, sunriseHours float64, night time.Duration) (float64, *Warning, error) {
	fajrHours, ok := today.HourAngle(-params.FajrAngle, false)

	if ok && astro.Available(today.SunriseHours) {
		safePortion, _ := highLatPortion(NightMiddleRule, 0, night)
		safeFajrHours := sunriseHours - safePortion.Hours()
		if fajrHours >= safeFajrHours {
			return fajrHours, nil, nil
		}
	}

	if methodId == Moonsighting {
		if mathAbs(latitude) >= 55 {
			portion := night / 7
			hours := sunriseHours - portion.Hours()
			return hours, &Warning{Kind: FallbackApplied, Prayer: Fajr, Message: "resolved via one-seventh-of-night rule at |lat|>=55"}, nil
		}
		doy := dayOfYear(date.Year, date.Month, date.Day)
		offset := moonsightingFajrOffset(latitude, doy, date.Year)
		hours := sunriseHours - offset.Hours()
		return hours, &Warning{Kind: FallbackApplied, Prayer: Fajr, Message: "resolved via Moonsighting seasonal twilight formula"}, nil
	}

	portion, ok2 := highLatPortion(rule, params.FajrAngle, night)
	if !ok2 {
		return 0, nil, errPolarUnresolved(Fajr.String(), "polar Fajr not representable under HighLatitudeRule=NoRule", errSunNeverReachesAngle)
	}
	hours := sunriseHours - portion.Hours()
	return hours, &Warning{Kind: FallbackApplied, Prayer: Fajr, Message: "resolved via high-latitude fallback rule"}, nil
}

// resolveIsha implements §4.7 step 7 plus the C6 fallback trigger (NaN, no
// true sunset today, or the angle-based Isha landing later than the
// NightMiddle-implied latest Isha).
func resolveIsha(today astro.SolarDay, methodId MethodId, latitude float64, date Date, params MethodParams, rule HighLatitudeRule, sunsetHours float64, night time.Duration) (float64, *Warning, error) {
	if params.Isha.IsInterval {
		return sunsetHours + params.Isha.Interval.Hours(), nil, nil
	}

	ishaHours, ok := today.HourAngle(-params.Isha.Degrees, true)
	if ok && astro.Available(today.SunsetHours) {
		safePortion, _ := highLatPortion(NightMiddleRule, 0, night)
		safeIshaHours := sunsetHours + safePortion.Hours()
		if ishaHours <= safeIshaHours {
			return ishaHours, nil, nil
		}
	}

	if methodId == Moonsighting {
		if mathAbs(latitude) >= 55 {
			portion := night / 7
			hours := sunsetHours + portion.Hours()
			return hours, &Warning{Kind: FallbackApplied, Prayer: Isha, Message: "resolved via one-seventh-of-night rule at |lat|>=55"}, nil
		}
		doy := dayOfYear(date.Year, date.Month, date.Day)
		offset := moonsightingIshaOffset(latitude, doy, date.Year, params.Shafaq)
		hours := sunsetHours + offset.Hours()
		return hours, &Warning{Kind: FallbackApplied, Prayer: Isha, Message: "resolved via Moonsighting seasonal twilight formula"}, nil
	}

	portion, ok2 := highLatPortion(rule, params.Isha.Degrees, night)
	if !ok2 {
		return 0, nil, errPolarUnresolved(Isha.String(), "polar Isha not representable under HighLatitudeRule=NoRule", errSunNeverReachesAngle)
	}
	hours := sunsetHours + portion.Hours()
	return hours, &Warning{Kind: FallbackApplied, Prayer: Isha, Message: "resolved via high-latitude fallback rule"}, nil
}

func validateCoordinates(co Coordinates) error {
	if co.Latitude < -90 || co.Latitude > 90 {
		return errInvalidInput("latitude", "must be within [-90, 90]")
	}
	if co.Longitude < -180 || co.Longitude > 180 {
		return errInvalidInput("longitude", "must be within [-180, 180]")
	}
	if co.Elevation < -500 || co.Elevation > 10000 {
		return errInvalidInput("elevation", "must be within [-500, 10000] meters")
	}
	return nil
}

func validateDate(d Date) error {
	if d.Month < 1 || d.Month > 12 {
		return errInvalidInput("date", "month must be within [1, 12]")
	}
	if d.Day < 1 || d.Day > 31 {
		return errInvalidInput("date", "day must be within [1, 31]")
	}
	return nil
}

func addDays(d Date, n int) Date {
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// instantFromHours converts decimal UTC hours (possibly outside [0,24),
// and possibly carrying a sub-minute correction) anchored to date's UTC
// midnight into a time.Time rounded to the nearest whole minute, ties at
// >=30s rounding toward the later minute (§3 invariant).
func instantFromHours(date Date, hours float64, correctionMinutes decimal.Decimal) time.Time {
	midnight := time.Date(date.Year, time.Month(date.Month), date.Day, 0, 0, 0, 0, time.UTC)
	totalMinutes := decimal.NewFromFloat(hours * 60).Add(correctionMinutes)
	rounded := roundMinutesUp(totalMinutes)
	return midnight.Add(time.Duration(rounded) * time.Minute)
}

func roundMinutesUp(m decimal.Decimal) int64 {
	floor := m.Floor()
	frac := m.Sub(floor)
	if frac.GreaterThanOrEqual(decimal.NewFromFloat(0.5)) {
		floor = floor.Add(decimal.NewFromInt(1))
	}
	return floor.IntPart()
}

// correctionFor sums a method's built-in adjustment (half-minute
// granularity) with the caller's whole-minute adjustment for one prayer,
// user adjustment applied last (DESIGN NOTES: "adjustment composition").
func correctionFor(params MethodParams, user Adjustments, name PrayerName) decimal.Decimal {
	total := decimal.Zero
	if v, ok := params.Adjustments[name]; ok {
		total = total.Add(decimal.NewFromFloat(v))
	}
	if v, ok := user[name]; ok {
		total = total.Add(decimal.NewFromInt(int64(v)))
	}
	return total
}
