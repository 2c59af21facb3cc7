package prayer

import "time"

// Sunnah implements C8: it calls Calculate for the given date and the
// following civil date, then derives the voluntary-observance instants
// from the night spanning today's Maghrib to tomorrow's Fajr. If either
// call fails (including a polar-unresolved Fajr/Isha on either day), the
// derivation itself fails the same way, since a night length cannot be
// formed from an undefined endpoint.
func Sunnah(input CalculationInput) (SunnahTimes, []Warning, error) {
	today, todayWarnings, err := Calculate(input)
	if err != nil {
		return SunnahTimes{}, nil, err
	}

	tomorrowInput := input
	tomorrowInput.Date = addDays(input.Date, 1)
	tomorrow, tomorrowWarnings, err := Calculate(tomorrowInput)
	if err != nil {
		return SunnahTimes{}, nil, err
	}

	night := tomorrow.Fajr.Sub(today.Maghrib)

	sunnah := SunnahTimes{
		FirstThirdOfNight: today.Maghrib.Add(night / 3),
		MiddleOfNight:     today.Maghrib.Add(night / 2),
		LastThirdOfNight:  today.Maghrib.Add(2 * night / 3),
		DuhaStart:         today.Sunrise.Add(15 * time.Minute),
		DuhaEnd:           today.Dhuhr.Add(-15 * time.Minute),
		NightDuration:     night,
	}

	warnings := append(todayWarnings, tomorrowWarnings...)
	return sunnah, warnings, nil
}
