package prayer

import (
	"fmt"
	"time"
)

// validate implements C9: an ordering invariant check plus latitude-banded
// gap and day-length sanity checks (§4.9). At moderate latitude an ordering
// or gap violation signals a genuine defect and is returned as a
// GapInvariant error; at high/extreme latitude the same violation is an
// expected high-latitude artifact and is attached as a non-fatal
// OrderingWarning instead (§4.9, §7 "gap violations at moderate latitudes
// are errors; at high/extreme they are warnings"). A day-length violation
// is an OrderingWarning at every latitude.
func validate(times PrayerTimes, latitude float64) ([]Warning, error) {
	sequence := []struct {
		name PrayerName
		at   time.Time
	}{
		{Fajr, times.Fajr},
		{Sunrise, times.Sunrise},
		{Dhuhr, times.Dhuhr},
		{Asr, times.Asr},
		{Maghrib, times.Maghrib},
		{Isha, times.Isha},
	}

	band := latitudeBand(latitude)

	var warnings []Warning
	for i := 1; i < len(sequence); i++ {
		if sequence[i].at.After(sequence[i-1].at) {
			continue
		}
		msg := fmt.Sprintf("%s does not fall after %s", sequence[i].name, sequence[i-1].name)
		if band == bandModerate {
			return nil, errGapInvariant(sequence[i].name.String(), msg)
		}
		warnings = append(warnings, Warning{Kind: OrderingWarning, Prayer: sequence[i].name, Message: msg})
	}

	fajrToSunriseMax := fajrSunriseGapCeiling[band]
	fajrToSunrise := times.Sunrise.Sub(times.Fajr)
	if fajrToSunrise > fajrToSunriseMax {
		msg := fmt.Sprintf("Fajr-Sunrise gap of %s exceeds the %s-latitude ceiling of %s", fajrToSunrise.Round(time.Minute), band, fajrToSunriseMax)
		if band == bandModerate {
			return nil, errGapInvariant(Fajr.String(), msg)
		}
		warnings = append(warnings, Warning{Kind: OrderingWarning, Prayer: Fajr, Message: msg})
	}

	maghribToIshaMax := maghribIshaGapCeiling[band]
	maghribToIsha := times.Isha.Sub(times.Maghrib)
	if maghribToIsha > maghribToIshaMax {
		msg := fmt.Sprintf("Maghrib-Isha gap of %s exceeds the %s-latitude ceiling of %s", maghribToIsha.Round(time.Minute), band, maghribToIshaMax)
		if band == bandModerate {
			return nil, errGapInvariant(Isha.String(), msg)
		}
		warnings = append(warnings, Warning{Kind: OrderingWarning, Prayer: Isha, Message: msg})
	}

	dayLength := times.Maghrib.Sub(times.Sunrise)
	minDay, maxDay := dayLengthBounds(latitude)
	if dayLength < minDay || dayLength > maxDay {
		warnings = append(warnings, Warning{
			Kind:    OrderingWarning,
			Prayer:  Sunrise,
			Message: fmt.Sprintf("sunrise-maghrib day length of %s falls outside the [%s, %s] sanity band", dayLength.Round(time.Minute), minDay, maxDay),
		})
	}

	return warnings, nil
}

type latitudeBandName string

const (
	bandModerate latitudeBandName = "moderate"
	bandHigh     latitudeBandName = "high"
	bandExtreme  latitudeBandName = "extreme"
)

// fajrSunriseGapCeiling and maghribIshaGapCeiling are the per-band gap
// thresholds of §4.9's table (minutes converted to Duration).
var fajrSunriseGapCeiling = map[latitudeBandName]time.Duration{
	bandModerate: 180 * time.Minute,
	bandHigh:     240 * time.Minute,
	bandExtreme:  300 * time.Minute,
}

var maghribIshaGapCeiling = map[latitudeBandName]time.Duration{
	bandModerate: 240 * time.Minute,
	bandHigh:     300 * time.Minute,
	bandExtreme:  360 * time.Minute,
}

func latitudeBand(latitude float64) latitudeBandName {
	abs := mathAbs(latitude)
	switch {
	case abs >= 60:
		return bandExtreme
	case abs >= 48:
		return bandHigh
	default:
		return bandModerate
	}
}

// dayLengthBounds returns the sunrise-to-maghrib sanity band (§4.9):
// 2-22h at |lat|>=60, else 4-20h.
func dayLengthBounds(latitude float64) (min, max time.Duration) {
	if mathAbs(latitude) >= 60 {
		return 2 * time.Hour, 22 * time.Hour
	}
	return 4 * time.Hour, 20 * time.Hour
}
