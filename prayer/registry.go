package prayer

import "time"

// registry is the closed, immutable table of calculation conventions (C5).
// Values are taken verbatim from spec §6, the authoritative source for
// conformance. Like the teacher's CalculationMethod switch in Init(), this
// is read-only and resolved once per Calculate call; there is no mutable
// module-level state (DESIGN NOTES: "pure functions, no globals").
var registry = map[MethodId]MethodParams{
	MWL: {
		FajrAngle: 18, Isha: Angle(17),
		HasMaghrib: true, Maghrib: Interval(time.Minute),
		Adjustments: MethodAdjustments{Dhuhr: 1},
	},
	ISNA: {
		FajrAngle: 15, Isha: Angle(15),
		HasMaghrib: true, Maghrib: Interval(time.Minute),
		Adjustments: MethodAdjustments{Fajr: -12.5, Dhuhr: 5, Asr: -1, Maghrib: 2, Isha: -1.5},
	},
	Egypt: {
		FajrAngle: 19.5, Isha: Angle(17.5),
		HasMaghrib: true, Maghrib: Interval(time.Minute),
		Adjustments: MethodAdjustments{Fajr: -0.5, Sunrise: -0.5, Asr: 0.5, Maghrib: -1},
	},
	UmmAlQura: {
		FajrAngle: 18.5, Isha: Interval(90 * time.Minute),
		HasMaghrib: true, Maghrib: Interval(time.Minute),
	},
	Qatar: {
		FajrAngle: 18, Isha: Interval(90 * time.Minute),
		HasMaghrib: true, Maghrib: Interval(time.Minute),
		Adjustments: MethodAdjustments{Fajr: -0.5, Maghrib: 2, Isha: 3},
	},
	Dubai: {
		FajrAngle: 18.2, Isha: Angle(18.2),
		HasMaghrib: true, Maghrib: Interval(time.Minute),
		Adjustments: MethodAdjustments{Sunrise: -3.5, Dhuhr: 3, Asr: 1.5, Maghrib: 2.5, Isha: 0.5},
	},
	JAKIM: {
		FajrAngle: 18, Isha: Angle(18),
		HasMaghrib: true, Maghrib: Interval(time.Minute),
		Adjustments: MethodAdjustments{Fajr: 1, Dhuhr: 2, Asr: 1, Isha: 1},
	},
	Kemenag: {
		FajrAngle: 20, Isha: Angle(18),
		HasMaghrib: true, Maghrib: Interval(time.Minute),
		Adjustments: MethodAdjustments{Fajr: 2, Sunrise: -4, Dhuhr: 3, Asr: 2, Maghrib: 2, Isha: 2},
	},
	Singapore: {
		FajrAngle: 20, Isha: Angle(18),
		HasMaghrib: true, Maghrib: Interval(time.Minute),
		Adjustments: MethodAdjustments{Fajr: 0.5, Sunrise: 0.5, Dhuhr: 1, Asr: 1, Isha: 1},
	},
	France12: {
		FajrAngle: 12, Isha: Angle(12),
		HasMaghrib: true, Maghrib: Interval(time.Minute),
	},
	France15: {
		FajrAngle: 15, Isha: Angle(15),
		HasMaghrib: true, Maghrib: Interval(time.Minute),
	},
	France18: {
		FajrAngle: 18, Isha: Angle(18),
		HasMaghrib: true, Maghrib: Interval(time.Minute),
	},
	Turkey: {
		FajrAngle: 18, Isha: Angle(17),
		HasMaghrib: true, Maghrib: Interval(time.Minute),
		Adjustments: MethodAdjustments{Sunrise: -7, Dhuhr: 5, Asr: 5.5, Maghrib: 7, Isha: 1.5},
	},
	Russia: {
		FajrAngle: 16, Isha: Angle(15),
		HasMaghrib: true, Maghrib: Interval(time.Minute),
		Adjustments: MethodAdjustments{Fajr: -0.5, Sunrise: -0.5, Dhuhr: -0.5, Asr: 0.5, Maghrib: -1.5, Isha: -0.5},
	},
	Moonsighting: {
		FajrAngle: 18, Isha: Angle(18),
		HasMaghrib: true, Maghrib: Interval(time.Minute),
		Shafaq:      ShafaqGeneral,
		Adjustments: MethodAdjustments{Dhuhr: 5, Maghrib: 3},
	},
	Tehran: {
		FajrAngle: 17.7, Isha: Angle(14),
		HasMaghrib: true, Maghrib: Angle(4.5),
		MidnightMode: MidnightJafari,
	},
	Jafari: {
		FajrAngle: 16, Isha: Angle(14),
		HasMaghrib: true, Maghrib: Angle(4),
		MidnightMode: MidnightJafari,
	},
	Karachi: {
		FajrAngle: 18, Isha: Angle(18),
		HasMaghrib: true, Maghrib: Interval(time.Minute),
		Adjustments: MethodAdjustments{Dhuhr: 1},
	},
}

// resolveParams looks up the method's default parameters and applies the
// caller's Overrides on top (§4.5 "override protocol"). It never mutates
// the registry entry.
func resolveParams(id MethodId, overrides Overrides) (MethodParams, error) {
	base, ok := registry[id]
	if !ok {
		return MethodParams{}, errInvalidInput("method_id", "unknown calculation method")
	}

	params := base
	if base.Adjustments != nil {
		params.Adjustments = make(MethodAdjustments, len(base.Adjustments))
		for k, v := range base.Adjustments {
			params.Adjustments[k] = v
		}
	}

	if overrides.FajrAngle != nil {
		params.FajrAngle = *overrides.FajrAngle
	}
	if overrides.Isha != nil {
		params.Isha = *overrides.Isha
	}
	if overrides.Maghrib != nil {
		params.HasMaghrib = true
		params.Maghrib = *overrides.Maghrib
	}
	if overrides.MidnightMode != nil {
		params.MidnightMode = *overrides.MidnightMode
	}
	if overrides.Shafaq != nil {
		params.Shafaq = *overrides.Shafaq
	}

	return params, nil
}
