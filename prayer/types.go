// Package prayer computes the five daily Islamic prayer times plus
// sunrise/sunset and derived Sunnah times for an arbitrary location, date,
// and calculation convention. The package is a pure, stateless function of
// its inputs: there is no mutable shared state, no persistence, and no
// concurrency model beyond "call it from as many goroutines as you like".
//
// The public surface mirrors the shape of the teacher this package grew
// from (github.com/RadhiFadlillah/go-prayer): a value-typed Calculator
// driven by Init/Calculate, generalized to a closed registry of
// conventions, high-latitude fallbacks, and Sunnah derivations.
package prayer

import "time"

// MethodId is the closed set of named calculation conventions (C5).
type MethodId int

const (
	MWL MethodId = iota
	ISNA
	Egypt
	UmmAlQura
	Qatar
	Dubai
	JAKIM
	Kemenag
	Singapore
	France12
	France15
	France18
	Turkey
	Russia
	Moonsighting
	Tehran
	Jafari
	Karachi
)

func (m MethodId) String() string {
	switch m {
	case MWL:
		return "MWL"
	case ISNA:
		return "ISNA"
	case Egypt:
		return "Egypt"
	case UmmAlQura:
		return "UmmAlQura"
	case Qatar:
		return "Qatar"
	case Dubai:
		return "Dubai"
	case JAKIM:
		return "JAKIM"
	case Kemenag:
		return "Kemenag"
	case Singapore:
		return "Singapore"
	case France12:
		return "France12"
	case France15:
		return "France15"
	case France18:
		return "France18"
	case Turkey:
		return "Turkey"
	case Russia:
		return "Russia"
	case Moonsighting:
		return "Moonsighting"
	case Tehran:
		return "Tehran"
	case Jafari:
		return "Jafari"
	case Karachi:
		return "Karachi"
	default:
		return "Unknown"
	}
}

// AsrSchool selects the shadow-length factor used for the Asr geometry.
type AsrSchool int

const (
	Standard AsrSchool = iota // shadow factor 1
	Hanafi                    // shadow factor 2
)

func (a AsrSchool) shadowFactor() float64 {
	if a == Hanafi {
		return 2
	}
	return 1
}

// HighLatitudeRule is the fallback strategy applied when a standard
// hour-angle solve fails (or lands outside the safe window) at high
// latitudes (C6).
type HighLatitudeRule int

const (
	NightMiddleRule HighLatitudeRule = iota
	AngleBasedRule
	OneSeventhRule
	NoRule
)

// Shafaq is the evening-twilight color used only by the Moonsighting
// high-latitude fallback (C6).
type Shafaq int

const (
	ShafaqGeneral Shafaq = iota
	ShafaqAhmer
	ShafaqAbyad
)

// MidnightMode records a method's midnight convention. Sunnah does not
// consult it: its night always runs from Maghrib to the next day's Fajr.
type MidnightMode int

const (
	MidnightStandard MidnightMode = iota // sunset -> sunrise
	MidnightJafari                       // maghrib -> fajr
)

// AngleOrInterval is the tagged variant used for Isha and Maghrib
// parameters: either a twilight angle in degrees below the horizon, or a
// fixed interval after sunset (DESIGN NOTES: "angle/interval union").
type AngleOrInterval struct {
	IsInterval bool
	Degrees    float64       // valid when !IsInterval
	Interval   time.Duration // valid when IsInterval
}

// Angle builds an angle-below-horizon variant.
func Angle(deg float64) AngleOrInterval {
	return AngleOrInterval{Degrees: deg}
}

// Interval builds a fixed-interval-after-sunset variant.
func Interval(d time.Duration) AngleOrInterval {
	return AngleOrInterval{IsInterval: true, Interval: d}
}

// PrayerName identifies one of the six computed instants, used as the key
// for Adjustments maps.
type PrayerName int

const (
	Fajr PrayerName = iota
	Sunrise
	Dhuhr
	Asr
	Maghrib
	Isha
)

func (p PrayerName) String() string {
	switch p {
	case Fajr:
		return "Fajr"
	case Sunrise:
		return "Sunrise"
	case Dhuhr:
		return "Dhuhr"
	case Asr:
		return "Asr"
	case Maghrib:
		return "Maghrib"
	case Isha:
		return "Isha"
	default:
		return "Unknown"
	}
}

// Adjustments is a partial map of signed-minute corrections supplied by
// the caller, applied additively on top of a method's built-in
// adjustments (DESIGN NOTES: "adjustment composition"). Per DESIGN NOTES,
// user-facing adjustments are whole minutes (i32) to avoid inviting
// floating-point drift at the API boundary.
type Adjustments map[PrayerName]int

// MethodAdjustments is a method's own built-in correction table (C5). It
// is distinct from Adjustments because the canonical method table (§6)
// carries half-minute values (e.g. ISNA's Fajr -12.5); only the
// user-supplied Adjustments at the external interface are whole minutes.
type MethodAdjustments map[PrayerName]float64

// MethodParams is the value record each MethodId resolves to (C5 and §3).
type MethodParams struct {
	FajrAngle    float64
	Isha         AngleOrInterval
	HasMaghrib   bool // false means Maghrib == Sunset
	Maghrib      AngleOrInterval
	MidnightMode MidnightMode
	Shafaq       Shafaq
	Adjustments  MethodAdjustments
}

// Overrides lets a caller replace individual method-default parameters
// without redefining the whole MethodParams tuple (§4.5 "override
// protocol").
type Overrides struct {
	FajrAngle    *float64
	Isha         *AngleOrInterval
	Maghrib      *AngleOrInterval
	MidnightMode *MidnightMode
	Shafaq       *Shafaq
}

// Coordinates is the immutable observer location (§3).
type Coordinates struct {
	Latitude  float64 // degrees, [-90, 90]
	Longitude float64 // degrees, [-180, 180]
	Elevation float64 // meters, [-500, 10000], default 0
}

// Date is a civil date interpreted at UTC midnight for solar-coordinate
// anchoring (§3). Timezone rendering is an external concern.
type Date struct {
	Year  int
	Month int
	Day   int
}

// PrayerTimes holds the six computed UTC instants, each rounded to the
// nearest whole minute (§3 invariant: ties at >=30s round up).
type PrayerTimes struct {
	Fajr    time.Time
	Sunrise time.Time
	Dhuhr   time.Time
	Asr     time.Time
	Maghrib time.Time
	Isha    time.Time
}

// SunnahTimes holds the derived voluntary-observance instants (C8).
type SunnahTimes struct {
	FirstThirdOfNight time.Time
	MiddleOfNight     time.Time
	LastThirdOfNight  time.Time
	DuhaStart         time.Time
	DuhaEnd           time.Time
	NightDuration     time.Duration
}
