package prayer

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind is the closed error taxonomy of §7.
type ErrorKind int

const (
	// InvalidInput: latitude/longitude out of range, unknown method id,
	// elevation out of range, or an unrepresentable date. Fails fast,
	// before any solar computation runs.
	InvalidInput ErrorKind = iota
	// PolarUnresolved: a solver returned "sun never reaches this angle"
	// and there is no fallback to apply: HighLatitudeRule was NoRule for
	// Fajr/Isha, or the unreachable angle was Asr's, which has no fallback.
	PolarUnresolved
	// GapInvariant: an ordering or twilight-gap sanity check (§4.9) failed
	// at moderate latitude, where it signals a genuine defect rather than an
	// expected high-latitude artifact.
	GapInvariant
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case PolarUnresolved:
		return "PolarUnresolved"
	case GapInvariant:
		return "GapInvariant"
	default:
		return "Unknown"
	}
}

// CalculationError is the typed error this package returns. It always
// names the offending field, per §7 "human-readable reason string naming
// the offending field".
type CalculationError struct {
	Kind   ErrorKind
	Field  string
	Reason string
	cause  error
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("prayer: %s: %s: %s", e.Kind, e.Field, e.Reason)
}

// Unwrap exposes the wrapped cause (if any) to errors.Is/errors.As.
// CalculationError has no Cause method, so github.com/pkg/errors.Cause
// stops at the CalculationError itself.
func (e *CalculationError) Unwrap() error { return e.cause }

func errInvalidInput(field, reason string) *CalculationError {
	return &CalculationError{Kind: InvalidInput, Field: field, Reason: reason}
}

func errPolarUnresolved(field, reason string, cause error) *CalculationError {
	return &CalculationError{
		Kind:   PolarUnresolved,
		Field:  field,
		Reason: reason,
		cause:  errors.Wrapf(cause, "no fallback available for %s", field),
	}
}

func errGapInvariant(field, reason string) *CalculationError {
	return &CalculationError{Kind: GapInvariant, Field: field, Reason: reason}
}

// errSunNeverReachesAngle is the cause wrapped into PolarUnresolved errors:
// it marks the in-band "sun never reaches this altitude" signal from the
// hour-angle solver before it is annotated with the prayer name.
var errSunNeverReachesAngle = errors.New("sun does not reach the target altitude at this latitude/date")

// WarningKind distinguishes the two non-fatal warning conditions of §7.
type WarningKind int

const (
	// FallbackApplied: a polar condition was resolved via a
	// HighLatitudeRule or the Moonsighting seasonal formula.
	FallbackApplied WarningKind = iota
	// OrderingWarning: a post-calculation ordering or gap invariant was
	// violated at high or extreme latitude, or the day length fell outside
	// its sanity band at any latitude; the result is still returned.
	OrderingWarning
)

func (k WarningKind) String() string {
	switch k {
	case FallbackApplied:
		return "FallbackApplied"
	case OrderingWarning:
		return "OrderingWarning"
	default:
		return "Unknown"
	}
}

// Warning accompanies an otherwise-valid PrayerTimes result. Warnings must
// never mutate the returned times (§7 propagation policy) — they are
// informational only.
type Warning struct {
	Kind    WarningKind
	Prayer  PrayerName
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s(%s): %s", w.Kind, w.Prayer, w.Message)
}
