package prayer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSunnahDerivations(t *testing.T) {
	input := CalculationInput{
		Date:        Date{2024, 6, 21},
		Coordinates: Coordinates{Latitude: 21.4225, Longitude: 39.8262},
		MethodId:    MWL,
	}

	today, _, err := Calculate(input)
	require.NoError(t, err)

	sunnah, _, err := Sunnah(input)
	require.NoError(t, err)

	// Invariant 5: Duha start/end are exactly 15 min from sunrise/dhuhr
	// pre-rounding; post-rounding the spec allows +-1 min.
	assert.WithinDuration(t, today.Sunrise.Add(15*time.Minute), sunnah.DuhaStart, time.Minute)
	assert.WithinDuration(t, today.Dhuhr.Add(-15*time.Minute), sunnah.DuhaEnd, time.Minute)

	// Invariant 6: night thirds are exact fractions of maghrib -> next fajr.
	assert.True(t, sunnah.FirstThirdOfNight.Before(sunnah.MiddleOfNight))
	assert.True(t, sunnah.MiddleOfNight.Before(sunnah.LastThirdOfNight))

	firstGap := sunnah.MiddleOfNight.Sub(sunnah.FirstThirdOfNight)
	secondGap := sunnah.LastThirdOfNight.Sub(sunnah.MiddleOfNight)
	assert.LessOrEqual(t, absDuration(firstGap-secondGap), time.Minute)

	assert.Greater(t, sunnah.NightDuration, time.Duration(0))
}

func TestSunnahPropagatesCalculateErrors(t *testing.T) {
	_, _, err := Sunnah(CalculationInput{
		Date:        Date{2024, 1, 1},
		Coordinates: Coordinates{Latitude: 999, Longitude: 0},
		MethodId:    MWL,
	})
	require.Error(t, err)
}
