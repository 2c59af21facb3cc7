package prayer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveParamsUnknownMethod(t *testing.T) {
	_, err := resolveParams(MethodId(999), Overrides{})
	require.Error(t, err)

	var calcErr *CalculationError
	require.ErrorAs(t, err, &calcErr)
	assert.Equal(t, InvalidInput, calcErr.Kind)
	assert.Equal(t, "method_id", calcErr.Field)
}

func TestRegistryMatchesCanonicalTable(t *testing.T) {
	// Spot-check the spec §6 table entries most likely to regress silently:
	// the Angle/Interval tagged-variant methods and the Jafari-midnight pair.
	umm := registry[UmmAlQura]
	assert.InDelta(t, 18.5, umm.FajrAngle, 1e-9)
	assert.True(t, umm.Isha.IsInterval)
	assert.Equal(t, 90*time.Minute, umm.Isha.Interval)

	qatar := registry[Qatar]
	assert.True(t, qatar.Isha.IsInterval)
	assert.Equal(t, 90*time.Minute, qatar.Isha.Interval)
	assert.InDelta(t, 3.0, qatar.Adjustments[Isha], 1e-9)

	jafari := registry[Jafari]
	assert.Equal(t, MidnightJafari, jafari.MidnightMode)
	assert.False(t, jafari.Isha.IsInterval)
	assert.InDelta(t, 4.0, jafari.Maghrib.Degrees, 1e-9)

	tehran := registry[Tehran]
	assert.Equal(t, MidnightJafari, tehran.MidnightMode)
	assert.InDelta(t, 4.5, tehran.Maghrib.Degrees, 1e-9)

	moonsighting := registry[Moonsighting]
	assert.Equal(t, ShafaqGeneral, moonsighting.Shafaq)
}

func TestResolveParamsAppliesOverridesOnTopOfDefaults(t *testing.T) {
	fajrAngle := 16.0
	isha := Interval(120 * time.Minute)
	midnight := MidnightJafari

	params, err := resolveParams(MWL, Overrides{
		FajrAngle:    &fajrAngle,
		Isha:         &isha,
		MidnightMode: &midnight,
	})
	require.NoError(t, err)

	assert.InDelta(t, 16.0, params.FajrAngle, 1e-9)
	assert.True(t, params.Isha.IsInterval)
	assert.Equal(t, 120*time.Minute, params.Isha.Interval)
	assert.Equal(t, MidnightJafari, params.MidnightMode)
	// MWL's built-in Dhuhr +1 adjustment survives an unrelated override.
	assert.InDelta(t, 1.0, params.Adjustments[Dhuhr], 1e-9)
}

func TestResolveParamsDoesNotMutateRegistry(t *testing.T) {
	fajrAngle := 99.0
	_, err := resolveParams(ISNA, Overrides{FajrAngle: &fajrAngle})
	require.NoError(t, err)

	assert.InDelta(t, 15.0, registry[ISNA].FajrAngle, 1e-9)
}
