package julianday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromDateKnownEpochs(t *testing.T) {
	// Meeus example 7.a: 1957-10-04.81 -> JD 2436116.31
	assert.InDelta(t, 2436116.31, FromDate(1957, 10, 4, 0.81*24), 1e-2)

	// J2000.0 epoch: 2000-01-01 12:00 UTC -> JD 2451545.0
	assert.InDelta(t, 2451545.0, FromDate(2000, 1, 1, 12), 1e-9)
}

func TestCenturyAtJ2000(t *testing.T) {
	assert.InDelta(t, 0.0, Century(2451545.0), 1e-12)
}

func TestAddDaysRoundTrips(t *testing.T) {
	jd := FromDate(2024, 6, 21, 0)
	assert.Equal(t, jd+1, AddDays(jd, 1))
	assert.Equal(t, jd-1, AddDays(jd, -1))
}

// TestFromDateSelfConsistentAcrossCalendarBoundaries is testable property
// #8 (spec.md §8): julian_day composed with the Gregorian civil-date
// reduction must be self-consistent, i.e. consecutive civil days are
// exactly 1.0 JD apart, across a leap-day, a month, and a year boundary.
// Agreement of FromTime with FromDate is checked in
// TestFromTimeAgreesWithFromDate.
func TestFromDateSelfConsistentAcrossCalendarBoundaries(t *testing.T) {
	boundaries := [][2][3]int{
		{{2024, 2, 28}, {2024, 2, 29}}, // leap day
		{{2024, 2, 29}, {2024, 3, 1}},  // leap day -> March
		{{2023, 2, 28}, {2023, 3, 1}},  // non-leap February has no 29th
		{{2024, 12, 31}, {2025, 1, 1}}, // year boundary
	}

	for _, b := range boundaries {
		d1, d2 := b[0], b[1]
		jd1 := FromDate(d1[0], d1[1], d1[2], 0)
		jd2 := FromDate(d2[0], d2[1], d2[2], 0)
		assert.InDelta(t, 1.0, jd2-jd1, 1e-9)
	}
}

func TestFromTimeAgreesWithFromDate(t *testing.T) {
	tm := time.Date(2024, 6, 21, 9, 30, 0, 0, time.UTC)
	want := FromDate(2024, 6, 21, 9+30.0/60)
	assert.InDelta(t, want, FromTime(tm), 1e-9)

	// A non-UTC time.Time must be converted to UTC before reduction.
	loc := time.FixedZone("UTC+3", 3*60*60)
	tmLocal := time.Date(2024, 6, 21, 12, 30, 0, 0, loc)
	assert.InDelta(t, want, FromTime(tmLocal), 1e-9)
}
