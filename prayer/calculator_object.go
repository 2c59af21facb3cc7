package prayer

// Calculator is a reusable, mutable front end over the pure Calculate
// function, in the shape of the teacher's own Calculator: set the fields
// once, call Init to validate and resolve the method, then call Calculate
// per date. Unlike the teacher, the heavy lifting lives in the stateless
// Calculate function; Calculator exists purely for callers who want to
// hold a location/method pairing and calculate many dates against it
// without re-specifying it each time.
type Calculator struct {
	Coordinates Coordinates
	MethodId    MethodId
	AsrSchool   AsrSchool
	HighLatRule HighLatitudeRule
	Overrides   Overrides
	Adjustments Adjustments

	date     Date
	resolved bool
}

// NewCalculator builds a Calculator with the teacher's usual defaults:
// the Standard Asr school and the NightMiddle high-latitude rule.
func NewCalculator(coordinates Coordinates, methodId MethodId) *Calculator {
	return &Calculator{
		Coordinates: coordinates,
		MethodId:    methodId,
		AsrSchool:   Standard,
		HighLatRule: NightMiddleRule,
	}
}

// Init validates the coordinates and resolves MethodId/Overrides into a
// concrete MethodParams, failing fast before any solar computation runs.
func (c *Calculator) Init() (*Calculator, error) {
	if err := validateCoordinates(c.Coordinates); err != nil {
		return nil, err
	}
	if _, err := resolveParams(c.MethodId, c.Overrides); err != nil {
		return nil, err
	}
	c.resolved = true
	return c, nil
}

// SetDate selects the civil date the next Calculate/Sunnah call targets.
func (c *Calculator) SetDate(date Date) *Calculator {
	c.date = date
	return c
}

func (c Calculator) input() CalculationInput {
	return CalculationInput{
		Date:        c.date,
		Coordinates: c.Coordinates,
		MethodId:    c.MethodId,
		AsrSchool:   c.AsrSchool,
		HighLatRule: c.HighLatRule,
		Overrides:   c.Overrides,
		Adjustments: c.Adjustments,
	}
}

// Calculate computes the prayer times for the date set by SetDate.
func (c Calculator) Calculate() (PrayerTimes, []Warning, error) {
	if !c.resolved {
		return PrayerTimes{}, nil, errInvalidInput("calculator", "Init must be called before Calculate")
	}
	return Calculate(c.input())
}

// Sunnah computes the derived voluntary-observance times for the date set
// by SetDate.
func (c Calculator) Sunnah() (SunnahTimes, []Warning, error) {
	if !c.resolved {
		return SunnahTimes{}, nil, errInvalidInput("calculator", "Init must be called before Sunnah")
	}
	return Sunnah(c.input())
}
