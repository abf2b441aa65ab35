package tax

// FilingStatus selects which federal bracket table applies.
type FilingStatus string

// Supported filing statuses.
const (
	FilingSingle          FilingStatus = "single"
	FilingMarriedJoint    FilingStatus = "married-joint"
	FilingMarriedSeparate FilingStatus = "married-separate"
	FilingHeadOfHousehold FilingStatus = "head-of-household"
)

// Valid reports whether the filing status is one of the supported values.
func (fs FilingStatus) Valid() bool {
	switch fs {
	case FilingSingle, FilingMarriedJoint, FilingMarriedSeparate, FilingHeadOfHousehold:
		return true
	}
	return false
}

// bracket is one federal tax bracket: the rate applies to income at or above
// Threshold up to the next bracket's threshold.
type bracket struct {
	Threshold float64
	Rate      float64
}

// 2024 federal ordinary income brackets. The marginal rate is a single
// bracket lookup, not a progressive integration over the full table.
var federalBrackets = map[FilingStatus][]bracket{
	FilingSingle: {
		{0, 0.10}, {11600, 0.12}, {47150, 0.22}, {100525, 0.24},
		{191950, 0.32}, {243725, 0.35}, {609350, 0.37},
	},
	FilingMarriedJoint: {
		{0, 0.10}, {23200, 0.12}, {94300, 0.22}, {201050, 0.24},
		{383900, 0.32}, {487450, 0.35}, {731200, 0.37},
	},
	FilingMarriedSeparate: {
		{0, 0.10}, {11600, 0.12}, {47150, 0.22}, {100525, 0.24},
		{191950, 0.32}, {243725, 0.35}, {365600, 0.37},
	},
	FilingHeadOfHousehold: {
		{0, 0.10}, {16550, 0.12}, {63100, 0.22}, {100500, 0.24},
		{191950, 0.32}, {243700, 0.35}, {609350, 0.37},
	},
}

// 2024 long-term capital gains rate tiers.
var capitalGainsBrackets = map[FilingStatus][]bracket{
	FilingSingle: {
		{0, 0.0}, {47025, 0.15}, {518900, 0.20},
	},
	FilingMarriedJoint: {
		{0, 0.0}, {94050, 0.15}, {583750, 0.20},
	},
	FilingMarriedSeparate: {
		{0, 0.0}, {47025, 0.15}, {291850, 0.20},
	},
	FilingHeadOfHousehold: {
		{0, 0.0}, {63000, 0.15}, {551350, 0.20},
	},
}

func lookupRate(table map[FilingStatus][]bracket, income float64, status FilingStatus) float64 {
	brackets, ok := table[status]
	if !ok {
		brackets = table[FilingSingle]
	}
	rate := brackets[0].Rate
	for _, b := range brackets {
		if income >= b.Threshold {
			rate = b.Rate
		} else {
			break
		}
	}
	return rate
}

// MarginalRate returns the federal ordinary-income marginal rate for the
// given annual income and filing status, as a fraction.
func MarginalRate(income float64, status FilingStatus) float64 {
	if income < 0 {
		income = 0
	}
	return lookupRate(federalBrackets, income, status)
}

// CapitalGainsRate returns the long-term capital gains rate tier for the
// given annual income and filing status, as a fraction.
func CapitalGainsRate(income float64, status FilingStatus) float64 {
	if income < 0 {
		income = 0
	}
	return lookupRate(capitalGainsBrackets, income, status)
}
