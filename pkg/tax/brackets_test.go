package tax

import "testing"

func TestMarginalRate(t *testing.T) {
	tests := []struct {
		name     string
		income   float64
		status   FilingStatus
		expected float64
	}{
		{"Single bottom bracket", 10000, FilingSingle, 0.10},
		{"Single exact threshold", 11600, FilingSingle, 0.12},
		{"Single middle income", 85000, FilingSingle, 0.22},
		{"Single top bracket", 700000, FilingSingle, 0.37},
		{"Married joint middle income", 150000, FilingMarriedJoint, 0.22},
		{"Married separate top threshold", 365600, FilingMarriedSeparate, 0.37},
		{"Head of household", 70000, FilingHeadOfHousehold, 0.22},
		{"Negative income clamps to zero", -5000, FilingSingle, 0.10},
		{"Unknown status falls back to single", 85000, FilingStatus("corporate"), 0.22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rate := MarginalRate(tt.income, tt.status); rate != tt.expected {
				t.Errorf("MarginalRate(%.0f, %s) = %.2f, expected %.2f",
					tt.income, tt.status, rate, tt.expected)
			}
		})
	}
}

func TestCapitalGainsRate(t *testing.T) {
	tests := []struct {
		name     string
		income   float64
		status   FilingStatus
		expected float64
	}{
		{"Single zero tier", 40000, FilingSingle, 0.0},
		{"Single middle tier", 100000, FilingSingle, 0.15},
		{"Single top tier", 600000, FilingSingle, 0.20},
		{"Married joint zero tier", 90000, FilingMarriedJoint, 0.0},
		{"Married joint top tier", 600000, FilingMarriedJoint, 0.20},
		{"Head of household middle tier", 80000, FilingHeadOfHousehold, 0.15},
		{"Negative income clamps to zero", -1, FilingMarriedJoint, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rate := CapitalGainsRate(tt.income, tt.status); rate != tt.expected {
				t.Errorf("CapitalGainsRate(%.0f, %s) = %.2f, expected %.2f",
					tt.income, tt.status, rate, tt.expected)
			}
		})
	}
}

func TestFilingStatusValid(t *testing.T) {
	valid := []FilingStatus{FilingSingle, FilingMarriedJoint, FilingMarriedSeparate, FilingHeadOfHousehold}
	for _, status := range valid {
		if !status.Valid() {
			t.Errorf("Valid() = false for %s", status)
		}
	}
	for _, status := range []FilingStatus{"", "married", "Single"} {
		if status.Valid() {
			t.Errorf("Valid() = true for %q", status)
		}
	}
}
