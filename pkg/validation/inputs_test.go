package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/PROACTIVA-US/property-manager-sub001/pkg/amortize"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/property"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/tax"
)

func TestValidateLoan(t *testing.T) {
	clean := amortize.LoanParameters{
		Principal:          100000,
		AnnualRate:         0.06,
		BaseMonthlyPayment: 1000,
		StartDate:          time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name     string
		mutate   func(*amortize.LoanParameters)
		fragment string
	}{
		{
			name:   "Clean loan has no warnings",
			mutate: func(l *amortize.LoanParameters) {},
		},
		{
			name:     "Payment below first-month interest",
			mutate:   func(l *amortize.LoanParameters) { l.BaseMonthlyPayment = 400 },
			fragment: "never amortize",
		},
		{
			name:     "Rate looks like a percentage",
			mutate:   func(l *amortize.LoanParameters) { l.AnnualRate = 6.0 },
			fragment: "looks like a percentage",
		},
		{
			name:     "Zero start date",
			mutate:   func(l *amortize.LoanParameters) { l.StartDate = time.Time{} },
			fragment: "start date is unset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loan := clean
			tt.mutate(&loan)
			warnings := ValidateLoan(loan)
			if tt.fragment == "" {
				if len(warnings) != 0 {
					t.Errorf("ValidateLoan() = %v, expected no warnings", warnings)
				}
				return
			}
			if !containsFragment(warnings, tt.fragment) {
				t.Errorf("ValidateLoan() = %v, expected a warning containing %q", warnings, tt.fragment)
			}
		})
	}
}

func TestValidateProperty(t *testing.T) {
	prop := property.Financials{
		CurrentMarketValue:  400000,
		PurchasePrice:       300000,
		MonthlyRentalIncome: -2500,
		MonthlyInsurance:    -100,
		YearsOwned:          -1,
	}

	warnings := ValidateProperty(prop)
	if len(warnings) != 3 {
		t.Fatalf("ValidateProperty() returned %d warnings, expected 3: %v", len(warnings), warnings)
	}
	// Warning order follows field declaration order.
	if !strings.Contains(warnings[0], "monthlyRentalIncome") {
		t.Errorf("warnings[0] = %q, expected monthlyRentalIncome first", warnings[0])
	}
	if !strings.Contains(warnings[1], "monthlyInsurance") {
		t.Errorf("warnings[1] = %q, expected monthlyInsurance second", warnings[1])
	}
	if !strings.Contains(warnings[2], "yearsOwned") {
		t.Errorf("warnings[2] = %q, expected yearsOwned last", warnings[2])
	}
}

func TestValidateProperty_Clean(t *testing.T) {
	if warnings := ValidateProperty(property.Financials{CurrentMarketValue: 1}); len(warnings) != 0 {
		t.Errorf("ValidateProperty() = %v, expected no warnings", warnings)
	}
}

func TestValidateTaxInputs(t *testing.T) {
	tests := []struct {
		name     string
		inputs   tax.Inputs
		fragment string
	}{
		{
			name:   "Clean inputs",
			inputs: tax.Inputs{FilingStatus: tax.FilingSingle, DepreciableValue: 300000, LandValue: 50000, StateTaxRate: 0.05},
		},
		{
			name:   "Empty filing status is allowed",
			inputs: tax.Inputs{},
		},
		{
			name:     "Unknown filing status",
			inputs:   tax.Inputs{FilingStatus: "corporate"},
			fragment: "unknown filing status",
		},
		{
			name:     "State rate out of range",
			inputs:   tax.Inputs{StateTaxRate: 0.35},
			fragment: "state tax rate",
		},
		{
			name:     "Land exceeds depreciable value",
			inputs:   tax.Inputs{DepreciableValue: 100000, LandValue: 150000},
			fragment: "land value exceeds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateTaxInputs(tt.inputs)
			if tt.fragment == "" {
				if len(warnings) != 0 {
					t.Errorf("ValidateTaxInputs() = %v, expected no warnings", warnings)
				}
				return
			}
			if !containsFragment(warnings, tt.fragment) {
				t.Errorf("ValidateTaxInputs() = %v, expected a warning containing %q", warnings, tt.fragment)
			}
		})
	}
}

func containsFragment(warnings []string, fragment string) bool {
	for _, w := range warnings {
		if strings.Contains(w, fragment) {
			return true
		}
	}
	return false
}
