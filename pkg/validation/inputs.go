package validation

import (
	"fmt"

	"github.com/PROACTIVA-US/property-manager-sub001/pkg/amortize"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/constants"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/property"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/tax"
)

// ValidateLoan returns warnings for loan parameters that produce legal but
// suspicious schedules. Hard errors are left to the scheduler itself.
func ValidateLoan(loan amortize.LoanParameters) []string {
	var warnings []string

	firstMonthInterest := loan.Principal * loan.AnnualRate / constants.MonthsPerYear
	if loan.Principal > 0 && loan.BaseMonthlyPayment <= firstMonthInterest {
		warnings = append(warnings, fmt.Sprintf(
			"base payment %.2f does not cover first-month interest %.2f - the loan will never amortize",
			loan.BaseMonthlyPayment, firstMonthInterest))
	}

	if loan.AnnualRate > 0.25 {
		warnings = append(warnings, fmt.Sprintf(
			"annual rate %.4f looks like a percentage - rates are fractions (0.06 = 6%%)", loan.AnnualRate))
	}

	if loan.StartDate.IsZero() {
		warnings = append(warnings, "loan start date is unset - schedule dates will start from the zero time")
	}

	return warnings
}

// ValidateProperty returns warnings for negative monetary fields, which the
// calculators accept but produce nonsensical output for.
func ValidateProperty(prop property.Financials) []string {
	var warnings []string

	fields := []struct {
		name  string
		value float64
	}{
		{"currentMarketValue", prop.CurrentMarketValue},
		{"purchasePrice", prop.PurchasePrice},
		{"mortgageBalance", prop.MortgageBalance},
		{"monthlyRentalIncome", prop.MonthlyRentalIncome},
		{"monthlyMortgagePayment", prop.MonthlyMortgagePayment},
		{"monthlyPropertyTax", prop.MonthlyPropertyTax},
		{"monthlyInsurance", prop.MonthlyInsurance},
		{"monthlyHOA", prop.MonthlyHOA},
		{"monthlyMaintenance", prop.MonthlyMaintenance},
		{"monthlyVacancy", prop.MonthlyVacancy},
		{"monthlyManagement", prop.MonthlyManagement},
	}
	for _, field := range fields {
		if field.value < 0 {
			warnings = append(warnings, fmt.Sprintf("property field %s is negative (%.2f)", field.name, field.value))
		}
	}
	if prop.YearsOwned < 0 {
		warnings = append(warnings, fmt.Sprintf("yearsOwned is negative (%.2f)", prop.YearsOwned))
	}

	return warnings
}

// ValidateTaxInputs returns warnings for tax inputs outside their intended use.
func ValidateTaxInputs(inputs tax.Inputs) []string {
	var warnings []string

	if inputs.FilingStatus != "" && !inputs.FilingStatus.Valid() {
		warnings = append(warnings, fmt.Sprintf(
			"unknown filing status %q - single brackets will be used", inputs.FilingStatus))
	}
	if inputs.StateTaxRate < 0 || inputs.StateTaxRate > 0.20 {
		warnings = append(warnings, fmt.Sprintf(
			"state tax rate %.4f is outside the expected 0 to 0.20 range", inputs.StateTaxRate))
	}
	if inputs.LandValue > inputs.DepreciableValue {
		warnings = append(warnings, "land value exceeds depreciable value - depreciation will be zero")
	}

	return warnings
}
