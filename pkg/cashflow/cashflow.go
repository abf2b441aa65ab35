// Package cashflow computes rental cash-flow metrics from property
// financials.
package cashflow

import (
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/constants"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/mathutil"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/property"
)

// Summary holds annualized rental cash-flow metrics. CapRate and
// CashOnCashReturn are percentages (7.2 = 7.2%).
type Summary struct {
	GrossRentalIncome  float64
	OperatingExpenses  float64
	NetOperatingIncome float64
	DebtService        float64
	CashFlowBeforeTax  float64
	CapRate            float64
	Equity             float64
	CashOnCashReturn   float64
}

// RentalComparison weighs renting the property out against occupying it.
// Unlike Summary, all values here are monthly except AnnualAdvantage; the
// unit difference is deliberate and callers depend on it.
type RentalComparison struct {
	PersonalExpensesSaved float64
	NetRentalBenefit      float64
	MonthlyAdvantage      float64
	AnnualAdvantage       float64
}

// Calculate derives annualized cash-flow metrics for a rental property.
// Ratio metrics guard division by zero and report 0 rather than NaN.
func Calculate(prop property.Financials) Summary {
	grossRentalIncome := prop.MonthlyRentalIncome * constants.MonthsPerYear
	operatingExpenses := prop.MonthlyOperatingExpenses() * constants.MonthsPerYear
	netOperatingIncome := grossRentalIncome - operatingExpenses
	debtService := prop.MonthlyMortgagePayment * constants.MonthsPerYear
	cashFlowBeforeTax := netOperatingIncome - debtService

	capRate := 0.0
	if prop.CurrentMarketValue > 0 {
		capRate = mathutil.CalculatePercentage(netOperatingIncome, prop.CurrentMarketValue)
	}

	equity := prop.CurrentMarketValue - prop.MortgageBalance
	cashOnCashReturn := 0.0
	if equity > 0 {
		cashOnCashReturn = mathutil.CalculatePercentage(cashFlowBeforeTax, equity)
	}

	return Summary{
		GrossRentalIncome:  grossRentalIncome,
		OperatingExpenses:  operatingExpenses,
		NetOperatingIncome: netOperatingIncome,
		DebtService:        debtService,
		CashFlowBeforeTax:  cashFlowBeforeTax,
		CapRate:            capRate,
		Equity:             equity,
		CashOnCashReturn:   cashOnCashReturn,
	}
}

// CompareToPersonal computes the monthly advantage of renting the property
// out versus the owner's current living costs.
func CompareToPersonal(prop property.Financials, personal property.PersonalExpenses) RentalComparison {
	personalExpensesSaved := personal.CurrentRent + personal.CurrentUtilities
	netRentalBenefit := prop.MonthlyRentalIncome - prop.MonthlyOperatingExpenses()
	monthlyAdvantage := netRentalBenefit - prop.MonthlyMortgagePayment

	return RentalComparison{
		PersonalExpensesSaved: personalExpensesSaved,
		NetRentalBenefit:      netRentalBenefit,
		MonthlyAdvantage:      monthlyAdvantage,
		AnnualAdvantage:       monthlyAdvantage * constants.MonthsPerYear,
	}
}
