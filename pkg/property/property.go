// Package property defines the shared input structs describing a rental
// property's financial position.
package property

// Financials describes a property's market position and monthly operating
// line items. Monetary fields are expected to be non-negative; rates are
// fractions (0.03 = 3%).
type Financials struct {
	CurrentMarketValue     float64
	PurchasePrice          float64
	MortgageBalance        float64
	MonthlyRentalIncome    float64
	MonthlyMortgagePayment float64
	MonthlyPropertyTax     float64
	MonthlyInsurance       float64
	MonthlyHOA             float64
	MonthlyMaintenance     float64
	MonthlyVacancy         float64
	MonthlyManagement      float64
	YearsOwned             float64
	AnnualAppreciationRate float64
}

// MonthlyOperatingExpenses sums the monthly operating expense line items.
// Mortgage debt service is not an operating expense and is excluded.
func (f Financials) MonthlyOperatingExpenses() float64 {
	return f.MonthlyPropertyTax + f.MonthlyInsurance + f.MonthlyHOA +
		f.MonthlyMaintenance + f.MonthlyVacancy + f.MonthlyManagement
}

// PersonalExpenses captures what the owner currently pays to live elsewhere,
// used when weighing renting the property out against occupying it.
type PersonalExpenses struct {
	CurrentRent      float64
	CurrentUtilities float64
}
