// Package tax estimates depreciation, capital gains, and tax liability for
// a hypothetical sale of a rental property.
package tax

import (
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/constants"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/mathutil"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/property"
)

// Inputs drives the sale tax estimate. StateTaxRate is a fraction.
type Inputs struct {
	FilingStatus     FilingStatus
	AnnualIncome     float64
	DepreciableValue float64
	LandValue        float64
	ImprovementsCost float64
	SellingCosts     float64
	StateTaxRate     float64
}

// Estimate is the derived tax picture for a hypothetical sale. This is a
// single-bracket-lookup simplification, not a full tax return.
type Estimate struct {
	DepreciableBase     float64
	AnnualDepreciation  float64
	DepreciationTaken   float64
	AdjustedBasis       float64
	NetSalePrice        float64
	TotalGain           float64
	CapitalGain         float64
	MarginalRate        float64
	CapitalGainsRate    float64
	CapitalGainsTax     float64
	RecaptureTax        float64
	TotalTax            float64
	StateTax            float64
	NetProceedsAfterTax float64
}

// CalculateEstimate computes the sale tax estimate for a property.
//
// Depreciation is straight-line over 27.5 years and capped so it never
// exceeds the depreciable base, even when the holding period is longer.
// Capital gain is floored at zero; recaptured depreciation is taxed
// separately from capital appreciation.
func CalculateEstimate(prop property.Financials, inputs Inputs) Estimate {
	depreciableBase := inputs.DepreciableValue - inputs.LandValue + inputs.ImprovementsCost
	annualDepreciation := 0.0
	if depreciableBase > 0 {
		annualDepreciation = depreciableBase / constants.ResidentialDepreciationYears
	}
	depreciationTaken := mathutil.Min(annualDepreciation*prop.YearsOwned, mathutil.Max(depreciableBase, 0))

	adjustedBasis := prop.PurchasePrice + inputs.ImprovementsCost - depreciationTaken
	netSalePrice := prop.CurrentMarketValue - inputs.SellingCosts
	totalGain := netSalePrice - adjustedBasis
	capitalGain := mathutil.Max(0, totalGain-depreciationTaken)

	marginalRate := MarginalRate(inputs.AnnualIncome, inputs.FilingStatus)
	capitalGainsRate := CapitalGainsRate(inputs.AnnualIncome, inputs.FilingStatus)

	capitalGainsTax := capitalGain * capitalGainsRate
	recaptureTax := depreciationTaken * mathutil.Min(marginalRate, constants.DepreciationRecaptureRateCap)
	totalTax := capitalGainsTax + recaptureTax
	stateTax := (capitalGain + depreciationTaken) * inputs.StateTaxRate

	return Estimate{
		DepreciableBase:     depreciableBase,
		AnnualDepreciation:  annualDepreciation,
		DepreciationTaken:   depreciationTaken,
		AdjustedBasis:       adjustedBasis,
		NetSalePrice:        netSalePrice,
		TotalGain:           totalGain,
		CapitalGain:         capitalGain,
		MarginalRate:        marginalRate,
		CapitalGainsRate:    capitalGainsRate,
		CapitalGainsTax:     capitalGainsTax,
		RecaptureTax:        recaptureTax,
		TotalTax:            totalTax,
		StateTax:            stateTax,
		NetProceedsAfterTax: netSalePrice - totalTax - stateTax,
	}
}
