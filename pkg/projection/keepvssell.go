// Package projection builds year-by-year wealth projections comparing
// keeping a rental property against selling and investing the proceeds.
package projection

import (
	"fmt"

	"github.com/PROACTIVA-US/property-manager-sub001/pkg/cashflow"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/constants"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/format"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/mathutil"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/property"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/tax"
	"go.uber.org/zap"
)

// Recommendation values for a keep-vs-sell analysis.
const (
	RecommendKeep    = "keep"
	RecommendSell    = "sell"
	RecommendNeutral = "neutral"
)

// Year is one row of the projection.
type Year struct {
	Year                       int
	EquityValue                float64
	CumulativeCashFlow         float64
	TotalReturn                float64
	AlternativeInvestmentValue float64
	KeepAdvantage              float64
}

// Analysis is the full keep-vs-sell projection.
type Analysis struct {
	Years                []Year
	NetSaleProceeds      float64
	BreakEvenYear        *int
	Recommendation       string
	RecommendationReason string
}

// KeepVsSell projects wealth for "keep renting out" versus "sell and invest
// the after-tax proceeds" over the given number of years.
//
// Cash flow accrues linearly from a single static evaluation; rent and
// expenses are not re-evaluated per year. The mortgage balance declines on a
// straight 30-year line, an approximation of amortization.
func KeepVsSell(logger *zap.Logger, prop property.Financials, taxInputs tax.Inputs, alternativeReturnRate float64, numYears int) Analysis {
	if logger == nil {
		logger = zap.NewNop()
	}

	analysis := Analysis{}
	if numYears <= 0 {
		analysis.Recommendation = RecommendNeutral
		analysis.RecommendationReason = "no projection years requested"
		return analysis
	}

	summary := cashflow.Calculate(prop)
	estimate := tax.CalculateEstimate(prop, taxInputs)
	analysis.NetSaleProceeds = estimate.NetProceedsAfterTax

	annualCashFlow := summary.CashFlowBeforeTax

	for year := 1; year <= numYears; year++ {
		marketValue := mathutil.Compound(prop.CurrentMarketValue, prop.AnnualAppreciationRate, year)
		mortgageBalance := prop.MortgageBalance *
			mathutil.Max(0, 1-float64(year)/constants.MortgageDeclineYears)
		equityValue := marketValue - mortgageBalance

		cumulativeCashFlow := annualCashFlow * float64(year)
		totalReturn := equityValue + cumulativeCashFlow

		alternativeValue := mathutil.Compound(estimate.NetProceedsAfterTax, alternativeReturnRate, year)
		keepAdvantage := totalReturn - alternativeValue

		analysis.Years = append(analysis.Years, Year{
			Year:                       year,
			EquityValue:                equityValue,
			CumulativeCashFlow:         cumulativeCashFlow,
			TotalReturn:                totalReturn,
			AlternativeInvestmentValue: alternativeValue,
			KeepAdvantage:              keepAdvantage,
		})

		if analysis.BreakEvenYear == nil && keepAdvantage >= 0 {
			y := year
			analysis.BreakEvenYear = &y
		}
	}

	finalAdvantage := analysis.Years[len(analysis.Years)-1].KeepAdvantage
	switch {
	case finalAdvantage > constants.NeutralAdvantageBand:
		analysis.Recommendation = RecommendKeep
		analysis.RecommendationReason = fmt.Sprintf(
			"keeping the property projects %s more wealth after %d years",
			format.Currency(finalAdvantage), numYears)
	case finalAdvantage < -constants.NeutralAdvantageBand:
		analysis.Recommendation = RecommendSell
		analysis.RecommendationReason = fmt.Sprintf(
			"selling and investing projects %s more wealth after %d years",
			format.Currency(-finalAdvantage), numYears)
	default:
		analysis.Recommendation = RecommendNeutral
		analysis.RecommendationReason = fmt.Sprintf(
			"the projected difference of %s after %d years is too small to call",
			format.Currency(finalAdvantage), numYears)
	}

	logger.Debug(fmt.Sprintf("keep-vs-sell recommendation: %s", analysis.Recommendation),
		zap.String("op", "projection.KeepVsSell"),
		zap.Float64("finalAdvantage", finalAdvantage),
		zap.Int("years", numYears),
	)

	return analysis
}
