// Package output provides utilities for formatting and displaying analysis results.
package output

import (
	"fmt"

	"github.com/PROACTIVA-US/property-manager-sub001/internal/analysis"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/datetime"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(report *analysis.Report) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Loan payoff ---\n")
	if payoff := report.Comparison.OriginalPayoffDate; payoff != nil {
		_, _ = p.Printf("Baseline: %d payments, payoff %s, total interest $%.2f\n",
			len(report.Baseline.Entries), payoff.Format(datetime.DateTimeLayout),
			report.Comparison.OriginalTotalInterest)
	} else {
		fmt.Printf("Baseline: empty schedule\n")
	}
	if payoff := report.Comparison.AcceleratedPayoffDate; payoff != nil {
		_, _ = p.Printf("Accelerated: %d payments, payoff %s, total interest $%.2f\n",
			len(report.Accelerated.Entries), payoff.Format(datetime.DateTimeLayout),
			report.Comparison.AcceleratedTotalInterest)
	}
	if report.Comparison.Comparable {
		_, _ = p.Printf("Saved: %d months and $%.2f interest\n",
			report.Comparison.MonthsSaved, report.Comparison.InterestSaved)
	} else {
		fmt.Printf("Saved: not comparable - a schedule hit the safety cap without paying off\n")
	}

	if report.CurrentPrincipal != nil {
		_, _ = p.Printf("Current principal: $%.2f\n", *report.CurrentPrincipal)
	}
	if report.RequiredExtraMonthly != nil {
		_, _ = p.Printf("Extra monthly payment for target payoff: $%.2f\n", *report.RequiredExtraMonthly)
	}

	fmt.Printf("\n--- Rental cash flow (annual) ---\n")
	_, _ = p.Printf("NOI $%.2f | cash flow before tax $%.2f | cap rate %s | cash-on-cash %s\n",
		report.CashFlow.NetOperatingIncome, report.CashFlow.CashFlowBeforeTax,
		format.Percent(report.CashFlow.CapRate), format.Percent(report.CashFlow.CashOnCashReturn))
	_, _ = p.Printf("Renting out vs occupying (monthly): advantage $%.2f ($%.2f annual)\n",
		report.RentalComparison.MonthlyAdvantage, report.RentalComparison.AnnualAdvantage)

	fmt.Printf("\n--- Sale tax estimate ---\n")
	_, _ = p.Printf("Depreciation taken $%.2f | adjusted basis $%.2f | capital gain $%.2f\n",
		report.Tax.DepreciationTaken, report.Tax.AdjustedBasis, report.Tax.CapitalGain)
	_, _ = p.Printf("Federal $%.2f + state $%.2f tax | net proceeds $%.2f\n",
		report.Tax.TotalTax, report.Tax.StateTax, report.Tax.NetProceedsAfterTax)

	fmt.Printf("\n--- Keep vs sell ---\n")
	fmt.Printf("Year | Total Return   | Alternative    | Advantage\n")
	fmt.Printf("____ | ______________ | ______________ | _________\n")
	for _, year := range report.KeepVsSell.Years {
		_, _ = p.Printf("%4d | $%.2f | $%.2f | $%.2f\n",
			year.Year, year.TotalReturn, year.AlternativeInvestmentValue, year.KeepAdvantage)
	}
	if report.KeepVsSell.BreakEvenYear != nil {
		fmt.Printf("Break-even in year %d\n", *report.KeepVsSell.BreakEvenYear)
	}
	fmt.Printf("Recommendation: %s (%s)\n", report.KeepVsSell.Recommendation, report.KeepVsSell.RecommendationReason)
}

// CsvFormat outputs the accelerated amortization schedule in comma-separated
// value format.
func CsvFormat(report *analysis.Report) {
	fmt.Printf(`"month","date","principal","interest","extra","total","balance"` + "\n")
	for _, entry := range report.Accelerated.Entries {
		fmt.Printf(`"%d","%s","%.2f","%.2f","%.2f","%.2f","%.2f"`+"\n",
			entry.MonthIndex, entry.PaymentDate.Format(datetime.DateTimeLayout),
			entry.PrincipalPaid, entry.InterestPaid, entry.ExtraPayment,
			entry.TotalPayment, entry.RemainingBalance)
	}
}
