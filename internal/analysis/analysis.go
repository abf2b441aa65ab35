// Package analysis runs the full property finance analysis for a loaded
// configuration: amortization schedules, payoff acceleration, cash flow,
// sale taxes, and the keep-vs-sell projection.
package analysis

import (
	"fmt"

	"github.com/PROACTIVA-US/property-manager-sub001/internal/config"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/amortize"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/cashflow"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/datetime"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/projection"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/solver"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/tax"
	"go.uber.org/zap"
)

// Report aggregates every derived result for one configuration. Optional
// analyses are nil when their inputs are absent from the config.
type Report struct {
	Baseline             *amortize.Schedule
	Accelerated          *amortize.Schedule
	Comparison           amortize.Comparison
	CurrentPrincipal     *float64
	RequiredExtraMonthly *float64
	CashFlow             cashflow.Summary
	RentalComparison     cashflow.RentalComparison
	Tax                  tax.Estimate
	KeepVsSell           projection.Analysis
}

// Run executes all analyses for the configuration.
func Run(logger *zap.Logger, conf config.Configuration) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loan, err := conf.LoanParameters()
	if err != nil {
		return nil, err
	}

	scheduler := amortize.NewScheduler(logger)

	baseline, err := scheduler.BuildSchedule(loan, 0, amortize.OneTimePayment{})
	if err != nil {
		return nil, fmt.Errorf("baseline schedule failed: %w", err)
	}

	accelerated, err := scheduler.BuildSchedule(loan, conf.Analysis.ExtraMonthlyPayment, conf.OneTimePayment())
	if err != nil {
		return nil, fmt.Errorf("accelerated schedule failed: %w", err)
	}

	report := &Report{
		Baseline:    baseline,
		Accelerated: accelerated,
		Comparison:  amortize.Compare(baseline, accelerated, loan.Principal),
	}

	if asOf, ok, asOfErr := conf.AsOfDate(); asOfErr != nil {
		return nil, asOfErr
	} else if ok {
		principal, principalErr := amortize.CurrentPrincipal(logger, loan, asOf)
		if principalErr != nil {
			return nil, fmt.Errorf("principal projection failed: %w", principalErr)
		}
		report.CurrentPrincipal = &principal
	}

	if target, ok, targetErr := conf.TargetPayoffDate(); targetErr != nil {
		return nil, targetErr
	} else if ok {
		targetSolver := solver.NewTargetDateSolver(logger)
		extra, feasible, solveErr := targetSolver.SolveExtraPayment(loan, target, baseline)
		if solveErr != nil {
			return nil, fmt.Errorf("target date solve failed: %w", solveErr)
		}
		if feasible {
			report.RequiredExtraMonthly = &extra
		} else {
			logger.Info(fmt.Sprintf("target payoff date %s is not reachable with extra monthly payments",
				target.Format(datetime.DateTimeLayout)),
				zap.String("op", "analysis.Run"),
			)
		}
	}

	report.CashFlow = cashflow.Calculate(conf.Property)
	report.RentalComparison = cashflow.CompareToPersonal(conf.Property, conf.Personal)
	report.Tax = tax.CalculateEstimate(conf.Property, conf.TaxInputs())
	report.KeepVsSell = projection.KeepVsSell(logger, conf.Property, conf.TaxInputs(),
		conf.Analysis.AlternativeReturnRate, conf.Analysis.ProjectionYears)

	return report, nil
}
