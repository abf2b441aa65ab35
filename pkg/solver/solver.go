// Package solver back-solves loan payment questions by bisection over
// amortization schedules.
package solver

import (
	"fmt"
	"time"

	"github.com/PROACTIVA-US/property-manager-sub001/pkg/amortize"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/constants"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/datetime"
	"go.uber.org/zap"
)

// TargetDateSolver finds the minimal extra monthly payment that moves a
// loan's payoff date on or before a target date. It relies on the scheduler
// being monotonic: more extra payment never delays payoff.
type TargetDateSolver struct {
	logger    *zap.Logger
	scheduler *amortize.Scheduler
}

// NewTargetDateSolver creates a solver with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewTargetDateSolver(logger *zap.Logger) *TargetDateSolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TargetDateSolver{logger: logger, scheduler: amortize.NewScheduler(logger)}
}

// SolveExtraPayment bisects the extra monthly payment over [0, principal].
// The boolean result is false when no extra payment can reach the target
// date: the target precedes the loan start, or is earlier than even a
// full-principal payment can achieve. A zero value with true means the
// original schedule already meets the target. The original schedule is
// rebuilt when nil.
func (s *TargetDateSolver) SolveExtraPayment(loan amortize.LoanParameters, targetDate time.Time, original *amortize.Schedule) (float64, bool, error) {
	// Date-only comparison; a target before the loan even starts is not a
	// valid ask.
	if datetime.BeforeDay(targetDate, loan.StartDate) {
		return 0, false, nil
	}

	if original == nil {
		var err error
		original, err = s.scheduler.BuildSchedule(loan, 0, amortize.OneTimePayment{})
		if err != nil {
			return 0, false, fmt.Errorf("baseline schedule failed: %w", err)
		}
	}

	if original.Converged {
		if payoff := original.PayoffDate(); payoff != nil && datetime.SameOrAfterDay(targetDate, *payoff) {
			// No extra payment needed.
			return 0, true, nil
		}
	}

	meetsTarget := func(schedule *amortize.Schedule) bool {
		if !schedule.Converged {
			return false
		}
		payoff := schedule.PayoffDate()
		return payoff != nil && datetime.SameOrAfterDay(targetDate, *payoff)
	}

	low := 0.0
	high := loan.Principal

	// Probe the upper bound first; if a full-principal extra payment cannot
	// reach the target there is nothing to search.
	upperTrial, err := s.scheduler.BuildSchedule(loan, high, amortize.OneTimePayment{})
	if err != nil {
		return 0, false, fmt.Errorf("trial schedule failed: %w", err)
	}
	if !meetsTarget(upperTrial) {
		return 0, false, nil
	}

	best := high
	iterations := 0
	for iterations < constants.MaxSolverIterations && high-low >= constants.CurrencyTolerance {
		mid := low + (high-low)/2
		trial, err := s.scheduler.BuildSchedule(loan, mid, amortize.OneTimePayment{})
		if err != nil {
			return 0, false, fmt.Errorf("trial schedule failed: %w", err)
		}
		iterations++
		if meetsTarget(trial) {
			best = mid
			high = mid
		} else {
			low = mid
		}
	}

	// Confirmation run at the chosen value.
	confirmed, err := s.scheduler.BuildSchedule(loan, best, amortize.OneTimePayment{})
	if err != nil {
		return 0, false, fmt.Errorf("confirmation schedule failed: %w", err)
	}
	if !meetsTarget(confirmed) {
		return 0, false, nil
	}

	s.logger.Debug(fmt.Sprintf("solved extra payment %.2f in %d iterations", best, iterations),
		zap.String("op", "solver.SolveExtraPayment"),
		zap.String("targetDate", targetDate.Format(datetime.DateTimeLayout)),
	)

	return best, true, nil
}
