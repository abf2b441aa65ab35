package amortize

import (
	"time"

	"github.com/PROACTIVA-US/property-manager-sub001/pkg/datetime"
	"go.uber.org/zap"
)

// CurrentPrincipal replays the zero-extra baseline schedule to compute the
// outstanding principal as of the given date. Elapsed time is measured in
// whole calendar months; days within a month are ignored.
func CurrentPrincipal(logger *zap.Logger, loan LoanParameters, asOf time.Time) (float64, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	monthsElapsed := datetime.MonthsBetween(loan.StartDate, asOf)
	if monthsElapsed <= 0 {
		return loan.Principal, nil
	}

	scheduler := NewScheduler(logger)
	schedule, err := scheduler.BuildSchedule(loan, 0, OneTimePayment{})
	if err != nil {
		return 0, err
	}

	if monthsElapsed > len(schedule.Entries) {
		// The loan matured before the as-of date.
		return 0, nil
	}

	return schedule.Entries[monthsElapsed-1].RemainingBalance, nil
}
