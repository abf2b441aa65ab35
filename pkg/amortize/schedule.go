// Package amortize builds month-by-month loan amortization schedules and
// derives summaries from them.
package amortize

import (
	"errors"
	"fmt"
	"time"

	"github.com/PROACTIVA-US/property-manager-sub001/pkg/constants"
	"github.com/PROACTIVA-US/property-manager-sub001/pkg/mathutil"
	"go.uber.org/zap"
)

// ErrInvalidInput indicates loan parameters that cannot produce a meaningful
// schedule (negative principal, rate, or payments).
var ErrInvalidInput = errors.New("invalid loan input")

// LoanParameters holds the immutable inputs for a schedule run. Rates are
// fractions (0.06 = 6% annual), not percentages.
type LoanParameters struct {
	Principal          float64
	AnnualRate         float64
	BaseMonthlyPayment float64
	Escrow             float64
	TotalPayment       float64
	StartDate          time.Time
}

// OneTimePayment is a single lump-sum principal payment applied at the given
// schedule month. A Month of 0 means no one-time payment.
type OneTimePayment struct {
	Amount float64
	Month  int
}

// Entry is one row of an amortization schedule.
type Entry struct {
	MonthIndex       int
	PaymentDate      time.Time
	PrincipalPaid    float64
	InterestPaid     float64
	ExtraPayment     float64
	TotalPayment     float64
	RemainingBalance float64
}

// Schedule is the full ordered payment sequence for one schedule run.
// Converged is false when the safety cap stopped a loan whose payment never
// covers its interest; such a schedule ends with a nonzero balance and must
// not be read as a real payoff.
type Schedule struct {
	Entries   []Entry
	Converged bool
}

// PayoffDate returns the payment date of the final entry, or nil for an
// empty schedule.
func (s *Schedule) PayoffDate() *time.Time {
	if s == nil || len(s.Entries) == 0 {
		return nil
	}
	d := s.Entries[len(s.Entries)-1].PaymentDate
	return &d
}

// TotalInterest sums the interest paid across all entries.
func (s *Schedule) TotalInterest() float64 {
	if s == nil {
		return 0
	}
	total := 0.0
	for _, entry := range s.Entries {
		total += entry.InterestPaid
	}
	return total
}

// Scheduler produces amortization schedules.
type Scheduler struct {
	logger *zap.Logger
}

// NewScheduler creates a new Scheduler with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewScheduler(logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{logger: logger}
}

func validateLoan(loan LoanParameters, extraMonthly float64, oneTime OneTimePayment) error {
	if loan.Principal < 0 {
		return fmt.Errorf("%w: principal %.2f is negative", ErrInvalidInput, loan.Principal)
	}
	if loan.AnnualRate < 0 {
		return fmt.Errorf("%w: annual rate %.6f is negative", ErrInvalidInput, loan.AnnualRate)
	}
	if loan.BaseMonthlyPayment < 0 {
		return fmt.Errorf("%w: base payment %.2f is negative", ErrInvalidInput, loan.BaseMonthlyPayment)
	}
	if extraMonthly < 0 {
		return fmt.Errorf("%w: extra monthly payment %.2f is negative", ErrInvalidInput, extraMonthly)
	}
	if oneTime.Amount < 0 {
		return fmt.Errorf("%w: one-time payment %.2f is negative", ErrInvalidInput, oneTime.Amount)
	}
	if oneTime.Month < 0 {
		return fmt.Errorf("%w: one-time payment month %d is negative", ErrInvalidInput, oneTime.Month)
	}
	return nil
}

// BuildSchedule simulates the loan month by month from the full principal
// down to payoff. Each run produces a fresh sequence; identical inputs yield
// identical output.
func (s *Scheduler) BuildSchedule(loan LoanParameters, extraMonthly float64, oneTime OneTimePayment) (*Schedule, error) {
	if err := validateLoan(loan, extraMonthly, oneTime); err != nil {
		return nil, err
	}

	schedule := &Schedule{}
	balance := loan.Principal
	monthlyRate := loan.AnnualRate / constants.MonthsPerYear
	basePayment := loan.BaseMonthlyPayment
	paymentDate := loan.StartDate

	if balance <= constants.BalanceEpsilon {
		schedule.Converged = true
		return schedule, nil
	}

	for month := 1; month <= constants.MaxScheduleMonths; month++ {
		interest := balance * monthlyRate

		extraThisMonth := extraMonthly
		if oneTime.Month != 0 && oneTime.Month == month {
			s.logger.Debug(fmt.Sprintf("applying one-time payment %.2f at month %d", oneTime.Amount, month),
				zap.String("op", "amortize.BuildSchedule"),
			)
			extraThisMonth += oneTime.Amount
		}

		var principalPaid, extraPaid float64
		if balance+interest <= basePayment+extraThisMonth {
			// Final month; the payment must not overshoot the balance.
			if balance+interest <= basePayment {
				// The base payment alone retires the loan; the extra
				// payment is not needed and is not recorded as paid.
				principalPaid = balance
				extraPaid = 0
			} else {
				principalPaid = mathutil.Max(0, basePayment-interest)
				extraPaid = balance - principalPaid
			}
			balance = 0
		} else {
			principalPaid = mathutil.Max(0, basePayment-interest)
			extraPaid = extraThisMonth
			balance -= principalPaid + extraPaid
		}

		if balance < constants.BalanceEpsilon {
			balance = 0
		}

		schedule.Entries = append(schedule.Entries, Entry{
			MonthIndex:       month,
			PaymentDate:      paymentDate,
			PrincipalPaid:    principalPaid,
			InterestPaid:     interest,
			ExtraPayment:     extraPaid,
			TotalPayment:     principalPaid + interest + extraPaid,
			RemainingBalance: balance,
		})

		if balance == 0 {
			schedule.Converged = true
			break
		}
		paymentDate = paymentDate.AddDate(0, 1, 0)
	}

	if !schedule.Converged {
		s.logger.Warn(fmt.Sprintf("schedule hit %d-month cap with balance %.2f outstanding; loan does not amortize",
			constants.MaxScheduleMonths, schedule.Entries[len(schedule.Entries)-1].RemainingBalance),
			zap.String("op", "amortize.BuildSchedule"),
			zap.Float64("basePayment", basePayment),
			zap.Float64("annualRate", loan.AnnualRate),
		)
	}

	return schedule, nil
}
