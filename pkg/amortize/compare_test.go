package amortize

import (
	"math"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestCompare_BaselineVsAccelerated(t *testing.T) {
	scheduler := NewScheduler(zap.NewNop())
	loan := testLoan()

	baseline, err := scheduler.BuildSchedule(loan, 0, OneTimePayment{})
	if err != nil {
		t.Fatalf("BuildSchedule() error = %v", err)
	}
	accelerated, err := scheduler.BuildSchedule(loan, 500, OneTimePayment{})
	if err != nil {
		t.Fatalf("BuildSchedule() error = %v", err)
	}

	comparison := Compare(baseline, accelerated, loan.Principal)

	if !comparison.Comparable {
		t.Errorf("Compare() Comparable = false for two converged schedules")
	}
	if comparison.MonthsSaved != len(baseline.Entries)-len(accelerated.Entries) {
		t.Errorf("MonthsSaved = %d, expected %d",
			comparison.MonthsSaved, len(baseline.Entries)-len(accelerated.Entries))
	}
	if comparison.MonthsSaved <= 0 {
		t.Errorf("MonthsSaved = %d, expected positive", comparison.MonthsSaved)
	}
	if comparison.InterestSaved <= 0 {
		t.Errorf("InterestSaved = %.2f, expected positive", comparison.InterestSaved)
	}
	expectedSaved := baseline.TotalInterest() - accelerated.TotalInterest()
	if math.Abs(comparison.InterestSaved-expectedSaved) > 1e-6 {
		t.Errorf("InterestSaved = %.6f, expected %.6f", comparison.InterestSaved, expectedSaved)
	}

	if comparison.OriginalPayoffDate == nil || comparison.AcceleratedPayoffDate == nil {
		t.Fatalf("Compare() returned nil payoff dates for non-empty schedules")
	}
	if !comparison.AcceleratedPayoffDate.Before(*comparison.OriginalPayoffDate) {
		t.Errorf("accelerated payoff %s is not before original payoff %s",
			comparison.AcceleratedPayoffDate.Format("2006-01"),
			comparison.OriginalPayoffDate.Format("2006-01"))
	}
}

func TestCompare_EmptySchedules(t *testing.T) {
	empty := &Schedule{Converged: true}

	comparison := Compare(empty, empty, 0)

	if comparison.OriginalPayoffDate != nil || comparison.AcceleratedPayoffDate != nil {
		t.Errorf("Compare() returned payoff dates for empty schedules")
	}
	if comparison.MonthsSaved != 0 {
		t.Errorf("MonthsSaved = %d, expected 0", comparison.MonthsSaved)
	}
	if comparison.InterestSaved != 0 {
		t.Errorf("InterestSaved = %.2f, expected 0", comparison.InterestSaved)
	}
}

func TestCompare_CapTruncatedNotComparable(t *testing.T) {
	scheduler := NewScheduler(zap.NewNop())

	loan := LoanParameters{
		Principal:          100000,
		AnnualRate:         0.12,
		BaseMonthlyPayment: 500, // below monthly interest; never amortizes
		StartDate:          time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	truncated, err := scheduler.BuildSchedule(loan, 0, OneTimePayment{})
	if err != nil {
		t.Fatalf("BuildSchedule() error = %v", err)
	}
	converged, err := scheduler.BuildSchedule(loan, 2000, OneTimePayment{})
	if err != nil {
		t.Fatalf("BuildSchedule() error = %v", err)
	}
	if !converged.Converged {
		t.Fatalf("schedule with large extra payment did not converge")
	}

	comparison := Compare(truncated, converged, loan.Principal)
	if comparison.Comparable {
		t.Errorf("Compare() Comparable = true with a cap-truncated baseline")
	}
}

func TestCompare_NilSchedules(t *testing.T) {
	comparison := Compare(nil, nil, 0)

	if comparison.OriginalPayoffDate != nil {
		t.Errorf("Compare(nil, nil) returned a payoff date")
	}
	if comparison.MonthsSaved != 0 || comparison.InterestSaved != 0 {
		t.Errorf("Compare(nil, nil) = %+v, expected zero deltas", comparison)
	}
}
