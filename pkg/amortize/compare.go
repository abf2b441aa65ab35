package amortize

import "time"

// Comparison summarizes a baseline schedule against an accelerated one.
// Comparable is false when either schedule hit the safety cap without
// reaching zero balance; MonthsSaved and InterestSaved are misleading in
// that case and callers must not present them.
type Comparison struct {
	InitialPrincipal         float64
	OriginalTotalInterest    float64
	AcceleratedTotalInterest float64
	OriginalPayoffDate       *time.Time
	AcceleratedPayoffDate    *time.Time
	MonthsSaved              int
	InterestSaved            float64
	Comparable               bool
}

// Compare derives summary deltas between a baseline and an accelerated
// schedule for the same loan.
func Compare(original, accelerated *Schedule, initialPrincipal float64) Comparison {
	comparison := Comparison{
		InitialPrincipal: initialPrincipal,
		Comparable:       true,
	}

	if original != nil {
		comparison.OriginalTotalInterest = original.TotalInterest()
		comparison.OriginalPayoffDate = original.PayoffDate()
		if !original.Converged {
			comparison.Comparable = false
		}
	}
	if accelerated != nil {
		comparison.AcceleratedTotalInterest = accelerated.TotalInterest()
		comparison.AcceleratedPayoffDate = accelerated.PayoffDate()
		if !accelerated.Converged {
			comparison.Comparable = false
		}
	}

	originalLen := 0
	if original != nil {
		originalLen = len(original.Entries)
	}
	acceleratedLen := 0
	if accelerated != nil {
		acceleratedLen = len(accelerated.Entries)
	}

	comparison.MonthsSaved = originalLen - acceleratedLen
	comparison.InterestSaved = comparison.OriginalTotalInterest - comparison.AcceleratedTotalInterest

	return comparison
}
