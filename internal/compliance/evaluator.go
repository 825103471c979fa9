// Package compliance implements the solvency rule applied to every
// filing at creation time. Evaluation is pure: same inputs, same
// result, no I/O.
package compliance

import (
	"math"

	"solvency-backend/internal/domain/submission"
)

// DefaultCapitalThresholdCents is the regulatory minimum capital,
// 400,000,000 KES in minor units. Overridable via configuration.
const DefaultCapitalThresholdCents int64 = 400_000_000 * 100

type Result struct {
	Ratio   submission.Ratio
	Verdict submission.Verdict
}

type Evaluator struct{ thresholdCents int64 }

func NewEvaluator(thresholdCents int64) *Evaluator {
	if thresholdCents <= 0 {
		thresholdCents = DefaultCapitalThresholdCents
	}
	return &Evaluator{thresholdCents: thresholdCents}
}

// maxReportableRatio is the ceiling of the stored decimal(14,6)
// solvency_ratio column. Finite ratios at or above it fold into the
// infinite case rather than overflowing the column.
const maxReportableRatio = 1e8

// Evaluate maps (capital, liabilities) to a solvency ratio and verdict.
// Compliant iff capital >= threshold and ratio >= 1.0; zero liabilities
// make the ratio +Inf, which passes the ratio test. Both guards compare
// integers so the boundary is exact. Callers validate non-negativity
// before calling; negative amounts never reach here.
func (e *Evaluator) Evaluate(capitalCents, liabilitiesCents int64) Result {
	ratio := submission.Ratio(math.Inf(1))
	if liabilitiesCents > 0 {
		ratio = submission.Ratio(float64(capitalCents) / float64(liabilitiesCents))
		if float64(ratio) >= maxReportableRatio {
			ratio = submission.Ratio(math.Inf(1))
		}
	}

	verdict := submission.VerdictNonCompliant
	if capitalCents >= e.thresholdCents && capitalCents >= liabilitiesCents {
		verdict = submission.VerdictCompliant
	}
	return Result{Ratio: ratio, Verdict: verdict}
}
