package equity

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ConfidenceInterval computes a two-sided confidence interval for a Result's
// equity estimate using a Student's t distribution over the per-iteration
// outcome samples, which is more faithful at small sample counts than a
// normal approximation.
func ConfidenceInterval(r Result, confidence float64) (lower, upper float64) {
	n := len(r.workerOutcomes)
	if n < 2 {
		return r.Equity(), r.Equity()
	}

	mean := stat.Mean(r.workerOutcomes, nil)
	variance := stat.Variance(r.workerOutcomes, nil)
	se := math.Sqrt(variance / float64(n))

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	alpha := 1 - confidence
	crit := dist.Quantile(1 - alpha/2)

	margin := crit * se
	lower = math.Max(0, mean-margin)
	upper = math.Min(1, mean+margin)
	return lower, upper
}
