package stats

import "math"

// lnFactorial returns ln(n!) via the standard library's log-gamma:
// ln(n!) = ln(Gamma(n+1)). Gamma is positive over n+1 > 0 here, so the
// sign math.Lgamma also returns is always +1 and can be ignored.
func lnFactorial(n int) float64 {
	v, _ := math.Lgamma(float64(n + 1))
	return v
}

// lnBinomial returns ln(C(n, k)), and -Inf (the log of a zero count) when k
// is out of [0, n].
func lnBinomial(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	return lnFactorial(n) - lnFactorial(k) - lnFactorial(n-k)
}

// lnPMF returns ln P(X = k) for a hypergeometric distribution with
// population N, K successes in the population, and n draws.
func lnPMF(population, successes, draws, k int) float64 {
	return lnBinomial(successes, k) + lnBinomial(population-successes, draws-k) - lnBinomial(population, draws)
}

// SurvivalFunction returns P(X >= k) for Hypergeometric(population,
// successes, draws), the upper-tail p-value used by enrichment reporting.
// Computed by summing the PMF over the feasible upper tail in log-space,
// only exponentiating each term, which keeps the computation well behaved
// for the ontology's scale (populations and success counts in the tens of
// thousands).
func SurvivalFunction(population, successes, draws, k int) float64 {
	lo := max(0, draws-(population-successes))
	hi := min(draws, successes)
	if k > hi {
		return 0
	}
	if k < lo {
		k = lo
	}

	var sum float64
	for i := k; i <= hi; i++ {
		sum += math.Exp(lnPMF(population, successes, draws, i))
	}
	return math.Min(sum, 1.0)
}

// Expected returns the expected overlap count for a hypergeometric draw:
// successes * draws / population.
func Expected(population, successes, draws int) float64 {
	if population == 0 {
		return 0
	}
	return float64(successes) * float64(draws) / float64(population)
}

// FoldEnrichment returns observed / expected, or 0 when expected is 0.
func FoldEnrichment(observed int, expected float64) float64 {
	if expected == 0 {
		return 0
	}
	return float64(observed) / expected
}
