package quadrature

import (
	"math"

	"github.com/kairoslang/lexcore/core"
)

// LikelihoodFunc evaluates the (unnormalized) likelihood of the observed
// responses at a candidate θ. Package irt supplies this via its probability
// models; quadrature stays independent of the Model enum so it can be
// reused for any likelihood shape.
type LikelihoodFunc func(theta float64) float64

// EAPResult is the posterior mean/sd estimate.
type EAPResult struct {
	Mean float64
	SD   float64
}

// EstimateEAP computes the Expected A Posteriori estimate of θ under a
// Normal(mu, tau) prior, integrated against likelihood via n-point
// Gauss-Hermite quadrature, §4.1.
//
// Contract: never diverges. If likelihood is uniformly (numerically) zero
// across every quadrature node — the §7 ZeroLikelihood condition — the
// prior (mu, tau) is returned directly rather than an error.
func EstimateEAP(mu, tau float64, n int, likelihood LikelihoodFunc) (EAPResult, error) {
	nodes, err := Nodes(n)
	if err != nil {
		return EAPResult{}, err
	}

	var sumW, sumWTheta float64
	thetas := make([]float64, len(nodes))
	liks := make([]float64, len(nodes))
	for i, nd := range nodes {
		theta := mu + math.Sqrt2*tau*nd.X
		lik := likelihood(theta)
		w := nd.W / math.Sqrt(math.Pi) * lik
		thetas[i] = theta
		liks[i] = lik
		sumW += w
		sumWTheta += w * theta
	}

	if sumW <= 0 {
		// ZeroLikelihood: fall back to the prior, never an error (§7).
		return EAPResult{Mean: mu, SD: tau}, nil
	}

	mean := sumWTheta / sumW

	var sumWVar float64
	for i, nd := range nodes {
		w := nd.W / math.Sqrt(math.Pi) * liks[i]
		d := thetas[i] - mean
		sumWVar += w * d * d
	}
	variance := sumWVar / sumW
	if variance < 0 {
		variance = 0
	}

	return EAPResult{Mean: mean, SD: math.Sqrt(variance)}, nil
}

// BinaryLikelihood builds a LikelihoodFunc for a sequence of correct/incorrect
// responses to items with the given IRT parameters under model prob, the
// common case for EAP in this engine (§4.1 EAP on extreme response patterns).
func BinaryLikelihood(prob func(theta float64, p core.IRTParams) float64, items []core.IRTParams, correct []bool) LikelihoodFunc {
	return func(theta float64) float64 {
		lik := 1.0
		for i, p := range items {
			P := prob(theta, p)
			if correct[i] {
				lik *= P
			} else {
				lik *= 1 - P
			}
		}
		return lik
	}
}
