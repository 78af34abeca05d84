package irt

import (
	"math"

	"github.com/kairoslang/lexcore/core"
	"github.com/kairoslang/lexcore/xmath"
)

// maxMLEIterations bounds Newton-Raphson, §4.1 ("at most 30 iterations").
const maxMLEIterations = 30

// mleConvergence is the |Δθ| threshold below which Newton-Raphson stops.
const mleConvergence = 1e-4

// maxMLEStep bounds a single Newton-Raphson step so a flat-likelihood
// region can never catapult θ outside the clamp range in one iteration.
const maxMLEStep = 1.0

// MLEResult is the outcome of a maximum-likelihood θ estimate.
type MLEResult struct {
	Theta     float64
	SE        float64
	Converged bool
	Iterations int
}

// ItemResponse pairs an item's IRT parameters with whether the learner
// answered it correctly, the unit of evidence MLE and EAP both consume.
type ItemResponse struct {
	Params  core.IRTParams
	Correct bool
}

// EstimateMLE runs bounded Newton-Raphson on the log-likelihood of resp
// under model, starting from theta0. It reports Converged=false (without
// error — §7 MLENonconvergence is never surfaced) when the all-correct or
// all-incorrect pattern drives the likelihood monotonic and iterations are
// exhausted without reaching mleConvergence.
//
// SE is reported as 1/√ΣI evaluated at the final θ estimate, §4.1.
func EstimateMLE(model Model, theta0 float64, resp []ItemResponse) MLEResult {
	theta := xmath.Clamp(theta0, -4, 4)
	converged := false
	iter := 0
	for ; iter < maxMLEIterations; iter++ {
		var score, info float64
		for _, r := range resp {
			P := Probability(model, theta, r.Params)
			a := discriminationOf(model, r.Params)
			obs := 0.0
			if r.Correct {
				obs = 1.0
			}
			// d/dθ log L = a (obs - P) for the logistic family (3PL uses the
			// same derivative up to the (P-c)/(1-c) reweighting folded into
			// Information below; score uses the simple 1PL/2PL derivative
			// since it only drives step direction, not the final SE).
			score += a * (obs - P)
			info += Information(model, theta, r.Params)
		}
		if info <= 0 {
			break
		}
		step := score / info
		if step > maxMLEStep {
			step = maxMLEStep
		} else if step < -maxMLEStep {
			step = -maxMLEStep
		}
		theta = xmath.Clamp(theta+step, -4, 4)
		if math.Abs(step) < mleConvergence {
			converged = true
			iter++
			break
		}
	}

	var totalInfo float64
	for _, r := range resp {
		totalInfo += Information(model, theta, r.Params)
	}
	se := 1.0
	if totalInfo > 0 {
		se = 1 / math.Sqrt(totalInfo)
	}

	return MLEResult{Theta: theta, SE: se, Converged: converged, Iterations: iter}
}

func discriminationOf(model Model, p core.IRTParams) float64 {
	if model == Model1PL {
		return 1
	}
	return p.A
}
