package irt

import (
	"sort"

	"github.com/kairoslang/lexcore/core"
	"github.com/kairoslang/lexcore/irt/quadrature"
	"github.com/kairoslang/lexcore/xmath"
)

// Strategy selects how the next item is chosen among eligible candidates.
type Strategy int

const (
	// StrategyMaxInformation picks the candidate with the highest Fisher
	// information at the current θ̂, ties broken by higher discrimination.
	StrategyMaxInformation Strategy = iota
	// StrategyKLWeighted weights information by the posterior variance of
	// θ̂ (SE²). Every candidate is scaled by the same SE², so it picks the
	// same item as StrategyMaxInformation; no KL divergence is computed.
	StrategyKLWeighted
)

// SelectOptions configures NextItem. Mirrors the functional-option pattern
// used throughout this module's leaf packages.
type SelectOptions struct {
	Model    Model
	Strategy Strategy
	Used     map[core.ItemID]bool
}

// SelectOption mutates SelectOptions.
type SelectOption func(*SelectOptions)

// WithModel overrides the default 2PL probability model.
func WithModel(m Model) SelectOption { return func(o *SelectOptions) { o.Model = m } }

// WithStrategy overrides the default max-information strategy.
func WithStrategy(s Strategy) SelectOption { return func(o *SelectOptions) { o.Strategy = s } }

// WithUsed excludes the given item IDs from consideration.
func WithUsed(used map[core.ItemID]bool) SelectOption {
	return func(o *SelectOptions) { o.Used = used }
}

// DefaultSelectOptions returns 2PL + max-information + no exclusions.
func DefaultSelectOptions() SelectOptions {
	return SelectOptions{Model: Model2PL, Strategy: StrategyMaxInformation, Used: nil}
}

// NextItem selects the next item to present from candidates given the
// learner's current θ̂ and SE, §4.1. Returns ErrEmptyCandidateSet (§7,
// "surfaced as empty result") when every candidate is excluded or
// candidates is empty.
func NextItem(theta, se float64, candidates []core.LearnableItem, opts ...SelectOption) (core.LearnableItem, error) {
	cfg := DefaultSelectOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	type scored struct {
		item  core.LearnableItem
		score float64
	}
	var pool []scored
	for _, it := range candidates {
		if cfg.Used != nil && cfg.Used[it.ID] {
			continue
		}
		info := Information(cfg.Model, theta, it.IRT)
		score := info
		if cfg.Strategy == StrategyKLWeighted {
			score = info * se * se
		}
		pool = append(pool, scored{item: it, score: score})
	}
	if len(pool) == 0 {
		return core.LearnableItem{}, ErrEmptyCandidateSet
	}

	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].score != pool[j].score {
			return pool[i].score > pool[j].score
		}
		return pool[i].item.IRT.A > pool[j].item.IRT.A
	})
	return pool[0].item, nil
}

// eapPriorSD is the EAP fallback's prior standard deviation τ, §8 ("EAP on
// extreme pattern... μ=0, τ=1, 21 nodes").
const eapPriorSD = 1.0

// EstimateTheta is the public ability-estimation entry point: it runs
// EstimateMLE and, per §4.1 ("the caller must fall back to EAP"), falls
// back internally to quadrature.EstimateEAP — under a Normal(theta0, 1)
// prior and quadratureNodes nodes — whenever Newton-Raphson fails to
// converge (the all-correct/all-incorrect pattern). Converged reports
// which path produced Theta/SE: true for MLE, false for the EAP fallback.
func EstimateTheta(model Model, theta0 float64, resp []ItemResponse, quadratureNodes int) MLEResult {
	result := EstimateMLE(model, theta0, resp)
	if result.Converged || len(resp) == 0 {
		return result
	}

	items := make([]core.IRTParams, len(resp))
	correct := make([]bool, len(resp))
	for i, r := range resp {
		items[i] = r.Params
		correct[i] = r.Correct
	}
	lik := quadrature.BinaryLikelihood(func(theta float64, p core.IRTParams) float64 {
		return Probability(model, theta, p)
	}, items, correct)

	eap, err := quadrature.EstimateEAP(theta0, eapPriorSD, quadratureNodes, lik)
	if err != nil {
		// Unsupported node count: surface the non-convergent MLE result
		// rather than silently substituting a different node count.
		return result
	}
	result.Theta = xmath.Clamp(eap.Mean, -4, 4)
	result.SE = eap.SD
	return result
}
