package calibrator

import (
	"math"

	"github.com/kairoslang/lexcore/core"
	"github.com/kairoslang/lexcore/irt"
)

// Model is a closed enumeration of the three MIRT combination rules, §4.6.
type Model int

const (
	ModelCompensatory Model = iota
	ModelConjunctive
	ModelDisjunctive
)

// ModelForTaskType dispatches a task type to its MIRT model. Compensatory
// is the default; conjunctive suits tasks where every targeted component
// must independently succeed (error_correction, translation,
// sentence_writing); disjunctive suits tasks passable via any one strong
// component (recognition, definition_match, recall_cued).
func ModelForTaskType(tt core.TaskType) Model {
	switch tt {
	case core.ErrorCorrection, core.Translation, core.SentenceWriting:
		return ModelConjunctive
	case core.Recognition, core.DefinitionMatch, core.RecallCued:
		return ModelDisjunctive
	default:
		return ModelCompensatory
	}
}

// ComponentParam bundles the per-component IRT parameters and current θ
// needed to evaluate a MIRT probability.
type ComponentParam struct {
	Component core.Component
	Theta     float64
	IRT       core.IRTParams
	Weight    float64
}

// defaultSlip/defaultGuess are the conjunctive/disjunctive floor
// parameters. §4.6 names "slip_floor"/"slip"/"guess" without pinning
// values; these follow the conventional DINA-model defaults used across
// cognitive diagnostic models (low slip, low guess) since no source in the
// retrieval pack fixes a different constant.
const (
	defaultSlip  = 0.05
	defaultGuess = 0.1
)

// Probability evaluates the MIRT model's combined success probability
// across a task's weighted components, §4.6.
func Probability(model Model, comps []ComponentParam) float64 {
	switch model {
	case ModelConjunctive:
		return conjunctiveProbability(comps)
	case ModelDisjunctive:
		return disjunctiveProbability(comps)
	default:
		return compensatoryProbability(comps)
	}
}

// compensatoryProbability: P = σ(Σ wᵢ·aᵢ·(θᵢ-bᵢ)).
func compensatoryProbability(comps []ComponentParam) float64 {
	var sum float64
	for _, c := range comps {
		a := c.IRT.A
		if a == 0 {
			a = 1
		}
		sum += c.Weight * a * (c.Theta - c.IRT.B)
	}
	return 1 / (1 + math.Exp(-sum))
}

// conjunctiveProbability: P = slip_floor + (1-slip)·Πᵢ Pᵢ.
func conjunctiveProbability(comps []ComponentParam) float64 {
	product := 1.0
	for _, c := range comps {
		product *= irt.Probability(irt.Model2PL, c.Theta, c.IRT)
	}
	return defaultSlip + (1-defaultSlip)*product
}

// disjunctiveProbability: P = guess + (1-slip-guess)·(1-Πᵢ(1-Pᵢ)).
func disjunctiveProbability(comps []ComponentParam) float64 {
	complement := 1.0
	for _, c := range comps {
		complement *= 1 - irt.Probability(irt.Model2PL, c.Theta, c.IRT)
	}
	return defaultGuess + (1-defaultSlip-defaultGuess)*(1-complement)
}
