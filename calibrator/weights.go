package calibrator

import "github.com/kairoslang/lexcore/core"

// primaryFactor/secondaryFactor are the §4.6 weight-allocation multipliers.
const (
	primaryFactor   = 1.0
	secondaryFactor = 0.5
	minPrimarySum   = 0.5
)

// ItemTarget pairs one of a task's target items with the component it
// belongs to (resolved by the caller via the catalog) and its primary/
// secondary flag from the TaskSpec's Q-matrix weights.
type ItemTarget struct {
	Item      core.ItemID
	Component core.Component
	Primary   bool
}

// TargetWeight is one target item's allocated weight within a task.
type TargetWeight struct {
	Item      core.ItemID
	Component core.Component
	Weight    float64
	Primary   bool
}

// AllocateWeights distributes the Q-matrix row for tt across the task's
// actual target items, §4.6: each target's share is its component's
// Q-matrix row entry times 1.0 (primary) or 0.5 (secondary), then
// renormalized to sum to 1. If the primary weights' share falls below 0.5,
// primaries are scaled up until the constraint holds (secondaries scaled
// down correspondingly).
func AllocateWeights(tt core.TaskType, targets []ItemTarget) ([]TargetWeight, error) {
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}
	row := QMatrixRow(tt)

	raw := make([]TargetWeight, len(targets))
	var total float64
	for i, t := range targets {
		factor := secondaryFactor
		if t.Primary {
			factor = primaryFactor
		}
		w := row.Get(t.Component) * factor
		raw[i] = TargetWeight{Item: t.Item, Component: t.Component, Weight: w, Primary: t.Primary}
		total += w
	}
	if total <= 0 {
		// Degenerate Q-matrix row (all zero for these targets): fall back
		// to an equal split so downstream renormalization stays well-formed.
		equal := 1.0 / float64(len(raw))
		for i := range raw {
			raw[i].Weight = equal
		}
		total = 1.0
	}
	for i := range raw {
		raw[i].Weight /= total
	}

	var primarySum float64
	for _, w := range raw {
		if w.Primary {
			primarySum += w.Weight
		}
	}
	if primarySum > 0 && primarySum < minPrimarySum {
		rescalePrimaries(raw, primarySum)
	}
	return raw, nil
}

// rescalePrimaries scales primary weights up to minPrimarySum total share
// and secondaries down to absorb the difference, preserving Σweight = 1.
func rescalePrimaries(raw []TargetWeight, primarySum float64) {
	secondarySum := 1 - primarySum
	targetPrimary := minPrimarySum
	targetSecondary := 1 - targetPrimary

	primaryScale := 1.0
	if primarySum > 0 {
		primaryScale = targetPrimary / primarySum
	}
	secondaryScale := 1.0
	if secondarySum > 0 {
		secondaryScale = targetSecondary / secondarySum
	}
	for i := range raw {
		if raw[i].Primary {
			raw[i].Weight *= primaryScale
		} else {
			raw[i].Weight *= secondaryScale
		}
	}
}

// processMultiplier returns the §4.6 cognitive-process multiplier used by
// CompositeDifficulty.
func processMultiplier(p core.CognitiveProcess) float64 {
	switch p {
	case core.ProcessRecall:
		return 1.0
	case core.ProcessTransformation:
		return 1.2
	case core.ProcessSynthesis:
		return 1.4
	default:
		return 1.0
	}
}

// CompositeDifficulty computes b_comp = clamp(Σ wᵢ·bᵢ·multiplier(process), -3, 3), §4.6.
// difficulties maps each target item to its IRT b parameter.
func CompositeDifficulty(weights []TargetWeight, difficulties map[core.ItemID]float64, process core.CognitiveProcess) float64 {
	mult := processMultiplier(process)
	var sum float64
	for _, w := range weights {
		sum += w.Weight * difficulties[w.Item] * mult
	}
	if sum < -3 {
		return -3
	}
	if sum > 3 {
		return 3
	}
	return sum
}
