package priority

import "github.com/kairoslang/lexcore/core"

// Level is the inferred proficiency tier used to shift S_base weights,
// §4.4 ("Weights vary by inferred level... using θ thresholds at ±1").
type Level int

const (
	Beginner Level = iota
	Intermediate
	Advanced
)

// InferLevel buckets a global θ at the ±1 thresholds fixed by §4.4.
func InferLevel(theta float64) Level {
	switch {
	case theta < -1:
		return Beginner
	case theta > 1:
		return Advanced
	default:
		return Intermediate
	}
}

// WeightsForLevel adjusts the published default weights by inferred level.
// §4.4 fixes the θ=±1 split points but not the exact per-level weight
// shift, so this package decides: beginners lean on frequency/domain
// relevance (the most learnable, highest-exposure-value signals early on),
// advanced learners lean on morphological/syntactic/pragmatic signals (the
// harder-to-acquire structural layers), intermediate uses the published
// default unchanged. Each level's weights still sum to the same total as
// the input so U(w)/B(w) headroom is preserved.
func WeightsForLevel(base core.PriorityWeights, level Level) core.PriorityWeights {
	switch level {
	case Beginner:
		w := base
		shift := 0.04
		w.Frequency += shift
		w.Domain += shift
		w.Morphological -= shift / 2
		w.Syntactic -= shift / 2
		w.Pragmatic -= shift
		return w
	case Advanced:
		w := base
		shift := 0.04
		w.Morphological += shift / 2
		w.Syntactic += shift / 2
		w.Pragmatic += shift
		w.Frequency -= shift
		w.Domain -= shift
		return w
	default:
		return base
	}
}
