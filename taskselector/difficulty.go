package taskselector

import "github.com/kairoslang/lexcore/core"

// TargetLayer is the linguistic layer a task presents at, used by the
// contextual-difficulty adjustment, §4.5.
type TargetLayer int

const (
	LayerAlphabetic TargetLayer = iota
	LayerSyllable
	LayerWord
)

// ContextualDifficultyInputs bundles the additive adjustment terms from
// §4.5's b_eff formula.
type ContextualDifficultyInputs struct {
	Modality       core.Modality
	TaskType       core.TaskType
	Timed          bool
	Layer          TargetLayer
	L1Interference float64 // caller-supplied adjustment for known interference patterns
}

func modalityAdjustment(m core.Modality) float64 {
	switch m {
	case core.ModalityAuditory:
		return 0.1
	case core.ModalityMixed:
		// Mixed modality combines speaking/writing-like demands; §4.5 gives
		// explicit constants for reading/listening/speaking/writing but not
		// "mixed" directly. Mixed presentations route through both visual
		// and auditory channels, so this package averages the speaking and
		// writing adjustments (0.3, 0.2) rather than inventing a new
		// unlisted constant.
		return 0.25
	default:
		return 0
	}
}

func taskTypeAdjustment(tt core.TaskType) float64 {
	switch tt {
	case core.Recognition:
		return -0.2
	case core.Production:
		return 0.3
	default:
		return 0
	}
}

func layerAdjustment(l TargetLayer) float64 {
	switch l {
	case LayerAlphabetic:
		return -0.5
	case LayerWord:
		return 0.3
	default:
		return 0
	}
}

// ContextualDifficulty computes b_eff = b + adjustments, §4.5.
func ContextualDifficulty(b float64, in ContextualDifficultyInputs) float64 {
	adj := modalityAdjustment(in.Modality) + taskTypeAdjustment(in.TaskType) + layerAdjustment(in.Layer) + in.L1Interference
	if in.Timed {
		adj += 0.15
	}
	return b + adj
}
