package calibrator

import "github.com/kairoslang/lexcore/core"

// Evaluation is the engine-facing result of evaluating a multi-component
// task response, §6 (`evaluate(task, user_response) -> ComponentEvaluations`).
type Evaluation struct {
	Model        Model
	Probability  float64
	PerTarget    map[core.ItemID]TargetEvaluation
	GlobalDelta  float64
}
