package taskselector

import "github.com/kairoslang/lexcore/core"

// stageTable lists the task types unlocked at each stage. Each stage's set
// is cumulative with the stage below it, §4.5.
var stageTable = map[int][]core.TaskType{
	0: {core.Recognition, core.DefinitionMatch},
	1: {core.RecallCued, core.FillBlank},
	2: {core.RecallFree, core.Collocation, core.WordFormation},
	3: {core.Production, core.SentenceWriting, core.ErrorCorrection, core.Translation, core.Timed},
	4: {core.RegisterShift, core.RapidResponse, core.ReadingComprehension, core.ListeningComprehension},
}

// AllowedTypes returns every task type unlocked at or below stage, §4.5's
// stage-gating table. Stages outside [0,4] clamp to the nearest bound.
func AllowedTypes(stage int) []core.TaskType {
	if stage < 0 {
		stage = 0
	}
	if stage > 4 {
		stage = 4
	}
	var allowed []core.TaskType
	for s := 0; s <= stage; s++ {
		allowed = append(allowed, stageTable[s]...)
	}
	return allowed
}

// IsAllowed reports whether tt is unlocked at stage.
func IsAllowed(tt core.TaskType, stage int) bool {
	for _, c := range AllowedTypes(stage) {
		if c == tt {
			return true
		}
	}
	return false
}
