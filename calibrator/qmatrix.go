package calibrator

import "github.com/kairoslang/lexcore/core"

// qMatrix gives, per task type, a baseline weight per component — read-only
// after init per §5's "shared resources" contract. Rows needn't sum to 1;
// AllocateWeights renormalizes after restricting to a task's actual
// targets.
var qMatrix = map[core.TaskType]core.ComponentSet[float64]{
	core.Recognition:           componentSet(0.1, 0.2, 0.6, 0.1, 0.0),
	core.DefinitionMatch:       componentSet(0.05, 0.15, 0.7, 0.1, 0.0),
	core.RecallCued:            componentSet(0.1, 0.2, 0.6, 0.1, 0.0),
	core.FillBlank:             componentSet(0.05, 0.3, 0.45, 0.2, 0.0),
	core.RecallFree:            componentSet(0.1, 0.2, 0.5, 0.2, 0.0),
	core.Collocation:           componentSet(0.05, 0.15, 0.5, 0.3, 0.0),
	core.WordFormation:         componentSet(0.05, 0.6, 0.2, 0.15, 0.0),
	core.Production:            componentSet(0.1, 0.2, 0.3, 0.2, 0.2),
	core.SentenceWriting:       componentSet(0.05, 0.15, 0.25, 0.35, 0.2),
	core.ErrorCorrection:       componentSet(0.05, 0.25, 0.2, 0.4, 0.1),
	core.Translation:           componentSet(0.1, 0.15, 0.35, 0.25, 0.15),
	core.Timed:                 componentSet(0.15, 0.2, 0.45, 0.2, 0.0),
	core.RegisterShift:         componentSet(0.05, 0.1, 0.2, 0.15, 0.5),
	core.RapidResponse:         componentSet(0.2, 0.15, 0.55, 0.1, 0.0),
	core.ReadingComprehension:  componentSet(0.05, 0.15, 0.3, 0.3, 0.2),
	core.ListeningComprehension: componentSet(0.5, 0.1, 0.2, 0.1, 0.1),
}

func componentSet(phon, morph, lex, synt, prag float64) core.ComponentSet[float64] {
	var cs core.ComponentSet[float64]
	cs = cs.Set(core.Phon, phon)
	cs = cs.Set(core.Morph, morph)
	cs = cs.Set(core.Lex, lex)
	cs = cs.Set(core.Synt, synt)
	cs = cs.Set(core.Prag, prag)
	return cs
}

// QMatrixRow returns the baseline component weights for a task type,
// falling back to a uniform row if the type is unrecognized.
func QMatrixRow(tt core.TaskType) core.ComponentSet[float64] {
	if row, ok := qMatrix[tt]; ok {
		return row
	}
	return componentSet(0.2, 0.2, 0.2, 0.2, 0.2)
}
