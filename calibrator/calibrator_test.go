package calibrator_test

import (
	"testing"

	"github.com/kairoslang/lexcore/calibrator"
	"github.com/kairoslang/lexcore/core"
	"github.com/stretchr/testify/require"
)

func TestAllocateWeights_RenormalizesAndRescalesPrimaries(t *testing.T) {
	targets := []calibrator.ItemTarget{
		{Item: "item-lex", Component: core.Lex, Primary: true},
		{Item: "item-morph", Component: core.Morph, Primary: false},
	}
	weights, err := calibrator.AllocateWeights(core.WordFormation, targets)
	require.NoError(t, err)

	var total, primarySum float64
	for _, w := range weights {
		total += w.Weight
		if w.Primary {
			primarySum += w.Weight
		}
	}
	require.InDelta(t, 1, total, 1e-9, "expected weights to sum to 1")
	require.GreaterOrEqual(t, primarySum, 0.5-1e-9, "expected primary share >= 0.5 after rescale")
}

func TestAllocateWeights_EmptyTargets(t *testing.T) {
	_, err := calibrator.AllocateWeights(core.Recognition, nil)
	require.ErrorIs(t, err, calibrator.ErrNoTargets)
}

func TestCompositeDifficulty_ClampedAndScaledByProcess(t *testing.T) {
	weights := []calibrator.TargetWeight{{Item: "item-lex", Component: core.Lex, Weight: 1}}
	diffs := map[core.ItemID]float64{"item-lex": 3}
	got := calibrator.CompositeDifficulty(weights, diffs, core.ProcessSynthesis)
	require.Equal(t, 3.0, got, "expected clamp to 3")
}

func TestModelForTaskType_Dispatch(t *testing.T) {
	require.Equal(t, calibrator.ModelConjunctive, calibrator.ModelForTaskType(core.Translation))
	require.Equal(t, calibrator.ModelDisjunctive, calibrator.ModelForTaskType(core.Recognition))
	require.Equal(t, calibrator.ModelCompensatory, calibrator.ModelForTaskType(core.Production))
}

func TestProbability_CompensatoryBounds(t *testing.T) {
	comps := []calibrator.ComponentParam{
		{Component: core.Lex, Theta: 1, IRT: core.IRTParams{A: 1, B: 0}, Weight: 0.6},
		{Component: core.Morph, Theta: -1, IRT: core.IRTParams{A: 1, B: 0}, Weight: 0.4},
	}
	p := calibrator.Probability(calibrator.ModelCompensatory, comps)
	require.GreaterOrEqual(t, p, 0.0)
	require.LessOrEqual(t, p, 1.0)
}

func TestEvaluateTarget_ExactAndPartial(t *testing.T) {
	exact := calibrator.EvaluateTarget("hola", "Hola")
	require.True(t, exact.Correct)
	require.Equal(t, 1.0, exact.PartialCredit, "expected exact normalized match to score 1")

	partial := calibrator.EvaluateTarget("hablar", "hablarx")
	require.Greater(t, partial.PartialCredit, 0.0)
	require.Less(t, partial.PartialCredit, 1.0)
}

func TestMorphDistance_OmissionAndForm(t *testing.T) {
	_, kind := calibrator.MorphDistance("hablando", "habl")
	require.Equal(t, calibrator.KindOmission, kind, "expected omission when response is a substring of expected")

	_, kind = calibrator.MorphDistance("walked", "walks")
	require.Equal(t, calibrator.KindForm, kind, "expected form mismatch for a shared-stem suffix variant")
}

func TestErrorKindResult_AsCoreErrorKind(t *testing.T) {
	cases := map[calibrator.ErrorKindResult]core.ErrorKind{
		calibrator.KindNone:         core.ErrorNone,
		calibrator.KindOmission:     core.ErrorOmission,
		calibrator.KindSubstitution: core.ErrorSubstitution,
		calibrator.KindForm:         core.ErrorForm,
		calibrator.KindOther:        core.ErrorOther,
	}
	for kind, want := range cases {
		require.Equal(t, want, kind.AsCoreErrorKind())
	}

	exact := calibrator.EvaluateTarget("hola", "Hola")
	require.Equal(t, core.ErrorNone, exact.CoreKind, "expected CoreKind ErrorNone for an exact match")
}

func TestEvaluatePragmaticTarget_RegisterCompatibility(t *testing.T) {
	exact := calibrator.EvaluatePragmaticTarget("formal", "formal")
	require.True(t, exact.Correct)
	require.Equal(t, 1.0, exact.PartialCredit)
	require.Equal(t, calibrator.KindNone, exact.Kind)

	nearMiss := calibrator.EvaluatePragmaticTarget("formal", "neutral")
	require.False(t, nearMiss.Correct)
	require.Equal(t, calibrator.KindForm, nearMiss.Kind, "expected formal-vs-neutral to be a tolerated near-miss classified as form")

	mismatch := calibrator.EvaluatePragmaticTarget("formal", "informal")
	require.Equal(t, calibrator.KindOther, mismatch.Kind, "expected formal-vs-informal to classify as other")
	require.Less(t, mismatch.PartialCredit, 0.5)
}

func TestComponentDelta_ClampedAndShrinksNearEdges(t *testing.T) {
	center := calibrator.ComponentDelta(calibrator.ThetaUpdateInputs{
		Theta: 0, Observed: 1, ExpectedP: 0, Discrimination: 5, DifficultyFactor: 5, LearningRate: 1,
	})
	require.InDelta(t, 0, center, 0.5+1e-9, "expected delta clamped to +-0.5")

	edge := calibrator.ComponentDelta(calibrator.ThetaUpdateInputs{
		Theta: 4, Observed: 1, ExpectedP: 0, Discrimination: 1, DifficultyFactor: 1, LearningRate: 1,
	})
	require.Equal(t, 0.0, edge, "expected boundary decay to zero out delta at |theta|=4")
}

func TestGlobalDelta_WeightedMean(t *testing.T) {
	deltas := []calibrator.ComponentDeltaSet{
		{Component: core.Lex, Delta: 1, Weight: 1},
		{Component: core.Morph, Delta: -1, Weight: 1},
	}
	require.Equal(t, 0.0, calibrator.GlobalDelta(deltas), "expected equal-weighted opposite deltas to cancel")
}
