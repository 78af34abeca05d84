package irt_test

import (
	"math"
	"testing"

	"github.com/kairoslang/lexcore/core"
	"github.com/kairoslang/lexcore/irt"
)

func TestProbability_Bounds(t *testing.T) {
	p := core.IRTParams{A: 1.5, B: 0.5, C: 0.2}
	for _, model := range []irt.Model{irt.Model1PL, irt.Model2PL, irt.Model3PL} {
		for theta := -4.0; theta <= 4.0; theta += 0.5 {
			prob := irt.Probability(model, theta, p)
			if prob < 0 || prob > 1 {
				t.Fatalf("model %v theta %v: probability out of bounds: %v", model, theta, prob)
			}
		}
	}
}

func TestProbability_AtThetaEqualsB_1PL_2PL(t *testing.T) {
	p := core.IRTParams{A: 1, B: 1, C: 0}
	if got := irt.Probability(irt.Model1PL, 1, p); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("expected 0.5 at theta=b for 1PL, got %v", got)
	}
	if got := irt.Probability(irt.Model2PL, 1, p); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("expected 0.5 at theta=b for 2PL, got %v", got)
	}
}

func TestProbability_3PL_AsymptoteAtC(t *testing.T) {
	p := core.IRTParams{A: 1, B: 0, C: 0.25}
	got := irt.Probability(irt.Model3PL, -20, p)
	if math.Abs(got-0.25) > 1e-6 {
		t.Fatalf("expected 3PL to asymptote at c=0.25 for theta -> -inf, got %v", got)
	}
}

func TestInformation_NonNegativeAndSymmetricAroundB(t *testing.T) {
	p := core.IRTParams{A: 1.2, B: 0.3, C: 0}
	for theta := -4.0; theta <= 4.0; theta += 0.25 {
		if irt.Information(irt.Model2PL, theta, p) < 0 {
			t.Fatalf("information negative at theta=%v", theta)
		}
	}
	left := irt.Information(irt.Model2PL, p.B-1, p)
	right := irt.Information(irt.Model2PL, p.B+1, p)
	if math.Abs(left-right) > 1e-9 {
		t.Fatalf("expected information symmetric around b: left=%v right=%v", left, right)
	}
}

func TestScaleToDifficulty(t *testing.T) {
	if got := irt.ScaleToDifficulty(0.5); math.Abs(got) > 1e-9 {
		t.Fatalf("expected priority 0.5 -> b=0, got %v", got)
	}
	if got := irt.ScaleToDifficulty(0); got != -3 {
		t.Fatalf("expected priority 0 -> b=-3, got %v", got)
	}
	if got := irt.ScaleToDifficulty(1); got != 3 {
		t.Fatalf("expected priority 1 -> b=3, got %v", got)
	}
}

func TestEstimateMLE_NewCardCorrectResponse(t *testing.T) {
	// Scenario 1 from §8: a=1, b=0, theta=0, one correct response.
	resp := []irt.ItemResponse{{Params: core.IRTParams{A: 1, B: 0, C: 0}, Correct: true}}
	result := irt.EstimateTheta(irt.Model2PL, 0, resp, 21)
	if result.Theta <= 0 {
		t.Fatalf("expected theta to increase after a correct response, got %v", result.Theta)
	}
	if result.SE <= 0 {
		t.Fatalf("expected strictly positive SE, got %v", result.SE)
	}
}

func TestEstimateMLE_ClampsToRange(t *testing.T) {
	var resp []irt.ItemResponse
	for i := 0; i < 20; i++ {
		resp = append(resp, irt.ItemResponse{Params: core.IRTParams{A: 2, B: -3, C: 0}, Correct: true})
	}
	result := irt.EstimateTheta(irt.Model2PL, 0, resp, 21)
	if result.Theta < -4 || result.Theta > 4 {
		t.Fatalf("expected theta clamped to [-4,4], got %v", result.Theta)
	}
}

// §8 scenario 3: EAP on an extreme response pattern that drives MLE
// non-convergent.
func TestEstimateTheta_FallsBackToEAPOnExtremePattern(t *testing.T) {
	var resp []irt.ItemResponse
	for i := 0; i < 5; i++ {
		resp = append(resp, irt.ItemResponse{Params: core.IRTParams{A: 1, B: 0, C: 0}, Correct: true})
	}
	result := irt.EstimateTheta(irt.Model2PL, 0, resp, 21)
	if result.Converged {
		t.Fatalf("expected an all-correct pattern to exhaust Newton-Raphson without converging")
	}
	if result.Theta <= 0.5 || result.Theta >= 2.5 {
		t.Fatalf("expected 0.5 < theta < 2.5 from the EAP fallback, got %v", result.Theta)
	}
	if result.SE <= 0 || result.SE >= 1 {
		t.Fatalf("expected 0 < sd < 1 from the EAP fallback, got %v", result.SE)
	}
}

func TestNextItem_MaxInformationExcludesUsed(t *testing.T) {
	items := []core.LearnableItem{
		{ID: "easy", IRT: core.IRTParams{A: 1, B: -2, C: 0}},
		{ID: "match", IRT: core.IRTParams{A: 1, B: 0, C: 0}},
		{ID: "hard", IRT: core.IRTParams{A: 1, B: 2, C: 0}},
	}
	got, err := irt.NextItem(0, 1, items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "match" {
		t.Fatalf("expected max-information item at theta=b, got %v", got.ID)
	}

	_, err = irt.NextItem(0, 1, items, irt.WithUsed(map[core.ItemID]bool{"easy": true, "match": true, "hard": true}))
	if err != irt.ErrEmptyCandidateSet {
		t.Fatalf("expected ErrEmptyCandidateSet, got %v", err)
	}
}

func TestNextItem_EmptyCandidates(t *testing.T) {
	_, err := irt.NextItem(0, 1, nil)
	if err != irt.ErrEmptyCandidateSet {
		t.Fatalf("expected ErrEmptyCandidateSet, got %v", err)
	}
}
