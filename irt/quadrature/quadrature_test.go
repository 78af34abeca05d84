package quadrature_test

import (
	"math"
	"testing"

	"github.com/kairoslang/lexcore/core"
	"github.com/kairoslang/lexcore/irt/quadrature"
)

func TestNodes_UnsupportedCount(t *testing.T) {
	if _, err := quadrature.Nodes(7); err != quadrature.ErrUnsupportedNodeCount {
		t.Fatalf("expected ErrUnsupportedNodeCount, got %v", err)
	}
}

func TestNodes_SymmetricAndWeightsSumToSqrtPi(t *testing.T) {
	for _, n := range quadrature.SupportedNodeCounts {
		nodes, err := quadrature.Nodes(n)
		if err != nil {
			t.Fatalf("Nodes(%d): %v", n, err)
		}
		if len(nodes) != n {
			t.Fatalf("expected %d nodes, got %d", n, len(nodes))
		}
		var sumW float64
		for _, nd := range nodes {
			sumW += nd.W
		}
		if math.Abs(sumW-math.Sqrt(math.Pi)) > 1e-6 {
			t.Fatalf("n=%d: expected weights to sum to sqrt(pi)=%v, got %v", n, math.Sqrt(math.Pi), sumW)
		}
		for _, nd := range nodes {
			mirrored := false
			for _, other := range nodes {
				if math.Abs(nd.X+other.X) < 1e-9 && math.Abs(nd.W-other.W) < 1e-9 {
					mirrored = true
					break
				}
			}
			if !mirrored {
				t.Fatalf("n=%d: node %v has no mirror node at %v with equal weight", n, nd.X, -nd.X)
			}
		}
	}
}

func TestEstimateEAP_ExtremePattern(t *testing.T) {
	// Scenario 3 from §8: 5 items all b=0, responses all correct.
	items := make([]core.IRTParams, 5)
	correct := make([]bool, 5)
	for i := range items {
		items[i] = core.IRTParams{A: 1, B: 0, C: 0}
		correct[i] = true
	}
	prob := func(theta float64, p core.IRTParams) float64 {
		return 1 / (1 + math.Exp(-(theta - p.B)))
	}
	lik := quadrature.BinaryLikelihood(prob, items, correct)

	result, err := quadrature.EstimateEAP(0, 1, 21, lik)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.IsNaN(result.Mean) || math.IsInf(result.Mean, 0) {
		t.Fatalf("expected finite mean, got %v", result.Mean)
	}
	if result.Mean <= 0.5 || result.Mean >= 2.5 {
		t.Fatalf("expected 0.5 < mean < 2.5, got %v", result.Mean)
	}
	if result.SD >= 1 {
		t.Fatalf("expected sd < 1, got %v", result.SD)
	}
}

func TestEstimateEAP_ZeroLikelihoodFallsBackToPrior(t *testing.T) {
	lik := func(theta float64) float64 { return 0 }
	result, err := quadrature.EstimateEAP(0.25, 1.5, 11, lik)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Mean != 0.25 || result.SD != 1.5 {
		t.Fatalf("expected fallback to prior (0.25, 1.5), got %+v", result)
	}
}
