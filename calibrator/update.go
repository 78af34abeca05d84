package calibrator

import (
	"math"

	"github.com/kairoslang/lexcore/core"
)

// DefaultLearningRate is used when a caller doesn't override it via
// ThetaUpdateInputs.LearningRate.
const DefaultLearningRate = 0.1

// boundaryDecay computes 1 - (|theta|/4)^2, §4.6, so updates shrink near
// the ±4 scale edges.
func boundaryDecay(theta float64) float64 {
	ratio := math.Abs(theta) / 4
	decay := 1 - ratio*ratio
	if decay < 0 {
		return 0
	}
	return decay
}

// ThetaUpdateInputs bundles one component's observation for ComponentDelta.
type ThetaUpdateInputs struct {
	Theta            float64
	Observed         float64 // 1.0 correct, 0.0 incorrect, or partial credit in [0,1]
	ExpectedP        float64
	Discrimination   float64
	DifficultyFactor float64
	LearningRate     float64
}

// ComponentDelta computes one component's Δθ, §4.6:
//
//	Δθ = learning_rate · (observed - expected_P) · discrimination · difficulty_factor · boundary_decay(θ)
//
// clamped to ±0.5.
func ComponentDelta(in ThetaUpdateInputs) float64 {
	lr := in.LearningRate
	if lr == 0 {
		lr = DefaultLearningRate
	}
	delta := lr * (in.Observed - in.ExpectedP) * in.Discrimination * in.DifficultyFactor * boundaryDecay(in.Theta)
	if delta > 0.5 {
		return 0.5
	}
	if delta < -0.5 {
		return -0.5
	}
	return delta
}

// ComponentDeltaSet bundles a component's computed delta with its task
// weight, for GlobalDelta's weighted mean.
type ComponentDeltaSet struct {
	Component core.Component
	Delta     float64
	Weight    float64
}

// GlobalDelta computes the weighted-mean global Δθ across component
// deltas, §4.6 ("Global θ = weighted mean of component Δθs").
func GlobalDelta(deltas []ComponentDeltaSet) float64 {
	var weightedSum, totalWeight float64
	for _, d := range deltas {
		weightedSum += d.Delta * d.Weight
		totalWeight += d.Weight
	}
	if totalWeight == 0 {
		return 0
	}
	return weightedSum / totalWeight
}
