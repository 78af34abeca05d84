package irt

import (
	"github.com/kairoslang/lexcore/core"
	"github.com/kairoslang/lexcore/xmath"
)

// Model selects which IRT probability model an operation should apply.
type Model int

const (
	// Model1PL (Rasch) ignores A and C: P = σ(θ-b).
	Model1PL Model = iota
	// Model2PL ignores C: P = σ(a(θ-b)).
	Model2PL
	// Model3PL uses the full (a,b,c) parameterization.
	Model3PL
)

// Probability evaluates P(correct | θ, params) under model. 1PL and 2PL
// reductions are computed directly rather than by zeroing fields, so callers
// get the exact documented formulas from §4.1 rather than a 3PL with c=0
// (which is mathematically identical but this keeps each branch legible and
// independently testable).
func Probability(model Model, theta float64, p core.IRTParams) float64 {
	switch model {
	case Model1PL:
		return xmath.Sigmoid(theta - p.B)
	case Model2PL:
		return xmath.Sigmoid(p.A * (theta - p.B))
	default: // Model3PL
		return p.C + (1-p.C)*xmath.Sigmoid(p.A*(theta-p.B))
	}
}

// Information computes Fisher information I(θ; a,b,c) for a single item,
// §4.1:
//
//	I(θ) = a² (P-c)² (1-P) / ((1-c)² P)
//
// For 2PL (c=0) this reduces to a²·P·(1-P), computed directly to avoid a
// division by (1-c)²=1 that would otherwise be a no-op but obscures intent.
// Information is always >= 0 and is symmetric around b for fixed a (an
// immediate consequence of the sigmoid's symmetry around 0).
func Information(model Model, theta float64, p core.IRTParams) float64 {
	P := Probability(model, theta, p)
	if model != Model3PL || p.C == 0 {
		a := p.A
		if model == Model1PL {
			a = 1
		}
		return a * a * P * (1 - P)
	}
	num := p.A * p.A * (P - p.C) * (P - p.C) * (1 - P)
	den := (1 - p.C) * (1 - p.C) * P
	if den <= 0 {
		return 0
	}
	return num / den
}

// ScaleToDifficulty maps an internal priority value in [0,1] to an IRT
// difficulty b via the published linear translation, §4.1: b = 6·priority-3.
func ScaleToDifficulty(priority float64) float64 {
	return 6*xmath.Clamp(priority, 0, 1) - 3
}
