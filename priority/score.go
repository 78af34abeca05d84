package priority

import (
	"time"

	"github.com/kairoslang/lexcore/core"
	"github.com/kairoslang/lexcore/transfer"
	"github.com/kairoslang/lexcore/xmath"
)

// SBase is the weighted linear combination of an item's seven z-components,
// §4.4.
func SBase(z core.ZVector, w core.PriorityWeights) float64 {
	return z.Frequency*w.Frequency +
		z.Relational*w.Relational +
		z.Domain*w.Domain +
		z.Morphological*w.Morphological +
		z.Phonological*w.Phonological +
		z.Syntactic*w.Syntactic +
		z.Pragmatic*w.Pragmatic
}

// MasteryFactor computes g(m), the inverted-U mastery factor, §4.4. m is
// derived by the caller as (stage/4 + cueFreeAccuracy)/2; gap is the
// record's scaffolding gap.
func MasteryFactor(m, gap float64) float64 {
	var g float64
	switch {
	case m < 0.2:
		g = 0.5
	case m <= 0.45:
		g = xmath.Ramp(m, 0.2, 0.5, 0.45, 1.0)
	case m <= 0.7:
		g = xmath.Ramp(m, 0.45, 1.0, 0.7, 0.8)
	case m <= 0.9:
		g = xmath.Ramp(m, 0.7, 0.8, 0.9, 0.3)
	default:
		g = 0.3
	}
	return g * (1 + gap*0.5)
}

// MasteryInput derives m = (stage/4 + cueFreeAccuracy)/2 from a mastery
// snapshot.
func MasteryInput(stage int, cueFreeAccuracy float64) float64 {
	return (float64(stage)/4 + cueFreeAccuracy) / 2
}

// TransferAdjustment computes T(w) = -(gain-0.5)*0.25 from an item's
// transfer gain, §4.4. Positive transfer (gain>0.5) lowers priority;
// interference (gain<0.5) raises it.
func TransferAdjustment(gain float64) float64 {
	return -(gain - 0.5) * 0.25
}

// TransferAdjustmentFor is a convenience wrapper computing T(w) directly
// from (L1, L2, component) via the transfer package's gain table.
func TransferAdjustmentFor(l1, l2 transfer.Family, comp core.Component) float64 {
	return TransferAdjustment(transfer.GainFor(l1, l2, comp))
}

// Urgency computes the raw U(w) term (before the urgency weight
// multiplier) from the next-review timestamp, §4.4:
//
//	no last review (nil)      -> 1.5
//	not yet due                -> 0
//	due today                  -> 1
//	overdue by d days          -> min(1 + d/7, 3)
func Urgency(nextReview *time.Time, now time.Time) float64 {
	if nextReview == nil {
		return 1.5
	}
	due := *nextReview
	sameDay := due.Year() == now.Year() && due.YearDay() == now.YearDay()
	if sameDay {
		return 1
	}
	if now.Before(due) {
		return 0
	}
	daysOverdue := now.Sub(due).Hours() / 24
	return xmath.Clamp(1+daysOverdue/7, 0, 3)
}

// BottleneckBoost returns B(w): 0.10 if comp is the currently flagged
// bottleneck component, else 0, §4.4.
func BottleneckBoost(comp core.Component, bottleneck core.Component, hasBottleneck bool) float64 {
	if hasBottleneck && comp == bottleneck {
		return 0.10
	}
	return 0
}

// Inputs bundles everything EffectivePriority needs for one item.
type Inputs struct {
	Z              core.ZVector
	Component      core.Component
	Weights        core.PriorityWeights
	MasteryStage   int
	CueFreeAcc     float64
	ScaffoldingGap float64
	TransferGain   float64
	NextReview     *time.Time
	Now            time.Time
	Bottleneck     core.Component
	HasBottleneck  bool
}

// EffectivePriority computes S_eff(w), §4.4, combining every term above and
// clamping the result to [0,1].
func EffectivePriority(in Inputs) float64 {
	sBase := SBase(in.Z, in.Weights)
	m := MasteryInput(in.MasteryStage, in.CueFreeAcc)
	g := MasteryFactor(m, in.ScaffoldingGap)
	tAdj := TransferAdjustment(in.TransferGain)
	u := Urgency(in.NextReview, in.Now) * in.Weights.Urgency
	b := BottleneckBoost(in.Component, in.Bottleneck, in.HasBottleneck)

	raw := sBase*g*(1+tAdj) + u + b
	return xmath.Clamp(raw, 0, 1)
}

// Cost computes the bandwidth-planning cost term, §4.4:
//
//	baseDifficulty = (b - (-3))/6
//	exposureNeed   = max(0, itemDifficulty - theta)/4
//	Cost           = clamp(baseDifficulty - transferGain + exposureNeed, 0.1, +Inf)
func Cost(b, transferGain, itemDifficulty, theta float64) float64 {
	baseDifficulty := (b + 3) / 6
	exposureNeed := 0.0
	if d := itemDifficulty - theta; d > 0 {
		exposureNeed = d / 4
	}
	raw := baseDifficulty - transferGain + exposureNeed
	if raw < 0.1 {
		return 0.1
	}
	return raw
}
