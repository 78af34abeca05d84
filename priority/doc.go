// Package priority implements the effective-priority engine, §4.4:
//
//	S_eff(w) = clamp(S_base(w) · g(m) · (1 + T(w)) + U(w) + B(w), 0, 1)
//
// S_base is a weighted linear combination of an item's seven z-components,
// with weights that shift by inferred learner level (beginner/intermediate/
// advanced, split at θ = ±1). g(m) is an inverted-U mastery factor scaled
// by the scaffolding gap. T(w) comes from the transfer package's L1→L2
// gain lookup. U(w) is urgency derived from the next-review date. B(w) is
// a flat boost when the item's component matches the learner's currently
// flagged bottleneck.
//
// Grounded on the dijkstra package's functional-option configuration idiom
// (Options/Option/WithX, DefaultOptions) and on DriveMaster's
// unified_scoring.go for the general shape of a multi-term
// weighted-combination score (urgency + base + adjustment terms summed
// then clamped) — trimmed here to the seven fixed §4.4 terms rather than a
// pluggable strategy registry, since §4.4 pins the formula exactly.
package priority
