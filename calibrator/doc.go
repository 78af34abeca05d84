// Package calibrator implements multi-component item calibration, §4.6:
// Q-matrix-driven weight allocation across a task's targeted components,
// composite-difficulty computation, three MIRT probability models
// (compensatory, conjunctive, disjunctive), per-target response evaluation
// with error-kind classification, and the bounded θ update rule.
//
// The Q-matrix and MIRT-model dispatch are grounded on the prim_kruskal
// package's Method-string dispatch idiom (MSTOptions.Method selecting Prim
// vs Kruskal) — generalized here to a three-way model dispatch keyed by
// core.TaskType. The edit-distance error classifier is grounded on the dtw
// package's dynamic-programming alignment table, repurposed from Euclidean
// sequence alignment to Levenshtein string alignment.
package calibrator
