// Package engine is the composing facade over the adaptive
// language-learning core, §2/§6. It owns no algorithm of its own: every
// operation here delegates to the leaf/mid packages (irt, fsrs, mastery,
// priority, taskselector, calibrator, bottleneck, transfer).
// ApplyResponse runs evaluate, then FSRS, then θ update, then stage
// recompute; it keeps no response log, so bottleneck analysis runs only
// when the caller passes recent responses to AnalyzeBottleneck — the
// same role a unifying graph package plays over
// dijkstra/bfs/prim_kruskal/builder behind one import path.
//
// Engine holds the catalog store from package core (mastery records are
// the caller's to manage and are passed in by value) plus the last
// bottleneck report, which feeds BuildQueue's B(w) boost per §4.4/§4.7.
// It takes no global clock: every time-sensitive operation accepts an
// explicit now, §5.
package engine
