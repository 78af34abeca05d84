// Package mastery implements the 5-stage progression state machine, §4.3.
//
// Stage thresholds are monotone in (cue-assisted accuracy, cue-free
// accuracy, FSRS stability days, scaffolding gap); stage recomputation from
// a given MasteryRecord snapshot is a pure, idempotent function. A
// transition only takes effect once the threshold condition for the target
// stage holds AND a matching consecutive-correct (to advance) or
// consecutive-incorrect (to regress) streak has been reached (default 3) —
// this is the one piece of state recomputation cannot derive from the
// snapshot alone, so the streak counters live on MasteryRecord itself and
// are updated by ApplyResponse, not by Recompute.
//
// Grounded on the threshold-table dispatch idiom used elsewhere for
// selecting among constrained variants (see prim_kruskal's MSTOptions
// Method dispatch), adapted here to a strictly ordered stage ladder rather
// than a flat enumeration.
package mastery
