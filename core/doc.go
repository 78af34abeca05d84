// Package core defines the central data model of the adaptive
// language-learning engine: catalog items, per-learner mastery records,
// learner profiles, task specifications, and learner responses.
//
// Every record is a fixed, validated struct — there are no open-ended
// maps for per-component state. Per-component values (standard errors,
// response counts, θ estimates) are held in ComponentSet[T], a small
// array-backed value type keyed by the five-member Component enum.
//
// Cross-references are IDs, not pointers: LearnableItem and
// MasteryRecord never point at each other directly. CatalogStore and
// MasteryStore are the owning, ID-keyed maps a host composes them
// through, each guarded by its own sync.RWMutex so that catalog traffic
// never blocks mastery traffic (all learners share MasteryStore's lock).
//
// Invariants enforced at construction/ingestion time (see Validate):
//
//	- z-vector components all in [0,1].
//	- IRT discrimination a > 0, difficulty b ∈ [-4,4], guessing c ∈ [0,0.5].
//	- Σ Q-matrix weights per task = 1 (±1e-6); primary targets hold ≥ 50%.
//
// FSRS stability is not checked here; package fsrs keeps it at or above
// fsrs.MinStability when it updates a card.
//
// Validation happens once, at ingestion or task-construction time;
// nothing past that boundary panics. Arithmetic elsewhere in the engine
// clamps rather than rejects.
package core
