// errors.go — sentinel errors for the core package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site;
//     call sites attach context with %w.
//   - Validation is confined to ingestion (UpsertItem) and task construction
//     (TaskSpec.Validate); nothing past that boundary returns these errors.
package core

import "errors"

// ErrInvalidItem indicates a LearnableItem failed validation: a <= 0,
// b out of [-4,4], c out of [0,0.5], or a z-vector component outside [0,1].
var ErrInvalidItem = errors.New("core: invalid item")

// ErrEmptyItemID indicates an item or response referenced the empty item ID.
var ErrEmptyItemID = errors.New("core: empty item id")

// ErrItemNotFound indicates a lookup referenced an item absent from the catalog.
var ErrItemNotFound = errors.New("core: item not found")

// ErrMasteryNotFound indicates a lookup referenced a (learner, item) pair with
// no mastery record.
var ErrMasteryNotFound = errors.New("core: mastery record not found")

// ErrEmptyTargets indicates a TaskSpec was constructed with zero target items.
var ErrEmptyTargets = errors.New("core: task requires at least one target")

// ErrBadQMatrixWeights indicates the target Q-matrix weights for a task do not
// sum to 1 within tolerance, or no primary target holds at least 50% of the
// total weight.
var ErrBadQMatrixWeights = errors.New("core: q-matrix weights invalid")
