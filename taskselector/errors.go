package taskselector

import "errors"

// ErrNoEligibleType indicates stage gating left zero allowed task types.
// AllowedTypes clamps the stage into [0,4] and every stage unlocks at least
// two types, so Select does not return it with the current stage table.
var ErrNoEligibleType = errors.New("taskselector: no task type eligible for this stage")
