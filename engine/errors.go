package engine

import "errors"

// ErrItemNotTargeted indicates Evaluate received no user response for one
// of the task's Q-matrix targets.
var ErrItemNotTargeted = errors.New("engine: no response supplied for one of the task's targets")
