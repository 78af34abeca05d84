package calibrator

import "errors"

// ErrNoTargets indicates a weight-allocation or evaluation call was given
// an empty target set.
var ErrNoTargets = errors.New("calibrator: task has no targets")

// ErrUnknownModel indicates an unrecognized MIRT model name.
var ErrUnknownModel = errors.New("calibrator: unknown probability model")
