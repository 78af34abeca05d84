package fsrs

import "errors"

// ErrUnknownState indicates a core.FSRSCard carries a CardState outside the
// four declared values; ReviewCard refuses to guess a transition for it.
var ErrUnknownState = errors.New("fsrs: unknown card state")

// ErrInvalidWeights indicates a custom weight vector supplied via
// WithWeights failed ValidateWeights.
var ErrInvalidWeights = errors.New("fsrs: invalid weight vector")
