package priority

import "errors"

// ErrEmptyQueue indicates BuildQueue was asked to rank zero eligible items.
var ErrEmptyQueue = errors.New("priority: no eligible items to queue")
