package mastery

import "errors"

// ErrInvalidStreakThreshold indicates a custom streak threshold supplied
// via WithStreakThreshold was not strictly positive.
var ErrInvalidStreakThreshold = errors.New("mastery: streak threshold must be positive")
