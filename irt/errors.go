// errors.go — sentinel errors for the irt package.
//
// Error policy: only MLENonconvergence-adjacent conditions are handled
// internally (§7 says they must never surface); the errors below are the
// ones that DO surface, all validation-class.
package irt

import "errors"

// ErrEmptyCandidateSet indicates next-item selection was asked to choose
// among zero eligible items (§7 EmptyCandidateSet — surfaced as an empty
// result, not a panic).
var ErrEmptyCandidateSet = errors.New("irt: no eligible candidate items")

// ErrInvalidParams indicates a, b, or c fall outside the catalog-ingestion
// bounds (a>0, b∈[-4,4], c∈[0,0.5]); callers should validate with
// core.LearnableItem.Validate before calling into this package.
var ErrInvalidParams = errors.New("irt: invalid item parameters")
