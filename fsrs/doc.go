// Package fsrs implements the Free Spaced Repetition Scheduler, §4.2: a
// card's stability and difficulty evolve from the learner's rating, and the
// predicted retrievability decays exponentially between reviews.
//
// Retrievability at elapsed time t since the last review, given stability s
// and the configured request retention r:
//
//	R(t) = exp(ln(r) · t/s)
//
// s is, by construction, the interval at which R falls to r — the
// defining property of "stability" in FSRS. A new rating updates
// (stability, difficulty) via the published 19-parameter FSRS-5 weight vector
// (§4.2); rating=Again (a lapse) shrinks stability by a lapse factor and
// moves the card to StateRelearning, while rating>=Good grows stability and
// moves the card to StateReview.
//
// NextInterval clamps the schedule to [1, maximum_interval_days] (default
// 36500) and is always a deterministic function of (stability,
// request_retention) — no randomness, no fuzz — so the strict monotonicity
// properties in §8 hold without a fuzzed interval complicating them.
//
// The FSRS-5 weight table and stability/difficulty update functions are
// carried over as published constants (a versioned external formula, not
// house style to rewrite), adapted here to operate on
// core.FSRSCard/core.CardState instead of a package-private Card type, and
// restructured around this module's functional-option configuration idiom.
package fsrs
