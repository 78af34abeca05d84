package fsrs

import (
	"time"

	"github.com/kairoslang/lexcore/core"
)

// Parameters configures the scheduler, following the module's
// functional-option pattern for per-call configuration.
type Parameters struct {
	Weights          [19]float64
	RequestRetention float64
	MaxIntervalDays  int
}

// Option mutates Parameters.
type Option func(*Parameters)

// WithWeights overrides the default FSRS-5 weight vector.
func WithWeights(w [19]float64) Option { return func(p *Parameters) { p.Weights = w } }

// WithRequestRetention overrides the target retention probability.
func WithRequestRetention(r float64) Option { return func(p *Parameters) { p.RequestRetention = r } }

// WithMaxIntervalDays overrides the interval ceiling.
func WithMaxIntervalDays(d int) Option { return func(p *Parameters) { p.MaxIntervalDays = d } }

// DefaultParameters returns FSRS-5 defaults: 90% request retention, a
// 36500-day (100-year) interval ceiling.
func DefaultParameters() Parameters {
	return Parameters{
		Weights:          DefaultWeights,
		RequestRetention: 0.9,
		MaxIntervalDays:  36500,
	}
}

// Scheduling is the outward-facing result of one ReviewCard call: the
// updated card plus the derived next-review timestamp, §6
// (apply_response returns "(Profile', Mastery', scheduling)").
type Scheduling struct {
	Card       core.FSRSCard
	Rating     Rating
	NextReview time.Time
}

// ReviewCard advances a card by one review, dispatching on its current
// CardState (§4.2 state machine: new -> learning -> review, with a lapse
// during review moving it to relearning and a subsequent success moving it
// back to review). now is the review timestamp; rating is derived from the
// raw response via DeriveRating before calling this.
func ReviewCard(p Parameters, card core.FSRSCard, rating Rating, now time.Time) (core.FSRSCard, error) {
	switch card.State {
	case core.StateNew:
		return reviewNew(p, card, rating, now), nil
	case core.StateLearning, core.StateRelearning:
		return reviewLearningStep(p, card, rating, now), nil
	case core.StateReview:
		return reviewReview(p, card, rating, now), nil
	default:
		return core.FSRSCard{}, ErrUnknownState
	}
}

func reviewNew(p Parameters, card core.FSRSCard, rating Rating, now time.Time) core.FSRSCard {
	next := card
	next.Stability = InitialStability(p.Weights, rating)
	next.Difficulty = InitialDifficulty(p.Weights, rating)
	next.Reps = 1
	next.LastReview = &now

	if rating == Again {
		next.State = core.StateLearning
		next.Lapses = card.Lapses
		next.ScheduledDays = 0
		return next
	}
	next.State = core.StateReview
	next.ScheduledDays = NextInterval(next.Stability, p.RequestRetention, p.MaxIntervalDays)
	return next
}

func reviewLearningStep(p Parameters, card core.FSRSCard, rating Rating, now time.Time) core.FSRSCard {
	next := card
	next.Difficulty = NextDifficulty(p.Weights, card.Difficulty, rating)
	next.Stability = ShortTermStability(p.Weights, card.Stability, rating)
	next.Reps = card.Reps + 1
	next.LastReview = &now

	if rating == Again {
		next.State = core.StateRelearning
		next.ScheduledDays = 0
		return next
	}
	next.State = core.StateReview
	next.ScheduledDays = NextInterval(next.Stability, p.RequestRetention, p.MaxIntervalDays)
	return next
}

func reviewReview(p Parameters, card core.FSRSCard, rating Rating, now time.Time) core.FSRSCard {
	elapsed := elapsedDays(card.LastReview, now)
	r := Retrievability(elapsed, card.Stability, p.RequestRetention)

	next := card
	next.Difficulty = NextDifficulty(p.Weights, card.Difficulty, rating)
	next.Reps = card.Reps + 1
	next.LastReview = &now

	if rating == Again {
		next.Lapses = card.Lapses + 1
		next.Stability = StabilityAfterForgettingCapped(p.Weights, card.Stability, card.Difficulty, r)
		next.State = core.StateRelearning
		next.ScheduledDays = 0
		return next
	}

	next.Stability = StabilityAfterRecall(p.Weights, card.Stability, card.Difficulty, r, rating)
	next.State = core.StateReview
	next.ScheduledDays = NextInterval(next.Stability, p.RequestRetention, p.MaxIntervalDays)
	return next
}

func elapsedDays(last *time.Time, now time.Time) float64 {
	if last == nil {
		return 0
	}
	d := now.Sub(*last)
	if d < 0 {
		return 0
	}
	return d.Hours() / 24
}

// DeriveRating maps a raw task response to an FSRS rating, §4.2:
//
//	incorrect                                -> Again
//	correct, cue_level >= 1 (scaffolded)      -> Hard
//	correct, cue-free, response_time > 5000ms -> Good
//	correct, cue-free, response_time <= 5000  -> Easy
func DeriveRating(correct bool, cueLevel core.CueLevel, responseTimeMS int) Rating {
	if !correct {
		return Again
	}
	if cueLevel != core.CueNone {
		return Hard
	}
	if responseTimeMS > 5000 {
		return Good
	}
	return Easy
}

// ScheduleResponse derives a rating from a raw response, reviews the card,
// and bundles the result as a Scheduling, §6.
func ScheduleResponse(p Parameters, card core.FSRSCard, correct bool, cueLevel core.CueLevel, responseTimeMS int, now time.Time) (Scheduling, error) {
	rating := DeriveRating(correct, cueLevel, responseTimeMS)
	next, err := ReviewCard(p, card, rating, now)
	if err != nil {
		return Scheduling{}, err
	}
	return Scheduling{
		Card:       next,
		Rating:     rating,
		NextReview: now.Add(time.Duration(next.ScheduledDays) * 24 * time.Hour),
	}, nil
}
