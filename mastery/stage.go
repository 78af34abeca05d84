package mastery

import (
	"time"

	"github.com/kairoslang/lexcore/core"
	"github.com/kairoslang/lexcore/xmath"
)

// DefaultStreakThreshold is the number of consecutive correct/incorrect
// responses required before a stage transition takes effect, §4.3.
const DefaultStreakThreshold = 3

// accuracyEWMAAlpha weights new observations in the cue-free/cue-assisted
// accuracy running averages. Not pinned by §4.3; chosen for a
// reasonably short memory (≈3-response half-life, as 0.8³ ≈ 0.51) without being as noisy
// as a plain running count.
const accuracyEWMAAlpha = 0.2

// Options configures stage recomputation and response application.
type Options struct {
	StreakThreshold int
}

// Option mutates Options.
type Option func(*Options)

// WithStreakThreshold overrides the default consecutive-streak gate.
func WithStreakThreshold(n int) Option { return func(o *Options) { o.StreakThreshold = n } }

// DefaultOptions returns the §4.3 default streak threshold of 3.
func DefaultOptions() Options {
	return Options{StreakThreshold: DefaultStreakThreshold}
}

// thresholdStage reports the highest stage whose (cue-assisted accuracy,
// cue-free accuracy, stability days, gap) thresholds the record currently
// satisfies, per the §4.3 table. It does not consult streaks — it is the
// pure, idempotent half of stage recomputation.
func thresholdStage(rec core.MasteryRecord) int {
	stabilityDays := rec.Card.Stability
	gap := rec.ScaffoldingGap()

	stage := 0
	if rec.CueAssistedAccuracy >= 0.5 {
		stage = 1
	}
	if rec.CueFreeAccuracy >= 0.6 && stabilityDays >= 1 {
		stage = 2
	}
	if rec.CueFreeAccuracy >= 0.75 && stabilityDays > 7 {
		stage = 3
	}
	if rec.CueFreeAccuracy >= 0.9 && stabilityDays > 30 && gap < 0.1 {
		stage = 4
	}
	return stage
}

// Recompute returns the stage a record's snapshot supports per the
// threshold table alone, ignoring streak gating. Calling it twice on the
// same snapshot always returns the same value (§7 idempotence).
func Recompute(rec core.MasteryRecord) int {
	return thresholdStage(rec)
}

// CueLevelFor derives the scaffolding cue level for the next presentation
// from the current scaffolding gap and exposure count, §4.3.
func CueLevelFor(rec core.MasteryRecord) core.CueLevel {
	gap := rec.ScaffoldingGap()
	switch {
	case gap > 0.3:
		return core.CueFull
	case gap >= 0.15:
		return core.CueMedium
	case gap >= 0.05:
		return core.CueLow
	case rec.ExposureCount >= 5:
		return core.CueNone
	default:
		return core.CueLow
	}
}

// ApplyResponse folds one response into a mastery record: updates the
// relevant accuracy EWMA (cue-free if the response was presented with no
// cues, cue-assisted otherwise), increments exposure count and the
// consecutive streak counters, then gates a stage transition on the
// streak threshold, §4.3 ("transitions may advance or regress, but only
// when both the accuracy threshold AND a consecutive streak is
// satisfied"). Returns the updated record; the caller still owns
// persisting it via core.MasteryStore.
func ApplyResponse(rec core.MasteryRecord, correct bool, cueLevel core.CueLevel, now time.Time, opts ...Option) core.MasteryRecord {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	next := rec
	next.ExposureCount = rec.ExposureCount + 1

	obs := 0.0
	if correct {
		obs = 1.0
	}
	if cueLevel == core.CueNone {
		next.CueFreeAccuracy = xmath.Lerp(rec.CueFreeAccuracy, obs, accuracyEWMAAlpha)
	} else {
		next.CueAssistedAccuracy = xmath.Lerp(rec.CueAssistedAccuracy, obs, accuracyEWMAAlpha)
	}

	if correct {
		next.ConsecutiveCorrect = rec.ConsecutiveCorrect + 1
		next.ConsecutiveIncorrect = 0
	} else {
		next.ConsecutiveIncorrect = rec.ConsecutiveIncorrect + 1
		next.ConsecutiveCorrect = 0
	}

	target := thresholdStage(next)
	switch {
	case target > rec.Stage && next.ConsecutiveCorrect >= cfg.StreakThreshold:
		next.Stage = target
	case target < rec.Stage && next.ConsecutiveIncorrect >= cfg.StreakThreshold:
		next.Stage = target
	default:
		next.Stage = rec.Stage
	}

	return next
}
