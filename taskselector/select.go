package taskselector

import (
	"sort"

	"github.com/kairoslang/lexcore/core"
)

// DefaultVarietyWindow is N in the §4.5 variety-enforcement rule: don't
// repeat a type seen in the last N choices unless no alternative remains.
const DefaultVarietyWindow = 2

// Options configures Select.
type Options struct {
	VarietyWindow int
}

// Option mutates Options.
type Option func(*Options)

// WithVarietyWindow overrides the default variety window of 2.
func WithVarietyWindow(n int) Option { return func(o *Options) { o.VarietyWindow = n } }

// DefaultOptions returns the §4.5 default variety window.
func DefaultOptions() Options {
	return Options{VarietyWindow: DefaultVarietyWindow}
}

// Select picks one task type for the next presentation: stage gating
// filters candidates, z-vector affinity scores them, then variety
// enforcement excludes recently-seen types unless doing so would leave
// nothing eligible, §4.5.
func Select(stage int, z core.ZVector, recent []core.TaskType, opts ...Option) (core.TaskType, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	allowed := AllowedTypes(stage)
	if len(allowed) == 0 {
		return 0, ErrNoEligibleType
	}

	window := recentWindow(recent, cfg.VarietyWindow)
	filtered := excludeRecent(allowed, window)
	if len(filtered) == 0 {
		filtered = allowed
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		si, sj := AffinityScore(filtered[i], z), AffinityScore(filtered[j], z)
		if si != sj {
			return si > sj
		}
		return filtered[i] < filtered[j]
	})
	return filtered[0], nil
}

func recentWindow(recent []core.TaskType, n int) []core.TaskType {
	if n <= 0 || len(recent) == 0 {
		return nil
	}
	if len(recent) <= n {
		return recent
	}
	return recent[len(recent)-n:]
}

func excludeRecent(candidates, recent []core.TaskType) []core.TaskType {
	if len(recent) == 0 {
		return candidates
	}
	seen := make(map[core.TaskType]bool, len(recent))
	for _, r := range recent {
		seen[r] = true
	}
	var out []core.TaskType
	for _, c := range candidates {
		if !seen[c] {
			out = append(out, c)
		}
	}
	return out
}

// SelectFormat picks a presentation format for the given stage, §4.5:
// stage 0-1 return mcq, stage 2 returns matching, stage 3-4 return
// fill_blank for fill_blank tasks and free_response otherwise.
func SelectFormat(stage int, tt core.TaskType) core.TaskFormat {
	switch {
	case stage <= 1:
		return core.FormatMCQ
	case stage == 2:
		return core.FormatMatching
	default:
		if tt == core.FillBlank {
			return core.FormatFillBlank
		}
		return core.FormatFreeResponse
	}
}

// SelectModality picks a sensory channel from the z-vector, §4.5:
// phonological > 0.7 -> auditory; pragmatic > 0.6 -> mixed; else visual.
func SelectModality(z core.ZVector) core.Modality {
	switch {
	case z.Phonological > 0.7:
		return core.ModalityAuditory
	case z.Pragmatic > 0.6:
		return core.ModalityMixed
	default:
		return core.ModalityVisual
	}
}
