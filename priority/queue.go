package priority

import (
	"sort"

	"github.com/kairoslang/lexcore/core"
)

// QueueEntry is one ranked item in a built session queue, §4.4.
type QueueEntry struct {
	Item       core.ItemID
	Priority   float64
	Urgency    float64
	FinalScore float64
}

// BuildQueue computes (priority, urgency, final_score) for every input and
// returns them sorted descending by final_score, ties broken by item ID for
// determinism. It never mutates the input slice, §4.4.
func BuildQueue(entries []Inputs, ids []core.ItemID) ([]QueueEntry, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyQueue
	}
	out := make([]QueueEntry, len(entries))
	for i, in := range entries {
		priority := EffectivePriority(in)
		urgency := Urgency(in.NextReview, in.Now)
		out[i] = QueueEntry{
			Item:       ids[i],
			Priority:   priority,
			Urgency:    urgency,
			FinalScore: priority * (1 + urgency),
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].FinalScore != out[j].FinalScore {
			return out[i].FinalScore > out[j].FinalScore
		}
		return out[i].Item < out[j].Item
	})
	return out, nil
}

// SplitDueAndFresh partitions a built queue into a configurable fraction of
// due items (urgency > 0, which includes never-reviewed items) followed by
// fresh items (urgency == 0 -- not yet due), preserving each subgroup's
// relative order. When fresh items run short, the remaining slots are
// filled with further due items. dueFrac is clamped to [0,1].
func SplitDueAndFresh(queue []QueueEntry, sessionSize int, dueFrac float64) []QueueEntry {
	if dueFrac < 0 {
		dueFrac = 0
	}
	if dueFrac > 1 {
		dueFrac = 1
	}
	var due, fresh []QueueEntry
	for _, e := range queue {
		if e.Urgency > 0 {
			due = append(due, e)
		} else {
			fresh = append(fresh, e)
		}
	}

	dueCount := int(float64(sessionSize) * dueFrac)
	if dueCount > len(due) {
		dueCount = len(due)
	}
	result := make([]QueueEntry, 0, sessionSize)
	result = append(result, due[:dueCount]...)

	remaining := sessionSize - len(result)
	if remaining > len(fresh) {
		remaining = len(fresh)
	}
	result = append(result, fresh[:remaining]...)

	if len(result) < sessionSize {
		extra := sessionSize - len(result)
		if extra > len(due)-dueCount {
			extra = len(due) - dueCount
		}
		result = append(result, due[dueCount:dueCount+extra]...)
	}
	return result
}
