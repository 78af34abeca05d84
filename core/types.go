package core

import "time"

// ItemID uniquely identifies a LearnableItem within a CatalogStore.
type ItemID string

// LearnerID uniquely identifies a learner.
type LearnerID string

// ZVector is the seven-component linguistic feature vector attached to every
// item, §3. All seven fields must lie in [0,1]; see Validate.
type ZVector struct {
	Frequency     float64
	Relational    float64 // relational density
	Domain        float64 // domain relevance
	Morphological float64
	Phonological  float64
	Syntactic     float64
	Pragmatic     float64
}

// InRange reports whether every field of z lies in [0,1].
func (z ZVector) InRange() bool {
	for _, v := range []float64{z.Frequency, z.Relational, z.Domain, z.Morphological, z.Phonological, z.Syntactic, z.Pragmatic} {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// IRTParams holds the 1PL/2PL/3PL item parameters, §3.
type IRTParams struct {
	A float64 // discrimination, > 0
	B float64 // difficulty, in [-4,4]
	C float64 // guessing, in [0,0.5]
}

// Valid reports whether p satisfies the catalog-ingestion invariants.
func (p IRTParams) Valid() bool {
	return p.A > 0 && p.B >= -4 && p.B <= 4 && p.C >= 0 && p.C <= 0.5
}

// CalibrationEntry is one append-only snapshot of an item's IRT parameters
// produced by a calibration pass, §3/§6 ("mutable calibration history").
type CalibrationEntry struct {
	At     time.Time
	Params IRTParams
	N      int // number of responses informing this snapshot
}

// LearnableItem is the immutable (outside calibration) catalog record, §3.
type LearnableItem struct {
	ID           ItemID
	Text         string
	Component    Component
	IRT          IRTParams
	Z            ZVector
	DomainTags   []string
	Collocations []ItemID

	CalibrationHistory []CalibrationEntry
}

// Validate checks the ingestion-time invariants from §3/§7 (ErrInvalidItem).
func (it LearnableItem) Validate() error {
	if it.ID == "" {
		return ErrEmptyItemID
	}
	if !it.Component.Valid() {
		return ErrInvalidItem
	}
	if !it.IRT.Valid() {
		return ErrInvalidItem
	}
	if !it.Z.InRange() {
		return ErrInvalidItem
	}
	return nil
}

// WithCalibration returns a copy of it with a new calibration snapshot
// appended. The receiver is never mutated in place.
func (it LearnableItem) WithCalibration(entry CalibrationEntry) LearnableItem {
	hist := make([]CalibrationEntry, len(it.CalibrationHistory), len(it.CalibrationHistory)+1)
	copy(hist, it.CalibrationHistory)
	it.CalibrationHistory = append(hist, entry)
	it.IRT = entry.Params
	return it
}

// FSRSCard is the per-item-per-learner spaced-repetition state, §3/§4.2.
type FSRSCard struct {
	Difficulty    float64 // in [1,10]
	Stability     float64 // >= 0
	LastReview    *time.Time
	Reps          int
	Lapses        int
	State         CardState
	ScheduledDays int
}

// MasteryKey identifies one (learner, item) mastery record.
type MasteryKey struct {
	Learner LearnerID
	Item    ItemID
}

// MasteryRecord is the per-(learner,item) progression state, §3/§4.3.
type MasteryRecord struct {
	Stage              int // 0..4
	Card               FSRSCard
	CueFreeAccuracy    float64 // EWMA in [0,1]
	CueAssistedAccuracy float64 // EWMA in [0,1]
	ExposureCount       int
	ConsecutiveCorrect   int
	ConsecutiveIncorrect int
	NextReview           *time.Time
}

// ScaffoldingGap returns max(0, cue-assisted - cue-free), §4.3.
func (m MasteryRecord) ScaffoldingGap() float64 {
	gap := m.CueAssistedAccuracy - m.CueFreeAccuracy
	if gap < 0 {
		return 0
	}
	return gap
}

// LearnerProfile is the per-learner global and per-component ability state, §3.
type LearnerProfile struct {
	LearnerID LearnerID
	Theta     float64 // global theta, [-3,3] typical / [-4,4] clamped
	Component ComponentSet[float64]
	SE        ComponentSet[float64] // per-component standard error, initial 1.5
	Responses ComponentSet[int]     // per-component response count
	L1        *string               // optional ISO-ish L1 tag
	Weights   PriorityWeights
}

// PriorityWeights are the seven S_base weights of §4.4, defaulting to the
// published recipe (NewLearnerProfile installs DefaultPriorityWeights).
type PriorityWeights struct {
	Frequency     float64
	Relational    float64
	Domain        float64
	Morphological float64
	Phonological  float64
	Syntactic     float64
	Pragmatic     float64
	Urgency       float64 // urgency weight multiplier, default 0.18
}

// DefaultPriorityWeights is the published recipe from §4.4, summing to 0.72
// across the seven S_base weights so U(w) and B(w) retain headroom.
var DefaultPriorityWeights = PriorityWeights{
	Frequency:     0.18,
	Relational:    0.14,
	Domain:        0.14,
	Morphological: 0.09,
	Phonological:  0.09,
	Syntactic:     0.08,
	Pragmatic:     0.08,
	Urgency:       0.18,
}

// NewLearnerProfile constructs a fresh profile at the neutral starting point:
// global and per-component theta 0, per-component SE 1.5, zero response
// counts, and the default priority-weight recipe.
func NewLearnerProfile(id LearnerID, l1 *string) LearnerProfile {
	var se ComponentSet[float64]
	for _, c := range Components() {
		se = se.Set(c, 1.5)
	}
	return LearnerProfile{
		LearnerID: id,
		Theta:     0,
		SE:        se,
		L1:        l1,
		Weights:   DefaultPriorityWeights,
	}
}

// QMatrixWeight pairs a target item with its Q-matrix weight within a task.
type QMatrixWeight struct {
	Item   ItemID
	Weight float64 // fraction of task weight attributed to Item, sums to 1 per task
	Primary bool
}

// TaskSpec is an ordered task, §3.
type TaskSpec struct {
	ID       string
	Targets  []QMatrixWeight
	Type     TaskType
	Format   TaskFormat
	Modality Modality
	Process  CognitiveProcess
	Difficulty float64 // composite, §4.5/§4.6
}

// Validate enforces the Q-matrix weight invariant from §3: weights sum to 1
// within 1e-6, and primary targets hold at least 50% of the total.
func (t TaskSpec) Validate() error {
	if len(t.Targets) == 0 {
		return ErrEmptyTargets
	}
	var total, primaryTotal float64
	for _, qw := range t.Targets {
		total += qw.Weight
		if qw.Primary {
			primaryTotal += qw.Weight
		}
	}
	const tol = 1e-6
	if total < 1-tol || total > 1+tol {
		return ErrBadQMatrixWeights
	}
	if primaryTotal < 0.5-tol {
		return ErrBadQMatrixWeights
	}
	return nil
}

// Response is one learner response to a task, §3.
type Response struct {
	Task          string
	Item          ItemID
	Correct       bool
	PartialCredit ComponentSet[float64]
	ResponseTimeMS int
	CueLevel       CueLevel
	Timestamp      time.Time
}
