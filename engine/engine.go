package engine

import (
	"math"
	"sync"
	"time"

	"github.com/kairoslang/lexcore/bottleneck"
	"github.com/kairoslang/lexcore/calibrator"
	"github.com/kairoslang/lexcore/core"
	"github.com/kairoslang/lexcore/fsrs"
	"github.com/kairoslang/lexcore/irt"
	"github.com/kairoslang/lexcore/mastery"
	"github.com/kairoslang/lexcore/priority"
	"github.com/kairoslang/lexcore/taskselector"
	"github.com/kairoslang/lexcore/transfer"
	"github.com/kairoslang/lexcore/xmath"
)

// Engine composes the nine leaf/mid packages behind the seven §6
// operations. It owns a catalog store (so Evaluate and AnalyzeBottleneck
// can resolve an ItemID back to its Component and IRT parameters) and the
// most recent bottleneck.Report (so BuildQueue's B(w) boost, §4.4, reads
// the latest periodic batch analysis without the caller threading it
// through every call).
type Engine struct {
	catalog       *core.CatalogStore
	cfg           Config
	fsrsParams    fsrs.Parameters
	bottleneckCfg bottleneck.Config

	mu             sync.RWMutex
	lastBottleneck bottleneck.Report
}

// New constructs an Engine over catalog, configured by cfg.
func New(catalog *core.CatalogStore, cfg Config) *Engine {
	return &Engine{
		catalog:       catalog,
		cfg:           cfg,
		fsrsParams:    cfg.fsrsParameters(),
		bottleneckCfg: cfg.bottleneckConfig(),
	}
}

// UpsertItem validates and stores item in the catalog, §6 operation 1.
func (e *Engine) UpsertItem(item core.LearnableItem) error {
	return e.catalog.Upsert(item)
}

// CreateProfile constructs a fresh LearnerProfile at the neutral starting
// point, §6 operation 2. l1 is optional.
func (e *Engine) CreateProfile(learnerID string, l1 *transfer.Family) core.LearnerProfile {
	var l1Tag *string
	if l1 != nil {
		tag := l1.String()
		l1Tag = &tag
	}
	return core.NewLearnerProfile(core.LearnerID(learnerID), l1Tag)
}

// seAfterResponse shrinks a component's standard error toward zero as more
// responses accumulate, following the same 1/√n family the IRT package
// uses for SE after MLE (§4.1) but seeded at the profile's initial 1.5 so a
// fresh component starts at the stated initial SE of 1.5.
func seAfterResponse(responses int) float64 {
	return 1.5 / math.Sqrt(xmath.Clamp(float64(responses), 1, 1e9))
}

// ApplyResponse folds one response into profile and mastery, in the
// canonical order fixed by §5: evaluate the response against the item's own
// IRT model, update the FSRS card, update the per-component and global θ,
// then recompute the mastery stage. Returns the updated profile, mastery
// record, and the FSRS scheduling result, §6 operation 3.
func (e *Engine) ApplyResponse(profile core.LearnerProfile, rec core.MasteryRecord, item core.LearnableItem, resp core.Response, now time.Time) (core.LearnerProfile, core.MasteryRecord, fsrs.Scheduling, error) {
	if err := item.Validate(); err != nil {
		return profile, rec, fsrs.Scheduling{}, err
	}

	// (evaluate): expected success probability under the item's own 2PL
	// model at the learner's current per-component theta.
	comp := item.Component
	theta := profile.Component.Get(comp)
	expectedP := irt.Probability(irt.Model2PL, theta, item.IRT)
	observed := 0.0
	if resp.Correct {
		observed = 1.0
	} else if pc := resp.PartialCredit.Get(comp); pc > 0 {
		observed = pc
	}

	// (FSRS)
	sched, err := fsrs.ScheduleResponse(e.fsrsParams, rec.Card, resp.Correct, resp.CueLevel, resp.ResponseTimeMS, now)
	if err != nil {
		return profile, rec, fsrs.Scheduling{}, err
	}
	rec.Card = sched.Card
	nextReview := sched.NextReview
	rec.NextReview = &nextReview

	// (theta)
	delta := calibrator.ComponentDelta(calibrator.ThetaUpdateInputs{
		Theta:            theta,
		Observed:         observed,
		ExpectedP:        expectedP,
		Discrimination:   item.IRT.A,
		DifficultyFactor: 1,
		LearningRate:     calibrator.DefaultLearningRate,
	})
	newTheta := xmath.Clamp(theta+delta, -4, 4)
	profile.Component = profile.Component.Set(comp, newTheta)
	responses := profile.Responses.Get(comp) + 1
	profile.Responses = profile.Responses.Set(comp, responses)
	profile.SE = profile.SE.Set(comp, seAfterResponse(responses))
	profile.Theta = xmath.Clamp(profile.Theta+delta, -4, 4)

	// (stage)
	rec = mastery.ApplyResponse(rec, resp.Correct, resp.CueLevel, now, mastery.WithStreakThreshold(e.cfg.MasteryStreakThreshold))

	return profile, rec, sched, nil
}

// BuildQueue ranks every item in items for profile, incorporating the most
// recent bottleneck report's B(w) boost, §6 operation 4.
func (e *Engine) BuildQueue(profile core.LearnerProfile, items []core.LearnableItem, masteryMap map[core.ItemID]core.MasteryRecord, now time.Time) ([]priority.QueueEntry, error) {
	level := priority.InferLevel(profile.Theta)
	weights := priority.WeightsForLevel(profile.Weights, level)

	l2 := transfer.Other // target language family is a host-supplied catalog concern; Other is the neutral default absent a target-language tag.
	l1 := transfer.Other
	if profile.L1 != nil {
		l1 = transfer.ParseFamily(*profile.L1)
	}

	e.mu.RLock()
	lastBottleneck := e.lastBottleneck
	e.mu.RUnlock()

	ids := make([]core.ItemID, len(items))
	inputs := make([]priority.Inputs, len(items))
	for i, item := range items {
		rec := masteryMap[item.ID]
		gain := transfer.GainFor(l1, l2, item.Component)
		ids[i] = item.ID
		inputs[i] = priority.Inputs{
			Z:              item.Z,
			Component:      item.Component,
			Weights:        weights,
			MasteryStage:   rec.Stage,
			CueFreeAcc:     rec.CueFreeAccuracy,
			ScaffoldingGap: rec.ScaffoldingGap(),
			TransferGain:   gain,
			NextReview:     rec.NextReview,
			Now:            now,
			Bottleneck:     lastBottleneck.PrimaryBottleneck,
			HasBottleneck:  lastBottleneck.HasPrimaryBottleneck,
		}
	}
	return priority.BuildQueue(inputs, ids)
}

// BuildSession runs BuildQueue and then composes a single study session from
// it: cfg.SessionSize entries, cfg.SessionDueFraction of which are due items
// (urgency > 0), the rest fresh, §4.4 ("a session composes a configurable
// fraction of due items and fresh items").
func (e *Engine) BuildSession(profile core.LearnerProfile, items []core.LearnableItem, masteryMap map[core.ItemID]core.MasteryRecord, now time.Time) ([]priority.QueueEntry, error) {
	queue, err := e.BuildQueue(profile, items, masteryMap, now)
	if err != nil {
		return nil, err
	}
	return priority.SplitDueAndFresh(queue, e.cfg.SessionSize, e.cfg.SessionDueFraction), nil
}

// SelectTask picks a single-target TaskSpec for item at mastery's current
// stage, §6 operation 5. The returned spec's sole target carries the full
// Q-matrix weight (1.0, primary), matching a single-item presentation;
// multi-target tasks are composed by the host from several SelectTask
// calls plus calibrator.AllocateWeights.
func (e *Engine) SelectTask(profile core.LearnerProfile, rec core.MasteryRecord, item core.LearnableItem, history []core.TaskType) (core.TaskSpec, error) {
	tt, err := taskselector.Select(rec.Stage, item.Z, history, taskselector.WithVarietyWindow(e.cfg.TaskVarietyWindow))
	if err != nil {
		return core.TaskSpec{}, err
	}
	format := taskselector.SelectFormat(rec.Stage, tt)
	modality := taskselector.SelectModality(item.Z)

	layer := taskselector.LayerWord
	bEff := taskselector.ContextualDifficulty(item.IRT.B, taskselector.ContextualDifficultyInputs{
		Modality: modality,
		TaskType: tt,
		Timed:    tt == core.Timed,
		Layer:    layer,
	})

	spec := core.TaskSpec{
		ID:       core.NewTaskID(),
		Type:     tt,
		Format:   format,
		Modality: modality,
		Process:  core.ProcessRecall,
		Targets: []core.QMatrixWeight{
			{Item: item.ID, Weight: 1, Primary: true},
		},
		Difficulty: xmath.Clamp(bEff, -4, 4),
	}
	if err := spec.Validate(); err != nil {
		return core.TaskSpec{}, err
	}
	return spec, nil
}

// Evaluate scores a learner's response to every target of task and returns
// the combined MIRT evaluation, §6 operation 6. profile supplies the
// per-component theta the MIRT probability model needs; userResponse maps
// each target ItemID to the learner's raw text answer, scored against the
// catalog item's canonical Text.
func (e *Engine) Evaluate(profile core.LearnerProfile, task core.TaskSpec, userResponse map[core.ItemID]string) (calibrator.Evaluation, error) {
	if len(task.Targets) == 0 {
		return calibrator.Evaluation{}, calibrator.ErrNoTargets
	}

	targets := make([]calibrator.ItemTarget, len(task.Targets))
	items := make(map[core.ItemID]core.LearnableItem, len(task.Targets))
	for i, qw := range task.Targets {
		item, err := e.catalog.Get(qw.Item)
		if err != nil {
			return calibrator.Evaluation{}, err
		}
		items[qw.Item] = item
		targets[i] = calibrator.ItemTarget{Item: qw.Item, Component: item.Component, Primary: qw.Primary}
	}

	weights, err := calibrator.AllocateWeights(task.Type, targets)
	if err != nil {
		return calibrator.Evaluation{}, err
	}

	model := calibrator.ModelForTaskType(task.Type)
	comps := make([]calibrator.ComponentParam, len(weights))
	perTarget := make(map[core.ItemID]calibrator.TargetEvaluation, len(weights))
	for i, w := range weights {
		item := items[w.Item]
		got, ok := userResponse[w.Item]
		if !ok {
			return calibrator.Evaluation{}, ErrItemNotTargeted
		}
		if item.Component == core.Prag {
			perTarget[w.Item] = calibrator.EvaluatePragmaticTarget(item.Text, got)
		} else {
			perTarget[w.Item] = calibrator.EvaluateTarget(item.Text, got)
		}
		comps[i] = calibrator.ComponentParam{
			Component: item.Component,
			Theta:     profile.Component.Get(item.Component),
			IRT:       item.IRT,
			Weight:    w.Weight,
		}
	}

	prob := calibrator.Probability(model, comps)

	deltas := make([]calibrator.ComponentDeltaSet, len(comps))
	for i, c := range comps {
		ev := perTarget[weights[i].Item]
		d := calibrator.ComponentDelta(calibrator.ThetaUpdateInputs{
			Theta:            c.Theta,
			Observed:         ev.PartialCredit,
			ExpectedP:        prob,
			Discrimination:   c.IRT.A,
			DifficultyFactor: 1,
			LearningRate:     calibrator.DefaultLearningRate,
		})
		deltas[i] = calibrator.ComponentDeltaSet{Component: c.Component, Delta: d, Weight: c.Weight}
	}

	return calibrator.Evaluation{
		Model:       model,
		Probability: prob,
		PerTarget:   perTarget,
		GlobalDelta: calibrator.GlobalDelta(deltas),
	}, nil
}

// RecalibrateComponentTheta runs a full-batch ability re-estimate for one
// component from its accumulated item responses, complementing
// ApplyResponse's per-response incremental nudge, §4.1. Newton-Raphson
// non-convergence (the all-correct/all-incorrect pattern) falls back
// internally to EAP under cfg.QuadratureNodes.
func (e *Engine) RecalibrateComponentTheta(profile core.LearnerProfile, comp core.Component, resp []irt.ItemResponse) irt.MLEResult {
	theta0 := profile.Component.Get(comp)
	return irt.EstimateTheta(irt.Model2PL, theta0, resp, e.cfg.QuadratureNodes)
}

// DefaultBottleneckConfig returns the bottleneck.Config derived from this
// Engine's Config, for hosts that don't need a per-call override.
func (e *Engine) DefaultBottleneckConfig() bottleneck.Config {
	return e.bottleneckCfg
}

// AnalyzeBottleneck runs the cascade analysis over recent responses,
// caching the result so a subsequent BuildQueue call picks up the newly
// flagged bottleneck's B(w) boost, §6 operation 7.
func (e *Engine) AnalyzeBottleneck(recent []core.Response, cfg bottleneck.Config) bottleneck.Report {
	comps := make([]bottleneck.ComponentResponse, 0, len(recent))
	for _, r := range recent {
		item, err := e.catalog.Get(r.Item)
		if err != nil {
			continue
		}
		comps = append(comps, bottleneck.ComponentResponse{Component: item.Component, Correct: r.Correct, At: r.Timestamp})
	}
	report := bottleneck.Analyze(comps, cfg)
	e.mu.Lock()
	e.lastBottleneck = report
	e.mu.Unlock()
	return report
}
