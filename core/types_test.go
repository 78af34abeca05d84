package core_test

import (
	"testing"

	"github.com/kairoslang/lexcore/core"
)

func validItem(id core.ItemID) core.LearnableItem {
	return core.LearnableItem{
		ID:        id,
		Text:      "word",
		Component: core.Lex,
		IRT:       core.IRTParams{A: 1, B: 0, C: 0},
		Z: core.ZVector{
			Frequency: 0.5, Relational: 0.5, Domain: 0.5,
			Morphological: 0.5, Phonological: 0.5, Syntactic: 0.5, Pragmatic: 0.5,
		},
	}
}

func TestLearnableItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(core.LearnableItem) core.LearnableItem
		wantErr error
	}{
		{"valid", func(it core.LearnableItem) core.LearnableItem { return it }, nil},
		{"empty id", func(it core.LearnableItem) core.LearnableItem { it.ID = ""; return it }, core.ErrEmptyItemID},
		{"bad discrimination", func(it core.LearnableItem) core.LearnableItem { it.IRT.A = 0; return it }, core.ErrInvalidItem},
		{"b out of range", func(it core.LearnableItem) core.LearnableItem { it.IRT.B = 9; return it }, core.ErrInvalidItem},
		{"c out of range", func(it core.LearnableItem) core.LearnableItem { it.IRT.C = 0.9; return it }, core.ErrInvalidItem},
		{"z out of range", func(it core.LearnableItem) core.LearnableItem { it.Z.Frequency = 1.5; return it }, core.ErrInvalidItem},
		{"unknown component", func(it core.LearnableItem) core.LearnableItem { it.Component = core.Component(99); return it }, core.ErrInvalidItem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := tt.mutate(validItem("w1"))
			err := it.Validate()
			if tt.wantErr == nil && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if tt.wantErr != nil && err != tt.wantErr {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLearnableItem_WithCalibration_Immutable(t *testing.T) {
	it := validItem("w1")
	next := it.WithCalibration(core.CalibrationEntry{Params: core.IRTParams{A: 2, B: 1, C: 0}})
	if it.IRT.A != 1 {
		t.Fatalf("original item mutated: %v", it.IRT)
	}
	if len(it.CalibrationHistory) != 0 {
		t.Fatalf("original history mutated: %v", it.CalibrationHistory)
	}
	if next.IRT.A != 2 || len(next.CalibrationHistory) != 1 {
		t.Fatalf("calibration not applied to copy: %+v", next)
	}
}

func TestTaskSpec_Validate_QMatrixWeights(t *testing.T) {
	ok := core.TaskSpec{Targets: []core.QMatrixWeight{
		{Item: "a", Weight: 0.6, Primary: true},
		{Item: "b", Weight: 0.4, Primary: false},
	}}
	if err := ok.Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}

	badSum := core.TaskSpec{Targets: []core.QMatrixWeight{{Item: "a", Weight: 0.3, Primary: true}}}
	if err := badSum.Validate(); err != core.ErrBadQMatrixWeights {
		t.Fatalf("expected ErrBadQMatrixWeights, got %v", err)
	}

	noPrimaryMajority := core.TaskSpec{Targets: []core.QMatrixWeight{
		{Item: "a", Weight: 0.4, Primary: true},
		{Item: "b", Weight: 0.6, Primary: false},
	}}
	if err := noPrimaryMajority.Validate(); err != core.ErrBadQMatrixWeights {
		t.Fatalf("expected ErrBadQMatrixWeights for primary < 50%%, got %v", err)
	}

	empty := core.TaskSpec{}
	if err := empty.Validate(); err != core.ErrEmptyTargets {
		t.Fatalf("expected ErrEmptyTargets, got %v", err)
	}
}

func TestMasteryRecord_ScaffoldingGap(t *testing.T) {
	m := core.MasteryRecord{CueFreeAccuracy: 0.4, CueAssistedAccuracy: 0.7}
	if got := m.ScaffoldingGap(); got < 0.29 || got > 0.31 {
		t.Fatalf("expected gap ~0.3, got %v", got)
	}
	m2 := core.MasteryRecord{CueFreeAccuracy: 0.9, CueAssistedAccuracy: 0.2}
	if got := m2.ScaffoldingGap(); got != 0 {
		t.Fatalf("expected gap clamped to 0, got %v", got)
	}
}

func TestComponentSet_GetSet(t *testing.T) {
	var s core.ComponentSet[float64]
	s = s.Set(core.Phon, 1.5).Set(core.Prag, 2.5)
	if s.Get(core.Phon) != 1.5 || s.Get(core.Prag) != 2.5 {
		t.Fatalf("unexpected component set contents: %+v", s)
	}
	if s.Get(core.Morph) != 0 {
		t.Fatalf("expected zero value for untouched slot, got %v", s.Get(core.Morph))
	}
}

func TestParseComponent_Aliases(t *testing.T) {
	if c, ok := core.ParseComponent("G2P"); !ok || c != core.Phon {
		t.Fatalf("G2P should alias PHON, got %v %v", c, ok)
	}
	if c, ok := core.ParseComponent("MWE"); !ok || c != core.Lex {
		t.Fatalf("MWE should alias LEX, got %v %v", c, ok)
	}
	if _, ok := core.ParseComponent("NOPE"); ok {
		t.Fatalf("expected unknown tag to fail")
	}
}
