package transfer_test

import (
	"testing"

	"github.com/kairoslang/lexcore/core"
	"github.com/kairoslang/lexcore/transfer"
)

func TestParseFamily_Aliases(t *testing.T) {
	cases := map[string]transfer.Family{
		"en":      transfer.Germanic,
		"Spanish": transfer.Romance,
		"ru":      transfer.Slavic,
		"zh":      transfer.SinoTibetan,
		"ja":      transfer.Japonic,
		"ko":      transfer.Koreanic,
		"ar":      transfer.Semitic,
		"klingon": transfer.Other,
	}
	for tag, want := range cases {
		if got := transfer.ParseFamily(tag); got != want {
			t.Fatalf("ParseFamily(%q) = %v, want %v", tag, got, want)
		}
	}
}

func TestGainFor_SameFamilyStrongerThanDistant(t *testing.T) {
	same := transfer.GainFor(transfer.Romance, transfer.Romance, core.Lex)
	distant := transfer.GainFor(transfer.Germanic, transfer.Semitic, core.Lex)
	if same <= distant {
		t.Fatalf("expected same-family gain %v to exceed distant-family gain %v", same, distant)
	}
	if same < 0 || same > 1 {
		t.Fatalf("expected gain in [0,1], got %v", same)
	}
}

func TestGainFor_AllComponentsInRange(t *testing.T) {
	for l1 := transfer.Germanic; l1 <= transfer.Other; l1++ {
		for l2 := transfer.Germanic; l2 <= transfer.Other; l2++ {
			for _, comp := range core.Components() {
				gain := transfer.GainFor(l1, l2, comp)
				if gain < 0 || gain > 1 {
					t.Fatalf("GainFor(%v,%v,%v) = %v out of [0,1]", l1, l2, comp, gain)
				}
			}
		}
	}
}

func TestDescribe_ProducesNarrative(t *testing.T) {
	summary := transfer.Describe(transfer.Germanic, transfer.Semitic)
	if len(summary.Challenges) == 0 {
		t.Fatal("expected at least one challenge for a distant family pair")
	}
	if summary.Narrative() == "" {
		t.Fatal("expected a non-empty narrative")
	}
}
