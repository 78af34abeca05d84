package pmi_test

import (
	"math"
	"strings"
	"testing"

	"github.com/kairoslang/lexcore/pmi"
)

func TestPMI_FixedPhrase(t *testing.T) {
	// Scenario 5 from §8: "new york" appears 4 times in 14 tokens,
	// "new" and "york" never appear separately. Window = 5.
	tokens := strings.Fields(strings.Repeat("new york ", 4) + "the quick brown fox jumps over")
	calc := pmi.New(5)
	calc.Index(tokens)

	got, ok := calc.PMI("new", "york")
	if !ok {
		t.Fatal("expected PMI(new,york) to be defined")
	}
	if got <= 0 {
		t.Fatalf("expected pmi(new,york) > 0, got %v", got)
	}

	gotOther, ok := calc.PMI("new", "the")
	if ok && gotOther >= got {
		t.Fatalf("expected pmi(new,york) > pmi(new,the): %v vs %v", got, gotOther)
	}
}

func TestPMI_Symmetric(t *testing.T) {
	tokens := strings.Fields("the cat sat on the mat and the cat slept")
	calc := pmi.New(3)
	calc.Index(tokens)

	xy, okXY := calc.PMI("cat", "sat")
	yx, okYX := calc.PMI("sat", "cat")
	if okXY != okYX {
		t.Fatal("expected PMI symmetry in definedness")
	}
	if okXY && (xy-yx) > 1e-9 {
		t.Fatalf("expected pmi(x,y) == pmi(y,x), got %v vs %v", xy, yx)
	}
}

func TestPMI_UnknownPairReturnsFalse(t *testing.T) {
	calc := pmi.New(1)
	calc.Index(strings.Fields("a b c"))
	_, ok := calc.PMI("a", "zzz")
	if ok {
		t.Fatal("expected ok=false for an absent word")
	}
	_, ok = calc.PMI("a", "c")
	if ok {
		t.Fatal("expected ok=false for a never-co-occurring pair outside the window")
	}
}

func TestIndex_OrderIndependent(t *testing.T) {
	batchA := strings.Fields("new york new york")
	batchB := strings.Fields("the new york fox")

	calc1 := pmi.New(5)
	calc1.Index(batchA)
	calc1.Index(batchB)

	calc2 := pmi.New(5)
	calc2.Index(batchB)
	calc2.Index(batchA)

	p1, ok1 := calc1.PMI("new", "york")
	p2, ok2 := calc2.PMI("new", "york")
	if ok1 != ok2 || (ok1 && math.Abs(p1-p2) > 1e-9) {
		t.Fatalf("expected index order independence, got %v(%v) vs %v(%v)", p1, ok1, p2, ok2)
	}
}

func TestCollocations_FilteredAndSorted(t *testing.T) {
	tokens := strings.Fields(strings.Repeat("new york ", 6) + strings.Repeat("new jersey ", 1))
	calc := pmi.New(5)
	calc.Index(tokens)

	got := calc.Collocations("new", 5, pmi.DefaultLLRThreshold)
	if len(got) == 0 {
		t.Fatal("expected at least one collocation for 'new'")
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].PMI < got[i].PMI {
			t.Fatal("expected collocations sorted descending by PMI")
		}
	}
}

func TestCollocations_ZeroTopK(t *testing.T) {
	calc := pmi.New(5)
	calc.Index(strings.Fields("a b c"))
	if got := calc.Collocations("a", 0, pmi.DefaultLLRThreshold); got != nil {
		t.Fatalf("expected nil for topK=0, got %v", got)
	}
}
