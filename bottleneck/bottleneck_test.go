package bottleneck_test

import (
	"testing"
	"time"

	"github.com/kairoslang/lexcore/bottleneck"
	"github.com/kairoslang/lexcore/core"
)

func buildComponentResponses(comp core.Component, n int, correctFrac float64, base time.Time) []bottleneck.ComponentResponse {
	correctCount := int(float64(n) * correctFrac)
	resp := make([]bottleneck.ComponentResponse, n)
	for i := 0; i < n; i++ {
		resp[i] = bottleneck.ComponentResponse{
			Component: comp,
			Correct:   i < correctCount,
			At:        base.Add(time.Duration(i) * time.Second),
		}
	}
	return resp
}

func TestAnalyze_CascadeRootCause(t *testing.T) {
	// Scenario 4 from §8: 15 PHON at 40% correct, 15 MORPH at 50%, 15
	// LEX at 60%, 15 SYNT at 70% -- all interleaved in the same session so
	// co-occurrence is detected.
	base := time.Date(2026, 7, 31, 9, 0, 0, 0, time.UTC)
	var all []bottleneck.ComponentResponse
	all = append(all, buildComponentResponses(core.Phon, 15, 0.4, base)...)
	all = append(all, buildComponentResponses(core.Morph, 15, 0.5, base)...)
	all = append(all, buildComponentResponses(core.Lex, 15, 0.6, base)...)
	all = append(all, buildComponentResponses(core.Synt, 15, 0.7, base)...)

	cfg := bottleneck.DefaultConfig()
	report := bottleneck.Analyze(all, cfg)

	if !report.HasPrimaryBottleneck {
		t.Fatal("expected a primary bottleneck to be flagged")
	}
	if report.PrimaryBottleneck != core.Phon {
		t.Fatalf("expected PHON as the root-cause bottleneck, got %v", report.PrimaryBottleneck)
	}
	if report.Recommendation == "" {
		t.Fatal("expected a non-empty recommendation")
	}
	foundPositiveCoOccurrence := false
	for _, e := range report.Evidence {
		if e.Component != core.Phon {
			continue
		}
		if e.CoOccurringErrors > 0 {
			foundPositiveCoOccurrence = true
		}
	}
	if !foundPositiveCoOccurrence {
		t.Fatal("expected PHON evidence to list positive co-occurring errors")
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	base := time.Now()
	var all []bottleneck.ComponentResponse
	all = append(all, buildComponentResponses(core.Phon, 15, 0.4, base)...)
	all = append(all, buildComponentResponses(core.Morph, 15, 0.5, base)...)

	cfg := bottleneck.DefaultConfig()
	first := bottleneck.Analyze(all, cfg)
	second := bottleneck.Analyze(all, cfg)
	if first.PrimaryBottleneck != second.PrimaryBottleneck || first.HasPrimaryBottleneck != second.HasPrimaryBottleneck {
		t.Fatal("expected Analyze to be idempotent over the same response batch")
	}
}

func TestAnalyze_InsufficientSamples(t *testing.T) {
	base := time.Now()
	resp := buildComponentResponses(core.Phon, 5, 0.2, base)
	cfg := bottleneck.DefaultConfig()
	report := bottleneck.Analyze(resp, cfg)
	if !report.InsufficientSamples {
		t.Fatal("expected InsufficientSamples for a batch below MinResponses")
	}
	if report.HasPrimaryBottleneck {
		t.Fatal("expected no primary bottleneck to be flagged under insufficient samples")
	}
}
