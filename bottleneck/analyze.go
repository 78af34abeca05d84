package bottleneck

import (
	"fmt"
	"time"

	"github.com/kairoslang/lexcore/core"
)

// Config configures Analyze, §6 ("bottleneck.min_responses",
// "bottleneck.error_rate_threshold").
type Config struct {
	MinResponses       int
	ErrorRateThreshold float64
	CoOccurrenceWindow time.Duration
}

// DefaultConfig returns the §4.7/§6 defaults: minimum 20 responses,
// error-rate threshold 0.3, and a 10-minute co-occurrence window (§4.7
// names "co-occurring errors in the same session" without pinning a
// duration; 10 minutes approximates one study session without requiring a
// session-ID field on core.Response).
func DefaultConfig() Config {
	return Config{MinResponses: 20, ErrorRateThreshold: 0.3, CoOccurrenceWindow: 10 * time.Minute}
}

// ComponentResponse is one response reduced to what bottleneck analysis
// needs: which cascade component it targeted, whether it was correct, and
// when. Callers derive Component from the response's item via the catalog
// before calling Analyze, since core.Response itself only carries an
// ItemID.
type ComponentResponse struct {
	Component core.Component
	Correct   bool
	At        time.Time
}

// Evidence is the per-component analysis result, §4.7.
type Evidence struct {
	Component         core.Component
	Attempts          int
	ErrorRate         float64
	ImprovementTrend  float64 // avg(last-half correct) - avg(first-half correct)
	CoOccurringErrors int
}

// Report is the output of Analyze, §4.7.
type Report struct {
	PrimaryBottleneck    core.Component
	HasPrimaryBottleneck bool
	Evidence             []Evidence
	Confidence           float64
	Recommendation       string
	InsufficientSamples  bool
}

// Analyze computes per-component error rate and trend over the cascade
// order PHON->MORPH->LEX->SYNT->PRAG, then flags the earliest component in
// cascade order whose error rate crosses threshold AND which has at least
// one downstream component also crossing threshold with co-occurring
// failures, §4.7. Calling Analyze twice on the same responses slice yields
// an identical Report (§8 idempotence) since it performs no mutation and
// reads no global clock.
func Analyze(responses []ComponentResponse, cfg Config) Report {
	byComponent := groupByComponent(responses)

	evidence := make([]Evidence, 0, len(core.Components()))
	for _, c := range core.Components() {
		evidence = append(evidence, evidenceFor(c, byComponent[c], byComponent, cfg))
	}

	if len(responses) < cfg.MinResponses {
		return Report{
			Evidence:            evidence,
			InsufficientSamples: true,
			Confidence:          confidence(len(responses), cfg.MinResponses),
		}
	}

	primary, found := rootCause(evidence, cfg)
	report := Report{
		Evidence:             evidence,
		HasPrimaryBottleneck: found,
		Confidence:           confidence(len(responses), cfg.MinResponses),
	}
	if found {
		report.PrimaryBottleneck = primary
		report.Recommendation = recommendationFor(primary)
	}
	return report
}

func groupByComponent(responses []ComponentResponse) map[core.Component][]ComponentResponse {
	out := make(map[core.Component][]ComponentResponse)
	for _, r := range responses {
		out[r.Component] = append(out[r.Component], r)
	}
	return out
}

func evidenceFor(c core.Component, resp []ComponentResponse, all map[core.Component][]ComponentResponse, cfg Config) Evidence {
	ev := Evidence{Component: c, Attempts: len(resp)}
	if len(resp) == 0 {
		return ev
	}

	var failures int
	for _, r := range resp {
		if !r.Correct {
			failures++
		}
	}
	ev.ErrorRate = float64(failures) / float64(len(resp))
	ev.ImprovementTrend = trend(resp)
	ev.CoOccurringErrors = coOccurringErrors(c, resp, all, cfg)
	return ev
}

// trend returns avg(last-half correct) - avg(first-half correct).
func trend(resp []ComponentResponse) float64 {
	n := len(resp)
	if n < 2 {
		return 0
	}
	half := n / 2
	firstAvg := avgCorrect(resp[:half])
	lastAvg := avgCorrect(resp[n-half:])
	return lastAvg - firstAvg
}

func avgCorrect(resp []ComponentResponse) float64 {
	if len(resp) == 0 {
		return 0
	}
	var sum float64
	for _, r := range resp {
		if r.Correct {
			sum++
		}
	}
	return sum / float64(len(resp))
}

// coOccurringErrors counts failures in c that fall within cfg's time
// window of a failure in any downstream cascade component.
func coOccurringErrors(c core.Component, resp []ComponentResponse, all map[core.Component][]ComponentResponse, cfg Config) int {
	downstream := downstreamOf(c)
	var count int
	for _, r := range resp {
		if r.Correct {
			continue
		}
		for _, d := range downstream {
			if hasNearbyFailure(r.At, all[d], cfg.CoOccurrenceWindow) {
				count++
				break
			}
		}
	}
	return count
}

func hasNearbyFailure(at time.Time, resp []ComponentResponse, window time.Duration) bool {
	for _, r := range resp {
		if r.Correct {
			continue
		}
		diff := r.At.Sub(at)
		if diff < 0 {
			diff = -diff
		}
		if diff <= window {
			return true
		}
	}
	return false
}

func downstreamOf(c core.Component) []core.Component {
	order := core.Components()
	var idx int
	for i, o := range order {
		if o == c {
			idx = i
			break
		}
	}
	if idx+1 >= len(order) {
		return nil
	}
	return order[idx+1:]
}

// rootCause returns the earliest cascade component whose error rate meets
// threshold and which has at least one downstream component also at
// threshold with co-occurring failures, §4.7.
func rootCause(evidence []Evidence, cfg Config) (core.Component, bool) {
	flagged := make(map[core.Component]bool)
	for _, e := range evidence {
		if e.Attempts > 0 && e.ErrorRate >= cfg.ErrorRateThreshold {
			flagged[e.Component] = true
		}
	}
	for _, e := range evidence {
		if !flagged[e.Component] {
			continue
		}
		for _, d := range downstreamOf(e.Component) {
			if flagged[d] && coOccurrenceBetween(e, evidence, d) {
				return e.Component, true
			}
		}
	}
	return 0, false
}

func coOccurrenceBetween(e Evidence, all []Evidence, downstream core.Component) bool {
	if e.CoOccurringErrors > 0 {
		return true
	}
	for _, other := range all {
		if other.Component == downstream && other.CoOccurringErrors > 0 {
			return true
		}
	}
	return false
}

func confidence(n, min int) float64 {
	if min <= 0 {
		return 1
	}
	c := float64(n) / float64(min)
	if c > 1 {
		return 1
	}
	return c
}

func recommendationFor(c core.Component) string {
	switch c {
	case core.Phon:
		return "focus on phonology: add minimal-pair listening and pronunciation drills before advancing downstream components"
	case core.Morph:
		return "focus on morphology: drill inflection and word-formation patterns"
	case core.Lex:
		return "focus on vocabulary: increase exposure to high-frequency lexical items"
	case core.Synt:
		return "focus on syntax: add structured sentence-construction practice"
	case core.Prag:
		return "focus on pragmatics: practice register and politeness-strategy selection"
	default:
		return fmt.Sprintf("focus on %s", c)
	}
}
