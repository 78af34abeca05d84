package transfer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kairoslang/lexcore/core"
)

// componentCoefficient extracts the coefficient matching a core.Component
// from a Coefficients set. Orthographic has no core.Component counterpart
// (it governs script/spelling concerns handled outside the five-component
// cascade), so it is exposed separately via OrthographicGain.
func componentCoefficient(c Coefficients, comp core.Component) float64 {
	switch comp {
	case core.Phon:
		return c.Phonological
	case core.Morph:
		return c.Morphological
	case core.Lex:
		return c.Lexical
	case core.Synt:
		return c.Syntactic
	case core.Prag:
		return c.Pragmatic
	default:
		return 0
	}
}

// GainFor returns the [0,1] transfer gain for one (L1, L2, component)
// triple: gain = (coefficient + 1)/2, §4.8.
func GainFor(l1, l2 Family, comp core.Component) float64 {
	coeff := componentCoefficient(Lookup(l1, l2), comp)
	return (coeff + 1) / 2
}

// OrthographicGain returns the script/spelling transfer gain, used by
// Describe rather than by the five-component cascade.
func OrthographicGain(l1, l2 Family) float64 {
	return (Lookup(l1, l2).Orthographic + 1) / 2
}

// Summary is a narrative description of one (L1, L2) transfer profile,
// used by UX collaborators per §4.8.
type Summary struct {
	Strengths       []string
	Challenges      []string
	Recommendations []string
}

const (
	strengthThreshold  = 0.6
	challengeThreshold = 0.4
)

var componentLabels = []struct {
	comp  core.Component
	label string
}{
	{core.Lex, "vocabulary"},
	{core.Morph, "morphology"},
	{core.Phon, "pronunciation"},
	{core.Synt, "syntax"},
	{core.Prag, "pragmatics"},
}

// Describe builds a Summary for (l1, l2) by bucketing each component's
// gain into a strength, a challenge, or neither.
func Describe(l1, l2 Family) Summary {
	var s Summary
	for _, cl := range componentLabels {
		gain := GainFor(l1, l2, cl.comp)
		switch {
		case gain >= strengthThreshold:
			s.Strengths = append(s.Strengths, cl.label)
		case gain <= challengeThreshold:
			s.Challenges = append(s.Challenges, cl.label)
		}
	}
	orthoGain := OrthographicGain(l1, l2)
	switch {
	case orthoGain >= strengthThreshold:
		s.Strengths = append(s.Strengths, "script/orthography")
	case orthoGain <= challengeThreshold:
		s.Challenges = append(s.Challenges, "script/orthography")
	}

	sort.Strings(s.Strengths)
	sort.Strings(s.Challenges)

	for _, c := range s.Challenges {
		s.Recommendations = append(s.Recommendations, fmt.Sprintf("schedule extra scaffolded practice in %s", c))
	}
	if len(s.Challenges) == 0 {
		s.Recommendations = append(s.Recommendations, "no strong negative transfer detected; standard pacing applies")
	}
	return s
}

// Narrative renders a Summary as a short paragraph for display.
func (s Summary) Narrative() string {
	var b strings.Builder
	if len(s.Strengths) > 0 {
		fmt.Fprintf(&b, "Likely strengths from L1 transfer: %s. ", strings.Join(s.Strengths, ", "))
	}
	if len(s.Challenges) > 0 {
		fmt.Fprintf(&b, "Likely challenges: %s. ", strings.Join(s.Challenges, ", "))
	}
	if len(s.Recommendations) > 0 {
		fmt.Fprintf(&b, "Recommendation: %s.", strings.Join(s.Recommendations, "; "))
	}
	return strings.TrimSpace(b.String())
}
