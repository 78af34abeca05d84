package calibrator

import (
	"strings"
	"unicode"

	"github.com/kairoslang/lexcore/core"
)

// partialCreditThreshold is the §4.6 similarity cutoff above which a
// response is scored "correct" despite not matching exactly.
const partialCreditThreshold = 0.9

// TargetEvaluation is one target's evaluation result, §4.6. CoreKind is
// Kind mapped to core's closed ErrorKind enumeration via AsCoreErrorKind,
// the form a host persists or reports.
type TargetEvaluation struct {
	PartialCredit float64
	Correct       bool
	Kind          ErrorKindResult
	CoreKind      core.ErrorKind
}

// ErrorKindResult names the classified mismatch, using calibrator's own
// type so this package stays independent of core's closed ErrorKind for
// its internal scoring; callers map to core.ErrorKind at the boundary via
// AsCoreErrorKind.
type ErrorKindResult int

const (
	KindNone ErrorKindResult = iota
	KindOmission
	KindSubstitution
	KindForm
	KindOther
)

// AsCoreErrorKind maps k to core's closed ErrorKind enumeration, the
// boundary conversion TargetEvaluation.CoreKind applies automatically.
func (k ErrorKindResult) AsCoreErrorKind() core.ErrorKind {
	switch k {
	case KindOmission:
		return core.ErrorOmission
	case KindSubstitution:
		return core.ErrorSubstitution
	case KindForm:
		return core.ErrorForm
	case KindOther:
		return core.ErrorOther
	default:
		return core.ErrorNone
	}
}

// normalize applies the string normalization used throughout this module
// for comparisons: trims space, lowercases, and collapses internal
// whitespace runs. No Unicode NFC composition is applied.
func normalize(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	var b strings.Builder
	lastSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastSpace {
				b.WriteRune(' ')
			}
			lastSpace = true
			continue
		}
		lastSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// MorphDistance computes the Levenshtein edit distance between expected and
// got, reusing the dtw package's dynamic-programming alignment shape with
// a unit substitution/insertion/deletion cost instead of a Euclidean one.
// It also classifies the mismatch kind from the distance and substring
// relationship, §4.6.
func MorphDistance(expected, got string) (editDistance int, kind ErrorKindResult) {
	e, g := normalize(expected), normalize(got)
	if e == g {
		return 0, KindNone
	}
	dist := levenshtein(e, g)

	switch {
	case strings.Contains(e, g) && g != "":
		return dist, KindOmission
	case isFormVariant(e, g):
		return dist, KindForm
	case dist <= maxInt(len(e), len(g))/2:
		return dist, KindSubstitution
	default:
		return dist, KindOther
	}
}

// levenshtein computes the edit distance between two strings via a
// dynamic-programming table over runes, the same DP-table shape the
// teacher's dtw package uses for sequence alignment.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n, m := len(ra), len(rb)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}
	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}
	for i := 1; i <= n; i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = minInt3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[m]
}

// isFormVariant heuristically detects a morphological-form mismatch: same
// leading stem, differing suffix, within a short edit distance — e.g.
// "walks" vs "walked".
func isFormVariant(a, b string) bool {
	stem := commonPrefixLen(a, b)
	if stem == 0 {
		return false
	}
	shortest := len(a)
	if len(b) < shortest {
		shortest = len(b)
	}
	return stem >= shortest*2/3 && levenshtein(a, b) <= 3
}

func commonPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

func minInt3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// EvaluateTarget scores one target's response, §4.6: exact normalized
// match scores 1.0; otherwise similarity = 1 - editDistance/maxLen, correct
// iff similarity >= 0.9.
func EvaluateTarget(expected, got string) TargetEvaluation {
	e, g := normalize(expected), normalize(got)
	if e == g {
		return TargetEvaluation{PartialCredit: 1, Correct: true, Kind: KindNone, CoreKind: KindNone.AsCoreErrorKind()}
	}
	dist, kind := MorphDistance(expected, got)
	maxLen := maxInt(len([]rune(e)), len([]rune(g)))
	similarity := 1.0
	if maxLen > 0 {
		similarity = 1 - float64(dist)/float64(maxLen)
	}
	if similarity < 0 {
		similarity = 0
	}
	return TargetEvaluation{
		PartialCredit: similarity,
		Correct:       similarity >= partialCreditThreshold,
		Kind:          kind,
		CoreKind:      kind.AsCoreErrorKind(),
	}
}

// pragmaticFitThreshold is the §4.6 similarity cutoff above which a
// register-shift target is scored "correct".
const pragmaticFitThreshold = 0.9

// PragmaticFit scores how well a politeness strategy matches a target
// register level, in [0,1]. §4.6 only names "form" vs "other" as the
// fallback classification split without pinning a register-compatibility
// table, so this package decides one: formal registers tolerate only
// formal/neutral strategies, informal registers tolerate informal/neutral,
// and a mismatch against an unrecognized register/strategy degrades to a
// neutral 0.5 rather than 0.
func PragmaticFit(registerLevel, politenessStrategy string) float64 {
	register := strings.ToLower(strings.TrimSpace(registerLevel))
	strategy := strings.ToLower(strings.TrimSpace(politenessStrategy))

	compatible := map[string]map[string]float64{
		"formal":   {"formal": 1.0, "neutral": 0.6, "informal": 0.1},
		"neutral":  {"formal": 0.7, "neutral": 1.0, "informal": 0.7},
		"informal": {"formal": 0.1, "neutral": 0.6, "informal": 1.0},
	}
	if row, ok := compatible[register]; ok {
		if v, ok := row[strategy]; ok {
			return v
		}
	}
	return 0.5
}

// EvaluatePragmaticTarget scores a register-shift target via PragmaticFit
// instead of literal text comparison: expected is the target register
// level, got is the learner's chosen politeness strategy. A perfect match
// scores KindNone; a tolerated near-miss (fit >= 0.5, e.g. formal-vs-neutral)
// classifies as KindForm; a harder mismatch (e.g. formal-vs-informal)
// classifies as KindOther, §4.6's form/other fallback split.
func EvaluatePragmaticTarget(expected, got string) TargetEvaluation {
	fit := PragmaticFit(expected, got)
	if fit >= 1 {
		return TargetEvaluation{PartialCredit: fit, Correct: true, Kind: KindNone, CoreKind: KindNone.AsCoreErrorKind()}
	}
	kind := KindOther
	if fit >= 0.5 {
		kind = KindForm
	}
	return TargetEvaluation{
		PartialCredit: fit,
		Correct:       fit >= pragmaticFitThreshold,
		Kind:          kind,
		CoreKind:      kind.AsCoreErrorKind(),
	}
}
