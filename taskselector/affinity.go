package taskselector

import "github.com/kairoslang/lexcore/core"

// familyForComponent maps the dominant z-component to the task type its
// affinity rule boosts, §4.5. §4.5 names "phonological -> auditory
// modality" rather than a task type; since modality selection already has
// its own phonological threshold rule (§4.5 Modality), this package reuses
// the phonological dominance signal for ListeningComprehension, the one
// task type whose entire premise is the auditory channel.
var familyForComponent = map[zComponent]core.TaskType{
	zMorphological: core.WordFormation,
	zRelational:    core.Collocation,
	zPragmatic:     core.RegisterShift,
	zPhonological:  core.ListeningComprehension,
	zFrequency:     core.RapidResponse,
}

// zComponent identifies which z-vector field is dominant.
type zComponent int

const (
	zFrequency zComponent = iota
	zRelational
	zDomain
	zMorphological
	zPhonological
	zSyntactic
	zPragmatic
)

// dominantComponent returns the field with the highest value in z and that
// value itself.
func dominantComponent(z core.ZVector) (zComponent, float64) {
	best := zFrequency
	bestVal := z.Frequency
	check := func(c zComponent, v float64) {
		if v > bestVal {
			best, bestVal = c, v
		}
	}
	check(zRelational, z.Relational)
	check(zDomain, z.Domain)
	check(zMorphological, z.Morphological)
	check(zPhonological, z.Phonological)
	check(zSyntactic, z.Syntactic)
	check(zPragmatic, z.Pragmatic)
	return best, bestVal
}

// AffinityScore scores one candidate task type against the learner's
// z-vector, §4.5: the dominant component's mapped family gets
// 0.3+dominant*0.7, everything else defaults to 0.4+frequency*0.3.
func AffinityScore(tt core.TaskType, z core.ZVector) float64 {
	dom, val := dominantComponent(z)
	if mapped, ok := familyForComponent[dom]; ok && mapped == tt {
		return 0.3 + val*0.7
	}
	return 0.4 + z.Frequency*0.3
}
