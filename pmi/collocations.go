package pmi

import "sort"

// Collocation is one ranked co-occurring word, §4.9.
type Collocation struct {
	Word string
	PMI  float64
	LLR  float64
}

// Collocations returns the top-K words co-occurring with w, filtered to
// pairs whose LLR meets threshold and sorted descending by PMI, §4.9.
func (c *Calculator) Collocations(w string, topK int, llrThreshold float64) []Collocation {
	if topK <= 0 {
		return nil
	}
	norm := normalizeWord(w)

	c.mu.RLock()
	var candidates []string
	for k := range c.pairCounts {
		switch {
		case k.a == norm:
			candidates = append(candidates, k.b)
		case k.b == norm:
			candidates = append(candidates, k.a)
		}
	}
	c.mu.RUnlock()

	var out []Collocation
	for _, other := range candidates {
		llr, ok := c.LLR(norm, other)
		if !ok || llr < llrThreshold {
			continue
		}
		pmiVal, ok := c.PMI(norm, other)
		if !ok {
			continue
		}
		out = append(out, Collocation{Word: other, PMI: pmiVal, LLR: llr})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PMI != out[j].PMI {
			return out[i].PMI > out[j].PMI
		}
		return out[i].Word < out[j].Word
	})
	if len(out) > topK {
		out = out[:topK]
	}
	return out
}
