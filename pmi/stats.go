package pmi

import "math"

// PMI computes log2(p(x,y) / (p(x)*p(y))), §4.9. ok is false when either
// word is absent or the pair never co-occurred (§7 UnknownPair -- "no,
// return None").
func (c *Calculator) PMI(x, y string) (float64, bool) {
	px, py, pxy, ok := c.probabilities(x, y)
	if !ok {
		return 0, false
	}
	return math.Log2(pxy / (px * py)), true
}

// NPMI computes PMI / (-log2 p(x,y)), normalizing PMI to [-1,1], §4.9.
func (c *Calculator) NPMI(x, y string) (float64, bool) {
	_, _, pxy, ok := c.probabilities(x, y)
	if !ok {
		return 0, false
	}
	pmiVal, _ := c.PMI(x, y)
	denom := -math.Log2(pxy)
	if denom == 0 {
		return 0, false
	}
	return pmiVal / denom, true
}

// LLR computes the Dunning log-likelihood ratio for (x,y) using the
// standard 2x2 contingency-table formulation over the indexed corpus,
// §4.9. Values >= DefaultLLRThreshold (3.84, the chi-square critical value
// at p=0.05, 1 degree of freedom) are considered statistically
// significant co-occurrences.
func (c *Calculator) LLR(x, y string) (float64, bool) {
	c.mu.RLock()
	cx := c.wordCounts[normalizeWord(x)]
	cy := c.wordCounts[normalizeWord(y)]
	cxy := c.pairCounts[makePairKey(normalizeWord(x), normalizeWord(y))]
	n := c.totalTokens
	c.mu.RUnlock()

	if cx == 0 || cy == 0 || cxy == 0 || n == 0 {
		return 0, false
	}

	k11 := float64(cxy)
	k12 := float64(cx) - k11
	k21 := float64(cy) - k11
	total := float64(n)
	k22 := total - k11 - k12 - k21
	if k12 < 0 || k21 < 0 || k22 < 0 {
		return 0, false
	}

	rowX := k11 + k12
	rowNotX := k21 + k22
	colY := k11 + k21
	colNotY := k12 + k22

	expected := func(row, col float64) float64 {
		if total == 0 {
			return 0
		}
		return row * col / total
	}

	g2 := 2 * (gTerm(k11, expected(rowX, colY)) +
		gTerm(k12, expected(rowX, colNotY)) +
		gTerm(k21, expected(rowNotX, colY)) +
		gTerm(k22, expected(rowNotX, colNotY)))
	if math.IsNaN(g2) || g2 < 0 {
		return 0, true
	}
	return g2, true
}

// gTerm computes one observed*ln(observed/expected) term of the
// log-likelihood-ratio statistic, defined as 0 when observed is 0.
func gTerm(observed, expected float64) float64 {
	if observed <= 0 || expected <= 0 {
		return 0
	}
	return observed * math.Log(observed/expected)
}
