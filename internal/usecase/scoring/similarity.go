package scoring

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// cosine returns the cosine similarity of two vectors, 0 when either vector
// is empty, zero-length or mismatched in dimension.
func cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	dot := floats.Dot(a, b)
	na := math.Sqrt(floats.Dot(a, a))
	nb := math.Sqrt(floats.Dot(b, b))
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (na * nb)
}

// maxSimilarity returns the maximum cosine similarity over all pairs, or 0
// when either side is empty.
func maxSimilarity(xs, ys [][]float64) float64 {
	if len(xs) == 0 || len(ys) == 0 {
		return 0
	}
	best := math.Inf(-1)
	for _, x := range xs {
		for _, y := range ys {
			if sim := cosine(x, y); sim > best {
				best = sim
			}
		}
	}
	return best
}

// bestMatch returns, for each candidate vector, its maximum similarity to
// any anchor, then picks the candidate with the highest such value. Ties
// resolve to the earliest candidate.
func bestMatch(candidates, anchors [][]float64) (idx int, sim float64) {
	sim = math.Inf(-1)
	for i, c := range candidates {
		rowBest := math.Inf(-1)
		for _, a := range anchors {
			if s := cosine(c, a); s > rowBest {
				rowBest = s
			}
		}
		if rowBest > sim {
			sim = rowBest
			idx = i
		}
	}
	return idx, sim
}
