package quadrature

import (
	"errors"
	"math"
)

// ErrUnsupportedNodeCount indicates n is not one of the four tabulated
// quadrature sizes, §6 ("quadrature_nodes ∈ {5, 11, 21, 41}").
var ErrUnsupportedNodeCount = errors.New("quadrature: node count must be one of 5, 11, 21, 41")

// SupportedNodeCounts are the tabulated Gauss-Hermite orders, §4.1.
var SupportedNodeCounts = []int{5, 11, 21, 41}

// Node is one (abscissa, weight) pair of the physicists' Gauss-Hermite rule
// (weight function e^{-x²}).
type Node struct {
	X float64
	W float64
}

var tableCache = map[int][]Node{}

// init builds every supported table once; tableCache is only read after.
func init() {
	for _, n := range SupportedNodeCounts {
		tableCache[n] = computeHermiteRule(n)
	}
}

// Nodes returns the physicists' Gauss-Hermite node/weight table of order
// n, built once at package initialization. Nodes are produced via
// the Golub-Welsch method — the eigenvalues of the symmetric tridiagonal
// Jacobi matrix for the Hermite recurrence are the abscissas, and the
// weights are derived from the first component of each normalized
// eigenvector — rather than hand-transcribed magic constants, following the
// same "diagonalize a small symmetric matrix" idiom used elsewhere in this
// ecosystem for graph Laplacians.
func Nodes(n int) ([]Node, error) {
	supported := false
	for _, s := range SupportedNodeCounts {
		if s == n {
			supported = true
			break
		}
	}
	if !supported {
		return nil, ErrUnsupportedNodeCount
	}
	return tableCache[n], nil
}

// computeHermiteRule builds the order-n physicists' Gauss-Hermite rule via
// Golub-Welsch: the Jacobi matrix for the Hermite recurrence is symmetric
// tridiagonal with zero diagonal and off-diagonals β_i = sqrt(i/2),
// i=1..n-1. Its eigenvalues are the quadrature nodes; weight_i =
// sqrt(π)·(first eigenvector component)².
func computeHermiteRule(n int) []Node {
	diag := make([]float64, n)
	offDiag := make([]float64, n-1)
	for i := 1; i < n; i++ {
		offDiag[i-1] = math.Sqrt(float64(i) / 2)
	}

	eigvals, firstComponents := symmetricTridiagonalEigen(diag, offDiag)

	nodes := make([]Node, n)
	for i := 0; i < n; i++ {
		nodes[i] = Node{
			X: eigvals[i],
			W: math.Sqrt(math.Pi) * firstComponents[i] * firstComponents[i],
		}
	}
	return nodes
}

// maxJacobiSweeps bounds the Jacobi-rotation eigensolver below, satisfying
// the "no unbounded loop" requirement of §5. One sweep counts as n(n-1)/2
// rotations, one per off-diagonal pair.
const maxJacobiSweeps = 100

// symmetricTridiagonalEigen diagonalizes the symmetric tridiagonal matrix
// given by diag/offDiag using classical Jacobi rotations, each zeroing the
// largest remaining off-diagonal entry (the same rotation
// update used elsewhere in this ecosystem for dense symmetric matrices,
// here applied to the small tridiagonal case that Golub-Welsch needs).
// Returns eigenvalues and, for each, the first component of its normalized
// eigenvector (all that EAP weighting needs).
func symmetricTridiagonalEigen(diag, offDiag []float64) (eigvals []float64, firstComponents []float64) {
	n := len(diag)
	A := make([][]float64, n)
	for i := range A {
		A[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		A[i][i] = diag[i]
	}
	for i := 0; i < n-1; i++ {
		A[i][i+1] = offDiag[i]
		A[i+1][i] = offDiag[i]
	}

	Q := make([][]float64, n)
	for i := range Q {
		Q[i] = make([]float64, n)
		Q[i][i] = 1
	}

	const tol = 1e-12
	for rot := 0; rot < maxJacobiSweeps*n*(n-1)/2; rot++ {
		maxOff := 0.0
		p, q := 0, 1
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if math.Abs(A[i][j]) > maxOff {
					maxOff = math.Abs(A[i][j])
					p, q = i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		app, aqq, apq := A[p][p], A[q][q], A[p][q]
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < n; i++ {
			if i != p && i != q {
				aip, aiq := A[i][p], A[i][q]
				A[i][p] = c*aip - s*aiq
				A[p][i] = A[i][p]
				A[i][q] = s*aip + c*aiq
				A[q][i] = A[i][q]
			}
		}
		A[p][p] = c*c*app - 2*c*s*apq + s*s*aqq
		A[q][q] = s*s*app + 2*c*s*apq + c*c*aqq
		A[p][q] = 0
		A[q][p] = 0

		for i := 0; i < n; i++ {
			qip, qiq := Q[i][p], Q[i][q]
			Q[i][p] = c*qip - s*qiq
			Q[i][q] = s*qip + c*qiq
		}
	}

	eigvals = make([]float64, n)
	firstComponents = make([]float64, n)
	for i := 0; i < n; i++ {
		eigvals[i] = A[i][i]
		firstComponents[i] = Q[0][i]
	}
	return eigvals, firstComponents
}
