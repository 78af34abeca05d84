// Package quadrature provides fixed Gauss-Hermite node/weight tables and the
// Expected A Posteriori (EAP) integral used to estimate θ under a Normal
// prior, §4.1.
//
// EAP never diverges: unlike Newton-Raphson MLE, the posterior mean is a
// finite weighted sum over a fixed number of nodes (5, 11, 21, or 41) and
// is well-defined even for all-correct/all-incorrect response patterns,
// where the prior keeps the mean finite. Only when the likelihood is zero
// at every node does EstimateEAP return the prior mean and SD unchanged
// (§7 ZeroLikelihood — never surfaced as an error).
//
// Complexity: O(nodes · items), nodes ∈ {5,11,21,41}, no iteration.
package quadrature
