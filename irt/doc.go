// Package irt implements the Item Response Theory core: the 1PL/2PL/3PL
// probability models, Fisher information, maximum-likelihood ability
// estimation, and Fisher-information-driven next-item selection.
//
// What & why
//
//   - 1PL (Rasch): P(correct | θ,b) = σ(θ-b). Every item has equal
//     discriminating power; difficulty is the only free parameter.
//   - 2PL: P = σ(a(θ-b)). Items vary in how sharply they discriminate
//     between nearby ability levels.
//   - 3PL: P = c + (1-c)σ(a(θ-b)). Adds a non-zero lower asymptote for
//     guessing, appropriate for multiple-choice items.
//
// Fisher information I(θ) quantifies how much a response at θ narrows the
// estimate of θ; it is the selection criterion for "what to present next"
// (MaxInformation) and feeds the SE = 1/√ΣI formula used after MLE.
//
// θ estimation is offered two ways:
//
//   - EstimateMLE — Newton-Raphson on the log-likelihood, bounded to 30
//     iterations with a bounded step size, converging when |Δθ| < 1e-4.
//     Diverges on all-correct/all-incorrect patterns; per §7 this is never
//     surfaced as an error — EstimateTheta detects the non-convergence and
//     falls back to EAP internally.
//   - EstimateEAP (in the quadrature subpackage) — Expected A Posteriori via
//     fixed-node Gauss-Hermite quadrature; never diverges, by contract.
//
// Complexity: every operation here is O(items · iterations) with iterations
// bounded at 30 (MLE) or the quadrature node count (5/11/21/41). There is no
// unbounded loop anywhere in this package.
package irt
