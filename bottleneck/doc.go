// Package bottleneck implements the cascade-bottleneck analyzer, §4.7:
// over the last M responses grouped by component (fixed cascade order
// PHON -> MORPH -> LEX -> SYNT -> PRAG), it computes per-component error
// rate and improvement trend, then flags the earliest cascade component
// whose error rate and downstream co-occurrence both cross threshold as
// the root-cause bottleneck.
//
// Analysis is a pure function of its response batch — the same batch
// analyzed twice yields identical output, §8's idempotence property — so
// this package folds the traversal in directly as a flat loop over
// core.Components() rather than reaching for a general graph-traversal
// package; a bfs/dfs abstraction would buy nothing a fixed five-step
// linear scan doesn't already give for free.
package bottleneck
