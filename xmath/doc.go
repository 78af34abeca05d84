// Package xmath holds the handful of small, pure numeric helpers shared by
// every algorithm package in this module: clamping, the logistic sigmoid,
// linear interpolation, and piecewise-linear ramps.
//
// Graph-traversal packages elsewhere in this ecosystem favor small, total,
// boundary-safe pure helpers behind an early-exit, visited-set idiom.
// Neither a generic BFS nor DFS has a role here: the one traversal this
// engine performs (the bottleneck cascade, PHON→MORPH→LEX→SYNT→PRAG) is a
// fixed five-step linear walk, not a general graph, so it is implemented
// directly in package bottleneck rather than through a generic graph
// package. This package keeps that one idiom — small, total, boundary-safe
// pure functions — generalized to the arithmetic every layer of the engine
// needs.
package xmath
