// Package transfer implements the L1→L2 transfer model, §4.8: a static
// table of six per-(L1 family, L2 family) coefficients in [-1,1] — lexical,
// morphological, phonological, syntactic, pragmatic, orthographic — and the
// per-component gain lookup derived from it (gain = (coefficient+1)/2).
//
// The table is read-only after package initialization, matching §"Shared
// resources" ("static lookup tables... are read-only after initialization.
// They are never mutated by the algorithms"). Grounded structurally on the
// teacher's converterts package (a small static-table lookup with a single
// exported conversion entry point), expanded here from a stub into the full
// eight-family coefficient table plus narrative summary generation.
package transfer
