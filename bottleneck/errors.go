package bottleneck

import "errors"

// ErrInsufficientSamples indicates fewer responses were supplied than
// Config.MinResponses requires for a confident analysis, §7
// (InsufficientSamples: "report with null primaryBottleneck, low
// confidence" — surfaced via Report.InsufficientSamples rather than an
// error return, since §7 says this kind does not abort the call).
var ErrInsufficientSamples = errors.New("bottleneck: insufficient samples")
