// Package taskselector picks a task type, format, and modality for the
// next presentation, §4.5: stage gating is a strict hard constraint, then
// within the allowed set a z-vector affinity rule scores each candidate
// type, a variety filter excludes types seen in the last N choices, and
// format/modality follow separate threshold rules.
//
// Grounded on the tsp package for the idiom of picking one
// candidate out of a constrained, heuristically-scored set under a hard
// feasibility filter (there: tour feasibility; here: stage gating),
// trimmed drastically since this selector needs no search — only a single
// filter-then-score-then-pick pass.
package taskselector
