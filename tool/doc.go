// Package tool maps agent tool calls onto document reads and edits.
//
// Three tools are exposed: CVReader reads the value at a path (or the whole
// document), CVEditor applies one edit and CVBatchEditor applies a list of
// edits with each failure recorded independently.  Before an edit reaches
// package edit, its path is rewritten through an alias table and, for a
// small set of registered (path, action) pairs, its value is converted by a
// Normalizer.
//
// Dispatch never returns an error and never panics: every failure becomes a
// Result with status "error".
package tool
