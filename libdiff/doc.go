// Package libdiff compares two versions of a document.
//
// Lines gives a line diff of the indented JSON of each version, Paths lists
// the paths whose values differ, and MergePatch produces an RFC 7386 merge
// patch taking one version to the other.
package libdiff
