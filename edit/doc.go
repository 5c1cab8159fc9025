// Package edit reads and mutates documents at paths.
//
// Get resolves a parsed path to a Location, Apply performs one update, add
// or delete, and ApplyAll runs a list of edits in order with each failure
// recorded rather than stopping the run.
//
// All operations work in place on the document they are given and keep no
// reference to it afterwards.  There is no locking: callers issue one
// operation at a time per document.
//
// # Delete
//
// Deleting a top-level field does not remove it; the field is reset to the
// empty value of its kind ([] for arrays, "" for strings, {} for objects,
// null otherwise) so that the top-level shape of a document survives.
// Deleting anything deeper removes it, splicing array elements.
//
// # Add
//
// Add always appends to an array.  If the path holds something else it is
// replaced by an empty array first.
package edit
