// Package kpath parses the path expressions used to address nodes in a
// document.
//
// A path is a field name followed by any number of field or index
// accessors:
//   - .field - Object field access
//   - [index] - Array index (decimal digits only)
//
// There is no quoting, no wildcard and no leading root marker: the first
// segment is always a field of the document root.
//
// # Usage
//
//	kp, err := kpath.Parse("education[0].school")
//	if errors.Is(err, kpath.ErrUnterminatedBracket) {
//	    // ...
//	}
//
//	last := kp.LastSegment() // "school"
//	parent := kp.Parent()    // "education[0]"
//
// # Numeric fields
//
// "education.0.school" parses to the field segment "0".  Whether it
// addresses an array element is decided when the path is resolved against a
// document; see (*KPath).AsIndex.
//
// # Related Packages
//
//   - github.com/signadot/cvtool/edit - resolves and mutates paths
package kpath
