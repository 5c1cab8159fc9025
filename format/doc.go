// Package format names the document formats cvtool reads and writes.
//
// # Related Packages
//
//   - github.com/signadot/cvtool/parse - Parse text to IR
//   - github.com/signadot/cvtool/encode - Encode IR to text
package format
