// Package encode encodes IR nodes to JSON or YAML text.
//
// # Usage
//
//	// Indented JSON
//	err := encode.Encode(node, os.Stdout)
//
//	// One line of JSON
//	err := encode.Encode(node, w, encode.EncodeWire(true))
//
//	// YAML
//	err := encode.Encode(node, w, encode.EncodeFormat(format.YAMLFormat))
//
// Object keys are written in document order.  Strings are not html
// escaped.  Colors apply to JSON output only.
//
// # Related Packages
//
//   - github.com/signadot/cvtool/ir - IR representation
//   - github.com/signadot/cvtool/parse - Parse text to IR
package encode
