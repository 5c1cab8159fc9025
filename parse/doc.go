// Package parse decodes JSON and YAML text into IR.
//
// Both formats keep object keys in the order they are written.  YAML is
// the default, and since it is a superset of JSON, a JSON document parses
// either way; ParseJSON is stricter and faster.
//
// # Usage
//
//	doc, err := parse.Parse(data, parse.RequireObject())
//	value, err := parse.Parse([]byte(`{school: MIT}`))
//
// # Related Packages
//
//   - github.com/signadot/cvtool/encode - Encode IR to text
package parse
