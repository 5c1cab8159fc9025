package parse

import "github.com/signadot/cvtool/format"

type parseOpts struct {
	format   format.Format
	document bool
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// RequireObject makes Parse fail with ErrNotObject unless the input is an
// object.
func RequireObject() ParseOption {
	return func(o *parseOpts) { o.document = true }
}
