package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/cvtool/ir"
)

// MustString returns node as compact JSON, panicking on error.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeWire(true)); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
