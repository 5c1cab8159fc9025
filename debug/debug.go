package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Path     bool
	Edit     bool
	Batch    bool
	Dispatch bool
	Alias    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Path = boolEnv("CVTOOL_DEBUG_PATH")
	d.Edit = boolEnv("CVTOOL_DEBUG_EDIT")
	d.Batch = boolEnv("CVTOOL_DEBUG_BATCH")
	d.Dispatch = boolEnv("CVTOOL_DEBUG_DISPATCH")
	d.Alias = boolEnv("CVTOOL_DEBUG_ALIAS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Path() bool {
	return d.Path
}
func Edit() bool {
	return d.Edit
}
func Batch() bool {
	return d.Batch
}
func Dispatch() bool {
	return d.Dispatch
}
func Alias() bool {
	return d.Alias
}
