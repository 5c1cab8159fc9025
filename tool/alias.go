package tool

import (
	"maps"
	"slices"
	"strings"

	"github.com/signadot/cvtool/debug"
)

// Aliases maps alternate top-level field names to canonical ones.
type Aliases map[string]string

var defaultAliases = Aliases{
	"workExperience":    "experience",
	"projectExperience": "projects",
	"skills":            "skillContent",
	"certificates":      "awards",
}

// DefaultAliases returns a copy of the built-in alias table.
func DefaultAliases() Aliases {
	return maps.Clone(defaultAliases)
}

// Rewrite replaces a leading alias in path by its canonical name.  The
// alias must be the whole path or be followed by '.' or '['; the rest of
// path is kept as is.  Only the first segment is ever rewritten.
func (a Aliases) Rewrite(path string) string {
	end := strings.IndexAny(path, ".[")
	if end == -1 {
		end = len(path)
	}
	canon, ok := a[path[:end]]
	if !ok {
		return path
	}
	res := canon + path[end:]
	if debug.Alias() {
		debug.Logf("alias %s -> %s\n", path, res)
	}
	return res
}

// Names returns the aliases in sorted order.
func (a Aliases) Names() []string {
	return slices.Sorted(maps.Keys(a))
}

// Merge returns a new table with the entries of o added to or replacing
// those of a.
func (a Aliases) Merge(o Aliases) Aliases {
	res := maps.Clone(a)
	if res == nil {
		res = Aliases{}
	}
	maps.Copy(res, o)
	return res
}
