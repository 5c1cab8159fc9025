// Package eval evaluates read-only expressions over a document.
//
// Expressions use the expr language (github.com/expr-lang/expr).  Each
// top-level field of the document is a variable, and the whole document is
// available as doc:
//
//	basic.name
//	len(education) > 0 && education[0].school == "MIT"
//	map(experience, .company)
//	getpath("workExperience[0].company")
//
// Objects reach expressions as maps, so object values in results have
// their keys sorted.
//
// # Related Packages
//
//   - github.com/signadot/cvtool/edit - Path resolution used by getpath
package eval
