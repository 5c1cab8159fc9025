package kpath

import (
	"bytes"
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// KPath is a parsed path expression: a chain of segments, each either an
// object field or an array index.
//
//   - "a.b" → Field "a", then Field "b"
//   - "a[0]" → Field "a", then Index 0
//   - "a.0" → Field "a", then Field "0"
type KPath struct {
	Field *string // Object field name (e.g., "a", "b")
	Index *int    // Array index (e.g., 0, 1)
	Next  *KPath  // Next segment in path (nil for leaf)
}

// Field returns a single field segment.
func Field(name string) *KPath {
	return &KPath{Field: &name}
}

// Index returns a single index segment.
func Index(i int) *KPath {
	return &KPath{Index: &i}
}

// String returns the path string representation of this KPath.
// Example:
//
//	KPath{Field: &"a", Next: &KPath{Field: &"b"}} → "a.b"
//	KPath{Field: &"a", Next: &KPath{Index: &0}} → "a[0]"
func (p *KPath) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		if x.Field != nil {
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(*x.Field)
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// SegmentString returns the string form of this single segment only:
// "a" for a field, "[0]" for an index.
func (p *KPath) SegmentString() string {
	if p == nil {
		return ""
	}
	if p.Field != nil {
		return *p.Field
	}
	if p.Index != nil {
		return fmt.Sprintf("[%d]", *p.Index)
	}
	return ""
}

// Parse parses a path string into a KPath structure.
//
// Syntax:
//
//	path := field ( '.' field | '[' digits ']' )*
//
// where a field is one or more characters other than '.', '[' and ']'.
//
// Examples:
//   - "basic.name" → 2 field segments
//   - "education[0].school" → field, index, field
//   - "a[0][1]" → field, index, index
//
// Errors match ErrParse and one of ErrEmptyPath, ErrEmptySegment,
// ErrUnterminatedBracket, ErrNonNumericIndex or ErrUnexpectedChar.
func Parse(kpath string) (*KPath, error) {
	if kpath == "" {
		return nil, parseErr("", 0, ErrEmptyPath)
	}
	root := &KPath{}
	if err := parseKFrag(kpath, 0, root); err != nil {
		return nil, err
	}
	return root, nil
}

// MustParse is like Parse but panics on error.  It is meant for
// constant paths.
func MustParse(kpath string) *KPath {
	kp, err := Parse(kpath)
	if err != nil {
		panic(err)
	}
	return kp
}

// parseKFrag parses the fragment of p starting at off into parent.
func parseKFrag(p string, off int, parent *KPath) error {
	var next int
	switch p[off] {
	case '.':
		if off == 0 {
			return parseErr(p, off, ErrEmptySegment)
		}
		field, n, err := parseKField(p, off+1)
		if err != nil {
			return err
		}
		parent.Field = &field
		next = n
	case '[':
		if off == 0 {
			return parseErr(p, off, fmt.Errorf("%w '[': path must start with a field", ErrUnexpectedChar))
		}
		i := strings.IndexByte(p[off+1:], ']')
		if i == -1 {
			return parseErr(p, off, ErrUnterminatedBracket)
		}
		body := p[off+1 : off+1+i]
		index, err := parseKIndex(body)
		if err != nil {
			return parseErr(p, off+1, err)
		}
		parent.Index = &index
		next = off + i + 2
	case ']':
		return parseErr(p, off, fmt.Errorf("%w ']'", ErrUnexpectedChar))
	default:
		if off != 0 {
			return parseErr(p, off, fmt.Errorf("%w %q: expected '.' or '['", ErrUnexpectedChar, p[off]))
		}
		field, n, err := parseKField(p, off)
		if err != nil {
			return err
		}
		parent.Field = &field
		next = n
	}
	if next == len(p) {
		return nil
	}
	parent.Next = &KPath{}
	return parseKFrag(p, next, parent.Next)
}

// parseKIndex parses a non-negative decimal index.
func parseKIndex(is string) (int, error) {
	if is == "" {
		return 0, fmt.Errorf("%w: empty brackets", ErrNonNumericIndex)
	}
	for i := 0; i < len(is); i++ {
		if is[i] < '0' || is[i] > '9' {
			return 0, fmt.Errorf("%w %q", ErrNonNumericIndex, is)
		}
	}
	index, err := strconv.Atoi(is)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrNonNumericIndex, is, err)
	}
	return index, nil
}

// parseKField reads a field name starting at off, returning the name and
// the offset just past it.  It stops at '.', '[' or ']'.
func parseKField(p string, off int) (string, int, error) {
	i := strings.IndexAny(p[off:], ".[]")
	if i == -1 {
		i = len(p) - off
	}
	if i == 0 {
		return "", 0, parseErr(p, off, ErrEmptySegment)
	}
	return p[off : off+i], off + i, nil
}

// Len returns the number of segments.
func (p *KPath) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// Segments returns a copy of each segment, unlinked, from root to leaf.
func (p *KPath) Segments() []*KPath {
	var res []*KPath
	for x := p; x != nil; x = x.Next {
		res = append(res, x.copySegment())
	}
	return res
}

// Prefix returns a copy of the first n segments.
func (p *KPath) Prefix(n int) *KPath {
	if p == nil || n <= 0 {
		return nil
	}
	res := p.copySegment()
	cur := res
	x := p.Next
	for i := 1; i < n && x != nil; i++ {
		cur.Next = x.copySegment()
		cur = cur.Next
		x = x.Next
	}
	return res
}

// Parent returns the parent path (all segments except the last).
// Returns nil if there's only one segment.
func (p *KPath) Parent() *KPath {
	return p.Prefix(p.Len() - 1)
}

// LastSegment returns a copy of the final segment.
func (p *KPath) LastSegment() *KPath {
	if p == nil {
		return nil
	}
	x := p
	for x.Next != nil {
		x = x.Next
	}
	return x.copySegment()
}

// Append returns a new path with seg's chain added after the last segment of p.
func (p *KPath) Append(seg *KPath) *KPath {
	if p == nil {
		return seg.Prefix(seg.Len())
	}
	res := p.Prefix(p.Len())
	last := res
	for last.Next != nil {
		last = last.Next
	}
	last.Next = seg.Prefix(seg.Len())
	return res
}

// IsIndex reports whether this segment is a bracketed index.
func (p *KPath) IsIndex() bool {
	return p != nil && p.Index != nil
}

// AsIndex returns the array index this segment addresses.  Bracketed
// indices always do; a field segment does when it consists only of decimal
// digits, so that "a.0" can address the first element of an array.
func (p *KPath) AsIndex() (int, bool) {
	if p == nil {
		return 0, false
	}
	if p.Index != nil {
		return *p.Index, true
	}
	if p.Field == nil {
		return 0, false
	}
	i, err := parseKIndex(*p.Field)
	if err != nil {
		return 0, false
	}
	return i, true
}

func (p *KPath) copySegment() *KPath {
	res := &KPath{}
	if p.Field != nil {
		f := *p.Field
		res.Field = &f
	}
	if p.Index != nil {
		i := *p.Index
		res.Index = &i
	}
	return res
}

// Compare compares two paths lexicographically by segment.  Fields sort
// before indices.  Returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p *KPath) Compare(other *KPath) int {
	pa, pb := p, other
	for pa != nil && pb != nil {
		if c := compareSegment(pa, pb); c != 0 {
			return c
		}
		pa = pa.Next
		pb = pb.Next
	}
	switch {
	case pa == nil && pb == nil:
		return 0
	case pa == nil:
		return -1
	default:
		return 1
	}
}

func compareSegment(a, b *KPath) int {
	switch {
	case a.Field != nil && b.Field != nil:
		return strings.Compare(*a.Field, *b.Field)
	case a.Field != nil:
		return -1
	case b.Field != nil:
		return 1
	case a.Index != nil && b.Index != nil:
		return cmp.Compare(*a.Index, *b.Index)
	}
	return 0
}

func (kp *KPath) MarshalText() ([]byte, error) {
	return []byte(kp.String()), nil
}

func (kp *KPath) UnmarshalText(d []byte) error {
	pp, err := Parse(string(d))
	if err != nil {
		return err
	}
	*kp = *pp
	return nil
}
