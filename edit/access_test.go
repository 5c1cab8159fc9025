package edit

import (
	"errors"
	"testing"

	"github.com/signadot/cvtool/ir"
	"github.com/signadot/cvtool/ir/kpath"
)

func mustDoc(t *testing.T, s string) *ir.Node {
	t.Helper()
	doc, err := ir.FromJSON([]byte(s))
	if err != nil {
		t.Fatalf("bad test document %q: %v", s, err)
	}
	return doc
}

func jsonOf(t *testing.T, n *ir.Node) string {
	t.Helper()
	d, err := n.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

const sampleDoc = `{
	"basic": {"name": "Alice", "email": "a@example.com"},
	"education": [{"school": "MIT"}, {"school": "CMU"}],
	"summary": "hi",
	"skills": ["go", "sql"]
}`

func TestGet(t *testing.T) {
	tests := []struct {
		path      string
		wantValue string // json of value, "" when absent
		wantIndex int
	}{
		{"basic.name", `"Alice"`, 0},
		{"basic.email", `"a@example.com"`, 1},
		{"basic.phone", "", -1},
		{"education[1].school", `"CMU"`, 0},
		{"education[0]", `{"school":"MIT"}`, 0},
		{"education.1.school", `"CMU"`, 0},
		{"education.1", `{"school":"CMU"}`, 1},
		{"skills[1]", `"sql"`, 1},
		{"summary", `"hi"`, 2},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			doc := mustDoc(t, sampleDoc)
			loc, err := Get(doc, kpath.MustParse(tt.path))
			if err != nil {
				t.Fatalf("Get(%q) error: %v", tt.path, err)
			}
			if tt.wantValue == "" {
				if loc.Exists() {
					t.Errorf("expected absent value, got %s", jsonOf(t, loc.Value))
				}
			} else if got := jsonOf(t, loc.Value); got != tt.wantValue {
				t.Errorf("value = %s, want %s", got, tt.wantValue)
			}
			if loc.Index != tt.wantIndex {
				t.Errorf("index = %d, want %d", loc.Index, tt.wantIndex)
			}
			if loc.Trail[0] != doc {
				t.Errorf("trail does not start at the root")
			}
			if loc.Trail[len(loc.Trail)-1] != loc.Parent {
				t.Errorf("trail does not end at the parent")
			}
		})
	}
}

func TestGetErrors(t *testing.T) {
	tests := []struct {
		path     string
		want     error
		wantPath string
	}{
		{"missing.name", ErrPathNotFound, "missing"},
		{"basic.name.first", ErrPathNotFound, "basic.name.first"},
		{"basic[0]", ErrNotASequence, "basic"},
		{"summary[0]", ErrNotASequence, "summary"},
		{"education.school", ErrPathNotFound, "education.school"},
		{"education[5].school", ErrIndexOutOfBounds, "education[5]"},
		{"education.7", ErrIndexOutOfBounds, "education.7"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := Get(mustDoc(t, sampleDoc), kpath.MustParse(tt.path))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Get(%q) error = %v, want %v", tt.path, err, tt.want)
			}
			var pe *PathError
			var ie *IndexError
			switch {
			case errors.As(err, &pe):
				if pe.Path != tt.wantPath {
					t.Errorf("error path = %q, want %q", pe.Path, tt.wantPath)
				}
			case errors.As(err, &ie):
				if ie.Path != tt.wantPath {
					t.Errorf("error path = %q, want %q", ie.Path, tt.wantPath)
				}
			default:
				t.Errorf("unexpected error type %T", err)
			}
		})
	}
}

func TestGetIndexOutOfBoundsDetail(t *testing.T) {
	_, err := Get(mustDoc(t, sampleDoc), kpath.MustParse("education[5].school"))
	var ie *IndexError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *IndexError, got %T %v", err, err)
	}
	if ie.Index != 5 || ie.Len != 2 {
		t.Errorf("IndexError = {idx:%d, len:%d}, want {idx:5, len:2}", ie.Index, ie.Len)
	}
}

func TestGetNullIntermediate(t *testing.T) {
	doc := mustDoc(t, `{"basic": null}`)
	_, err := Get(doc, kpath.MustParse("basic.name"))
	if !errors.Is(err, ErrPathNotFound) {
		t.Errorf("error = %v, want ErrPathNotFound", err)
	}
}

func TestGetDoesNotCreate(t *testing.T) {
	doc := mustDoc(t, `{}`)
	if _, err := Get(doc, kpath.MustParse("basic.name")); err == nil {
		t.Fatal("expected error")
	}
	if got := jsonOf(t, doc); got != `{}` {
		t.Errorf("Get modified the document: %s", got)
	}
}

func TestLookup(t *testing.T) {
	doc := mustDoc(t, sampleDoc)
	v, err := Lookup(doc, "education[0].school")
	if err != nil {
		t.Fatal(err)
	}
	if v.String != "MIT" {
		t.Errorf("Lookup = %q", v.String)
	}
	if _, err := Lookup(doc, "basic.phone"); !errors.Is(err, ErrPathNotFound) {
		t.Errorf("Lookup(absent) error = %v", err)
	}
	if _, err := Lookup(doc, "a[x]"); !errors.Is(err, kpath.ErrNonNumericIndex) {
		t.Errorf("Lookup(bad path) error = %v", err)
	}
}

func TestLocationPredicates(t *testing.T) {
	doc := mustDoc(t, sampleDoc)
	loc, err := Get(doc, kpath.MustParse("summary"))
	if err != nil {
		t.Fatal(err)
	}
	if !loc.TopLevel() || loc.InSequence() {
		t.Errorf("summary: TopLevel=%v InSequence=%v", loc.TopLevel(), loc.InSequence())
	}
	loc, err = Get(doc, kpath.MustParse("education[0].school"))
	if err != nil {
		t.Fatal(err)
	}
	if loc.TopLevel() || !loc.InSequence() {
		t.Errorf("education[0].school: TopLevel=%v InSequence=%v", loc.TopLevel(), loc.InSequence())
	}
}
