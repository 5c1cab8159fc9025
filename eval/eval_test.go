package eval

import (
	"errors"
	"testing"

	"github.com/signadot/cvtool/edit"
	"github.com/signadot/cvtool/ir"
)

const cv = `{
	"basic": {"name": "Ann", "email": "ann@example.com"},
	"education": [{"school": "MIT", "year": 2010}, {"school": "CMU", "year": 2012}],
	"skills": ["go", "sql", "gRPC"],
	"summary": ""
}`

func mustDoc(t *testing.T) *ir.Node {
	t.Helper()
	n, err := ir.FromJSON([]byte(cv))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestQuery(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`basic.name`, `"Ann"`},
		{`len(education)`, `2`},
		{`education[1].school`, `"CMU"`},
		{`map(education, .school)`, `["MIT","CMU"]`},
		{`education[1].year - education[0].year`, `2`},
		{`filter(skills, {# startsWith "g"})`, `["go","gRPC"]`},
		{`"go" in skills`, `true`},
		{`doc.basic.email`, `"ann@example.com"`},
		{`getpath("education[0].school")`, `"MIT"`},
		{`getpath("basic")`, `{"email":"ann@example.com","name":"Ann"}`},
		{`haspath("basic.phone")`, `false`},
		{`haspath("education.1")`, `true`},
		{`haspath("education[7]")`, `false`},
		{`missing`, `null`},
		{`summary == ""`, `true`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			doc := mustDoc(t)
			got, err := Query(doc, tt.in)
			if err != nil {
				t.Fatalf("Query(%q): %v", tt.in, err)
			}
			d, err := got.MarshalJSON()
			if err != nil {
				t.Fatal(err)
			}
			if string(d) != tt.want {
				t.Errorf("Query(%q) = %s, want %s", tt.in, d, tt.want)
			}
		})
	}
}

func TestQueryErrors(t *testing.T) {
	doc := mustDoc(t)
	for _, in := range []string{`basic.name +`, `getpath("basic.phone")`, `getpath("a[x]")`} {
		if _, err := Query(doc, in); !errors.Is(err, ErrEval) {
			t.Errorf("Query(%q) error = %v", in, err)
		}
	}
	_, err := Query(doc, `getpath("basic.phone")`)
	if !errors.Is(err, edit.ErrPathNotFound) {
		t.Errorf("getpath error does not wrap the lookup error: %v", err)
	}
}

func TestQueryDoesNotModify(t *testing.T) {
	doc := mustDoc(t)
	before, _ := doc.MarshalJSON()
	if _, err := Query(doc, `map(education, {#.school + "!"})`); err != nil {
		t.Fatal(err)
	}
	after, _ := doc.MarshalJSON()
	if string(before) != string(after) {
		t.Errorf("document changed:\n%s\n%s", before, after)
	}
}

func TestTruth(t *testing.T) {
	doc := mustDoc(t)
	tests := map[string]bool{
		`summary`:           false,
		`skills`:            true,
		`len(skills) > 5`:   false,
		`basic`:             true,
		`missing`:           false,
		`education[0].year`: true,
	}
	for in, want := range tests {
		got, err := Truth(doc, in)
		if err != nil {
			t.Fatalf("Truth(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("Truth(%q) = %v", in, got)
		}
	}
}
