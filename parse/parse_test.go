package parse

import (
	"errors"
	"testing"

	"github.com/signadot/cvtool/format"
	"github.com/signadot/cvtool/ir"
)

type parseTest struct {
	in  string
	out string
}

func TestParseYAML(t *testing.T) {
	pts := []parseTest{
		{in: `null`, out: `null`},
		{in: `~`, out: `null`},
		{in: `true`, out: `true`},
		{in: `22`, out: `22`},
		{in: `-3`, out: `-3`},
		{in: `1.5`, out: `1.5`},
		{in: `hello`, out: `"hello"`},
		{in: `"22"`, out: `"22"`},
		{in: `[a, 1]`, out: `["a",1]`},
		{in: "z: 1\na: 2\n", out: `{"z":1,"a":2}`},
		{in: `{"z": 1, "a": [true, null]}`, out: `{"z":1,"a":[true,null]}`},
		{in: "1: one\ntrue: yes\n", out: `{"1":"one","true":"yes"}`},
		{
			in: `
basic:
  name: Ann
  email: ann@example.com
education:
  - school: MIT
    degree: BS
  - school: CMU
summary: |
  line one
  line two
`,
			out: `{"basic":{"name":"Ann","email":"ann@example.com"},"education":[{"school":"MIT","degree":"BS"},{"school":"CMU"}],"summary":"line one\nline two\n"}`,
		},
	}
	for _, pt := range pts {
		t.Run(pt.in, func(t *testing.T) {
			node, err := Parse([]byte(pt.in))
			if err != nil {
				t.Fatalf("Parse(%q): %v", pt.in, err)
			}
			if got := mustJSON(t, node); got != pt.out {
				t.Errorf("got %s\nwant %s", got, pt.out)
			}
		})
	}
}

func TestParseJSON(t *testing.T) {
	node, err := Parse([]byte(`{"b": {"y": 1, "x": 2.5}, "a": ["<p>"]}`), ParseJSON())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := mustJSON(t, node), `{"b":{"y":1,"x":2.5},"a":["<p>"]}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if _, err := Parse([]byte(`{a: 1}`), ParseJSON()); !errors.Is(err, ErrParse) {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []ParseOption
		want error
	}{
		{"empty", "", nil, ErrEmpty},
		{"blank", " \n\t", []ParseOption{ParseJSON()}, ErrEmpty},
		{"bad yaml", "a: [1, 2", nil, ErrParse},
		{"bad json", `{"a":`, []ParseOption{ParseJSON()}, ErrParse},
		{"trailing json", `{} {}`, []ParseOption{ParseJSON()}, ErrParse},
		{"array document", `[1]`, []ParseOption{RequireObject()}, ErrNotObject},
		{"string document", `"cv"`, []ParseOption{ParseJSON(), RequireObject()}, ErrNotObject},
		{"bad format", `{}`, []ParseOption{ParseFormat(format.Format(9))}, format.ErrBadFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in), tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseSameInBothFormats(t *testing.T) {
	in := []byte(`{"basic": {"name": "Ann"}, "skills": ["go", "sql"], "n": 3}`)
	j, err := Parse(in, ParseJSON())
	if err != nil {
		t.Fatal(err)
	}
	y, err := Parse(in, ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(j, y) {
		t.Errorf("json %s != yaml %s", mustJSON(t, j), mustJSON(t, y))
	}
}

func mustJSON(t *testing.T, n *ir.Node) string {
	t.Helper()
	d, err := n.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}
