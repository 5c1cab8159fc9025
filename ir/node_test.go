package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEmptyLike(t *testing.T) {
	tests := []struct {
		name string
		in   *Node
		want *Node
	}{
		{"array", FromSlice([]*Node{FromInt(1)}), EmptyArray()},
		{"string", FromString("x"), FromString("")},
		{"object", FromMap(map[string]*Node{"a": FromInt(1)}), EmptyObject()},
		{"number", FromInt(3), Null()},
		{"bool", FromBool(true), Null()},
		{"null", Null(), Null()},
		{"nil", nil, Null()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EmptyLike(tt.in)
			if !Equal(got, tt.want) {
				t.Errorf("EmptyLike() = %s, want %s", mustJSON(t, got), mustJSON(t, tt.want))
			}
		})
	}
}

func TestObjectSetDelete(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromInt(2)},
	})
	obj.Set("a", FromString("x"))
	obj.Set("c", FromBool(true))
	if diff := cmp.Diff([]string{"a", "b", "c"}, obj.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if got := Get(obj, "a"); got.String != "x" {
		t.Errorf("Get(a) = %v", got)
	}
	if !obj.Delete("b") {
		t.Fatal("Delete(b) reported absent")
	}
	if obj.Delete("b") {
		t.Fatal("second Delete(b) reported present")
	}
	if diff := cmp.Diff([]string{"a", "c"}, obj.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if len(obj.Fields) != len(obj.Values) {
		t.Errorf("fields %d != values %d", len(obj.Fields), len(obj.Values))
	}
}

func TestSplice(t *testing.T) {
	arr := FromSlice([]*Node{FromString("a"), FromString("b"), FromString("c")})
	got := arr.Splice(1)
	if got.String != "b" {
		t.Errorf("Splice returned %q", got.String)
	}
	if mustJSON(t, arr) != `["a","c"]` {
		t.Errorf("after splice %s", mustJSON(t, arr))
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := FromMap(map[string]*Node{
		"list": FromSlice([]*Node{FromInt(1)}),
	})
	c := orig.Clone()
	Get(c, "list").Append(FromInt(2))
	*Get(c, "list").Values[0].Int64 = 7
	if mustJSON(t, orig) != `{"list":[1]}` {
		t.Errorf("original changed: %s", mustJSON(t, orig))
	}
}

func TestJSONRoundTripKeepsOrder(t *testing.T) {
	in := `{"z":1,"a":{"y":[true,null,"<p>x</p>"],"b":2.5},"m":"s"}`
	node, err := FromJSON([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if got := mustJSON(t, node); got != in {
		t.Errorf("got %s\nwant %s", got, in)
	}
	if node.Values[0].Int64 == nil {
		t.Errorf("integer not decoded as int64")
	}
	if Get(node, "a").Values[1].Float64 == nil {
		t.Errorf("float not decoded as float64")
	}
}

func TestFromJSONErrors(t *testing.T) {
	for _, in := range []string{``, `{`, `[1,]`, `{"a":1} 2`} {
		t.Run(in, func(t *testing.T) {
			if _, err := FromJSON([]byte(in)); err == nil {
				t.Errorf("expected error for %q", in)
			}
		})
	}
}

func TestAnyRoundTrip(t *testing.T) {
	v := map[string]any{"b": []any{1, "x", false}, "a": nil}
	node, err := FromAny(v)
	if err != nil {
		t.Fatal(err)
	}
	if got := mustJSON(t, node); got != `{"a":null,"b":[1,"x",false]}` {
		t.Errorf("FromAny = %s", got)
	}
	back := ToAny(node)
	want := map[string]any{"a": nil, "b": []any{1, "x", false}}
	if diff := cmp.Diff(want, back); diff != "" {
		t.Errorf("ToAny (-want +got):\n%s", diff)
	}
}

func mustJSON(t *testing.T, n *Node) string {
	t.Helper()
	d, err := n.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}
