package kpath

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string // expected segments
	}{
		{"single field", "basic", []string{"basic"}},
		{"nested fields", "basic.name", []string{"basic", "name"}},
		{"field index field", "education[0].school", []string{"education", "[0]", "school"}},
		{"consecutive indices", "a[0][12]", []string{"a", "[0]", "[12]"}},
		{"numeric field", "education.0.school", []string{"education", "0", "school"}},
		{"spaces in field", "my field.x", []string{"my field", "x"}},
		{"index last", "skills[3]", []string{"skills", "[3]"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kp, err := Parse(tt.path)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.path, err)
			}
			segs := kp.Segments()
			if len(segs) != len(tt.want) {
				t.Fatalf("got %d segments, want %d", len(segs), len(tt.want))
			}
			for i, seg := range segs {
				if got := seg.SegmentString(); got != tt.want[i] {
					t.Errorf("segment %d = %q, want %q", i, got, tt.want[i])
				}
			}
			if got := kp.String(); got != tt.path {
				t.Errorf("String() = %q, want %q", got, tt.path)
			}
		})
	}
}

func TestParseSegmentKinds(t *testing.T) {
	kp, err := Parse("education[0].school")
	if err != nil {
		t.Fatal(err)
	}
	if kp.Field == nil || *kp.Field != "education" {
		t.Errorf("first segment = %v", kp.SegmentString())
	}
	if kp.Next.Index == nil || *kp.Next.Index != 0 {
		t.Errorf("second segment = %v", kp.Next.SegmentString())
	}
	if kp.Next.Field != nil {
		t.Errorf("index segment also has a field")
	}
	if kp.Next.Next.Field == nil || *kp.Next.Next.Field != "school" {
		t.Errorf("third segment = %v", kp.Next.Next.SegmentString())
	}
	if kp.Next.Next.Next != nil {
		t.Errorf("unexpected fourth segment")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		path string
		want error
	}{
		{"", ErrEmptyPath},
		{"a[1", ErrUnterminatedBracket},
		{"a[1.b", ErrUnterminatedBracket},
		{"a[x]", ErrNonNumericIndex},
		{"a[]", ErrNonNumericIndex},
		{"a[-1]", ErrNonNumericIndex},
		{"a[99999999999999999999999]", ErrNonNumericIndex},
		{"a..b", ErrEmptySegment},
		{"a.", ErrEmptySegment},
		{".a", ErrEmptySegment},
		{"[0]", ErrUnexpectedChar},
		{"a]", ErrUnexpectedChar},
		{"a[0]b", ErrUnexpectedChar},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := Parse(tt.path)
			if err == nil {
				t.Fatalf("Parse(%q) expected error", tt.path)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.path, err, tt.want)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("Parse(%q) error %v does not match ErrParse", tt.path, err)
			}
		})
	}
}

func TestParentAndLastSegment(t *testing.T) {
	tests := []struct {
		path       string
		wantParent string
		wantLast   string
	}{
		{"a", "", "a"},
		{"a.b.c", "a.b", "c"},
		{"a[0]", "a", "[0]"},
		{"education[1].school", "education[1]", "school"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			kp := MustParse(tt.path)
			if got := kp.Parent().String(); got != tt.wantParent {
				t.Errorf("Parent() = %q, want %q", got, tt.wantParent)
			}
			last := kp.LastSegment()
			if got := last.String(); got != tt.wantLast {
				t.Errorf("LastSegment() = %q, want %q", got, tt.wantLast)
			}
			if last.Next != nil {
				t.Error("LastSegment().Next should be nil")
			}
			if kp.String() != tt.path {
				t.Errorf("Parent/LastSegment modified the receiver: %q", kp.String())
			}
		})
	}
}

func TestAsIndex(t *testing.T) {
	tests := []struct {
		seg    *KPath
		want   int
		wantOK bool
	}{
		{Index(3), 3, true},
		{Field("0"), 0, true},
		{Field("12"), 12, true},
		{Field("x1"), 0, false},
		{Field(""), 0, false},
		{Field("-1"), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.seg.SegmentString(), func(t *testing.T) {
			got, ok := tt.seg.AsIndex()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("AsIndex() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAppendAndPrefix(t *testing.T) {
	kp := MustParse("a.b")
	got := kp.Append(Index(2)).Append(Field("c"))
	if got.String() != "a.b[2].c" {
		t.Errorf("Append = %q", got.String())
	}
	if kp.String() != "a.b" {
		t.Errorf("Append modified receiver: %q", kp.String())
	}
	if p := got.Prefix(3).String(); p != "a.b[2]" {
		t.Errorf("Prefix(3) = %q", p)
	}
	if got.Len() != 4 {
		t.Errorf("Len() = %d", got.Len())
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"a", "a", 0},
		{"a", "b", -1},
		{"a.b", "a", 1},
		{"a.b", "a[0]", -1},
		{"a[1]", "a[0]", 1},
	}
	for _, tt := range tests {
		t.Run(tt.a+"|"+tt.b, func(t *testing.T) {
			if got := MustParse(tt.a).Compare(MustParse(tt.b)); got != tt.want {
				t.Errorf("Compare = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTextRoundTrip(t *testing.T) {
	kp := &KPath{}
	if err := kp.UnmarshalText([]byte("projects[2].name")); err != nil {
		t.Fatal(err)
	}
	d, err := kp.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "projects[2].name" {
		t.Errorf("MarshalText = %q", d)
	}
}
