package tool

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signadot/cvtool/ir"
)

func TestFormatYearMonth(t *testing.T) {
	tests := map[string]string{
		"2020-1":    "2020.01",
		"2020-01":   "2020.01",
		"2021-12":   "2021.12",
		" 2019-3 ":  "2019.03",
		"2020.01":   "2020.01",
		"present":   "present",
		"2020":      "2020",
		"2020-123":  "2020-123",
		"20-1":      "20-1",
		"2020-1-15": "2020-1-15",
	}
	for in, want := range tests {
		assert.Equal(t, want, formatYearMonth(in), "input %q", in)
	}
}

func TestExperienceNormalizer(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "full record",
			in:   `{"company":"Acme","position":"Eng","startDate":"2020-1","endDate":"2021-05","description":"Did X\nDid Y"}`,
			want: `{"id":"new","company":"Acme","position":"Eng","date":"2020.01 - 2021.05","details":"<p>Did X</p><p>Did Y</p>","visible":true}`,
		},
		{
			name: "start only",
			in:   `{"company":"Acme","startDate":"2020-7"}`,
			want: `{"id":"new","company":"Acme","position":"","date":"2020.07","details":"","visible":true}`,
		},
		{
			name: "end only",
			in:   `{"endDate":"2021-11"}`,
			want: `{"id":"new","company":"","position":"","date":"2021.11","details":"","visible":true}`,
		},
		{
			name: "existing date and details pass through",
			in:   `{"id":"keep","date":"2019 - now","details":"<p>kept</p>","visible":false}`,
			want: `{"id":"keep","company":"","position":"","date":"2019 - now","details":"<p>kept</p>","visible":false}`,
		},
		{
			name: "dates win over date",
			in:   `{"date":"old","startDate":"2020-02"}`,
			want: `{"id":"new","company":"","position":"","date":"2020.02","details":"","visible":true}`,
		},
		{
			name: "blank lines dropped",
			in:   `{"description":"\n  \nfirst\r\n\n\t\nsecond\n"}`,
			want: `{"id":"new","company":"","position":"","date":"","details":"<p>first</p><p>second</p>","visible":true}`,
		},
		{
			name: "lines kept as written",
			in:   `{"description":"  - led X  \r\nshipped Y "}`,
			want: `{"id":"new","company":"","position":"","date":"","details":"<p>  - led X  </p><p>shipped Y </p>","visible":true}`,
		},
		{
			name: "empty id replaced",
			in:   `{"id":"","visible":"no"}`,
			want: `{"id":"new","company":"","position":"","date":"","details":"","visible":true}`,
		},
		{
			name: "unknown keys dropped",
			in:   `{"company":"A","team":"infra"}`,
			want: `{"id":"new","company":"A","position":"","date":"","details":"","visible":true}`,
		},
	}
	n := ExperienceNormalizer(func() string { return "new" })
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ir.FromJSON([]byte(tt.in))
			require.NoError(t, err)
			got, err := n.Normalize(v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, jsonOf(t, got))
		})
	}
}

func TestExperienceNormalizerPassThrough(t *testing.T) {
	n := ExperienceNormalizer(nil)
	for _, in := range []*ir.Node{ir.FromString("Acme"), ir.Null(), ir.FromSlice(nil)} {
		got, err := n.Normalize(in)
		require.NoError(t, err)
		assert.Same(t, in, got)
	}
}

func TestExperienceNormalizerBadDate(t *testing.T) {
	n := ExperienceNormalizer(nil)
	v, err := ir.FromJSON([]byte(`{"startDate":["2020"]}`))
	require.NoError(t, err)
	_, err = n.Normalize(v)
	assert.ErrorIs(t, err, ErrBadParams)
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.NotEqual(t, a, b)
	_, err := ulid.Parse(a)
	assert.NoError(t, err)
}
