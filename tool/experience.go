package tool

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/signadot/cvtool/ir"
)

// ExperiencePath is the canonical path of the work experience list.
const ExperiencePath = "experience"

// NewID returns a fresh record id.
func NewID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulid.DefaultEntropy()).String()
}

// ExperienceNormalizer converts a work experience record as agents tend to
// write it,
//
//	{company, position, startDate, endDate, description}
//
// into the stored shape
//
//	{id, company, position, date, details, visible}
//
// Ids are taken from the record when present and otherwise made by newID.
// startDate and endDate ("2020-1", "2021-05") become a date such as
// "2020.01 - 2021.05"; a record carrying date instead keeps it.
// description is split into lines, each non-empty line becoming an html
// paragraph; a record carrying details instead keeps it.  visible is true
// unless the record sets it to false.  Values that are not objects are
// returned unchanged.
func ExperienceNormalizer(newID func() string) Normalizer {
	if newID == nil {
		newID = NewID
	}
	return NormalizerFunc(func(v *ir.Node) (*ir.Node, error) {
		if v == nil || v.Type != ir.ObjectType {
			return v, nil
		}
		id := ir.Get(v, "id")
		if id.IsNull() || (id.Type == ir.StringType && id.String == "") {
			id = ir.FromString(newID())
		}
		date, err := experienceDate(v)
		if err != nil {
			return nil, err
		}
		return ir.FromKeyVals([]ir.KeyVal{
			{Key: "id", Val: id.Clone()},
			{Key: "company", Val: stringField(v, "company")},
			{Key: "position", Val: stringField(v, "position")},
			{Key: "date", Val: date},
			{Key: "details", Val: experienceDetails(v)},
			{Key: "visible", Val: ir.FromBool(visible(v))},
		}), nil
	})
}

var yearMonth = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)

// formatYearMonth turns "2020-1" into "2020.01".  Anything else is
// returned unchanged.
func formatYearMonth(s string) string {
	m := yearMonth.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return s
	}
	if len(m[2]) == 1 {
		m[2] = "0" + m[2]
	}
	return m[1] + "." + m[2]
}

func experienceDate(v *ir.Node) (*ir.Node, error) {
	start, err := optString(v, "startDate")
	if err != nil {
		return nil, err
	}
	end, err := optString(v, "endDate")
	if err != nil {
		return nil, err
	}
	switch {
	case start != "" && end != "":
		return ir.FromString(formatYearMonth(start) + " - " + formatYearMonth(end)), nil
	case start != "":
		return ir.FromString(formatYearMonth(start)), nil
	case end != "":
		return ir.FromString(formatYearMonth(end)), nil
	}
	return stringField(v, "date"), nil
}

func experienceDetails(v *ir.Node) *ir.Node {
	desc := ir.Get(v, "description")
	if desc == nil || desc.Type != ir.StringType {
		return stringField(v, "details")
	}
	var b strings.Builder
	for _, line := range strings.Split(desc.String, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(line)
		b.WriteString("</p>")
	}
	return ir.FromString(b.String())
}

func visible(v *ir.Node) bool {
	x := ir.Get(v, "visible")
	return x == nil || x.Type != ir.BoolType || x.Bool
}

// stringField returns a copy of v's field, or "" when it is absent or null.
func stringField(v *ir.Node, field string) *ir.Node {
	x := ir.Get(v, field)
	if x.IsNull() {
		return ir.FromString("")
	}
	return x.Clone()
}

func optString(v *ir.Node, field string) (string, error) {
	x := ir.Get(v, field)
	switch {
	case x.IsNull():
		return "", nil
	case x.Type == ir.StringType:
		return x.String, nil
	case x.Type == ir.NumberType:
		return x.NumberString(), nil
	}
	return "", fmt.Errorf("%w: %s must be a string, got %s", ErrBadParams, field, x.Type)
}
