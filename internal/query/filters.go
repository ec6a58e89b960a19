package query

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/workouttracker/internal/apierr"
)

const DateLayout = "2006-01-02"

type Kind int

const (
	// Text is a case-insensitive equality match.
	Text Kind = iota
	Bool
	// DateFrom and DateTo bound a date column inclusively.
	DateFrom
	DateTo
)

// Filter maps one optional request parameter onto a column.
type Filter struct {
	Param  string
	Column string
	Kind   Kind
}

// Filters is the allow-list of filters an endpoint understands. Order matters:
// predicates (and so placeholder numbers) follow the declaration order, never the
// order of the request parameters.
type Filters []Filter

// Apply adds one predicate per known, non-empty parameter in values. Unknown
// parameters are ignored.
func (fs Filters) Apply(b *Builder, values url.Values) error {
	for _, f := range fs {
		raw := strings.TrimSpace(values.Get(f.Param))
		if raw == "" {
			continue
		}

		switch f.Kind {
		case Text:
			b.EqFold(f.Column, raw)
		case Bool:
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return apierr.Validationf("invalid %s: expected true or false", f.Param)
			}
			b.Eq(f.Column, v)
		case DateFrom, DateTo:
			d, err := time.Parse(DateLayout, raw)
			if err != nil {
				return apierr.Validationf("invalid %s: expected YYYY-MM-DD", f.Param)
			}
			if f.Kind == DateFrom {
				b.Gte(f.Column, d)
			} else {
				b.Lte(f.Column, d)
			}
		}
	}
	return nil
}

// PositiveInt parses an optional positive integer parameter, falling back to def
// when it is absent.
func PositiveInt(values url.Values, param string, def int) (int, error) {
	raw := strings.TrimSpace(values.Get(param))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, apierr.Validationf("invalid %s: expected a positive integer", param)
	}
	return n, nil
}

// BoundedInt is PositiveInt with an inclusive [min, max] range check.
func BoundedInt(values url.Values, param string, def, min, max int) (int, error) {
	n, err := PositiveInt(values, param, def)
	if err != nil {
		return 0, err
	}
	if n < min || n > max {
		return 0, apierr.Validationf("invalid %s: must be between %d and %d", param, min, max)
	}
	return n, nil
}

// NonNegativeInt parses an optional integer parameter that may be zero, such as an
// offset.
func NonNegativeInt(values url.Values, param string, def int) (int, error) {
	raw := strings.TrimSpace(values.Get(param))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apierr.Validationf("invalid %s: expected a non-negative integer", param)
	}
	return n, nil
}
