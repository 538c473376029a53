package mapping

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Record is a loosely typed row as decoded from JSON, YAML or an upstream API.
type Record = map[string]any

// ToDecimal coerces a numeric or numeric-string value. Absent, non-finite and
// non-numeric values become zero.
func ToDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return n
	case *decimal.Decimal:
		if n == nil {
			return decimal.Zero
		}
		return *n
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(n)
	case float32:
		f := float64(n)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat32(n)
	case bool:
		return decimal.Zero
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ToTime parses dates and timestamps in the formats cast understands ("2006-01-02",
// RFC3339, ...). Unparseable values give the zero time.
func ToTime(v any) time.Time {
	if v == nil {
		return time.Time{}
	}
	t, err := cast.ToTimeE(v)
	if err != nil {
		return time.Time{}
	}
	return t
}

// lookup resolves a dotted path ("Journal.Lines") through nested maps.
func lookup(rec Record, path string) (any, bool) {
	var cur any = rec
	for _, key := range strings.Split(path, ".") {
		m, err := cast.ToStringMapE(cur)
		if err != nil {
			return nil, false
		}
		v, ok := m[key]
		if !ok {
			return nil, false
		}
		cur = v
	}
	return cur, cur != nil
}

// firstPresent returns the first non-nil value found under paths.
func firstPresent(rec Record, paths ...string) (any, bool) {
	for _, p := range paths {
		if v, ok := lookup(rec, p); ok {
			return v, true
		}
	}
	return nil, false
}

// firstString returns the first non-blank value found under paths, as a string.
func firstString(rec Record, paths ...string) string {
	for _, p := range paths {
		v, ok := lookup(rec, p)
		if !ok {
			continue
		}
		s := strings.TrimSpace(cast.ToString(v))
		if s != "" {
			return s
		}
	}
	return ""
}

// firstNonZero returns the first value under paths that coerces to a non-zero amount.
func firstNonZero(rec Record, paths ...string) decimal.Decimal {
	for _, p := range paths {
		v, ok := lookup(rec, p)
		if !ok {
			continue
		}
		if d := ToDecimal(v); !d.IsZero() {
			return d
		}
	}
	return decimal.Zero
}

// firstTime returns the first value under paths that parses as a date.
func firstTime(rec Record, paths ...string) time.Time {
	for _, p := range paths {
		v, ok := lookup(rec, p)
		if !ok {
			continue
		}
		if t := ToTime(v); !t.IsZero() {
			return t
		}
	}
	return time.Time{}
}

// firstBool returns the first value under paths coerced to a bool, false when absent.
func firstBool(rec Record, paths ...string) bool {
	v, ok := firstPresent(rec, paths...)
	if !ok {
		return false
	}
	return cast.ToBool(v)
}

// firstRecord returns the first nested object found under paths.
func firstRecord(rec Record, paths ...string) (Record, bool) {
	for _, p := range paths {
		v, ok := lookup(rec, p)
		if !ok {
			continue
		}
		if m, err := cast.ToStringMapE(v); err == nil {
			return m, true
		}
	}
	return nil, false
}

// firstRecords returns the first non-empty list of objects found under paths.
func firstRecords(rec Record, paths ...string) []Record {
	for _, p := range paths {
		v, ok := lookup(rec, p)
		if !ok {
			continue
		}
		list, err := cast.ToSliceE(v)
		if err != nil || len(list) == 0 {
			continue
		}
		out := make([]Record, 0, len(list))
		for _, item := range list {
			if m, err := cast.ToStringMapE(item); err == nil {
				out = append(out, m)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}
