package query

import (
	"database/sql/driver"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/Konsultn-Engineering/sqltpl/dialect"
)

// Pair is one entry of a keyed array argument.
type Pair struct {
	Key   string
	Value any
}

// Pairs is an ordered keyed array. Under ?a it renders as
// `key` = value, `key2` = value2, ... in slice order.
type Pairs []Pair

var pairsType = reflect.TypeOf(Pairs(nil))

type formatter struct {
	dialect dialect.Dialect
}

// indirect resolves driver.Valuer implementations and pointers. An invalid
// reflect.Value stands for SQL NULL.
func indirect(v any) (reflect.Value, error) {
	if vr, ok := v.(driver.Valuer); ok {
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return reflect.Value{}, nil
		}
		val, err := vr.Value()
		if err != nil {
			return reflect.Value{}, fmt.Errorf("query: resolve %T: %w", v, err)
		}
		v = val
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, nil
		}
		rv = rv.Elem()
	}
	return rv, nil
}

// formatValue renders a scalar as a literal: NULL, 1/0, a number or an
// escaped quoted string.
func (f formatter) formatValue(v any) (string, error) {
	rv, err := indirect(v)
	if err != nil {
		return "", err
	}
	if !rv.IsValid() {
		return "NULL", nil
	}

	switch rv.Kind() {
	case reflect.Bool:
		return formatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	case reflect.String:
		return "'" + f.dialect.Escape(rv.String()) + "'", nil
	}
	return "", unsupported(v)
}

// formatInt coerces v to an integer. Floats are truncated toward zero and
// numeric strings are parsed.
func (f formatter) formatInt(v any) (string, error) {
	rv, err := indirect(v)
	if err != nil {
		return "", err
	}
	if !rv.IsValid() {
		return "NULL", nil
	}

	switch rv.Kind() {
	case reflect.Bool:
		return formatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return truncate(rv.Float())
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return strconv.FormatInt(n, 10), nil
		}
		if x, err := strconv.ParseFloat(s, 64); err == nil {
			return truncate(x)
		}
		return "", fmt.Errorf("query: %q is not a number: %w", rv.String(), ErrUnsupportedType)
	}
	return "", unsupported(v)
}

// formatFloatArg coerces v to a floating point number.
func (f formatter) formatFloatArg(v any) (string, error) {
	rv, err := indirect(v)
	if err != nil {
		return "", err
	}
	if !rv.IsValid() {
		return "NULL", nil
	}

	switch rv.Kind() {
	case reflect.Bool:
		return formatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return formatFloat(float64(rv.Int()), 64)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return formatFloat(float64(rv.Uint()), 64)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	case reflect.String:
		x, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		if err != nil {
			return "", fmt.Errorf("query: %q is not a number: %w", rv.String(), ErrUnsupportedType)
		}
		return formatFloat(x, 64)
	}
	return "", unsupported(v)
}

// formatIdentifier quotes a name or a list of names.
func (f formatter) formatIdentifier(v any) (string, error) {
	rv, err := indirect(v)
	if err != nil {
		return "", err
	}
	if !rv.IsValid() {
		return "", unsupported(v)
	}

	switch rv.Kind() {
	case reflect.String:
		return f.dialect.QuoteIdentifier(rv.String()), nil
	case reflect.Slice, reflect.Array:
		names := make([]string, rv.Len())
		for i := range names {
			el := rv.Index(i).Interface()
			ev, err := indirect(el)
			if err != nil {
				return "", err
			}
			if !ev.IsValid() || ev.Kind() != reflect.String {
				return "", unsupported(el)
			}
			names[i] = f.dialect.QuoteIdentifier(ev.String())
		}
		return strings.Join(names, ", "), nil
	}
	return "", unsupported(v)
}

// formatArray renders a list as comma separated values, and a keyed mapping
// as comma separated `key` = value assignments.
func (f formatter) formatArray(v any) (string, error) {
	rv, err := indirect(v)
	if err != nil {
		return "", err
	}
	if !rv.IsValid() {
		return "", unsupported(v)
	}
	if rv.Type() == pairsType {
		return f.formatPairs(rv.Interface().(Pairs))
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		values := make([]string, rv.Len())
		for i := range values {
			s, err := f.formatValue(rv.Index(i).Interface())
			if err != nil {
				return "", err
			}
			values[i] = s
		}
		return strings.Join(values, ", "), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return "", unsupported(v)
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		pairs := make(Pairs, len(keys))
		for i, k := range keys {
			pairs[i] = Pair{Key: k.String(), Value: rv.MapIndex(k).Interface()}
		}
		return f.formatPairs(pairs)
	}
	return "", unsupported(v)
}

func (f formatter) formatPairs(pairs Pairs) (string, error) {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		val, err := f.formatValue(p.Value)
		if err != nil {
			return "", err
		}
		parts[i] = f.dialect.QuoteIdentifier(p.Key) + " = " + val
	}
	return strings.Join(parts, ", "), nil
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// formatFloat uses the shortest representation that round-trips, without an
// exponent, so the text is a valid numeric literal in every dialect.
func formatFloat(x float64, bits int) (string, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "", fmt.Errorf("query: %v has no SQL literal: %w", x, ErrUnsupportedType)
	}
	return strconv.FormatFloat(x, 'f', -1, bits), nil
}

func truncate(x float64) (string, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "", fmt.Errorf("query: %v has no SQL literal: %w", x, ErrUnsupportedType)
	}
	t := math.Trunc(x)
	if t == 0 {
		t = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(t, 'f', 0, 64), nil
}
