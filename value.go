package sortedlist

import (
	"cmp"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/xgzlucario/sortedlist/bcmp"
)

// Value is a tagged string-or-integer element. The zero Value has no kind
// and is rejected by every list.
type Value struct {
	kind Kind
	str  string
	num  int64
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Int returns an integer value.
func Int(i int64) Value {
	return Value{kind: KindInteger, num: i}
}

// Of converts a Go string or signed integer into a Value. Numeric strings
// stay strings.
func Of(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case string:
		return String(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	}
	return Value{}, fmt.Errorf("%w: unsupported type %T", ErrTypeMismatch, v)
}

// Kind
func (v Value) Kind() Kind {
	return v.kind
}

// Int returns the integer payload, 0 for string values.
func (v Value) Int() int64 {
	return v.num
}

// String returns the raw string of a string value, or the decimal form of an
// integer value.
func (v Value) String() string {
	if v.kind == KindInteger {
		return strconv.FormatInt(v.num, 10)
	}
	return v.str
}

// Compare returns a negative number, zero or a positive number as v sorts
// before, equal to or after o. Values of different kinds cannot be compared.
func (v Value) Compare(o Value) (int, error) {
	if v.kind != o.kind || !v.kind.Valid() {
		return 0, fmt.Errorf("%w: cannot compare %s with %s", ErrTypeMismatch, v.kind, o.kind)
	}
	if v.kind == KindString {
		return bcmp.CompareString(v.str, o.str), nil
	}
	return cmp.Compare(v.num, o.num), nil
}

// LogValue implements slog.LogValuer.
func (v Value) LogValue() slog.Value {
	switch v.kind {
	case KindString:
		return slog.StringValue(v.str)
	case KindInteger:
		return slog.Int64Value(v.num)
	}
	return slog.AnyValue(nil)
}

// zeroValue is the empty sentinel of kind k.
func zeroValue(k Kind) Value {
	return Value{kind: k}
}
