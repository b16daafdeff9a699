package models

import (
	"slices"
	"time"
)

// ValueKind describes the type of a field value.
type ValueKind string

const (
	KindString      ValueKind = "string"       // free text
	KindSelect      ValueKind = "select"       // single choice from a closed set
	KindMultiSelect ValueKind = "multi_select" // list of strings (tags)
	KindBool        ValueKind = "bool"
	KindNumber      ValueKind = "number"
	KindDate        ValueKind = "date"      // calendar day, UTC midnight
	KindTimestamp   ValueKind = "timestamp" // instant, UTC
	KindURL         ValueKind = "url"
)

// Value is a typed field value. Only the member matching Kind is meaningful.
type Value struct {
	Time   time.Time `json:"time,omitempty" msgpack:"time,omitempty"`
	Kind   ValueKind `json:"kind" msgpack:"kind"`
	Str    string    `json:"str,omitempty" msgpack:"str,omitempty"`
	Strs   []string  `json:"strs,omitempty" msgpack:"strs,omitempty"`
	Number float64   `json:"number,omitempty" msgpack:"number,omitempty"`
	Bool   bool      `json:"bool,omitempty" msgpack:"bool,omitempty"`
}

// StringValue returns a free text value.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// SelectValue returns a single-choice value.
func SelectValue(s string) Value { return Value{Kind: KindSelect, Str: s} }

// URLValue returns a url value.
func URLValue(s string) Value { return Value{Kind: KindURL, Str: s} }

// TagsValue returns a multi-choice value. A nil slice is stored as empty.
func TagsValue(tags ...string) Value {
	strs := make([]string, len(tags))
	copy(strs, tags)
	return Value{Kind: KindMultiSelect, Strs: strs}
}

// BoolValue returns a checkbox value.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// NumberValue returns a numeric value.
func NumberValue(n float64) Value { return Value{Kind: KindNumber, Number: n} }

// DateValue returns a calendar-day value normalized to UTC midnight.
// The zero time means "no date".
func DateValue(t time.Time) Value {
	if t.IsZero() {
		return Value{Kind: KindDate}
	}
	u := t.UTC()
	return Value{Kind: KindDate, Time: time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

// TimestampValue returns an instant normalized to UTC.
func TimestampValue(t time.Time) Value {
	if t.IsZero() {
		return Value{Kind: KindTimestamp}
	}
	return Value{Kind: KindTimestamp, Time: t.UTC()}
}

// IsZero reports whether the value carries no data for its kind.
func (v Value) IsZero() bool {
	switch v.Kind {
	case KindMultiSelect:
		return len(v.Strs) == 0
	case KindBool:
		return !v.Bool
	case KindNumber:
		return v.Number == 0
	case KindDate, KindTimestamp:
		return v.Time.IsZero()
	default:
		return v.Str == ""
	}
}

// Equal reports whether two values have the same kind and content.
// Empty and nil tag lists are equal.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindMultiSelect:
		if len(v.Strs) == 0 && len(other.Strs) == 0 {
			return true
		}
		return slices.Equal(v.Strs, other.Strs)
	case KindBool:
		return v.Bool == other.Bool
	case KindNumber:
		return v.Number == other.Number
	case KindDate, KindTimestamp:
		return v.Time.Equal(other.Time)
	default:
		return v.Str == other.Str
	}
}

// Clone returns a deep copy of the value.
func (v Value) Clone() Value {
	if v.Strs != nil {
		v.Strs = slices.Clone(v.Strs)
	}
	return v
}

// String renders the value as plain text, used for diffs and progress titles.
func (v Value) String() string {
	switch v.Kind {
	case KindMultiSelect:
		out := ""
		for i, s := range v.Strs {
			if i > 0 {
				out += ", "
			}
			out += s
		}
		return out
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindNumber:
		return formatNumber(v.Number)
	case KindDate:
		if v.Time.IsZero() {
			return ""
		}
		return v.Time.Format(time.DateOnly)
	case KindTimestamp:
		if v.Time.IsZero() {
			return ""
		}
		return v.Time.Format(time.RFC3339Nano)
	default:
		return v.Str
	}
}
