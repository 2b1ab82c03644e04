package allowlist

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// EntryKind identifies which member of the Entry union is set.
type EntryKind string

const (
	KindString EntryKind = "string"
	KindInt    EntryKind = "int"
	KindFloat  EntryKind = "float"
)

// Entry is a single allow-list element, either text or a number.
type Entry struct {
	kind EntryKind
	s    string
	i    int64
	f    float64
}

// String returns an entry holding s.
func String(s string) Entry { return Entry{kind: KindString, s: s} }

// Int returns an entry holding n.
func Int(n int64) Entry { return Entry{kind: KindInt, i: n} }

// Float returns an entry holding f.
func Float(f float64) Entry { return Entry{kind: KindFloat, f: f} }

// Value converts a loosely typed value, such as one decoded from a config file,
// into an Entry. Strings and numeric kinds map directly; anything else falls back
// to its fmt representation.
func Value(v any) Entry {
	switch x := v.(type) {
	case Entry:
		return x
	case string:
		return String(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return uintEntry(uint64(x))
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case uint64:
		return uintEntry(x)
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return Int(n)
		}
		if f, err := x.Float64(); err == nil {
			return Float(f)
		}
		return String(x.String())
	case fmt.Stringer:
		return String(x.String())
	default:
		return String(fmt.Sprint(v))
	}
}

func uintEntry(n uint64) Entry {
	if n > 1<<63-1 {
		return String(strconv.FormatUint(n, 10))
	}
	return Int(int64(n))
}

// Kind reports which member of the union is set. The zero Entry is an empty string.
func (e Entry) Kind() EntryKind {
	if e.kind == "" {
		return KindString
	}
	return e.kind
}

// String returns the textual form of the entry. Numbers use plain decimal
// notation, so 42.0 becomes "42" and 1e6 becomes "1000000".
func (e Entry) String() string {
	switch e.kind {
	case KindInt:
		return strconv.FormatInt(e.i, 10)
	case KindFloat:
		return strconv.FormatFloat(e.f, 'f', -1, 64)
	default:
		return e.s
	}
}

// Strings wraps each value in a string Entry.
func Strings(values []string) []Entry {
	out := make([]Entry, len(values))
	for i, v := range values {
		out[i] = String(v)
	}
	return out
}

// Values converts each value with Value.
func Values(values []any) []Entry {
	out := make([]Entry, len(values))
	for i, v := range values {
		out[i] = Value(v)
	}
	return out
}
