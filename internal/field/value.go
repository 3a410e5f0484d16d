package field

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Value is a sealed interface over the decoded field value types.
// Only Str, StrSeq, Int, Float, Date, TimeOfDay, Spans, and Risk implement
// it. Every Value renders deterministically: the same value always produces
// the same Render output, which is what the canonical record rendering and
// the golden tests rely on.
type Value interface {
	fieldValue() // sealed

	// Render returns the canonical text form of the value.
	Render() string
}

// Str is a fixed-width text field with trailing whitespace stripped.
// Leading whitespace is preserved.
type Str string

func (Str) fieldValue() {}

// Render returns the string in quoted form.
func (s Str) Render() string { return strconv.Quote(string(s)) }

// MarshalJSON implements json.Marshaler for Str.
func (s Str) MarshalJSON() ([]byte, error) { return json.Marshal(string(s)) }

// StrSeq is an ordered sequence of non-empty trimmed chunks from a repeated
// string group.
type StrSeq []string

func (StrSeq) fieldValue() {}

// Render returns the sequence as a bracketed list of quoted strings.
func (s StrSeq) Render() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(v))
	}
	b.WriteByte(']')
	return b.String()
}

// MarshalJSON implements json.Marshaler for StrSeq.
func (s StrSeq) MarshalJSON() ([]byte, error) { return json.Marshal([]string(s)) }

// Int is a nullable integer. Valid is false when the field could not be
// parsed; consumers must check Valid before using Int64 so that "zero" and
// "missing" stay distinguishable.
type Int struct {
	Int64 int64
	Valid bool
}

func (Int) fieldValue() {}

// Render returns the decimal form, or "null" when absent.
func (n Int) Render() string {
	if !n.Valid {
		return "null"
	}
	return strconv.FormatInt(n.Int64, 10)
}

// MarshalJSON implements json.Marshaler for Int. Absent values marshal as
// JSON null.
func (n Int) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Int64)
}

// Float is a scaled fixed-point value. An unparsable field is NaN.
type Float float64

func (Float) fieldValue() {}

// IsNaN reports whether the value is the not-a-number sentinel.
func (f Float) IsNaN() bool { return math.IsNaN(float64(f)) }

// Render returns the shortest round-trip decimal form, or "NaN".
func (f Float) Render() string {
	if f.IsNaN() {
		return "NaN"
	}
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// MarshalJSON implements json.Marshaler for Float. JSON has no NaN literal,
// so the sentinel marshals as the string "NaN".
func (f Float) MarshalJSON() ([]byte, error) {
	if f.IsNaN() {
		return []byte(`"NaN"`), nil
	}
	return json.Marshal(float64(f))
}

// Date is a calendar date decoded from a YYYYMMDD field.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (Date) fieldValue() {}

// Render returns the ISO date form.
func (d Date) Render() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) { return json.Marshal(d.Render()) }

// TimeOfDay is a wall-clock time decoded from an HHMM field. The zero value
// is midnight, which doubles as the blank-field default.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (TimeOfDay) fieldValue() {}

// IsMidnight reports whether the value is the midnight default.
func (t TimeOfDay) IsMidnight() bool { return t.Hour == 0 && t.Minute == 0 }

// Render returns the HH:MM form.
func (t TimeOfDay) Render() string { return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute) }

// MarshalJSON implements json.Marshaler for TimeOfDay.
func (t TimeOfDay) MarshalJSON() ([]byte, error) { return json.Marshal(t.Render()) }

// Span is one start/end month pair from a tier list.
type Span struct {
	Begin int64
	End   int64
}

// Spans is an ordered list of tier month pairs. Blank tier slots on the
// wire are omitted, so the length varies per record.
type Spans []Span

func (Spans) fieldValue() {}

// Render returns the list as "[(begin, end), ...]".
func (s Spans) Render() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, sp := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "(%d, %d)", sp.Begin, sp.End)
	}
	b.WriteByte(']')
	return b.String()
}

// MarshalJSON implements json.Marshaler for Spans. Each span marshals as a
// two-element array.
func (s Spans) MarshalJSON() ([]byte, error) {
	pairs := make([][2]int64, len(s))
	for i, sp := range s {
		pairs[i] = [2]int64{sp.Begin, sp.End}
	}
	return json.Marshal(pairs)
}

// Risk is a fixed-count array of signed scanning-scenario values. Values
// are always finite: a malformed chunk fails the decode instead of
// producing a sentinel.
type Risk []float64

func (Risk) fieldValue() {}

// Render returns the array as a bracketed list of shortest-form decimals.
func (r Risk) Render() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range r {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte(']')
	return b.String()
}

// MarshalJSON implements json.Marshaler for Risk.
func (r Risk) MarshalJSON() ([]byte, error) { return json.Marshal([]float64(r)) }

// Plain converts a Value to a plain Go value suitable for generic encoders
// (YAML, text templates). Absent integers become nil and NaN floats become
// the string "NaN" so that encoders without a NaN representation stay
// deterministic.
func Plain(v Value) any {
	switch val := v.(type) {
	case Str:
		return string(val)
	case StrSeq:
		return []string(val)
	case Int:
		if !val.Valid {
			return nil
		}
		return val.Int64
	case Float:
		if val.IsNaN() {
			return "NaN"
		}
		return float64(val)
	case Date:
		return val.Render()
	case TimeOfDay:
		return val.Render()
	case Spans:
		pairs := make([][2]int64, len(val))
		for i, sp := range val {
			pairs[i] = [2]int64{sp.Begin, sp.End}
		}
		return pairs
	case Risk:
		return []float64(val)
	default:
		return fmt.Sprintf("%v", v)
	}
}
