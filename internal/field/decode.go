package field

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// slice extracts line[start:stop], returning a RangeError when the range
// runs past the end of the line.
func slice(line string, start, stop int) (string, error) {
	if stop > len(line) {
		return "", &RangeError{Start: start, Stop: stop, LineLen: len(line)}
	}
	return line[start:stop], nil
}

// String decodes a fixed text field: the slice [start,stop) with trailing
// whitespace stripped. Leading whitespace is preserved. An all-blank range
// decodes to the empty string.
func String(line string, start, stop int) (Str, error) {
	s, err := slice(line, start, stop)
	if err != nil {
		return "", err
	}
	return Str(strings.TrimRightFunc(s, unicode.IsSpace)), nil
}

// StringGroup decodes a repeated text field: [start,stop) split into
// consecutive chunks of width step, each right-trimmed. Chunks that trim to
// empty are omitted, so the result length varies with the data.
func StringGroup(line string, start, stop, step int) (StrSeq, error) {
	if _, err := slice(line, start, stop); err != nil {
		return nil, err
	}
	var out StrSeq
	for i := start; i < stop; i += step {
		chunk := strings.TrimRightFunc(line[i:i+step], unicode.IsSpace)
		if chunk != "" {
			out = append(out, chunk)
		}
	}
	return out, nil
}

// Integer decodes a base-10 signed integer. Surrounding blanks are
// tolerated. Unparsable input (including an all-blank range) yields the
// absent sentinel, never zero.
func Integer(line string, start, stop int) (Int, error) {
	s, err := slice(line, start, stop)
	if err != nil {
		return Int{}, err
	}
	n, ok := parseInt(s)
	if !ok {
		return Int{}, nil
	}
	return Int{Int64: n, Valid: true}, nil
}

// ScaledFloat decodes a scaled fixed-point field: the slice parsed as an
// integer, multiplied by an effective scale.
//
// The sign of the value is carried out of band. When the configured scale
// is negative and the single character immediately after the field's end is
// '-', the effective scale is the configured (negative) scale; otherwise it
// is the absolute value of the configured scale. The probe position sits
// outside the declared range, so a line ending exactly at stop simply reads
// as unsigned.
//
// Unparsable input yields NaN, distinct from Integer's absent sentinel.
func ScaledFloat(line string, start, stop int, scale float64) (Float, error) {
	s, err := slice(line, start, stop)
	if err != nil {
		return 0, err
	}
	eff := math.Abs(scale)
	if scale < 0 && stop < len(line) && line[stop] == '-' {
		eff = scale
	}
	n, ok := parseInt(s)
	if !ok {
		return Float(math.NaN()), nil
	}
	return Float(float64(n) * eff), nil
}

// DateAt decodes the fixed 8 characters at start as a YYYYMMDD calendar
// date. Dates are assumed well-formed in valid files, so malformed input is
// a fatal decode error rather than a sentinel.
func DateAt(line string, start int) (Date, error) {
	s, err := slice(line, start, start+8)
	if err != nil {
		return Date{}, err
	}
	t, err := time.Parse("20060102", s)
	if err != nil {
		return Date{}, &ParseError{Start: start, Stop: start + 8, Input: s, Reason: "not a YYYYMMDD date"}
	}
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}, nil
}

// TimeAt decodes the fixed 4 characters at start as an HHMM time of day.
// Unparsable input (typically all blanks) yields midnight.
func TimeAt(line string, start int) (TimeOfDay, error) {
	s, err := slice(line, start, start+4)
	if err != nil {
		return TimeOfDay{}, err
	}
	t, err := time.Parse("1504", s)
	if err != nil {
		return TimeOfDay{}, nil
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// TierSpans decodes a tier list: [start,stop) walked in 14-character
// chunks. A chunk is kept only when all 14 characters are digits; kept
// chunks carry two 6-digit months at offsets +2 and +8. Blank or padding
// chunks are silently skipped.
func TierSpans(line string, start, stop int) (Spans, error) {
	if _, err := slice(line, start, stop); err != nil {
		return nil, err
	}
	var out Spans
	for i := start; i < stop; i += 14 {
		chunk := line[i : i+14]
		if !allDigits(chunk) {
			continue
		}
		begin, err := strconv.ParseInt(chunk[2:8], 10, 64)
		if err != nil {
			return nil, &ParseError{Start: i, Stop: i + 14, Input: chunk, Reason: "bad tier start month"}
		}
		end, err := strconv.ParseInt(chunk[8:14], 10, 64)
		if err != nil {
			return nil, &ParseError{Start: i, Stop: i + 14, Input: chunk, Reason: "bad tier end month"}
		}
		out = append(out, Span{Begin: begin, End: end})
	}
	return out, nil
}

// SignedMagnitudes decodes a risk array: [start,stop) walked in
// 6-character chunks. The first 5 characters are a zero-padded magnitude
// and the 6th is a sign flag ('-' negates, anything else is positive); each
// value is magnitude scaled by 1e-4. Every chunk must parse: the array has
// no sentinel policy, so a malformed magnitude is a fatal decode error.
func SignedMagnitudes(line string, start, stop int) (Risk, error) {
	if _, err := slice(line, start, stop); err != nil {
		return nil, err
	}
	out := make(Risk, 0, (stop-start)/6)
	for i := start; i < stop; i += 6 {
		chunk := line[i : i+6]
		mag, ok := parseInt(chunk[:5])
		if !ok {
			return nil, &ParseError{Start: i, Stop: i + 6, Input: chunk, Reason: "bad magnitude"}
		}
		scale := 1e-4
		if chunk[5] == '-' {
			scale = -1e-4
		}
		out = append(out, float64(mag)*scale)
	}
	return out, nil
}

// parseInt parses a base-10 signed integer, tolerating surrounding blanks.
// The second return value is false when the input does not contain an
// integer.
func parseInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// allDigits reports whether s is non-empty and consists entirely of ASCII
// digits.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
