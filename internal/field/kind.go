package field

// Kind identifies one of the eight on-the-wire field encodings.
type Kind uint8

const (
	// KindString is a fixed-width text field, trailing whitespace stripped.
	KindString Kind = iota

	// KindStringGroup is a repeated text field split into fixed-width
	// chunks; chunks that trim to empty are omitted.
	KindStringGroup

	// KindInt is a base-10 signed integer; unparsable input is absent.
	KindInt

	// KindFloat is a scaled fixed-point number with an out-of-band sign
	// flag; unparsable input is NaN.
	KindFloat

	// KindDate is an 8-character YYYYMMDD calendar date; malformed input
	// is a fatal decode error.
	KindDate

	// KindTime is a 4-character HHMM time of day; unparsable input
	// defaults to midnight.
	KindTime

	// KindSpans is a list of month pairs packed into 14-character chunks;
	// non-numeric chunks are skipped.
	KindSpans

	// KindRisk is a fixed-count array of 6-character signed-magnitude
	// values scaled by 1e-4; malformed input is a fatal decode error.
	KindRisk
)

// String returns the kind name as used in layout configuration.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindStringGroup:
		return "strings"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindSpans:
		return "spans"
	case KindRisk:
		return "risk"
	default:
		return "unknown"
	}
}

// KindFromString parses a layout kind name. The second return value is
// false if the name is not a known kind.
func KindFromString(s string) (Kind, bool) {
	switch s {
	case "string":
		return KindString, true
	case "strings":
		return KindStringGroup, true
	case "int":
		return KindInt, true
	case "float":
		return KindFloat, true
	case "date":
		return KindDate, true
	case "time":
		return KindTime, true
	case "spans":
		return KindSpans, true
	case "risk":
		return KindRisk, true
	default:
		return 0, false
	}
}
