package field

import "fmt"

// RangeError indicates that a field's declared byte range extends past the
// end of the supplied line. The engine performs no other line-length
// validation; a short line surfaces here, field by field.
type RangeError struct {
	Start   int
	Stop    int
	LineLen int
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("field range [%d,%d) beyond end of line (len=%d)", e.Start, e.Stop, e.LineLen)
}

// ParseError indicates malformed input in a field that has no sentinel
// policy (Date, SignedMagnitudeArray). It is fatal for the whole-line
// decode.
type ParseError struct {
	Start  int
	Stop   int
	Input  string
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed field at [%d,%d): %s: %q", e.Start, e.Stop, e.Reason, e.Input)
}
