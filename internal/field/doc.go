// Package field provides the typed field accessors for PA2 fixed-width
// records.
//
// Every accessor is a pure function over (line, byte range): it reads only
// its declared slice of the input, touches no shared state, and decodes the
// same bytes to the same value every time. All offsets are 0-based and
// end-exclusive.
//
// The package deliberately preserves three distinct missing-value
// conventions from the wire format:
//   - Integer fields that fail to parse are ABSENT (Int.Valid == false),
//     never zero.
//   - ScaledFloat fields that fail to parse are NaN, so float consumers can
//     propagate the marker without branching.
//   - Time fields that fail to parse default to midnight. This is a silent
//     default, not a signal; blank time fields are routine in valid files.
//
// Date and SignedMagnitudeArray fields have no sentinel: malformed input is
// a hard decode error, since these fields are always populated in valid
// files and malformation indicates file corruption.
package field
