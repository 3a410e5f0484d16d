package record

import (
	"errors"
	"fmt"
)

// DecodeErrorCode categorizes line decode failures.
type DecodeErrorCode string

const (
	// ErrCodeUnknownTag indicates the line's 2-character prefix has no
	// registered schema. Non-retryable; whether it aborts a batch is the
	// caller's policy.
	ErrCodeUnknownTag DecodeErrorCode = "UNKNOWN_TAG"

	// ErrCodeFieldFatal indicates a field with no sentinel policy was
	// malformed, or a field's range ran past the end of the line. No
	// partial record is produced.
	ErrCodeFieldFatal DecodeErrorCode = "FIELD_FATAL"
)

// DecodeError represents a whole-line decode failure.
type DecodeError struct {
	Code  DecodeErrorCode
	Tag   string
	Field string // failing field name, for ErrCodeFieldFatal
	Err   error  // underlying field error, if any
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s: tag %q field %q: %v", e.Code, e.Tag, e.Field, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: tag %q: %v", e.Code, e.Tag, e.Err)
	default:
		return fmt.Sprintf("%s: tag %q", e.Code, e.Tag)
	}
}

// Unwrap returns the underlying field error.
func (e *DecodeError) Unwrap() error { return e.Err }

// IsUnknownTag reports whether err is an unknown-tag decode failure.
// Uses errors.As to handle wrapped errors.
func IsUnknownTag(err error) bool {
	var de *DecodeError
	return errors.As(err, &de) && de.Code == ErrCodeUnknownTag
}

// IsFieldFatal reports whether err is a field-fatal decode failure.
// Uses errors.As to handle wrapped errors.
func IsFieldFatal(err error) bool {
	var de *DecodeError
	return errors.As(err, &de) && de.Code == ErrCodeFieldFatal
}
