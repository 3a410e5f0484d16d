package schema

import (
	"fmt"

	"github.com/roach88/pa2/internal/field"
)

// Validation error codes (L100-L199).
const (
	ErrTagWidth       = "L101" // tag must be exactly two characters
	ErrDuplicateTag   = "L102" // tag registered twice
	ErrRecordName     = "L103" // record name empty
	ErrFieldName      = "L104" // field name empty
	ErrDuplicateField = "L105" // field name repeated within a schema
	ErrRangeInvalid   = "L106" // start/stop out of order or negative
	ErrStepInvalid    = "L107" // group step missing or not dividing the range
	ErrWidthInvalid   = "L108" // fixed-width kind with the wrong width
	ErrChunkInvalid   = "L109" // spans/risk range not a chunk multiple
	ErrScaleInvalid   = "L110" // float scale zero
)

// ValidationError describes one structural defect in a record schema.
type ValidationError struct {
	Tag     string
	Field   string
	Code    string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s.%s: %s", e.Code, e.Tag, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Tag, e.Message)
}

// Validate checks a record schema against the layout invariants. It
// collects every defect rather than failing fast, so a bad layout table
// surfaces all its problems in one pass.
func Validate(rs *RecordSchema) []ValidationError {
	var errs []ValidationError

	fail := func(fieldName, code, message string) {
		errs = append(errs, ValidationError{Tag: rs.Tag, Field: fieldName, Code: code, Message: message})
	}

	if len(rs.Tag) != 2 {
		fail("", ErrTagWidth, fmt.Sprintf("tag must be exactly 2 characters, got %q", rs.Tag))
	}
	if rs.Name == "" {
		fail("", ErrRecordName, "record name is required")
	}

	seen := make(map[string]bool, len(rs.Fields))
	for _, f := range rs.Fields {
		if f.Name == "" {
			fail("", ErrFieldName, "field name is required")
			continue
		}
		if seen[f.Name] {
			fail(f.Name, ErrDuplicateField, "field name repeated within schema")
		}
		seen[f.Name] = true

		if f.Start < 0 || f.Stop < f.Start {
			fail(f.Name, ErrRangeInvalid, fmt.Sprintf("invalid range [%d,%d)", f.Start, f.Stop))
			continue
		}

		switch f.Kind {
		case field.KindStringGroup:
			if f.Step <= 0 {
				fail(f.Name, ErrStepInvalid, "group step must be positive")
			} else if f.Width()%f.Step != 0 {
				fail(f.Name, ErrStepInvalid, fmt.Sprintf("range width %d not a multiple of step %d", f.Width(), f.Step))
			}
		case field.KindDate:
			if f.Width() != 8 {
				fail(f.Name, ErrWidthInvalid, fmt.Sprintf("date fields are 8 characters, got %d", f.Width()))
			}
		case field.KindTime:
			if f.Width() != 4 {
				fail(f.Name, ErrWidthInvalid, fmt.Sprintf("time fields are 4 characters, got %d", f.Width()))
			}
		case field.KindSpans:
			if f.Width()%14 != 0 {
				fail(f.Name, ErrChunkInvalid, fmt.Sprintf("spans width %d not a multiple of 14", f.Width()))
			}
		case field.KindRisk:
			if f.Width()%6 != 0 {
				fail(f.Name, ErrChunkInvalid, fmt.Sprintf("risk width %d not a multiple of 6", f.Width()))
			}
		case field.KindFloat:
			if f.Scale == 0 {
				fail(f.Name, ErrScaleInvalid, "float scale must be non-zero")
			}
		}
	}

	return errs
}
