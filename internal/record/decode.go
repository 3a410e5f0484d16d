package record

import (
	"github.com/roach88/pa2/internal/field"
	"github.com/roach88/pa2/internal/schema"
)

// Decoder routes raw lines to their schemas. It holds only a reference to
// the immutable registry, so one Decoder may be shared by any number of
// goroutines.
type Decoder struct {
	reg *schema.Registry
}

// NewDecoder creates a Decoder over the given registry.
func NewDecoder(reg *schema.Registry) *Decoder {
	return &Decoder{reg: reg}
}

// DecodeLine decodes one raw line into a Record.
//
// The first two characters of the line select the schema. A missing schema
// yields an unknown-tag error; a field whose range runs past the end of the
// line, or a malformed Date/SignedMagnitudeArray field, fails the whole
// line. No partial record is ever returned.
func (d *Decoder) DecodeLine(line string) (*Record, error) {
	if len(line) < 2 {
		return nil, &DecodeError{Code: ErrCodeUnknownTag, Tag: line}
	}
	tag := line[:2]
	rs, ok := d.reg.Lookup(tag)
	if !ok {
		return nil, &DecodeError{Code: ErrCodeUnknownTag, Tag: tag}
	}

	values := make(map[string]field.Value, len(rs.Fields))
	for _, fs := range rs.Fields {
		v, err := fs.Decode(line)
		if err != nil {
			return nil, &DecodeError{Code: ErrCodeFieldFatal, Tag: tag, Field: fs.Name, Err: err}
		}
		values[fs.Name] = v
	}

	return &Record{raw: line, schema: rs, values: values}, nil
}
