package schema

import (
	"fmt"
	"sort"

	"github.com/roach88/pa2/internal/field"
)

// FieldSpec binds one named field to a byte range and an accessor kind.
// Specs are defined once per schema and never mutated.
type FieldSpec struct {
	Name  string
	Start int
	Stop  int
	Step  int        // chunk width, grouped kinds only
	Kind  field.Kind
	Scale float64 // ScaledFloat only; negative magnitude enables the out-of-band sign flag
}

// Width returns the declared byte width of the field.
func (s FieldSpec) Width() int { return s.Stop - s.Start }

// Decode applies the spec's accessor to a raw line. The returned value is a
// pure function of (line, spec); errors are range violations or fatal
// malformations, per the accessor's policy.
func (s FieldSpec) Decode(line string) (field.Value, error) {
	switch s.Kind {
	case field.KindString:
		return field.String(line, s.Start, s.Stop)
	case field.KindStringGroup:
		return field.StringGroup(line, s.Start, s.Stop, s.Step)
	case field.KindInt:
		return field.Integer(line, s.Start, s.Stop)
	case field.KindFloat:
		return field.ScaledFloat(line, s.Start, s.Stop, s.Scale)
	case field.KindDate:
		return field.DateAt(line, s.Start)
	case field.KindTime:
		return field.TimeAt(line, s.Start)
	case field.KindSpans:
		return field.TierSpans(line, s.Start, s.Stop)
	case field.KindRisk:
		return field.SignedMagnitudes(line, s.Start, s.Stop)
	default:
		return nil, fmt.Errorf("unknown field kind %d", s.Kind)
	}
}

// RecordSchema is the ordered, named field layout for one record tag.
// Tags are exactly two characters; single-character record kinds carry a
// trailing space (tag "81" is two meaningful characters, tag "T " is not).
type RecordSchema struct {
	Tag    string
	Name   string
	Fields []FieldSpec
}

// FieldNames returns the field names in declaration order.
func (r *RecordSchema) FieldNames() []string {
	names := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		names[i] = f.Name
	}
	return names
}

// Registry is the immutable tag-to-schema mapping. It is constructed once
// at startup from the layout configuration and never modified, so it is
// safe for concurrent readers without locking.
type Registry struct {
	schemas map[string]*RecordSchema
	tags    []string
}

// NewRegistry builds a registry from the given schemas, validating each one
// and rejecting duplicate tags. The input slice is copied; the registry
// holds no references to caller-owned memory.
func NewRegistry(schemas []RecordSchema) (*Registry, error) {
	reg := &Registry{schemas: make(map[string]*RecordSchema, len(schemas))}
	for i := range schemas {
		rs := schemas[i]
		if errs := Validate(&rs); len(errs) > 0 {
			return nil, fmt.Errorf("schema %q: %w", rs.Tag, errs[0])
		}
		if _, dup := reg.schemas[rs.Tag]; dup {
			return nil, fmt.Errorf("schema %q: %w", rs.Tag, ValidationError{
				Tag:     rs.Tag,
				Code:    ErrDuplicateTag,
				Message: "tag registered twice",
			})
		}
		reg.schemas[rs.Tag] = &rs
		reg.tags = append(reg.tags, rs.Tag)
	}
	sort.Strings(reg.tags)
	return reg, nil
}

// Lookup returns the schema registered for tag, if any.
func (r *Registry) Lookup(tag string) (*RecordSchema, bool) {
	rs, ok := r.schemas[tag]
	return rs, ok
}

// Tags returns all registered tags in sorted order.
func (r *Registry) Tags() []string {
	out := make([]string, len(r.tags))
	copy(out, r.tags)
	return out
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int { return len(r.schemas) }
