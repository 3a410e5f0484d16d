package record

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"github.com/roach88/pa2/internal/field"
	"github.com/roach88/pa2/internal/schema"
)

// NamedValue pairs a field name with its decoded value.
type NamedValue struct {
	Name  string
	Value field.Value
}

// Record is one decoded PA2 line. It retains the raw line and the schema it
// was decoded against, and is immutable after construction.
type Record struct {
	raw    string
	schema *schema.RecordSchema
	values map[string]field.Value
}

// Raw returns the original raw line.
func (r *Record) Raw() string { return r.raw }

// Tag returns the 2-character record tag.
func (r *Record) Tag() string { return r.schema.Tag }

// Name returns the record kind name, e.g. "CurrencyConversion".
func (r *Record) Name() string { return r.schema.Name }

// Field returns the decoded value for name. The second return value is
// false if the schema declares no such field.
func (r *Record) Field(name string) (field.Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Fields returns every decoded field in schema declaration order.
func (r *Record) Fields() []NamedValue {
	out := make([]NamedValue, 0, len(r.schema.Fields))
	for _, fs := range r.schema.Fields {
		out = append(out, NamedValue{Name: fs.Name, Value: r.values[fs.Name]})
	}
	return out
}

// Equal reports value equality: two records are equal iff they carry the
// same raw line and were decoded against the same tag. Field values are a
// pure function of both, so comparing them would be redundant.
func (r *Record) Equal(other *Record) bool {
	if other == nil {
		return false
	}
	return r.raw == other.raw && r.schema.Tag == other.schema.Tag
}

// String returns the canonical rendering: the record name followed by every
// field as name=value, sorted lexicographically by field name. The output
// is deterministic and is what the golden tests pin down.
func (r *Record) String() string {
	names := make([]string, 0, len(r.values))
	for name := range r.values {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(r.schema.Name)
	b.WriteByte('(')
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(r.values[name].Render())
	}
	b.WriteByte(')')
	return b.String()
}

// MarshalJSON implements json.Marshaler. Fields marshal as an object keyed
// by field name; keys are emitted in sorted order for stable output.
func (r *Record) MarshalJSON() ([]byte, error) {
	fieldsJSON, err := r.FieldsJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(`{"tag":`)
	tag, err := json.Marshal(r.schema.Tag)
	if err != nil {
		return nil, err
	}
	buf.Write(tag)
	buf.WriteString(`,"record":`)
	name, err := json.Marshal(r.schema.Name)
	if err != nil {
		return nil, err
	}
	buf.Write(name)
	buf.WriteString(`,"fields":`)
	buf.Write(fieldsJSON)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FieldsJSON marshals just the field map as a JSON object with sorted keys.
func (r *Record) FieldsJSON() ([]byte, error) {
	// json.Marshal sorts map keys, and every field.Value marshals
	// deterministically.
	return json.Marshal(r.values)
}

// Plain returns the record as plain Go values for generic encoders such as
// YAML: tag, record name, and a field map produced by field.Plain.
func (r *Record) Plain() map[string]any {
	fields := make(map[string]any, len(r.values))
	for name, v := range r.values {
		fields[name] = field.Plain(v)
	}
	return map[string]any{
		"tag":    r.schema.Tag,
		"record": r.schema.Name,
		"fields": fields,
	}
}
