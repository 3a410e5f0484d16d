// Package layout holds the authoritative PA2 record layout tables and
// compiles them into the schema registry.
//
// The tables live in records.cue, embedded at build time and compiled once
// through the CUE SDK. CUE enforces the structural invariants at the
// configuration layer (range ordering, kind names, tag shape); the compiled
// schemas are validated again by schema.NewRegistry before use.
package layout

import (
	_ "embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/roach88/pa2/internal/field"
	"github.com/roach88/pa2/internal/schema"
)

//go:embed records.cue
var recordsCUE string

// fieldDef mirrors one #Field entry in records.cue.
type fieldDef struct {
	Name  string  `json:"name"`
	Start int     `json:"start"`
	Stop  int     `json:"stop"`
	Step  int     `json:"step"`
	Kind  string  `json:"kind"`
	Scale float64 `json:"scale"`
}

// recordDef mirrors one #Record entry in records.cue.
type recordDef struct {
	Tag    string     `json:"tag"`
	Name   string     `json:"name"`
	Fields []fieldDef `json:"fields"`
}

// Load compiles the embedded layout tables into a fresh registry.
func Load() (*schema.Registry, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(recordsCUE, cue.Filename("records.cue"))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compiling layout tables: %s", cueerrors.Details(err, nil))
	}

	recordsVal := v.LookupPath(cue.ParsePath("records"))
	if err := recordsVal.Err(); err != nil {
		return nil, fmt.Errorf("locating records list: %s", cueerrors.Details(err, nil))
	}
	if err := recordsVal.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validating layout tables: %s", cueerrors.Details(err, nil))
	}

	var defs []recordDef
	if err := recordsVal.Decode(&defs); err != nil {
		return nil, fmt.Errorf("decoding layout tables: %w", err)
	}

	schemas := make([]schema.RecordSchema, 0, len(defs))
	for _, def := range defs {
		rs := schema.RecordSchema{
			Tag:    def.Tag,
			Name:   def.Name,
			Fields: make([]schema.FieldSpec, 0, len(def.Fields)),
		}
		for _, fd := range def.Fields {
			kind, ok := field.KindFromString(fd.Kind)
			if !ok {
				return nil, fmt.Errorf("record %q field %q: unknown kind %q", def.Tag, fd.Name, fd.Kind)
			}
			rs.Fields = append(rs.Fields, schema.FieldSpec{
				Name:  fd.Name,
				Start: fd.Start,
				Stop:  fd.Stop,
				Step:  fd.Step,
				Kind:  kind,
				Scale: fd.Scale,
			})
		}
		schemas = append(schemas, rs)
	}

	return schema.NewRegistry(schemas)
}

var (
	defaultOnce sync.Once
	defaultReg  *schema.Registry
	defaultErr  error
)

// Default returns the process-wide registry, compiling the layout tables on
// first use. The registry is immutable, so sharing it across goroutines is
// safe.
func Default() (*schema.Registry, error) {
	defaultOnce.Do(func() {
		defaultReg, defaultErr = Load()
	})
	return defaultReg, defaultErr
}
