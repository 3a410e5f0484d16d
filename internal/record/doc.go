// Package record decodes raw PA2 lines into typed, named records.
//
// The Decoder reads the 2-character tag at the head of a line, looks up the
// registered schema, and applies every field spec to produce an immutable
// Record. Decoding a line touches only that line and the read-only
// registry, so independent lines can be decoded concurrently without
// locking.
//
// A decode surfaces exactly one of: a Record, an unknown-tag error, or a
// field-fatal error (malformed date or risk array, or a field range past
// the end of the line). Per-field sentinels (absent integers, NaN floats,
// midnight times) are values, not errors.
package record
