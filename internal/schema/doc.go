// Package schema defines the declarative record layout model: named field
// specs bound to byte ranges, per-tag record schemas, and the immutable
// registry that maps a 2-character record tag to its schema.
//
// A schema is pure configuration. The registry is built once before any
// decoding starts and is read-only afterwards, so concurrent decoders need
// no synchronization.
package schema
