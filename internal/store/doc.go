// Package store provides SQLite-backed durable storage for decoded PA2
// batches.
//
// A batch groups the lines of one source file; each decoded line is stored
// as a record row carrying its tag, record name, raw text, and the decoded
// field values as JSON. Writes are idempotent: reloading the same batch ID
// is a no-op for rows that already exist.
package store
