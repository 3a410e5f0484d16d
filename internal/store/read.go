package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Batch is one decode run over a PA2 source.
type Batch struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	CreatedAt  time.Time `json:"created_at"`
	LineCount  int       `json:"line_count"`
	ErrorCount int       `json:"error_count"`
}

// StoredRecord is one persisted decoded line.
type StoredRecord struct {
	BatchID    string          `json:"batch_id"`
	LineNo     int             `json:"line_no"`
	Tag        string          `json:"tag"`
	RecordName string          `json:"record_name"`
	Raw        string          `json:"raw"`
	Fields     json.RawMessage `json:"fields"`
}

// TagCount is the number of records carrying one tag within a batch.
type TagCount struct {
	Tag        string `json:"tag"`
	RecordName string `json:"record_name"`
	Count      int    `json:"count"`
}

// Batches returns every batch, newest first.
func (s *Store) Batches(ctx context.Context) ([]Batch, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source, created_at, line_count, error_count
		FROM batches
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	var out []Batch
	for rows.Next() {
		var b Batch
		var createdAt string
		if err := rows.Scan(&b.ID, &b.Source, &createdAt, &b.LineCount, &b.ErrorCount); err != nil {
			return nil, fmt.Errorf("list batches: scan: %w", err)
		}
		b.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("list batches: parse created_at: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	return out, nil
}

// TagCounts returns per-tag record counts for a batch, ordered by tag.
func (s *Store) TagCounts(ctx context.Context, batchID string) ([]TagCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT tag, record_name, COUNT(*)
		FROM records
		WHERE batch_id = ?
		GROUP BY tag, record_name
		ORDER BY tag
	`, batchID)
	if err != nil {
		return nil, fmt.Errorf("tag counts: %w", err)
	}
	defer rows.Close()

	var out []TagCount
	for rows.Next() {
		var tc TagCount
		if err := rows.Scan(&tc.Tag, &tc.RecordName, &tc.Count); err != nil {
			return nil, fmt.Errorf("tag counts: scan: %w", err)
		}
		out = append(out, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tag counts: %w", err)
	}
	return out, nil
}

// RecordsByTag returns every record with the given tag in a batch, in line
// order.
func (s *Store) RecordsByTag(ctx context.Context, batchID, tag string) ([]StoredRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT batch_id, line_no, tag, record_name, raw, fields
		FROM records
		WHERE batch_id = ? AND tag = ?
		ORDER BY line_no
	`, batchID, tag)
	if err != nil {
		return nil, fmt.Errorf("records by tag: %w", err)
	}
	defer rows.Close()

	var out []StoredRecord
	for rows.Next() {
		var r StoredRecord
		var fields string
		if err := rows.Scan(&r.BatchID, &r.LineNo, &r.Tag, &r.RecordName, &r.Raw, &fields); err != nil {
			return nil, fmt.Errorf("records by tag: scan: %w", err)
		}
		r.Fields = json.RawMessage(fields)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("records by tag: %w", err)
	}
	return out, nil
}
