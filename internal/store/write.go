package store

import (
	"context"
	"fmt"
	"time"

	"github.com/roach88/pa2/internal/record"
)

// CreateBatch inserts a batch row for a decode run.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - duplicate IDs are
// silently ignored.
func (s *Store) CreateBatch(ctx context.Context, id, source string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO batches (id, source, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		id,
		source,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create batch: %w", err)
	}
	return nil
}

// WriteRecord inserts one decoded record into the store. The decoded field
// values are serialized as a JSON object with sorted keys, so re-running a
// load over the same input produces byte-identical rows.
//
// Uses ON CONFLICT DO NOTHING for idempotency - writing the same
// (batch, line) twice is silently ignored.
//
// Note: The batch referenced by batchID must exist (foreign key constraint).
func (s *Store) WriteRecord(ctx context.Context, batchID string, lineNo int, rec *record.Record) error {
	fieldsJSON, err := rec.FieldsJSON()
	if err != nil {
		return fmt.Errorf("write record: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records
		(batch_id, line_no, tag, record_name, raw, fields)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`,
		batchID,
		lineNo,
		rec.Tag(),
		rec.Name(),
		rec.Raw(),
		string(fieldsJSON),
	)
	if err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

// FinalizeBatch records the final line and error counts for a batch.
func (s *Store) FinalizeBatch(ctx context.Context, id string, lineCount, errorCount int) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE batches SET line_count = ?, error_count = ? WHERE id = ?
	`, lineCount, errorCount, id)
	if err != nil {
		return fmt.Errorf("finalize batch: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finalize batch: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("finalize batch: no such batch %q", id)
	}
	return nil
}
