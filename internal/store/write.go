package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/austencloud/tka-scribe-sub012/internal/cap"
)

// SaveDetection inserts a detection result and its candidate
// designations for a sequence word. Returns the detection ID and whether
// a new row was inserted.
//
// Uses ON CONFLICT(word, content_key) DO NOTHING for idempotency: saving
// the same result for the same word twice returns the existing ID with
// inserted=false, and the existing candidates (including any review
// verdicts already recorded on them) are left untouched.
func (s *Store) SaveDetection(ctx context.Context, word string, r *cap.Result) (id string, inserted bool, err error) {
	payload, contentKey, err := marshalResult(r)
	if err != nil {
		return "", false, fmt.Errorf("save detection: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", false, fmt.Errorf("save detection: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	id = uuid.Must(uuid.NewV7()).String()
	result, err := tx.ExecContext(ctx, `
		INSERT INTO detections
		(id, word, content_key, cap_type, is_circular, is_freeform, is_modular, is_axis_alternating, result)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(word, content_key) DO NOTHING
	`,
		id,
		word,
		contentKey,
		r.CapType,
		r.IsCircular,
		r.IsFreeform,
		r.IsModular,
		r.IsAxisAlternating,
		payload,
	)
	if err != nil {
		return "", false, fmt.Errorf("save detection: insert: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return "", false, fmt.Errorf("save detection: rows affected: %w", err)
	}

	if rowsAffected == 0 {
		// Conflict - detection already saved, fetch the existing ID
		err = tx.QueryRowContext(ctx, `
			SELECT id FROM detections WHERE word = ? AND content_key = ?
		`, word, contentKey).Scan(&id)
		if err != nil {
			return "", false, fmt.Errorf("save detection: select existing: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return "", false, fmt.Errorf("save detection: commit (existing): %w", err)
		}
		return id, false, nil
	}

	for pos, c := range r.CandidateDesignations {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO candidates
			(detection_id, position, cap_type, label, description, direction)
			VALUES (?, ?, ?, ?, ?, ?)
		`,
			id,
			pos,
			c.CapType,
			c.Label,
			c.Description,
			string(c.RotationDirection),
		)
		if err != nil {
			return "", false, fmt.Errorf("save detection: insert candidate %d: %w", pos, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", false, fmt.Errorf("save detection: commit: %w", err)
	}

	return id, true, nil
}
