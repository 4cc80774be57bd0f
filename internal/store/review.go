package store

import (
	"context"
	"fmt"
)

// ConfirmCandidate marks a candidate as confirmed by the reviewer,
// clearing any earlier denial. This is the only code path that sets the
// confirmed flag.
func (s *Store) ConfirmCandidate(ctx context.Context, detectionID string, position int) error {
	return s.setVerdict(ctx, detectionID, position, true)
}

// DenyCandidate marks a candidate as denied by the reviewer, clearing
// any earlier confirmation.
func (s *Store) DenyCandidate(ctx context.Context, detectionID string, position int) error {
	return s.setVerdict(ctx, detectionID, position, false)
}

func (s *Store) setVerdict(ctx context.Context, detectionID string, position int, confirmed bool) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE candidates
		SET confirmed = ?, denied = ?
		WHERE detection_id = ? AND position = ?
	`,
		confirmed,
		!confirmed,
		detectionID,
		position,
	)
	if err != nil {
		return fmt.Errorf("set verdict: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set verdict: rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no candidate at position %d for detection %s", position, detectionID)
	}

	return nil
}
