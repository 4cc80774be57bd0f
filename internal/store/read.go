package store

import (
	"context"
	"fmt"
)

// Detection is one saved detection row.
type Detection struct {
	ID                string `json:"id"`
	Word              string `json:"word"`
	ContentKey        string `json:"contentKey"`
	CapType           string `json:"capType"`
	IsCircular        bool   `json:"isCircular"`
	IsFreeform        bool   `json:"isFreeform"`
	IsModular         bool   `json:"isModular"`
	IsAxisAlternating bool   `json:"isAxisAlternating"`
	Result            string `json:"result"`
	CreatedAt         string `json:"createdAt"`
}

// Candidate is one ranked candidate designation row.
type Candidate struct {
	ID          int64  `json:"id"`
	DetectionID string `json:"detectionId"`
	Position    int    `json:"position"`
	CapType     string `json:"capType"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Direction   string `json:"direction,omitempty"`
	Confirmed   bool   `json:"confirmed"`
	Denied      bool   `json:"denied"`
}

const detectionColumns = `id, word, content_key, cap_type, is_circular, is_freeform, is_modular, is_axis_alternating, result, created_at`

// ListDetections returns saved detections, newest first. An empty word
// lists everything. Returns an empty slice (not nil) when nothing
// matches.
func (s *Store) ListDetections(ctx context.Context, word string) ([]Detection, error) {
	query := `SELECT ` + detectionColumns + ` FROM detections ORDER BY created_at DESC, id DESC`
	args := []any{}
	if word != "" {
		query = `SELECT ` + detectionColumns + ` FROM detections WHERE word = ? ORDER BY created_at DESC, id DESC`
		args = append(args, word)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query detections: %w", err)
	}
	defer rows.Close()

	detections := []Detection{}
	for rows.Next() {
		var d Detection
		if err := rows.Scan(
			&d.ID, &d.Word, &d.ContentKey, &d.CapType,
			&d.IsCircular, &d.IsFreeform, &d.IsModular, &d.IsAxisAlternating,
			&d.Result, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan detection: %w", err)
		}
		detections = append(detections, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate detections: %w", err)
	}

	return detections, nil
}

// GetDetection retrieves a single detection by ID.
// Returns sql.ErrNoRows if not found.
func (s *Store) GetDetection(ctx context.Context, id string) (Detection, error) {
	var d Detection
	err := s.db.QueryRowContext(ctx, `
		SELECT `+detectionColumns+` FROM detections WHERE id = ?
	`, id).Scan(
		&d.ID, &d.Word, &d.ContentKey, &d.CapType,
		&d.IsCircular, &d.IsFreeform, &d.IsModular, &d.IsAxisAlternating,
		&d.Result, &d.CreatedAt,
	)
	if err != nil {
		return Detection{}, err
	}
	return d, nil
}

// ListCandidates returns a detection's candidates in rank order.
// Returns an empty slice (not nil) when the detection has none.
func (s *Store) ListCandidates(ctx context.Context, detectionID string) ([]Candidate, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, detection_id, position, cap_type, label, description, direction, confirmed, denied
		FROM candidates
		WHERE detection_id = ?
		ORDER BY position ASC
	`, detectionID)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	defer rows.Close()

	candidates := []Candidate{}
	for rows.Next() {
		var c Candidate
		if err := rows.Scan(
			&c.ID, &c.DetectionID, &c.Position, &c.CapType,
			&c.Label, &c.Description, &c.Direction,
			&c.Confirmed, &c.Denied,
		); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candidates: %w", err)
	}

	return candidates, nil
}
