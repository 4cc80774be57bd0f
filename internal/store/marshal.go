package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/austencloud/tka-scribe-sub012/internal/cap"
)

// marshalResult serializes a detection result to its canonical JSON
// snapshot and derives the content key from it. Identical results always
// produce identical bytes, so the key is stable across runs.
func marshalResult(r *cap.Result) (payload string, contentKey string, err error) {
	b, err := cap.MarshalCanonical(cap.Snapshot(r))
	if err != nil {
		return "", "", fmt.Errorf("canonical result: %w", err)
	}
	sum := sha256.Sum256(b)
	return string(b), hex.EncodeToString(sum[:]), nil
}
