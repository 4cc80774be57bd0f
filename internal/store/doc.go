// Package store persists detection results and their candidate
// designations in SQLite.
//
// Saves are idempotent: a detection is keyed by its sequence word plus
// the SHA-256 of its canonical JSON snapshot, and duplicate saves are
// silently ignored. The confirmed/denied flags on candidates are never
// touched by the engine; the review commands are their only mutation
// path.
package store
