// Package motion defines the grid vocabulary of a choreography sequence:
// the eight grid locations, the rotation and reflection transform tables
// over them, per-hand motion records, and beats.
//
// The transform tables are the geometric ground truth for the CAP
// detection engine. They are plain read-only maps, total over the
// location set, and obey the expected group laws:
//
//   - 90° rotation generates a cyclic group of order 4
//     (four applications are the identity)
//   - 180° rotation equals 90° applied twice
//   - both reflections are involutions
//
// Everything in this package is an immutable value type. Input strings
// arrive lower-cased from ingestion; parsing is lenient and maps unknown
// or empty strings to zero values rather than returning errors, because
// a malformed field downgrades a comparison, never aborts one.
package motion
