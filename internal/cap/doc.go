// Package cap implements the Circular Alternating Pattern detection
// engine: it classifies the symmetry relationship between corresponding
// beats of a circular choreography sequence.
//
// ARCHITECTURE:
//
// Data flows one direction through pure functions:
//
//	raw sequence -> extracted beats -> beat pairs (halved, quartered)
//	            -> per-pair transformation matches -> formatted candidates
//	            -> final classification result
//
// No stage mutates another's output. The three comparers (rotation,
// reflection, swap/invert) are pure tag producers over two beats' hand
// motions; the orchestrator generates pairs at the two interval
// granularities and merges comparer output per pair; the formatter
// resolves base-vs-inverted ambiguity and ranks candidates; the detector
// walks the outcome decision procedure: circularity gate, parity gate,
// quartered uniform (with the compound sub-case), quartered modular,
// halved uniform, halved-group fallback.
//
// AMBIGUITY:
//
// When prop rotation direction data cannot distinguish a transformation
// from its inverted form, the comparers emit an ambiguous Match carrying
// both readings instead of guessing. The formatter's base-wins filter
// collapses the pair only when a separate comparer confirmed the base;
// otherwise both tags surface to the caller in allValidTransformations.
//
// TOTALITY:
//
// Nothing in the classification path returns an error or panics on
// malformed input. Missing fields downgrade comparisons, structural
// mismatches empty a granularity's pair list, and the unclassifiable
// case is a freeform result with an empty capType.
//
// The package holds no mutable state between Detect calls; a single
// Detector is safe for concurrent use across sequences.
package cap
