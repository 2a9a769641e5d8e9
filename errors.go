// Package altercycle provides a circular sequence container in which every
// element carries a binary orientation that strictly alternates between
// neighbors, except at the seam where the last-appended node meets the head.
// The seam exemption mirrors the one-sided-twist property of a Möbius strip.
//
// Structural mutation (Append, InsertAfter, Remove) is serialized by a single
// lock. Read paths (iteration, FindPatterns, FlipStates, ApplyTransformation,
// CreateCheckpoint, and the traversal split inside ProcessParallel) run
// without that lock and may observe a ring mid-mutation. Callers that mix
// concurrent writers with readers get inconsistent traversals; this is a
// documented limitation of the design, not a supported mode.
package altercycle

import "errors"

// Node errors
var (
	// ErrInvalidOrientation indicates a node was constructed with an
	// orientation outside {0, 1}.
	ErrInvalidOrientation = errors.New("orientation must be 0 or 1")

	// ErrMetadataNotFound indicates a metadata key does not exist on the node.
	ErrMetadataNotFound = errors.New("metadata key not found")
)
