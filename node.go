package altercycle

import (
	"fmt"
	"sort"
	"strings"
)

// Node is the unit of storage in a Cycle. It holds an opaque value, a binary
// orientation, the ring link to the next node, and an open-ended metadata bag.
// A Node is a passive record: all structural edits go through the Cycle.
type Node[T comparable] struct {
	value       T
	orientation int
	next        *Node[T]
	metadata    map[string]any
}

// NewNode creates a standalone node. Orientation must be 0 or 1; anything else
// returns ErrInvalidOrientation. A nil metadata map becomes an empty bag.
func NewNode[T comparable](value T, orientation int, metadata map[string]any) (*Node[T], error) {
	if orientation != 0 && orientation != 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidOrientation, orientation)
	}
	bag := make(map[string]any, len(metadata))
	for k, v := range metadata {
		bag[k] = v
	}
	return &Node[T]{
		value:       value,
		orientation: orientation,
		metadata:    bag,
	}, nil
}

// Value returns the node's payload.
func (n *Node[T]) Value() T {
	return n.value
}

// Orientation returns the node's binary state.
func (n *Node[T]) Orientation() int {
	return n.orientation
}

// Flip inverts the node's orientation.
func (n *Node[T]) Flip() {
	n.orientation = 1 - n.orientation
}

// SetMetadata stores a value in the node's metadata bag, replacing any
// existing entry for the key.
func (n *Node[T]) SetMetadata(key string, value any) {
	n.metadata[key] = value
}

// GetMetadata retrieves a metadata value. A missing key returns
// ErrMetadataNotFound.
func (n *Node[T]) GetMetadata(key string) (any, error) {
	v, ok := n.metadata[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMetadataNotFound, key)
	}
	return v, nil
}

// Metadata returns a copy of the node's metadata bag.
func (n *Node[T]) Metadata() map[string]any {
	out := make(map[string]any, len(n.metadata))
	for k, v := range n.metadata {
		out[k] = v
	}
	return out
}

// Equal reports whether two nodes agree on value, orientation, and metadata.
// Ring position is not part of node identity.
func (n *Node[T]) Equal(other *Node[T]) bool {
	if other == nil {
		return false
	}
	if n.value != other.value || n.orientation != other.orientation {
		return false
	}
	return n.Fingerprint() == other.Fingerprint()
}

// Fingerprint returns a deterministic string surrogate for the node's
// (value, orientation, metadata) identity, with metadata rendered in sorted
// key order. Fingerprints serve as map and set keys for pattern counting.
func (n *Node[T]) Fingerprint() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v|%d", n.value, n.orientation)
	if len(n.metadata) > 0 {
		keys := make([]string, 0, len(n.metadata))
		for k := range n.metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "|%s=%v", k, n.metadata[k])
		}
	}
	return b.String()
}

// String renders the node as value(orientation) with any metadata appended.
func (n *Node[T]) String() string {
	if len(n.metadata) == 0 {
		return fmt.Sprintf("%v(%d)", n.value, n.orientation)
	}
	return fmt.Sprintf("%v(%d::%v)", n.value, n.orientation, n.metadata)
}
