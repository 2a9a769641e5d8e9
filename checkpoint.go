package altercycle

import "time"

// CheckpointNode is the serialized form of one ring node.
type CheckpointNode[T comparable] struct {
	Value       T              `json:"value"`
	Orientation int            `json:"orientation"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// Checkpoint is a point-in-time copy of the ring in traversal order starting
// at head. It is a value snapshot: mutating the container afterwards is never
// observable through an already-created checkpoint. The core defines no
// restore operation; callers rebuild a ring by replaying Append over Nodes.
type Checkpoint[T comparable] struct {
	Nodes     []CheckpointNode[T] `json:"nodes"`
	Timestamp int64               `json:"timestamp"`
}

// CreateCheckpoint captures the ring's current contents. An empty ring yields
// an empty (non-nil) node list. Timestamp is Unix nanoseconds.
func (c *Cycle[T]) CreateCheckpoint() Checkpoint[T] {
	cp := Checkpoint[T]{
		Nodes:     make([]CheckpointNode[T], 0, c.size),
		Timestamp: time.Now().UnixNano(),
	}
	if c.head == nil {
		return cp
	}
	current := c.head
	for {
		cp.Nodes = append(cp.Nodes, CheckpointNode[T]{
			Value:       current.value,
			Orientation: current.orientation,
			Metadata:    current.Metadata(),
		})
		current = current.next
		if current == c.head {
			break
		}
	}
	return cp
}
