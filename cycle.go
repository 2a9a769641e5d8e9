package altercycle

import (
	"iter"
	"strings"
	"sync"
)

// Cycle is a circular sequence of nodes with alternating orientations. The
// zero value is not usable; construct with New. The container owns the ring:
// head is the only externally held reference, and every other node is reached
// by following next links until head recurs.
type Cycle[T comparable] struct {
	mu   sync.Mutex
	head *Node[T]
	size int
}

// New creates an empty Cycle.
func New[T comparable]() *Cycle[T] {
	return &Cycle[T]{}
}

// Append adds a value at the seam, immediately before head. The first node
// links to itself; every later node takes the complement of the orientation
// of the node it follows, so orientations alternate 0,1,0,1,... in append
// order. Finding the seam walks the full ring (no tail pointer is kept), so
// each Append is O(n).
func (c *Cycle[T]) Append(value T, metadata ...map[string]any) {
	var bag map[string]any
	if len(metadata) > 0 {
		bag = metadata[0]
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	node, _ := NewNode(value, 0, bag)
	if c.head == nil {
		c.head = node
		node.next = node
	} else {
		last := c.head
		for last.next != c.head {
			last = last.next
		}
		node.orientation = 1 - last.orientation
		last.next = node
		node.next = c.head
	}
	c.size++
}

// InsertAfter inserts a new node immediately after the first node whose value
// equals target, giving it the complement of the target's orientation. It
// reports whether a target was found; an empty ring or absent value leaves
// the ring untouched.
func (c *Cycle[T]) InsertAfter(target, value T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.head == nil {
		return false
	}
	current := c.head
	for {
		if current.value == target {
			node, _ := NewNode(value, 1-current.orientation, nil)
			node.next = current.next
			current.next = node
			c.size++
			return true
		}
		current = current.next
		if current == c.head {
			return false
		}
	}
}

// Remove unlinks the first node whose value equals the argument and reports
// whether a removal occurred. Removing head re-anchors head at the following
// node, or empties the ring when it was the sole node. The splice can leave
// two same-orientation neighbors adjacent; alternation is not re-enforced.
func (c *Cycle[T]) Remove(value T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.head == nil {
		return false
	}

	if c.head.value == value {
		if c.head.next == c.head {
			c.head = nil
		} else {
			last := c.head
			for last.next != c.head {
				last = last.next
			}
			last.next = c.head.next
			c.head = c.head.next
		}
		c.size--
		return true
	}

	current := c.head
	for current.next != c.head {
		if current.next.value == value {
			current.next = current.next.next
			c.size--
			return true
		}
		current = current.next
	}
	return false
}

// Size returns the current node count.
func (c *Cycle[T]) Size() int {
	return c.size
}

// All returns a restartable iterator over (value, orientation) pairs in ring
// order starting at head, terminating once the traversal returns to head.
func (c *Cycle[T]) All() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		if c.head == nil {
			return
		}
		current := c.head
		for {
			if !yield(current.value, current.orientation) {
				return
			}
			current = current.next
			if current == c.head {
				return
			}
		}
	}
}

// String renders the ring in traversal order for diagnostics.
func (c *Cycle[T]) String() string {
	if c.head == nil {
		return "Cycle([])"
	}
	var parts []string
	current := c.head
	for {
		parts = append(parts, current.String())
		current = current.next
		if current == c.head {
			break
		}
	}
	return "Cycle([" + strings.Join(parts, " -> ") + "])"
}
