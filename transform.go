package altercycle

// FlipStates makes abs(positions) full laps around the ring, flipping every
// node's orientation in traversal order. An even lap count is a net identity;
// an odd count inverts every orientation. Empty ring or positions == 0 is a
// no-op. Values and metadata are untouched.
func (c *Cycle[T]) FlipStates(positions int) {
	if c.head == nil || positions == 0 {
		return
	}
	if positions < 0 {
		positions = -positions
	}
	for lap := 0; lap < positions; lap++ {
		current := c.head
		for {
			current.Flip()
			current = current.next
			if current == c.head {
				break
			}
		}
	}
}

// ApplyTransformation replaces every node's value with fn(value, orientation)
// in ring order. Orientations, metadata, size, and ring structure are
// unchanged.
func (c *Cycle[T]) ApplyTransformation(fn func(value T, orientation int) T) {
	if c.head == nil {
		return
	}
	current := c.head
	for {
		current.value = fn(current.value, current.orientation)
		current = current.next
		if current == c.head {
			break
		}
	}
}
