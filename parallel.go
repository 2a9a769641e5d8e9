package altercycle

import "golang.org/x/sync/errgroup"

// ProcessParallel partitions the ring into workers contiguous, non-overlapping
// segments covering all nodes in traversal order and applies fn to each node
// of each segment concurrently, one task per segment. Segment sizes differ by
// at most one: the first (size mod workers) segments take the extra node.
//
// Boundaries are computed by a single walk before any task starts, and fn is
// called with no container lock held. Application order within a segment is
// ring order; there is no ordering between segments, and fn must synchronize
// any shared state it touches. The call blocks until every segment finishes.
// There is no cancellation or timeout: a fn that blocks forever blocks
// ProcessParallel forever. A workers value below 1 is treated as 1.
func (c *Cycle[T]) ProcessParallel(fn func(value T, orientation int), workers int) {
	if c.head == nil {
		return
	}
	if workers < 1 {
		workers = 1
	}

	length := c.size
	perWorker := length / workers

	var g errgroup.Group
	current := c.head
	for i := 0; i < workers; i++ {
		count := perWorker
		if i < length%workers {
			count++
		}
		start := current
		g.Go(func() error {
			node := start
			for j := 0; j < count; j++ {
				fn(node.value, node.orientation)
				node = node.next
			}
			return nil
		})
		for j := 0; j < count; j++ {
			current = current.next
		}
	}
	// Workers never return errors; Wait is the join-all barrier.
	_ = g.Wait()
}
