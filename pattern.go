package altercycle

import (
	"fmt"
	"strings"
)

// Pair is one (value, orientation) element of a pattern window.
type Pair[T comparable] struct {
	Value       T
	Orientation int
}

// Pattern is a recurring window of consecutive (value, orientation) pairs
// together with how many ring positions start an occurrence of it.
type Pattern[T comparable] struct {
	Window []Pair[T]
	Count  int
}

// FindPatterns reads one window of the given length starting at every ring
// position (windows wrap across the seam, so the ring yields exactly Size
// overlapping windows) and returns each window that occurs more than once,
// with its occurrence count, in order of first sighting. Length greater than
// the ring size, a non-positive length, or an empty ring returns nil.
func (c *Cycle[T]) FindPatterns(length int) []Pattern[T] {
	if c.head == nil || length <= 0 || length > c.size {
		return nil
	}

	counts := make(map[string]int)
	windows := make(map[string][]Pair[T])
	var order []string

	current := c.head
	for {
		window := make([]Pair[T], 0, length)
		node := current
		for i := 0; i < length; i++ {
			window = append(window, Pair[T]{Value: node.value, Orientation: node.orientation})
			node = node.next
		}
		key := windowKey(window)
		if counts[key] == 0 {
			windows[key] = window
			order = append(order, key)
		}
		counts[key]++

		current = current.next
		if current == c.head {
			break
		}
	}

	var patterns []Pattern[T]
	for _, key := range order {
		if counts[key] > 1 {
			patterns = append(patterns, Pattern[T]{Window: windows[key], Count: counts[key]})
		}
	}
	return patterns
}

// windowKey builds an exact-equality map key for a window. The separator
// keeps (value, orientation) boundaries unambiguous for string payloads.
func windowKey[T comparable](window []Pair[T]) string {
	var b strings.Builder
	for _, p := range window {
		fmt.Fprintf(&b, "%v\x1f%d\x1e", p.Value, p.Orientation)
	}
	return b.String()
}
