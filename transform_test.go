package altercycle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlipStates(t *testing.T) {
	tests := []struct {
		name             string
		positions        int
		wantOrientations []int
	}{
		{name: "zero is a no-op", positions: 0, wantOrientations: []int{0, 1, 0, 1}},
		{name: "single lap inverts", positions: 1, wantOrientations: []int{1, 0, 1, 0}},
		{name: "even laps are identity", positions: 2, wantOrientations: []int{0, 1, 0, 1}},
		{name: "odd laps invert", positions: 3, wantOrientations: []int{1, 0, 1, 0}},
		{name: "negative counts laps by magnitude", positions: -1, wantOrientations: []int{1, 0, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New[string]()
			for _, v := range []string{"A", "B", "C", "D"} {
				c.Append(v)
			}

			c.FlipStates(tt.positions)

			pairs := collect(c)
			require.Len(t, pairs, 4)
			for i, p := range pairs {
				assert.Equal(t, tt.wantOrientations[i], p.Orientation, "position %d", i)
			}
		})
	}
}

func TestFlipStatesDoubleApplicationIsIdentity(t *testing.T) {
	c := New[string]()
	c.Append("A", map[string]any{"k": 1})
	c.Append("B")
	c.Append("C")

	before := collect(c)
	c.FlipStates(3)
	c.FlipStates(3)
	assert.Equal(t, before, collect(c))

	// Metadata survives twisting.
	cp := c.CreateCheckpoint()
	assert.Equal(t, map[string]any{"k": 1}, cp.Nodes[0].Metadata)
}

func TestFlipStatesEmptyRing(t *testing.T) {
	c := New[string]()
	c.FlipStates(5) // must not panic
	assert.Equal(t, 0, c.Size())
}

func TestApplyTransformation(t *testing.T) {
	c := New[string]()
	for _, v := range []string{"a", "b", "c"} {
		c.Append(v, map[string]any{"orig": v})
	}

	c.ApplyTransformation(func(v string, orientation int) string {
		if orientation == 1 {
			return strings.ToUpper(v)
		}
		return v
	})

	pairs := collect(c)
	require.Len(t, pairs, 3)
	assert.Equal(t, "a", pairs[0].Value)
	assert.Equal(t, "B", pairs[1].Value)
	assert.Equal(t, "c", pairs[2].Value)

	// Orientation sequence and metadata are untouched.
	assert.Equal(t, []int{0, 1, 0}, []int{pairs[0].Orientation, pairs[1].Orientation, pairs[2].Orientation})
	cp := c.CreateCheckpoint()
	assert.Equal(t, map[string]any{"orig": "b"}, cp.Nodes[1].Metadata)
	assert.Equal(t, 3, c.Size())
}

func TestApplyTransformationEmptyRing(t *testing.T) {
	c := New[int]()
	c.ApplyTransformation(func(v, _ int) int { return v + 1 })
	assert.Equal(t, 0, c.Size())
}
