package dropdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderedDropdown(t *testing.T, names ...string) (*Dropdown, *stubSurface) {
	t.Helper()
	s := newStubSurface()
	d := New(s)
	d.Render(candidates(names...), cursorAt(3))
	return d, s
}

func TestItemSiblings(t *testing.T) {
	t.Run("links derive from position", func(t *testing.T) {
		t.Parallel()
		d, _ := renderedDropdown(t, "a", "b", "c")
		items := d.Items()

		assert.Same(t, items[1], items[0].Next())
		assert.Same(t, items[2], items[1].Next())
		assert.Same(t, items[0], items[1].Previous())
	})

	t.Run("wraps at the edges", func(t *testing.T) {
		t.Parallel()
		d, _ := renderedDropdown(t, "a", "b", "c")
		items := d.Items()

		assert.Same(t, items[0], items[2].Next())
		assert.Same(t, items[2], items[0].Previous())
	})

	t.Run("single item is its own neighbor", func(t *testing.T) {
		t.Parallel()
		d, _ := renderedDropdown(t, "a")
		item := d.Items()[0]

		assert.Same(t, item, item.Next())
		assert.Same(t, item, item.Previous())
	})

	t.Run("nil at the edges without rotation", func(t *testing.T) {
		t.Parallel()
		s := newStubSurface()
		d := New(s, WithRotate(false))
		d.Render(candidates("a", "b"), cursorAt(3))
		items := d.Items()

		assert.Nil(t, items[1].Next())
		assert.Nil(t, items[0].Previous())
		assert.Same(t, items[1], items[0].Next())
	})

	t.Run("detached item has no siblings", func(t *testing.T) {
		t.Parallel()
		d, _ := renderedDropdown(t, "a", "b")
		item := d.Items()[0]
		d.Clear()

		assert.Nil(t, item.Next())
		assert.Nil(t, item.Previous())
	})
}

func TestItemActivation(t *testing.T) {
	t.Run("styling mutation is idempotent", func(t *testing.T) {
		t.Parallel()
		d, s := renderedDropdown(t, "a", "b")
		item := d.Items()[0]
		require.True(t, item.Active())

		node := s.nodes[0]
		mutations := node.activeMutations

		d.Activate(item)
		d.Activate(item)
		assert.Equal(t, mutations, node.activeMutations)
		assert.True(t, item.Active())
	})

	t.Run("activation moves the styling", func(t *testing.T) {
		t.Parallel()
		d, s := renderedDropdown(t, "a", "b")
		items := d.Items()

		d.Activate(items[1])
		assert.False(t, items[0].Active())
		assert.True(t, items[1].Active())
		assert.False(t, s.nodes[0].active)
		assert.True(t, s.nodes[1].active)
	})

	t.Run("foreign items are rejected", func(t *testing.T) {
		t.Parallel()
		d, _ := renderedDropdown(t, "a", "b")
		other, _ := renderedDropdown(t, "x")

		d.Activate(other.Items()[0])
		assert.Equal(t, 0, d.ActiveItem().Position())
	})
}

func TestItemDestroy(t *testing.T) {
	t.Parallel()

	d, s := renderedDropdown(t, "a")
	item := d.Items()[0]
	d.Clear()

	assert.False(t, item.Active())
	assert.True(t, s.nodes[0].removed)
	assert.Equal(t, -1, item.Position())
}

func TestItemIdentity(t *testing.T) {
	t.Parallel()

	d, _ := renderedDropdown(t, "a", "b")
	items := d.Items()
	assert.NotEmpty(t, items[0].ID())
	assert.NotEqual(t, items[0].ID(), items[1].ID())
}
