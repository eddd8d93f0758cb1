package dropdown

// Node is the visual handle for a single rendered line. Nodes are created by
// the surface in append order and removed when the dropdown clears.
type Node interface {
	// SetActive toggles the highlighted styling of the node.
	SetActive(active bool)
	// Remove detaches the node from the surface.
	Remove()
}

// Surface is the rendering collaborator the dropdown draws on.
// Implementations own element creation, layout math, and styling; the
// dropdown only drives them through this interface.
type Surface interface {
	// CreateNode appends a line of markup to the surface and returns its
	// handle.
	CreateNode(markup string) Node
	// SetVisible shows or hides the whole container.
	SetVisible(visible bool)
	// SetStyle sets a single styling property on the container.
	SetStyle(property, value string)
	// SetOffset positions the container.
	SetOffset(offset Offset)
	// ViewportHeight returns the height of the drawable area, used for
	// top placement offsets.
	ViewportHeight() int
	// Destroy releases the container and everything attached to it.
	Destroy()
}
