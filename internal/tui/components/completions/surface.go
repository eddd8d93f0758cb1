package completions

import (
	"github.com/charmbracelet/dropdown/internal/dropdown"
)

// cellNode is one rendered line of the popup.
type cellNode struct {
	text    string
	active  bool
	removed bool
}

func (n *cellNode) SetActive(active bool) {
	n.active = active
}

func (n *cellNode) Remove() {
	n.removed = true
}

// cellSurface adapts the dropdown's rendering surface to terminal cells:
// nodes are lines, the offset is a cell anchor, and styling happens when the
// component assembles its view.
type cellSurface struct {
	nodes     []*cellNode
	styles    map[string]string
	offset    dropdown.Offset
	height    int
	visible   bool
	destroyed bool
}

func newCellSurface() *cellSurface {
	return &cellSurface{styles: map[string]string{}}
}

// CreateNode implements dropdown.Surface.
func (s *cellSurface) CreateNode(markup string) dropdown.Node {
	s.compact()
	n := &cellNode{text: markup}
	s.nodes = append(s.nodes, n)
	return n
}

// SetVisible implements dropdown.Surface.
func (s *cellSurface) SetVisible(visible bool) {
	s.visible = visible
}

// SetStyle implements dropdown.Surface.
func (s *cellSurface) SetStyle(property, value string) {
	s.styles[property] = value
}

// SetOffset implements dropdown.Surface.
func (s *cellSurface) SetOffset(offset dropdown.Offset) {
	s.offset = offset
}

// ViewportHeight implements dropdown.Surface.
func (s *cellSurface) ViewportHeight() int {
	return s.height
}

// Destroy implements dropdown.Surface.
func (s *cellSurface) Destroy() {
	s.destroyed = true
	s.nodes = nil
}

// lines returns the nodes still attached, in append order.
func (s *cellSurface) lines() []*cellNode {
	s.compact()
	return s.nodes
}

func (s *cellSurface) compact() {
	live := s.nodes[:0]
	for _, n := range s.nodes {
		if !n.removed {
			live = append(live, n)
		}
	}
	s.nodes = live
}
