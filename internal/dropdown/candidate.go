package dropdown

import "fmt"

// Candidate is one ranked completion produced by the host search. The
// dropdown never inspects the payload beyond forwarding it; display markup
// comes from the caller-supplied Render function.
type Candidate struct {
	// Value is the raw payload the host search produced.
	Value any
	// Group identifies the source strategy that produced this candidate,
	// exposed for styling and selectors.
	Group string
	// Render produces the candidate's display markup.
	Render func() string
}

func (c Candidate) markup() string {
	if c.Render != nil {
		return c.Render()
	}
	return fmt.Sprint(c.Value)
}

// CursorPosition describes where the text cursor sits on the rendering
// surface. The horizontal anchor is Left when HasLeft is set, Right
// otherwise.
type CursorPosition struct {
	Top        int
	LineHeight int
	Left       int
	Right      int
	HasLeft    bool
}

// Placement selects the vertical offset calculation.
type Placement int

const (
	// PlacementBelow anchors the dropdown under the cursor line.
	PlacementBelow Placement = iota
	// PlacementTop anchors the dropdown above the cursor line, measured
	// from the bottom edge of the viewport.
	PlacementTop
)

// Offset is the computed on-screen position of the dropdown container.
type Offset struct {
	Top    int
	Bottom int
	Left   int
	Right  int

	// FromBottom means Bottom is measured from the viewport's bottom edge
	// instead of Top from its top edge.
	FromBottom bool
	// FromRight means Right is the horizontal anchor instead of Left.
	FromRight bool
}
