// Package dropdown implements the state model of a popup selection menu for
// text-editing autocomplete: an ordered, circularly navigable collection of
// candidate items, a single active-item pointer, and a cancelable lifecycle
// (render, show, hide, select) that external observers may veto at every
// transition.
//
// All methods are meant to be called from a single UI event loop. Listener
// dispatch is synchronous and cancellation is advisory: a vetoed transition
// aborts its remaining steps and leaves state consistent.
package dropdown

import (
	"log/slog"

	"github.com/charmbracelet/dropdown/internal/csync"
)

// DefaultMaxCount is the default cap on how many candidates become visible
// items per render.
const DefaultMaxCount = 10

// DecorationFunc derives header or footer text from the full raw candidate
// batch. The batch is never truncated here, even when the display cap drops
// candidates from the list itself.
type DecorationFunc func(raw []any) string

// StaticDecoration wraps a fixed string as a [DecorationFunc].
func StaticDecoration(text string) DecorationFunc {
	return func([]any) string { return text }
}

// Dropdown owns the lifecycle state machine, the ordered item collection,
// visibility, and the header/footer decoration slots.
type Dropdown struct {
	surface     Surface
	items       *csync.Slice[*Item]
	listeners   *csync.Map[EventType, []Listener]
	decorations []Node

	shown     bool
	destroyed bool
	groupTag  string

	maxCount  int
	rotate    bool
	placement Placement
	header    DecorationFunc
	footer    DecorationFunc
	className string
	style     map[string]string
}

// Option configures a dropdown at construction.
type Option func(*Dropdown)

// WithMaxCount caps how many candidates become items per render.
// Non-positive values are ignored.
func WithMaxCount(n int) Option {
	return func(d *Dropdown) {
		if n > 0 {
			d.maxCount = n
		}
	}
}

// WithRotate controls whether navigation wraps past the collection ends.
// Rotation is on by default.
func WithRotate(rotate bool) Option {
	return func(d *Dropdown) {
		d.rotate = rotate
	}
}

// WithPlacement selects the vertical offset calculation.
func WithPlacement(p Placement) Option {
	return func(d *Dropdown) {
		d.placement = p
	}
}

// WithHeader sets a fixed header decoration.
func WithHeader(text string) Option {
	return WithHeaderFunc(StaticDecoration(text))
}

// WithHeaderFunc sets a header decoration computed from the full raw batch.
func WithHeaderFunc(fn DecorationFunc) Option {
	return func(d *Dropdown) {
		d.header = fn
	}
}

// WithFooter sets a fixed footer decoration.
func WithFooter(text string) Option {
	return WithFooterFunc(StaticDecoration(text))
}

// WithFooterFunc sets a footer decoration computed from the full raw batch.
func WithFooterFunc(fn DecorationFunc) Option {
	return func(d *Dropdown) {
		d.footer = fn
	}
}

// WithClassName overrides the container's decoration class.
func WithClassName(class string) Option {
	return func(d *Dropdown) {
		d.className = class
	}
}

// WithStyle sets container style properties, applied once at construction.
func WithStyle(style map[string]string) Option {
	return func(d *Dropdown) {
		d.style = style
	}
}

// New creates a dropdown drawing on the given surface. The surface must
// outlive the dropdown; [Dropdown.Destroy] releases it.
func New(surface Surface, opts ...Option) *Dropdown {
	d := &Dropdown{
		surface:   surface,
		items:     csync.NewSlice[*Item](),
		listeners: csync.NewMap[EventType, []Listener](),
		maxCount:  DefaultMaxCount,
		rotate:    true,
		className: "dropdown-menu",
	}
	for _, opt := range opts {
		opt(d)
	}
	surface.SetStyle("class", d.className)
	for property, value := range d.style {
		surface.SetStyle(property, value)
	}
	return d
}

// On registers a lifecycle listener. Listeners run synchronously in
// registration order when their event fires.
func (d *Dropdown) On(t EventType, fn Listener) {
	ls, _ := d.listeners.Get(t)
	d.listeners.Set(t, append(ls, fn))
}

// emit dispatches an event and reports whether the transition may proceed.
func (d *Dropdown) emit(t EventType, c *Candidate) bool {
	ls, ok := d.listeners.Get(t)
	if !ok {
		return true
	}
	e := &Event{Type: t, Candidate: c}
	for _, fn := range ls {
		fn(e)
	}
	if e.canceled {
		slog.Debug("dropdown transition canceled", "event", t.String())
	}
	return !e.canceled
}

// Render replaces the dropdown's contents with a new candidate batch,
// preserving rank order, and positions the container near the cursor. At
// most maxCount candidates become items; header and footer decorations are
// computed from the full batch regardless. The first item activates. A
// vetoed render leaves the prior collection, active item, and visibility
// untouched.
func (d *Dropdown) Render(candidates []Candidate, pos CursorPosition) {
	if d.destroyed {
		return
	}
	if !d.emit(EventRender, nil) {
		return
	}

	raw := make([]any, len(candidates))
	for i, c := range candidates {
		raw[i] = c.Value
	}

	count := min(d.maxCount, len(candidates))
	fresh := make([]*Item, 0, count)
	for _, c := range candidates[:count] {
		fresh = append(fresh, newItem(c, d))
	}

	d.Clear()

	if len(candidates) > 0 {
		d.setGroupTag(candidates[0].Group)
	} else {
		d.setGroupTag("")
	}

	d.appendDecoration(d.header, raw)
	for _, item := range fresh {
		node := d.surface.CreateNode(item.candidate.markup())
		item.attached(d.items.Append(item), node)
	}
	d.appendDecoration(d.footer, raw)

	d.surface.SetOffset(d.offsetFor(pos))

	// Rendering and visibility are independently cancelable: a vetoed show
	// keeps the fresh items while the view stays hidden.
	d.Show()
	d.emit(EventRendered, nil)
}

// Up moves the highlight to the previous item, or the last one when nothing
// is active. No-op unless shown and non-empty.
func (d *Dropdown) Up(nav *NavEvent) {
	d.moveActive(nav, true)
}

// Down moves the highlight to the next item, or the first one when nothing
// is active. No-op unless shown and non-empty.
func (d *Dropdown) Down(nav *NavEvent) {
	d.moveActive(nav, false)
}

func (d *Dropdown) moveActive(nav *NavEvent, up bool) {
	if !d.shown || d.items.Len() == 0 {
		return
	}
	var target *Item
	if active := d.ActiveItem(); active == nil {
		if up {
			target, _ = d.items.Get(d.items.Len() - 1)
		} else {
			target, _ = d.items.Get(0)
		}
	} else if up {
		target = active.Previous()
	} else {
		target = active.Next()
	}
	if target == nil {
		return
	}
	d.Activate(target)
	if nav != nil {
		nav.MarkHandled()
	}
}

// Select commits the given item as the user's choice. The cancelable select
// event fires first; a veto abandons the selection and keeps the dropdown
// open. Otherwise the view hides (itself vetoable), the collection is
// cleared either way, and the selected event reports the same candidate.
func (d *Dropdown) Select(item *Item) {
	if item == nil || d.destroyed {
		return
	}
	c := item.candidate
	if !d.emit(EventSelect, &c) {
		return
	}
	d.Hide()
	d.Clear()
	d.emit(EventSelected, &c)
}

// Show makes the dropdown visible, emitting the cancelable show event. No-op
// while already shown; a veto keeps the view hidden.
func (d *Dropdown) Show() {
	if d.shown || d.destroyed {
		return
	}
	if !d.emit(EventShow, nil) {
		return
	}
	d.surface.SetVisible(true)
	d.shown = true
	d.emit(EventShown, nil)
}

// Hide is the dual of [Dropdown.Show]: no-op unless shown, cancelable, and
// guarded against duplicate transitions.
func (d *Dropdown) Hide() {
	if !d.shown || d.destroyed {
		return
	}
	if !d.emit(EventHide, nil) {
		return
	}
	d.surface.SetVisible(false)
	d.shown = false
	d.emit(EventHidden, nil)
}

// Clear destroys every item and decoration and empties the collection,
// which also deactivates whatever was active. Idempotent on an empty
// collection.
func (d *Dropdown) Clear() {
	for _, item := range d.items.Take() {
		item.destroy()
	}
	for _, node := range d.decorations {
		node.Remove()
	}
	d.decorations = nil
}

// Destroy clears the collection and releases the surface. The dropdown must
// not be used afterward; repeated calls are no-ops.
func (d *Dropdown) Destroy() {
	if d.destroyed {
		return
	}
	d.destroyed = true
	d.Clear()
	d.surface.Destroy()
}

// Activate highlights the given item. The current active item deactivates
// first, so at most one item is ever active.
func (d *Dropdown) Activate(item *Item) {
	if item == nil || item.owner != d {
		return
	}
	if current := d.ActiveItem(); current != nil && current != item {
		current.deactivate()
	}
	item.activate()
}

// ActiveItem returns the highlighted item, or nil when nothing is active.
func (d *Dropdown) ActiveItem() *Item {
	for item := range d.items.Seq() {
		if item.active {
			return item
		}
	}
	return nil
}

// Items returns the current items in rank order.
func (d *Dropdown) Items() []*Item {
	return d.items.Collect()
}

// Shown reports whether the dropdown is visible.
func (d *Dropdown) Shown() bool {
	return d.shown
}

// GroupTag returns the source group of the top ranked candidate in the
// current batch, or the empty string between renders.
func (d *Dropdown) GroupTag() string {
	return d.groupTag
}

func (d *Dropdown) setGroupTag(tag string) {
	d.groupTag = tag
	d.surface.SetStyle("group", tag)
}

func (d *Dropdown) appendDecoration(fn DecorationFunc, raw []any) {
	if fn == nil {
		return
	}
	d.decorations = append(d.decorations, d.surface.CreateNode(fn(raw)))
}

func (d *Dropdown) offsetFor(pos CursorPosition) Offset {
	var o Offset
	if d.placement == PlacementTop {
		o.FromBottom = true
		o.Bottom = d.surface.ViewportHeight() - pos.Top + pos.LineHeight
	} else {
		o.Top = pos.Top
	}
	if pos.HasLeft {
		o.Left = pos.Left
	} else {
		o.FromRight = true
		o.Right = pos.Right
	}
	return o
}
