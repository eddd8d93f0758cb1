package dropdown

// EventType identifies a lifecycle notification emitted by a [Dropdown].
type EventType int

const (
	// EventRender fires before a candidate batch replaces the collection.
	// Cancelable: vetoing aborts the render with no state change.
	EventRender EventType = iota
	// EventRendered fires after a render completed.
	EventRendered
	// EventShow fires before the dropdown becomes visible. Cancelable:
	// vetoing keeps the view hidden while the items stay rendered.
	EventShow
	// EventShown fires after the dropdown became visible.
	EventShown
	// EventHide fires before the dropdown hides. Cancelable: vetoing keeps
	// the current visibility, though a pending clear still proceeds.
	EventHide
	// EventHidden fires after the dropdown hid.
	EventHidden
	// EventSelect fires before a selection is committed and carries the
	// chosen candidate. Cancelable: vetoing abandons the selection and
	// leaves the dropdown open.
	EventSelect
	// EventSelected fires after a selection was committed and carries the
	// chosen candidate.
	EventSelected
)

var eventNames = map[EventType]string{
	EventRender:   "render",
	EventRendered: "rendered",
	EventShow:     "show",
	EventShown:    "shown",
	EventHide:     "hide",
	EventHidden:   "hidden",
	EventSelect:   "select",
	EventSelected: "selected",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// Cancelable reports whether listeners may veto events of this type.
func (t EventType) Cancelable() bool {
	switch t {
	case EventRender, EventShow, EventHide, EventSelect:
		return true
	}
	return false
}

// Event is the value passed to listeners. Listener dispatch is synchronous:
// a listener may call [Event.PreventDefault] before control returns to the
// dropdown, which then aborts the remaining steps of the transition.
type Event struct {
	Type EventType

	// Candidate is set for select and selected events.
	Candidate *Candidate

	canceled bool
}

// PreventDefault requests cancellation of the transition that emitted this
// event. It has no effect on non-cancelable event types.
func (e *Event) PreventDefault() {
	if e.Type.Cancelable() {
		e.canceled = true
	}
}

// DefaultPrevented reports whether a listener requested cancellation.
func (e *Event) DefaultPrevented() bool {
	return e.canceled
}

// Listener observes dropdown lifecycle events. Listeners must not call back
// into the emitting dropdown's mutating methods from within their handler.
type Listener func(*Event)

// NavEvent lets [Dropdown.Up] and [Dropdown.Down] mark a host navigation
// event as handled, suppressing its default effect such as cursor movement
// in the host text field. Hosts without a competing default pass nil.
type NavEvent struct {
	handled bool
}

// MarkHandled records that the dropdown consumed the navigation event.
func (e *NavEvent) MarkHandled() {
	e.handled = true
}

// Handled reports whether the dropdown consumed the navigation event.
func (e *NavEvent) Handled() bool {
	return e.handled
}
