package dropdown

import "github.com/google/uuid"

// Item wraps a single candidate and tracks its activation state within the
// owning dropdown's collection. Sibling links are derived from the item's
// position and the collection's current length, never stored, so they stay
// correct across collection rebuilds.
type Item struct {
	id        string
	candidate Candidate
	owner     *Dropdown
	node      Node
	position  int
	active    bool
}

func newItem(c Candidate, owner *Dropdown) *Item {
	return &Item{
		id:        uuid.NewString(),
		candidate: c,
		owner:     owner,
		position:  -1,
	}
}

// ID returns the item's identity, stable for the item's lifetime.
func (i *Item) ID() string {
	return i.id
}

// Candidate returns the wrapped candidate.
func (i *Item) Candidate() Candidate {
	return i.candidate
}

// Active reports whether this item is the highlighted one.
func (i *Item) Active() bool {
	return i.active
}

// Position returns the item's index in the owning collection, or -1 for a
// detached item.
func (i *Item) Position() int {
	return i.position
}

// Next returns the item after this one in rank order. With rotation enabled
// it wraps past the end; otherwise it returns nil at the last item. It also
// returns nil for detached items.
func (i *Item) Next() *Item {
	return i.sibling(1)
}

// Previous is the mirror of [Item.Next].
func (i *Item) Previous() *Item {
	return i.sibling(-1)
}

func (i *Item) sibling(step int) *Item {
	if i.owner == nil || i.position < 0 {
		return nil
	}
	n := i.owner.items.Len()
	if n == 0 {
		return nil
	}
	pos := i.position + step
	if pos < 0 || pos >= n {
		if !i.owner.rotate {
			return nil
		}
		pos = ((pos % n) + n) % n
	}
	item, _ := i.owner.items.Get(pos)
	return item
}

// activate flips the active flag and applies the styling mutation once.
// Repeated calls while already active are no-ops.
func (i *Item) activate() {
	if i.active {
		return
	}
	i.active = true
	if i.node != nil {
		i.node.SetActive(true)
	}
}

func (i *Item) deactivate() {
	if !i.active {
		return
	}
	i.active = false
	if i.node != nil {
		i.node.SetActive(false)
	}
}

// attached records the item's slot in the owning collection at append time.
// The first item of an empty collection self-activates: the top ranked
// candidate is pre-selected.
func (i *Item) attached(position int, node Node) {
	i.position = position
	i.node = node
	if position == 0 {
		i.activate()
	}
}

// destroy releases the cached visual handle and detaches the item from its
// owner. The item must not be reused afterward.
func (i *Item) destroy() {
	i.active = false
	if i.node != nil {
		i.node.Remove()
		i.node = nil
	}
	i.owner = nil
	i.position = -1
}
