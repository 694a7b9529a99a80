package disclosure

// Group is the shared disclosure state for one list of collapsible items.
// The zero value is a group with everything collapsed.
type Group struct {
	allOpen    bool
	generation uint64
}

// NewGroup returns a group with every item collapsed.
func NewGroup() *Group {
	return &Group{}
}

// ToggleAll flips the shared flag and starts a new generation. Every item
// re-syncs to the new flag on its next observation, discarding any individual
// override made under the previous generation.
func (g *Group) ToggleAll() {
	g.allOpen = !g.allOpen
	g.generation++
}

// AllOpen reports the shared flag.
func (g *Group) AllOpen() bool {
	return g.allOpen
}

// Generation identifies the current broadcast epoch.
func (g *Group) Generation() uint64 {
	return g.generation
}

// Item tracks the open state of one collapsible entry.
type Item struct {
	open bool
	gen  uint64
}

// NewItem creates an item initialized from the group state active right now.
func NewItem(g *Group) Item {
	return Item{open: g.allOpen, gen: g.generation}
}

// Open reports whether the item is expanded, re-syncing first if the group has
// broadcast a new generation since the item last looked.
func (it *Item) Open(g *Group) bool {
	it.sync(g)
	return it.open
}

// Toggle flips this item alone. The override survives re-renders but not the
// group's next ToggleAll.
func (it *Item) Toggle(g *Group) {
	it.sync(g)
	it.open = !it.open
}

func (it *Item) sync(g *Group) {
	if g == nil {
		return
	}
	if it.gen != g.generation {
		it.open = g.allOpen
		it.gen = g.generation
	}
}
