// Package scene holds the room and the ordered sequence of placed items.
// Later items are drawn on top and hit first.
package scene

// Scene owns the placed items and the selection.
type Scene struct {
	Room Room

	items    []Item
	selected string
}

// New creates an empty scene for room.
func New(room Room) *Scene {
	return &Scene{Room: room}
}

// Len returns the number of placed items.
func (s *Scene) Len() int { return len(s.items) }

// Add appends it on top of the z-order.
func (s *Scene) Add(it Item) {
	s.items = append(s.items, it)
}

// Index returns the z-index of the item with id, or -1.
func (s *Scene) Index(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Item returns a pointer to the live item with id, or nil. The pointer is
// only valid until the next Add, Remove or Replace.
func (s *Scene) Item(id string) *Item {
	if i := s.Index(id); i >= 0 {
		return &s.items[i]
	}
	return nil
}

// Remove deletes the item with id. It reports whether an item was removed.
func (s *Scene) Remove(id string) bool {
	i := s.Index(id)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	if s.selected == id {
		s.selected = ""
	}
	return true
}

// Items returns a copy of the sequence in z-order.
func (s *Scene) Items() []Item {
	return Clone(s.items)
}

// Replace swaps in a whole new sequence. The selection is dropped if its
// item is not part of items.
func (s *Scene) Replace(items []Item) {
	s.items = Clone(items)
	if s.selected != "" && s.Index(s.selected) < 0 {
		s.selected = ""
	}
}

// Select marks the item with id as selected.
func (s *Scene) Select(id string) bool {
	if s.Index(id) < 0 {
		return false
	}
	s.selected = id
	return true
}

// ClearSelection deselects.
func (s *Scene) ClearSelection() { s.selected = "" }

// SelectedID returns the selected identifier or "".
func (s *Scene) SelectedID() string { return s.selected }

// Selected returns the live selected item or nil.
func (s *Scene) Selected() *Item {
	if s.selected == "" {
		return nil
	}
	return s.Item(s.selected)
}

// Clone copies a sequence of items.
func Clone(items []Item) []Item {
	if items == nil {
		return nil
	}
	return append([]Item(nil), items...)
}
