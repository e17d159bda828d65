package storage

// Item is one todo entry. It has no identity beyond its position in a Store.
type Item struct {
	Description string
	Done        bool
}

// Store is an ordered, in-memory list of items. Insertion order is display
// order. Every index-taking method treats an out-of-range index as a no-op.
type Store struct {
	items []Item
}

func New(items ...Item) *Store {
	s := &Store{}
	s.items = append(s.items, items...)
	return s
}

func (s *Store) Len() int {
	return len(s.items)
}

// Items returns a copy of the list.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Get(index int) (Item, bool) {
	if !s.inRange(index) {
		return Item{}, false
	}
	return s.items[index], true
}

// Append adds a pending item at the end. Empty descriptions are stored as is.
func (s *Store) Append(description string) {
	s.items = append(s.items, Item{Description: description})
}

// RemoveAt deletes the item at index, shifting later items down by one.
func (s *Store) RemoveAt(index int) bool {
	if !s.inRange(index) {
		return false
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	return true
}

func (s *Store) ToggleDoneAt(index int) bool {
	if !s.inRange(index) {
		return false
	}
	s.items[index].Done = !s.items[index].Done
	return true
}

// DoneCount reports how many items are marked done.
func (s *Store) DoneCount() int {
	n := 0
	for _, it := range s.items {
		if it.Done {
			n++
		}
	}
	return n
}

func (s *Store) inRange(index int) bool {
	return index >= 0 && index < len(s.items)
}
