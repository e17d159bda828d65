package state

// Selection is an optional index into the item list. Navigation clamps at
// both ends.
type Selection struct {
	index int
	set   bool
}

func SelectionAt(index int) Selection {
	return Selection{index: index, set: true}
}

func (s Selection) Index() (int, bool) {
	return s.index, s.set
}

func (s *Selection) Clear() {
	*s = Selection{}
}

// Next moves down one row. With nothing selected it selects the first row.
func (s *Selection) Next(n int) {
	if n <= 0 {
		s.Clear()
		return
	}
	if !s.set {
		*s = SelectionAt(0)
		return
	}
	s.index = clamp(s.index+1, n)
}

// Previous moves up one row. With nothing selected it selects the last row.
func (s *Selection) Previous(n int) {
	if n <= 0 {
		s.Clear()
		return
	}
	if !s.set {
		*s = SelectionAt(n - 1)
		return
	}
	s.index = clamp(s.index-1, n)
}

// AfterRemoval keeps the selection valid once the row at removed is gone and
// n rows remain.
func (s *Selection) AfterRemoval(removed, n int) {
	if !s.set {
		return
	}
	switch {
	case n <= 0:
		s.Clear()
	case s.index > removed:
		s.index--
	case s.index >= n:
		s.index = n - 1
	}
}

func clamp(cur, n int) int {
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
