package catalog

// Selection is the detail slot: closed, or open on exactly one record.
type Selection[R Record] struct {
	current R
	open    bool
}

func (s *Selection[R]) Open(r R) {
	s.current = r
	s.open = true
}

func (s *Selection[R]) Close() {
	var zero R
	s.current = zero
	s.open = false
}

func (s *Selection[R]) Current() (R, bool) {
	return s.current, s.open
}

func (s *Selection[R]) IsOpen() bool {
	return s.open
}
