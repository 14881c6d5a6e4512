package components

import "sync"

// Section is a container whose only state is whether it is shown.
type Section struct {
	mu      sync.Mutex
	visible bool
}

func NewSection() *Section {
	return &Section{}
}

func (s *Section) SetVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = visible
}

func (s *Section) SetImageSource(string) {}
func (s *Section) SetText(string)        {}
func (s *Section) SetEnabled(bool)       {}

func (s *Section) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}
