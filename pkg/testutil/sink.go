package testutil

import (
	"sync"

	"github.com/carimus/metrolink/pkg/ui"
)

// RecordingSink is a ui.Sink that keeps everything it receives
type RecordingSink struct {
	mu      sync.Mutex
	Notices []ui.Notice
	Infos   []string
}

// NewRecordingSink creates an empty recording sink
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{}
}

func (s *RecordingSink) Warn(n ui.Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Notices = append(s.Notices, n)
}

func (s *RecordingSink) Info(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Infos = append(s.Infos, msg)
}

// Headlines returns the headline of every recorded notice in order
func (s *RecordingSink) Headlines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.Notices))
	for _, n := range s.Notices {
		out = append(out, n.Headline)
	}
	return out
}
