// Package dedupe tracks which medal events have already been counted.
package dedupe

import "github.com/okian/olympus/internal/domain/model"

// Key identifies one medal event: a single medal awarded in one event at one
// Games to one counting unit (a region or a NOC). All members of a team share it.
type Key struct {
	Year   int
	Season model.Season
	Event  string
	Medal  model.Medal
	Unit   string
}

// Deduper records seen keys so each medal event is counted at most once.
type Deduper interface {
	// SeenAndRecord checks whether key was seen and records it if not.
	// Returns true if key was already seen, false if it was newly recorded.
	SeenAndRecord(key Key) bool

	// Collapsed is the number of SeenAndRecord calls that hit an existing key.
	Collapsed() int
}

// set implements Deduper with a plain map. It is meant to live for one
// aggregation and is not safe for concurrent use.
type set struct {
	seen      map[Key]struct{}
	collapsed int
	capacity  int
}

// New creates an empty Deduper.
func New(opts ...Option) Deduper {
	s := &set{}
	for _, opt := range opts {
		opt(s)
	}
	s.seen = make(map[Key]struct{}, s.capacity)
	return s
}

func (s *set) SeenAndRecord(key Key) bool {
	if _, exists := s.seen[key]; exists {
		s.collapsed++
		return true
	}
	s.seen[key] = struct{}{}
	return false
}

func (s *set) Collapsed() int { return s.collapsed }
