package source

import (
	"sync"

	"github.com/rs/zerolog"
)

// Set holds distinct sources in insertion order. Membership follows
// Source.Equals, so two sources with the same path are one member.
type Set struct {
	mu      sync.RWMutex
	sources []*Source
	index   map[string]int // path -> position in sources
	logger  zerolog.Logger
}

// NewSet creates an empty set logging to logger.
func NewSet(logger zerolog.Logger) *Set {
	return &Set{
		sources: make([]*Source, 0),
		index:   make(map[string]int),
		logger:  logger,
	}
}

// Add appends the sources not yet present and returns how many were added.
// Nil sources are skipped.
func (s *Set) Add(srcs ...*Source) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, src := range srcs {
		if src == nil {
			continue
		}
		path := src.Path()
		if _, exists := s.index[path]; exists {
			s.logger.Debug().
				Str("path", path).
				Msg("skipping duplicate source")
			continue
		}
		s.index[path] = len(s.sources)
		s.sources = append(s.sources, src)
		added++
	}
	return added
}

// Contains reports whether a source with src's path is in the set.
func (s *Set) Contains(src *Source) bool {
	if src == nil {
		return false
	}
	_, ok := s.Get(src.Path())
	return ok
}

// Get returns the member with the given path.
func (s *Set) Get(path string) (*Source, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[path]
	if !ok {
		return nil, false
	}
	return s.sources[i], true
}

// Remove drops the member equal to src. It reports whether one was removed.
func (s *Set) Remove(src *Source) bool {
	if src == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	path := src.Path()
	i, ok := s.index[path]
	if !ok {
		return false
	}
	s.sources = append(s.sources[:i], s.sources[i+1:]...)
	delete(s.index, path)
	for j := i; j < len(s.sources); j++ {
		s.index[s.sources[j].Path()] = j
	}
	return true
}

// Len returns the number of members.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sources)
}

// Sources returns a copy of the members in insertion order.
func (s *Set) Sources() []*Source {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Source, len(s.sources))
	copy(out, s.sources)
	return out
}
