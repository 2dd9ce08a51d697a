package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yaklabco/cppgrader/pkg/styleguide"
)

// Guide is one stored style guide, kept alongside its parsed form so repeat
// analyses do not re-parse.
type Guide struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Content  string    `json:"content"`
	Uploaded time.Time `json:"uploaded"`

	// Parsed is the structured form of Content. It is built once at store
	// time; rule ids are deterministic, so re-parsing would be a no-op.
	Parsed *styleguide.Guide `json:"-"`
}

// GuideStore is an in-memory style guide store keyed by generated id.
type GuideStore struct {
	mu     sync.RWMutex
	guides map[string]Guide
}

// NewGuideStore creates an empty GuideStore.
func NewGuideStore() *GuideStore {
	return &GuideStore{guides: make(map[string]Guide)}
}

// Put parses and stores a style guide, returning its generated id.
func (s *GuideStore) Put(name, content string) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.guides[id] = Guide{
		ID:       id,
		Name:     name,
		Content:  content,
		Uploaded: time.Now().UTC(),
		Parsed:   styleguide.ParseDocument(name, content),
	}

	return id
}

// Get returns the guide with the given id, or ErrNotFound.
func (s *GuideStore) Get(id string) (Guide, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.guides[id]
	if !ok {
		return Guide{}, ErrNotFound
	}
	return g, nil
}

// List returns all stored guides sorted by upload time, then id.
func (s *GuideStore) List() []Guide {
	s.mu.RLock()
	defer s.mu.RUnlock()

	guides := make([]Guide, 0, len(s.guides))
	for _, g := range s.guides {
		guides = append(guides, g)
	}

	sort.Slice(guides, func(i, j int) bool {
		if !guides[i].Uploaded.Equal(guides[j].Uploaded) {
			return guides[i].Uploaded.Before(guides[j].Uploaded)
		}
		return guides[i].ID < guides[j].ID
	})

	return guides
}
