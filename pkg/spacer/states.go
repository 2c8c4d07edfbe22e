package spacer

import (
	"sync"

	"github.com/mattsolo1/grove-slides/pkg/models"
)

// States is the per-document view-state table. Entries are created on
// first use and removed when the document closes.
type States struct {
	mu     sync.Mutex
	states map[string]*models.ViewState
}

// NewStates creates an empty table.
func NewStates() *States {
	return &States{states: make(map[string]*models.ViewState)}
}

// Get returns the state of docID, creating a zero state on first use.
func (s *States) Get(docID string) models.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.entry(docID)
}

// Peek returns the state of docID without creating it.
func (s *States) Peek(docID string) (models.ViewState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[docID]
	if !ok {
		return models.ViewState{}, false
	}
	return *st, true
}

// Update applies fn to the state of docID.
func (s *States) Update(docID string, fn func(*models.ViewState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.entry(docID))
}

// Delete drops docID's state.
func (s *States) Delete(docID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, docID)
}

// Len is the number of tracked documents.
func (s *States) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}

func (s *States) entry(docID string) *models.ViewState {
	st, ok := s.states[docID]
	if !ok {
		st = &models.ViewState{}
		s.states[docID] = st
	}
	return st
}
