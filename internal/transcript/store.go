package transcript

import (
	"github.com/jonathan/tradepath/internal/types"
)

// Store is a read-only set of transcripts keyed by video id.
// It is safe for concurrent use once constructed.
type Store struct {
	byID  map[string]*types.Transcript
	order []string
}

// NewStore builds a store. A later transcript with a duplicate video id
// replaces the earlier one but keeps its position.
func NewStore(transcripts ...*types.Transcript) *Store {
	s := &Store{byID: make(map[string]*types.Transcript, len(transcripts))}
	for _, t := range transcripts {
		if _, exists := s.byID[t.VideoID]; !exists {
			s.order = append(s.order, t.VideoID)
		}
		s.byID[t.VideoID] = t
	}
	return s
}

// DefaultStore holds the built-in transcripts.
func DefaultStore() *Store {
	return NewStore(CircuitDesign(), CircuitGuide())
}

// Get returns the transcript for a video id.
func (s *Store) Get(id string) (*types.Transcript, bool) {
	t, ok := s.byID[id]
	return t, ok
}

// IDs returns the video ids in insertion order.
func (s *Store) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
