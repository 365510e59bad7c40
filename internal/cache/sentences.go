package cache

import (
	"encoding/json"
	"fmt"

	"github.com/ppiankov/sentex/internal/extract"
)

// SentenceStore caches parsed sentence lists keyed by document text and
// parser options
type SentenceStore struct {
	backend Cache
}

// NewSentenceStore wraps backend
func NewSentenceStore(backend Cache) *SentenceStore {
	return &SentenceStore{backend: backend}
}

// Get returns the cached sentences for text, if present and decodable
func (s *SentenceStore) Get(text string, opts extract.Options) ([]string, bool) {
	data, found := s.backend.Get(Key(text, opts))
	if !found {
		return nil, false
	}

	var sentences []string
	if err := json.Unmarshal(data, &sentences); err != nil || sentences == nil {
		return nil, false
	}
	return sentences, true
}

// Put stores sentences for text using the backend's default TTL
func (s *SentenceStore) Put(text string, opts extract.Options, sentences []string) error {
	data, err := json.Marshal(sentences)
	if err != nil {
		return fmt.Errorf("marshal sentences: %w", err)
	}
	if err := s.backend.Set(Key(text, opts), data, 0); err != nil {
		return fmt.Errorf("store sentences: %w", err)
	}
	return nil
}
