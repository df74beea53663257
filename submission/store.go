package submission

import (
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ErrSessionExpired signals that a draft was evicted (or never existed).
// Callers must tell the user to restart the flow instead of failing
// silently.
var ErrSessionExpired = errors.New("submission session expired")

// DraftTTL is how long an untouched draft survives.
const DraftTTL = 5 * time.Minute

const storeSize = 4096

// Store holds in-progress drafts keyed by (guild, user). Writes re-arm the
// entry's TTL; reads do not. A write after eviction simply recreates the
// entry, so the sweep-vs-write race is harmless.
type Store struct {
	cache *expirable.LRU[string, *Draft]
}

// NewStore builds a draft store with the given idle TTL.
func NewStore(ttl time.Duration) *Store {
	return &Store{cache: expirable.NewLRU[string, *Draft](storeSize, nil, ttl)}
}

// Put stores the draft under its key and re-arms the TTL.
func (s *Store) Put(d *Draft) {
	s.cache.Add(d.Key(), d)
}

// Get returns the live draft for the key, or ErrSessionExpired.
func (s *Store) Get(key string) (*Draft, error) {
	d, ok := s.cache.Get(key)
	if !ok {
		return nil, ErrSessionExpired
	}
	return d, nil
}

// Remove drops a draft after a successful submit.
func (s *Store) Remove(key string) {
	s.cache.Remove(key)
}
