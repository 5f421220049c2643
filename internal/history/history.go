// Package history keeps the bounded, newest-first archive of past
// classification results under a single key in a caller-provided key-value
// medium. Persistence trouble degrades to "no history available", never to
// a failure that blocks retaking the assessment.
package history

import (
	"context"
	"encoding/json"

	"github.com/maqamat-app/maqamat/internal/scoring"
)

const (
	// DefaultKey is the single key the serialized history lives under.
	DefaultKey = "maqamat:history"
	// DefaultLimit caps how many entries are retained, newest first.
	DefaultLimit = 50
)

// KV is the persistence collaborator. A missing key is a non-error empty
// result (found=false).
type KV interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Entry archives one classification. The answer copy is optional.
type Entry struct {
	Result  scoring.Result  `json:"result"`
	Lang    string          `json:"lang,omitempty"`
	TakenAt int64           `json:"taken_at"`
	Answers scoring.Answers `json:"answers,omitempty"`
}

type Store struct {
	kv    KV
	key   string
	limit int
}

type Option func(*Store)

func WithKey(key string) Option { return func(s *Store) { s.key = key } }
func WithLimit(n int) Option    { return func(s *Store) { s.limit = n } }

func New(kv KV, opts ...Option) *Store {
	s := &Store{kv: kv, key: DefaultKey, limit: DefaultLimit}
	for _, o := range opts {
		o(s)
	}
	if s.limit < 1 {
		s.limit = 1
	}
	return s
}

// Append prepends an entry and truncates to the retention cap. A corrupt
// stored list is discarded and the archive restarts from this entry.
func (s *Store) Append(ctx context.Context, e Entry) error {
	entries, err := s.load(ctx)
	if err != nil {
		return err
	}
	entries = append([]Entry{e}, entries...)
	if len(entries) > s.limit {
		entries = entries[:s.limit]
	}
	buf, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.key, buf)
}

// List returns the archived entries, newest first. Missing or corrupt data
// yields an empty list and no error.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	return s.load(ctx)
}

// Latest returns the most recent entry, if any.
func (s *Store) Latest(ctx context.Context) (Entry, bool, error) {
	entries, err := s.load(ctx)
	if err != nil || len(entries) == 0 {
		return Entry{}, false, err
	}
	return entries[0], true, nil
}

// Clear drops the whole archive.
func (s *Store) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, s.key)
}

func (s *Store) load(ctx context.Context) ([]Entry, error) {
	buf, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var entries []Entry
	if err := json.Unmarshal(buf, &entries); err != nil {
		// corrupt archive: treat as empty rather than propagate
		return nil, nil
	}
	return entries, nil
}
