// ABOUTME: Store is the mood record store built on a Backend.
// ABOUTME: Reads the whole journal fresh for every query and rewrites it on every mutation.
package storage

import (
	"errors"
	"fmt"
	"sync"

	"github.com/harperreed/mood/internal/models"
	"go.uber.org/zap"
)

// Store implements Repository on top of a single Backend key.
type Store struct {
	backend Backend
	key     string
	log     *zap.Logger
	mu      sync.Mutex
}

// Compile-time check that Store implements Repository.
var _ Repository = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for dropped entries and mutations.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// NewStore wraps backend as a record store.
func NewStore(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		key:     PayloadKey,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.Named("store")
	return s
}

// Backend returns the underlying key/value backend.
func (s *Store) Backend() Backend {
	return s.backend
}

// Close closes the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Load returns all persisted records in stored order.
func (s *Store) Load() ([]models.MoodRecord, error) {
	data, err := s.backend.Get(s.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.MoodRecord{}, nil
		}
		return nil, fmt.Errorf("load records: %w", err)
	}
	if len(data) == 0 {
		return []models.MoodRecord{}, nil
	}

	records, dropped, err := decodePayload(data)
	if err != nil {
		s.log.Debug("unreadable payload treated as empty", zap.Error(err))
		return []models.MoodRecord{}, nil
	}
	for _, d := range dropped {
		s.log.Warn("dropped persisted entry",
			zap.Int("index", d.Index),
			zap.String("date", d.Entry.Date),
			zap.String("mood", d.Entry.Mood),
			zap.Error(d.Err))
	}
	return records, nil
}

// Save overwrites the persisted payload with records.
func (s *Store) Save(records []models.MoodRecord) error {
	data, err := encodePayload(records)
	if err != nil {
		return err
	}
	if err := s.backend.Set(s.key, data); err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	s.log.Debug("saved records", zap.Int("count", len(records)))
	return nil
}

// Upsert replaces the mood for date or appends a new record.
func (s *Store) Upsert(date models.Date, mood models.MoodKind) ([]models.MoodRecord, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("upsert: %w", models.ErrMissingDate)
	}
	if !mood.Valid() {
		return nil, fmt.Errorf("upsert %s: %w", date, models.ErrUnknownMood)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.Load()
	if err != nil {
		return nil, err
	}

	found := false
	for i := range records {
		if records[i].Date == date {
			records[i].Mood = mood
			found = true
			break
		}
	}
	if !found {
		records = append(records, models.NewMoodRecord(date, mood))
	}

	if err := s.Save(records); err != nil {
		return nil, err
	}
	s.log.Debug("upserted record", zap.Stringer("date", date), zap.Stringer("mood", mood), zap.Bool("replaced", found))
	return records, nil
}

// Remove deletes the record for date. It is not an error if none exists.
func (s *Store) Remove(date models.Date) ([]models.MoodRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.Load()
	if err != nil {
		return nil, err
	}

	kept := make([]models.MoodRecord, 0, len(records))
	for _, r := range records {
		if r.Date != date {
			kept = append(kept, r)
		}
	}

	if err := s.Save(kept); err != nil {
		return nil, err
	}
	s.log.Debug("removed record", zap.Stringer("date", date), zap.Int("removed", len(records)-len(kept)))
	return kept, nil
}

// Get returns the record for date.
func (s *Store) Get(date models.Date) (*models.MoodRecord, error) {
	records, err := s.Load()
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if r.Date == date {
			rec := r
			return &rec, nil
		}
	}
	return nil, fmt.Errorf("record %s: %w", date, ErrNotFound)
}
