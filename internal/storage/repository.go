// ABOUTME: Repository and Backend interfaces for mood journal storage.
// ABOUTME: The Repository is the record store; a Backend is the raw key/value it sits on.
package storage

import (
	"errors"

	"github.com/harperreed/mood/internal/models"
)

// PayloadKey is the single key under which the whole journal is stored.
const PayloadKey = "moodData"

// ErrNotFound is returned when a key or record does not exist.
var ErrNotFound = errors.New("not found")

// Backend is durable single-key storage. Get returns ErrNotFound for a missing key.
type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}

// Repository defines the record store for mood entries.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Load returns every persisted record; an unreadable payload reads as empty.
	Load() ([]models.MoodRecord, error)
	// Save overwrites the whole payload.
	Save(records []models.MoodRecord) error
	// Upsert sets the mood for date, replacing any existing record.
	Upsert(date models.Date, mood models.MoodKind) ([]models.MoodRecord, error)
	// Remove deletes the record for date; absent dates are a no-op.
	Remove(date models.Date) ([]models.MoodRecord, error)
	// Get returns the record for date or ErrNotFound.
	Get(date models.Date) (*models.MoodRecord, error)

	Close() error
}
