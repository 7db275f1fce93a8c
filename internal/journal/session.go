// ABOUTME: Journal session holding the user's pending mood and date selection.
// ABOUTME: Save, delete, and edit actions run against a storage.Repository.
package journal

import (
	"errors"
	"fmt"

	"github.com/harperreed/mood/internal/models"
	"github.com/harperreed/mood/internal/storage"
)

var (
	// ErrNoMoodSelected is returned by Save when no mood has been chosen.
	ErrNoMoodSelected = errors.New("please select a mood")
	// ErrNoDateSelected is returned by Save when no date has been chosen.
	ErrNoDateSelected = errors.New("please select a date")
)

// Confirmer asks the user to confirm deleting the record for date.
type Confirmer interface {
	Confirm(date models.Date) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(date models.Date) bool

// Confirm calls f(date).
func (f ConfirmFunc) Confirm(date models.Date) bool {
	return f(date)
}

// AlwaysConfirm approves every deletion.
var AlwaysConfirm Confirmer = ConfirmFunc(func(models.Date) bool { return true })

// Session is one user's working state against the journal.
// A Session is not safe for concurrent use; the underlying Repository is.
type Session struct {
	repo storage.Repository
	mood models.MoodKind
	date models.Date
}

// NewSession starts a session with today's date selected.
func NewSession(repo storage.Repository) *Session {
	return &Session{repo: repo, date: models.Today()}
}

// SelectMood sets the pending mood. The zero MoodKind clears it.
func (s *Session) SelectMood(mood models.MoodKind) {
	s.mood = mood
}

// SelectDate sets the pending date. The zero Date clears it.
func (s *Session) SelectDate(date models.Date) {
	s.date = date
}

// Selection returns the pending mood and date.
func (s *Session) Selection() (models.MoodKind, models.Date) {
	return s.mood, s.date
}

// Save records the pending selection and clears it.
// Missing input leaves both the store and the selection untouched.
func (s *Session) Save() ([]models.MoodRecord, error) {
	if !s.mood.Valid() {
		return nil, ErrNoMoodSelected
	}
	if s.date.IsZero() {
		return nil, ErrNoDateSelected
	}

	records, err := s.repo.Upsert(s.date, s.mood)
	if err != nil {
		return nil, fmt.Errorf("save mood: %w", err)
	}
	s.mood = 0
	s.date = models.Date{}
	return records, nil
}

// Delete removes the record for date once confirm approves.
// It reports whether a record was removed.
func (s *Session) Delete(date models.Date, confirm Confirmer) (bool, error) {
	if _, err := s.repo.Get(date); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("delete mood: %w", err)
	}

	if confirm != nil && !confirm.Confirm(date) {
		return false, nil
	}

	if _, err := s.repo.Remove(date); err != nil {
		return false, fmt.Errorf("delete mood: %w", err)
	}
	return true, nil
}

// Edit loads the record for date into the selection.
// It reports false, with the selection unchanged, when no record exists.
func (s *Session) Edit(date models.Date) (bool, error) {
	rec, err := s.repo.Get(date)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("edit mood: %w", err)
	}
	s.mood = rec.Mood
	s.date = rec.Date
	return true, nil
}

// View builds the display model from the current store contents.
func (s *Session) View() (*View, error) {
	records, err := s.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("build view: %w", err)
	}
	return BuildView(records), nil
}
