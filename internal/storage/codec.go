// ABOUTME: Encoding and decoding of the persisted journal payload.
// ABOUTME: A compact JSON array of {date, mood} objects in stored order.
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/harperreed/mood/internal/models"
)

// rawRecord mirrors one persisted entry before validation.
type rawRecord struct {
	Date string `json:"date"`
	Mood string `json:"mood"`
}

// rejected describes a persisted entry dropped during decoding.
type rejected struct {
	Index int
	Entry rawRecord
	Err   error
}

// encodePayload serializes records. A nil slice encodes as [].
func encodePayload(records []models.MoodRecord) ([]byte, error) {
	out := make([]rawRecord, 0, len(records))
	for _, r := range records {
		if r.Date.IsZero() {
			return nil, fmt.Errorf("encode record: %w", models.ErrMissingDate)
		}
		if !r.Mood.Valid() {
			return nil, fmt.Errorf("encode record %s: %w", r.Date, models.ErrUnknownMood)
		}
		out = append(out, rawRecord{Date: r.Date.String(), Mood: r.Mood.Key()})
	}
	return json.Marshal(out)
}

// decodePayload parses a payload. A payload that is not a JSON array yields an error;
// individual entries with an unknown mood or a bad date are dropped and reported.
func decodePayload(data []byte) ([]models.MoodRecord, []rejected, error) {
	var raw []rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("decode payload: %w", err)
	}

	records := make([]models.MoodRecord, 0, len(raw))
	var dropped []rejected
	for i, r := range raw {
		date, err := models.ParseDate(r.Date)
		if err != nil {
			dropped = append(dropped, rejected{Index: i, Entry: r, Err: err})
			continue
		}
		mood, err := models.ParseMoodKind(r.Mood)
		if err != nil {
			dropped = append(dropped, rejected{Index: i, Entry: r, Err: err})
			continue
		}
		records = append(records, models.NewMoodRecord(date, mood))
	}
	return records, dropped, nil
}
