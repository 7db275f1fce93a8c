// ABOUTME: MoodKind enum and the fixed table of mood ranks, symbols, and colours.
// ABOUTME: Parses persisted keys strictly and user input leniently.
package models

import (
	"errors"
	"fmt"
	"strings"
)

// MoodKind is one of the five fixed mood categories. Its numeric value is its rank.
type MoodKind uint8

const (
	MoodVerySad   MoodKind = 1
	MoodSad       MoodKind = 2
	MoodNeutral   MoodKind = 3
	MoodHappy     MoodKind = 4
	MoodVeryHappy MoodKind = 5
)

// ErrUnknownMood is returned when a key does not name a MoodKind.
var ErrUnknownMood = errors.New("unknown mood")

type moodInfo struct {
	key    string
	symbol string
	color  string
	alias  []string
}

var moodTable = map[MoodKind]moodInfo{
	MoodVeryHappy: {key: "çok-mutlu", symbol: "😄", color: "#ffd700", alias: []string{"cok-mutlu", "very-happy"}},
	MoodHappy:     {key: "mutlu", symbol: "🙂", color: "#98fb98", alias: []string{"happy"}},
	MoodNeutral:   {key: "normal", symbol: "😐", color: "#87ceeb", alias: []string{"neutral"}},
	MoodSad:       {key: "üzgün", symbol: "😔", color: "#ffb6c1", alias: []string{"uzgun", "sad"}},
	MoodVerySad:   {key: "çok-üzgün", symbol: "😢", color: "#dda0dd", alias: []string{"cok-uzgun", "very-sad"}},
}

// AllMoodKinds lists every mood from highest rank to lowest.
var AllMoodKinds = []MoodKind{MoodVeryHappy, MoodHappy, MoodNeutral, MoodSad, MoodVerySad}

// Valid reports whether k is one of the five moods.
func (k MoodKind) Valid() bool {
	_, ok := moodTable[k]
	return ok
}

// Rank returns the 1..5 rank of the mood.
func (k MoodKind) Rank() int {
	return int(k)
}

// Key returns the persisted identifier, e.g. "çok-mutlu".
func (k MoodKind) Key() string {
	return moodTable[k].key
}

// Symbol returns the emoji shown for the mood.
func (k MoodKind) Symbol() string {
	return moodTable[k].symbol
}

// Color returns the display colour as a #rrggbb hex string.
func (k MoodKind) Color() string {
	return moodTable[k].color
}

// Aliases returns the ASCII spellings accepted by LookupMoodKind.
func (k MoodKind) Aliases() []string {
	return append([]string(nil), moodTable[k].alias...)
}

func (k MoodKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("MoodKind(%d)", uint8(k))
	}
	return k.Key()
}

// RGB splits the display colour into its components.
func (k MoodKind) RGB() (r, g, b int) {
	_, _ = fmt.Sscanf(k.Color(), "#%02x%02x%02x", &r, &g, &b)
	return r, g, b
}

// MarshalText encodes the mood as its persisted key.
func (k MoodKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("marshal mood %d: %w", uint8(k), ErrUnknownMood)
	}
	return []byte(k.Key()), nil
}

// UnmarshalText accepts only the persisted keys.
func (k *MoodKind) UnmarshalText(text []byte) error {
	parsed, err := ParseMoodKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseMoodKind maps a persisted key to its MoodKind. Anything else is rejected.
func ParseMoodKind(key string) (MoodKind, error) {
	for _, k := range AllMoodKinds {
		if moodTable[k].key == key {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMood, key)
}

// LookupMoodKind parses user input: a key, a rank digit, or an alias.
func LookupMoodKind(s string) (MoodKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if k, err := ParseMoodKind(s); err == nil {
		return k, nil
	}
	if len(s) == 1 && s[0] >= '1' && s[0] <= '5' {
		return MoodKind(s[0] - '0'), nil
	}
	for _, k := range AllMoodKinds {
		for _, a := range moodTable[k].alias {
			if a == s {
				return k, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q (use 1-5 or one of %s)", ErrUnknownMood, s, strings.Join(MoodKeys(), ", "))
}

// MoodKindForRank returns the mood whose rank equals rank.
func MoodKindForRank(rank int) (MoodKind, bool) {
	if rank < 1 || rank > 5 {
		return 0, false
	}
	k := MoodKind(rank)
	return k, k.Valid()
}

// MoodKeys returns the persisted keys from highest rank to lowest.
func MoodKeys() []string {
	keys := make([]string, 0, len(AllMoodKinds))
	for _, k := range AllMoodKinds {
		keys = append(keys, k.Key())
	}
	return keys
}
