// ABOUTME: Unit tests for the Charm backend helpers.
// ABOUTME: Covers key matching and host selection without opening a KV store.
package charm

import (
	"testing"
)

func TestContainsKey(t *testing.T) {
	keys := [][]byte{[]byte("moodData"), []byte("moodData.bak"), []byte("other")}

	tests := []struct {
		key  string
		want bool
	}{
		{"moodData", true},
		{"other", true},
		{"mood", false},
		{"moodData.ba", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := containsKey(keys, []byte(tt.key)); got != tt.want {
				t.Errorf("containsKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestHost(t *testing.T) {
	t.Setenv("CHARM_HOST", "")
	if got := Host(); got != charmHost {
		t.Errorf("Host() = %q, want %q", got, charmHost)
	}

	t.Setenv("CHARM_HOST", "charm.example.com")
	if got := Host(); got != "charm.example.com" {
		t.Errorf("Host() = %q, want charm.example.com", got)
	}
}

func TestDBName(t *testing.T) {
	if DBName != "mood" {
		t.Errorf("DBName = %q, want mood", DBName)
	}
}
