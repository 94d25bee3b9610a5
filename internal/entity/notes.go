package entity

import (
	"encoding/json"
	"strings"
)

// The notes cell has seen three encodings in the wild: a JSON array of
// strings (current), a bare plain-text note written before the JSON format
// existed (legacy), and an empty cell. DecodeNotes normalizes all of them to
// a plain []string so the ambiguity never leaks past the adapter boundary.

// DecodeNotes never fails: anything that is not a JSON string array degrades
// to a one-element list holding the raw cell text.
func DecodeNotes(cell string) []string {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return []string{}
	}

	var notes []string
	if err := json.Unmarshal([]byte(trimmed), &notes); err == nil {
		if notes == nil {
			return []string{}
		}
		return notes
	}

	return []string{cell}
}

// EncodeNotes serializes the full note list as a JSON array literal, the only
// encoding ever written back.
func EncodeNotes(notes []string) string {
	if notes == nil {
		notes = []string{}
	}
	encoded, _ := json.Marshal(notes)
	return string(encoded)
}
