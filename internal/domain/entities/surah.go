// Package entities contains domain entities used across the application.
package entities

import (
	"bytes"
	"encoding/json"
)

// UnknownName is the label used for a surah without a name_arabic value.
const UnknownName = "Unknown"

// Candidate keys, in lookup order.
var (
	ContentKeys = []string{"text_uthmani", "content"}
	JuzKeys     = []string{"juz_number", "juz"}
)

// Surah is a single record of the dataset. Keys are kept raw and resolved on demand,
// so a record with unexpected extra fields still loads.
type Surah map[string]json.RawMessage

// Name returns the display label of the surah.
func (s Surah) Name() string {
	raw, ok := s["name_arabic"]
	if !ok || isNull(raw) {
		return UnknownName
	}

	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return compact(raw)
	}

	return name
}

// Content returns the first non-empty value stored under one of ContentKeys.
// A string is returned as is; a non-empty array or object (e.g. a list of ayahs)
// is returned as compact JSON. Numbers and booleans are not text.
func (s Surah) Content() (string, bool) {
	for _, key := range ContentKeys {
		raw, ok := s[key]
		if !ok || isNull(raw) {
			continue
		}

		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}

		switch val := v.(type) {
		case string:
			if val != "" {
				return val, true
			}
		case []any:
			if len(val) > 0 {
				return compact(raw), true
			}
		case map[string]any:
			if len(val) > 0 {
				return compact(raw), true
			}
		}
	}

	return "", false
}

// HasContent reports whether the surah carries any text.
func (s Surah) HasContent() bool {
	_, ok := s.Content()
	return ok
}

// Juz resolves the juz identifier from JuzKeys.
// A null or empty-string value falls through to the next key; when nothing is left
// the absent marker is returned.
func (s Surah) Juz() Juz {
	for _, key := range JuzKeys {
		raw, ok := s[key]
		if !ok {
			continue
		}

		juz := ParseJuz(raw)
		if juz.Kind == JuzAbsent {
			continue
		}
		if juz.Kind == JuzString && juz.Text == "" {
			continue
		}

		return juz
	}

	return AbsentJuz()
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func compact(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(bytes.TrimSpace(raw))
	}
	return buf.String()
}
