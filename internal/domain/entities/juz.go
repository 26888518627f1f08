package entities

import (
	"bytes"
	"cmp"
	"encoding/json"
	"math"
	"slices"
	"strconv"
)

// JuzKind identifies the JSON type a juz identifier was stored as.
// The order of the constants is the sort order of a juz set.
type JuzKind int

const (
	JuzNumber JuzKind = iota // numeric identifier, the normal case
	JuzString                // identifier stored as a string
	JuzOther                 // bool, array or object
	JuzAbsent                // neither juz_number nor juz present
)

// Juz is a resolved juz identifier.
type Juz struct {
	Kind   JuzKind
	Number float64 // set for JuzNumber
	Text   string  // canonical text: number as formatted, string value, or compact JSON
}

// AbsentJuz returns the marker for a record without a juz identifier.
func AbsentJuz() Juz {
	return Juz{Kind: JuzAbsent}
}

// NumberJuz returns a numeric juz identifier. -0 is stored as 0.
func NumberJuz(n float64) Juz {
	if n == 0 {
		n = 0
	}
	return Juz{Kind: JuzNumber, Number: n, Text: formatNumber(n)}
}

// formatNumber prints integral values without an exponent up to 1e21.
func formatNumber(n float64) string {
	if n == math.Trunc(n) && math.Abs(n) < 1e21 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// StringJuz returns a juz identifier stored as a string.
func StringJuz(s string) Juz {
	return Juz{Kind: JuzString, Text: s}
}

// ParseJuz converts a raw JSON value into a Juz. null and missing values give the absent marker.
func ParseJuz(raw json.RawMessage) Juz {
	if isNull(raw) {
		return AbsentJuz()
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return Juz{Kind: JuzOther, Text: compact(raw)}
	}

	switch val := v.(type) {
	case json.Number:
		n, err := val.Float64()
		if err != nil {
			return Juz{Kind: JuzOther, Text: val.String()}
		}
		return NumberJuz(n)
	case string:
		return StringJuz(val)
	default:
		return Juz{Kind: JuzOther, Text: compact(raw)}
	}
}

// String formats the juz for console output.
func (j Juz) String() string {
	switch j.Kind {
	case JuzString:
		return "'" + j.Text + "'"
	case JuzAbsent:
		return "null"
	default:
		return j.Text
	}
}

// Compare orders numbers by value, then strings, then other values, then the absent marker.
func (j Juz) Compare(other Juz) int {
	if c := cmp.Compare(j.Kind, other.Kind); c != 0 {
		return c
	}

	if j.Kind == JuzNumber {
		return cmp.Compare(j.Number, other.Number)
	}

	return cmp.Compare(j.Text, other.Text)
}

// JuzSet collects distinct juz identifiers.
type JuzSet struct {
	items map[Juz]struct{}
}

// NewJuzSet creates an empty JuzSet.
func NewJuzSet() *JuzSet {
	return &JuzSet{items: make(map[Juz]struct{})}
}

// Add inserts a juz. Duplicates collapse.
func (s *JuzSet) Add(j Juz) {
	if j.Kind == JuzNumber {
		j = NumberJuz(j.Number)
	}
	s.items[j] = struct{}{}
}

// Len returns the number of distinct identifiers.
func (s *JuzSet) Len() int {
	return len(s.items)
}

// Sorted returns the identifiers in Compare order.
func (s *JuzSet) Sorted() []Juz {
	out := make([]Juz, 0, len(s.items))
	for j := range s.items {
		out = append(out, j)
	}

	slices.SortFunc(out, Juz.Compare)
	return out
}
