package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJuz(t *testing.T) {
	assert.Equal(t, NumberJuz(1), ParseJuz(json.RawMessage(`1`)))
	assert.Equal(t, NumberJuz(1), ParseJuz(json.RawMessage(`1.0`)))
	assert.Equal(t, StringJuz("a"), ParseJuz(json.RawMessage(`"a"`)))
	assert.Equal(t, AbsentJuz(), ParseJuz(json.RawMessage(`null`)))
	assert.Equal(t, Juz{Kind: JuzOther, Text: "true"}, ParseJuz(json.RawMessage(`true`)))
	assert.Equal(t, Juz{Kind: JuzOther, Text: "[1,2]"}, ParseJuz(json.RawMessage(`[1, 2]`)))
}

func TestJuzString(t *testing.T) {
	assert.Equal(t, "1", NumberJuz(1).String())
	assert.Equal(t, "1.5", NumberJuz(1.5).String())
	assert.Equal(t, "1000000", ParseJuz(json.RawMessage(`1000000`)).String())
	assert.Equal(t, "1000000", ParseJuz(json.RawMessage(`1e6`)).String())
	assert.Equal(t, "0", ParseJuz(json.RawMessage(`-0`)).String())
	assert.Equal(t, "1e+21", NumberJuz(1e21).String())
	assert.Equal(t, "'x'", StringJuz("x").String())
	assert.Equal(t, "null", AbsentJuz().String())
}

func TestJuzSet(t *testing.T) {
	t.Run("duplicates collapse", func(t *testing.T) {
		set := NewJuzSet()
		set.Add(NumberJuz(1))
		set.Add(ParseJuz(json.RawMessage(`1.0`)))
		set.Add(NumberJuz(1))
		require.Equal(t, 1, set.Len())
		assert.Equal(t, []Juz{NumberJuz(1)}, set.Sorted())
	})

	t.Run("negative zero collapses with zero", func(t *testing.T) {
		set := NewJuzSet()
		set.Add(ParseJuz(json.RawMessage(`0`)))
		set.Add(ParseJuz(json.RawMessage(`-0`)))
		set.Add(ParseJuz(json.RawMessage(`-0.0`)))
		assert.Equal(t, []Juz{NumberJuz(0)}, set.Sorted())
	})

	t.Run("mixed kinds sort by kind then value", func(t *testing.T) {
		set := NewJuzSet()
		set.Add(AbsentJuz())
		set.Add(StringJuz("b"))
		set.Add(NumberJuz(10))
		set.Add(Juz{Kind: JuzOther, Text: "true"})
		set.Add(StringJuz("a"))
		set.Add(NumberJuz(2))
		set.Add(AbsentJuz())

		assert.Equal(t, []Juz{
			NumberJuz(2),
			NumberJuz(10),
			StringJuz("a"),
			StringJuz("b"),
			{Kind: JuzOther, Text: "true"},
			AbsentJuz(),
		}, set.Sorted())
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, NewJuzSet().Sorted())
	})
}

func TestReportMissingSample(t *testing.T) {
	r := &Report{MissingContent: []string{"a", "b", "c"}}
	assert.Equal(t, []string{"a", "b"}, r.MissingSample(2))
	assert.Equal(t, []string{"a", "b", "c"}, r.MissingSample(5))
	assert.False(t, r.AllHaveContent())
	assert.True(t, (&Report{}).AllHaveContent())
}
