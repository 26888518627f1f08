package console

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/quran-dataset-check/internal/domain/entities"
)

func TestRenderReport(t *testing.T) {
	t.Run("missing content", func(t *testing.T) {
		var buf bytes.Buffer
		report := &entities.Report{
			Total:          2,
			MissingContent: []string{"Al-Baqarah"},
			Juz:            []entities.Juz{entities.NumberJuz(1)},
		}

		require.NoError(t, NewPrinter(&buf, 5, true).RenderReport(report))
		assert.Equal(t, "Total Surahs: 2\n"+
			"Warning: 1 surahs are missing text content.\n"+
			"Sample missing: ['Al-Baqarah']\n"+
			"Juz present: [1]\n", buf.String())
	})

	t.Run("sample is capped", func(t *testing.T) {
		var buf bytes.Buffer
		report := &entities.Report{
			Total:          7,
			MissingContent: []string{"a", "b", "c", "d", "e", "f", "g"},
		}

		require.NoError(t, NewPrinter(&buf, 5, true).RenderReport(report))
		assert.Contains(t, buf.String(), "Warning: 7 surahs are missing text content.\n")
		assert.Contains(t, buf.String(), "Sample missing: ['a', 'b', 'c', 'd', 'e']\n")
		assert.Contains(t, buf.String(), "Juz present: []\n")
	})

	t.Run("all have content", func(t *testing.T) {
		var buf bytes.Buffer
		report := &entities.Report{
			Total: 114,
			Juz:   []entities.Juz{entities.NumberJuz(1), entities.StringJuz("2"), entities.AbsentJuz()},
		}

		require.NoError(t, NewPrinter(&buf, 5, true).RenderReport(report))
		assert.Equal(t, "Total Surahs: 114\n"+
			"Success: All surahs have text content.\n"+
			"Juz present: [1, '2', null]\n", buf.String())
	})
}

func TestRenderFailures(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, 5, true)

	require.NoError(t, p.RenderNotFound("/data/quran.json"))
	require.NoError(t, p.RenderParseError(errors.New("unexpected end of JSON input")))

	assert.Equal(t, "Error: /data/quran.json not found\n"+
		"Error parsing JSON: unexpected end of JSON input\n", buf.String())
}
