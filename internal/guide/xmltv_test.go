package guide

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleXMLTV = `<?xml version="1.0" encoding="UTF-8"?>
<tv generator-info-name="test">
  <channel id="la1">
    <display-name>La 1</display-name>
  </channel>
  <programme channel="la1" start="20250301090000 +0100" stop="20250301100000 +0100">
    <title lang="es">Telediario</title>
  </programme>
  <programme channel="la1" start="20250301100000 +0100" stop="20250301120000 +0100">
    <title lang="es">Cine de mañana</title>
  </programme>
  <programme channel="la2" start="20250301090000 +0100" stop="20250301093000 +0100">
    <title></title>
  </programme>
  <programme channel="la2" start="garbage" stop="20250301100000 +0100">
    <title>Broken</title>
  </programme>
  <programme channel="" start="20250301090000 +0100" stop="20250301100000 +0100">
    <title>No channel</title>
  </programme>
</tv>`

func TestParseXMLTV(t *testing.T) {
	entries, skipped, err := ParseXMLTV([]byte(sampleXMLTV))
	require.NoError(t, err)

	assert.Equal(t, 2, skipped, "broken timestamp and missing channel should be skipped")
	require.Len(t, entries, 3)

	assert.Equal(t, "la1", entries[0].ChannelID)
	assert.Equal(t, "Telediario", entries[0].Title)

	loc := time.FixedZone("", 3600)
	assert.True(t, entries[0].Start.Equal(time.Date(2025, 3, 1, 9, 0, 0, 0, loc)))
	assert.True(t, entries[0].Stop.Equal(time.Date(2025, 3, 1, 10, 0, 0, 0, loc)))

	// Empty title gets the fallback label
	assert.Equal(t, "Sin título", entries[2].Title)
}

func TestParseXMLTVInvalidDocument(t *testing.T) {
	_, _, err := ParseXMLTV([]byte("this is not xml"))
	assert.Error(t, err)
}

func TestParseXMLTVTimeFormats(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"full with offset", "20250301090000 +0100", true},
		{"full without offset", "20250301090000", true},
		{"date only", "20250301", true},
		{"empty", "", false},
		{"garbage", "not-a-time", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseXMLTVTime(tt.value)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseXMLTVFeedsGuide(t *testing.T) {
	entries, _, err := ParseXMLTV([]byte(sampleXMLTV))
	require.NoError(t, err)

	g, dropped := New(entries)
	assert.Equal(t, 0, dropped)

	loc := time.FixedZone("", 3600)
	now := time.Date(2025, 3, 1, 9, 30, 0, 0, loc)

	current, next := g.Resolve("la1", now)
	require.NotNil(t, current)
	require.NotNil(t, next)
	assert.Equal(t, "Telediario", current.Title)
	assert.Equal(t, "Cine de mañana", next.Title)
}
