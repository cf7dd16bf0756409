package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/digital-footprint/internal/footprint"
)

func TestBreakdownRows(t *testing.T) {
	result, err := footprint.CalculateByID(
		footprint.UsageInput{"cloud_photo_storage": 2, "image_generation": 5}, "france")
	require.NoError(t, err)

	rows := BreakdownRows(result)
	require.Len(t, rows, 2)

	// Catalogue order: image_generation (ai) before cloud_photo_storage.
	assert.Equal(t, "ai", rows[0].Category)
	assert.InDelta(t, 10, rows[0].EnergyWh, 1e-9)
	assert.Equal(t, "cloud", rows[1].Category)
	assert.InDelta(t, 16, rows[1].EnergyWh, 1e-9)
}

func TestBreakdownRows_LabelsTruncated(t *testing.T) {
	result, err := footprint.CalculateByID(
		footprint.UsageInput{"cloud_photo_storage": 1}, "uk")
	require.NoError(t, err)

	rows := BreakdownRows(result)
	require.Len(t, rows, 1)
	assert.LessOrEqual(t, len([]rune(rows[0].Label)), chartLabelMax+3)
	assert.Contains(t, rows[0].Label, "...")
}

func TestComparisonRows_SynchronizedScale(t *testing.T) {
	result, err := footprint.CompareByID(
		footprint.UsageInput{"video_call": 1, "google_search": 10}, "iceland", "usa_texas")
	require.NoError(t, err)

	rowsA, rowsB, maxCO2 := ComparisonRows(result)
	require.Len(t, rowsA, 2)
	require.Len(t, rowsB, 2)

	// video_call: 2000 Wh = 2 kWh -> 800 g in Texas dominates.
	assert.InDelta(t, 800, maxCO2, 1e-9)
	for i := range rowsA {
		assert.Equal(t, rowsA[i].Label, rowsB[i].Label)
		assert.LessOrEqual(t, rowsA[i].CO2G, maxCO2)
		assert.LessOrEqual(t, rowsB[i].CO2G, maxCO2)
	}
}
