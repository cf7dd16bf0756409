package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/digital-footprint/internal/catalog"
	"github.com/rshade/digital-footprint/internal/footprint"
)

func TestLocationSweep(t *testing.T) {
	usage := footprint.UsageInput{"smartphone_charge": 50} // 1 kWh

	rows, err := LocationSweep(usage, "uk")
	require.NoError(t, err)
	require.Len(t, rows, 4)

	byID := make(map[string]SweepRow, len(rows))
	for _, row := range rows {
		byID[row.Location.ID] = row
	}

	assert.InDelta(t, 18, byID["iceland"].CO2G, 1e-9)
	assert.InDelta(t, 233, byID["uk"].CO2G, 1e-9)
	assert.InDelta(t, 1, byID["uk"].RelativeToBase, 1e-9)
	assert.InDelta(t, 18.0/233.0, byID["iceland"].RelativeToBase, 1e-9)
	assert.InDelta(t, 400.0/233.0, byID["usa_texas"].RelativeToBase, 1e-9)
}

// TestLocationSweep_ZeroUsage defines every relative value as 1 when the
// base produces no CO2 at all.
func TestLocationSweep_ZeroUsage(t *testing.T) {
	rows, err := LocationSweep(footprint.UsageInput{}, "france")
	require.NoError(t, err)

	for _, row := range rows {
		assert.Zero(t, row.CO2G)
		assert.InDelta(t, 1, row.RelativeToBase, 1e-9)
	}
}

func TestLocationSweep_UnknownBase(t *testing.T) {
	_, err := LocationSweep(footprint.UsageInput{}, "atlantis")
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrUnknownID))
}
