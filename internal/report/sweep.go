package report

import (
	"github.com/rshade/digital-footprint/internal/catalog"
	"github.com/rshade/digital-footprint/internal/footprint"
)

// SweepRow is one location's CO2 figure for a fixed usage, relative to a
// base location.
type SweepRow struct {
	// Location is the grid location of this row.
	Location catalog.GridLocation `json:"location"`

	// CO2G is the total CO2 in grams at this location.
	CO2G float64 `json:"co2_g"`

	// RelativeToBase is CO2G divided by the base location's CO2.
	// 1 when the base usage produces zero CO2.
	RelativeToBase float64 `json:"relative_to_base"`
}

// LocationSweep evaluates the usage at every catalogued grid location and
// reports each location's CO2 relative to the base location. This backs the
// "how would my footprint change elsewhere" comparison table.
func LocationSweep(usage footprint.UsageInput, baseID string) ([]SweepRow, error) {
	base, err := footprint.CalculateByID(usage, baseID)
	if err != nil {
		return nil, err
	}

	var rows []SweepRow
	for _, location := range catalog.Grids() {
		result, err := footprint.Calculate(usage, location)
		if err != nil {
			return nil, err
		}

		relative := 1.0
		if base.TotalCO2G != 0 {
			relative = result.TotalCO2G / base.TotalCO2G
		}
		rows = append(rows, SweepRow{
			Location:       location,
			CO2G:           result.TotalCO2G,
			RelativeToBase: relative,
		})
	}
	return rows, nil
}
