package catalog

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// CSV column indices for grids.csv.
const (
	colGridID        = 0 // stable identifier
	colGridLabel     = 1 // display name
	colGridIntensity = 2 // grams CO2 per kWh
)

//go:embed data/grids.csv
var gridsCSV string

// GridLocation represents one electrical grid region.
type GridLocation struct {
	// ID is the stable identifier (e.g., "iceland").
	ID string `json:"id"`

	// Label is the display name.
	Label string `json:"label"`

	// CarbonIntensityGPerKWh is grams of CO2 emitted per kWh consumed on
	// this grid. Never negative.
	CarbonIntensityGPerKWh float64 `json:"carbon_intensity_g_per_kwh"`
}

var (
	gridIndex map[string]GridLocation
	gridList  []GridLocation
	gridsOnce sync.Once
)

// parseGrids parses the embedded CSV into the grid index and ordered list.
// Rows with a negative carbon intensity are skipped.
func parseGrids() {
	gridIndex = make(map[string]GridLocation)

	reader := csv.NewReader(strings.NewReader(gridsCSV))

	// Skip header row
	if _, err := reader.Read(); err != nil {
		return
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if len(record) <= colGridIntensity {
			continue
		}

		id := strings.TrimSpace(record[colGridID])
		if id == "" {
			continue
		}

		intensity, err := strconv.ParseFloat(strings.TrimSpace(record[colGridIntensity]), 64)
		if err != nil || intensity < 0 {
			continue
		}

		grid := GridLocation{
			ID:                     id,
			Label:                  strings.TrimSpace(record[colGridLabel]),
			CarbonIntensityGPerKWh: intensity,
		}
		gridIndex[id] = grid
		gridList = append(gridList, grid)
	}
}

// GridByID returns the grid location for the given id.
// Returns an error wrapping ErrUnknownID if the id is not in the table.
func GridByID(id string) (GridLocation, error) {
	gridsOnce.Do(parseGrids)

	grid, ok := gridIndex[id]
	if !ok {
		return GridLocation{}, fmt.Errorf("%w: grid location %q", ErrUnknownID, id)
	}
	return grid, nil
}

// Grids returns all grid locations in table order. The returned slice is a copy.
func Grids() []GridLocation {
	gridsOnce.Do(parseGrids)

	out := make([]GridLocation, len(gridList))
	copy(out, gridList)
	return out
}
