package footprint

import (
	"math"

	"github.com/rshade/digital-footprint/internal/catalog"
)

// Compare evaluates the same usage against two grid locations and reports
// the difference.
//
// The usage is shared: identical quantities are applied to both sides, so
// energy figures match and only the CO2 side differs. The difference and
// cleanliness ratio are symmetric in the argument order. When both totals
// are zero the ratio is defined as 1, and equal totals report no cleaner
// location.
func Compare(usage UsageInput, locationA, locationB catalog.GridLocation) (ComparisonResult, error) {
	resultA, err := Calculate(usage, locationA)
	if err != nil {
		return ComparisonResult{}, err
	}
	resultB, err := Calculate(usage, locationB)
	if err != nil {
		return ComparisonResult{}, err
	}

	result := ComparisonResult{
		A:                resultA,
		B:                resultB,
		CO2DifferenceG:   math.Abs(resultA.TotalCO2G - resultB.TotalCO2G),
		CleanlinessRatio: cleanlinessRatio(resultA.TotalCO2G, resultB.TotalCO2G),
		Tasks:            compareTasks(resultA, resultB),
	}

	switch {
	case resultA.TotalCO2G < resultB.TotalCO2G:
		result.CleanerID = locationA.ID
	case resultB.TotalCO2G < resultA.TotalCO2G:
		result.CleanerID = locationB.ID
	}

	return result, nil
}

// CompareByID is a convenience wrapper that resolves both grid location ids
// before comparing.
func CompareByID(usage UsageInput, locationAID, locationBID string) (ComparisonResult, error) {
	locationA, err := catalog.GridByID(locationAID)
	if err != nil {
		return ComparisonResult{}, err
	}
	locationB, err := catalog.GridByID(locationBID)
	if err != nil {
		return ComparisonResult{}, err
	}
	return Compare(usage, locationA, locationB)
}

// cleanlinessRatio is max/min of the two totals, defined as 1 when both are
// zero so identical zero usage reports "no difference" instead of failing.
func cleanlinessRatio(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 1
	}
	lo, hi := math.Min(a, b), math.Max(a, b)
	if lo == 0 {
		return math.Inf(1)
	}
	return hi / lo
}

// compareTasks merges the two breakdowns into per-task comparison rows in
// catalogue order. A task missing on one side contributes zero there.
func compareTasks(a, b CalculationResult) []TaskComparison {
	sideA := make(map[string]TaskEnergy, len(a.Breakdown))
	for _, entry := range a.Breakdown {
		sideA[entry.TaskID] = entry
	}
	sideB := make(map[string]TaskEnergy, len(b.Breakdown))
	for _, entry := range b.Breakdown {
		sideB[entry.TaskID] = entry
	}

	var rows []TaskComparison
	for _, task := range catalog.Tasks() {
		entryA, okA := sideA[task.ID]
		entryB, okB := sideB[task.ID]
		if !okA && !okB {
			continue
		}

		row := TaskComparison{
			TaskID:   task.ID,
			Label:    task.Label,
			Category: task.Category,
			CO2AG:    entryA.CO2G,
			CO2BG:    entryB.CO2G,
		}
		if okA {
			row.Quantity = entryA.Quantity
			row.EnergyWh = entryA.EnergyWh
		} else {
			row.Quantity = entryB.Quantity
			row.EnergyWh = entryB.EnergyWh
		}
		row.CO2DifferenceG = math.Abs(entryA.CO2G - entryB.CO2G)
		rows = append(rows, row)
	}
	return rows
}
