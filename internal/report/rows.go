package report

import "github.com/rshade/digital-footprint/internal/footprint"

// chartLabelMax is the label length charts can render without clipping.
const chartLabelMax = 30

// ChartRow is one bar of a per-task breakdown chart.
type ChartRow struct {
	// Label is the task label, truncated for axis display.
	Label string `json:"label"`

	// Category is the task category (ai or cloud), used for bar coloring.
	Category string `json:"category"`

	// EnergyWh is the task energy.
	EnergyWh float64 `json:"energy_wh"`

	// CO2G is the task CO2 in grams.
	CO2G float64 `json:"co2_g"`
}

// BreakdownRows converts a calculation breakdown into chart rows in
// catalogue order.
func BreakdownRows(result footprint.CalculationResult) []ChartRow {
	var rows []ChartRow
	for _, entry := range result.Breakdown {
		rows = append(rows, ChartRow{
			Label:    TruncateLabel(entry.Label, chartLabelMax),
			Category: entry.Category,
			EnergyWh: entry.EnergyWh,
			CO2G:     entry.CO2G,
		})
	}
	return rows
}

// ComparisonRows converts a comparison into paired chart rows, one per
// (task, side), for grouped bar rendering. MaxCO2G is returned so both
// sides can share a synchronized axis scale.
func ComparisonRows(result footprint.ComparisonResult) (rowsA, rowsB []ChartRow, maxCO2G float64) {
	for _, row := range result.Tasks {
		label := TruncateLabel(row.Label, chartLabelMax)
		rowsA = append(rowsA, ChartRow{
			Label:    label,
			Category: row.Category,
			EnergyWh: row.EnergyWh,
			CO2G:     row.CO2AG,
		})
		rowsB = append(rowsB, ChartRow{
			Label:    label,
			Category: row.Category,
			EnergyWh: row.EnergyWh,
			CO2G:     row.CO2BG,
		})
		if row.CO2AG > maxCO2G {
			maxCO2G = row.CO2AG
		}
		if row.CO2BG > maxCO2G {
			maxCO2G = row.CO2BG
		}
	}
	return rowsA, rowsB, maxCO2G
}
