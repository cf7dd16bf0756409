package report

import (
	"fmt"
	"strings"

	"github.com/rshade/digital-footprint/internal/footprint"
)

// Summary renders a single-location result as human-readable text: the
// energy and CO2 totals, the per-task breakdown, and the equivalence
// metrics.
func Summary(result footprint.CalculationResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Location: %s (%.0f g CO2/kWh)\n",
		result.Location.Label, result.Location.CarbonIntensityGPerKWh)
	fmt.Fprintf(&b, "Total energy: %s\n", FormatEnergy(result.TotalEnergyWh))
	fmt.Fprintf(&b, "Total CO2: %s\n", FormatCO2(result.TotalCO2G))

	if len(result.Breakdown) > 0 {
		b.WriteString("\nBreakdown:\n")
		for _, entry := range result.Breakdown {
			fmt.Fprintf(&b, "  %-48s x%s  %s Wh\n",
				entry.Label, FormatFloat(entry.Quantity), FormatFloat(entry.EnergyWh))
		}
	}

	b.WriteString("\n")
	b.WriteString(EquivalentsText(result.Equivalents))
	b.WriteString("\n")

	return b.String()
}

// EquivalentsText renders the equivalence metrics as prose, e.g.
// "Equivalent to charging ~5.0 smartphones or 0.5 hours of Netflix;
// 0.39 tree-days or driving 0.2 km (160 seconds) to offset".
func EquivalentsText(eq footprint.Equivalents) string {
	return fmt.Sprintf(
		"Equivalent to charging ~%s smartphones or %s hours of Netflix; "+
			"%.2f tree-days or driving %.1f km (%s) to offset",
		FormatFloat(eq.SmartphoneCharges),
		FormatFloat(eq.NetflixHours),
		eq.TreeDays,
		eq.CarKm,
		FormatCarDuration(eq.CarSeconds),
	)
}

// CompareSummary renders a two-location comparison as human-readable text,
// including the cleaner-location verdict line the comparison view leads
// with.
func CompareSummary(result footprint.ComparisonResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Shared usage: %s\n", FormatEnergy(result.A.TotalEnergyWh))
	fmt.Fprintf(&b, "CO2 in %s: %s\n", result.A.Location.Label, FormatCO2(result.A.TotalCO2G))
	fmt.Fprintf(&b, "CO2 in %s: %s\n", result.B.Location.Label, FormatCO2(result.B.TotalCO2G))

	b.WriteString(verdictLine(result))
	b.WriteString("\n")

	if len(result.Tasks) > 0 {
		b.WriteString("\nPer-task CO2 (g):\n")
		for _, row := range result.Tasks {
			fmt.Fprintf(&b, "  %-48s %10.2f  %10.2f  (diff %.2f)\n",
				row.Label, row.CO2AG, row.CO2BG, row.CO2DifferenceG)
		}
	}

	return b.String()
}

// verdictLine builds the cleaner-location verdict. Equal totals report no
// winner.
func verdictLine(result footprint.ComparisonResult) string {
	if result.CleanerID == "" {
		return "Both locations produce the same CO2 for this usage."
	}

	cleaner := result.A.Location
	if result.CleanerID == result.B.Location.ID {
		cleaner = result.B.Location
	}

	return fmt.Sprintf("%s produces %.3f kg (%.0f g) less CO2 - that's %.1fx cleaner!",
		cleaner.Label,
		result.CO2DifferenceG/1000,
		result.CO2DifferenceG,
		result.CleanlinessRatio,
	)
}
