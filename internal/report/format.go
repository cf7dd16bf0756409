// Package report turns calculation results into presentation-ready forms:
// JSON payloads, summary text, chart rows, and the all-locations sweep.
package report

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// English locale keeps thousand separators consistent across outputs.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// Duration display thresholds.
const (
	secondsPerMinute = 60.0
	secondsPerHour   = 3600.0
)

// FormatNumber formats an integer with thousand separators.
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats a float with one decimal place and thousand
// separators on the integer part.
func FormatFloat(f float64) string {
	rounded := math.Round(f*10) / 10
	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}
	i, frac := math.Modf(rounded)
	return sign + printer.Sprintf("%d", int64(i)) + fmt.Sprintf("%.1f", frac)[1:]
}

// FormatEnergy renders a watt-hour total with its kWh conversion,
// e.g. "1,234.5 Wh (1.23 kWh)".
func FormatEnergy(wh float64) string {
	return fmt.Sprintf("%s Wh (%.2f kWh)", FormatFloat(wh), wh/1000)
}

// FormatCO2 renders a CO2 total in kilograms with the gram figure,
// e.g. "0.023 kg (23.3 g)".
func FormatCO2(grams float64) string {
	return fmt.Sprintf("%.3f kg (%.1f g)", grams/1000, grams)
}

// FormatCarDuration renders a car-driving-time equivalent in the most
// readable unit: seconds under a minute, minutes under an hour, hours
// otherwise.
func FormatCarDuration(seconds float64) string {
	switch {
	case seconds < secondsPerMinute:
		return fmt.Sprintf("%.0f seconds", seconds)
	case seconds < secondsPerHour:
		return fmt.Sprintf("%.1f minutes", seconds/secondsPerMinute)
	default:
		return fmt.Sprintf("%.2f hours", seconds/secondsPerHour)
	}
}

// TruncateLabel shortens a task label for chart axes, appending an ellipsis
// when the label exceeds max runes.
func TruncateLabel(label string, max int) string {
	runes := []rune(label)
	if len(runes) <= max {
		return label
	}
	return string(runes[:max]) + "..."
}
