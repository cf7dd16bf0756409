package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{18248, "18,248"},
		{1234567, "1,234,567"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.in))
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{0.5, "0.5"},
		{30, "30.0"},
		{1234.56, "1,234.6"},
		{-0.5, "-0.5"},
		{-30, "-30.0"},
		{-1234.56, "-1,234.6"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.in))
		})
	}
}

func TestFormatEnergy(t *testing.T) {
	assert.Equal(t, "100.0 Wh (0.10 kWh)", FormatEnergy(100))
	assert.Equal(t, "2,000.0 Wh (2.00 kWh)", FormatEnergy(2000))
}

func TestFormatCO2(t *testing.T) {
	assert.Equal(t, "0.023 kg (23.3 g)", FormatCO2(23.3))
}

// TestFormatCarDuration covers the unit thresholds: seconds under a minute,
// minutes under an hour, hours beyond.
func TestFormatCarDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{10, "10 seconds"},
		{59.4, "59 seconds"},
		{90, "1.5 minutes"},
		{3599, "60.0 minutes"},
		{7200, "2.00 hours"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCarDuration(tt.seconds))
		})
	}
}

func TestTruncateLabel(t *testing.T) {
	assert.Equal(t, "short", TruncateLabel("short", 30))
	assert.Equal(t, "exactly-ten", TruncateLabel("exactly-ten", 11))
	assert.Equal(t, "Generate a 1024x1024 pixel AI ...",
		TruncateLabel("Generate a 1024x1024 pixel AI image", 30))
}
