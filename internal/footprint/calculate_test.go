package footprint

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/digital-footprint/internal/catalog"
)

const floatTolerance = 1e-9

func mustGrid(t *testing.T, id string) catalog.GridLocation {
	t.Helper()
	grid, err := catalog.GridByID(id)
	require.NoError(t, err)
	return grid
}

// TestCalculate_Proportionality checks energy == quantity x unit energy for
// every catalogued task.
func TestCalculate_Proportionality(t *testing.T) {
	uk := mustGrid(t, "uk")

	for _, task := range catalog.Tasks() {
		t.Run(task.ID, func(t *testing.T) {
			for _, quantity := range []float64{0.5, 1, 3, 250} {
				result, err := Calculate(UsageInput{task.ID: quantity}, uk)
				require.NoError(t, err)

				assert.InDelta(t, quantity*task.UnitEnergyWh, result.TotalEnergyWh, floatTolerance)
				require.Len(t, result.Breakdown, 1)
				assert.Equal(t, task.ID, result.Breakdown[0].TaskID)
				assert.InDelta(t, quantity, result.Breakdown[0].Quantity, floatTolerance)
			}
		})
	}
}

func TestCalculate_Linearity(t *testing.T) {
	uk := mustGrid(t, "uk")

	first, err := Calculate(UsageInput{"text_generation": 3}, uk)
	require.NoError(t, err)
	second, err := Calculate(UsageInput{"text_generation": 4}, uk)
	require.NoError(t, err)
	combined, err := Calculate(UsageInput{"text_generation": 7}, uk)
	require.NoError(t, err)

	assert.InDelta(t, first.TotalEnergyWh+second.TotalEnergyWh, combined.TotalEnergyWh, floatTolerance)
	assert.InDelta(t, first.TotalCO2G+second.TotalCO2G, combined.TotalCO2G, floatTolerance)
}

func TestCalculate_Monotonicity(t *testing.T) {
	texas := mustGrid(t, "usa_texas")

	lower, err := Calculate(UsageInput{"image_generation": 10, "google_search": 5}, texas)
	require.NoError(t, err)
	higher, err := Calculate(UsageInput{"image_generation": 11, "google_search": 5}, texas)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, higher.TotalEnergyWh, lower.TotalEnergyWh)
	assert.GreaterOrEqual(t, higher.TotalCO2G, lower.TotalCO2G)
}

func TestCalculate_ZeroInput(t *testing.T) {
	iceland := mustGrid(t, "iceland")

	result, err := Calculate(UsageInput{}, iceland)
	require.NoError(t, err)

	assert.Zero(t, result.TotalEnergyWh)
	assert.Zero(t, result.TotalCO2G)
	assert.Empty(t, result.Breakdown)
	assert.Zero(t, result.Equivalents.TreeDays)
	assert.Zero(t, result.Equivalents.CarKm)
	assert.Zero(t, result.Equivalents.CarSeconds)
	assert.Zero(t, result.Equivalents.SmartphoneCharges)
	assert.Zero(t, result.Equivalents.NetflixHours)
}

// TestCalculate_LocationScaling checks CO2 is directly proportional to the
// grid intensity: 1 kWh of usage gives 18 g in Iceland and 400 g in Texas.
func TestCalculate_LocationScaling(t *testing.T) {
	// 50 smartphone charges = 1000 Wh = 1 kWh.
	usage := UsageInput{"smartphone_charge": 50}

	iceland, err := Calculate(usage, mustGrid(t, "iceland"))
	require.NoError(t, err)
	texas, err := Calculate(usage, mustGrid(t, "usa_texas"))
	require.NoError(t, err)

	assert.InDelta(t, 1000, iceland.TotalEnergyWh, floatTolerance)
	assert.InDelta(t, 18, iceland.TotalCO2G, floatTolerance)
	assert.InDelta(t, 400, texas.TotalCO2G, floatTolerance)
	assert.InDelta(t, 400.0/18.0, texas.TotalCO2G/iceland.TotalCO2G, floatTolerance)
}

// TestCalculate_WorkedExample reproduces the reference scenario:
// 10 paragraphs + 100 searches = 100 Wh = 0.1 kWh; at 233 g/kWh that is
// 23.3 g CO2.
func TestCalculate_WorkedExample(t *testing.T) {
	usage := UsageInput{"text_generation": 10, "google_search": 100}

	result, err := Calculate(usage, mustGrid(t, "uk"))
	require.NoError(t, err)

	assert.InDelta(t, 100, result.TotalEnergyWh, floatTolerance)
	assert.InDelta(t, 0.1, result.TotalEnergyKWh, floatTolerance)
	assert.InDelta(t, 23.3, result.TotalCO2G, floatTolerance)
}

func TestCalculate_Determinism(t *testing.T) {
	usage := UsageInput{"video_from_text": 2, "netflix_streaming": 1.5}
	france := mustGrid(t, "france")

	first, err := Calculate(usage, france)
	require.NoError(t, err)
	second, err := Calculate(usage, france)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestCalculate_BreakdownOrder checks the breakdown follows catalogue
// order regardless of map iteration order.
func TestCalculate_BreakdownOrder(t *testing.T) {
	usage := UsageInput{
		"video_call":      1,
		"text_generation": 1,
		"google_search":   1,
	}

	result, err := Calculate(usage, mustGrid(t, "uk"))
	require.NoError(t, err)

	require.Len(t, result.Breakdown, 3)
	assert.Equal(t, "text_generation", result.Breakdown[0].TaskID)
	assert.Equal(t, "google_search", result.Breakdown[1].TaskID)
	assert.Equal(t, "video_call", result.Breakdown[2].TaskID)
}

func TestCalculate_UnknownTask(t *testing.T) {
	_, err := Calculate(UsageInput{"nonexistent_task": 1}, mustGrid(t, "uk"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrUnknownID))
}

func TestCalculate_InvalidQuantities(t *testing.T) {
	uk := mustGrid(t, "uk")

	tests := []struct {
		name     string
		quantity float64
	}{
		{"negative", -1},
		{"NaN", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Calculate(UsageInput{"google_search": tt.quantity}, uk)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidQuantity))
			assert.Contains(t, err.Error(), "google_search")

			// No partial result on failure.
			assert.Equal(t, CalculationResult{}, result)
		})
	}
}

// TestCalculate_ValidationBeforeComputation checks a bad quantity poisons
// the whole request even when other tasks are valid.
func TestCalculate_ValidationBeforeComputation(t *testing.T) {
	usage := UsageInput{
		"text_generation": 10,
		"google_search":   -1,
	}

	result, err := Calculate(usage, mustGrid(t, "uk"))
	require.Error(t, err)
	assert.Equal(t, CalculationResult{}, result)
}

func TestCalculateByID_UnknownLocation(t *testing.T) {
	_, err := CalculateByID(UsageInput{"google_search": 1}, "atlantis")
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrUnknownID))
}

func TestCalculate_PerTaskCO2SumsToTotal(t *testing.T) {
	usage := UsageInput{
		"text_generation":   10,
		"image_generation":  5,
		"netflix_streaming": 2,
	}

	result, err := Calculate(usage, mustGrid(t, "usa_texas"))
	require.NoError(t, err)

	var sum float64
	for _, entry := range result.Breakdown {
		sum += entry.CO2G
	}
	assert.InDelta(t, result.TotalCO2G, sum, floatTolerance)
}
