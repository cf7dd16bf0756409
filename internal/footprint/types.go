package footprint

import "github.com/rshade/digital-footprint/internal/catalog"

// UsageInput maps task ids to user-supplied quantities. A zero or absent
// quantity means the task is not used. Built fresh per calculation request
// and never persisted.
type UsageInput map[string]float64

// TaskEnergy is the per-task line of a calculation breakdown.
type TaskEnergy struct {
	// TaskID is the catalogue task id.
	TaskID string `json:"task_id"`

	// Label is the task display name.
	Label string `json:"label"`

	// Category is the task category (ai or cloud).
	Category string `json:"category"`

	// Quantity is the user-supplied quantity for this task.
	Quantity float64 `json:"quantity"`

	// UnitEnergyWh is the catalogue energy per unit.
	UnitEnergyWh float64 `json:"unit_energy_wh"`

	// EnergyWh is Quantity x UnitEnergyWh.
	EnergyWh float64 `json:"energy_wh"`

	// CO2G is the CO2 in grams attributable to this task on the selected
	// grid location.
	CO2G float64 `json:"co2_g"`
}

// Equivalents holds the derived human-relatable comparison metrics.
type Equivalents struct {
	// TreeDays is the number of tree-days needed to absorb the total CO2.
	TreeDays float64 `json:"tree_days"`

	// CarKm is the kilometres an average car drives to emit the total CO2.
	CarKm float64 `json:"car_km"`

	// CarSeconds is the seconds an average car drives to emit the total CO2.
	CarSeconds float64 `json:"car_seconds"`

	// SmartphoneCharges is the total energy expressed as full smartphone charges.
	SmartphoneCharges float64 `json:"smartphone_charges"`

	// NetflixHours is the total energy expressed as hours of Netflix streaming.
	NetflixHours float64 `json:"netflix_hours"`
}

// CalculationResult is the immutable output of Calculate for one
// (usage, location) pair.
type CalculationResult struct {
	// Location is the grid location the CO2 figures are computed for.
	Location catalog.GridLocation `json:"location"`

	// Breakdown lists the tasks with quantity > 0, in catalogue order.
	Breakdown []TaskEnergy `json:"breakdown"`

	// TotalEnergyWh is the sum of all per-task energies.
	TotalEnergyWh float64 `json:"total_energy_wh"`

	// TotalEnergyKWh is TotalEnergyWh / 1000.
	TotalEnergyKWh float64 `json:"total_energy_kwh"`

	// TotalCO2G is TotalEnergyKWh x the location's carbon intensity.
	TotalCO2G float64 `json:"total_co2_g"`

	// Equivalents are the derived comparison metrics.
	Equivalents Equivalents `json:"equivalents"`
}

// TaskComparison is the per-task line of a two-location comparison.
type TaskComparison struct {
	// TaskID is the catalogue task id.
	TaskID string `json:"task_id"`

	// Label is the task display name.
	Label string `json:"label"`

	// Category is the task category (ai or cloud).
	Category string `json:"category"`

	// Quantity is the shared quantity applied to both locations.
	Quantity float64 `json:"quantity"`

	// EnergyWh is the task energy, identical on both sides.
	EnergyWh float64 `json:"energy_wh"`

	// CO2AG is the task CO2 in grams at location A.
	CO2AG float64 `json:"co2_a_g"`

	// CO2BG is the task CO2 in grams at location B.
	CO2BG float64 `json:"co2_b_g"`

	// CO2DifferenceG is |CO2AG - CO2BG|.
	CO2DifferenceG float64 `json:"co2_difference_g"`
}

// ComparisonResult is the output of Compare: the same usage evaluated
// against two grid locations.
type ComparisonResult struct {
	// A is the calculation result for the first location.
	A CalculationResult `json:"a"`

	// B is the calculation result for the second location.
	B CalculationResult `json:"b"`

	// CO2DifferenceG is |A.TotalCO2G - B.TotalCO2G|.
	CO2DifferenceG float64 `json:"co2_difference_g"`

	// CleanlinessRatio is max(A,B)/min(A,B) in total CO2 grams.
	// Defined as 1 when both totals are zero.
	CleanlinessRatio float64 `json:"cleanliness_ratio"`

	// CleanerID is the id of the location with lower total CO2,
	// or empty when the totals are equal.
	CleanerID string `json:"cleaner_id,omitempty"`

	// Tasks is the per-task comparison, in catalogue order.
	Tasks []TaskComparison `json:"tasks"`
}
