package footprint

import (
	"fmt"
	"math"

	"github.com/rshade/digital-footprint/internal/catalog"
)

// Calculate computes the energy and CO2 footprint of the given usage on the
// given grid location.
//
// Every quantity is validated before any computation: a negative, NaN, or
// infinite quantity fails with ErrInvalidQuantity naming the task id, and a
// task id missing from the catalogue fails with catalog.ErrUnknownID. No
// partial result is returned on failure.
//
// The breakdown contains only tasks with quantity > 0, in catalogue order,
// so output is stable for rendering. The function is pure: identical inputs
// produce bit-identical outputs.
func Calculate(usage UsageInput, location catalog.GridLocation) (CalculationResult, error) {
	if err := validateUsage(usage); err != nil {
		return CalculationResult{}, err
	}

	result := CalculationResult{Location: location}

	for _, task := range catalog.Tasks() {
		quantity := usage[task.ID]
		if quantity == 0 {
			continue
		}

		energyWh := quantity * task.UnitEnergyWh
		result.Breakdown = append(result.Breakdown, TaskEnergy{
			TaskID:       task.ID,
			Label:        task.Label,
			Category:     task.Category,
			Quantity:     quantity,
			UnitEnergyWh: task.UnitEnergyWh,
			EnergyWh:     energyWh,
			CO2G:         energyWh / WhPerKWh * location.CarbonIntensityGPerKWh,
		})
		result.TotalEnergyWh += energyWh
	}

	result.TotalEnergyKWh = result.TotalEnergyWh / WhPerKWh
	result.TotalCO2G = result.TotalEnergyKWh * location.CarbonIntensityGPerKWh
	result.Equivalents = deriveEquivalents(result.TotalEnergyWh, result.TotalCO2G)

	return result, nil
}

// CalculateByID is a convenience wrapper that resolves the grid location id
// before calculating.
func CalculateByID(usage UsageInput, locationID string) (CalculationResult, error) {
	location, err := catalog.GridByID(locationID)
	if err != nil {
		return CalculationResult{}, err
	}
	return Calculate(usage, location)
}

// validateUsage rejects unknown task ids and invalid quantities before any
// computation happens.
func validateUsage(usage UsageInput) error {
	for id, quantity := range usage {
		if _, err := catalog.TaskByID(id); err != nil {
			return err
		}
		if math.IsNaN(quantity) || math.IsInf(quantity, 0) || quantity < 0 {
			return fmt.Errorf("%w: task %q has quantity %v", ErrInvalidQuantity, id, quantity)
		}
	}
	return nil
}

// deriveEquivalents converts totals into the human-relatable comparison
// metrics. All reference divisors are fixed positive constants, so no
// division by zero is possible; zero input yields all-zero equivalents.
func deriveEquivalents(totalEnergyWh, totalCO2G float64) Equivalents {
	return Equivalents{
		TreeDays:          totalCO2G / TreeAbsorptionGramsPerDay,
		CarKm:             totalCO2G / CarEmissionGramsPerKm,
		CarSeconds:        totalCO2G / (CarEmissionGramsPerYear / SecondsPerYear),
		SmartphoneCharges: totalEnergyWh / SmartphoneChargeWh,
		NetflixHours:      totalEnergyWh / NetflixHourWh,
	}
}
