// Package footprint computes energy consumption and carbon-emission
// estimates for catalogued digital activities.
//
// The model is a linear scaling of per-unit energy constants by user
// quantities, converted to CO2 grams through a grid carbon-intensity factor,
// plus derived human-relatable equivalence metrics.
package footprint

// Reference constants for equivalence metrics.
const (
	// TreeAbsorptionGramsPerDay is grams of CO2 a mature tree absorbs per day.
	// Based on the common reference of 22 kg CO2 absorbed per tree per year.
	TreeAbsorptionGramsPerDay = 22000.0 / 365.0

	// CarEmissionGramsPerKm is grams of CO2 an average passenger car emits
	// per kilometre driven.
	// Derived from the EPA GHG Equivalencies Calculator factor of
	// 0.192 kg CO2e per mile (2024 edition), converted at 1.60934 km/mile.
	CarEmissionGramsPerKm = 119.3

	// CarEmissionGramsPerYear is grams of CO2 an average passenger car emits
	// per year (4.6 metric tons), used for the driving-time equivalent.
	// Source: EPA average annual passenger vehicle emissions.
	CarEmissionGramsPerYear = 4.6e6
)

// Catalogue unit energies reused for energy equivalents. These mirror the
// smartphone_charge and netflix_streaming catalogue entries; a test keeps
// them in sync with the embedded data.
const (
	// SmartphoneChargeWh is watt-hours per full smartphone charge.
	SmartphoneChargeWh = 20.0

	// NetflixHourWh is watt-hours per hour of Netflix streaming.
	NetflixHourWh = 200.0
)

// Unit conversions.
const (
	// WhPerKWh converts watt-hours to kilowatt-hours.
	WhPerKWh = 1000.0

	// SecondsPerYear is used to convert annual car emissions into a
	// per-second rate for the driving-time equivalent.
	SecondsPerYear = 365.0 * 24.0 * 3600.0
)
