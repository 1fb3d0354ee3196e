package services

import (
	"fmt"

	"backend/models"
)

// ---------- Electrical defaults ----------

// Breaker prices tier by amperage; AFCI breakers are their own price branch.
var breakerPrices = map[int]struct {
	standard float64
	afci     float64
}{
	15: {12.48, 48.97},
	20: {12.98, 52.40},
	30: {19.75, 64.25},
	40: {24.50, 72.80},
	50: {31.25, 84.60},
}

// Wire gauge by circuit amperage, and price per foot of the matching
// NM-B cable.
var wireByAmperage = map[int]struct {
	gauge      string
	pricePerFt float64
}{
	15: {"14/2", 0.42},
	20: {"12/2", 0.58},
	30: {"10/2", 0.92},
	40: {"8/3", 1.85},
	50: {"6/3", 2.65},
}

const (
	wireOverageMultiplier = 1.2
	wireRollFeet          = 250.0

	outletPrice       = 3.25
	switchPrice       = 4.10
	lightFixturePrice = 38.50
	devicePlatePrice  = 0.98
	deviceBoxPrice    = 2.35

	stapleBoxPrice = 6.45
	stapleBoxFeet  = 500.0 // wire feet secured per box
)

func validateElectrical(input models.ElectricalInput) *ValidationError {
	hasCircuit := false
	for _, c := range input.Circuits {
		if isPositive(c.Length) {
			hasCircuit = true
			break
		}
	}
	if !hasCircuit {
		return &ValidationError{Field: "circuits", Reason: "must contain at least one circuit with a positive length"}
	}
	return nil
}

// CalculateElectrical prices breakers per circuit with amperage and AFCI
// branching, wire rolls per gauge with the routing overage, then devices,
// boxes, plates and staples.
func CalculateElectrical(input models.ElectricalInput, r *Resolver) ([]models.CalculationResult, error) {
	if err := validateElectrical(input); err != nil {
		return nil, err
	}

	var results []models.CalculationResult

	// Breakers, one line per circuit, and wire footage accumulated by gauge.
	wireFeet := map[int]float64{}
	var totalWireFeet float64
	for _, c := range input.Circuits {
		if !isPositive(c.Length) {
			continue
		}
		amps := c.Amperage
		if _, ok := breakerPrices[amps]; !ok {
			amps = 20
		}

		tier := breakerPrices[amps]
		price := tier.standard
		name := fmt.Sprintf("%d A Breaker", amps)
		label := fmt.Sprintf("Breaker (%d A)", amps)
		if c.AFCI {
			price = tier.afci
			name = fmt.Sprintf("%d A AFCI Breaker", amps)
			label = fmt.Sprintf("AFCI Breaker (%d A)", amps)
		}
		results = append(results, models.CalculationResult{
			Label: label,
			Value: 1,
			Unit:  "each",
			Cost:  round2(r.Price(name, price, "breakers")),
		})

		adjusted := *c.Length * wireOverageMultiplier
		wireFeet[amps] += adjusted
		totalWireFeet += adjusted
	}

	// Emit wire lines in a fixed gauge order so output is deterministic.
	for _, amps := range []int{15, 20, 30, 40, 50} {
		feet, ok := wireFeet[amps]
		if !ok {
			continue
		}
		w := wireByAmperage[amps]
		rollFeet := r.UnitValue(w.gauge+" Wire", wireRollFeet, "wire")
		rolls := ceilUnits(feet / rollFeet)
		rollPrice := r.Price(w.gauge+" Wire", w.pricePerFt*rollFeet, "wire")
		results = append(results, models.CalculationResult{
			Label: fmt.Sprintf("NM-B %s Wire (%.0f ft rolls)", w.gauge, rollFeet),
			Value: rolls,
			Unit:  "rolls",
			Cost:  round2(rolls * rollPrice),
		})
	}

	devices := input.Outlets + input.Switches
	if input.Outlets > 0 {
		n := float64(input.Outlets)
		results = append(results, models.CalculationResult{
			Label: "Outlets",
			Value: n,
			Unit:  "each",
			Cost:  round2(n * r.Price("Outlet", outletPrice, "devices")),
		})
	}
	if input.Switches > 0 {
		n := float64(input.Switches)
		results = append(results, models.CalculationResult{
			Label: "Switches",
			Value: n,
			Unit:  "each",
			Cost:  round2(n * r.Price("Switch", switchPrice, "devices")),
		})
	}
	if input.LightFixtures > 0 {
		n := float64(input.LightFixtures)
		results = append(results, models.CalculationResult{
			Label: "Light Fixtures",
			Value: n,
			Unit:  "each",
			Cost:  round2(n * r.Price("Light Fixture", lightFixturePrice, "devices")),
		})
	}
	if devices > 0 {
		n := float64(devices)
		results = append(results, models.CalculationResult{
			Label: "Device Boxes",
			Value: n,
			Unit:  "each",
			Cost:  round2(n * r.Price("Device Box", deviceBoxPrice, "boxes")),
		})
		results = append(results, models.CalculationResult{
			Label: "Cover Plates",
			Value: n,
			Unit:  "each",
			Cost:  round2(n * r.Price("Cover Plate", devicePlatePrice, "devices")),
		})
	}

	stapleFeet := r.UnitValue("Cable Staples", stapleBoxFeet, "fasteners")
	stapleBoxes := ceilUnits(totalWireFeet / stapleFeet)
	if stapleBoxes < 1 {
		stapleBoxes = 1
	}
	results = append(results, models.CalculationResult{
		Label: "Cable Staples",
		Value: stapleBoxes,
		Unit:  "boxes",
		Cost:  round2(stapleBoxes * r.Price("Cable Staples", stapleBoxPrice, "fasteners")),
	})

	return appendTotal(results, "Estimated Total"), nil
}
