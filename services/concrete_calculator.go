package services

import (
	"fmt"

	"backend/models"
)

// ---------- Concrete defaults ----------

const (
	concreteTruckPricePerYard  = 185.00 // delivered ready-mix, per cubic yard
	concreteTruckMinimumYards  = 1.0
	concreteShortLoadFee       = 120.00 // flat, charged only below the minimum load
	concreteSmallLoadWarnYards = 3.0

	concreteBag60Price = 4.98
	concreteBag80Price = 5.89
	// Yield constants: bags needed per cubic yard.
	concreteBags60PerYard = 60.0
	concreteBags80PerYard = 45.0

	concreteColorPerYard = 34.50
	concreteFiberPerYard = 11.75

	rebarStickPrice   = 8.99
	rebarStickLength  = 20.0 // feet
	meshSheetPrice    = 12.98
	meshSheetCoverage = 50.0 // square feet per sheet
)

func validateConcrete(input models.ConcreteInput) *ValidationError {
	if !isSet(input.Length) {
		return missingField("length")
	}
	switch input.ConcreteType {
	case "wall":
		if !isSet(input.Height) {
			return missingField("height")
		}
		if !isSet(input.Thickness) {
			return missingField("thickness")
		}
	default: // slab / flatwork
		if !isSet(input.Width) {
			return missingField("width")
		}
		if !isSet(input.Depth) {
			return missingField("depth")
		}
	}
	return nil
}

// CalculateConcrete turns slab or wall dimensions into a concrete order:
// volume, ready-mix or bagged supply, additives, and optional reinforcement.
func CalculateConcrete(input models.ConcreteInput, r *Resolver) ([]models.CalculationResult, error) {
	if err := validateConcrete(input); err != nil {
		return nil, err
	}

	// Geometry in cubic feet, then the 27 divisor to cubic yards.
	var volume float64
	isWall := input.ConcreteType == "wall"
	if isWall {
		volume = *input.Length * *input.Height * (*input.Thickness / 12.0) / 27.0
	} else {
		volume = *input.Length * *input.Width * (*input.Depth / 12.0) / 27.0
	}

	results := []models.CalculationResult{{
		Label: "Concrete Volume",
		Value: round2(volume),
		Unit:  "cubic yards",
	}}

	// Delivered volume is clamped to the truck minimum; bagged orders use
	// the raw volume.
	deliveredVolume := volume
	if input.DeliveryType != "bags" {
		if deliveredVolume < concreteTruckMinimumYards {
			deliveredVolume = concreteTruckMinimumYards
		}

		truckPrice := r.Price("Ready-Mix Concrete", concreteTruckPricePerYard, "concrete")
		results = append(results, models.CalculationResult{
			Label: "Ready-Mix Concrete",
			Value: round2(deliveredVolume),
			Unit:  "cubic yards",
			Cost:  round2(deliveredVolume * truckPrice),
		})

		if volume < concreteTruckMinimumYards {
			results = append(results, models.CalculationResult{
				Label: "Short Load Fee",
				Value: 1,
				Unit:  "each",
				Cost:  r.Price("Short Load Fee", concreteShortLoadFee, "concrete"),
			})
		}
	} else {
		bagsPerYard := concreteBags80PerYard
		bagPrice := concreteBag80Price
		bagLabel := "Concrete Bags (80 lb)"
		bagName := "80 lb Concrete Bag"
		if input.BagSize == 60 {
			bagsPerYard = concreteBags60PerYard
			bagPrice = concreteBag60Price
			bagLabel = "Concrete Bags (60 lb)"
			bagName = "60 lb Concrete Bag"
		}
		bags := ceilUnits(volume * bagsPerYard)
		price := r.Price(bagName, bagPrice, "concrete")
		results = append(results, models.CalculationResult{
			Label: bagLabel,
			Value: bags,
			Unit:  "bags",
			Cost:  round2(bags * price),
		})
	}

	if input.IncludeColor {
		price := r.Price("Concrete Color", concreteColorPerYard, "additives")
		results = append(results, models.CalculationResult{
			Label: "Color Additive",
			Value: round2(deliveredVolume),
			Unit:  "cubic yards",
			Cost:  round2(deliveredVolume * price),
		})
	}
	if input.IncludeFiber {
		price := r.Price("Fiber Reinforcement", concreteFiberPerYard, "additives")
		results = append(results, models.CalculationResult{
			Label: "Fiber Reinforcement",
			Value: round2(deliveredVolume),
			Unit:  "cubic yards",
			Cost:  round2(deliveredVolume * price),
		})
	}

	if input.IncludeRebar {
		spacing := input.RebarSpacing
		if spacing <= 0 {
			spacing = 12
		}
		var linearFeet float64
		if isWall {
			// Horizontal rows up the wall face plus verticals along the run.
			rows := ceilUnits(*input.Height*12/spacing) + 1
			verticals := ceilUnits(*input.Length*12/spacing) + 1
			linearFeet = rows**input.Length + verticals**input.Height
		} else {
			barsAcross := ceilUnits(*input.Width*12/spacing) + 1
			barsAlong := ceilUnits(*input.Length*12/spacing) + 1
			linearFeet = barsAcross**input.Length + barsAlong**input.Width
		}
		stickLength := r.UnitValue("Rebar #4", rebarStickLength, "reinforcement")
		sticks := ceilUnits(linearFeet / stickLength)
		price := r.Price("Rebar #4", rebarStickPrice, "reinforcement")
		results = append(results, models.CalculationResult{
			Label: fmt.Sprintf("Rebar #4 (%.0f ft sticks)", stickLength),
			Value: sticks,
			Unit:  "pieces",
			Cost:  round2(sticks * price),
		})
	}

	if input.IncludeMesh && !isWall {
		coverage := r.UnitValue("Wire Mesh", meshSheetCoverage, "reinforcement")
		sheets := ceilUnits(*input.Length * *input.Width / coverage)
		price := r.Price("Wire Mesh", meshSheetPrice, "reinforcement")
		results = append(results, models.CalculationResult{
			Label: "Wire Mesh Sheets",
			Value: sheets,
			Unit:  "sheets",
			Cost:  round2(sheets * price),
		})
	}

	if input.DeliveryType != "bags" && volume < concreteSmallLoadWarnYards {
		results = append(results, models.CalculationResult{
			Label:     "Loads under 3 cubic yards typically incur small-load fees",
			Value:     round2(volume),
			Unit:      "cubic yards",
			IsWarning: true,
		})
	}

	return appendTotal(results, "Estimated Total"), nil
}
