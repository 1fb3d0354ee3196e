package services

import "backend/models"

// ---------- Flooring defaults ----------

// Coverage and price per purchasable unit by flooring type. Carpet is sold
// by the square yard; everything else by the box.
var flooringDefaults = map[string]struct {
	label     string
	material  string
	coverage  float64 // square feet per box
	boxPrice  float64
}{
	"hardwood": {"Hardwood Flooring", "Hardwood Plank", 20.0, 89.50},
	"laminate": {"Laminate Flooring", "Laminate Plank", 24.0, 52.75},
	"vinyl":    {"Vinyl Plank Flooring", "Vinyl Plank", 30.0, 64.25},
}

const (
	carpetPricePerSqYd     = 28.50
	underlaymentRollPrice  = 54.98
	underlaymentRollSqFt   = 100.0
	transitionStripPrice   = 21.47

	patternMultDiagonal    = 1.10
	patternMultHerringbone = 1.15
)

func flooringPatternMultiplier(pattern string, herringbone float64) float64 {
	switch pattern {
	case "diagonal":
		return patternMultDiagonal
	case "herringbone":
		return herringbone
	default:
		return 1.0
	}
}

func validateFlooring(input models.FlooringInput) *ValidationError {
	if !isSet(input.Length) {
		return missingField("length")
	}
	if !isSet(input.Width) {
		return missingField("width")
	}
	return nil
}

// CalculateFlooring converts a room footprint into boxes (or square yards
// for carpet) with waste and pattern factors, plus underlayment and
// transition strips.
func CalculateFlooring(input models.FlooringInput, r *Resolver) ([]models.CalculationResult, error) {
	if err := validateFlooring(input); err != nil {
		return nil, err
	}

	area := *input.Length * *input.Width
	waste := input.WastePercent
	if waste <= 0 {
		waste = 10
	}
	areaWithWaste := area * (1 + waste/100) * flooringPatternMultiplier(input.Pattern, patternMultHerringbone)

	results := []models.CalculationResult{{
		Label: "Floor Area",
		Value: round2(area),
		Unit:  "square feet",
	}}

	if input.FlooringType == "carpet" {
		squareYards := ceilUnits(areaWithWaste / 9.0)
		price := r.Price("Carpet", carpetPricePerSqYd, "flooring")
		results = append(results, models.CalculationResult{
			Label: "Carpet",
			Value: squareYards,
			Unit:  "square yards",
			Cost:  round2(squareYards * price),
		})
	} else {
		d, ok := flooringDefaults[input.FlooringType]
		if !ok {
			d = flooringDefaults["laminate"]
		}
		coverage := r.UnitValue(d.material, d.coverage, "flooring")
		boxes := ceilUnits(areaWithWaste / coverage)
		price := r.Price(d.material, d.boxPrice, "flooring")
		results = append(results, models.CalculationResult{
			Label: d.label,
			Value: boxes,
			Unit:  "boxes",
			Cost:  round2(boxes * price),
		})
	}

	if input.IncludeUnderlayment {
		rollCoverage := r.UnitValue("Underlayment", underlaymentRollSqFt, "flooring")
		rolls := ceilUnits(area / rollCoverage)
		results = append(results, models.CalculationResult{
			Label: "Underlayment",
			Value: rolls,
			Unit:  "rolls",
			Cost:  round2(rolls * r.Price("Underlayment", underlaymentRollPrice, "flooring")),
		})
	}

	if input.IncludeTransitions && input.TransitionCount > 0 {
		strips := float64(input.TransitionCount)
		results = append(results, models.CalculationResult{
			Label: "Transition Strips",
			Value: strips,
			Unit:  "pieces",
			Cost:  round2(strips * r.Price("Transition Strip", transitionStripPrice, "trim")),
		})
	}

	return appendTotal(results, "Estimated Total"), nil
}
