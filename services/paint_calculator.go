package services

import "backend/models"

// ---------- Paint defaults ----------

var paintPrices = map[string]float64{
	"economy":  24.98,
	"standard": 38.98,
	"premium":  56.98,
}

const (
	paintCoveragePerGallon  = 350.0 // square feet per gallon per coat
	primerCoveragePerGallon = 300.0
	primerPricePerGallon    = 26.98

	painterTapeRollPrice = 7.98
	painterTapeRollFeet  = 60.0
	paintSuppliesKit     = 34.50 // rollers, brushes, tray, drop cloth
)

func validatePaint(input models.PaintInput) *ValidationError {
	if len(input.Walls) == 0 {
		return &ValidationError{Field: "walls", Reason: "must contain at least one wall"}
	}
	for _, w := range input.Walls {
		if !isSet(w.Length) {
			return missingField("wall length")
		}
		if !isSet(w.Height) {
			return missingField("wall height")
		}
	}
	return nil
}

// CalculatePaint nets out door and window deductions, then sizes paint by
// coats against per-gallon coverage, plus primer, tape and a supplies kit.
func CalculatePaint(input models.PaintInput, r *Resolver) ([]models.CalculationResult, error) {
	if err := validatePaint(input); err != nil {
		return nil, err
	}

	var wallArea, wallFeet float64
	for _, w := range input.Walls {
		wallArea += *w.Length * *w.Height
		wallFeet += *w.Length
	}

	paintable := wallArea - float64(input.Doors)*doorDeductionSqFt - float64(input.Windows)*windowDeductionSqFt
	if paintable < 0 {
		paintable = 0
	}

	coats := input.Coats
	if coats < 1 {
		coats = 2
	}

	quality := input.PaintQuality
	if _, ok := paintPrices[quality]; !ok {
		quality = "standard"
	}

	results := []models.CalculationResult{{
		Label: "Paintable Area",
		Value: round2(paintable),
		Unit:  "square feet",
	}}

	coverage := r.UnitValue("Interior Paint", paintCoveragePerGallon, "paint")
	gallons := ceilUnits(paintable * float64(coats) / coverage)
	results = append(results, models.CalculationResult{
		Label: "Interior Paint",
		Value: gallons,
		Unit:  "gallons",
		Cost:  round2(gallons * r.Price("Interior Paint", paintPrices[quality], "paint")),
	})

	if input.IncludePrimer {
		primerCoverage := r.UnitValue("Primer", primerCoveragePerGallon, "paint")
		primerGallons := ceilUnits(paintable / primerCoverage)
		results = append(results, models.CalculationResult{
			Label: "Primer",
			Value: primerGallons,
			Unit:  "gallons",
			Cost:  round2(primerGallons * r.Price("Primer", primerPricePerGallon, "paint")),
		})
	}

	if input.IncludeSupplies {
		tapeFeet := r.UnitValue("Painter's Tape", painterTapeRollFeet, "supplies")
		tapeRolls := ceilUnits(wallFeet / tapeFeet)
		if tapeRolls < 1 {
			tapeRolls = 1
		}
		results = append(results, models.CalculationResult{
			Label: "Painter's Tape",
			Value: tapeRolls,
			Unit:  "rolls",
			Cost:  round2(tapeRolls * r.Price("Painter's Tape", painterTapeRollPrice, "supplies")),
		})
		results = append(results, models.CalculationResult{
			Label: "Supplies Kit",
			Value: 1,
			Unit:  "kit",
			Cost:  r.Price("Paint Supplies Kit", paintSuppliesKit, "supplies"),
		})
	}

	return appendTotal(results, "Estimated Total"), nil
}
