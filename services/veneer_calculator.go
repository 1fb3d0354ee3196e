package services

import "backend/models"

// ---------- Veneer defaults ----------

var veneerFlatDefaults = map[string]struct {
	label    string
	material string
	coverage float64 // square feet per box
	boxPrice float64
}{
	"stone": {"Stone Veneer Flats", "Stone Veneer Flat", 10.0, 74.50},
	"brick": {"Brick Veneer Flats", "Brick Veneer Flat", 10.6, 58.25},
}

const (
	// Each linear foot of corner pieces covers about 0.75 square feet of
	// flat area, deducted before flats are sized.
	cornerFlatCreditSqFt = 0.75
	veneerCornerBoxFeet  = 6.0 // linear feet per corner box
	stoneCornerBoxPrice  = 96.00
	brickCornerBoxPrice  = 78.50

	lathSheetPrice = 11.45
	lathSheetSqFt  = 16.0 // 2x8 metal lath sheet

	scratchCoatCoverage = 35.0 // square feet per bag
	settingCoatCoverage = 40.0
	mortarBagPrice      = 12.75

	veneerSealerPrice    = 42.00
	veneerSealerCoverage = 200.0 // square feet per gallon
)

func validateVeneer(input models.VeneerInput) *ValidationError {
	if !isSet(input.Length) {
		return missingField("length")
	}
	if !isSet(input.Height) {
		return missingField("height")
	}
	return nil
}

// CalculateVeneer splits a veneer wall into corner pieces (sold by the
// linear foot) and flats (sold by coverage box), then sizes lath and the
// scratch and setting mortar coats by their own coverages.
func CalculateVeneer(input models.VeneerInput, r *Resolver) ([]models.CalculationResult, error) {
	if err := validateVeneer(input); err != nil {
		return nil, err
	}

	area := *input.Length * *input.Height
	waste := input.WastePercent
	if waste <= 0 {
		waste = 10
	}

	var cornerFeet float64
	if isPositive(input.CornerLength) {
		cornerFeet = *input.CornerLength
	}

	d, ok := veneerFlatDefaults[input.VeneerType]
	if !ok {
		d = veneerFlatDefaults["stone"]
	}
	cornerPrice := stoneCornerBoxPrice
	if input.VeneerType == "brick" {
		cornerPrice = brickCornerBoxPrice
	}

	results := []models.CalculationResult{{
		Label: "Veneer Area",
		Value: round2(area),
		Unit:  "square feet",
	}}

	flatArea := area - cornerFeet*cornerFlatCreditSqFt
	if flatArea < 0 {
		flatArea = 0
	}
	flatAreaWithWaste := flatArea * (1 + waste/100)
	coverage := r.UnitValue(d.material, d.coverage, "veneer")
	flatBoxes := ceilUnits(flatAreaWithWaste / coverage)
	results = append(results, models.CalculationResult{
		Label: d.label,
		Value: flatBoxes,
		Unit:  "boxes",
		Cost:  round2(flatBoxes * r.Price(d.material, d.boxPrice, "veneer")),
	})

	if cornerFeet > 0 {
		boxFeet := r.UnitValue("Veneer Corners", veneerCornerBoxFeet, "veneer")
		cornerBoxes := ceilUnits(cornerFeet * (1 + waste/100) / boxFeet)
		results = append(results, models.CalculationResult{
			Label: "Veneer Corners",
			Value: cornerBoxes,
			Unit:  "boxes",
			Cost:  round2(cornerBoxes * r.Price("Veneer Corners", cornerPrice, "veneer")),
		})
	}

	lathSqFt := r.UnitValue("Metal Lath", lathSheetSqFt, "substrate")
	lathSheets := ceilUnits(area / lathSqFt)
	results = append(results, models.CalculationResult{
		Label: "Metal Lath",
		Value: lathSheets,
		Unit:  "sheets",
		Cost:  round2(lathSheets * r.Price("Metal Lath", lathSheetPrice, "substrate")),
	})

	mortarPrice := r.Price("Mortar Type S", mortarBagPrice, "mortar")

	scratchBags := ceilUnits(area / r.UnitValue("Scratch Coat Mortar", scratchCoatCoverage, "mortar"))
	results = append(results, models.CalculationResult{
		Label: "Scratch Coat Mortar",
		Value: scratchBags,
		Unit:  "bags",
		Cost:  round2(scratchBags * mortarPrice),
	})

	settingBags := ceilUnits(area / r.UnitValue("Setting Mortar", settingCoatCoverage, "mortar"))
	results = append(results, models.CalculationResult{
		Label: "Setting Mortar",
		Value: settingBags,
		Unit:  "bags",
		Cost:  round2(settingBags * mortarPrice),
	})

	if input.IncludeSealer {
		sealerCoverage := r.UnitValue("Veneer Sealer", veneerSealerCoverage, "finish")
		gallons := ceilUnits(area / sealerCoverage)
		results = append(results, models.CalculationResult{
			Label: "Veneer Sealer",
			Value: gallons,
			Unit:  "gallons",
			Cost:  round2(gallons * r.Price("Veneer Sealer", veneerSealerPrice, "finish")),
		})
	}

	return appendTotal(results, "Estimated Total"), nil
}
