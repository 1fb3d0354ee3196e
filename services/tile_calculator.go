package services

import "backend/models"

// ---------- Tile defaults ----------

// Coverage (square feet per box) and price per box by tile size.
var tileDefaults = map[string]struct {
	coverage float64
	boxPrice float64
}{
	"12x12":  {10.0, 32.50},
	"18x18":  {15.75, 48.90},
	"24x24":  {16.0, 67.25},
	"subway": {10.76, 24.88},
}

const (
	thinsetBagPrice    = 18.97
	thinsetBagCoverage = 95.0 // square feet per 50 lb bag
	groutBoxPrice      = 16.48
	groutBoxCoverage   = 105.0 // square feet per 10 lb box
	backerBoardPrice   = 13.98
	backerBoardSqFt    = 15.0 // 3x5 sheet
	membraneRollPrice  = 189.00
	membraneRollSqFt   = 108.0

	tileHerringboneMult = 1.20
)

func validateTile(input models.TileInput) *ValidationError {
	if !isSet(input.Length) {
		return missingField("length")
	}
	if !isSet(input.Width) {
		return missingField("width")
	}
	return nil
}

// CalculateTile converts a tiled area into boxes of tile with waste and
// pattern factors, plus thinset, grout and the optional substrate layers,
// each rounded by its own coverage constant.
func CalculateTile(input models.TileInput, r *Resolver) ([]models.CalculationResult, error) {
	if err := validateTile(input); err != nil {
		return nil, err
	}

	area := *input.Length * *input.Width
	waste := input.WastePercent
	if waste <= 0 {
		waste = 10
	}
	areaWithWaste := area * (1 + waste/100) * flooringPatternMultiplier(input.Pattern, tileHerringboneMult)

	d, ok := tileDefaults[input.TileSize]
	if !ok {
		d = tileDefaults["12x12"]
	}

	results := []models.CalculationResult{{
		Label: "Tile Area",
		Value: round2(area),
		Unit:  "square feet",
	}}

	materialName := "Tile " + input.TileSize
	coverage := r.UnitValue(materialName, d.coverage, "tile")
	boxes := ceilUnits(areaWithWaste / coverage)
	results = append(results, models.CalculationResult{
		Label: "Tile",
		Value: boxes,
		Unit:  "boxes",
		Cost:  round2(boxes * r.Price(materialName, d.boxPrice, "tile")),
	})

	thinsetCoverage := r.UnitValue("Thinset Mortar", thinsetBagCoverage, "setting")
	thinsetBags := ceilUnits(area / thinsetCoverage)
	results = append(results, models.CalculationResult{
		Label: "Thinset Mortar (50 lb)",
		Value: thinsetBags,
		Unit:  "bags",
		Cost:  round2(thinsetBags * r.Price("Thinset Mortar", thinsetBagPrice, "setting")),
	})

	groutCoverage := r.UnitValue("Grout", groutBoxCoverage, "setting")
	groutBoxes := ceilUnits(area / groutCoverage)
	results = append(results, models.CalculationResult{
		Label: "Grout (10 lb)",
		Value: groutBoxes,
		Unit:  "boxes",
		Cost:  round2(groutBoxes * r.Price("Grout", groutBoxPrice, "setting")),
	})

	if input.IncludeBackerBoard {
		sheetSqFt := r.UnitValue("Backer Board", backerBoardSqFt, "substrate")
		sheets := ceilUnits(area / sheetSqFt)
		results = append(results, models.CalculationResult{
			Label: "Backer Board (3x5)",
			Value: sheets,
			Unit:  "sheets",
			Cost:  round2(sheets * r.Price("Backer Board", backerBoardPrice, "substrate")),
		})
	}

	if input.IncludeMembrane {
		rollSqFt := r.UnitValue("Uncoupling Membrane", membraneRollSqFt, "substrate")
		rolls := ceilUnits(area / rollSqFt)
		results = append(results, models.CalculationResult{
			Label: "Uncoupling Membrane",
			Value: rolls,
			Unit:  "rolls",
			Cost:  round2(rolls * r.Price("Uncoupling Membrane", membraneRollPrice, "substrate")),
		})
	}

	return appendTotal(results, "Estimated Total"), nil
}
