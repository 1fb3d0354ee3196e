package services

import "backend/models"

// ---------- Siding defaults ----------

// Coverage and price per purchasable unit by siding type.
var sidingDefaults = map[string]struct {
	label    string
	material string
	coverage float64 // square feet per unit
	unit     string
	price    float64
}{
	"vinyl":        {"Vinyl Siding", "Vinyl Siding", 100.0, "squares", 189.00},
	"fiber_cement": {"Fiber Cement Siding", "Fiber Cement Plank", 8.25, "pieces", 11.98},
	"wood_lap":     {"Wood Lap Siding", "Wood Lap Board", 8.0, "pieces", 14.50},
	"board_batten": {"Board and Batten Siding", "Board and Batten Sheet", 32.0, "sheets", 54.75},
}

const (
	// Standard opening deductions in square feet.
	doorDeductionSqFt   = 21.0
	windowDeductionSqFt = 15.0

	houseWrapRollPrice = 165.00
	houseWrapRollSqFt  = 1000.0
	cornerPostPrice    = 28.45 // 10 ft outside corner post
	cornerPostFeet     = 10.0
	sidingNailBoxPrice = 42.00
	sidingNailBoxSqFt  = 1000.0 // coverage per box of nails
)

func validateSiding(input models.SidingInput) *ValidationError {
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

// CalculateSiding nets out standard opening deductions, applies waste and
// converts the remainder into the selected siding's purchasable unit, plus
// wrap, corner posts and fasteners.
func CalculateSiding(input models.SidingInput, r *Resolver) ([]models.CalculationResult, error) {
	if err := validateSiding(input); err != nil {
		return nil, err
	}

	var grossArea, cornerHeight float64
	for _, w := range input.Walls {
		grossArea += *w.Length * *w.Height
		if *w.Height > cornerHeight {
			cornerHeight = *w.Height
		}
	}

	netArea := grossArea - float64(input.Doors)*doorDeductionSqFt - float64(input.Windows)*windowDeductionSqFt
	if netArea < 0 {
		netArea = 0
	}

	waste := input.WastePercent
	if waste <= 0 {
		waste = 10
	}
	areaWithWaste := netArea * (1 + waste/100)

	d, ok := sidingDefaults[input.SidingType]
	if !ok {
		d = sidingDefaults["vinyl"]
	}

	results := []models.CalculationResult{{
		Label: "Siding Area",
		Value: round2(netArea),
		Unit:  "square feet",
	}}

	coverage := r.UnitValue(d.material, d.coverage, "siding")
	units := ceilUnits(areaWithWaste / coverage)
	results = append(results, models.CalculationResult{
		Label: d.label,
		Value: units,
		Unit:  d.unit,
		Cost:  round2(units * r.Price(d.material, d.price, "siding")),
	})

	if input.IncludeHouseWrap {
		rollSqFt := r.UnitValue("House Wrap", houseWrapRollSqFt, "siding")
		rolls := ceilUnits(grossArea / rollSqFt)
		results = append(results, models.CalculationResult{
			Label: "House Wrap",
			Value: rolls,
			Unit:  "rolls",
			Cost:  round2(rolls * r.Price("House Wrap", houseWrapRollPrice, "siding")),
		})
	}

	if input.Corners > 0 {
		postFeet := r.UnitValue("Corner Post", cornerPostFeet, "trim")
		posts := ceilUnits(float64(input.Corners) * cornerHeight / postFeet)
		results = append(results, models.CalculationResult{
			Label: "Corner Posts",
			Value: posts,
			Unit:  "pieces",
			Cost:  round2(posts * r.Price("Corner Post", cornerPostPrice, "trim")),
		})
	}

	nailBoxes := ceilUnits(areaWithWaste / sidingNailBoxSqFt)
	if nailBoxes < 1 {
		nailBoxes = 1
	}
	results = append(results, models.CalculationResult{
		Label: "Siding Nails",
		Value: nailBoxes,
		Unit:  "boxes",
		Cost:  round2(nailBoxes * r.Price("Siding Nails", sidingNailBoxPrice, "fasteners")),
	})

	return appendTotal(results, "Estimated Total"), nil
}
