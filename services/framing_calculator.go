package services

import "backend/models"

// ---------- Framing defaults ----------

const (
	studPrice        = 4.25  // 2x4x8 precut
	platePrice       = 12.78 // 2x4x16
	plateStickLength = 16.0  // feet
	headerPricePerFt = 6.45  // doubled 2x8 header stock, per linear foot
	framingNailPrice = 9.97  // per box
	studsPerNailBox  = 50.0

	// Extra studs consumed by a framed opening: king and jack studs for a
	// door, plus sill and cripple stock for a window.
	extraStudsPerDoor   = 4
	extraStudsPerWindow = 6
)

func validateFraming(input models.FramingInput) *ValidationError {
	if !isSet(input.WallLength) {
		return missingField("wall_length")
	}
	if !isSet(input.WallHeight) {
		return missingField("wall_height")
	}
	for _, o := range input.Openings {
		if !isSet(o.Width) {
			return missingField("opening width")
		}
		if !isSet(o.Height) {
			return missingField("opening height")
		}
	}
	return nil
}

// CalculateFraming sizes a stud wall run: studs on the selected spacing,
// three plates, header stock per opening, and nails.
func CalculateFraming(input models.FramingInput, r *Resolver) ([]models.CalculationResult, error) {
	if err := validateFraming(input); err != nil {
		return nil, err
	}

	spacing := input.StudSpacing
	if spacing <= 0 {
		spacing = 16
	}

	studs := ceilUnits(*input.WallLength*12/spacing) + 1
	var headerFeet float64
	for _, o := range input.Openings {
		count := o.Count
		if count < 1 {
			count = 1
		}
		if o.Type == "window" {
			studs += float64(extraStudsPerWindow * count)
		} else {
			studs += float64(extraStudsPerDoor * count)
		}
		// Header spans the opening plus a half foot of bearing, doubled up.
		headerFeet += 2 * (*o.Width + 0.5) * float64(count)
	}

	results := []models.CalculationResult{{
		Label: "Wall Studs (2x4)",
		Value: studs,
		Unit:  "pieces",
		Cost:  round2(studs * r.Price("2x4 Stud", studPrice, "lumber")),
	}}

	// One bottom plate and a doubled top plate.
	plateLength := r.UnitValue("2x4x16 Plate", plateStickLength, "lumber")
	plates := ceilUnits(*input.WallLength * 3 / plateLength)
	results = append(results, models.CalculationResult{
		Label: "Plate Lumber (2x4x16)",
		Value: plates,
		Unit:  "pieces",
		Cost:  round2(plates * r.Price("2x4x16 Plate", platePrice, "lumber")),
	})

	if headerFeet > 0 {
		results = append(results, models.CalculationResult{
			Label: "Header Stock (doubled 2x8)",
			Value: round2(headerFeet),
			Unit:  "linear feet",
			Cost:  round2(headerFeet * r.Price("2x8 Header", headerPricePerFt, "lumber")),
		})
	}

	nailBoxes := ceilUnits(studs / studsPerNailBox)
	results = append(results, models.CalculationResult{
		Label: "Framing Nails",
		Value: nailBoxes,
		Unit:  "boxes",
		Cost:  round2(nailBoxes * r.Price("Framing Nails", framingNailPrice, "fasteners")),
	})

	return appendTotal(results, "Estimated Total"), nil
}
