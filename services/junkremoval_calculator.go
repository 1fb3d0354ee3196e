package services

import "backend/models"

// ---------- Junk removal defaults ----------

const (
	junkVolumeRate   = 1.50 // per cubic foot
	junkWeightRate   = 0.50 // per pound
	junkMileageRate  = 2.50 // per mile
	junkFloorStep    = 0.15 // surcharge rate per floor above ground
)

var junkAccessMultipliers = map[string]float64{
	"easy":      1.0,
	"moderate":  1.25,
	"difficult": 1.5,
}

func validateJunkRemoval(input models.JunkRemovalInput) *ValidationError {
	for _, item := range input.Items {
		if isPositive(item.Volume) || isPositive(item.Weight) {
			return nil
		}
	}
	return &ValidationError{Field: "items", Reason: "must contain at least one item with volume or weight"}
}

// CalculateJunkRemoval prices a hauling job. The base charge is a cost
// floor, the larger of the volume and weight charges, never their sum. The
// access and floor multipliers apply to the whole accumulated total, in that
// order; they are emitted as explicit surcharge lines so the final total
// still equals the sum of the lines above it.
func CalculateJunkRemoval(input models.JunkRemovalInput, r *Resolver) ([]models.CalculationResult, error) {
	if err := validateJunkRemoval(input); err != nil {
		return nil, err
	}

	var totalVolume, totalWeight float64
	for _, item := range input.Items {
		count := float64(item.Count)
		if count < 1 {
			count = 1
		}
		if isPositive(item.Volume) {
			totalVolume += *item.Volume * count
		}
		if isPositive(item.Weight) {
			totalWeight += *item.Weight * count
		}
	}

	results := []models.CalculationResult{
		{Label: "Total Volume", Value: round2(totalVolume), Unit: "cubic feet"},
		{Label: "Total Weight", Value: round2(totalWeight), Unit: "pounds"},
	}

	volumeRate := r.Price("Volume Rate", junkVolumeRate, "hauling")
	weightRate := r.Price("Weight Rate", junkWeightRate, "hauling")

	volumeCharge := totalVolume * volumeRate
	weightCharge := totalWeight * weightRate
	base := volumeCharge
	baseLabel := "Hauling Charge (by volume)"
	if weightCharge > volumeCharge {
		base = weightCharge
		baseLabel = "Hauling Charge (by weight)"
	}
	results = append(results, models.CalculationResult{
		Label: baseLabel,
		Value: 1,
		Unit:  "load",
		Cost:  round2(base),
	})

	running := round2(base)

	if isPositive(input.DistanceMiles) {
		mileageRate := r.Price("Mileage", junkMileageRate, "hauling")
		mileage := round2(*input.DistanceMiles * mileageRate)
		results = append(results, models.CalculationResult{
			Label: "Mileage",
			Value: round2(*input.DistanceMiles),
			Unit:  "miles",
			Cost:  mileage,
		})
		running += mileage
	}

	// Access surcharge on everything accumulated so far.
	accessMult, ok := junkAccessMultipliers[input.Access]
	if !ok {
		accessMult = 1.0
	}
	if accessMult > 1 {
		surcharge := round2(running * (accessMult - 1))
		results = append(results, models.CalculationResult{
			Label: "Access Surcharge (" + input.Access + ")",
			Value: accessMult,
			Unit:  "multiplier",
			Cost:  surcharge,
		})
		running += surcharge
	}

	// Floor surcharge on the access-adjusted total.
	if input.Floors > 1 {
		floorMult := 1 + junkFloorStep*float64(input.Floors-1)
		surcharge := round2(running * (floorMult - 1))
		results = append(results, models.CalculationResult{
			Label: "Stair Carry Surcharge",
			Value: floorMult,
			Unit:  "multiplier",
			Cost:  surcharge,
		})
	}

	return appendTotal(results, "Estimated Total"), nil
}
