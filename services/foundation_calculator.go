package services

import "backend/models"

// ---------- Foundation defaults ----------

// Per-yard concrete price indexed by mix strength. Every concrete group in
// the foundation calculator prices through this one table.
var foundationConcretePrices = map[string]float64{
	"2500": 165.00,
	"3000": 172.00,
	"3500": 181.00,
	"4000": 192.00,
}

const (
	backfillPricePerYard   = 18.50
	gravelPricePerYard     = 42.00
	foundationRebarSpacing = 18.0 // slab grid, inches on center

	vaporBarrierRollPrice = 89.00
	vaporBarrierRollSqFt  = 1000.0
	waterproofingPrice    = 52.50 // per pail
	waterproofingCoverage = 100.0 // square feet per pail
	drainPipePrice        = 14.25 // 4 inch perforated, 10 ft stick
	drainPipeStickFeet    = 10.0

	icfFormPrice    = 24.50
	icfFormFaceSqFt = 5.33 // square feet of wall per form
	icfCoreInches   = 6.0
)

func validateFoundation(input models.FoundationInput) *ValidationError {
	required := []struct {
		name  string
		value *float64
	}{
		{"length", input.Length},
		{"width", input.Width},
		{"footing_width", input.FootingWidth},
		{"footing_depth", input.FootingDepth},
		{"wall_height", input.WallHeight},
		{"wall_thickness", input.WallThickness},
		{"slab_thickness", input.SlabThickness},
		{"gravel_depth", input.GravelDepth},
	}
	for _, f := range required {
		if !isSet(f.value) {
			return missingField(f.name)
		}
	}
	return nil
}

// CalculateFoundation computes the ten material groups of a perimeter
// foundation from one shared perimeter and footprint. Each group accumulates
// independently into the running total.
func CalculateFoundation(input models.FoundationInput, r *Resolver) ([]models.CalculationResult, error) {
	if err := validateFoundation(input); err != nil {
		return nil, err
	}

	perimeter := 2 * (*input.Length + *input.Width)
	area := *input.Length * *input.Width
	wallHeight := *input.WallHeight

	strength := input.ConcreteStrength
	concretePrice, ok := foundationConcretePrices[strength]
	if !ok {
		strength = "3000"
		concretePrice = foundationConcretePrices[strength]
	}
	concretePrice = r.Price("Concrete "+strength+" PSI", concretePrice, "concrete")

	var results []models.CalculationResult

	// Footing concrete.
	footingYards := perimeter * (*input.FootingWidth / 12) * (*input.FootingDepth / 12) / 27
	results = append(results, models.CalculationResult{
		Label: "Footing Concrete",
		Value: round2(footingYards),
		Unit:  "cubic yards",
		Cost:  round2(footingYards * concretePrice),
	})

	// Stem or basement wall concrete; ICF walls get their own core pour below.
	if !input.UseICF {
		wallYards := perimeter * wallHeight * (*input.WallThickness / 12) / 27
		label := "Stem Wall Concrete"
		if input.FoundationType == "basement" {
			label = "Basement Wall Concrete"
		}
		results = append(results, models.CalculationResult{
			Label: label,
			Value: round2(wallYards),
			Unit:  "cubic yards",
			Cost:  round2(wallYards * concretePrice),
		})
	}

	// Backfill along the outside of the wall; a basement keeps the
	// excavation open, so no backfill group there.
	if input.FoundationType != "basement" {
		backfillYards := perimeter * (wallHeight / 2) * 2 / 27
		results = append(results, models.CalculationResult{
			Label: "Backfill",
			Value: round2(backfillYards),
			Unit:  "cubic yards",
			Cost:  round2(backfillYards * r.Price("Backfill", backfillPricePerYard, "sitework")),
		})
	}

	// Gravel base under the slab.
	gravelYards := area * (*input.GravelDepth / 12) / 27
	results = append(results, models.CalculationResult{
		Label: "Gravel Base",
		Value: round2(gravelYards),
		Unit:  "cubic yards",
		Cost:  round2(gravelYards * r.Price("Gravel", gravelPricePerYard, "sitework")),
	})

	// Slab concrete.
	slabYards := area * (*input.SlabThickness / 12) / 27
	results = append(results, models.CalculationResult{
		Label: "Slab Concrete",
		Value: round2(slabYards),
		Unit:  "cubic yards",
		Cost:  round2(slabYards * concretePrice),
	})

	// Steel: footing, wall and slab groups are sized independently.
	rebarPrice := r.Price("Rebar #4", rebarStickPrice, "reinforcement")
	stickFeet := r.UnitValue("Rebar #4", rebarStickLength, "reinforcement")

	footingSteelFeet := 2 * perimeter // two continuous runs in the footing
	footingSticks := ceilUnits(footingSteelFeet / stickFeet)
	results = append(results, models.CalculationResult{
		Label: "Footing Rebar",
		Value: footingSticks,
		Unit:  "pieces",
		Cost:  round2(footingSticks * rebarPrice),
	})

	// Horizontal rows every 16 inches plus verticals every 24 inches.
	wallRows := ceilUnits(wallHeight*12/16) + 1
	wallVerticals := ceilUnits(perimeter*12/24) + 1
	wallSteelFeet := wallRows*perimeter + wallVerticals*wallHeight
	wallSticks := ceilUnits(wallSteelFeet / stickFeet)
	results = append(results, models.CalculationResult{
		Label: "Wall Rebar",
		Value: wallSticks,
		Unit:  "pieces",
		Cost:  round2(wallSticks * rebarPrice),
	})

	slabAcross := ceilUnits(*input.Width*12/foundationRebarSpacing) + 1
	slabAlong := ceilUnits(*input.Length*12/foundationRebarSpacing) + 1
	slabSteelFeet := slabAcross**input.Length + slabAlong**input.Width
	slabSticks := ceilUnits(slabSteelFeet / stickFeet)
	results = append(results, models.CalculationResult{
		Label: "Slab Rebar",
		Value: slabSticks,
		Unit:  "pieces",
		Cost:  round2(slabSticks * rebarPrice),
	})

	// Vapor barrier under the slab, 10 percent lap allowance.
	rollSqFt := r.UnitValue("Vapor Barrier", vaporBarrierRollSqFt, "membranes")
	vaporRolls := ceilUnits(area * 1.1 / rollSqFt)
	results = append(results, models.CalculationResult{
		Label: "Vapor Barrier",
		Value: vaporRolls,
		Unit:  "rolls",
		Cost:  round2(vaporRolls * r.Price("Vapor Barrier", vaporBarrierRollPrice, "membranes")),
	})

	// Exterior wall waterproofing.
	coverage := r.UnitValue("Foundation Waterproofing", waterproofingCoverage, "membranes")
	pails := ceilUnits(perimeter * wallHeight / coverage)
	results = append(results, models.CalculationResult{
		Label: "Waterproofing",
		Value: pails,
		Unit:  "pails",
		Cost:  round2(pails * r.Price("Foundation Waterproofing", waterproofingPrice, "membranes")),
	})

	// Perimeter drain.
	drainSticks := ceilUnits(perimeter / drainPipeStickFeet)
	results = append(results, models.CalculationResult{
		Label: "Drain Pipe (4 in perforated)",
		Value: drainSticks,
		Unit:  "pieces",
		Cost:  round2(drainSticks * r.Price("Drain Pipe", drainPipePrice, "drainage")),
	})

	// ICF walls: forms plus the concrete core they hold.
	if input.UseICF {
		wallArea := perimeter * wallHeight
		formFace := r.UnitValue("ICF Form", icfFormFaceSqFt, "icf")
		forms := ceilUnits(wallArea / formFace)
		results = append(results, models.CalculationResult{
			Label: "ICF Forms",
			Value: forms,
			Unit:  "forms",
			Cost:  round2(forms * r.Price("ICF Form", icfFormPrice, "icf")),
		})

		coreYards := perimeter * wallHeight * (icfCoreInches / 12) / 27
		results = append(results, models.CalculationResult{
			Label: "ICF Core Concrete",
			Value: round2(coreYards),
			Unit:  "cubic yards",
			Cost:  round2(coreYards * concretePrice),
		})
	}

	return appendTotal(results, "Estimated Total"), nil
}
