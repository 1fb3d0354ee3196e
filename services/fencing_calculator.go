package services

import "backend/models"

// ---------- Fencing defaults ----------

const (
	fencePostPrice    = 24.98 // pressure-treated 4x4
	fencePostSpacing  = 8.0   // feet
	fencePostDepth    = 2.0   // feet below grade
	postHoleCubicFeet = 0.33  // per foot of depth, 12 inch diameter hole
	postBagYield      = 0.45  // cubic feet set per 60 lb bag

	picketPrice       = 3.48 // 5.5 inch dog-ear picket
	picketFaceWidth   = 5.5  // inches, privacy (no gap)
	picketSpacedWidth = 7.0  // inches on center, spaced picket style
	railPrice         = 8.97 // 2x4x8 rail
	railStickLength   = 8.0  // feet
	ranchRailPrice    = 16.45 // 1x6x16 board
	ranchRailLength   = 16.0

	chainLinkFabricRollPrice = 94.00 // 50 ft roll
	chainLinkFabricRollFeet  = 50.0
	topRailPrice             = 18.98 // 10.5 ft stick
	topRailStickFeet         = 10.5
	chainLinkHardwarePerPost = 4.35 // bands, caps and ties per post

	fencePanelPrice = 62.98 // 8 ft preassembled panel
	fencePanelWidth = 8.0

	gateHardwareSingle = 89.99
	gateHardwareDouble = 129.99
)

func validateFencing(input models.FencingInput) *ValidationError {
	if input.Mode == "custom" {
		if !isSet(input.CustomLinearFeet) {
			return missingField("custom_linear_feet")
		}
		if !isSet(input.CustomPricePerFoot) {
			return missingField("custom_price_per_foot")
		}
		return nil
	}
	if !isSet(input.Length) {
		return missingField("length")
	}
	if !isSet(input.Height) {
		return missingField("height")
	}
	return nil
}

// CalculateFencing prices a fence run: posts and their concrete, then the
// infill materials branched by fence type, then gate hardware. Custom mode
// skips the geometry entirely and multiplies a manual linear footage by a
// manual rate.
func CalculateFencing(input models.FencingInput, r *Resolver) ([]models.CalculationResult, error) {
	if err := validateFencing(input); err != nil {
		return nil, err
	}

	if input.Mode == "custom" {
		results := []models.CalculationResult{{
			Label: "Fence Installation",
			Value: round2(*input.CustomLinearFeet),
			Unit:  "linear feet",
			Cost:  round2(*input.CustomLinearFeet * *input.CustomPricePerFoot),
		}}
		return appendTotal(results, "Estimated Total"), nil
	}

	length := *input.Length
	spacing := input.PostSpacing
	if spacing <= 0 {
		spacing = fencePostSpacing
	}
	depth := input.PostDepth
	if depth <= 0 {
		depth = fencePostDepth
	}

	sections := ceilUnits(length / spacing)
	posts := sections + 1 + float64(input.Corners)

	results := []models.CalculationResult{{
		Label: "Fence Posts",
		Value: posts,
		Unit:  "pieces",
		Cost:  round2(posts * r.Price("Wood Post", fencePostPrice, "posts")),
	}}

	// Post setting concrete assumes a 12 inch diameter hole.
	concreteCubicFeet := posts * depth * postHoleCubicFeet
	bagYield := r.UnitValue("60 lb Concrete Bag", postBagYield, "concrete")
	bags := ceilUnits(concreteCubicFeet / bagYield)
	results = append(results, models.CalculationResult{
		Label: "Post Concrete (60 lb)",
		Value: bags,
		Unit:  "bags",
		Cost:  round2(bags * r.Price("60 lb Concrete Bag", concreteBag60Price, "concrete")),
	})

	switch input.FenceType {
	case "picket":
		pickets := ceilUnits(length * 12 / picketSpacedWidth)
		results = append(results, models.CalculationResult{
			Label: "Pickets",
			Value: pickets,
			Unit:  "pieces",
			Cost:  round2(pickets * r.Price("Picket", picketPrice, "boards")),
		})
		rails := ceilUnits(length * 2 / railStickLength)
		results = append(results, models.CalculationResult{
			Label: "Rails (2x4x8)",
			Value: rails,
			Unit:  "pieces",
			Cost:  round2(rails * r.Price("Fence Rail", railPrice, "boards")),
		})
	case "chain_link":
		rollFeet := r.UnitValue("Chain Link Fabric", chainLinkFabricRollFeet, "fabric")
		rolls := ceilUnits(length / rollFeet)
		results = append(results, models.CalculationResult{
			Label: "Chain Link Fabric",
			Value: rolls,
			Unit:  "rolls",
			Cost:  round2(rolls * r.Price("Chain Link Fabric", chainLinkFabricRollPrice, "fabric")),
		})
		topRails := ceilUnits(length / topRailStickFeet)
		results = append(results, models.CalculationResult{
			Label: "Top Rail",
			Value: topRails,
			Unit:  "pieces",
			Cost:  round2(topRails * r.Price("Top Rail", topRailPrice, "rails")),
		})
		results = append(results, models.CalculationResult{
			Label: "Post Hardware Sets",
			Value: posts,
			Unit:  "sets",
			Cost:  round2(posts * r.Price("Post Hardware Set", chainLinkHardwarePerPost, "hardware")),
		})
	case "ranch":
		boards := ceilUnits(length*3/ranchRailLength)
		results = append(results, models.CalculationResult{
			Label: "Ranch Rails (1x6x16)",
			Value: boards,
			Unit:  "pieces",
			Cost:  round2(boards * r.Price("Ranch Rail", ranchRailPrice, "boards")),
		})
	case "panel":
		panelWidth := r.UnitValue("Fence Panel", fencePanelWidth, "panels")
		panels := ceilUnits(length / panelWidth)
		results = append(results, models.CalculationResult{
			Label: "Fence Panels",
			Value: panels,
			Unit:  "panels",
			Cost:  round2(panels * r.Price("Fence Panel", fencePanelPrice, "panels")),
		})
	default: // privacy
		pickets := ceilUnits(length * 12 / picketFaceWidth)
		results = append(results, models.CalculationResult{
			Label: "Privacy Pickets",
			Value: pickets,
			Unit:  "pieces",
			Cost:  round2(pickets * r.Price("Picket", picketPrice, "boards")),
		})
		rails := ceilUnits(length * 3 / railStickLength)
		results = append(results, models.CalculationResult{
			Label: "Rails (2x4x8)",
			Value: rails,
			Unit:  "pieces",
			Cost:  round2(rails * r.Price("Fence Rail", railPrice, "boards")),
		})
	}

	var singles, doubles float64
	for _, g := range input.Gates {
		if g.Type == "double" {
			doubles++
		} else {
			singles++
		}
	}
	if singles > 0 {
		results = append(results, models.CalculationResult{
			Label: "Gate Hardware (single)",
			Value: singles,
			Unit:  "kits",
			Cost:  round2(singles * r.Price("Single Gate Kit", gateHardwareSingle, "gates")),
		})
	}
	if doubles > 0 {
		results = append(results, models.CalculationResult{
			Label: "Gate Hardware (double)",
			Value: doubles,
			Unit:  "kits",
			Cost:  round2(doubles * r.Price("Double Gate Kit", gateHardwareDouble, "gates")),
		})
	}

	return appendTotal(results, "Estimated Total"), nil
}
