package services

import "backend/models"

// ---------- Plumbing defaults ----------

// Rough-in cost per fixture type.
var fixtureRoughInPrices = map[string]struct {
	label string
	price float64
}{
	"sink":         {"Sink Rough-In", 145.00},
	"toilet":       {"Toilet Rough-In", 125.00},
	"shower":       {"Shower Rough-In", 210.00},
	"tub":          {"Tub Rough-In", 235.00},
	"washer":       {"Washer Box Rough-In", 110.00},
	"water_heater": {"Water Heater Hookup", 185.00},
}

// Per-foot pipe prices keyed by material then diameter.
var pipePricesPerFoot = map[string]map[string]float64{
	"pex":    {"1/2": 0.68, "3/4": 1.05, "1": 1.89},
	"copper": {"1/2": 3.45, "3/4": 5.10, "1": 7.25},
	"pvc":    {"1/2": 0.55, "3/4": 0.82, "1": 1.24},
}

// Per-fitting prices by material.
var fittingPrices = map[string]float64{
	"pex":    2.15,
	"copper": 4.85,
	"pvc":    1.35,
}

const (
	pipeOverageMultiplier = 1.2 // bends and routing allowance
	fittingsPerTenFeet    = 10.0
	hangerSpacingFeet     = 4.0
	pipeHangerPrice       = 0.95

	sewerPipePrice      = 22.50 // 4 inch PVC, 10 ft stick
	sewerPipeStickFeet  = 10.0
	sewerOverage        = 1.1
	sewerCouplingPrice  = 8.75
)

func validatePlumbing(input models.PlumbingInput) *ValidationError {
	hasRun := false
	for _, run := range input.PipingRuns {
		if isPositive(run.Length) {
			hasRun = true
			break
		}
	}
	if !hasRun {
		return &ValidationError{Field: "piping_runs", Reason: "must contain at least one run with a positive length"}
	}
	if input.SewerConnection && !isPositive(input.SewerLength) {
		return missingField("sewer_length")
	}
	return nil
}

// CalculatePlumbing sums per-fixture rough-in costs, prices each supply run
// with a 1.2x overage for bends, and adds fittings, hangers and the optional
// sewer connection.
func CalculatePlumbing(input models.PlumbingInput, r *Resolver) ([]models.CalculationResult, error) {
	if err := validatePlumbing(input); err != nil {
		return nil, err
	}

	var results []models.CalculationResult

	for _, f := range input.Fixtures {
		d, ok := fixtureRoughInPrices[f.Type]
		if !ok {
			continue
		}
		count := f.Count
		if count < 1 {
			count = 1
		}
		price := r.Price(d.label, d.price, "fixtures")
		results = append(results, models.CalculationResult{
			Label: d.label,
			Value: float64(count),
			Unit:  "each",
			Cost:  round2(float64(count) * price),
		})
	}

	var totalHangerFeet float64
	for _, run := range input.PipingRuns {
		if !isPositive(run.Length) {
			continue
		}
		prices, ok := pipePricesPerFoot[run.Material]
		if !ok {
			prices = pipePricesPerFoot["pex"]
		}
		perFoot, ok := prices[run.Diameter]
		if !ok {
			perFoot = prices["1/2"]
		}

		adjusted := *run.Length * pipeOverageMultiplier
		name := run.Material + " " + run.Diameter + " in pipe"
		price := r.Price(name, perFoot, "pipe")
		results = append(results, models.CalculationResult{
			Label: pipeRunLabel(run),
			Value: round2(adjusted),
			Unit:  "linear feet",
			Cost:  round2(adjusted * price),
		})

		totalHangerFeet += adjusted

		fittingPrice := r.Price(run.Material+" fitting", fittingPrices[run.Material], "fittings")
		runFittings := ceilUnits(adjusted/fittingsPerTenFeet) + 2
		results = append(results, models.CalculationResult{
			Label: pipeRunLabel(run) + " fittings",
			Value: runFittings,
			Unit:  "pieces",
			Cost:  round2(runFittings * fittingPrice),
		})
	}

	hangers := ceilUnits(totalHangerFeet / hangerSpacingFeet)
	results = append(results, models.CalculationResult{
		Label: "Pipe Hangers",
		Value: hangers,
		Unit:  "pieces",
		Cost:  round2(hangers * r.Price("Pipe Hanger", pipeHangerPrice, "fittings")),
	})

	if input.SewerConnection {
		adjusted := *input.SewerLength * sewerOverage
		stickFeet := r.UnitValue("Sewer Pipe", sewerPipeStickFeet, "sewer")
		sticks := ceilUnits(adjusted / stickFeet)
		results = append(results, models.CalculationResult{
			Label: "Sewer Pipe (4 in PVC)",
			Value: sticks,
			Unit:  "pieces",
			Cost:  round2(sticks * r.Price("Sewer Pipe", sewerPipePrice, "sewer")),
		})
		couplings := sticks // one coupling per stick
		results = append(results, models.CalculationResult{
			Label: "Sewer Couplings",
			Value: couplings,
			Unit:  "pieces",
			Cost:  round2(couplings * r.Price("Sewer Coupling", sewerCouplingPrice, "sewer")),
		})
	}

	return appendTotal(results, "Estimated Total"), nil
}

func pipeRunLabel(run models.PipingRun) string {
	material := run.Material
	switch material {
	case "pex":
		material = "PEX"
	case "copper":
		material = "Copper"
	case "pvc":
		material = "PVC"
	}
	return material + " " + run.Diameter + " in Supply"
}
