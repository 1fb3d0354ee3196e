package services

import (
	"testing"

	"backend/models"
)

func TestCalculatePlumbing_BathGroup(t *testing.T) {
	results, err := CalculatePlumbing(models.PlumbingInput{
		Fixtures: []models.Fixture{
			{ID: "f1", Type: "sink", Count: 1},
			{ID: "f2", Type: "toilet", Count: 1},
		},
		PipingRuns: []models.PipingRun{
			{ID: "r1", Material: "pex", Diameter: "1/2", Length: fp(60)},
		},
		SewerConnection: true,
		SewerLength:     fp(40),
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}

	nearlyEqual(t, "sink", findLine(t, results, "Sink Rough-In").Cost, 145.00)
	nearlyEqual(t, "toilet", findLine(t, results, "Toilet Rough-In").Cost, 125.00)

	// 60 ft with the 1.2x routing overage.
	supply := findLine(t, results, "PEX 1/2 in Supply")
	nearlyEqual(t, "adjusted feet", supply.Value, 72)
	nearlyEqual(t, "pipe cost", supply.Cost, 48.96)

	fittings := findLine(t, results, "PEX 1/2 in Supply fittings")
	nearlyEqual(t, "fittings", fittings.Value, 10) // one per 10 ft plus two ends
	nearlyEqual(t, "fitting cost", fittings.Cost, 21.50)

	hangers := findLine(t, results, "Pipe Hangers")
	nearlyEqual(t, "hangers", hangers.Value, 18) // every 4 ft of adjusted run
	nearlyEqual(t, "hanger cost", hangers.Cost, 17.10)

	sewer := findLine(t, results, "Sewer Pipe (4 in PVC)")
	nearlyEqual(t, "sewer sticks", sewer.Value, 5) // 44 ft with overage, 10 ft sticks
	nearlyEqual(t, "sewer cost", sewer.Cost, 112.50)

	couplings := findLine(t, results, "Sewer Couplings")
	nearlyEqual(t, "couplings", couplings.Value, 5)
	nearlyEqual(t, "coupling cost", couplings.Cost, 43.75)

	nearlyEqual(t, "total", checkTotal(t, results), 513.81)
}

func TestCalculatePlumbing_CopperRun(t *testing.T) {
	results, err := CalculatePlumbing(models.PlumbingInput{
		PipingRuns: []models.PipingRun{
			{ID: "r1", Material: "copper", Diameter: "3/4", Length: fp(30)},
		},
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}
	supply := findLine(t, results, "Copper 3/4 in Supply")
	nearlyEqual(t, "pipe cost", supply.Cost, 183.60) // 36 adjusted ft at 5.10

	fittings := findLine(t, results, "Copper 3/4 in Supply fittings")
	nearlyEqual(t, "fittings", fittings.Value, 6)
	nearlyEqual(t, "fitting cost", fittings.Cost, 29.10)
	checkTotal(t, results)
}

func TestCalculatePlumbing_UnknownMaterialFallsBackToPex(t *testing.T) {
	results, err := CalculatePlumbing(models.PlumbingInput{
		PipingRuns: []models.PipingRun{
			{ID: "r1", Material: "galvanized", Diameter: "2", Length: fp(10)},
		},
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}
	// Prices as PEX 1/2 in: 12 adjusted ft at 0.68.
	supply := findLine(t, results, "galvanized 2 in Supply")
	nearlyEqual(t, "fallback cost", supply.Cost, 8.16)
}

func TestCalculatePlumbing_FixtureOverride(t *testing.T) {
	r := NewCustomResolver([]models.CustomMaterial{
		{Name: "Sink Rough-In", Category: "fixtures", Price: 160},
	})
	results, err := CalculatePlumbing(models.PlumbingInput{
		Fixtures: []models.Fixture{{ID: "f1", Type: "sink", Count: 2}},
		PipingRuns: []models.PipingRun{
			{ID: "r1", Material: "pex", Diameter: "1/2", Length: fp(10)},
		},
	}, r)
	if err != nil {
		t.Fatal(err)
	}
	nearlyEqual(t, "overridden rough-in", findLine(t, results, "Sink Rough-In").Cost, 320.00)
}

func TestCalculatePlumbing_Validation(t *testing.T) {
	_, err := CalculatePlumbing(models.PlumbingInput{
		Fixtures: []models.Fixture{{ID: "f1", Type: "sink", Count: 1}},
	}, NewDefaultResolver())
	wantValidationError(t, err, "piping_runs")

	_, err = CalculatePlumbing(models.PlumbingInput{
		PipingRuns: []models.PipingRun{
			{ID: "r1", Material: "pex", Diameter: "1/2", Length: fp(10)},
		},
		SewerConnection: true,
	}, NewDefaultResolver())
	wantValidationError(t, err, "sewer_length")
}
