package services

import (
	"testing"

	"backend/models"
)

func TestCalculatePaint_TwoCoatRoom(t *testing.T) {
	results, err := CalculatePaint(models.PaintInput{
		Walls: []models.Wall{
			{ID: "w1", Length: fp(20), Height: fp(8)},
			{ID: "w2", Length: fp(20), Height: fp(8)},
		},
		Doors:           1,
		Windows:         2,
		PaintQuality:    "standard",
		IncludePrimer:   true,
		IncludeSupplies: true,
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}

	area := findLine(t, results, "Paintable Area")
	nearlyEqual(t, "paintable", area.Value, 269) // 320 - 21 door - 30 windows

	paint := findLine(t, results, "Interior Paint")
	nearlyEqual(t, "gallons", paint.Value, 2) // 538 coat-sq-ft at 350 per gallon
	nearlyEqual(t, "paint cost", paint.Cost, 77.96)

	primer := findLine(t, results, "Primer")
	nearlyEqual(t, "primer gallons", primer.Value, 1) // single coat of primer
	nearlyEqual(t, "primer cost", primer.Cost, 26.98)

	tape := findLine(t, results, "Painter's Tape")
	nearlyEqual(t, "tape rolls", tape.Value, 1) // 40 wall feet
	nearlyEqual(t, "kit cost", findLine(t, results, "Supplies Kit").Cost, 34.50)

	nearlyEqual(t, "total", checkTotal(t, results), 147.42)
}

func TestCalculatePaint_QualityTiers(t *testing.T) {
	input := models.PaintInput{
		Walls:        []models.Wall{{ID: "w1", Length: fp(20), Height: fp(8)}},
		Coats:        1,
		PaintQuality: "premium",
	}
	results, err := CalculatePaint(input, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}
	paint := findLine(t, results, "Interior Paint")
	nearlyEqual(t, "premium gallon", paint.Cost, 56.98)

	// Unknown quality falls back to the standard tier.
	input.PaintQuality = "contractor"
	results, err = CalculatePaint(input, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}
	nearlyEqual(t, "fallback gallon", findLine(t, results, "Interior Paint").Cost, 38.98)
}

func TestCalculatePaint_CoverageOverride(t *testing.T) {
	r := NewCustomResolver([]models.CustomMaterial{
		{Name: "Interior Paint", Category: "paint", Price: 41.50, UnitSpec: "400 sq ft"},
	})
	results, err := CalculatePaint(models.PaintInput{
		Walls: []models.Wall{
			{ID: "w1", Length: fp(25), Height: fp(8)},
			{ID: "w2", Length: fp(25), Height: fp(8)},
		},
	}, r)
	if err != nil {
		t.Fatal(err)
	}
	paint := findLine(t, results, "Interior Paint")
	nearlyEqual(t, "gallons at 400 coverage", paint.Value, 2) // 800 coat-sq-ft
	nearlyEqual(t, "overridden cost", paint.Cost, 83.00)
}

func TestCalculatePaint_Validation(t *testing.T) {
	_, err := CalculatePaint(models.PaintInput{}, NewDefaultResolver())
	wantValidationError(t, err, "walls")
}
