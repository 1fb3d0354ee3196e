package services

import (
	"testing"

	"backend/models"
)

func stemWallInput() models.FoundationInput {
	return models.FoundationInput{
		FoundationType:   "stem_wall",
		ConcreteStrength: "3000",
		Length:           fp(40),
		Width:            fp(30),
		FootingWidth:     fp(16),
		FootingDepth:     fp(8),
		WallHeight:       fp(4),
		WallThickness:    fp(8),
		SlabThickness:    fp(4),
		GravelDepth:      fp(4),
	}
}

func TestCalculateFoundation_StemWall(t *testing.T) {
	results, err := CalculateFoundation(stemWallInput(), NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}

	footing := findLine(t, results, "Footing Concrete")
	nearlyEqual(t, "footing yards", footing.Value, 4.61)
	nearlyEqual(t, "footing cost", footing.Cost, 792.76)

	wall := findLine(t, results, "Stem Wall Concrete")
	nearlyEqual(t, "wall yards", wall.Value, 13.83)
	nearlyEqual(t, "wall cost", wall.Cost, 2378.27)

	backfill := findLine(t, results, "Backfill")
	nearlyEqual(t, "backfill yards", backfill.Value, 20.74)
	nearlyEqual(t, "backfill cost", backfill.Cost, 383.70)

	gravel := findLine(t, results, "Gravel Base")
	nearlyEqual(t, "gravel yards", gravel.Value, 14.81)
	nearlyEqual(t, "gravel cost", gravel.Cost, 622.22)

	slab := findLine(t, results, "Slab Concrete")
	nearlyEqual(t, "slab cost", slab.Cost, 2548.15)

	// Two continuous footing runs, 280 ft of steel in 20 ft sticks.
	nearlyEqual(t, "footing sticks", findLine(t, results, "Footing Rebar").Value, 14)
	nearlyEqual(t, "wall sticks", findLine(t, results, "Wall Rebar").Value, 43)
	nearlyEqual(t, "slab sticks", findLine(t, results, "Slab Rebar").Value, 84)

	nearlyEqual(t, "vapor rolls", findLine(t, results, "Vapor Barrier").Value, 2)
	nearlyEqual(t, "waterproofing pails", findLine(t, results, "Waterproofing").Value, 6)
	nearlyEqual(t, "drain sticks", findLine(t, results, "Drain Pipe (4 in perforated)").Value, 14)

	nearlyEqual(t, "total", checkTotal(t, results), 8685.19)
}

func TestCalculateFoundation_BasementSkipsBackfill(t *testing.T) {
	input := stemWallInput()
	input.FoundationType = "basement"
	input.WallHeight = fp(8)

	results, err := CalculateFoundation(input, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}
	if hasLine(results, "Backfill") {
		t.Fatal("basement excavation stays open; no backfill group")
	}
	if hasLine(results, "Stem Wall Concrete") {
		t.Fatal("basement walls carry their own label")
	}
	wall := findLine(t, results, "Basement Wall Concrete")
	nearlyEqual(t, "basement wall yards", wall.Value, 27.65) // 140 x 8 x 8in / 27
	checkTotal(t, results)
}

func TestCalculateFoundation_ICFWalls(t *testing.T) {
	input := stemWallInput()
	input.UseICF = true

	results, err := CalculateFoundation(input, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}
	if hasLine(results, "Stem Wall Concrete") {
		t.Fatal("ICF walls replace the poured stem wall")
	}

	forms := findLine(t, results, "ICF Forms")
	nearlyEqual(t, "forms", forms.Value, 106) // 560 sq ft of wall / 5.33 per form
	nearlyEqual(t, "form cost", forms.Cost, 2597.00)

	core := findLine(t, results, "ICF Core Concrete")
	nearlyEqual(t, "core yards", core.Value, 10.37) // 6 in core
	nearlyEqual(t, "core cost", core.Cost, 1783.70)
	checkTotal(t, results)
}

func TestCalculateFoundation_UnknownStrengthFallsBack(t *testing.T) {
	input := stemWallInput()
	input.ConcreteStrength = "9000"

	results, err := CalculateFoundation(input, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}
	// Prices exactly as the 3000 PSI table row.
	nearlyEqual(t, "fallback footing cost", findLine(t, results, "Footing Concrete").Cost, 792.76)
}

func TestCalculateFoundation_StrengthOverride(t *testing.T) {
	r := NewCustomResolver([]models.CustomMaterial{
		{Name: "Concrete 3000 PSI", Category: "concrete", Price: 180},
	})
	results, err := CalculateFoundation(stemWallInput(), r)
	if err != nil {
		t.Fatal(err)
	}
	footing := findLine(t, results, "Footing Concrete")
	nearlyEqual(t, "overridden footing cost", footing.Cost, 829.63) // 4.6091 yd at 180
}

func TestCalculateFoundation_Validation(t *testing.T) {
	input := stemWallInput()
	input.FootingDepth = nil
	_, err := CalculateFoundation(input, NewDefaultResolver())
	wantValidationError(t, err, "footing_depth")
}
