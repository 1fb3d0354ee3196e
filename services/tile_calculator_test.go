package services

import (
	"testing"

	"backend/models"
)

func TestCalculateTile_StandardFloor(t *testing.T) {
	results, err := CalculateTile(models.TileInput{
		TileSize: "12x12",
		Length:   fp(10),
		Width:    fp(8),
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}

	area := findLine(t, results, "Tile Area")
	nearlyEqual(t, "area", area.Value, 80)

	tile := findLine(t, results, "Tile")
	nearlyEqual(t, "boxes", tile.Value, 9) // 88 sq ft with waste / 10 per box
	nearlyEqual(t, "tile cost", tile.Cost, 292.50)

	thinset := findLine(t, results, "Thinset Mortar (50 lb)")
	nearlyEqual(t, "thinset bags", thinset.Value, 1)
	nearlyEqual(t, "thinset cost", thinset.Cost, 18.97)

	grout := findLine(t, results, "Grout (10 lb)")
	nearlyEqual(t, "grout boxes", grout.Value, 1)
	nearlyEqual(t, "grout cost", grout.Cost, 16.48)

	nearlyEqual(t, "total", checkTotal(t, results), 327.95)
}

func TestCalculateTile_HerringboneAndLargeFormat(t *testing.T) {
	results, err := CalculateTile(models.TileInput{
		TileSize: "12x12",
		Length:   fp(10),
		Width:    fp(8),
		Pattern:  "herringbone",
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}
	// 88 x 1.20 pattern factor = 105.6 sq ft -> 11 boxes.
	nearlyEqual(t, "herringbone boxes", findLine(t, results, "Tile").Value, 11)

	results, err = CalculateTile(models.TileInput{
		TileSize: "24x24",
		Length:   fp(10),
		Width:    fp(8),
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}
	tile := findLine(t, results, "Tile")
	nearlyEqual(t, "24x24 boxes", tile.Value, 6)
	nearlyEqual(t, "24x24 cost", tile.Cost, 403.50)
}

func TestCalculateTile_SubstrateLayers(t *testing.T) {
	results, err := CalculateTile(models.TileInput{
		TileSize:           "subway",
		Length:             fp(10),
		Width:              fp(8),
		IncludeBackerBoard: true,
		IncludeMembrane:    true,
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}

	backer := findLine(t, results, "Backer Board (3x5)")
	nearlyEqual(t, "sheets", backer.Value, 6) // 80 sq ft / 15 per sheet
	nearlyEqual(t, "backer cost", backer.Cost, 83.88)

	membrane := findLine(t, results, "Uncoupling Membrane")
	nearlyEqual(t, "rolls", membrane.Value, 1)
	nearlyEqual(t, "membrane cost", membrane.Cost, 189.00)
	checkTotal(t, results)
}

func TestCalculateTile_SizeOverrideByName(t *testing.T) {
	r := NewCustomResolver([]models.CustomMaterial{
		{Name: "Tile 12x12", Category: "tile", Price: 28.00},
	})
	results, err := CalculateTile(models.TileInput{
		TileSize: "12x12",
		Length:   fp(10),
		Width:    fp(8),
	}, r)
	if err != nil {
		t.Fatal(err)
	}
	nearlyEqual(t, "overridden tile cost", findLine(t, results, "Tile").Cost, 252.00)
}

func TestCalculateTile_Validation(t *testing.T) {
	_, err := CalculateTile(models.TileInput{TileSize: "12x12", Width: fp(8)}, NewDefaultResolver())
	wantValidationError(t, err, "length")
}
