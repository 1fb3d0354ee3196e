package services

import (
	"testing"

	"backend/models"
)

func TestCalculateFencing_PrivacyDefaults(t *testing.T) {
	results, err := CalculateFencing(models.FencingInput{
		FenceType: "privacy",
		Length:    fp(100),
		Height:    fp(6),
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}

	posts := findLine(t, results, "Fence Posts")
	nearlyEqual(t, "posts", posts.Value, 14) // 13 sections + 1
	nearlyEqual(t, "post cost", posts.Cost, 349.72)

	bags := findLine(t, results, "Post Concrete (60 lb)")
	nearlyEqual(t, "bags", bags.Value, 21) // 14 x 2 ft x 0.33 / 0.45 yield
	nearlyEqual(t, "bag cost", bags.Cost, 104.58)

	pickets := findLine(t, results, "Privacy Pickets")
	nearlyEqual(t, "pickets", pickets.Value, 219) // 1200 in / 5.5 in face
	nearlyEqual(t, "picket cost", pickets.Cost, 762.12)

	rails := findLine(t, results, "Rails (2x4x8)")
	nearlyEqual(t, "rails", rails.Value, 38) // three runs / 8 ft sticks
	nearlyEqual(t, "rail cost", rails.Cost, 340.86)

	nearlyEqual(t, "total", checkTotal(t, results), 1557.28)
}

func TestCalculateFencing_PicketStyle(t *testing.T) {
	results, err := CalculateFencing(models.FencingInput{
		FenceType: "picket",
		Length:    fp(100),
		Height:    fp(4),
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}
	pickets := findLine(t, results, "Pickets")
	nearlyEqual(t, "spaced pickets", pickets.Value, 172) // 7 in on center
	rails := findLine(t, results, "Rails (2x4x8)")
	nearlyEqual(t, "two rail runs", rails.Value, 25)
	checkTotal(t, results)
}

func TestCalculateFencing_ChainLink(t *testing.T) {
	results, err := CalculateFencing(models.FencingInput{
		FenceType: "chain_link",
		Length:    fp(100),
		Height:    fp(4),
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}
	fabric := findLine(t, results, "Chain Link Fabric")
	nearlyEqual(t, "fabric rolls", fabric.Value, 2)
	nearlyEqual(t, "fabric cost", fabric.Cost, 188.00)

	topRail := findLine(t, results, "Top Rail")
	nearlyEqual(t, "top rail sticks", topRail.Value, 10)

	hw := findLine(t, results, "Post Hardware Sets")
	nearlyEqual(t, "hardware sets", hw.Value, 14)
	nearlyEqual(t, "hardware cost", hw.Cost, 60.90)
	checkTotal(t, results)
}

func TestCalculateFencing_PanelsAndRanch(t *testing.T) {
	results, err := CalculateFencing(models.FencingInput{
		FenceType: "panel",
		Length:    fp(64),
		Height:    fp(6),
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}
	panels := findLine(t, results, "Fence Panels")
	nearlyEqual(t, "panels", panels.Value, 8)
	nearlyEqual(t, "panel cost", panels.Cost, 503.84)

	results, err = CalculateFencing(models.FencingInput{
		FenceType: "ranch",
		Length:    fp(100),
		Height:    fp(5),
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}
	boards := findLine(t, results, "Ranch Rails (1x6x16)")
	nearlyEqual(t, "ranch boards", boards.Value, 19)
	nearlyEqual(t, "ranch cost", boards.Cost, 312.55)
}

func TestCalculateFencing_CornersAndGates(t *testing.T) {
	results, err := CalculateFencing(models.FencingInput{
		FenceType: "privacy",
		Length:    fp(100),
		Height:    fp(6),
		Corners:   2,
		Gates: []models.Gate{
			{ID: "g1", Type: "single"},
			{ID: "g2", Type: "double"},
		},
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}

	posts := findLine(t, results, "Fence Posts")
	nearlyEqual(t, "posts with corners", posts.Value, 16)

	single := findLine(t, results, "Gate Hardware (single)")
	nearlyEqual(t, "single kit", single.Cost, 89.99)
	double := findLine(t, results, "Gate Hardware (double)")
	nearlyEqual(t, "double kit", double.Cost, 129.99)
	checkTotal(t, results)
}

func TestCalculateFencing_CustomMode(t *testing.T) {
	results, err := CalculateFencing(models.FencingInput{
		Mode:               "custom",
		CustomLinearFeet:   fp(120),
		CustomPricePerFoot: fp(22.50),
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("custom mode should emit a single line plus total, got %d lines", len(results))
	}
	line := findLine(t, results, "Fence Installation")
	nearlyEqual(t, "linear feet", line.Value, 120)
	nearlyEqual(t, "install cost", line.Cost, 2700.00)
	nearlyEqual(t, "total", checkTotal(t, results), 2700.00)
}

func TestCalculateFencing_PostOverride(t *testing.T) {
	r := NewCustomResolver([]models.CustomMaterial{
		{Name: "Wood Post", Category: "posts", Price: 19.99},
	})
	results, err := CalculateFencing(models.FencingInput{
		FenceType: "privacy",
		Length:    fp(100),
		Height:    fp(6),
	}, r)
	if err != nil {
		t.Fatal(err)
	}
	posts := findLine(t, results, "Fence Posts")
	nearlyEqual(t, "overridden post cost", posts.Cost, 279.86) // 14 x 19.99
}

func TestCalculateFencing_Validation(t *testing.T) {
	_, err := CalculateFencing(models.FencingInput{FenceType: "privacy", Length: fp(100)}, NewDefaultResolver())
	wantValidationError(t, err, "height")

	_, err = CalculateFencing(models.FencingInput{Mode: "custom", CustomLinearFeet: fp(120)}, NewDefaultResolver())
	wantValidationError(t, err, "custom_price_per_foot")
}
