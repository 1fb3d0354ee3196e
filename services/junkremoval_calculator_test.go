package services

import (
	"testing"

	"backend/models"
)

func TestCalculateJunkRemoval_SurchargesStack(t *testing.T) {
	results, err := CalculateJunkRemoval(models.JunkRemovalInput{
		Items: []models.JunkItem{
			{ID: "j1", Name: "Shed debris", Volume: fp(100), Count: 1},
		},
		DistanceMiles: fp(10),
		Access:        "moderate",
		Floors:        2,
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}

	nearlyEqual(t, "volume", findLine(t, results, "Total Volume").Value, 100)

	base := findLine(t, results, "Hauling Charge (by volume)")
	nearlyEqual(t, "base charge", base.Cost, 150.00)

	mileage := findLine(t, results, "Mileage")
	nearlyEqual(t, "mileage", mileage.Cost, 25.00)

	// 25% of the 175.00 accumulated before it.
	access := findLine(t, results, "Access Surcharge (moderate)")
	nearlyEqual(t, "access surcharge", access.Cost, 43.75)

	// 15% per floor above ground, applied after the access surcharge.
	stairs := findLine(t, results, "Stair Carry Surcharge")
	nearlyEqual(t, "stair surcharge", stairs.Cost, 32.81)

	nearlyEqual(t, "total", checkTotal(t, results), 251.56)
}

func TestCalculateJunkRemoval_WeightDominatesBase(t *testing.T) {
	results, err := CalculateJunkRemoval(models.JunkRemovalInput{
		Items: []models.JunkItem{
			{ID: "j1", Name: "Concrete chunks", Volume: fp(35), Weight: fp(400), Count: 1},
		},
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}
	if hasLine(results, "Hauling Charge (by volume)") {
		t.Fatal("base charge should switch to the weight branch")
	}
	base := findLine(t, results, "Hauling Charge (by weight)")
	nearlyEqual(t, "weight charge", base.Cost, 200.00) // floor, not volume + weight
	nearlyEqual(t, "total", checkTotal(t, results), 200.00)
}

func TestCalculateJunkRemoval_CountsAndDifficultAccess(t *testing.T) {
	results, err := CalculateJunkRemoval(models.JunkRemovalInput{
		Items: []models.JunkItem{
			{ID: "j1", Name: "Couch", Volume: fp(35), Count: 2},
			{ID: "j2", Name: "Mattress", Volume: fp(30)}, // zero count treated as 1
		},
		Access: "difficult",
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}
	nearlyEqual(t, "volume", findLine(t, results, "Total Volume").Value, 100)
	access := findLine(t, results, "Access Surcharge (difficult)")
	nearlyEqual(t, "surcharge", access.Cost, 75.00) // half of the 150.00 base
	nearlyEqual(t, "total", checkTotal(t, results), 225.00)
}

func TestCalculateJunkRemoval_Validation(t *testing.T) {
	_, err := CalculateJunkRemoval(models.JunkRemovalInput{
		Items: []models.JunkItem{{ID: "j1", Name: "Empty"}},
	}, NewDefaultResolver())
	wantValidationError(t, err, "items")
}
