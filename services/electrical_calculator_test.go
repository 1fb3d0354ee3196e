package services

import (
	"testing"

	"backend/models"
)

func TestCalculateElectrical_MixedCircuits(t *testing.T) {
	results, err := CalculateElectrical(models.ElectricalInput{
		Circuits: []models.Circuit{
			{ID: "c1", Amperage: 15, Length: fp(100)},
			{ID: "c2", Amperage: 20, AFCI: true, Length: fp(45)},
		},
		Outlets:       12,
		Switches:      6,
		LightFixtures: 8,
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}

	nearlyEqual(t, "standard breaker", findLine(t, results, "Breaker (15 A)").Cost, 12.48)
	nearlyEqual(t, "afci breaker", findLine(t, results, "AFCI Breaker (20 A)").Cost, 52.40)

	// 100 ft x 1.2 routing overage fits one 250 ft roll.
	w14 := findLine(t, results, "NM-B 14/2 Wire (250 ft rolls)")
	nearlyEqual(t, "14/2 rolls", w14.Value, 1)
	nearlyEqual(t, "14/2 cost", w14.Cost, 105.00)

	w12 := findLine(t, results, "NM-B 12/2 Wire (250 ft rolls)")
	nearlyEqual(t, "12/2 rolls", w12.Value, 1)
	nearlyEqual(t, "12/2 cost", w12.Cost, 145.00)

	nearlyEqual(t, "outlets", findLine(t, results, "Outlets").Cost, 39.00)
	nearlyEqual(t, "switches", findLine(t, results, "Switches").Cost, 24.60)
	nearlyEqual(t, "fixtures", findLine(t, results, "Light Fixtures").Cost, 308.00)

	boxes := findLine(t, results, "Device Boxes")
	nearlyEqual(t, "boxes", boxes.Value, 18) // outlets plus switches
	nearlyEqual(t, "box cost", boxes.Cost, 42.30)
	nearlyEqual(t, "plate cost", findLine(t, results, "Cover Plates").Cost, 17.64)

	staples := findLine(t, results, "Cable Staples")
	nearlyEqual(t, "staple boxes", staples.Value, 1)

	nearlyEqual(t, "total", checkTotal(t, results), 752.87)
}

func TestCalculateElectrical_UnknownAmperageDefaultsTo20(t *testing.T) {
	results, err := CalculateElectrical(models.ElectricalInput{
		Circuits: []models.Circuit{
			{ID: "c1", Amperage: 25, Length: fp(50)},
		},
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}
	nearlyEqual(t, "breaker", findLine(t, results, "Breaker (20 A)").Cost, 12.98)
	nearlyEqual(t, "wire rolls", findLine(t, results, "NM-B 12/2 Wire (250 ft rolls)").Value, 1)
}

func TestCalculateElectrical_WireRollsAccumulatePerGauge(t *testing.T) {
	results, err := CalculateElectrical(models.ElectricalInput{
		Circuits: []models.Circuit{
			{ID: "c1", Amperage: 20, Length: fp(120)},
			{ID: "c2", Amperage: 20, Length: fp(110)},
		},
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}
	// 276 adjusted feet spills into a second roll.
	w12 := findLine(t, results, "NM-B 12/2 Wire (250 ft rolls)")
	nearlyEqual(t, "rolls", w12.Value, 2)
	nearlyEqual(t, "cost", w12.Cost, 290.00)
}

func TestCalculateElectrical_Validation(t *testing.T) {
	_, err := CalculateElectrical(models.ElectricalInput{Outlets: 4}, NewDefaultResolver())
	wantValidationError(t, err, "circuits")

	_, err = CalculateElectrical(models.ElectricalInput{
		Circuits: []models.Circuit{{ID: "c1", Amperage: 20}},
	}, NewDefaultResolver())
	wantValidationError(t, err, "circuits")
}
