package services

import (
	"testing"

	"backend/models"
)

func TestCalculateFlooring_HardwoodRoom(t *testing.T) {
	results, err := CalculateFlooring(models.FlooringInput{
		FlooringType:        "hardwood",
		Length:              fp(15),
		Width:               fp(12),
		IncludeUnderlayment: true,
		IncludeTransitions:  true,
		TransitionCount:     2,
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}

	area := findLine(t, results, "Floor Area")
	nearlyEqual(t, "area", area.Value, 180)

	boxes := findLine(t, results, "Hardwood Flooring")
	nearlyEqual(t, "boxes", boxes.Value, 10) // 180 + 10% waste / 20 sq ft per box
	nearlyEqual(t, "box cost", boxes.Cost, 895.00)

	under := findLine(t, results, "Underlayment")
	nearlyEqual(t, "rolls", under.Value, 2) // raw area, not waste-adjusted
	nearlyEqual(t, "roll cost", under.Cost, 109.96)

	strips := findLine(t, results, "Transition Strips")
	nearlyEqual(t, "strips", strips.Value, 2)
	nearlyEqual(t, "strip cost", strips.Cost, 42.94)

	nearlyEqual(t, "total", checkTotal(t, results), 1047.90)
}

func TestCalculateFlooring_CarpetBySquareYard(t *testing.T) {
	results, err := CalculateFlooring(models.FlooringInput{
		FlooringType: "carpet",
		Length:       fp(15),
		Width:        fp(12),
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}
	carpet := findLine(t, results, "Carpet")
	nearlyEqual(t, "square yards", carpet.Value, 22) // 198 sq ft / 9
	nearlyEqual(t, "carpet cost", carpet.Cost, 627.00)
	checkTotal(t, results)
}

func TestCalculateFlooring_PatternMultipliers(t *testing.T) {
	base := models.FlooringInput{
		FlooringType: "hardwood",
		Length:       fp(15),
		Width:        fp(12),
	}

	base.Pattern = "diagonal"
	results, err := CalculateFlooring(base, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}
	nearlyEqual(t, "diagonal boxes", findLine(t, results, "Hardwood Flooring").Value, 11)

	base.Pattern = "herringbone"
	base.FlooringType = "laminate"
	results, err = CalculateFlooring(base, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}
	// 180 x 1.10 waste x 1.15 herringbone / 24 sq ft boxes
	nearlyEqual(t, "herringbone boxes", findLine(t, results, "Laminate Flooring").Value, 10)
}

func TestCalculateFlooring_UnknownTypeFallsBackToLaminate(t *testing.T) {
	results, err := CalculateFlooring(models.FlooringInput{
		FlooringType: "bamboo",
		Length:       fp(15),
		Width:        fp(12),
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}
	boxes := findLine(t, results, "Laminate Flooring")
	nearlyEqual(t, "fallback boxes", boxes.Value, 9) // 198 / 24 sq ft
	nearlyEqual(t, "fallback cost", boxes.Cost, 474.75)
}

func TestCalculateFlooring_Validation(t *testing.T) {
	_, err := CalculateFlooring(models.FlooringInput{FlooringType: "vinyl", Length: fp(15)}, NewDefaultResolver())
	wantValidationError(t, err, "width")
}
