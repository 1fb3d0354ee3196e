package services

import (
	"testing"

	"backend/models"
)

func TestCalculateFraming_WallWithDoor(t *testing.T) {
	results, err := CalculateFraming(models.FramingInput{
		WallLength: fp(24),
		WallHeight: fp(8),
		Openings: []models.Opening{
			{ID: "d1", Type: "door", Width: fp(3), Height: fp(6.67), Count: 1},
		},
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}

	studs := findLine(t, results, "Wall Studs (2x4)")
	nearlyEqual(t, "studs", studs.Value, 23) // 19 on layout + 4 for the door
	nearlyEqual(t, "stud cost", studs.Cost, 97.75)

	plates := findLine(t, results, "Plate Lumber (2x4x16)")
	nearlyEqual(t, "plates", plates.Value, 5) // 72 ft of plate / 16 ft sticks
	nearlyEqual(t, "plate cost", plates.Cost, 63.90)

	header := findLine(t, results, "Header Stock (doubled 2x8)")
	nearlyEqual(t, "header feet", header.Value, 7) // 2 x (3 + 0.5)
	nearlyEqual(t, "header cost", header.Cost, 45.15)

	nails := findLine(t, results, "Framing Nails")
	nearlyEqual(t, "nail boxes", nails.Value, 1)

	nearlyEqual(t, "total", checkTotal(t, results), 216.77)
}

func TestCalculateFraming_WindowsAndSpacing(t *testing.T) {
	results, err := CalculateFraming(models.FramingInput{
		WallLength:  fp(24),
		WallHeight:  fp(8),
		StudSpacing: 24,
		Openings: []models.Opening{
			{ID: "w1", Type: "window", Width: fp(4), Height: fp(3), Count: 2},
		},
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}

	studs := findLine(t, results, "Wall Studs (2x4)")
	nearlyEqual(t, "studs at 24 oc", studs.Value, 25) // 13 on layout + 12 for windows

	header := findLine(t, results, "Header Stock (doubled 2x8)")
	nearlyEqual(t, "header feet", header.Value, 18) // 2 x 4.5 x 2 windows
	checkTotal(t, results)
}

func TestCalculateFraming_NoOpenings(t *testing.T) {
	results, err := CalculateFraming(models.FramingInput{
		WallLength: fp(100),
		WallHeight: fp(8),
	}, NewDefaultResolver())
	if err != nil {
		t.Fatal(err)
	}
	if hasLine(results, "Header Stock (doubled 2x8)") {
		t.Fatal("no header line without openings")
	}
	studs := findLine(t, results, "Wall Studs (2x4)")
	nearlyEqual(t, "studs", studs.Value, 76)
	nails := findLine(t, results, "Framing Nails")
	nearlyEqual(t, "nail boxes", nails.Value, 2) // 76 studs / 50 per box
	checkTotal(t, results)
}

func TestCalculateFraming_Validation(t *testing.T) {
	_, err := CalculateFraming(models.FramingInput{WallLength: fp(24)}, NewDefaultResolver())
	wantValidationError(t, err, "wall_height")

	_, err = CalculateFraming(models.FramingInput{
		WallLength: fp(24),
		WallHeight: fp(8),
		Openings:   []models.Opening{{ID: "d1", Type: "door", Height: fp(6.67)}},
	}, NewDefaultResolver())
	wantValidationError(t, err, "opening width")
}
