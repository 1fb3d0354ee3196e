package services

import (
	"math"
	"testing"

	"backend/models"
)

func fp(v float64) *float64 { return &v }

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

// findLine returns the first result with the given label.
func findLine(t *testing.T, results []models.CalculationResult, label string) models.CalculationResult {
	t.Helper()
	for _, r := range results {
		if r.Label == label {
			return r
		}
	}
	t.Fatalf("no result line labeled %q in %d results", label, len(results))
	return models.CalculationResult{}
}

func hasLine(results []models.CalculationResult, label string) bool {
	for _, r := range results {
		if r.Label == label {
			return true
		}
	}
	return false
}

// checkTotal asserts the last line is the total and that its value equals
// the sum of every preceding line's cost.
func checkTotal(t *testing.T, results []models.CalculationResult) float64 {
	t.Helper()
	if len(results) == 0 {
		t.Fatal("empty result list")
	}
	last := results[len(results)-1]
	if !last.IsTotal {
		t.Fatalf("last line %q is not the total", last.Label)
	}
	var sum float64
	for _, r := range results[:len(results)-1] {
		if r.IsTotal {
			t.Fatalf("unexpected extra total line %q", r.Label)
		}
		sum += r.Cost
	}
	nearlyEqual(t, "total vs sum of line costs", last.Value, round2(sum))
	return last.Value
}

func wantValidationError(t *testing.T, err error, field string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected validation error on %q, got nil", field)
	}
	vErr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if vErr.Field != field {
		t.Fatalf("validation error field = %q, want %q", vErr.Field, field)
	}
}

func TestRound2(t *testing.T) {
	nearlyEqual(t, "round2(228.395)", round2(228.39506172839506), 228.40)
	nearlyEqual(t, "round2(1.005)", round2(1.005), 1.0) // float64 1.005 is just below
	nearlyEqual(t, "round2(-2.345)", round2(-2.345), -2.35)
}

func TestCeilUnits(t *testing.T) {
	nearlyEqual(t, "ceilUnits(4.0)", ceilUnits(4.0), 4)
	nearlyEqual(t, "ceilUnits(4.0001)", ceilUnits(4.0001), 5)
	// A value that lands exactly on a unit boundary after float math must
	// not round up to an extra unit.
	nearlyEqual(t, "ceilUnits(0.1*30)", ceilUnits(0.1*30), 3)
}

func TestIsSetRejectsNonFinite(t *testing.T) {
	if isSet(nil) {
		t.Fatal("nil should not be set")
	}
	nan := math.NaN()
	if isSet(&nan) {
		t.Fatal("NaN should not be set")
	}
	inf := math.Inf(1)
	if isSet(&inf) {
		t.Fatal("Inf should not be set")
	}
	zero := 0.0
	if !isSet(&zero) {
		t.Fatal("zero is a usable value")
	}
	if isPositive(&zero) {
		t.Fatal("zero is not positive")
	}
}

func TestAppendTotalSumsCosts(t *testing.T) {
	results := []models.CalculationResult{
		{Label: "A", Value: 2, Cost: 10.10},
		{Label: "No Cost", Value: 5},
		{Label: "B", Value: 1, Cost: 0.05},
	}
	out := appendTotal(results, "Estimated Total")
	last := out[len(out)-1]
	if !last.IsTotal || last.Unit != "USD" {
		t.Fatalf("bad total line: %+v", last)
	}
	nearlyEqual(t, "total", last.Value, 10.15)
}
