package services

import (
	"fmt"
	"math"

	"backend/models"
)

// ---------- Shared calculator helpers ----------

// ValidationError reports the first required field that is unset or invalid
// for the selected option branch. Calculators return it instead of emitting
// line items; they never compute on partial input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

func missingField(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "is required"}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100.0
}

// ceilUnits converts an exact real-valued requirement into whole purchasable
// units. Counts never under-round.
func ceilUnits(exact float64) float64 {
	return math.Ceil(exact - 1e-9)
}

// isSet reports whether a required numeric field has been entered and is a
// usable finite number.
func isSet(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

func isPositive(v *float64) bool {
	return isSet(v) && *v > 0
}

// appendTotal closes out a result list with the aggregate total line. The
// total's value equals the sum of every preceding line's cost, which is the
// cross-check contractors run by hand.
func appendTotal(results []models.CalculationResult, label string) []models.CalculationResult {
	var sum float64
	for _, r := range results {
		sum += r.Cost
	}
	return append(results, models.CalculationResult{
		Label:   label,
		Value:   round2(sum),
		Unit:    "USD",
		IsTotal: true,
	})
}
