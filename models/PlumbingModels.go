package models

// PlumbingInput describes the fixtures and supply runs of a rough-in job.
// At least one piping run with a positive length is required; SewerLength is
// required only when SewerConnection is enabled.
type PlumbingInput struct {
	Fixtures   []Fixture   `json:"fixtures"`
	PipingRuns []PipingRun `json:"piping_runs"`

	SewerConnection bool     `json:"sewer_connection"`
	SewerLength     *float64 `json:"sewer_length" example:"40"` // feet
}
