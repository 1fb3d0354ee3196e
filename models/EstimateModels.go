package models

import (
	"encoding/json"
	"time"
)

// SavedEstimate is one named snapshot of a calculator's raw inputs and its
// last computed results. EstimateData is stored and returned verbatim; the
// calculator re-validates it on the next calculate, so snapshots that
// predate an input-shape change load without error.
type SavedEstimate struct {
	ID             int             `json:"id" example:"1"`
	EstimateNumber string          `json:"estimate_number" example:"ES48213"`
	CalculatorType string          `json:"calculator_type" binding:"required" example:"concrete"`
	EstimateName   string          `json:"estimate_name" binding:"required" example:"Smith driveway"`
	EstimateData   json.RawMessage `json:"estimate_data" swaggertype:"object"`
	ResultsData    json.RawMessage `json:"results_data,omitempty" swaggertype:"object"`
	ClientID       *int            `json:"client_id,omitempty" example:"3"`
	ClientName     string          `json:"client_name,omitempty" example:"Smith Residence"`
	ShareCode      string          `json:"share_code,omitempty"`
	CreatedBy      int             `json:"created_by,omitempty"`
	CreatedAt      time.Time       `json:"created_at,omitempty"`
	UpdatedAt      time.Time       `json:"updated_at,omitempty"`
}

// EstimateResults is the shape of SavedEstimate.ResultsData.
type EstimateResults struct {
	Results []CalculationResult `json:"results"`
}

// EstimateListItem is the summary row returned by the list endpoint.
type EstimateListItem struct {
	ID             int       `json:"id"`
	EstimateNumber string    `json:"estimate_number"`
	CalculatorType string    `json:"calculator_type"`
	EstimateName   string    `json:"estimate_name"`
	ClientID       *int      `json:"client_id,omitempty"`
	ClientName     string    `json:"client_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
