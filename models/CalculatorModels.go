package models

// ---------- Shared calculator types ----------

// PricingMode selects which material catalog the price resolver prefers.
// "default" uses only the built-in price constants; "custom" prefers the
// account's material overrides and falls back entry-by-entry.
type PricingMode string

const (
	PricingModeDefault PricingMode = "default"
	PricingModeCustom  PricingMode = "custom"
)

// CalculationResult is one line of an itemized bill of materials. Results are
// ordered: primary material first, then fasteners/consumables, then optional
// add-ons, then an aggregate total. When IsTotal is set, Value equals the sum
// of every preceding line's Cost.
type CalculationResult struct {
	Label     string  `json:"label" example:"Ready-Mix Concrete"`
	Value     float64 `json:"value" example:"1.23"`
	Unit      string  `json:"unit" example:"cubic yards"`
	Cost      float64 `json:"cost,omitempty" example:"228.39"`
	IsTotal   bool    `json:"isTotal,omitempty"`
	IsWarning bool    `json:"isWarning,omitempty"`
}

// CalculationResponse wraps calculator output for the API. PricingError
// carries a non-fatal catalog fetch failure (the calculation still ran on
// default prices).
type CalculationResponse struct {
	Results      []CalculationResult `json:"results"`
	PricingError string              `json:"pricing_error,omitempty"`
}

// ---------- Repeatable sub-entities ----------
// Every sub-entity carries a client-generated ID used only for list
// reconciliation in the UI. It is an opaque handle, never interpreted.

// Opening is a framed door or window in a wall run.
type Opening struct {
	ID     string   `json:"id,omitempty"`
	Type   string   `json:"type" example:"door"` // "door" or "window"
	Width  *float64 `json:"width" example:"3"`   // feet
	Height *float64 `json:"height" example:"6.67"`
	Count  int      `json:"count" example:"1"`
}

// Gate is a fencing gate entry.
type Gate struct {
	ID    string   `json:"id,omitempty"`
	Type  string   `json:"type" example:"single"` // "single" or "double"
	Width *float64 `json:"width" example:"4"`     // feet
}

// Circuit is one electrical branch circuit.
type Circuit struct {
	ID       string   `json:"id,omitempty"`
	Amperage int      `json:"amperage" example:"20"` // 15, 20, 30, 40 or 50
	AFCI     bool     `json:"afci"`
	Length   *float64 `json:"length" example:"45"` // run length in feet
}

// Fixture is a plumbing fixture to rough in.
type Fixture struct {
	ID    string `json:"id,omitempty"`
	Type  string `json:"type" example:"sink"` // sink, toilet, shower, tub, washer, water_heater
	Count int    `json:"count" example:"1"`
}

// PipingRun is a supply line run of a given material and diameter.
type PipingRun struct {
	ID       string   `json:"id,omitempty"`
	Material string   `json:"material" example:"pex"`  // pex, copper or pvc
	Diameter string   `json:"diameter" example:"1/2"`  // "1/2", "3/4" or "1"
	Length   *float64 `json:"length" example:"60"`     // feet
}

// Wall is a rectangular wall section used by the siding, paint and veneer
// calculators.
type Wall struct {
	ID     string   `json:"id,omitempty"`
	Length *float64 `json:"length" example:"20"` // feet
	Height *float64 `json:"height" example:"8"`
}

// JunkItem is one removable item or debris pile.
type JunkItem struct {
	ID     string   `json:"id,omitempty"`
	Name   string   `json:"name" example:"Couch"`
	Volume *float64 `json:"volume" example:"35"` // cubic feet per item
	Weight *float64 `json:"weight" example:"80"` // pounds per item
	Count  int      `json:"count" example:"1"`
}
