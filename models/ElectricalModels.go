package models

// ElectricalInput describes branch circuits and devices for a wiring job.
type ElectricalInput struct {
	Circuits []Circuit `json:"circuits"`

	Outlets       int `json:"outlets" example:"12"`
	Switches      int `json:"switches" example:"6"`
	LightFixtures int `json:"light_fixtures" example:"8"`
}
