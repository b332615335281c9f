package meter

import "time"

// Reading is one sample from an external energy meter.
type Reading struct {
	Id        string    `json:"id"`
	Model     string    `json:"model"`
	Time      time.Time `json:"time"`
	Energy_WH float64   `json:"wh,omitempty"`
	Power_W   float64   `json:"w,omitempty"`
}

// EnergyKWH returns the accumulated energy in kWh.
func (r Reading) EnergyKWH() float64 {
	return r.Energy_WH / 1000.0
}
