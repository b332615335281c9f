package simulation

import "math"

// Coefficients holds the tunable constants of the model. The defaults
// are unexplained constants inherited from the prototype and are kept
// as configuration rather than hardcoded in the formulas.
type Coefficients struct {
	// GeothermalYield is kWh produced per °C of geothermal heat.
	GeothermalYield float64 `json:"geothermalYield"`
	// WasteRecovery is the usable share of wasted energy input.
	WasteRecovery float64 `json:"wasteRecovery"`
	// DischargeYield is the usable share of stored energy after
	// battery round-trip losses.
	DischargeYield float64 `json:"dischargeYield"`

	// Pipe health thresholds. Exactly PipeWarningBelow falls in the
	// moderate tier and exactly PipeModerateBelow in the optimal tier.
	PipeWarningBelow  float64 `json:"pipeWarningBelow"`
	PipeModerateBelow float64 `json:"pipeModerateBelow"`
}

func DefaultCoefficients() Coefficients {
	return Coefficients{
		GeothermalYield:   0.5,
		WasteRecovery:     0.7,
		DischargeYield:    0.75,
		PipeWarningBelow:  40,
		PipeModerateBelow: 70,
	}
}

// Result is everything one evaluation derives. All energy figures are kWh.
type Result struct {
	Inputs Inputs `json:"inputs"`

	GeoOutput      float64    `json:"geoOutput"`
	WasteOutput    float64    `json:"wasteOutput"`
	TEGRecovery    float64    `json:"tegRecovery"`
	PipeStatus     PipeStatus `json:"pipeStatus"`
	PipeStatusMsg  string     `json:"pipeStatusMsg"`
	PipeEfficiency float64    `json:"pipeEfficiency"`
	TotalOutput    float64    `json:"totalOutput"`
	Charge         float64    `json:"charge"`
	Discharge      float64    `json:"discharge"`
}

// GeothermalEnergy is the output of the geothermal steam generator.
// Simplified: higher temperature, more output.
func (c Coefficients) GeothermalEnergy(temp float64) float64 {
	return c.GeothermalYield * temp
}

// WastedEnergyRecovery is the usable part of the wasted energy input.
func (c Coefficients) WastedEnergyRecovery(wasted float64) float64 {
	return c.WasteRecovery * wasted
}

// TEGRecovery is the extra energy recovered by the two TEG tiers,
// device level and system level percentages applied to the combined
// generator output.
func TEGRecovery(usage, devicePct, systemPct float64) float64 {
	return usage * (devicePct + systemPct) / 100
}

// MonitorPipe classifies pipe health into one of the three tiers.
func (c Coefficients) MonitorPipe(health float64) PipeStatus {
	switch {
	case health < c.PipeWarningBelow:
		return PipeWarning
	case health < c.PipeModerateBelow:
		return PipeModerate
	}
	return PipeOptimal
}

// Evaluate runs the whole pipeline for one set of inputs. It is pure:
// same inputs give bit-identical results, nothing is carried over
// between calls. Inputs are expected to be within slider range, use
// Inputs.Clamp or Inputs.Validate at the boundary.
func (c Coefficients) Evaluate(in Inputs) Result {
	geo := c.GeothermalEnergy(in.GeothermalTemp)
	waste := c.WastedEnergyRecovery(in.WastedEnergyInput)
	teg := TEGRecovery(geo+waste, in.TEGDeviceLevel, in.TEGSystemLevel)

	status := c.MonitorPipe(in.PipeHealth)
	efficiency := status.Efficiency()

	total := (geo + waste + teg) * efficiency
	charge := math.Min(total, in.StorageCapacity)

	return Result{
		Inputs:         in,
		GeoOutput:      geo,
		WasteOutput:    waste,
		TEGRecovery:    teg,
		PipeStatus:     status,
		PipeStatusMsg:  status.Label(),
		PipeEfficiency: efficiency,
		TotalOutput:    total,
		Charge:         charge,
		Discharge:      c.DischargeYield * charge,
	}
}

// Evaluate runs the pipeline with the default coefficients.
func Evaluate(in Inputs) Result {
	return DefaultCoefficients().Evaluate(in)
}
