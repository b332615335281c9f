package simulation

import "fmt"

// Slider ranges from the prototype dashboard. Values arriving from
// anything other than the dashboard widgets must be clamped or
// validated against these before evaluation.
const (
	MinGeothermalTemp = 300.0
	MaxGeothermalTemp = 900.0

	MinWastedEnergy = 10.0
	MaxWastedEnergy = 200.0

	MinTEGLevel = 0.0
	MaxTEGLevel = 50.0

	MinPipeHealth = 0.0
	MaxPipeHealth = 100.0

	MinStorageCapacity = 100.0
	MaxStorageCapacity = 1000.0
)

type Inputs struct {
	GeothermalTemp    float64 `json:"geothermalTemp"`    // °C
	WastedEnergyInput float64 `json:"wastedEnergyInput"` // kWh
	TEGDeviceLevel    float64 `json:"tegDeviceLevel"`    // %
	TEGSystemLevel    float64 `json:"tegSystemLevel"`    // %
	PipeHealth        float64 `json:"pipeHealth"`        // %
	StorageCapacity   float64 `json:"storageCapacity"`   // kWh
}

// Default returns the slider defaults from the prototype dashboard.
func Default() Inputs {
	return Inputs{
		GeothermalTemp:    600,
		WastedEnergyInput: 80,
		TEGDeviceLevel:    15,
		TEGSystemLevel:    20,
		PipeHealth:        100,
		StorageCapacity:   500,
	}
}

// Clamp returns a copy with every field forced into its slider range.
func (in Inputs) Clamp() Inputs {
	in.GeothermalTemp = clamp(in.GeothermalTemp, MinGeothermalTemp, MaxGeothermalTemp)
	in.WastedEnergyInput = clamp(in.WastedEnergyInput, MinWastedEnergy, MaxWastedEnergy)
	in.TEGDeviceLevel = clamp(in.TEGDeviceLevel, MinTEGLevel, MaxTEGLevel)
	in.TEGSystemLevel = clamp(in.TEGSystemLevel, MinTEGLevel, MaxTEGLevel)
	in.PipeHealth = clamp(in.PipeHealth, MinPipeHealth, MaxPipeHealth)
	in.StorageCapacity = clamp(in.StorageCapacity, MinStorageCapacity, MaxStorageCapacity)
	return in
}

// Validate returns an error for the first field outside its slider range.
func (in Inputs) Validate() error {
	checks := []struct {
		name     string
		value    float64
		min, max float64
	}{
		{"geothermalTemp", in.GeothermalTemp, MinGeothermalTemp, MaxGeothermalTemp},
		{"wastedEnergyInput", in.WastedEnergyInput, MinWastedEnergy, MaxWastedEnergy},
		{"tegDeviceLevel", in.TEGDeviceLevel, MinTEGLevel, MaxTEGLevel},
		{"tegSystemLevel", in.TEGSystemLevel, MinTEGLevel, MaxTEGLevel},
		{"pipeHealth", in.PipeHealth, MinPipeHealth, MaxPipeHealth},
		{"storageCapacity", in.StorageCapacity, MinStorageCapacity, MaxStorageCapacity},
	}
	for _, c := range checks {
		if c.value < c.min || c.value > c.max {
			return fmt.Errorf("%s %g outside range [%g, %g]", c.name, c.value, c.min, c.max)
		}
	}
	return nil
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
