package state

import "github.com/sustain-se/simulator/pkg/simulation"

// Snapshot is the published form of one evaluation. Fields are
// pointers so a partially populated snapshot serializes without
// zero-value noise, same wire shape as the metrics sink expects.
type Snapshot struct {
	GeothermalTemp    *float64 `json:"geothermalTemp,omitempty"`
	WastedEnergyInput *float64 `json:"wastedEnergyInput,omitempty"`
	TEGDeviceLevel    *float64 `json:"tegDeviceLevel,omitempty"`
	TEGSystemLevel    *float64 `json:"tegSystemLevel,omitempty"`
	PipeHealth        *float64 `json:"pipeHealth,omitempty"`
	StorageCapacity   *float64 `json:"storageCapacity,omitempty"`

	GeoOutput      *float64 `json:"geoOutput,omitempty"`
	WasteOutput    *float64 `json:"wasteOutput,omitempty"`
	TEGRecovery    *float64 `json:"tegRecovery,omitempty"`
	PipeEfficiency *float64 `json:"pipeEfficiency,omitempty"`
	TotalOutput    *float64 `json:"totalOutput,omitempty"`
	Charge         *float64 `json:"charge,omitempty"`
	Discharge      *float64 `json:"discharge,omitempty"`

	PipeStatus *string `json:"pipeStatus,omitempty"`
	PipeAlarm  *bool   `json:"pipeAlarm,omitempty"`
}

func FromResult(res simulation.Result) *Snapshot {
	status := string(res.PipeStatus)
	return &Snapshot{
		GeothermalTemp:    pointer(res.Inputs.GeothermalTemp),
		WastedEnergyInput: pointer(res.Inputs.WastedEnergyInput),
		TEGDeviceLevel:    pointer(res.Inputs.TEGDeviceLevel),
		TEGSystemLevel:    pointer(res.Inputs.TEGSystemLevel),
		PipeHealth:        pointer(res.Inputs.PipeHealth),
		StorageCapacity:   pointer(res.Inputs.StorageCapacity),
		GeoOutput:         pointer(res.GeoOutput),
		WasteOutput:       pointer(res.WasteOutput),
		TEGRecovery:       pointer(res.TEGRecovery),
		PipeEfficiency:    pointer(res.PipeEfficiency),
		TotalOutput:       pointer(res.TotalOutput),
		Charge:            pointer(res.Charge),
		Discharge:         pointer(res.Discharge),
		PipeStatus:        &status,
		PipeAlarm:         pointer(res.PipeStatus == simulation.PipeWarning),
	}
}

// Map flattens the snapshot for key-per-topic publishing.
func (s Snapshot) Map() map[string]interface{} {
	m := make(map[string]interface{})
	if s.GeothermalTemp != nil {
		m["geothermalTemp"] = *s.GeothermalTemp
	}
	if s.WastedEnergyInput != nil {
		m["wastedEnergyInput"] = *s.WastedEnergyInput
	}
	if s.TEGDeviceLevel != nil {
		m["tegDeviceLevel"] = *s.TEGDeviceLevel
	}
	if s.TEGSystemLevel != nil {
		m["tegSystemLevel"] = *s.TEGSystemLevel
	}
	if s.PipeHealth != nil {
		m["pipeHealth"] = *s.PipeHealth
	}
	if s.StorageCapacity != nil {
		m["storageCapacity"] = *s.StorageCapacity
	}
	if s.GeoOutput != nil {
		m["geoOutput"] = *s.GeoOutput
	}
	if s.WasteOutput != nil {
		m["wasteOutput"] = *s.WasteOutput
	}
	if s.TEGRecovery != nil {
		m["tegRecovery"] = *s.TEGRecovery
	}
	if s.PipeEfficiency != nil {
		m["pipeEfficiency"] = *s.PipeEfficiency
	}
	if s.TotalOutput != nil {
		m["totalOutput"] = *s.TotalOutput
	}
	if s.Charge != nil {
		m["charge"] = *s.Charge
	}
	if s.Discharge != nil {
		m["discharge"] = *s.Discharge
	}
	if s.PipeStatus != nil {
		m["pipeStatus"] = *s.PipeStatus
	}
	if s.PipeAlarm != nil {
		m["pipeAlarm"] = boolToInt(*s.PipeAlarm)
	}
	return m
}

func pointer[K any](val K) *K {
	return &val
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
