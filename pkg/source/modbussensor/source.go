package modbussensor

import (
	"github.com/sustain-se/simulator/pkg/modbusclient"
	"github.com/sustain-se/simulator/pkg/simulation"
	"github.com/sustain-se/simulator/pkg/source"
)

// Register map of the sensor bank. All values are scale-10 fixed point
// in input registers.
const (
	regGeothermalTemp  = 0 // °C x10
	regWastedEnergy    = 1 // kWh x10
	regTEGDeviceLevel  = 2 // % x10
	regTEGSystemLevel  = 3 // % x10
	regPipeHealth      = 4 // % x10
	regStorageCapacity = 5 // kWh x10
)

// Sensor reads the six simulation inputs from a modbus sensor bank.
type Sensor struct {
	client modbusclient.Client
}

func New(client modbusclient.Client) *Sensor {
	return &Sensor{client: client}
}

func (s *Sensor) Inputs() (simulation.Inputs, error) {
	in := simulation.Inputs{}
	var err error

	in.GeothermalTemp, err = source.Scale10itof(s.client.ReadInputRegister(regGeothermalTemp))
	if err != nil {
		return in, err
	}
	in.WastedEnergyInput, err = source.Scale10itof(s.client.ReadInputRegister(regWastedEnergy))
	if err != nil {
		return in, err
	}
	in.TEGDeviceLevel, err = source.Scale10itof(s.client.ReadInputRegister(regTEGDeviceLevel))
	if err != nil {
		return in, err
	}
	in.TEGSystemLevel, err = source.Scale10itof(s.client.ReadInputRegister(regTEGSystemLevel))
	if err != nil {
		return in, err
	}
	in.PipeHealth, err = source.Scale10itof(s.client.ReadInputRegister(regPipeHealth))
	if err != nil {
		return in, err
	}
	in.StorageCapacity, err = source.Scale10itof(s.client.ReadInputRegister(regStorageCapacity))
	if err != nil {
		return in, err
	}

	// physical sensors drift outside the model's domain, clamp here
	return in.Clamp(), nil
}
