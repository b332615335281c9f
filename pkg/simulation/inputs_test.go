package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	in := Inputs{
		GeothermalTemp:    1200,
		WastedEnergyInput: 5,
		TEGDeviceLevel:    -3,
		TEGSystemLevel:    80,
		PipeHealth:        101,
		StorageCapacity:   50,
	}
	clamped := in.Clamp()
	assert.Equal(t, Inputs{
		GeothermalTemp:    900,
		WastedEnergyInput: 10,
		TEGDeviceLevel:    0,
		TEGSystemLevel:    50,
		PipeHealth:        100,
		StorageCapacity:   100,
	}, clamped)

	// in-range values pass through untouched
	assert.Equal(t, Default(), Default().Clamp())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())

	in := Default()
	in.GeothermalTemp = 299
	err := in.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "geothermalTemp")

	in = Default()
	in.StorageCapacity = 1001
	err = in.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "storageCapacity")

	// range endpoints are valid
	in = Inputs{
		GeothermalTemp:    300,
		WastedEnergyInput: 200,
		TEGDeviceLevel:    0,
		TEGSystemLevel:    50,
		PipeHealth:        0,
		StorageCapacity:   1000,
	}
	assert.NoError(t, in.Validate())
}
