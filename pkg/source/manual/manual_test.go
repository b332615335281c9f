package manual

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sustain-se/simulator/pkg/simulation"
)

func TestStartsAtDashboardDefaults(t *testing.T) {
	in, err := New().Inputs()
	assert.NoError(t, err)
	assert.Equal(t, simulation.Default(), in)
}

func TestSetRejectsOutOfRange(t *testing.T) {
	m := New()
	bad := simulation.Default()
	bad.PipeHealth = 150
	assert.Error(t, m.Set(bad))

	in, err := m.Inputs()
	assert.NoError(t, err)
	assert.Equal(t, simulation.Default(), in)
}

func TestSet(t *testing.T) {
	m := New()
	want := simulation.Default()
	want.GeothermalTemp = 450
	assert.NoError(t, m.Set(want))

	in, err := m.Inputs()
	assert.NoError(t, err)
	assert.Equal(t, want, in)
}
