package manual

import (
	"sync"

	"github.com/sustain-se/simulator/pkg/simulation"
)

// Manual is the slider-style source: inputs sit in memory and are
// replaced through the HTTP API. Starts at the dashboard defaults.
type Manual struct {
	inputs simulation.Inputs
	sync.RWMutex
}

func New() *Manual {
	return &Manual{inputs: simulation.Default()}
}

func (m *Manual) Inputs() (simulation.Inputs, error) {
	m.RLock()
	defer m.RUnlock()
	return m.inputs, nil
}

// Set replaces the current inputs. Returns an error when any value is
// outside its slider range; nothing is changed in that case.
func (m *Manual) Set(in simulation.Inputs) error {
	if err := in.Validate(); err != nil {
		return err
	}
	m.Lock()
	m.inputs = in
	m.Unlock()
	return nil
}
