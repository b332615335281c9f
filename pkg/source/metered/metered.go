package metered

import (
	"github.com/sirupsen/logrus"
	"github.com/sustain-se/simulator/pkg/api/v1/meter"
	"github.com/sustain-se/simulator/pkg/simulation"
	"github.com/sustain-se/simulator/pkg/source"
)

// Reader is the meter side, satisfied by pkg/mbus.
type Reader interface {
	ReadEnergy(model, id string) (*meter.Reading, error)
}

// Metered wraps another source and replaces its wasted energy input
// with the latest reading from a heat meter. A failed poll falls back
// to the cached reading, and when nothing was ever read the wrapped
// value stands.
type Metered struct {
	wrapped source.Source
	reader  Reader
	cache   *meter.Cache
	model   string
	id      string
}

func New(wrapped source.Source, reader Reader, model, id string) *Metered {
	return &Metered{
		wrapped: wrapped,
		reader:  reader,
		cache:   &meter.Cache{},
		model:   model,
		id:      id,
	}
}

func (m *Metered) Inputs() (simulation.Inputs, error) {
	in, err := m.wrapped.Inputs()
	if err != nil {
		return in, err
	}

	reading, err := m.reader.ReadEnergy(m.model, m.id)
	if err != nil {
		logrus.Warnf("metered: meter poll failed, using cached reading: %v", err)
		reading = m.cache.Get()
	} else {
		m.cache.Set(reading)
	}
	if reading == nil {
		return in, nil
	}

	in.WastedEnergyInput = reading.EnergyKWH()
	return in.Clamp(), nil
}
