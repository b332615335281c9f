package source

import "github.com/sustain-se/simulator/pkg/simulation"

// Source delivers one set of simulation inputs per poll. Implementations
// must clamp to the slider ranges themselves, the evaluation loop trusts
// what it gets.
type Source interface {
	Inputs() (simulation.Inputs, error)
}

func Scale100itof(i int, err error) (float64, error) {
	return float64(i) / 100.0, err
}

func Scale10itof(i int, err error) (float64, error) {
	return float64(i) / 10.0, err
}
