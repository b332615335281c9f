package simulation

type PipeStatus string

const (
	PipeWarning  PipeStatus = "warning"
	PipeModerate PipeStatus = "moderate"
	PipeOptimal  PipeStatus = "optimal"
)

// Label returns the operator facing status text from the prototype dashboard.
func (s PipeStatus) Label() string {
	switch s {
	case PipeWarning:
		return "Warning: Pipe needs replacement!"
	case PipeModerate:
		return "Pipe condition moderate. Monitoring closely."
	case PipeOptimal:
		return "Pipe health optimal."
	}
	return "Unknown pipe status"
}

// Efficiency returns the output multiplier applied when the pipe is in
// this condition. The factors have no cited physical basis, they are
// carried over from the prototype.
func (s PipeStatus) Efficiency() float64 {
	switch s {
	case PipeWarning:
		return 0.6
	case PipeModerate:
		return 0.8
	}
	return 1.0
}
