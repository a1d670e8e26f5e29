package scheduler

import "fmt"

// Process represents a named job with remaining run time
type Process struct {
	Name      string `json:"name" yaml:"name"`
	Remaining int    `json:"time" yaml:"time"`
	Elapsed   int    `json:"elapsed,omitempty" yaml:"elapsed,omitempty"`
}

// Validate checks process name and time
func (p *Process) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidProcess)
	}
	if p.Remaining < 0 {
		return fmt.Errorf("%w: %v has negative time %d", ErrInvalidProcess, p.Name, p.Remaining)
	}
	return nil
}

// Slice describes a single quantum granted to a process
type Slice struct {
	Process   string
	Start     int
	End       int
	Completed bool
}

// Listener observes every slice as it is executed
type Listener func(slice Slice)
