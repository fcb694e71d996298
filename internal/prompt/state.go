package prompt

import "fmt"

// State is a node of the session state machine.
type State int

// Session states. ReadValue is the entry state; Done, Unrecognized, Failed
// and Cancelled are terminal.
const (
	StateReadValue State = iota
	StateReadUnit
	StateConvert
	StatePlot
	StateDone
	StateUnrecognized
	StateFailed
	StateCancelled
)

var stateNames = [...]string{
	StateReadValue:    "read_value",
	StateReadUnit:     "read_unit",
	StateConvert:      "convert",
	StatePlot:         "plot",
	StateDone:         "done",
	StateUnrecognized: "unrecognized",
	StateFailed:       "failed",
	StateCancelled:    "cancelled",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Terminal reports whether the session stops in s.
func (s State) Terminal() bool {
	switch s {
	case StateDone, StateUnrecognized, StateFailed, StateCancelled:
		return true
	}
	return false
}
