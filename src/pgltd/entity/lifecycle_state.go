package entity

// LifecycleState is the state of the session supervisor.
type LifecycleState int

const (
	// StateInitializing is the state before the first start or stop.
	StateInitializing LifecycleState = iota
	StateStarting
	StateStarted
	StateStopping
	StateStopped
	StateRestarting
	StateError
)

// String returns a human-readable state name.
func (s LifecycleState) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateStarting:
		return "starting"
	case StateStarted:
		return "started"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	case StateRestarting:
		return "restarting"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Tooltip returns the text shown next to the status indicator.
func (s LifecycleState) Tooltip() string {
	switch s {
	case StateInitializing:
		return "Initializing"
	case StateStarting:
		return "Starting"
	case StateRestarting:
		return "Restarting"
	case StateStarted:
		return "Up and running"
	case StateStopping:
		return "Stopping"
	case StateStopped:
		return "Stopped"
	case StateError:
		return "Error"
	default:
		return ""
	}
}

// Icon returns the codicon used by the status indicator.
func (s LifecycleState) Icon() string {
	switch s {
	case StateInitializing, StateStarting, StateRestarting, StateStopping:
		return "$(sync~spin)"
	case StateStarted:
		return "$(check)"
	case StateStopped:
		return "$(x)"
	case StateError:
		return "$(error)"
	default:
		return "$(question)"
	}
}

// Busy reports whether the state is a transient one.
func (s LifecycleState) Busy() bool {
	switch s {
	case StateStarting, StateStopping, StateRestarting:
		return true
	}
	return false
}
