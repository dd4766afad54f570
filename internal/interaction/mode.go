// Package interaction implements the click state machine, the translate gizmo
// and snapping dragged objects back onto the terrain.
package interaction

// Mode is the controller state. Exactly one mode is active at a time.
type Mode int

const (
	// ModeIdle orbits the camera and places markers on terrain clicks
	ModeIdle Mode = iota
	// ModeAttached binds an object to the gizmo and locks the orbit
	ModeAttached
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeAttached:
		return "attached"
	default:
		return "unknown"
	}
}

// Outcome describes what a click did
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeMissed
	OutcomeMarkerPlaced
	OutcomeAttached
	OutcomeDetached
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeMissed:
		return "missed"
	case OutcomeMarkerPlaced:
		return "marker placed"
	case OutcomeAttached:
		return "attached"
	case OutcomeDetached:
		return "detached"
	default:
		return "unknown"
	}
}
