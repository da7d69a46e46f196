package picking

import "fmt"

// Phase is the kind of interaction in progress.
type Phase uint8

const (
	PhaseIdle     Phase = iota // no entity active, no button tracked
	PhaseHovering              // an entity is active by proximity only
	PhasePressed               // the tracked button is held on an entity, below the drag threshold
	PhaseDragging              // the tracked button is held and the threshold was exceeded
	PhaseCanceled              // several buttons were held; waiting for all to be released
)

var phaseNames = [...]string{"Idle", "Hovering", "Pressed", "Dragging", "Canceled"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// EntityState is the interaction state of a single entity.
type EntityState uint8

const (
	EntityNone    EntityState = iota // not active
	EntityHovered                    // hovered, no button tracked
	EntityPressed                    // tracked button held, not yet dragging
	EntityDragged                    // being dragged
)

// State is the authoritative interaction state. It is a plain value: the
// Machine replaces it wholesale once per frame, and every copy handed out is
// a snapshot.
//
// Which fields are meaningful depends on Phase:
//
//	Idle      Pointer
//	Hovering  Entity, Pointer
//	Pressed   Entity, Button, Origin, Last, PressTime, Pointer
//	Dragging  Entity, Button, Origin, Last, PressTime, Pointer
//	Canceled  PendingRelease, Pointer
type State struct {
	Phase  Phase
	Entity EntityID
	Button Button
	// Origin is the pointer position when Button went down.
	Origin Vec2
	// Last is the position of the previous drag step.
	Last      Vec2
	PressTime float64
	// PendingRelease holds the buttons that must still be released before
	// a canceled interaction returns to Idle.
	PendingRelease ButtonSet
	// Pointer is the last known pointer position.
	Pointer Vec2
}

// Idle returns the initial state.
func Idle() State { return State{} }

// ActiveEntity returns the hovered, pressed or dragged entity.
func (s State) ActiveEntity() (EntityID, bool) {
	switch s.Phase {
	case PhaseHovering, PhasePressed, PhaseDragging:
		return s.Entity, true
	}
	return 0, false
}

func (s State) IsIdle() bool     { return s.Phase == PhaseIdle }
func (s State) IsHovering() bool { return s.Phase == PhaseHovering }
func (s State) IsDragging() bool { return s.Phase == PhaseDragging }
func (s State) IsCanceled() bool { return s.Phase == PhaseCanceled }

// IsPressing reports whether a button is tracked on an entity, dragging or not.
func (s State) IsPressing() bool {
	return s.Phase == PhasePressed || s.Phase == PhaseDragging
}

// EntityState returns the state of e.
func (s State) EntityState(e EntityID) EntityState {
	active, ok := s.ActiveEntity()
	if !ok || active != e {
		return EntityNone
	}
	switch s.Phase {
	case PhasePressed:
		return EntityPressed
	case PhaseDragging:
		return EntityDragged
	}
	return EntityHovered
}

// Validate checks the fields that must hold for s's Phase.
func (s State) Validate() error {
	switch s.Phase {
	case PhaseIdle, PhaseHovering:
		if !s.PendingRelease.Empty() {
			return fmt.Errorf("picking: %s state with pending buttons %s", s.Phase, s.PendingRelease)
		}
	case PhasePressed, PhaseDragging:
		if s.Button >= buttonCount {
			return fmt.Errorf("picking: %s state tracks unknown button %d", s.Phase, s.Button)
		}
		if !s.PendingRelease.Empty() {
			return fmt.Errorf("picking: %s state with pending buttons %s", s.Phase, s.PendingRelease)
		}
	case PhaseCanceled:
		if s.PendingRelease.Empty() {
			return fmt.Errorf("picking: canceled state with nothing pending")
		}
	default:
		return fmt.Errorf("picking: unknown phase %d", s.Phase)
	}
	return nil
}

func (s State) String() string {
	switch s.Phase {
	case PhaseHovering:
		return fmt.Sprintf("Hovering{%d}", s.Entity)
	case PhasePressed, PhaseDragging:
		return fmt.Sprintf("%s{%d, %s}", s.Phase, s.Entity, s.Button)
	case PhaseCanceled:
		return fmt.Sprintf("Canceled{%s}", s.PendingRelease)
	}
	return s.Phase.String()
}
