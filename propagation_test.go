package picking

import "testing"

// tree:
//
//	1
//	├── 2
//	│   ├── 4
//	│   │   └── 6
//	│   └── 5
//	└── 3
func testHierarchy() MapHierarchy {
	return MapHierarchy{2: 1, 3: 1, 4: 2, 5: 2, 6: 4}
}

func TestPropagator_Equivalent(t *testing.T) {
	tests := []struct {
		name   string
		rule   Propagation
		active EntityID
		yes    []EntityID
		no     []EntityID
	}{
		{"down", Propagation{}, 2, []EntityID{2, 4, 5, 6}, []EntityID{1, 3}},
		{"none", Propagation{Mode: NoPropagation}, 2, []EntityID{2}, []EntityID{1, 3, 4, 5, 6}},
		{"up one", Propagation{Mode: PropagateUp, Levels: 1}, 4, []EntityID{4, 6, 2, 5}, []EntityID{1, 3}},
		{"up two", Propagation{Mode: PropagateUp, Levels: 2}, 4, []EntityID{1, 2, 3, 5, 6}, nil},
		{"up past root", Propagation{Mode: PropagateUp, Levels: 9}, 5, []EntityID{1, 3, 6}, nil},
		{"and up", Propagation{Mode: AndPropagateUp, Levels: 1}, 4, []EntityID{4, 6, 2}, []EntityID{1, 3, 5}},
		{"and up two", Propagation{Mode: AndPropagateUp, Levels: 2}, 4, []EntityID{1, 2, 6}, []EntityID{3, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPropagator(testHierarchy())
			p.SetRule(tt.active, tt.rule)
			for _, e := range tt.yes {
				if !p.Equivalent(tt.active, e) {
					t.Errorf("Equivalent(%d, %d) = false, want true", tt.active, e)
				}
			}
			for _, e := range tt.no {
				if p.Equivalent(tt.active, e) {
					t.Errorf("Equivalent(%d, %d) = true, want false", tt.active, e)
				}
			}
		})
	}
}

func TestPropagator_CycleTerminates(t *testing.T) {
	p := NewPropagator(MapHierarchy{1: 2, 2: 1})
	if p.Equivalent(1, 3) {
		t.Error("3 is unrelated")
	}
	p.SetRule(1, Propagation{Mode: PropagateUp, Levels: 1000})
	_ = p.Equivalent(1, 3)
}

func TestPropagator_NilHierarchy(t *testing.T) {
	var p Propagator
	if !p.Equivalent(1, 1) || p.Equivalent(1, 2) {
		t.Error("without a hierarchy only the entity itself is equivalent")
	}
	p.SetRule(1, Propagation{Mode: PropagateUp, Levels: 2})
	if p.Equivalent(1, 2) {
		t.Error("no parents to propagate to")
	}
}

func TestPropagator_StateOf(t *testing.T) {
	p := NewPropagator(testHierarchy())
	s := State{Phase: PhaseDragging, Entity: 2, Button: ButtonLeft}
	if got := p.StateOf(s, 6); got != EntityDragged {
		t.Errorf("StateOf(6) = %d, want dragged", got)
	}
	if got := p.StateOf(s, 3); got != EntityNone {
		t.Errorf("StateOf(3) = %d, want none", got)
	}
	if got := p.StateOf(Idle(), 2); got != EntityNone {
		t.Errorf("StateOf idle = %d", got)
	}
}

func TestPropagator_TransitionOf(t *testing.T) {
	p := NewPropagator(testHierarchy())
	batch := []Event{
		{Type: EventHoverExit, Entity: 3},
		{Type: EventHoverEnter, Entity: 4},
	}
	if e, ok := p.TransitionOf(batch, 6); !ok || e.Type != EventHoverEnter {
		t.Errorf("TransitionOf(6) = %v, %v", e, ok)
	}
	if _, ok := p.TransitionOf(batch, 5); ok {
		t.Error("5 is not under 4 or 3")
	}
}
