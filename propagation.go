package picking

// Hierarchy reports the parent of an entity.
type Hierarchy interface {
	Parent(e EntityID) (EntityID, bool)
}

// MapHierarchy is a Hierarchy backed by a child→parent map.
type MapHierarchy map[EntityID]EntityID

func (h MapHierarchy) Parent(e EntityID) (EntityID, bool) {
	p, ok := h[e]
	return p, ok
}

// maxHierarchyDepth bounds every parent walk so a cyclic hierarchy cannot
// hang the frame.
const maxHierarchyDepth = 64

// PropagationMode selects which related entities share an active entity's
// state and events.
type PropagationMode uint8

const (
	PropagateDown  PropagationMode = iota // descendants of the active entity (default)
	PropagateUp                           // Levels ancestors and all their descendants
	AndPropagateUp                        // descendants of the active entity, plus Levels ancestors
	NoPropagation                         // the active entity only
)

// Propagation is the rule attached to an active entity.
type Propagation struct {
	Mode   PropagationMode
	Levels int
}

// Propagator decides which entities count as active when another entity is,
// for hosts whose pickable entities form a tree (a button and its label, a
// window and its title bar). It only affects queries and dispatch; the state
// machine itself always tracks a single entity.
type Propagator struct {
	Hierarchy Hierarchy
	// Rules holds per-entity propagation. Entities without a rule use
	// PropagateDown.
	Rules map[EntityID]Propagation
}

// NewPropagator returns a propagator over h with no rules.
func NewPropagator(h Hierarchy) *Propagator {
	return &Propagator{Hierarchy: h, Rules: make(map[EntityID]Propagation)}
}

// SetRule attaches a propagation rule to e.
func (p *Propagator) SetRule(e EntityID, rule Propagation) {
	if p.Rules == nil {
		p.Rules = make(map[EntityID]Propagation)
	}
	p.Rules[e] = rule
}

func (p *Propagator) parent(e EntityID) (EntityID, bool) {
	if p.Hierarchy == nil {
		return 0, false
	}
	return p.Hierarchy.Parent(e)
}

// isDescendant reports whether to is a strict descendant of ancestor.
func (p *Propagator) isDescendant(to, ancestor EntityID) bool {
	cur := to
	for range maxHierarchyDepth {
		parent, ok := p.parent(cur)
		if !ok {
			return false
		}
		if parent == ancestor {
			return true
		}
		cur = parent
	}
	return false
}

// Equivalent reports whether state and events of active also apply to to.
func (p *Propagator) Equivalent(active, to EntityID) bool {
	if active == to {
		return true
	}
	rule := p.Rules[active]
	switch rule.Mode {
	case NoPropagation:
		return false
	case PropagateUp:
		root := active
		for range rule.Levels {
			parent, ok := p.parent(root)
			if !ok {
				break
			}
			root = parent
		}
		return to == root || p.isDescendant(to, active) || p.isDescendant(to, root)
	case AndPropagateUp:
		if p.isDescendant(to, active) {
			return true
		}
		cur := active
		for range rule.Levels {
			parent, ok := p.parent(cur)
			if !ok {
				return false
			}
			if parent == to {
				return true
			}
			cur = parent
		}
		return false
	}
	return p.isDescendant(to, active)
}

// StateOf returns the state of e in s, treating entities equivalent to the
// active one as sharing its state.
func (p *Propagator) StateOf(s State, e EntityID) EntityState {
	active, ok := s.ActiveEntity()
	if !ok || !p.Equivalent(active, e) {
		return EntityNone
	}
	return s.EntityState(active)
}

// TransitionOf returns the first event in batch whose target is equivalent
// to e.
func (p *Propagator) TransitionOf(batch []Event, e EntityID) (Event, bool) {
	for _, ev := range batch {
		if p.Equivalent(ev.Entity, e) {
			return ev, true
		}
	}
	return Event{}, false
}
