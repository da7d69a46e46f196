package picking

// PointerSample is the raw input for one frame.
type PointerSample struct {
	Position Vec2
	// Pressed and Released are the button transitions observed since the
	// previous frame; Held is the set of buttons down at sampling time.
	Pressed  ButtonSet
	Released ButtonSet
	Held     ButtonSet
	// OutOfBounds reports that the pointer is outside the window. Position
	// is ignored and the last known position is reused.
	OutOfBounds bool
	// Time is the host clock in seconds. It only feeds event durations.
	Time      float64
	Modifiers KeyModifiers
}

// frameInput is a PointerSample reduced to tracked buttons.
type frameInput struct {
	pos      Vec2
	pressed  ButtonSet
	released ButtonSet
	held     ButtonSet
	time     float64
	mods     KeyModifiers
}

func normalize(cfg Config, prev State, in PointerSample) frameInput {
	f := frameInput{
		pos:      in.Position,
		pressed:  in.Pressed.Intersect(cfg.TrackedButtons),
		released: in.Released.Intersect(cfg.TrackedButtons),
		time:     in.Time,
		mods:     in.Modifiers,
	}
	if in.OutOfBounds {
		f.pos = prev.Pointer
	}
	// A button pressed and released within one frame is not held.
	f.held = in.Held.Union(f.pressed.Without(f.released)).Intersect(cfg.TrackedButtons)
	return f
}

// Step computes the state and event batch that follow prev given this
// frame's input and hit list (nearest first). It is a pure function: the
// same arguments always produce the same result.
func Step(cfg Config, prev State, in PointerSample, hits []EntityID) (State, []Event) {
	return AppendStep(nil, cfg, prev, in, hits)
}

// AppendStep is Step appending the batch to dst, so a caller can reuse one
// buffer across frames.
func AppendStep(dst []Event, cfg Config, prev State, in PointerSample, hits []EntityID) (State, []Event) {
	f := normalize(cfg, prev, in)
	t := transition{cfg: cfg, prev: prev, in: f, out: dst}
	if len(hits) > 0 {
		t.nearest, t.hasNearest = hits[0], true
	}
	next := t.run()
	next.Pointer = f.pos
	return next, t.out
}

type transition struct {
	cfg        Config
	prev       State
	in         frameInput
	nearest    EntityID
	hasNearest bool
	out        []Event
}

func (t *transition) run() State {
	if next, ok := t.conflict(); ok {
		return next
	}
	switch t.prev.Phase {
	case PhaseCanceled:
		return t.resolveCancel()
	case PhasePressed, PhaseDragging:
		if t.releasedTracked() {
			return t.release()
		}
		return t.move()
	}
	if !t.in.pressed.Empty() && t.in.held.Without(t.in.pressed).Empty() {
		return t.press()
	}
	if t.in.held.Empty() {
		return t.hover()
	}
	// A button is held over empty space or over an entity that rejected
	// it. Nothing may become active until it is released, but a hover
	// still ends once its entity is no longer the nearest hit.
	if t.prev.Phase == PhaseHovering && (!t.hasNearest || t.nearest != t.prev.Entity) {
		t.exitHover()
		return Idle()
	}
	return t.prev
}

// conflict enters Canceled when more than one button is involved: several
// held, or a second button pressed while one is tracked. Buttons tapped
// within the frame are not held and do not conflict with each other.
func (t *transition) conflict() (State, bool) {
	if t.prev.Phase == PhaseCanceled {
		return State{}, false
	}
	multi := t.in.held.Len() > 1
	if t.prev.IsPressing() {
		other := t.in.pressed.Without(Buttons(t.prev.Button))
		multi = multi || !other.Empty()
	}
	if !multi {
		return State{}, false
	}

	if entity, ok := t.prev.ActiveEntity(); ok {
		kind := EventPointerCancel
		if t.prev.Phase == PhaseDragging {
			kind = EventDragCancel
		}
		ev := t.event(kind, entity)
		if t.prev.IsPressing() {
			ev.Button = t.prev.Button
			ev.Origin = t.prev.Origin
			ev.Duration = t.in.time - t.prev.PressTime
		}
		t.emit(ev)
	}
	if t.in.held.Empty() {
		return Idle(), true
	}
	return State{Phase: PhaseCanceled, PendingRelease: t.in.held}, true
}

// resolveCancel waits until no tracked button is held. Like the tracked
// button, a pending button that vanished from the held set without a
// release transition counts as released. Hover is not evaluated on the
// frame Canceled ends.
func (t *transition) resolveCancel() State {
	pending := t.in.held
	if pending.Empty() {
		return Idle()
	}
	return State{Phase: PhaseCanceled, PendingRelease: pending}
}

// releasedTracked reports whether the tracked button went up this frame. A
// button that vanished from the held set without a release transition
// counts as released.
func (t *transition) releasedTracked() bool {
	b := t.prev.Button
	return t.in.released.Has(b) || !t.in.held.Has(b)
}

func (t *transition) release() State {
	p := t.prev
	inside := t.hasNearest && t.nearest == p.Entity

	ev := t.event(EventPointerUp, p.Entity)
	ev.Button = p.Button
	ev.Origin = p.Origin
	ev.Duration = t.in.time - p.PressTime
	ev.Outside = !inside

	if p.Phase == PhaseDragging {
		ev.Type = EventDragEnd
		ev.Delta = t.in.pos.Sub(p.Last)
		t.emit(ev)
	} else {
		t.emit(ev)
		if inside || !t.cfg.ClickInsideOnly {
			ev.Type = EventClick
			t.emit(ev)
		}
	}

	if inside {
		return State{Phase: PhaseHovering, Entity: p.Entity}
	}
	return Idle()
}

// move handles pointer motion while the tracked button is held. The active
// entity never changes here, whatever the hit list says.
func (t *transition) move() State {
	next := t.prev
	pos := t.in.pos

	switch t.prev.Phase {
	case PhasePressed:
		threshold := t.cfg.DragThreshold
		if pos.Sub(next.Origin).LenSq() <= threshold*threshold {
			return next
		}
		next.Phase = PhaseDragging
		next.Last = pos

		ev := t.event(EventDragStart, next.Entity)
		ev.Button = next.Button
		ev.Origin = next.Origin
		ev.Delta = pos.Sub(next.Origin)
		t.emit(ev)
		ev.Type = EventDrag
		t.emit(ev)
	case PhaseDragging:
		if pos == next.Last {
			return next
		}
		ev := t.event(EventDrag, next.Entity)
		ev.Button = next.Button
		ev.Origin = next.Origin
		ev.Delta = pos.Sub(next.Last)
		t.emit(ev)
		next.Last = pos
	}
	return next
}

// press starts a new interaction from Idle or Hovering.
func (t *transition) press() State {
	button, _ := t.in.pressed.First()
	if !t.hasNearest {
		t.exitHover()
		return Idle()
	}
	if !t.cfg.accepts(t.nearest, button) {
		return t.hover()
	}
	if t.prev.Phase == PhaseHovering && t.prev.Entity != t.nearest {
		t.exitHover()
	}

	ev := t.event(EventPointerDown, t.nearest)
	ev.Button = button
	ev.Origin = t.in.pos
	t.emit(ev)

	return State{
		Phase:     PhasePressed,
		Entity:    t.nearest,
		Button:    button,
		Origin:    t.in.pos,
		Last:      t.in.pos,
		PressTime: t.in.time,
	}
}

// hover re-evaluates the hovered entity from the nearest hit.
func (t *transition) hover() State {
	if t.prev.Phase == PhaseHovering && t.hasNearest && t.prev.Entity == t.nearest {
		return t.prev
	}
	t.exitHover()
	if !t.hasNearest {
		return Idle()
	}
	t.emit(t.event(EventHoverEnter, t.nearest))
	return State{Phase: PhaseHovering, Entity: t.nearest}
}

func (t *transition) exitHover() {
	if t.prev.Phase == PhaseHovering {
		t.emit(t.event(EventHoverExit, t.prev.Entity))
	}
}

func (t *transition) event(kind EventType, entity EntityID) Event {
	return Event{
		Type:      kind,
		Entity:    entity,
		Position:  t.in.pos,
		Modifiers: t.in.mods,
	}
}

func (t *transition) emit(e Event) {
	t.out = append(t.out, e)
}
