package picking

import "log/slog"

// EventSink receives the events of each frame in batch order.
type EventSink interface {
	EmitEvent(event Event)
}

// --- Handler registry ---

type handler struct {
	id uint32
	fn func(Event)
}

type entityHandler struct {
	id     uint32
	entity EntityID
	fn     func(Event)
}

type handlerRegistry struct {
	byType   [eventTypeCount][]handler
	all      []handler
	byEntity [eventTypeCount][]entityHandler
	nextID   uint32
}

type handleKind uint8

const (
	handleType handleKind = iota
	handleAny
	handleEntity
)

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	kind  handleKind
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case handleType:
		h.reg.byType[h.event] = removeHandler(h.reg.byType[h.event], h.id)
	case handleAny:
		h.reg.all = removeHandler(h.reg.all, h.id)
	case handleEntity:
		h.reg.byEntity[h.event] = removeEntityHandler(h.reg.byEntity[h.event], h.id)
	}
}

func removeHandler(s []handler, id uint32) []handler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeEntityHandler(s []entityHandler, id uint32) []entityHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = entityHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// Dispatcher delivers event batches to registered callbacks. For each event
// it calls the any-event callbacks, then the callbacks for the event type,
// then the per-entity callbacks, then forwards the event to the sink.
//
// Callbacks run synchronously on the caller's goroutine, after the machine
// has finished the frame, so they may read the machine's state freely.
type Dispatcher struct {
	handlers   handlerRegistry
	sink       EventSink
	propagator *Propagator
	logger     *slog.Logger
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{logger: discardLogger}
}

// SetSink sets an optional sink every dispatched event is forwarded to.
func (d *Dispatcher) SetSink(sink EventSink) {
	d.sink = sink
}

// SetPropagator makes per-entity callbacks also fire for events targeting
// entities the propagator considers equivalent. A nil propagator restores
// exact matching.
func (d *Dispatcher) SetPropagator(p *Propagator) {
	d.propagator = p
}

// SetLogger sets the logger used to report dispatch activity at debug level.
func (d *Dispatcher) SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger
	}
	d.logger = l
}

func (d *Dispatcher) nextID() uint32 {
	d.handlers.nextID++
	return d.handlers.nextID
}

// On registers fn for every event of type t.
func (d *Dispatcher) On(t EventType, fn func(Event)) CallbackHandle {
	if t >= eventTypeCount {
		return CallbackHandle{}
	}
	id := d.nextID()
	d.handlers.byType[t] = append(d.handlers.byType[t], handler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, kind: handleType, event: t}
}

// OnAny registers fn for every event.
func (d *Dispatcher) OnAny(fn func(Event)) CallbackHandle {
	id := d.nextID()
	d.handlers.all = append(d.handlers.all, handler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, kind: handleAny}
}

// OnEntity registers fn for events of type t targeting entity.
func (d *Dispatcher) OnEntity(entity EntityID, t EventType, fn func(Event)) CallbackHandle {
	if t >= eventTypeCount {
		return CallbackHandle{}
	}
	id := d.nextID()
	d.handlers.byEntity[t] = append(d.handlers.byEntity[t], entityHandler{id: id, entity: entity, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, kind: handleEntity, event: t}
}

// OnHoverEnter registers a callback for hover enter events.
func (d *Dispatcher) OnHoverEnter(fn func(Event)) CallbackHandle { return d.On(EventHoverEnter, fn) }

// OnHoverExit registers a callback for hover exit events.
func (d *Dispatcher) OnHoverExit(fn func(Event)) CallbackHandle { return d.On(EventHoverExit, fn) }

// OnPointerDown registers a callback for pointer down events.
func (d *Dispatcher) OnPointerDown(fn func(Event)) CallbackHandle { return d.On(EventPointerDown, fn) }

// OnPointerUp registers a callback for pointer up events.
func (d *Dispatcher) OnPointerUp(fn func(Event)) CallbackHandle { return d.On(EventPointerUp, fn) }

// OnClick registers a callback for click events.
func (d *Dispatcher) OnClick(fn func(Event)) CallbackHandle { return d.On(EventClick, fn) }

// OnDragStart registers a callback for drag start events.
func (d *Dispatcher) OnDragStart(fn func(Event)) CallbackHandle { return d.On(EventDragStart, fn) }

// OnDrag registers a callback for drag events.
func (d *Dispatcher) OnDrag(fn func(Event)) CallbackHandle { return d.On(EventDrag, fn) }

// OnDragEnd registers a callback for drag end events.
func (d *Dispatcher) OnDragEnd(fn func(Event)) CallbackHandle { return d.On(EventDragEnd, fn) }

// Dispatch delivers batch in order.
func (d *Dispatcher) Dispatch(batch []Event) {
	for _, e := range batch {
		d.dispatch(e)
	}
}

func (d *Dispatcher) dispatch(e Event) {
	if e.Type >= eventTypeCount {
		return
	}
	d.logger.Debug("picking: dispatch",
		slog.String("event", e.Type.String()), slog.Uint64("entity", uint64(e.Entity)))

	for _, h := range d.handlers.all {
		h.fn(e)
	}
	for _, h := range d.handlers.byType[e.Type] {
		h.fn(e)
	}
	for _, h := range d.handlers.byEntity[e.Type] {
		if h.entity == e.Entity || (d.propagator != nil && d.propagator.Equivalent(e.Entity, h.entity)) {
			h.fn(e)
		}
	}
	if d.sink != nil {
		d.sink.EmitEvent(e)
	}
}

// EmitEvent makes a Dispatcher usable as the sink of another dispatcher or
// of a Driver.
func (d *Dispatcher) EmitEvent(e Event) { d.dispatch(e) }
