// Package picking turns per-frame pointer input and a ranked hit list into
// a single, consistent stream of interaction events and one authoritative
// interaction state.
//
// The core is [Step], a pure function of the previous [State], this frame's
// [PointerSample] and the entities under the pointer, nearest first. It
// returns the next state and the frame's ordered event batch. Everything
// else in the package is plumbing around it.
//
// # Quick start
//
// [Machine] owns the state and calls Step once per frame:
//
//	m := picking.NewMachine(picking.DefaultConfig())
//
//	// every tick, inside the host update loop:
//	for _, e := range m.Update(sample, hits) {
//		switch e.Type {
//		case picking.EventClick:
//			fmt.Println("clicked", e.Entity)
//		case picking.EventDrag:
//			move(e.Entity, e.Delta)
//		}
//	}
//
// [Driver] wires a [Sampler], a [HitSource] and an [EventSink] around a
// machine so the host only calls [Driver.Tick]. The ebitenhost subpackage
// provides an Ebitengine sampler and game loop, and the ecs subpackage
// publishes events into a Donburi world.
//
// # Rules
//
// Only one entity is active at a time (hovered, pressed or dragged) and
// only one button is tracked. A second button cancels the interaction
// ([EventPointerCancel] or [EventDragCancel]) and the machine then waits in
// [PhaseCanceled] until every button is up. While a button is held no other
// entity can become hovered. Each entity receives at most one event per
// frame; [EventPointerUp] followed by [EventClick], and [EventDragStart]
// followed by its first [EventDrag], count as one.
//
// # Callbacks
//
// The machine never calls back into the host. A [Dispatcher] fans a batch
// out to subscribed callbacks after the frame is complete:
//
//	d := picking.NewDispatcher()
//	d.OnEntity(okButton, picking.EventClick, func(e picking.Event) { submit() })
//	d.Dispatch(m.Update(sample, hits))
//
// With a [Propagator] attached, per-entity callbacks also fire for events
// of related entities in a [Hierarchy].
//
// # Configuration
//
// [Config] can be loaded from YAML with [LoadConfig] or [LoadConfigFile]
// and reloaded on change with [WatchConfig]:
//
//	drag_threshold: 6
//	tracked_buttons: [left, right]
//	click_inside_only: true
//
// # Testing
//
// [Injector] queues synthetic frames and [LoadScript] replays a JSON input
// script, both usable as the Sampler of a Driver.
package picking
