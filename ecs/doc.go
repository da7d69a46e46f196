// Package ecs provides ECS adapters for picking's interaction events.
//
// The primary adapter is [NewDonburiStore], which publishes every picking
// event (hover, press, click, drag, cancel) into a [Donburi] world as a typed
// event. Subscribe to [InteractionEventType] in your ECS systems to receive
// them. [ButtonFilter] lets entities declare which buttons may press them;
// [CollectFilters] turns those components into picking.Config.ButtonFilters.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	dispatcher.SetSink(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
