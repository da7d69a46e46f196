package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/picking"
)

// InteractionEventType is the Donburi event type for picking events.
var InteractionEventType = events.NewEventType[picking.Event]()

// Pickable links a Donburi entity to the picking.EntityID the hit source
// reports for it.
type Pickable struct {
	ID picking.EntityID
}

// PickableComponent stores Pickable on Donburi entities.
var PickableComponent = donburi.NewComponentType[Pickable]()

// ButtonFilter restricts which buttons can press the entity.
type ButtonFilter struct {
	Buttons picking.ButtonSet
}

// ButtonFilterComponent stores ButtonFilter on Donburi entities.
var ButtonFilterComponent = donburi.NewComponentType[ButtonFilter]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventSink backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) picking.EventSink {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event picking.Event) {
	InteractionEventType.Publish(s.world, event)
}

// CollectFilters builds a ButtonFilters map from every entity carrying both
// PickableComponent and ButtonFilterComponent.
func CollectFilters(world donburi.World) map[picking.EntityID]picking.ButtonSet {
	filters := make(map[picking.EntityID]picking.ButtonSet)
	query := donburi.NewQuery(filter.Contains(PickableComponent, ButtonFilterComponent))
	query.Each(world, func(entry *donburi.Entry) {
		id := PickableComponent.Get(entry).ID
		filters[id] = ButtonFilterComponent.Get(entry).Buttons
	})
	return filters
}
