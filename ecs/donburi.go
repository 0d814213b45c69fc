package ecs

import (
	"github.com/phanxgames/bramble"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// InteractionEventType is the Donburi event type for bramble interaction events.
var InteractionEventType = events.NewEventType[bramble.InteractionEvent]()

// NodeRef is the component linking an entity to a widget node by ID.
type NodeRef struct {
	NodeID string
}

// NodeComponent stores a NodeRef on bound entities.
var NodeComponent = donburi.NewComponentType[NodeRef]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) bramble.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event bramble.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// BindNode creates an entity carrying a NodeRef for nodeID.
func BindNode(world donburi.World, nodeID string) donburi.Entity {
	e := world.Create(NodeComponent)
	NodeComponent.Set(world.Entry(e), &NodeRef{NodeID: nodeID})
	return e
}

// EntityFor returns the first entity bound to nodeID.
func EntityFor(world donburi.World, nodeID string) (donburi.Entity, bool) {
	var found donburi.Entity
	var ok bool
	donburi.NewQuery(filter.Contains(NodeComponent)).Each(world, func(entry *donburi.Entry) {
		if !ok && NodeComponent.Get(entry).NodeID == nodeID {
			found, ok = entry.Entity(), true
		}
	})
	return found, ok
}
