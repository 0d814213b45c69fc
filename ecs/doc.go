// Package ecs provides ECS adapters for bramble's interaction events.
//
// The primary adapter is [NewDonburiSink], which bridges routed interaction
// events (pointer, click, wheel, key, text, focus) into a [Donburi] world as
// typed events. Subscribe to [InteractionEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	ctx.SetEventSink(sink)
//
// [BindNode] attaches a node ID to an entity so systems can find the entity
// that an event's NodeID refers to.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
