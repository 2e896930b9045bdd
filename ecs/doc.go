// Package ecs provides ECS adapters for tweenjump's motion events.
//
// The primary adapter is [NewDonburiStore], which bridges motion events
// (ascend, peak, land, slide-end, aborted) into a [Donburi] world as typed
// events. Subscribe to [MotionEventType] in your ECS systems to receive them,
// or attach a [PhaseTracker] to keep the latest phase of every jumping node
// as a component.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	stage.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
