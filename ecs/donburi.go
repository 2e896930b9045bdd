package ecs

import (
	tweenjump "github.com/jesuisjohan/3-tween-jump"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// MotionEventType is the Donburi event type for tweenjump motion events.
var MotionEventType = events.NewEventType[tweenjump.MotionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Motion events are published to MotionEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) tweenjump.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitMotionEvent(event tweenjump.MotionEvent) {
	MotionEventType.Publish(s.world, event)
}

// Phase is the component PhaseTracker keeps on one entity per jumping node.
type Phase struct {
	NodeID uint32
	Last   tweenjump.MotionEventType
	X, Y   float64
	Jumps  int // completed landings
}

// PhaseComponent is the Donburi component type holding a Phase.
var PhaseComponent = donburi.NewComponentType[Phase]()

// PhaseTracker mirrors motion events into Phase components.
type PhaseTracker struct {
	world    donburi.World
	entities map[uint32]donburi.Entity
}

// NewPhaseTracker subscribes a tracker to MotionEventType on world. Phases
// update when the world's events are processed.
func NewPhaseTracker(world donburi.World) *PhaseTracker {
	t := &PhaseTracker{world: world, entities: make(map[uint32]donburi.Entity)}
	MotionEventType.Subscribe(world, t.onMotion)
	return t
}

func (t *PhaseTracker) onMotion(w donburi.World, ev tweenjump.MotionEvent) {
	e, ok := t.entities[ev.NodeID]
	if !ok || !w.Valid(e) {
		e = w.Create(PhaseComponent)
		t.entities[ev.NodeID] = e
	}
	p := PhaseComponent.Get(w.Entry(e))
	p.NodeID = ev.NodeID
	p.Last = ev.Type
	p.X, p.Y = ev.X, ev.Y
	if ev.Type == tweenjump.MotionLand {
		p.Jumps++
	}
}

// Phase returns the tracked phase of the node with the given ID.
func (t *PhaseTracker) Phase(nodeID uint32) (Phase, bool) {
	e, ok := t.entities[nodeID]
	if !ok || !t.world.Valid(e) {
		return Phase{}, false
	}
	return *PhaseComponent.Get(t.world.Entry(e)), true
}
