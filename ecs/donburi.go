package ecs

import (
	"github.com/phanxgames/dissect/interceptors"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LayoutEventType is the Donburi event type for dissect trace events.
// Subscribe to this in your ECS systems to receive per-view measure,
// layout, and draw timings.
var LayoutEventType = events.NewEventType[interceptors.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a trace sink backed by a Donburi world. Trace
// events are published to LayoutEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) interceptors.Sink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Emit(e interceptors.Event) {
	LayoutEventType.Publish(s.world, e)
}
