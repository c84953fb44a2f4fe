// Package ecs provides ECS adapters for dissect's trace instrumentation.
//
// The primary adapter is [NewDonburiSink], which bridges trace events from
// an [interceptors.Trace] into a [Donburi] world as typed events.
// Subscribe to [LayoutEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	dissect.Deploy(ctx, interceptors.NewTrace(sink))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
