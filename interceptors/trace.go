package interceptors

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/dissect"
	"github.com/phanxgames/dissect/view"
)

// EventKind identifies which intercepted operation an Event reports.
type EventKind uint8

const (
	EventMeasure EventKind = iota
	EventLayout
	EventDraw
	EventOnDraw
	EventRequestLayout
)

func (k EventKind) String() string {
	switch k {
	case EventMeasure:
		return "measure"
	case EventLayout:
		return "layout"
	case EventDraw:
		return "draw"
	case EventOnDraw:
		return "ondraw"
	case EventRequestLayout:
		return "requestLayout"
	default:
		return "unknown"
	}
}

// Event is one traced view operation.
type Event struct {
	Kind     EventKind
	ViewID   int
	Duration time.Duration
}

// Sink receives trace events. Emit is called synchronously from the
// construction thread; slow sinks slow the traversal down.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

func (f SinkFunc) Emit(e Event) { f(e) }

// Trace forwards every call to the original behavior and reports each
// operation's wall-clock duration to a Sink. Useful for seeing where a
// layout traversal spends its time, or for feeding instrumentation into
// an ECS world (see the ecs subpackage).
type Trace struct {
	dissect.BaseInterceptor

	sink Sink
}

// NewTrace creates the interceptor. sink must not be nil.
func NewTrace(sink Sink) *Trace {
	if sink == nil {
		panic("interceptors: trace sink must not be nil")
	}
	return &Trace{sink: sink}
}

func (t *Trace) OnMeasure(v view.View, widthSpec, heightSpec int) {
	start := time.Now()
	dissect.SuperOnMeasure(v, widthSpec, heightSpec)
	t.sink.Emit(Event{Kind: EventMeasure, ViewID: v.ID(), Duration: time.Since(start)})
}

func (t *Trace) OnLayout(v view.View, changed bool, left, top, right, bottom int) {
	start := time.Now()
	dissect.SuperOnLayout(v, changed, left, top, right, bottom)
	t.sink.Emit(Event{Kind: EventLayout, ViewID: v.ID(), Duration: time.Since(start)})
}

func (t *Trace) Draw(v view.View, canvas *ebiten.Image) {
	start := time.Now()
	dissect.SuperDraw(v, canvas)
	t.sink.Emit(Event{Kind: EventDraw, ViewID: v.ID(), Duration: time.Since(start)})
}

func (t *Trace) OnDraw(v view.View, canvas *ebiten.Image) {
	start := time.Now()
	dissect.SuperOnDraw(v, canvas)
	t.sink.Emit(Event{Kind: EventOnDraw, ViewID: v.ID(), Duration: time.Since(start)})
}

func (t *Trace) RequestLayout(v view.View) {
	start := time.Now()
	dissect.SuperRequestLayout(v)
	t.sink.Emit(Event{Kind: EventRequestLayout, ViewID: v.ID(), Duration: time.Since(start)})
}
