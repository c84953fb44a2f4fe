package interceptors_test

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/dissect"
	"github.com/phanxgames/dissect/interceptors"
	"github.com/phanxgames/dissect/view"
)

func TestTraceEmitsEventsInCompletionOrder(t *testing.T) {
	var events []interceptors.Event
	sink := interceptors.SinkFunc(func(e interceptors.Event) {
		events = append(events, e)
	})

	ctx := view.NewContext(nil)
	dissect.Deploy(ctx, interceptors.NewTrace(sink))

	root := mustInflate(t, ctx, `{"type": "Box", "attrs": {"id": 7, "width": 40, "height": 40}}`)
	measureAndLayout(root, 40, 40)
	root.Draw(ebiten.NewImage(40, 40))
	root.RequestLayout()

	// Draw completes after the nested OnDraw it triggers, so its event
	// comes later.
	want := []interceptors.EventKind{
		interceptors.EventMeasure,
		interceptors.EventLayout,
		interceptors.EventOnDraw,
		interceptors.EventDraw,
		interceptors.EventRequestLayout,
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i, e := range events {
		if e.Kind != want[i] {
			t.Errorf("event %d kind = %v, want %v", i, e.Kind, want[i])
		}
		if e.ViewID != 7 {
			t.Errorf("event %d view id = %d, want 7", i, e.ViewID)
		}
		if e.Duration < 0 {
			t.Errorf("event %d has negative duration", i)
		}
	}
}

func TestTraceCoversWholeTree(t *testing.T) {
	perView := make(map[int]int)
	sink := interceptors.SinkFunc(func(e interceptors.Event) {
		if e.Kind == interceptors.EventMeasure {
			perView[e.ViewID]++
		}
	})

	ctx := view.NewContext(nil)
	dissect.Deploy(ctx, interceptors.NewTrace(sink))

	root := mustInflate(t, ctx, boundsLayout)
	measureAndLayout(root, 48, 48)

	for _, id := range []int{1, 2} {
		if got := perView[id]; got != 1 {
			t.Errorf("view id %d emitted %d measure events, want 1", id, got)
		}
	}
}

func TestTracePanicsOnNilSink(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a nil sink")
		}
	}()
	interceptors.NewTrace(nil)
}

func TestEventKindString(t *testing.T) {
	tests := []struct {
		kind interceptors.EventKind
		want string
	}{
		{interceptors.EventMeasure, "measure"},
		{interceptors.EventLayout, "layout"},
		{interceptors.EventDraw, "draw"},
		{interceptors.EventOnDraw, "ondraw"},
		{interceptors.EventRequestLayout, "requestLayout"},
		{interceptors.EventKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("EventKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
