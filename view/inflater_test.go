package view

import (
	"strings"
	"testing"
)

const sampleLayout = `{
	"type": "Frame",
	"attrs": {"id": 1, "padding": 8},
	"children": [
		{"type": "Box", "attrs": {"id": 2, "width": 40, "height": 40, "color": "#3366FF"}},
		{"type": "Label", "attrs": {"id": 3, "text": "hello"}}
	]
}`

func TestInflateBuildsTree(t *testing.T) {
	ctx := NewContext(nil)
	root, err := ctx.Inflater().Inflate([]byte(sampleLayout))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, ok := root.(*Frame)
	if !ok {
		t.Fatalf("root is %T, want *Frame", root)
	}
	if f.ID() != 1 || f.Padding != 8 {
		t.Errorf("root id=%d padding=%d, want 1 8", f.ID(), f.Padding)
	}
	if f.ChildCount() != 2 {
		t.Fatalf("expected 2 children, got %d", f.ChildCount())
	}

	box, ok := f.ChildAt(0).(*Box)
	if !ok || box.ID() != 2 || box.PreferredWidth != 40 {
		t.Errorf("child 0: %T id=%d", f.ChildAt(0), f.ChildAt(0).ID())
	}
	if box.Parent() != f {
		t.Error("child 0 parent not set")
	}

	label, ok := f.ChildAt(1).(*Label)
	if !ok || label.Text != "hello" {
		t.Errorf("child 1: %T", f.ChildAt(1))
	}
}

func TestInflateInvalidJSON(t *testing.T) {
	ctx := NewContext(nil)
	if _, err := ctx.Inflater().Inflate([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestInflateUnknownType(t *testing.T) {
	ctx := NewContext(nil)
	_, err := ctx.Inflater().Inflate([]byte(`{"type": "Gizmo"}`))
	if err == nil || !strings.Contains(err.Error(), "Gizmo") {
		t.Errorf("expected unknown-type error naming the type, got %v", err)
	}
}

func TestInflateMissingType(t *testing.T) {
	ctx := NewContext(nil)
	if _, err := ctx.Inflater().Inflate([]byte(`{"attrs": {"id": 1}}`)); err == nil {
		t.Error("expected error for node without type")
	}
}

func TestInflateChildrenOnLeafFails(t *testing.T) {
	ctx := NewContext(nil)
	layout := `{"type": "Box", "children": [{"type": "Box"}]}`
	if _, err := ctx.Inflater().Inflate([]byte(layout)); err == nil {
		t.Error("expected error for children on a leaf type")
	}
}

// --- Factory hook ---

type markerFactory struct {
	seen []string
}

func (m *markerFactory) CreateView(parent View, name string, ctx *Context, attrs AttributeSet) View {
	m.seen = append(m.seen, name)
	if name == "Box" {
		// Substitute boxes with labels.
		return NewLabel(ctx, AttributeSet{"text": "substituted"})
	}
	return nil
}

func TestFactorySubstitutes(t *testing.T) {
	ctx := NewContext(nil)
	mf := &markerFactory{}
	ctx.Inflater().SetFactory(mf)

	root, err := ctx.Inflater().Inflate([]byte(sampleLayout))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f := root.(*Frame)
	if _, ok := f.ChildAt(0).(*Label); !ok {
		t.Errorf("factory substitution ignored, child 0 is %T", f.ChildAt(0))
	}
	// The factory sees every node, including ones it declines.
	if len(mf.seen) != 3 {
		t.Errorf("factory consulted %d times, want 3 (%v)", len(mf.seen), mf.seen)
	}
}

func TestSetFactoryTwicePanics(t *testing.T) {
	ctx := NewContext(nil)
	ctx.Inflater().SetFactory(&markerFactory{})
	defer func() {
		if recover() == nil {
			t.Error("expected panic installing a second factory")
		}
	}()
	ctx.Inflater().SetFactory(&markerFactory{})
}

// --- Stub deferral ---

const stubLayout = `{
	"type": "Frame",
	"attrs": {"id": 1},
	"children": [
		{"type": "Stub", "attrs": {"id": 9}, "children": [
			{"type": "Box", "attrs": {"id": 10, "width": 32, "height": 32}}
		]}
	]
}`

func TestStubDefersInflation(t *testing.T) {
	ctx := NewContext(nil)
	root, err := ctx.Inflater().Inflate([]byte(stubLayout))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f := root.(*Frame)

	stub, ok := f.ChildAt(0).(*Stub)
	if !ok {
		t.Fatalf("child is %T, want *Stub", f.ChildAt(0))
	}

	// Deferred content occupies no space before inflation.
	stub.Measure(MakeMeasureSpec(100, AtMost), MakeMeasureSpec(100, AtMost))
	if stub.MeasuredWidth() != 0 || stub.MeasuredHeight() != 0 {
		t.Error("stub measured non-zero before inflation")
	}

	inflated, err := stub.InflateNow()
	if err != nil {
		t.Fatalf("InflateNow: %v", err)
	}
	box, ok := inflated.(*Box)
	if !ok || box.ID() != 10 {
		t.Fatalf("inflated %T id=%d, want *Box id=10", inflated, inflated.ID())
	}
	if f.ChildAt(0) != inflated {
		t.Error("stub was not replaced in its parent")
	}
	if box.Parent() != f {
		t.Error("inflated view's parent not set")
	}
}

func TestStubWithoutContentPanics(t *testing.T) {
	ctx := NewContext(nil)
	s := NewStub(ctx, AttributeSet{}).(*Stub)
	defer func() {
		if recover() == nil {
			t.Error("expected panic inflating an empty stub")
		}
	}()
	_, _ = s.InflateNow()
}
