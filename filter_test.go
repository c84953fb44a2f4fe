package dissect

import (
	"testing"

	"github.com/phanxgames/dissect/view"
)

// acceptAll and rejectAll are fixed-outcome filters for composition tests.
type fixedFilter struct {
	accept bool
	calls  int
}

func (f *fixedFilter) ShouldIntercept(ctx *view.Context, parent view.View, name string, attrs view.AttributeSet) bool {
	f.calls++
	return f.accept
}

func TestViewIDFilter(t *testing.T) {
	f := NewViewID(42, 77)
	tests := []struct {
		name   string
		attrs  view.AttributeSet
		expect bool
	}{
		{"matching id", view.AttributeSet{"id": 42.0}, true},
		{"second id", view.AttributeSet{"id": 77.0}, true},
		{"other id", view.AttributeSet{"id": 43.0}, false},
		{"absent id never matches", view.AttributeSet{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.ShouldIntercept(nil, nil, "Box", tt.attrs)
			if got != tt.expect {
				t.Errorf("ShouldIntercept = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestParentIDFilter(t *testing.T) {
	ctx := view.NewContext(nil)
	parent := view.NewFrame(ctx, view.AttributeSet{"id": 7.0})

	f := NewParentID(7)
	if !f.ShouldIntercept(ctx, parent, "Box", view.AttributeSet{}) {
		t.Error("matching parent rejected")
	}
	if f.ShouldIntercept(ctx, nil, "Box", view.AttributeSet{}) {
		t.Error("nil parent matched")
	}
	other := view.NewFrame(ctx, view.AttributeSet{"id": 8.0})
	if f.ShouldIntercept(ctx, other, "Box", view.AttributeSet{}) {
		t.Error("non-matching parent matched")
	}
}

func TestClassNameFilter(t *testing.T) {
	f := NewClassName("Box", "Overlay")
	tests := []struct {
		name   string
		typ    string
		expect bool
	}{
		{"simple name", "Box", true},
		{"namespaced name", "internal.Overlay", true},
		{"deeply namespaced", "a.b.c.Box", true},
		{"no match", "Frame", false},
		{"namespace is ignored for matching", "Box.Frame", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.ShouldIntercept(nil, nil, tt.typ, view.AttributeSet{})
			if got != tt.expect {
				t.Errorf("ShouldIntercept(%q) = %v, want %v", tt.typ, got, tt.expect)
			}
		})
	}
}

func TestComposeANDSemantics(t *testing.T) {
	tests := []struct {
		name   string
		f1, f2 bool
		expect bool
	}{
		{"both accept", true, true, true},
		{"first rejects", false, true, false},
		{"second rejects", true, false, false},
		{"both reject", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCompose(&fixedFilter{accept: tt.f1}, &fixedFilter{accept: tt.f2})
			got := c.ShouldIntercept(nil, nil, "Box", view.AttributeSet{})
			if got != tt.expect {
				t.Errorf("Compose = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestComposeShortCircuits(t *testing.T) {
	first := &fixedFilter{accept: false}
	second := &fixedFilter{accept: true}
	c := NewCompose(first, second)

	if c.ShouldIntercept(nil, nil, "Box", view.AttributeSet{}) {
		t.Fatal("compose accepted despite rejection")
	}
	if first.calls != 1 {
		t.Errorf("first filter consulted %d times, want 1", first.calls)
	}
	if second.calls != 0 {
		t.Errorf("second filter consulted after rejection (%d calls)", second.calls)
	}
}

func TestComposeEmptyAcceptsAll(t *testing.T) {
	if !NewCompose().ShouldIntercept(nil, nil, "Box", view.AttributeSet{}) {
		t.Error("empty compose rejected")
	}
}
