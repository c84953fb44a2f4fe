package view

import (
	"encoding/json"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Built-in widget set. Deliberately small: enough to build real layouts
// and exercise the measure/layout/draw pipeline, in the spirit of a host
// toolkit rather than a complete one.

// --- Frame ---

// Frame is a group that sizes itself to its largest child plus padding and
// stacks children at its padded top-left corner.
type Frame struct {
	GroupBase
	Padding int
}

// NewFrame constructs a Frame. Recognized attributes: "padding", "color".
func NewFrame(ctx *Context, attrs AttributeSet) View {
	f := &Frame{Padding: attrs.Int("padding", 0)}
	f.Init(f, ctx, attrs)
	f.Background = attrs.Color("color", Color{})
	return f
}

func (f *Frame) OnMeasure(widthSpec, heightSpec int) {
	maxW, maxH := 0, 0
	cw := childSpec(widthSpec, f.Padding)
	ch := childSpec(heightSpec, f.Padding)
	for i := 0; i < f.ChildCount(); i++ {
		child := f.ChildAt(i)
		child.Measure(cw, ch)
		if w := child.Base().MeasuredWidth(); w > maxW {
			maxW = w
		}
		if h := child.Base().MeasuredHeight(); h > maxH {
			maxH = h
		}
	}
	f.SetMeasuredDimension(
		ResolveSize(maxW+2*f.Padding, widthSpec),
		ResolveSize(maxH+2*f.Padding, heightSpec),
	)
}

func (f *Frame) OnLayout(changed bool, left, top, right, bottom int) {
	for i := 0; i < f.ChildCount(); i++ {
		child := f.ChildAt(i)
		cb := child.Base()
		child.Layout(f.Padding, f.Padding,
			f.Padding+cb.MeasuredWidth(), f.Padding+cb.MeasuredHeight())
	}
}

// childSpec derives the measure spec handed to children from the parent's
// spec minus padding.
func childSpec(spec, padding int) int {
	switch SpecModeOf(spec) {
	case Exactly, AtMost:
		size := SpecSize(spec) - 2*padding
		if size < 0 {
			size = 0
		}
		return MakeMeasureSpec(size, AtMost)
	default:
		return MakeMeasureSpec(0, Unspecified)
	}
}

// --- Column ---

// Column is a group that stacks children vertically, separated by Spacing.
type Column struct {
	GroupBase
	Spacing int
}

// NewColumn constructs a Column. Recognized attributes: "spacing", "color".
func NewColumn(ctx *Context, attrs AttributeSet) View {
	c := &Column{Spacing: attrs.Int("spacing", 0)}
	c.Init(c, ctx, attrs)
	c.Background = attrs.Color("color", Color{})
	return c
}

func (c *Column) OnMeasure(widthSpec, heightSpec int) {
	maxW, totalH := 0, 0
	cw := childSpec(widthSpec, 0)
	ch := MakeMeasureSpec(0, Unspecified)
	for i := 0; i < c.ChildCount(); i++ {
		child := c.ChildAt(i)
		child.Measure(cw, ch)
		if w := child.Base().MeasuredWidth(); w > maxW {
			maxW = w
		}
		totalH += child.Base().MeasuredHeight()
		if i > 0 {
			totalH += c.Spacing
		}
	}
	c.SetMeasuredDimension(
		ResolveSize(maxW, widthSpec),
		ResolveSize(totalH, heightSpec),
	)
}

func (c *Column) OnLayout(changed bool, left, top, right, bottom int) {
	y := 0
	for i := 0; i < c.ChildCount(); i++ {
		child := c.ChildAt(i)
		cb := child.Base()
		child.Layout(0, y, cb.MeasuredWidth(), y+cb.MeasuredHeight())
		y += cb.MeasuredHeight() + c.Spacing
	}
}

// --- Box ---

const defaultBoxSize = 48

// Box is a solid-color leaf with a fixed or spec-driven size.
type Box struct {
	BaseView
	PreferredWidth  int
	PreferredHeight int
}

// NewBox constructs a Box. Recognized attributes: "width", "height",
// "color".
func NewBox(ctx *Context, attrs AttributeSet) View {
	b := &Box{
		PreferredWidth:  attrs.Int("width", defaultBoxSize),
		PreferredHeight: attrs.Int("height", defaultBoxSize),
	}
	b.Init(b, ctx, attrs)
	b.Background = attrs.Color("color", ColorWhite)
	return b
}

func (b *Box) OnMeasure(widthSpec, heightSpec int) {
	b.SetMeasuredDimension(
		ResolveSize(b.PreferredWidth, widthSpec),
		ResolveSize(b.PreferredHeight, heightSpec),
	)
}

// --- Label ---

// Debug-font glyph cell size used for text extent measurement.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// Label is a text leaf rendered with the debug font.
type Label struct {
	BaseView
	Text string
}

// NewLabel constructs a Label. Recognized attributes: "text", "color".
func NewLabel(ctx *Context, attrs AttributeSet) View {
	l := &Label{Text: attrs.String("text", "")}
	l.Init(l, ctx, attrs)
	l.Background = attrs.Color("color", Color{})
	return l
}

func (l *Label) OnMeasure(widthSpec, heightSpec int) {
	l.SetMeasuredDimension(
		ResolveSize(len(l.Text)*glyphWidth, widthSpec),
		ResolveSize(glyphHeight, heightSpec),
	)
}

func (l *Label) OnDraw(canvas *ebiten.Image) {
	ebitenutil.DebugPrintAt(canvas, l.Text, 0, 0)
}

// --- Spacer ---

// Spacer is a sealed, invisible leaf that reserves space. Being sealed, it
// is never substituted by a generated proxy.
type Spacer struct {
	BaseView
	PreferredWidth  int
	PreferredHeight int
}

// NewSpacer constructs a Spacer. Recognized attributes: "width", "height".
func NewSpacer(ctx *Context, attrs AttributeSet) View {
	s := &Spacer{
		PreferredWidth:  attrs.Int("width", 0),
		PreferredHeight: attrs.Int("height", 0),
	}
	s.Init(s, ctx, attrs)
	return s
}

func (s *Spacer) OnMeasure(widthSpec, heightSpec int) {
	s.SetMeasuredDimension(
		ResolveSize(s.PreferredWidth, widthSpec),
		ResolveSize(s.PreferredHeight, heightSpec),
	)
}

// --- Stub ---

// Stub is a deferred-content marker. Its subtree in the layout document is
// not inflated until InflateNow is called, at which point the inflated
// content replaces the stub in its parent.
type Stub struct {
	BaseView
	pending []json.RawMessage
}

// NewStub constructs a Stub.
func NewStub(ctx *Context, attrs AttributeSet) View {
	s := &Stub{}
	s.Init(s, ctx, attrs)
	return s
}

// A stub occupies no space until inflated.
func (s *Stub) OnMeasure(widthSpec, heightSpec int) {
	s.SetMeasuredDimension(0, 0)
}

// InflateNow inflates the stub's deferred subtree and swaps it in for the
// stub in the parent group. Returns the inflated root.
func (s *Stub) InflateNow() (View, error) {
	if len(s.pending) == 0 {
		panic("view: stub has no deferred content")
	}
	var spec nodeSpec
	if err := json.Unmarshal(s.pending[0], &spec); err != nil {
		return nil, err
	}
	parent := s.Parent()
	inflated, err := s.Context().Inflater().inflateNode(&spec, parent)
	if err != nil {
		return nil, err
	}
	if parent != nil {
		parent.(Group).ReplaceChild(s, inflated)
	}
	if inflated.ID() == NoID {
		inflated.Base().SetID(s.ID())
	}
	return inflated, nil
}

// --- internal.Overlay ---

// Overlay is host-framework chrome layered over application content. It is
// registered under the internal namespace and is never a proxy candidate.
type Overlay struct {
	Frame
}

// NewOverlay constructs an Overlay.
func NewOverlay(ctx *Context, attrs AttributeSet) View {
	o := &Overlay{}
	o.Padding = attrs.Int("padding", 0)
	o.Init(o, ctx, attrs)
	return o
}
