package view

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// View is the virtual surface of every widget in the tree. The host
// dispatches measurement, layout, and drawing through this interface, so
// any value standing in for a widget (including generated proxies) sees
// every call.
type View interface {
	// OnMeasure determines the size requirements of this view. It must
	// call SetMeasuredDimension before returning.
	OnMeasure(widthSpec, heightSpec int)
	// OnLayout positions children (for groups). Called from Layout when
	// the bounds changed or a layout was requested.
	OnLayout(changed bool, left, top, right, bottom int)
	// Draw renders the view and its children onto canvas. The canvas
	// origin is the view's own top-left corner.
	Draw(canvas *ebiten.Image)
	// OnDraw renders this view's own content, excluding background and
	// children.
	OnDraw(canvas *ebiten.Image)
	// RequestLayout marks this view as needing layout and bubbles the
	// request to the parent.
	RequestLayout()
	// SetMeasuredDimension records the measured size. Must be called from
	// OnMeasure.
	SetMeasuredDimension(width, height int)

	// Measure resolves the view's measured size by dispatching OnMeasure.
	Measure(widthSpec, heightSpec int)
	// Layout assigns bounds and dispatches OnLayout when needed.
	Layout(left, top, right, bottom int)

	ID() int
	Context() *Context
	Parent() View
	Base() *BaseView
}

// Group is a View that owns children.
type Group interface {
	View
	AddChild(child View)
	ChildCount() int
	ChildAt(index int) View
	ReplaceChild(old, replacement View)
}

// Retargetable is implemented by views whose internal dispatch pointer can
// be re-aimed at another View. A wrapper that re-aims dispatch at itself
// receives the view's self-calls (Draw → OnDraw, Measure → OnMeasure)
// exactly as an overriding subtype would.
type Retargetable interface {
	Retarget(self View)
}

// Base carries the state and default behavior shared by all views.
// Concrete view types embed Base and override a subset of the virtual
// methods; Base dispatches self-calls through the stored self pointer so
// overrides on the embedding type (or on a wrapper) take effect.
type BaseView struct {
	self   View
	ctx    *Context
	id     int
	parent View

	left, top, right, bottom int

	measuredWidth  int
	measuredHeight int
	measuredSet    bool

	layoutRequested bool
	dirty           bool

	// Background is filled before OnDraw when its alpha is non-zero.
	Background Color
}

// Init wires the base to its outermost View and records construction
// state. Every constructor must call it before the view is used.
func (b *BaseView) Init(self View, ctx *Context, attrs AttributeSet) {
	b.self = self
	b.ctx = ctx
	b.id = attrs.ID()
}

// Retarget re-aims internal dispatch at self. Used by generated proxies;
// application code has no reason to call it.
func (b *BaseView) Retarget(self View) {
	b.self = self
}

func (b *BaseView) dispatch() View {
	if b.self == nil {
		panic("view: Base.Init was not called")
	}
	return b.self
}

func (b *BaseView) ID() int           { return b.id }
func (b *BaseView) SetID(id int)      { b.id = id }
func (b *BaseView) Context() *Context { return b.ctx }
func (b *BaseView) Parent() View      { return b.parent }
func (b *BaseView) Base() *BaseView       { return b }

// Left returns the view's left edge in parent coordinates.
func (b *BaseView) Left() int { return b.left }

// Top returns the view's top edge in parent coordinates.
func (b *BaseView) Top() int { return b.top }

// Width returns the laid-out width.
func (b *BaseView) Width() int { return b.right - b.left }

// Height returns the laid-out height.
func (b *BaseView) Height() int { return b.bottom - b.top }

func (b *BaseView) MeasuredWidth() int  { return b.measuredWidth }
func (b *BaseView) MeasuredHeight() int { return b.measuredHeight }

// Measure resolves the view's size for the given specs by dispatching
// OnMeasure. Panics if OnMeasure returns without calling
// SetMeasuredDimension.
func (b *BaseView) Measure(widthSpec, heightSpec int) {
	b.measuredSet = false
	b.dispatch().OnMeasure(widthSpec, heightSpec)
	if !b.measuredSet {
		panic(fmt.Sprintf("view: %T.OnMeasure did not call SetMeasuredDimension", b.dispatch()))
	}
}

// SetMeasuredDimension records the measured size. Must be called from
// within OnMeasure.
func (b *BaseView) SetMeasuredDimension(width, height int) {
	b.measuredWidth = width
	b.measuredHeight = height
	b.measuredSet = true
}

// Layout assigns the view's bounds in parent coordinates and dispatches
// OnLayout when the bounds changed or a layout was requested.
func (b *BaseView) Layout(left, top, right, bottom int) {
	changed := left != b.left || top != b.top || right != b.right || bottom != b.bottom
	b.left, b.top, b.right, b.bottom = left, top, right, bottom
	if changed || b.layoutRequested {
		b.dispatch().OnLayout(changed, left, top, right, bottom)
		b.layoutRequested = false
	}
}

// OnMeasure's default resolves the spec against a zero preferred size.
func (b *BaseView) OnMeasure(widthSpec, heightSpec int) {
	b.SetMeasuredDimension(ResolveSize(0, widthSpec), ResolveSize(0, heightSpec))
}

// OnLayout's default does nothing. Groups override it to place children.
func (b *BaseView) OnLayout(changed bool, left, top, right, bottom int) {}

// Draw fills the background, dispatches OnDraw, then draws children for
// groups. Each child draws into a pooled offscreen buffer composited at the
// child's position, so a child's canvas origin is its own top-left.
func (b *BaseView) Draw(canvas *ebiten.Image) {
	if b.Background.A > 0 {
		canvas.Fill(b.Background.ToRGBA())
	}
	self := b.dispatch()
	self.OnDraw(canvas)
	if g, ok := self.(Group); ok {
		drawChildren(g, canvas)
	}
	b.dirty = false
}

// OnDraw's default draws nothing.
func (b *BaseView) OnDraw(canvas *ebiten.Image) {}

// RequestLayout marks the view as needing layout and bubbles the request
// up the tree.
func (b *BaseView) RequestLayout() {
	b.layoutRequested = true
	if b.parent != nil {
		b.parent.RequestLayout()
	}
}

// ForceLayout marks the view as needing layout without bubbling.
func (b *BaseView) ForceLayout() {
	b.layoutRequested = true
}

// LayoutRequested reports whether a layout pass is pending for this view.
func (b *BaseView) LayoutRequested() bool { return b.layoutRequested }

// Invalidate marks the view's content as needing a redraw.
func (b *BaseView) Invalidate() { b.dirty = true }

// Dirty reports whether the view was invalidated since its last Draw.
func (b *BaseView) Dirty() bool { return b.dirty }

func drawChildren(g Group, canvas *ebiten.Image) {
	for i := 0; i < g.ChildCount(); i++ {
		child := g.ChildAt(i)
		cb := child.Base()
		w, h := cb.Width(), cb.Height()
		if w <= 0 || h <= 0 {
			continue
		}
		buf := acquireCanvas(w, h)
		child.Draw(buf.SubImage(image.Rect(0, 0, w, h)).(*ebiten.Image))
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(cb.left), float64(cb.top))
		canvas.DrawImage(buf.SubImage(image.Rect(0, 0, w, h)).(*ebiten.Image), op)
		releaseCanvas(buf)
	}
}

// --- GroupBase ---

// GroupBase extends Base with child management. Group view types embed it.
type GroupBase struct {
	BaseView
	children []View
}

// AddChild appends child to this group.
// Panics if child is nil, already has a parent, or is an ancestor of this
// group (cycle).
func (g *GroupBase) AddChild(child View) {
	if child == nil {
		panic("view: cannot add nil child")
	}
	if child.Parent() != nil {
		panic("view: child already has a parent")
	}
	if isAncestor(child, g.dispatch()) {
		panic("view: adding child would create a cycle")
	}
	child.Base().parent = g.dispatch()
	g.children = append(g.children, child)
}

// ChildCount returns the number of children.
func (g *GroupBase) ChildCount() int { return len(g.children) }

// ChildAt returns the child at the given index.
func (g *GroupBase) ChildAt(index int) View { return g.children[index] }

// ReplaceChild swaps old for replacement in place, preserving order.
// Panics if old is not a child of this group.
func (g *GroupBase) ReplaceChild(old, replacement View) {
	if replacement == nil {
		panic("view: cannot replace with nil child")
	}
	for i, c := range g.children {
		if c == old {
			old.Base().parent = nil
			replacement.Base().parent = g.dispatch()
			g.children[i] = replacement
			return
		}
	}
	panic("view: child's parent is not this group")
}

// isAncestor reports whether candidate is an ancestor of v.
func isAncestor(candidate, v View) bool {
	for p := v; p != nil; p = p.Parent() {
		if p == candidate {
			return true
		}
	}
	return false
}
