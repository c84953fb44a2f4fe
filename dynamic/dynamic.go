// Package dynamic provides dissect's runtime proxy generation strategy.
//
// Importing it for side effects enables on-the-fly wrapping of view types
// that ship no precompiled proxy:
//
//	import _ "github.com/phanxgames/dissect/dynamic"
//
// Runtime proxies cost an extra allocation and a dispatch retarget per
// inflated view. They are meant for debugging sessions; applications that
// care about inflation time should register precompiled proxies instead.
package dynamic

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/dissect"
	"github.com/phanxgames/dissect/view"
)

func init() {
	dissect.RegisterRuntimeFactory(generate)
}

// generate produces the wrapper constructor for a view type. Every
// non-sealed type is wrappable in principle; types whose views do not
// support dispatch retargeting are rejected at construction time.
func generate(t *view.Type) dissect.ProxyConstructor {
	return func(ctx *view.Context, attrs view.AttributeSet) (view.View, error) {
		inner := t.New(ctx, attrs)
		r, ok := inner.(view.Retargetable)
		if !ok {
			return nil, fmt.Errorf(
				"dynamic: %T does not support dispatch retargeting", inner)
		}
		var w view.View
		if g, ok := inner.(view.Group); ok {
			wg := &wrappedGroup{wrapped: wrapped{View: inner}, group: g}
			wg.self = wg
			w = wg
		} else {
			wp := &wrapped{View: inner}
			wp.self = wp
			w = wp
		}
		// From here on the wrapper IS the view's dynamic type: the
		// inner view's self-calls land on the wrapper first.
		r.Retarget(w)
		return w, nil
	}
}

// wrapped is the generic runtime proxy. It owns the inner view and
// forwards the five interceptable operations to the attached interceptor;
// the Super operations always run the inner view's own implementation.
// All remaining View methods are promoted from the inner view untouched.
//
// The self field holds the outermost wrapper (wrappedGroup embeds
// wrapped), so interceptors always receive the view that actually sits in
// the tree. Same discipline as view.Base's dispatch pointer.
type wrapped struct {
	view.View
	interceptor dissect.Interceptor
	self        view.View
}

func (w *wrapped) SetInterceptor(i dissect.Interceptor) {
	w.interceptor = i
}

func (w *wrapped) OnMeasure(widthSpec, heightSpec int) {
	if w.interceptor == nil {
		w.View.OnMeasure(widthSpec, heightSpec)
		return
	}
	w.interceptor.OnMeasure(w.outer(), widthSpec, heightSpec)
}

func (w *wrapped) OnLayout(changed bool, left, top, right, bottom int) {
	if w.interceptor == nil {
		w.View.OnLayout(changed, left, top, right, bottom)
		return
	}
	w.interceptor.OnLayout(w.outer(), changed, left, top, right, bottom)
}

func (w *wrapped) Draw(canvas *ebiten.Image) {
	if w.interceptor == nil {
		w.View.Draw(canvas)
		return
	}
	w.interceptor.Draw(w.outer(), canvas)
}

func (w *wrapped) OnDraw(canvas *ebiten.Image) {
	if w.interceptor == nil {
		w.View.OnDraw(canvas)
		return
	}
	w.interceptor.OnDraw(w.outer(), canvas)
}

func (w *wrapped) RequestLayout() {
	if w.interceptor == nil {
		w.View.RequestLayout()
		return
	}
	w.interceptor.RequestLayout(w.outer())
}

func (w *wrapped) SuperOnMeasure(widthSpec, heightSpec int) {
	w.View.OnMeasure(widthSpec, heightSpec)
}

func (w *wrapped) SuperOnLayout(changed bool, left, top, right, bottom int) {
	w.View.OnLayout(changed, left, top, right, bottom)
}

func (w *wrapped) SuperDraw(canvas *ebiten.Image) {
	w.View.Draw(canvas)
}

func (w *wrapped) SuperOnDraw(canvas *ebiten.Image) {
	w.View.OnDraw(canvas)
}

func (w *wrapped) SuperRequestLayout() {
	w.View.RequestLayout()
}

func (w *wrapped) SuperSetMeasuredDimension(width, height int) {
	w.View.SetMeasuredDimension(width, height)
}

// outer returns the view handed to interceptors: the outermost wrapper,
// which is also the view stored in the tree.
func (w *wrapped) outer() view.View {
	return w.self
}

// wrappedGroup wraps group views, forwarding child management to the
// inner group so the wrapper satisfies view.Group.
type wrappedGroup struct {
	wrapped
	group view.Group
}

func (w *wrappedGroup) AddChild(child view.View)    { w.group.AddChild(child) }
func (w *wrappedGroup) ChildCount() int             { return w.group.ChildCount() }
func (w *wrappedGroup) ChildAt(index int) view.View { return w.group.ChildAt(index) }
func (w *wrappedGroup) ReplaceChild(old, replacement view.View) {
	w.group.ReplaceChild(old, replacement)
}
