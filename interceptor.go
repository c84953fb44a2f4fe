package dissect

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/dissect/view"
)

// Interceptor observes and overrides method calls on views inflated under
// a deployed session. Every method receives the affected view (the proxy
// instance) plus the call's own arguments, and decides whether to run the
// original behavior through the matching Super function.
//
// Embed [BaseInterceptor] and override a subset:
//
//	type CountingInterceptor struct {
//		dissect.BaseInterceptor
//		Measures int
//	}
//
//	func (c *CountingInterceptor) OnMeasure(v view.View, ws, hs int) {
//		c.Measures++
//		dissect.SuperOnMeasure(v, ws, hs)
//	}
//
// An override that never calls the Super function completely replaces the
// view's behavior for that method.
type Interceptor interface {
	// OnMeasure intercepts a measurement of the given view.
	OnMeasure(v view.View, widthSpec, heightSpec int)
	// OnLayout intercepts a layout of the given view.
	OnLayout(v view.View, changed bool, left, top, right, bottom int)
	// Draw intercepts a full draw (background, content, children) of the
	// given view.
	Draw(v view.View, canvas *ebiten.Image)
	// OnDraw intercepts a content draw of the given view.
	OnDraw(v view.View, canvas *ebiten.Image)
	// RequestLayout intercepts a layout request on the given view.
	RequestLayout(v view.View)
}

// BaseInterceptor forwards every call to the view's original behavior.
// An interceptor embedding it and overriding nothing is fully transparent.
type BaseInterceptor struct{}

func (BaseInterceptor) OnMeasure(v view.View, widthSpec, heightSpec int) {
	SuperOnMeasure(v, widthSpec, heightSpec)
}

func (BaseInterceptor) OnLayout(v view.View, changed bool, left, top, right, bottom int) {
	SuperOnLayout(v, changed, left, top, right, bottom)
}

func (BaseInterceptor) Draw(v view.View, canvas *ebiten.Image) {
	SuperDraw(v, canvas)
}

func (BaseInterceptor) OnDraw(v view.View, canvas *ebiten.Image) {
	SuperOnDraw(v, canvas)
}

func (BaseInterceptor) RequestLayout(v view.View) {
	SuperRequestLayout(v)
}

// SetMeasuredDimension records the view's measured size. Use it when
// overriding OnMeasure without calling the original behavior; a
// measurement must record a size before it returns.
func (BaseInterceptor) SetMeasuredDimension(v view.View, width, height int) {
	SuperSetMeasuredDimension(v, width, height)
}
