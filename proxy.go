package dissect

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/dissect/view"
)

// ViewProxy is the contract every proxy instance fulfills. The overridden
// methods of the proxied view forward to its [Interceptor]; the Super
// operations always run the original behavior of the underlying view type,
// bypassing the interceptor.
//
// SetMeasuredDimension has no overridden counterpart: it is never
// intercepted itself, only invoked by interceptors to finish an overridden
// measurement.
type ViewProxy interface {
	// SetInterceptor attaches the interceptor this proxy forwards to.
	// With a nil interceptor the proxy behaves exactly like the original
	// view.
	SetInterceptor(i Interceptor)

	SuperOnMeasure(widthSpec, heightSpec int)
	SuperOnLayout(changed bool, left, top, right, bottom int)
	SuperDraw(canvas *ebiten.Image)
	SuperOnDraw(canvas *ebiten.Image)
	SuperRequestLayout()
	SuperSetMeasuredDimension(width, height int)
}

// IsProxy reports whether v is a proxy inflated by dissect.
func IsProxy(v view.View) bool {
	_, ok := v.(ViewProxy)
	return ok
}

// asProxy asserts that v is a proxy. Calling a Super operation on a view
// that is not a proxy is a programming error and fails immediately.
func asProxy(v view.View) ViewProxy {
	p, ok := v.(ViewProxy)
	if !ok {
		panic(fmt.Sprintf("dissect: %T is not a view proxy", v))
	}
	return p
}

// SuperOnMeasure runs the original OnMeasure of the proxied view.
func SuperOnMeasure(v view.View, widthSpec, heightSpec int) {
	asProxy(v).SuperOnMeasure(widthSpec, heightSpec)
}

// SuperOnLayout runs the original OnLayout of the proxied view.
func SuperOnLayout(v view.View, changed bool, left, top, right, bottom int) {
	asProxy(v).SuperOnLayout(changed, left, top, right, bottom)
}

// SuperDraw runs the original Draw of the proxied view.
func SuperDraw(v view.View, canvas *ebiten.Image) {
	asProxy(v).SuperDraw(canvas)
}

// SuperOnDraw runs the original OnDraw of the proxied view.
func SuperOnDraw(v view.View, canvas *ebiten.Image) {
	asProxy(v).SuperOnDraw(canvas)
}

// SuperRequestLayout runs the original RequestLayout of the proxied view.
func SuperRequestLayout(v view.View) {
	asProxy(v).SuperRequestLayout()
}

// SuperSetMeasuredDimension records the measured size through the original
// SetMeasuredDimension of the proxied view.
func SuperSetMeasuredDimension(v view.View, width, height int) {
	asProxy(v).SuperSetMeasuredDimension(width, height)
}
