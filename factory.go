package dissect

import (
	"fmt"
	"os"
	"strings"

	"github.com/phanxgames/dissect/view"
)

// Structural node names that are never proxy candidates: deferred-content
// markers inflate lazily through their own path, and internal-namespace
// types are host chrome.
const (
	stubMarker     = "Stub"
	internalPrefix = "internal."
)

// sessionFactory is the construction hook a deployed session installs on
// the context's inflater. For each node it decides whether to substitute
// a proxy; a nil return hands construction back to the inflater.
type sessionFactory struct {
	session *session
}

func (f *sessionFactory) CreateView(parent view.View, name string, ctx *view.Context, attrs view.AttributeSet) view.View {
	if strings.Contains(name, stubMarker) || strings.HasPrefix(name, internalPrefix) {
		return nil
	}

	// Proxy the whole tree when no filter is defined.
	if f.session.filter != nil &&
		!f.session.filter.ShouldIntercept(ctx, parent, name, attrs) {
		return nil
	}

	t := ctx.Registry().Lookup(name)
	if t == nil {
		// Unknown type: let the inflater produce its own error.
		return nil
	}

	pc, err := getOrCreateProxyClass(t, ctx.Registry())
	if err != nil {
		warnf("cannot proxy %q: %v", name, err)
		return nil
	}
	if pc == nil {
		// No proxy available for this type. Inflate unproxied.
		return nil
	}

	v, err := buildProxy(pc, ctx, attrs, f.session.interceptor)
	if err != nil {
		warnf("cannot proxy %q: %v", name, err)
		return nil
	}
	return v
}

// warnf reports a non-fatal interception fallback on stderr.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[dissect] "+format+"\n", args...)
}
