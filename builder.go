package dissect

import (
	"fmt"
	"sync"

	"github.com/phanxgames/dissect/view"
)

// proxySuffix is the naming convention for precompiled proxy types: an
// ahead-of-time generator registers one type per proxied view type,
// named after it.
const proxySuffix = "_Proxy"

// ProxyConstructor builds one proxy instance with the original view's
// construction arguments. A panic from the underlying view type's own
// constructor propagates to the caller unchanged; an error return means
// the proxy class itself could not produce a working instance.
type ProxyConstructor func(ctx *view.Context, attrs view.AttributeSet) (view.View, error)

// RuntimeFactory generates a proxy constructor for a view type at run
// time. Returning nil means the type cannot be wrapped by this factory.
//
// The factory is normally registered by importing the dynamic subpackage
// for side effects; without one, runtime proxy generation is unavailable
// and only precompiled proxies are used.
type RuntimeFactory func(t *view.Type) ProxyConstructor

var runtimeFactory RuntimeFactory

// RegisterRuntimeFactory installs the runtime proxy generation strategy.
// Intended to be called from an init function.
func RegisterRuntimeFactory(f RuntimeFactory) {
	runtimeFactory = f
}

// proxyClass stands in for a generated subtype of one view type: a cached
// constructor bound to the loading scope it was generated under.
type proxyClass struct {
	base      *view.Type
	scope     *view.Registry
	construct ProxyConstructor
}

// Process-wide proxy class cache. The lock is held across the whole
// lookup-generate-store sequence, so concurrent first use of the same type
// generates exactly once.
var (
	cacheMu      sync.Mutex
	proxyClasses = make(map[*view.Type]*proxyClass)
)

// getOrCreateProxyClass returns the proxy class for t under the given
// loading scope, generating and caching it on first use. A nil, nil
// return means no proxy is available for this type — a normal outcome
// (sealed type, or no generation strategy) that callers answer with
// unproxied construction. A non-nil error reports a defective precompiled
// proxy registration; it is deterministic for the type and not retried.
func getOrCreateProxyClass(t *view.Type, scope *view.Registry) (*proxyClass, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	// A cached class is only valid under the scope it was generated for,
	// or a direct child of it. Anything else is stale and regenerated.
	if pc, ok := proxyClasses[t]; ok {
		if pc.scope == scope || pc.scope.Parent() == scope {
			return pc, nil
		}
		delete(proxyClasses, t)
	}

	// Sealed types cannot be stood in for. Not an error.
	if t.Final {
		return nil, nil
	}

	// Precompiled proxies take priority: no generation cost at all.
	if pt := scope.Lookup(t.Name + proxySuffix); pt != nil {
		pc := &proxyClass{
			base:      t,
			scope:     scope,
			construct: precompiledConstructor(t, pt),
		}
		proxyClasses[t] = pc
		return pc, nil
	}

	if runtimeFactory != nil {
		ctor := runtimeFactory(t)
		if ctor == nil {
			return nil, nil
		}
		pc := &proxyClass{base: t, scope: scope, construct: ctor}
		proxyClasses[t] = pc
		return pc, nil
	}

	// No generation strategy available; inflate unproxied.
	return nil, nil
}

// precompiledConstructor adapts a registered ahead-of-time proxy type.
// A registered proxy whose instances do not actually implement ViewProxy
// violates the registration convention; that is reported as an error, not
// papered over.
func precompiledConstructor(base, pt *view.Type) ProxyConstructor {
	return func(ctx *view.Context, attrs view.AttributeSet) (view.View, error) {
		v := pt.New(ctx, attrs)
		if _, ok := v.(ViewProxy); !ok {
			return nil, fmt.Errorf(
				"dissect: registered proxy type %q produced %T, which does not implement ViewProxy",
				pt.Name, v)
		}
		return v, nil
	}
}

// buildProxy constructs a proxy instance and injects the interceptor
// reference. Panics from the base type's own constructor propagate
// unchanged: they reflect a real construction error in the original type.
func buildProxy(pc *proxyClass, ctx *view.Context, attrs view.AttributeSet, i Interceptor) (view.View, error) {
	v, err := pc.construct(ctx, attrs)
	if err != nil {
		return nil, err
	}
	v.(ViewProxy).SetInterceptor(i)
	return v, nil
}
