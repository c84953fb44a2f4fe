// Package dissect observes and selectively overrides layout, measurement,
// and drawing calls made by views in a widget tree, without touching the
// widgets' own source.
//
// Deploy an [Interceptor] in the target [view.Context] before inflating
// layouts, with an optional [Filter]:
//
//	ctx := view.NewContext(nil)
//	dissect.Deploy(ctx, &MyInterceptor{})
//	root, err := ctx.Inflater().Inflate(layoutJSON)
//
// If no [Filter] is provided, the [Interceptor] acts on every inflated
// view in the target context.
//
// # View proxies
//
// Dissect intercepts view method calls by inflating proxies in place of
// the original views. A proxy can come from two sources:
//
//   - Precompiled: a proxy type generated ahead of time and registered
//     under the name <TypeName>_Proxy in the context's registry. These add
//     essentially no inflation overhead; dissect only probes for them.
//
//   - Runtime: a generic wrapper generated on the fly. This strategy is
//     available only when the program imports the dynamic subpackage for
//     side effects:
//
//     import _ "github.com/phanxgames/dissect/dynamic"
//
// Runtime wrapping re-points the view's internal dispatch at the wrapper,
// so self-calls such as Draw → OnDraw route through the interceptor the
// same way calls from the host do.
//
// When neither source can produce a proxy — the type is sealed, or the
// dynamic subpackage was not imported — the original view is inflated
// unmodified. That is a silent, non-error fallback: the tree behaves
// exactly as without dissect, minus interception on that node.
//
// # Interceptors
//
// [BaseInterceptor] forwards every call to the view's original behavior,
// making an interceptor that embeds it and overrides nothing fully
// transparent. An override that does not call the matching Super function
// replaces the original behavior outright for affected views; that is the
// override mechanism, not an accident. See the interceptors subpackage for
// ready-made debugging interceptors.
package dissect
