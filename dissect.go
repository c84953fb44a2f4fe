package dissect

import (
	"github.com/phanxgames/dissect/view"
)

// session ties one interceptor and at most one filter to a tree
// construction pass. Both are fixed at deployment; a session is not
// mutable mid-construction.
type session struct {
	interceptor Interceptor
	filter      Filter
}

// Deploy installs an [Interceptor] in the given context. Every view
// inflated through the context's inflater afterwards is a proxy candidate.
//
// Panics if ctx or interceptor is nil, or if the context's inflater
// already has a construction hook installed.
func Deploy(ctx *view.Context, interceptor Interceptor) {
	DeployFiltered(ctx, interceptor, nil)
}

// DeployFiltered installs an [Interceptor] in the given context with a
// [Filter] restricting which views are substituted. A nil filter accepts
// every node.
func DeployFiltered(ctx *view.Context, interceptor Interceptor, filter Filter) {
	if ctx == nil {
		panic("dissect: context must not be nil")
	}
	if interceptor == nil {
		panic("dissect: interceptor must not be nil")
	}
	s := &session{interceptor: interceptor, filter: filter}
	ctx.Inflater().SetFactory(&sessionFactory{session: s})
}
