package dissect

import (
	"strings"

	"github.com/phanxgames/dissect/view"
)

// Filter selects which views in a hierarchy direct their method calls to
// the deployed [Interceptor]. Deploying without a filter intercepts every
// inflated view.
type Filter interface {
	// ShouldIntercept decides, for one node about to be constructed,
	// whether it should be substituted with a proxy. parent may be nil
	// (the root node).
	ShouldIntercept(ctx *view.Context, parent view.View, name string, attrs view.AttributeSet) bool
}

// Compose accepts a node only if every child filter accepts it, evaluated
// in declaration order, stopping at the first rejection.
type Compose struct {
	filters []Filter
}

// NewCompose combines filters with AND semantics.
func NewCompose(filters ...Filter) *Compose {
	return &Compose{filters: filters}
}

func (c *Compose) ShouldIntercept(ctx *view.Context, parent view.View, name string, attrs view.AttributeSet) bool {
	for _, f := range c.filters {
		if !f.ShouldIntercept(ctx, parent, name, attrs) {
			return false
		}
	}
	return true
}

// ViewID matches nodes whose declared identifier is in a fixed set. Nodes
// without an identifier never match.
type ViewID struct {
	ids []int
}

// NewViewID filters by one or more node identifiers.
func NewViewID(ids ...int) *ViewID {
	return &ViewID{ids: ids}
}

func (f *ViewID) ShouldIntercept(ctx *view.Context, parent view.View, name string, attrs view.AttributeSet) bool {
	id := attrs.ID()
	if id == view.NoID {
		return false
	}
	for _, want := range f.ids {
		if id == want {
			return true
		}
	}
	return false
}

// ParentID matches nodes whose parent's identifier is in a fixed set. A
// nil parent never matches.
type ParentID struct {
	ids []int
}

// NewParentID filters by one or more parent identifiers.
func NewParentID(ids ...int) *ParentID {
	return &ParentID{ids: ids}
}

func (f *ParentID) ShouldIntercept(ctx *view.Context, parent view.View, name string, attrs view.AttributeSet) bool {
	if parent == nil {
		return false
	}
	id := parent.ID()
	for _, want := range f.ids {
		if id == want {
			return true
		}
	}
	return false
}

// ClassName matches nodes by simple type name: the part after the last
// namespace separator, so "internal.Overlay" matches "Overlay".
type ClassName struct {
	names []string
}

// NewClassName filters by one or more simple type names.
func NewClassName(names ...string) *ClassName {
	return &ClassName{names: names}
}

func (f *ClassName) ShouldIntercept(ctx *view.Context, parent view.View, name string, attrs view.AttributeSet) bool {
	if dot := strings.LastIndexByte(name, '.'); dot >= 0 {
		name = name[dot+1:]
	}
	for _, want := range f.names {
		if name == want {
			return true
		}
	}
	return false
}
