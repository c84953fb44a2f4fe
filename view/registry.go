package view

import "fmt"

// Constructor builds a view instance for an inflated node. Constructors
// receive the construction context and the node's attribute bag, exactly
// the argument list the inflater passes to substituted views.
type Constructor func(ctx *Context, attrs AttributeSet) View

// Type describes a registered view type: the name the layout document
// refers to it by, its constructor, and whether it is sealed. Sealed types
// cannot be stood in for by generated proxies.
type Type struct {
	Name  string
	Final bool
	New   Constructor
}

// Registry maps type names to registered view types. Registries chain:
// a lookup that misses locally continues in the parent. The registry a
// type was resolved against is its loading scope; generated proxy classes
// are only reusable within the scope (or a direct child scope) they were
// generated under.
type Registry struct {
	parent *Registry
	types  map[string]*Type
}

// NewRegistry creates an empty registry. parent may be nil.
func NewRegistry(parent *Registry) *Registry {
	return &Registry{parent: parent, types: make(map[string]*Type)}
}

// Parent returns the parent registry, or nil.
func (r *Registry) Parent() *Registry { return r.parent }

// Register adds a view type under the given name and returns its
// descriptor. Panics if the name is already registered in this registry.
func (r *Registry) Register(name string, ctor Constructor) *Type {
	return r.register(name, ctor, false)
}

// RegisterFinal adds a sealed view type: it inflates normally but is never
// substituted by a proxy.
func (r *Registry) RegisterFinal(name string, ctor Constructor) *Type {
	return r.register(name, ctor, true)
}

func (r *Registry) register(name string, ctor Constructor, final bool) *Type {
	if name == "" {
		panic("view: cannot register empty type name")
	}
	if ctor == nil {
		panic(fmt.Sprintf("view: nil constructor for type %q", name))
	}
	if _, ok := r.types[name]; ok {
		panic(fmt.Sprintf("view: type %q already registered", name))
	}
	t := &Type{Name: name, Final: final, New: ctor}
	r.types[name] = t
	return t
}

// Lookup resolves a type name, walking the parent chain. Returns nil when
// the name is unknown.
func (r *Registry) Lookup(name string) *Type {
	for reg := r; reg != nil; reg = reg.parent {
		if t, ok := reg.types[name]; ok {
			return t
		}
	}
	return nil
}

// BuiltinRegistry returns a fresh registry holding the built-in widget
// types. Applications typically chain their own registry off it:
//
//	reg := view.NewRegistry(view.BuiltinRegistry())
//	reg.Register("Gauge", NewGauge)
func BuiltinRegistry() *Registry {
	r := NewRegistry(nil)
	r.Register("Frame", NewFrame)
	r.Register("Column", NewColumn)
	r.Register("Box", NewBox)
	r.Register("Label", NewLabel)
	r.Register("Stub", NewStub)
	r.RegisterFinal("Spacer", NewSpacer)
	r.Register("internal.Overlay", NewOverlay)
	return r
}
