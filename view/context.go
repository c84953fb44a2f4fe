package view

// Context carries the state a tree-construction pass needs: the type
// registry views are resolved against, the inflater bound to it, and the
// display scale density-aware consumers use for pixel sizing.
type Context struct {
	registry *Registry
	inflater *Inflater

	// Scale is the display density multiplier. 1 means one logical pixel
	// per physical pixel.
	Scale float64
}

// NewContext creates a context over the given registry. A nil registry
// defaults to the built-in widget set.
func NewContext(registry *Registry) *Context {
	if registry == nil {
		registry = BuiltinRegistry()
	}
	ctx := &Context{registry: registry, Scale: 1}
	ctx.inflater = &Inflater{ctx: ctx}
	return ctx
}

// Registry returns the context's type registry.
func (c *Context) Registry() *Registry { return c.registry }

// Inflater returns the inflater bound to this context.
func (c *Context) Inflater() *Inflater { return c.inflater }
