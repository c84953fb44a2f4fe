package view

import (
	"encoding/json"
	"fmt"
)

// Factory intercepts node construction during inflation. When CreateView
// returns a non-nil View, the inflater uses it in place of the normal
// constructor. Returning nil means "no substitution": the node is
// constructed through the registry as usual.
type Factory interface {
	CreateView(parent View, name string, ctx *Context, attrs AttributeSet) View
}

// nodeSpec is one node of a layout document.
type nodeSpec struct {
	Type     string            `json:"type"`
	Attrs    AttributeSet      `json:"attrs"`
	Children []json.RawMessage `json:"children"`
}

// Inflater builds view trees from JSON layout documents:
//
//	{
//	  "type": "Frame",
//	  "attrs": {"id": 1, "padding": 8},
//	  "children": [
//	    {"type": "Box", "attrs": {"id": 2, "width": 40, "height": 40}}
//	  ]
//	}
//
// One Inflater is bound to each Context. An installed Factory sees every
// node before normal construction.
type Inflater struct {
	ctx     *Context
	factory Factory
}

// SetFactory installs a construction hook on this inflater. The factory is
// fixed for the inflater's lifetime; installing a second one panics.
func (inf *Inflater) SetFactory(f Factory) {
	if inf.factory != nil {
		panic("view: a factory is already installed on this inflater")
	}
	inf.factory = f
}

// Factory returns the installed construction hook, or nil.
func (inf *Inflater) Factory() Factory { return inf.factory }

// Inflate builds a view tree from a JSON layout document and returns its
// root.
func (inf *Inflater) Inflate(data []byte) (View, error) {
	var spec nodeSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("view: invalid layout document: %w", err)
	}
	return inf.inflateNode(&spec, nil)
}

func (inf *Inflater) inflateNode(spec *nodeSpec, parent View) (View, error) {
	if spec.Type == "" {
		return nil, fmt.Errorf("view: layout node missing type")
	}
	attrs := spec.Attrs
	if attrs == nil {
		attrs = AttributeSet{}
	}

	var v View
	if inf.factory != nil {
		v = inf.factory.CreateView(parent, spec.Type, inf.ctx, attrs)
	}
	if v == nil {
		t := inf.ctx.Registry().Lookup(spec.Type)
		if t == nil {
			return nil, fmt.Errorf("view: unknown view type %q", spec.Type)
		}
		v = t.New(inf.ctx, attrs)
	}

	// Stubs defer their subtree: the raw child specs are parked on the
	// stub and inflated on demand by Stub.InflateNow.
	if stub, ok := v.(*Stub); ok {
		stub.pending = spec.Children
		return v, nil
	}

	if len(spec.Children) > 0 {
		g, ok := v.(Group)
		if !ok {
			return nil, fmt.Errorf("view: type %q cannot have children", spec.Type)
		}
		for _, raw := range spec.Children {
			var childSpec nodeSpec
			if err := json.Unmarshal(raw, &childSpec); err != nil {
				return nil, fmt.Errorf("view: invalid child of %q: %w", spec.Type, err)
			}
			child, err := inf.inflateNode(&childSpec, v)
			if err != nil {
				return nil, err
			}
			g.AddChild(child)
		}
	}
	return v, nil
}
