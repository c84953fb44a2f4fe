package interceptors

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/dissect"
	"github.com/phanxgames/dissect/view"
)

// Overmeasure tint palette. Overmeasure is a factor of the number of
// OnMeasure calls a view receives within a single layout traversal,
// analogous to overdraw but for measurement.
var (
	overmeasureNone = view.RGB(0x999999)
	overmeasure1x   = view.RGB(0xAAAAFF) // measured twice: blue
	overmeasure2x   = view.RGB(0x2AFF80) // three times: green
	overmeasure3x   = view.RGB(0xFFAAAA) // four times: light red
	overmeasure4x   = view.RGB(0xFF0000) // five or more: this is wrong
)

const tintAlpha = 150.0 / 255.0

// Overmeasure tints leaf views according to the number of times they got
// measured in a single layout traversal rooted at the view with RootID.
//
// One or two simple views in light red is acceptable; consider
// reorganizing the hierarchy or writing custom groups beyond that.
type Overmeasure struct {
	dissect.BaseInterceptor

	rootID   int
	measures map[view.View]int
}

// NewOvermeasure creates the interceptor. rootID identifies the traversal
// root: its measurement resets the counts, and its layout requests force a
// full re-layout so tints stay current.
func NewOvermeasure(rootID int) *Overmeasure {
	return &Overmeasure{
		rootID:   rootID,
		measures: make(map[view.View]int),
	}
}

// MeasureCount returns how many times v was measured in the current
// traversal.
func (o *Overmeasure) MeasureCount(v view.View) int {
	return o.measures[v]
}

func (o *Overmeasure) OnMeasure(v view.View, widthSpec, heightSpec int) {
	if v.ID() == o.rootID {
		clear(o.measures)
	}

	dissect.SuperOnMeasure(v, widthSpec, heightSpec)

	if _, ok := v.(view.Group); !ok {
		o.measures[v]++
	}
}

func (o *Overmeasure) OnDraw(v view.View, canvas *ebiten.Image) {
	dissect.SuperOnDraw(v, canvas)

	if _, ok := v.(view.Group); ok {
		return
	}
	if v.ID() == o.rootID {
		return
	}

	var color view.Color
	switch o.measures[v] {
	case 0, 1:
		color = overmeasureNone
	case 2:
		color = overmeasure1x
	case 3:
		color = overmeasure2x
	case 4:
		color = overmeasure3x
	default:
		color = overmeasure4x
	}

	if color != overmeasureNone {
		b := v.Base()
		view.FillRect(canvas, 0, 0,
			float64(b.Width()), float64(b.Height()),
			color.WithAlpha(tintAlpha))
	}
}

func (o *Overmeasure) RequestLayout(v view.View) {
	dissect.SuperRequestLayout(v)

	if v.ID() == o.rootID {
		// Clear every pending-layout shortcut and make sure the whole
		// tree redraws with fresh counts.
		forceLayoutTree(v)
		invalidateTree(v)
	}
}

func forceLayoutTree(v view.View) {
	v.Base().ForceLayout()
	if g, ok := v.(view.Group); ok {
		for i := 0; i < g.ChildCount(); i++ {
			forceLayoutTree(g.ChildAt(i))
		}
	}
}

func invalidateTree(v view.View) {
	v.Base().Invalidate()
	if g, ok := v.(view.Group); ok {
		for i := 0; i < g.ChildCount(); i++ {
			invalidateTree(g.ChildAt(i))
		}
	}
}
