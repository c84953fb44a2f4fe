package interceptors

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/dissect"
	"github.com/phanxgames/dissect/view"
)

var (
	leafBoundsColor  = view.RGB(0x3366FF)
	groupBoundsColor = view.RGB(0x2AFF80)
)

const (
	borderWidthUnits = 2.5
	borderSizeRatio  = 0.2
	maxBorderUnits   = 15
)

// LayoutBounds draws corner tick marks at every intercepted view's bounds,
// the way a "show layout bounds" developer option would, except it honors
// the deployed Filter and so can mark only specific views.
type LayoutBounds struct {
	dissect.BaseInterceptor

	borderWidth float64
	maxBorder   float64
}

// NewLayoutBounds creates the interceptor, sizing tick marks by the
// context's display scale.
func NewLayoutBounds(ctx *view.Context) *LayoutBounds {
	return &LayoutBounds{
		borderWidth: borderWidthUnits * ctx.Scale,
		maxBorder:   maxBorderUnits * ctx.Scale,
	}
}

func (l *LayoutBounds) Draw(v view.View, canvas *ebiten.Image) {
	dissect.SuperDraw(v, canvas)

	color := leafBoundsColor
	if _, ok := v.(view.Group); ok {
		color = groupBoundsColor
	}

	b := v.Base()
	w := float64(b.Width())
	h := float64(b.Height())

	tickW := math.Min(l.maxBorder, w*borderSizeRatio)
	tickH := math.Min(l.maxBorder, h*borderSizeRatio)

	// Two ticks per corner, drawn as thin filled rects.
	l.hline(canvas, 0, 0, tickW, color)
	l.vline(canvas, 0, 0, tickH, color)

	l.vline(canvas, 0, h-tickH, tickH, color)
	l.hline(canvas, 0, h-l.borderWidth, tickW, color)

	l.vline(canvas, w-l.borderWidth, 0, tickH, color)
	l.hline(canvas, w-tickW, 0, tickW, color)

	l.vline(canvas, w-l.borderWidth, h-tickH, tickH, color)
	l.hline(canvas, w-tickW, h-l.borderWidth, tickW, color)
}

func (l *LayoutBounds) hline(canvas *ebiten.Image, x, y, length float64, c view.Color) {
	view.FillRect(canvas, x, y, length, l.borderWidth, c)
}

func (l *LayoutBounds) vline(canvas *ebiten.Image, x, y, length float64, c view.Color) {
	view.FillRect(canvas, x, y, l.borderWidth, length, c)
}
