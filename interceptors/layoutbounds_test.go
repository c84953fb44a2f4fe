package interceptors_test

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/dissect"
	"github.com/phanxgames/dissect/interceptors"
	"github.com/phanxgames/dissect/view"
)

const boundsLayout = `{
	"type": "Frame",
	"attrs": {"id": 1, "padding": 4},
	"children": [
		{"type": "Box", "attrs": {"id": 2, "width": 40, "height": 40}}
	]
}`

func TestLayoutBoundsMarksCorners(t *testing.T) {
	ctx := view.NewContext(nil)
	dissect.Deploy(ctx, interceptors.NewLayoutBounds(ctx))

	root := mustInflate(t, ctx, boundsLayout)
	measureAndLayout(root, 48, 48)

	canvas := ebiten.NewImage(48, 48)
	root.Draw(canvas)

	// Group ticks sit at the frame's corners, leaf ticks at the padded
	// box's corners. Drawn after the original content, so they are on top.
	groupTick := color.RGBA{0x2A, 0xFF, 0x80, 0xFF}
	leafTick := color.RGBA{0x33, 0x66, 0xFF, 0xFF}

	if got := canvas.At(0, 0); !colorNear(got, groupTick) {
		t.Errorf("frame corner pixel = %v, want %v", got, groupTick)
	}
	if got := canvas.At(4, 4); !colorNear(got, leafTick) {
		t.Errorf("box corner pixel = %v, want %v", got, leafTick)
	}

	// Away from every tick the box shows through untouched.
	white := color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	if got := canvas.At(24, 24); !colorNear(got, white) {
		t.Errorf("box center pixel = %v, want %v", got, white)
	}
}

func TestLayoutBoundsScalesWithDisplayDensity(t *testing.T) {
	ctx := view.NewContext(nil)
	ctx.Scale = 2

	dissect.Deploy(ctx, interceptors.NewLayoutBounds(ctx))
	root := mustInflate(t, ctx, `{"type": "Box", "attrs": {"id": 1, "width": 40, "height": 40}}`)
	measureAndLayout(root, 40, 40)

	canvas := ebiten.NewImage(40, 40)
	root.Draw(canvas)

	// At scale 2 the tick stroke is 5 units wide, so (4, 6) falls inside
	// the top-left vertical tick; at scale 1 it would be plain white.
	leafTick := color.RGBA{0x33, 0x66, 0xFF, 0xFF}
	if got := canvas.At(4, 6); !colorNear(got, leafTick) {
		t.Errorf("pixel inside scaled stroke = %v, want %v", got, leafTick)
	}
}
