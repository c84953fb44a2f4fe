package view

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// canvasPool manages reusable offscreen ebiten.Images keyed by
// power-of-two dimensions. Children draw into pooled buffers during the
// draw pass so each child sees a canvas whose origin is its own top-left;
// after warmup the pass is zero-alloc.
type canvasPool struct {
	buckets map[uint64][]*ebiten.Image
}

var pool canvasPool

// poolKey packs power-of-two width and height into a single uint64.
func poolKey(w, h int) uint64 {
	return uint64(w)<<32 | uint64(h)
}

// acquireCanvas returns a cleared offscreen image with at least (w, h)
// pixels. Dimensions are rounded up to the next power of two; callers clip
// to the region they need with SubImage.
func acquireCanvas(w, h int) *ebiten.Image {
	pw := nextPowerOfTwo(w)
	ph := nextPowerOfTwo(h)
	key := poolKey(pw, ph)

	if pool.buckets != nil {
		if stack := pool.buckets[key]; len(stack) > 0 {
			img := stack[len(stack)-1]
			pool.buckets[key] = stack[:len(stack)-1]
			img.Clear()
			return img
		}
	}

	return ebiten.NewImageWithOptions(
		image.Rect(0, 0, pw, ph),
		&ebiten.NewImageOptions{Unmanaged: true},
	)
}

// releaseCanvas returns an image to the pool for reuse. The image is
// cleared on next acquire, not here.
func releaseCanvas(img *ebiten.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	key := poolKey(b.Dx(), b.Dy())

	if pool.buckets == nil {
		pool.buckets = make(map[uint64][]*ebiten.Image)
	}
	pool.buckets[key] = append(pool.buckets[key], img)
}

// nextPowerOfTwo returns the smallest power of two >= n (minimum 1).
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << int(math.Ceil(math.Log2(float64(n))))
}
