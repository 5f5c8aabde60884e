// Package canvas implements a scrollable ebiten drawing surface.
package canvas

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"album/internal/viewport"
)

var ColBg = color.RGBA{0x2b, 0x2b, 0x2b, 0xff}

// Canvas is an offscreen scroll region viewed through a window one slot
// wide. It satisfies viewport.Surface.
type Canvas struct {
	w, h int

	region image.Rectangle
	view   float64

	// backing holds everything drawn, in region coordinates.
	backing *ebiten.Image

	// cache holds the GPU copy of each source image drawn.
	cache map[image.Image]*ebiten.Image
}

// New returns a Canvas with a w×h visible window and room for
// viewport.Slots slots.
func New(w, h int) *Canvas {
	return &Canvas{
		w:       w,
		h:       h,
		region:  image.Rect(0, 0, w, h),
		backing: ebiten.NewImage(viewport.Slots*w, h),
		cache:   make(map[image.Image]*ebiten.Image),
	}
}

func (c *Canvas) Size() (int, int) { return c.w, c.h }

func (c *Canvas) Clear() { c.backing.Clear() }

// DrawImage draws img at (x, y). Drawing is clipped to the slots.
func (c *Canvas) DrawImage(img image.Image, x, y int) {
	src, ok := c.cache[img]
	if !ok {
		src = ebiten.NewImageFromImage(img)
		c.cache[img] = src
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	c.backing.DrawImage(src, op)
}

// SetScrollRegion sets the region the view scrolls over. The current
// fraction is re-clamped to the new region.
func (c *Canvas) SetScrollRegion(r image.Rectangle) {
	c.region = r.Intersect(c.backing.Bounds())
	c.view = clampView(c.view, c.w, c.region.Dx())
}

func (c *Canvas) XView() float64 { return c.view }

func (c *Canvas) XViewMoveTo(f float64) {
	c.view = clampView(f, c.w, c.region.Dx())
}

// clampView limits f so that a window of width w stays inside a region of
// width region.
func clampView(f float64, w, region int) float64 {
	if region <= 0 || w >= region {
		return 0
	}
	return max(0, min(f, 1-float64(w)/float64(region)))
}

// Draw presents the visible window onto screen with the navigation hint
// overlaid.
func (c *Canvas) Draw(screen *ebiten.Image, hint viewport.Affordance) {
	screen.Fill(ColBg)
	if !c.region.Empty() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-c.view*float64(c.region.Dx()), 0)
		screen.DrawImage(c.backing.SubImage(c.region).(*ebiten.Image), op)
	}
	drawHint(screen, hint, c.w, c.h)
}
