package viewport

import "image"

// Surface is a scrollable drawing surface. The visible window is one
// slot wide; the scroll region holds all three slots.
type Surface interface {
	// Size returns the visible width and height.
	Size() (w, h int)

	// Clear removes everything drawn.
	Clear()

	// DrawImage draws img with its top-left corner at (x, y)
	// in scroll region coordinates.
	DrawImage(img image.Image, x, y int)

	// SetScrollRegion sets the bounds that the view scrolls over.
	SetScrollRegion(r image.Rectangle)

	// XView returns the fraction of the scroll region's width
	// that is left of the visible window.
	XView() float64

	// XViewMoveTo scrolls so that fraction f of the scroll
	// region is left of the visible window.
	XViewMoveTo(f float64)
}

// Images is an ordered image collection. Get must return a placeholder
// for indexes outside [0, Len()).
type Images interface {
	Len() int
	Get(i int) image.Image
}
