// Package viewport implements a three slot sliding window over an image
// collection and the animated pan between adjacent slots.
//
// The scroll region holds the previous, current and next images side by
// side. Navigating redraws the window around the current index, which
// centers the view on the middle slot, and then pans the view one slot
// toward the new image in fixed steps. The controller is driven by a
// single event loop; none of its methods are safe for concurrent use.
package viewport

import (
	"context"
	"image"
	"log/slog"
)

// View fractions aligning the visible window with each slot.
const (
	PrevOffset   = 0.0
	CenterOffset = 0.333
	NextOffset   = 0.666
)

// Slots is the number of slots in the scroll region.
const Slots = 3

// Default navigation parameters.
const (
	DefaultStep      = 0.05
	DefaultLeftZone  = 0.1
	DefaultRightZone = 0.9
)

// Options configures a Controller. Zero fields take their defaults.
type Options struct {
	// Step is the view fraction moved by each Tick.
	Step float64

	// LeftZone and RightZone are the fractions of the visible
	// width bounding the near-left and near-right zones.
	LeftZone, RightZone float64

	Log *slog.Logger
}

// Controller owns the current index and drives a Surface.
type Controller struct {
	images  Images
	surface Surface

	index int
	state State

	step        float64
	left, right float64

	log *slog.Logger
}

// New returns a Controller showing the first image of images on surface.
// The initial slots are rendered before New returns.
func New(images Images, surface Surface, opts Options) *Controller {
	c := &Controller{
		images:  images,
		surface: surface,
		step:    opts.Step,
		left:    opts.LeftZone,
		right:   opts.RightZone,
		log:     opts.Log,
	}
	if c.step <= 0 {
		c.step = DefaultStep
	}
	if c.left <= 0 {
		c.left = DefaultLeftZone
	}
	if c.right <= 0 {
		c.right = DefaultRightZone
	}
	if c.log == nil {
		c.log = slog.New(slog.DiscardHandler)
	}
	c.Render()
	return c
}

// Index returns the current image index. It is zero for an empty
// collection.
func (c *Controller) Index() int { return c.index }

// State returns the current navigation state.
func (c *Controller) State() State { return c.state }

// Render clears the surface and draws the images either side of and at
// the current index into the three slots, then centers the view on the
// middle slot.
func (c *Controller) Render() {
	w, h := c.surface.Size()
	c.surface.Clear()
	for slot := 0; slot < Slots; slot++ {
		c.surface.DrawImage(c.images.Get(c.index-1+slot), slot*w, 0)
	}
	c.surface.SetScrollRegion(image.Rect(0, 0, Slots*w, h))
	c.surface.XViewMoveTo(CenterOffset)
}

// Zone classifies the horizontal pointer position x.
func (c *Controller) Zone(x int) Zone {
	w, _ := c.surface.Size()
	switch fx := float64(x); {
	case fx < c.left*float64(w):
		return NearLeft
	case fx > c.right*float64(w):
		return NearRight
	default:
		return Center
	}
}

func (c *Controller) canGoLeft() bool  { return c.index > 0 }
func (c *Controller) canGoRight() bool { return c.index < c.images.Len()-1 }

// OnClick handles a pointer click at (x, y). A click in the near-left or
// near-right zone moves to the adjacent image when one exists, and starts
// the pan animation. It reports whether an animation was started.
//
// A click during an animation redraws and restarts the pan from the
// centered view.
func (c *Controller) OnClick(x, y int) bool {
	zone := c.Zone(x)
	switch {
	case zone == NearLeft && c.canGoLeft():
		c.Render()
		c.index--
		c.state = AnimatingLeft
	case zone == NearRight && c.canGoRight():
		c.Render()
		c.index++
		c.state = AnimatingRight
	default:
		return false
	}
	c.log.LogAttrs(context.Background(), slog.LevelDebug, "navigate",
		slog.String("zone", zone.String()),
		slog.Int("index", c.index),
		slog.String("state", c.state.String()),
	)
	return true
}

// OnMove returns the navigation hint for a pointer at (x, y). It does not
// change the controller's state.
func (c *Controller) OnMove(x, y int) Affordance {
	switch c.Zone(x) {
	case NearLeft:
		if c.canGoLeft() {
			return CanGoLeft
		}
	case NearRight:
		if c.canGoRight() {
			return CanGoRight
		}
	}
	return Neutral
}

// Tick advances an in-flight animation by one step and reports whether
// another tick is needed. The view moves toward the target slot by the
// configured step, clamped at the target. When the target is reached the
// controller returns to Idle.
func (c *Controller) Tick() bool {
	x := c.surface.XView()
	var next float64
	switch c.state {
	case AnimatingRight:
		if x >= NextOffset {
			c.state = Idle
			return false
		}
		next = min(x+c.step, NextOffset)
		c.surface.XViewMoveTo(next)
		if next < NextOffset {
			return true
		}
	case AnimatingLeft:
		if x <= PrevOffset {
			c.state = Idle
			return false
		}
		next = max(x-c.step, PrevOffset)
		c.surface.XViewMoveTo(next)
		if next > PrevOffset {
			return true
		}
	default:
		return false
	}
	c.log.LogAttrs(context.Background(), slog.LevelDebug, "animation done",
		slog.Int("index", c.index),
		slog.Float64("offset", next),
	)
	c.state = Idle
	return false
}
