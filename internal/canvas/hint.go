package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"album/internal/viewport"
)

var (
	colHintBg    = color.RGBA{0x10, 0x10, 0x10, 0x60}
	colHintArrow = color.RGBA{0xff, 0xff, 0xff, 0xc0}
)

// arrow is a chevron in window coordinates.
type arrow struct {
	tipX, baseX float32
	midY, half  float32
}

// hintArrow returns the chevron for hint in a w×h window and whether one
// should be drawn.
func hintArrow(hint viewport.Affordance, w, h int) (arrow, bool) {
	size := float32(min(w, h)) / 20
	midY := float32(h) / 2
	switch hint {
	case viewport.CanGoLeft:
		tip := size
		return arrow{tipX: tip, baseX: tip + size, midY: midY, half: size}, true
	case viewport.CanGoRight:
		tip := float32(w) - size
		return arrow{tipX: tip, baseX: tip - size, midY: midY, half: size}, true
	default:
		return arrow{}, false
	}
}

func drawHint(screen *ebiten.Image, hint viewport.Affordance, w, h int) {
	a, ok := hintArrow(hint, w, h)
	if !ok {
		return
	}
	left := min(a.tipX, a.baseX) - a.half/2
	vector.DrawFilledRect(screen, left, a.midY-a.half*1.5, a.half*2, a.half*3, colHintBg, true)
	vector.StrokeLine(screen, a.baseX, a.midY-a.half, a.tipX, a.midY, 3, colHintArrow, true)
	vector.StrokeLine(screen, a.tipX, a.midY, a.baseX, a.midY+a.half, 3, colHintArrow, true)
}
