package assets

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

var (
	colFrame = color.RGBA{0x2b, 0x2b, 0x2b, 0xff}
	colSky   = color.RGBA{0x6b, 0xb5, 0xd6, 0xff}
	colHill  = color.RGBA{0x4e, 0x8c, 0x42, 0xff}
	colSun   = color.RGBA{0xff, 0xd1, 0x5c, 0xff}
)

// iconSizes are the sizes offered to the window system.
var iconSizes = []int{16, 32, 48}

// Icon returns the window icon rendered at several sizes, largest last.
func Icon() []image.Image {
	src := iconArt(64)
	icons := make([]image.Image, 0, len(iconSizes))
	for _, n := range iconSizes {
		dst := image.NewRGBA(image.Rect(0, 0, n, n))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		icons = append(icons, dst)
	}
	return icons
}

// iconArt draws a framed landscape picture n pixels square.
func iconArt(n int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	border := n / 8
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			var c color.RGBA
			switch {
			case x < border || y < border || x >= n-border || y >= n-border:
				c = colFrame
			case inCircle(x, y, n*2/3, n/3, n/8):
				c = colSun
			case y > n-border-hill(x, n):
				c = colHill
			default:
				c = colSky
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func inCircle(x, y, cx, cy, r int) bool {
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}

// hill returns the height of a simple triangular hill at x.
func hill(x, n int) int {
	peak := n / 3
	h := n/2 - abs(x-peak)/2
	return max(h, n/8)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
