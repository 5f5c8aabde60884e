package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func writeImage(t *testing.T, path string, w, h int, enc func(*os.File, image.Image) error) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 0x80, 0xff})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := enc(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestDecode(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "a.png")
	bmpPath := filepath.Join(dir, "b.bmp")
	writeImage(t, pngPath, 12, 7, func(f *os.File, img image.Image) error { return png.Encode(f, img) })
	writeImage(t, bmpPath, 5, 9, func(f *os.File, img image.Image) error { return bmp.Encode(f, img) })

	for _, test := range []struct {
		path string
		want image.Point
	}{
		{path: pngPath, want: image.Pt(12, 7)},
		{path: bmpPath, want: image.Pt(5, 9)},
	} {
		img, err := Decode(test.path)
		if err != nil {
			t.Errorf("unexpected error decoding %s: %v", test.path, err)
			continue
		}
		if got := img.Bounds().Size(); got != test.want {
			t.Errorf("unexpected size for %s: got:%v want:%v", test.path, got, test.want)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	dir := t.TempDir()
	junk := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(junk, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(junk); err == nil {
		t.Error("expected error decoding text file")
	}
	if _, err := Decode(filepath.Join(dir, "missing.png")); !os.IsNotExist(err) {
		t.Errorf("expected not exist error, got: %v", err)
	}
}

func TestFit(t *testing.T) {
	for _, test := range []struct {
		name string
		size image.Point
		want image.Point
	}{
		{name: "smaller", size: image.Pt(40, 30), want: image.Pt(40, 30)},
		{name: "wide", size: image.Pt(200, 50), want: image.Pt(100, 25)},
		{name: "tall", size: image.Pt(50, 400), want: image.Pt(12, 100)},
		{name: "exact", size: image.Pt(100, 100), want: image.Pt(100, 100)},
	} {
		t.Run(test.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rectangle{Max: test.size})
			got := Fit(img, 100, 100).Bounds().Size()
			if got != test.want {
				t.Errorf("unexpected size: got:%v want:%v", got, test.want)
			}
		})
	}
}

func TestIcon(t *testing.T) {
	icons := Icon()
	if len(icons) != len(iconSizes) {
		t.Fatalf("unexpected number of icons: got:%d want:%d", len(icons), len(iconSizes))
	}
	for i, img := range icons {
		n := iconSizes[i]
		if got := img.Bounds().Size(); got != image.Pt(n, n) {
			t.Errorf("unexpected icon size: got:%v want:%v", got, image.Pt(n, n))
		}
	}
}
