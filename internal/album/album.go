// Package album provides the ordered image collection shown by the viewer.
package album

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"album/internal/assets"
)

// LoadError is returned when an image directory or one of its files
// cannot be read or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Sequence is an immutable ordered collection of images. Indexes outside
// the collection yield a blank placeholder.
type Sequence struct {
	names  []string
	images []image.Image
	empty  image.Image
}

// New returns a Sequence holding images with a blank w×h placeholder.
// Names are optional; when provided they must correspond to images.
func New(images []image.Image, names []string, w, h int) *Sequence {
	if names != nil && len(names) != len(images) {
		panic("album: mismatched names and images")
	}
	return &Sequence{
		names:  names,
		images: images,
		empty:  image.NewRGBA(image.Rect(0, 0, w, h)),
	}
}

// Options controls how a directory is loaded.
type Options struct {
	// Width and Height are the placeholder dimensions and,
	// when Fit is set, the bounds images are scaled into.
	Width, Height int

	// Sort orders files by name. Otherwise the order is
	// the order the directory listing returns.
	Sort bool

	// Fit scales images larger than Width×Height down
	// to fit.
	Fit bool

	Log *slog.Logger
}

// Load reads every regular file in dir as an image. Subdirectories are
// skipped. Any failure to read the directory or decode a file is returned
// as a *LoadError.
func Load(ctx context.Context, dir string, opts Options) (*Sequence, error) {
	log := opts.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	f, err := os.Open(dir)
	if err != nil {
		return nil, &LoadError{Path: dir, Err: err}
	}
	// File.ReadDir, unlike os.ReadDir, does not sort.
	entries, err := f.ReadDir(-1)
	f.Close()
	if err != nil {
		return nil, &LoadError{Path: dir, Err: err}
	}
	if opts.Sort {
		slices.SortFunc(entries, func(a, b os.DirEntry) int {
			return strings.Compare(a.Name(), b.Name())
		})
	}

	var (
		names  []string
		images []image.Image
	)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		img, err := assets.Decode(path)
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		if opts.Fit {
			img = assets.Fit(img, opts.Width, opts.Height)
		}
		log.LogAttrs(ctx, slog.LevelDebug, "loaded image",
			slog.String("path", path),
			slog.Any("size", img.Bounds().Size()),
		)
		names = append(names, e.Name())
		images = append(images, img)
	}
	log.LogAttrs(ctx, slog.LevelInfo, "loaded album", slog.String("dir", dir), slog.Int("images", len(images)))

	if names == nil {
		names = []string{}
	}
	return New(images, names, opts.Width, opts.Height), nil
}

// Len returns the number of images in the sequence.
func (s *Sequence) Len() int { return len(s.images) }

// Get returns the image at i or the placeholder if i is out of range.
func (s *Sequence) Get(i int) image.Image {
	if i < 0 || i >= len(s.images) {
		return s.empty
	}
	return s.images[i]
}

// Name returns the file name of the image at i, or the empty string if
// i is out of range or the sequence was built without names.
func (s *Sequence) Name(i int) string {
	if i < 0 || i >= len(s.names) {
		return ""
	}
	return s.names[i]
}

// Placeholder returns the blank image used for out of range indexes.
func (s *Sequence) Placeholder() image.Image { return s.empty }
