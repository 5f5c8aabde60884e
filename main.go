// The album command is a photo album viewer that pans smoothly between
// the images of a directory.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"album/internal/album"
	"album/internal/assets"
	"album/internal/canvas"
	"album/internal/config"
	"album/internal/viewport"
)

// Exit status codes.
const (
	success         = 0
	internalError   = 1
	invocationError = 2
)

func main() { os.Exit(Main()) }

func Main() int {
	cfgPath := flag.String("config", "", "path to a TOML configuration file")
	dir := flag.String("dir", "", "image directory (overrides configuration)")
	sorted := flag.Bool("sort", false, "order images by file name")
	logging := flag.String("log", "info", "logging level (debug, info, warn or error)")
	list := flag.Bool("list", false, "print the loaded images and exit")
	flag.Parse()

	var level slog.LevelVar
	err := level.UnmarshalText([]byte(*logging))
	if err != nil {
		flag.Usage()
		return invocationError
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &level}))

	cfg := config.Default()
	if *cfgPath != "" {
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return invocationError
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			cfg.Dir = *dir
		case "sort":
			cfg.Sort = *sorted
		}
	})
	err = cfg.Validate()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return invocationError
	}

	ctx := context.Background()
	seq, err := album.Load(ctx, cfg.Dir, album.Options{
		Width:  cfg.Width,
		Height: cfg.Height,
		Sort:   cfg.Sort,
		Fit:    cfg.Fit,
		Log:    log,
	})
	if err != nil {
		var lerr *album.LoadError
		if errors.As(err, &lerr) {
			log.LogAttrs(ctx, slog.LevelError, "cannot load images", slog.String("path", lerr.Path), slog.Any("error", lerr.Err))
		} else {
			log.LogAttrs(ctx, slog.LevelError, err.Error())
		}
		return internalError
	}

	if *list {
		for i := 0; i < seq.Len(); i++ {
			fmt.Printf("%d\t%s\t%v\n", i, seq.Name(i), seq.Get(i).Bounds().Size())
		}
		return success
	}

	// Window Setup
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowIcon(assets.Icon())

	surface := canvas.New(cfg.Width, cfg.Height)
	ctrl := viewport.New(seq, surface, viewport.Options{
		Step:      cfg.Step,
		LeftZone:  cfg.LeftZone,
		RightZone: cfg.RightZone,
		Log:       log,
	})
	game := NewGame(ctrl, surface, cfg.Interval)

	log.LogAttrs(ctx, slog.LevelInfo, "start", slog.Int("images", seq.Len()))
	err = ebiten.RunGame(game)
	if err != nil {
		log.LogAttrs(ctx, slog.LevelError, "run", slog.Any("error", err))
		return internalError
	}
	log.LogAttrs(ctx, slog.LevelInfo, "exit")
	return success
}
