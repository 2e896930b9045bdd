// Tweenjump runs the hello-world scene: a coin jumps from the left of the
// screen up to a peak and lands lower on the right. By default it opens an
// Ebitengine window; -term previews the same motion in the terminal.
package main

import (
	"context"
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	tweenjump "github.com/jesuisjohan/3-tween-jump"
	"github.com/jesuisjohan/3-tween-jump/ecs"
	"github.com/jesuisjohan/3-tween-jump/scenes"
	"github.com/jesuisjohan/3-tween-jump/term"
)

func main() {
	configPath := flag.String("config", "", "YAML config file decoded over the built-in defaults")
	assetDir := flag.String("assets", "", "load assets from this directory instead of the configured base URL")
	debug := flag.Bool("debug", false, "log tween, asset and motion activity to stderr")
	termMode := flag.Bool("term", false, "preview in the terminal instead of a window")
	loop := flag.Bool("loop", false, "replay the jump after it lands")
	flag.Parse()

	cfg, err := tweenjump.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *assetDir != "" {
		cfg.Assets.BaseURL = ""
		cfg.Assets.Dir = *assetDir
	}
	if *loop {
		cfg.Scene.Motion.Loop = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	var assets fs.FS
	if cfg.Assets.Dir != "" {
		assets = os.DirFS(cfg.Assets.Dir)
	}

	// Motion events go through a Donburi world; in debug mode they are logged.
	world := donburi.NewWorld()
	if *debug {
		ecs.MotionEventType.Subscribe(world, func(_ donburi.World, ev tweenjump.MotionEvent) {
			log.Printf("motion %s node=%d at (%.1f, %.1f)", ev.Type, ev.NodeID, ev.X, ev.Y)
		})
	}
	store := &processingStore{EntityStore: ecs.NewDonburiStore(world), world: world}

	scene := scenes.NewHelloWorld(cfg)

	if *termMode {
		if err := runTerminal(scene, cfg, assets, store, *debug); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := tweenjump.Run(scene, tweenjump.RunConfig{
		Title:   cfg.Window.Title,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		TPS:     cfg.Window.TPS,
		ShowFPS: cfg.Window.ShowFPS,
		Debug:   *debug,
		Assets:  assets,
		Store:   store,
	}); err != nil {
		log.Fatal(err)
	}
}

func runTerminal(scene *scenes.HelloWorld, cfg tweenjump.Config, assets fs.FS, store tweenjump.EntityStore, debug bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return term.Run(ctx, screen, scene, term.Config{
		WorldWidth:  float64(cfg.Window.Width),
		WorldHeight: float64(cfg.Window.Height),
		TPS:         cfg.Window.TPS,
		Assets:      assets,
		Debug:       debug,
		Store:       store,
	})
}

// processingStore publishes to the Donburi world and processes the queue
// right away, since this binary runs no ECS systems of its own.
type processingStore struct {
	tweenjump.EntityStore
	world donburi.World
}

func (s *processingStore) EmitMotionEvent(ev tweenjump.MotionEvent) {
	s.EntityStore.EmitMotionEvent(ev)
	events.ProcessAllEvents(s.world)
}
