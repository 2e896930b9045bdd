package tweenjump

import (
	"context"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	TPS     int // ticks per second; 0 keeps Ebitengine's default of 60
	ShowFPS bool
	Debug   bool

	// Assets is the file system the scene's Loader reads from when the scene
	// sets no base URL.
	Assets fs.FS

	// Store, if set, receives motion events.
	Store EntityStore
}

// Run opens a window and drives scene until the window is closed or an
// update returns an error.
func Run(scene Scene, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	return ebiten.RunGame(NewGame(scene, cfg))
}

// Game adapts a Scene to ebiten.Game. The scene boots on the first Update so
// that asset decoding happens with the graphics driver ready.
type Game struct {
	scene  Scene
	stage  *Stage
	loader *Loader
	cfg    RunConfig
	booted bool
}

// NewGame builds the ebiten.Game used by Run. It is exported for callers
// that want to own the ebiten loop.
func NewGame(scene Scene, cfg RunConfig) *Game {
	stage := NewStage()
	stage.SetDebugMode(cfg.Debug)
	if cfg.Store != nil {
		stage.SetEntityStore(cfg.Store)
	}
	return &Game{
		scene:  scene,
		stage:  stage,
		loader: NewLoader(cfg.Assets),
		cfg:    cfg,
	}
}

// Stage returns the stage the scene is built on.
func (g *Game) Stage() *Stage {
	return g.stage
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if !g.booted {
		g.booted = true
		if err := Boot(context.Background(), g.scene, g.loader, g.stage); err != nil {
			return err
		}
		if g.cfg.ShowFPS {
			g.stage.Root().AddChild(NewFPSWidget())
		}
	}

	dt := frameDelta(ebiten.TPS(), ebiten.ActualFPS())
	g.stage.Update(dt)
	if u, ok := g.scene.(Updater); ok {
		return u.OnUpdate(g.stage, dt)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.stage.Draw(screen)
}

// Layout implements ebiten.Game with a fixed logical screen.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// frameDelta returns the seconds one Update stands for. With SyncWithFPS the
// tick rate follows the frame rate, which is zero until the first frames
// have been measured.
func frameDelta(tps int, actualFPS float64) float64 {
	if tps > 0 {
		return 1.0 / float64(tps)
	}
	if actualFPS > 0 {
		return 1.0 / actualFPS
	}
	return 0
}
