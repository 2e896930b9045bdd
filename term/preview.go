// Package term hosts a tweenjump scene in a terminal with tcell. Nodes are
// drawn as blocks of cells scaled from world coordinates; the tracked node
// leaves a fading trail so the shape of its path is visible.
package term

import (
	"context"
	"fmt"
	"io/fs"
	"time"

	"github.com/gdamore/tcell/v2"

	tweenjump "github.com/jesuisjohan/3-tween-jump"
)

const (
	trailLength = 48
	defaultTPS  = 60
)

// backgroundCoverage is the fraction of the world a node must cover to be
// drawn as shaded background instead of a solid block.
const backgroundCoverage = 0.5

// Config configures Run.
type Config struct {
	WorldWidth  float64
	WorldHeight float64
	TPS         int
	Assets      fs.FS
	Debug       bool
	Store       tweenjump.EntityStore
}

// Preview draws a Stage onto a tcell screen. The bottom row is a status line.
type Preview struct {
	screen tcell.Screen
	stage  *tweenjump.Stage
	worldW float64
	worldH float64

	// Track, if set, is the node whose path is traced.
	Track *tweenjump.Node

	trail []cell
}

type cell struct{ x, y int }

// New returns a preview of stage mapping a worldW by worldH world onto the
// whole screen.
func New(screen tcell.Screen, stage *tweenjump.Stage, worldW, worldH float64) *Preview {
	return &Preview{
		screen: screen,
		stage:  stage,
		worldW: worldW,
		worldH: worldH,
		trail:  make([]cell, 0, trailLength),
	}
}

// CellAt maps a world position to a screen cell.
func (p *Preview) CellAt(x, y float64) (int, int) {
	cols, rows := p.screen.Size()
	rows-- // status line
	cx := int(x / p.worldW * float64(cols))
	cy := int(y / p.worldH * float64(rows))
	return cx, cy
}

// Draw clears the screen, draws every visible node, the trail and the status
// line, then shows the frame.
func (p *Preview) Draw() {
	p.screen.Clear()
	for _, n := range p.stage.Root().Children() {
		p.drawNode(n)
	}
	p.drawTrail()
	p.drawStatus()
	p.screen.Show()
}

func (p *Preview) drawNode(n *tweenjump.Node) {
	if !n.Visible {
		return
	}
	b := n.Bounds()
	if b.Width > 0 && b.Height > 0 {
		r, st := '█', nodeStyle(n)
		if b.Width*b.Height >= backgroundCoverage*p.worldW*p.worldH {
			r, st = '░', tcell.StyleDefault.Foreground(tcell.ColorDarkSlateBlue)
		}
		x0, y0 := p.CellAt(b.X, b.Y)
		x1, y1 := p.CellAt(b.X+b.Width, b.Y+b.Height)
		// Small nodes still cover at least one cell.
		if x1 <= x0 {
			x1 = x0 + 1
		}
		if y1 <= y0 {
			y1 = y0 + 1
		}
		p.fill(x0, y0, x1, y1, r, st)
	}
	for _, c := range n.Children() {
		p.drawNode(c)
	}
}

func (p *Preview) fill(x0, y0, x1, y1 int, r rune, st tcell.Style) {
	cols, rows := p.screen.Size()
	rows--
	for y := max(y0, 0); y < min(y1, rows); y++ {
		for x := max(x0, 0); x < min(x1, cols); x++ {
			p.screen.SetContent(x, y, r, nil, st)
		}
	}
}

func nodeStyle(n *tweenjump.Node) tcell.Style {
	c := n.Color
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(
		int32(c.R*255), int32(c.G*255), int32(c.B*255)))
}

// record appends the tracked node's cell to the trail when it moved.
func (p *Preview) record() {
	if p.Track == nil || p.Track.IsDisposed() {
		return
	}
	x, y := p.CellAt(p.Track.X, p.Track.Y)
	if n := len(p.trail); n > 0 && p.trail[n-1] == (cell{x, y}) {
		return
	}
	if len(p.trail) == trailLength {
		copy(p.trail, p.trail[1:])
		p.trail = p.trail[:trailLength-1]
	}
	p.trail = append(p.trail, cell{x, y})
}

func (p *Preview) drawTrail() {
	for i, c := range p.trail {
		intensity := 80 + 175*(i+1)/len(p.trail)
		st := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(intensity), int32(intensity), 0))
		if r, _, _, _ := p.screen.GetContent(c.x, c.y); r == '█' {
			continue
		}
		p.screen.SetContent(c.x, c.y, '·', nil, st)
	}
}

func (p *Preview) drawStatus() {
	cols, rows := p.screen.Size()
	line := fmt.Sprintf(" tweens: %d  q/esc: quit", p.stage.Animator().Len())
	if p.Track != nil && !p.Track.IsDisposed() {
		line = fmt.Sprintf(" x=%4.0f y=%4.0f ", p.Track.X, p.Track.Y) + line
	}
	st := tcell.StyleDefault.Reverse(true)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		p.screen.SetContent(x, rows-1, r, nil, st)
	}
}

// Step advances the stage by dt seconds, records the trail and redraws.
func (p *Preview) Step(dt float64) {
	p.stage.Update(dt)
	p.record()
	p.Draw()
}

// Loop ticks the preview at tps until ctx is done, the user quits, or
// updater returns an error. updater may be nil. The caller owns the screen
// and must Fini it.
func (p *Preview) Loop(ctx context.Context, tps int, updater tweenjump.Updater) error {
	if tps <= 0 {
		tps = defaultTPS
	}
	dt := 1.0 / float64(tps)

	evCh := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case evCh <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	p.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-evCh:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
			case *tcell.EventResize:
				p.screen.Sync()
			}
		case <-ticker.C:
			p.Step(dt)
			if updater != nil {
				if err := updater.OnUpdate(p.stage, dt); err != nil {
					return err
				}
			}
		}
	}
}

// tracker is implemented by scenes that expose the node worth tracing.
type tracker interface {
	Sprite() *tweenjump.Node
}

// Run boots scene on a fresh stage and hosts it on screen until the user
// quits or ctx is done. The screen must already be initialized.
func Run(ctx context.Context, screen tcell.Screen, scene tweenjump.Scene, cfg Config) error {
	stage := tweenjump.NewStage()
	stage.SetDebugMode(cfg.Debug)
	if cfg.Store != nil {
		stage.SetEntityStore(cfg.Store)
	}
	if err := tweenjump.Boot(ctx, scene, tweenjump.NewLoader(cfg.Assets), stage); err != nil {
		return err
	}

	p := New(screen, stage, cfg.WorldWidth, cfg.WorldHeight)
	if t, ok := scene.(tracker); ok {
		p.Track = t.Sprite()
	}
	u, _ := scene.(tweenjump.Updater)
	return p.Loop(ctx, cfg.TPS, u)
}
