// Package scenes holds the demo scenes shipped with tweenjump.
package scenes

import (
	"fmt"
	"time"

	tweenjump "github.com/jesuisjohan/3-tween-jump"
)

// HelloWorldKey is the key HelloWorld registers under.
const HelloWorldKey = "hello-world"

// HelloWorld places a background and a sprite, then makes the sprite jump
// from its start up to the configured peak and down to the destination.
// With Motion.Loop set, the sprite returns to its start LoopDelay after
// landing and jumps again.
type HelloWorld struct {
	cfg    tweenjump.Config
	sprite *tweenjump.Node

	// landed counts completed jumps; restartIn counts down to the next one.
	landed    int
	legsLeft  int
	restartIn time.Duration
	waiting   bool
}

// NewHelloWorld returns the scene configured by cfg.
func NewHelloWorld(cfg tweenjump.Config) *HelloWorld {
	return &HelloWorld{cfg: cfg}
}

// Key implements tweenjump.Scene.
func (h *HelloWorld) Key() string {
	return HelloWorldKey
}

// Sprite returns the jumping sprite, or nil before OnCreate.
func (h *HelloWorld) Sprite() *tweenjump.Node {
	return h.sprite
}

// Jumps returns how many jumps have fully finished.
func (h *HelloWorld) Jumps() int {
	return h.landed
}

// OnLoad implements tweenjump.Scene.
func (h *HelloWorld) OnLoad(l *tweenjump.Loader) {
	l.SetBaseURL(h.cfg.Assets.BaseURL)
	for key, path := range h.cfg.Assets.Images {
		l.Image(key, path)
	}
}

// OnCreate implements tweenjump.Scene.
func (h *HelloWorld) OnCreate(s *tweenjump.Stage) error {
	sc := h.cfg.Scene
	if sc.Background.Key != "" {
		place(s, sc.Background)
	}
	h.sprite = place(s, sc.Sprite)
	return h.jump(s)
}

// OnUpdate implements tweenjump.Updater and drives the optional loop.
func (h *HelloWorld) OnUpdate(s *tweenjump.Stage, dt float64) error {
	if !h.waiting {
		return nil
	}
	h.restartIn -= time.Duration(dt * float64(time.Second))
	if h.restartIn > 0 {
		return nil
	}
	h.waiting = false
	h.sprite.X, h.sprite.Y = h.cfg.Scene.Sprite.X, h.cfg.Scene.Sprite.Y
	return h.jump(s)
}

func (h *HelloWorld) jump(s *tweenjump.Stage) error {
	d, err := h.cfg.Scene.Descriptor(h.sprite)
	if err != nil {
		return err
	}
	// The jump is over once both the landing and the slide have completed.
	h.legsLeft = 2
	d.OnEvent = func(ev tweenjump.MotionEvent) {
		switch ev.Type {
		case tweenjump.MotionLand, tweenjump.MotionSlideEnd:
			h.legsLeft--
			if h.legsLeft == 0 {
				h.finish()
			}
		}
	}
	if err := s.TweenHigherToLower(d); err != nil {
		return fmt.Errorf("jump: %w", err)
	}
	return nil
}

func (h *HelloWorld) finish() {
	h.landed++
	if h.cfg.Scene.Motion.Loop {
		h.waiting = true
		h.restartIn = h.cfg.Scene.Motion.LoopDelay
	}
}

// place adds the texture named by sc at its position, sized when requested.
func place(s *tweenjump.Stage, sc tweenjump.SpriteConfig) *tweenjump.Node {
	n := s.AddImage(sc.X, sc.Y, sc.Key)
	if sc.Width > 0 && sc.Height > 0 {
		n.SetDisplaySize(sc.Width, sc.Height)
	}
	return n
}
