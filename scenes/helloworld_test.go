package scenes

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"
	"time"

	tweenjump "github.com/jesuisjohan/3-tween-jump"
)

// offlineConfig is the default config with assets resolved against an empty
// file system, so every texture falls back to the placeholder.
func offlineConfig() tweenjump.Config {
	cfg := tweenjump.DefaultConfig()
	cfg.Assets.BaseURL = ""
	return cfg
}

func boot(t *testing.T, h *HelloWorld) *tweenjump.Stage {
	t.Helper()
	s := tweenjump.NewStage()
	if err := tweenjump.Boot(context.Background(), h, tweenjump.NewLoader(fstest.MapFS{}), s); err != nil {
		t.Fatalf("Boot: %v", err)
	}
	return s
}

// tick advances the stage and the scene like the window host does.
func tick(t *testing.T, s *tweenjump.Stage, h *HelloWorld, dt float64) {
	t.Helper()
	s.Update(dt)
	if err := h.OnUpdate(s, dt); err != nil {
		t.Fatalf("OnUpdate: %v", err)
	}
}

func TestHelloWorldKey(t *testing.T) {
	if got := NewHelloWorld(offlineConfig()).Key(); got != "hello-world" {
		t.Errorf("Key = %q, want hello-world", got)
	}
}

func TestHelloWorldQueuesConfiguredAssets(t *testing.T) {
	h := NewHelloWorld(offlineConfig())
	l := tweenjump.NewLoader(nil)
	h.OnLoad(l)
	if l.Pending() != 4 {
		t.Errorf("Pending = %d, want 4 (sky, logo, coin, red)", l.Pending())
	}
}

func TestHelloWorldCreatesLayout(t *testing.T) {
	h := NewHelloWorld(offlineConfig())
	s := boot(t, h)

	children := s.Root().Children()
	if len(children) != 2 {
		t.Fatalf("root children = %d, want background and sprite", len(children))
	}
	sky := children[0]
	if sky.Name != "sky" || sky.X != 400 || sky.Y != 300 {
		t.Errorf("background = %q at (%v, %v), want sky at (400, 300)", sky.Name, sky.X, sky.Y)
	}
	coin := h.Sprite()
	if coin != children[1] || coin.Name != "coin" {
		t.Fatalf("sprite = %v, want the coin node", coin)
	}
	if coin.X != 100 || coin.Y != 300 {
		t.Errorf("coin at (%v, %v), want (100, 300)", coin.X, coin.Y)
	}
	if coin.DisplayWidth() != 50 || coin.DisplayHeight() != 50 {
		t.Errorf("coin size = (%v, %v), want (50, 50)", coin.DisplayWidth(), coin.DisplayHeight())
	}
	if s.Animator().Len() != 2 {
		t.Errorf("scheduled tweens = %d, want ascend and slide", s.Animator().Len())
	}
}

func TestHelloWorldLands(t *testing.T) {
	h := NewHelloWorld(offlineConfig())
	s := boot(t, h)
	coin := h.Sprite()

	minY := coin.Y
	for range 6 {
		tick(t, s, h, 0.25)
		minY = min(minY, coin.Y)
	}

	if minY != 80 {
		t.Errorf("apex Y = %v, want 80", minY)
	}
	if coin.X != 500 || coin.Y != 500 {
		t.Errorf("landed at (%v, %v), want (500, 500)", coin.X, coin.Y)
	}
	if h.Jumps() != 1 {
		t.Errorf("Jumps = %d, want 1", h.Jumps())
	}

	// Without Loop the sprite stays put.
	tick(t, s, h, 1)
	if coin.X != 500 || coin.Y != 500 || s.Animator().Len() != 0 {
		t.Errorf("sprite moved after landing without loop")
	}
}

func TestHelloWorldLoopReplays(t *testing.T) {
	cfg := offlineConfig()
	cfg.Scene.Motion.Loop = true
	cfg.Scene.Motion.LoopDelay = 500 * time.Millisecond
	h := NewHelloWorld(cfg)
	s := boot(t, h)
	coin := h.Sprite()

	for range 6 {
		tick(t, s, h, 0.25)
	}
	if h.Jumps() != 1 {
		t.Fatalf("Jumps = %d, want 1", h.Jumps())
	}
	if coin.X != 500 {
		t.Fatalf("X = %v, want 500 before the delay elapses", coin.X)
	}

	tick(t, s, h, 0.25)
	if s.Animator().Len() != 2 {
		t.Fatalf("tweens = %d, want replay scheduled after the loop delay", s.Animator().Len())
	}
	if coin.X != 100 || coin.Y != 300 {
		t.Errorf("replay starts at (%v, %v), want (100, 300)", coin.X, coin.Y)
	}

	for range 6 {
		tick(t, s, h, 0.25)
	}
	if h.Jumps() != 2 {
		t.Errorf("Jumps = %d, want 2", h.Jumps())
	}
}

func TestHelloWorldRejectsInvalidMotion(t *testing.T) {
	cfg := offlineConfig()
	cfg.Scene.Motion.PeakY = 300
	h := NewHelloWorld(cfg)

	err := tweenjump.Boot(context.Background(), h, tweenjump.NewLoader(fstest.MapFS{}), tweenjump.NewStage())
	if !errors.Is(err, tweenjump.ErrInvalidPeak) {
		t.Errorf("Boot err = %v, want invalid peak", err)
	}
}

func TestHelloWorldRejectsUnknownEasing(t *testing.T) {
	cfg := offlineConfig()
	cfg.Scene.Motion.Easing = "wobbly"
	h := NewHelloWorld(cfg)

	err := tweenjump.Boot(context.Background(), h, tweenjump.NewLoader(fstest.MapFS{}), tweenjump.NewStage())
	if err == nil {
		t.Error("expected an error for an unknown easing")
	}
}
