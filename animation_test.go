package tweenjump

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func mustAnimate(t *testing.T, a *Animator, cfg TweenConfig) {
	t.Helper()
	if err := a.Animate(cfg); err != nil {
		t.Fatalf("Animate(%s): %v", cfg.Property, err)
	}
}

func TestTweenReachesTarget(t *testing.T) {
	node := NewContainer("pos")
	node.X = 10

	a := NewAnimator()
	mustAnimate(t, a, TweenConfig{Target: node, Property: PropertyX, To: 100, Duration: time.Second, Ease: ease.Linear})

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	a.Update(0.5)
	a.Update(0.5)

	if a.Len() != 0 {
		t.Fatalf("Len = %d, want 0 after full duration", a.Len())
	}
	if node.X != 100 {
		t.Errorf("X = %f, want 100", node.X)
	}
}

func TestTweenInterpolatesHalfway(t *testing.T) {
	node := NewContainer("alpha")
	node.Alpha = 1.0

	a := NewAnimator()
	mustAnimate(t, a, TweenConfig{Target: node, Property: PropertyAlpha, To: 0, Duration: time.Second})

	a.Update(0.5)
	if math.Abs(node.Alpha-0.5) > 0.05 {
		t.Errorf("Alpha = %f, want ~0.5 at halfway", node.Alpha)
	}
}

func TestTweenNilEaseIsLinear(t *testing.T) {
	node := NewContainer("linear")
	a := NewAnimator()
	mustAnimate(t, a, TweenConfig{Target: node, Property: PropertyX, To: 100, Duration: time.Second})

	a.Update(0.25)
	if math.Abs(node.X-25) > 0.01 {
		t.Errorf("X = %f, want ~25", node.X)
	}
}

func TestTweenReadsStartOnFirstTick(t *testing.T) {
	node := NewContainer("late")
	a := NewAnimator()
	mustAnimate(t, a, TweenConfig{Target: node, Property: PropertyY, To: 100, Duration: time.Second})

	// Moved after the request but before the first tick.
	node.Y = 50
	a.Update(0.5)
	if math.Abs(node.Y-75) > 0.01 {
		t.Errorf("Y = %f, want ~75 (start read at first tick)", node.Y)
	}
}

func TestTweenOnCompleteFiresOnce(t *testing.T) {
	node := NewContainer("done")
	a := NewAnimator()
	calls := 0
	mustAnimate(t, a, TweenConfig{
		Target: node, Property: PropertyX, To: 50, Duration: 500 * time.Millisecond,
		OnComplete: func() { calls++ },
	})

	// Partway through: not done.
	a.Update(0.25)
	if calls != 0 {
		t.Fatal("OnComplete fired partway through")
	}

	a.Update(0.25)
	if calls != 1 {
		t.Fatalf("OnComplete calls = %d, want 1", calls)
	}

	// Update after done should be a no-op.
	a.Update(0.1)
	if calls != 1 {
		t.Fatalf("OnComplete calls = %d after extra update, want 1", calls)
	}
}

func TestTweenRequestedFromCallbackStartsNextUpdate(t *testing.T) {
	node := NewContainer("chain")
	a := NewAnimator()
	var second bool
	mustAnimate(t, a, TweenConfig{
		Target: node, Property: PropertyY, To: 100, Duration: 500 * time.Millisecond,
		OnComplete: func() {
			mustAnimate(t, a, TweenConfig{
				Target: node, Property: PropertyY, To: 0, Duration: 500 * time.Millisecond,
				OnComplete: func() { second = true },
			})
		},
	})

	a.Update(0.5)
	if node.Y != 100 {
		t.Fatalf("Y = %f, want 100 after first leg", node.Y)
	}
	if a.Len() != 1 {
		t.Fatalf("Len = %d, want 1 pending chained tween", a.Len())
	}

	a.Update(0.25)
	if math.Abs(node.Y-50) > 0.01 {
		t.Errorf("Y = %f, want ~50 halfway back", node.Y)
	}
	a.Update(0.25)
	if !second || node.Y != 0 {
		t.Errorf("second leg done=%v Y=%f, want done at 0", second, node.Y)
	}
}

func TestTweenZeroDurationCompletesOnFirstTick(t *testing.T) {
	node := NewContainer("instant")
	a := NewAnimator()
	done := false
	mustAnimate(t, a, TweenConfig{Target: node, Property: PropertyX, To: 7, OnComplete: func() { done = true }})

	a.Update(1.0 / 60)
	if !done || node.X != 7 {
		t.Errorf("done=%v X=%f, want done at 7", done, node.X)
	}
}

func TestAnimateRejectsMalformedRequests(t *testing.T) {
	disposed := NewContainer("gone")
	disposed.Dispose()

	tests := []struct {
		name string
		cfg  TweenConfig
		want error
	}{
		{"nil target", TweenConfig{Property: PropertyX, Duration: time.Second}, ErrNilTarget},
		{"disposed target", TweenConfig{Target: disposed, Property: PropertyX, Duration: time.Second}, ErrDisposedTarget},
		{"negative duration", TweenConfig{Target: NewContainer("n"), Property: PropertyX, Duration: -time.Second}, ErrNegativeDuration},
		{"unknown property", TweenConfig{Target: NewContainer("n"), Property: Property(99), Duration: time.Second}, ErrUnknownProperty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnimator()
			err := a.Animate(tt.cfg)
			if !errors.Is(err, tt.want) {
				t.Errorf("Animate err = %v, want %v", err, tt.want)
			}
			if a.Len() != 0 {
				t.Errorf("Len = %d, want 0 after rejected request", a.Len())
			}
		})
	}
}

func TestTweenDisposedMidAnimation(t *testing.T) {
	node := NewContainer("mid-dispose")
	a := NewAnimator()
	completed := false
	mustAnimate(t, a, TweenConfig{
		Target: node, Property: PropertyX, To: 100, Duration: time.Second,
		OnComplete: func() { completed = true },
	})

	a.Update(0.1)
	a.Update(0.1)

	node.Dispose()
	saved := node.X

	a.Update(0.1)
	if a.Len() != 0 {
		t.Fatal("expected tween dropped after node disposed mid-animation")
	}
	if node.X != saved {
		t.Error("node fields should not change after disposal")
	}
	a.Update(1)
	if completed {
		t.Error("OnComplete should not fire for a disposed target")
	}
}

func TestAnimatorClear(t *testing.T) {
	node := NewContainer("clear")
	a := NewAnimator()
	completed := false
	mustAnimate(t, a, TweenConfig{Target: node, Property: PropertyX, To: 1, Duration: time.Second, OnComplete: func() { completed = true }})
	a.Update(0.5)
	mustAnimate(t, a, TweenConfig{Target: node, Property: PropertyY, To: 1, Duration: time.Second})

	a.Clear()
	if a.Len() != 0 {
		t.Fatalf("Len = %d after Clear, want 0", a.Len())
	}
	a.Update(1)
	if completed {
		t.Error("cleared tween should not complete")
	}
}

func TestClearFromOnComplete(t *testing.T) {
	a := NewAnimator()
	first := NewContainer("first")
	second := NewContainer("second")
	third := NewContainer("third")
	secondDone := false
	mustAnimate(t, a, TweenConfig{Target: first, Property: PropertyX, To: 10, Duration: 500 * time.Millisecond, OnComplete: a.Clear})
	mustAnimate(t, a, TweenConfig{Target: second, Property: PropertyX, To: 10, Duration: 500 * time.Millisecond, OnComplete: func() { secondDone = true }})
	mustAnimate(t, a, TweenConfig{Target: third, Property: PropertyX, To: 10, Duration: time.Hour})

	a.Update(1)

	if secondDone {
		t.Error("tween cleared mid-Update should not complete")
	}
	if second.X != 0 {
		t.Errorf("second.X = %f, want 0 (skipped after Clear)", second.X)
	}
	if a.Len() != 0 {
		t.Errorf("Len = %d after Clear from OnComplete, want 0", a.Len())
	}
	a.Update(1)
	if third.X != 0 {
		t.Errorf("third.X = %f, want 0", third.X)
	}
}

func TestClearFromOnCompleteKeepsLaterRequests(t *testing.T) {
	a := NewAnimator()
	node := NewContainer("restart")
	other := NewContainer("other")
	mustAnimate(t, a, TweenConfig{Target: node, Property: PropertyX, To: 10, Duration: time.Second, OnComplete: func() {
		a.Clear()
		mustAnimate(t, a, TweenConfig{Target: node, Property: PropertyY, To: 100, Duration: time.Second})
	}})
	mustAnimate(t, a, TweenConfig{Target: other, Property: PropertyX, To: 10, Duration: time.Hour})

	a.Update(1)
	if a.Len() != 1 {
		t.Fatalf("Len = %d, want 1 (the tween requested after Clear)", a.Len())
	}
	a.Update(0.5)
	if math.Abs(node.Y-50) > 0.01 {
		t.Errorf("Y = %f, want ~50", node.Y)
	}
}

func TestChainedTweenCarriesOvershoot(t *testing.T) {
	a := NewAnimator()
	node := NewContainer("chain")
	mustAnimate(t, a, TweenConfig{Target: node, Property: PropertyY, To: 10, Duration: time.Second, OnComplete: func() {
		mustAnimate(t, a, TweenConfig{Target: node, Property: PropertyX, To: 100, Duration: time.Second})
	}})

	a.Update(1.5) // 0.5s past the end of the first tween
	if node.X != 0 {
		t.Fatalf("X = %f before the chained tween ticked, want 0", node.X)
	}
	a.Update(0.25)
	if math.Abs(node.X-75) > 0.01 {
		t.Errorf("X = %f, want ~75 (0.5s carried + 0.25s)", node.X)
	}
}

func TestTweenEasingFunctionsProduceDifferentCurves(t *testing.T) {
	// Spot-check: linear vs OutQuad at the midpoint should differ.
	nodeL := NewContainer("linear")
	nodeQ := NewContainer("quad")

	a := NewAnimator()
	mustAnimate(t, a, TweenConfig{Target: nodeL, Property: PropertyX, To: 100, Duration: time.Second, Ease: ease.Linear})
	mustAnimate(t, a, TweenConfig{Target: nodeQ, Property: PropertyX, To: 100, Duration: time.Second, Ease: ease.OutQuad})

	a.Update(0.5)

	// OutQuad should be ahead of linear at midpoint.
	if nodeQ.X-nodeL.X < 1.0 {
		t.Errorf("OutQuad should lead linear at midpoint: linear=%f quad=%f", nodeL.X, nodeQ.X)
	}
}

func TestAnimatorUpdateZeroAlloc(t *testing.T) {
	node := NewContainer("alloc")
	a := NewAnimator()
	mustAnimate(t, a, TweenConfig{Target: node, Property: PropertyX, To: 100, Duration: time.Hour})

	// Warm up: the first tick creates the gween tween.
	a.Update(0.01)

	result := testing.AllocsPerRun(100, func() {
		a.Update(0.001)
	})
	if result > 0 {
		t.Errorf("Animator.Update allocated %f times per run, want 0", result)
	}
}
