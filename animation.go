package tweenjump

import (
	"errors"
	"fmt"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Errors returned by Animator.Animate for malformed requests.
var (
	ErrNilTarget        = errors.New("tween target is nil")
	ErrDisposedTarget   = errors.New("tween target is disposed")
	ErrNegativeDuration = errors.New("tween duration is negative")
	ErrUnknownProperty  = errors.New("tween property is unknown")
)

// TweenConfig describes one animation request: move Property of Target from
// its current value to To over Duration, shaped by Ease.
type TweenConfig struct {
	Target   *Node
	Property Property
	To       float64
	Duration time.Duration

	// Ease shapes the interpolation. Nil means linear.
	Ease ease.TweenFunc

	// OnComplete fires once, from inside Animator.Update, after the final
	// value has been written. It does not fire if the target is disposed
	// first.
	OnComplete func()
}

// Scheduler accepts animation requests. Animator is the implementation used
// by Stage; tests substitute recorders.
type Scheduler interface {
	Animate(cfg TweenConfig) error
}

// Tween is one scheduled property animation.
type Tween struct {
	cfg   TweenConfig
	tw    *gween.Tween
	field *float64
	Done  bool

	// elapsed is the time fed to tw so far; carry is time already owed to
	// the tween when it starts, left over from the tween that requested it.
	elapsed float32
	carry   float32
}

// update advances the tween by dt seconds and reports whether it finished on
// this tick. The start value is read from the target on the first tick so a
// tween requested from another tween's completion starts where that one ended.
func (t *Tween) update(dt float32) (finished bool) {
	if t.Done {
		return false
	}
	if t.cfg.Target.IsDisposed() {
		t.Done = true
		return false
	}
	if t.tw == nil {
		t.tw = gween.New(float32(*t.field), float32(t.cfg.To), float32(t.cfg.Duration.Seconds()), t.cfg.Ease)
		dt += t.carry
	}
	t.elapsed += dt
	val, done := t.tw.Update(dt)
	if done {
		// Write the exact destination rather than the float32 round trip.
		*t.field = t.cfg.To
		t.Done = true
		return true
	}
	*t.field = float64(val)
	return false
}

// overshoot is how far the last tick ran past the end of the tween.
func (t *Tween) overshoot() float32 {
	return max(t.elapsed-float32(t.cfg.Duration.Seconds()), 0)
}

// Animator is a frame-driven tween scheduler. Call Update(dt) once per frame;
// there is no background goroutine.
type Animator struct {
	active  []*Tween
	pending []*Tween

	updating bool
	cleared  bool
	carry    float32 // overshoot of the tween whose OnComplete is running
}

// NewAnimator returns an empty Animator.
func NewAnimator() *Animator {
	return &Animator{}
}

// Animate schedules cfg. The tween starts on the next Update. Requests made
// from an OnComplete callback join after the current Update returns, and are
// credited with the time the completed tween ran past its end so chained
// tweens keep to the frame-independent timeline.
func (a *Animator) Animate(cfg TweenConfig) error {
	if cfg.Target == nil {
		return ErrNilTarget
	}
	if cfg.Target.IsDisposed() {
		return fmt.Errorf("animate %s: %w", cfg.Property, ErrDisposedTarget)
	}
	if cfg.Duration < 0 {
		return fmt.Errorf("animate %s over %v: %w", cfg.Property, cfg.Duration, ErrNegativeDuration)
	}
	field := cfg.Target.field(cfg.Property)
	if field == nil {
		return fmt.Errorf("animate property %d: %w", cfg.Property, ErrUnknownProperty)
	}
	if cfg.Ease == nil {
		cfg.Ease = ease.Linear
	}
	a.pending = append(a.pending, &Tween{cfg: cfg, field: field, carry: a.carry})
	debugf("tween %q.%s -> %.2f over %v", cfg.Target.Name, cfg.Property, cfg.To, cfg.Duration)
	return nil
}

// Update advances every active tween by dt seconds, writes the values to the
// targets and fires completion callbacks for the tweens that finished.
// Callbacks may call Animate and Clear.
func (a *Animator) Update(dt float32) {
	a.active = append(a.active, a.pending...)
	clear(a.pending)
	a.pending = a.pending[:0]

	a.updating = true
	n := 0
	for _, t := range a.active {
		if t.update(dt) && t.cfg.OnComplete != nil {
			a.carry = t.overshoot()
			t.cfg.OnComplete()
			a.carry = 0
		}
		if !t.Done {
			a.active[n] = t
			n++
		}
	}
	a.updating = false
	if a.cleared {
		a.cleared = false
		n = 0
	}
	clear(a.active[n:])
	a.active = a.active[:n]
}

// Len returns the number of scheduled tweens, including those that have not
// ticked yet.
func (a *Animator) Len() int {
	return len(a.active) + len(a.pending)
}

// Clear drops every scheduled tween without firing completions. Called from
// an OnComplete callback, the remaining tweens of that Update are skipped and
// the active list is emptied once Update returns; tweens requested after the
// Clear are kept.
func (a *Animator) Clear() {
	for _, t := range a.active {
		t.Done = true
	}
	clear(a.pending)
	a.pending = a.pending[:0]
	if a.updating {
		a.cleared = true
		return
	}
	clear(a.active)
	a.active = a.active[:0]
}
