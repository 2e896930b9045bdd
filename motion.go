package tweenjump

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// MotionDescriptor describes a higher-to-lower jump: the target rises from
// StartY to PeakY, then falls to DestY, while sliding horizontally to DestX
// over the combined duration. Y grows downward, so "rising" means a smaller Y.
//
// The descriptor borrows Target for the duration of the call.
type MotionDescriptor struct {
	Target *Node

	StartX, StartY float64
	PeakY          float64
	DestX, DestY   float64

	FirstDuration  time.Duration // ascend leg
	SecondDuration time.Duration // descend leg

	Easing EasingPair

	// OnEvent, if set, observes the phase transitions of the motion.
	OnEvent func(MotionEvent)
}

// TotalDuration is the time spent on both vertical legs, which is also the
// duration of the horizontal slide.
func (d MotionDescriptor) TotalDuration() time.Duration {
	return d.FirstDuration + d.SecondDuration
}

// MotionReason says why a descriptor was rejected.
type MotionReason string

const (
	ReasonNonFinite        MotionReason = "non-finite coordinate"
	ReasonNotHigherToLower MotionReason = "not higher to lower"
	ReasonInvalidPeak      MotionReason = "invalid peak Y"
	ReasonInvalidDuration  MotionReason = "invalid duration"
)

// Sentinels for errors.Is against an *InvalidMotionError.
var (
	ErrNonFinite        = &InvalidMotionError{Reason: ReasonNonFinite}
	ErrNotHigherToLower = &InvalidMotionError{Reason: ReasonNotHigherToLower}
	ErrInvalidPeak      = &InvalidMotionError{Reason: ReasonInvalidPeak}
	ErrInvalidDuration  = &InvalidMotionError{Reason: ReasonInvalidDuration}
)

// InvalidMotionError is returned by Validate. Field names the offending
// descriptor field when one field alone is at fault.
type InvalidMotionError struct {
	Reason MotionReason
	Field  string
}

func (e *InvalidMotionError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid motion: %s (%s)", e.Reason, e.Field)
	}
	return "invalid motion: " + string(e.Reason)
}

// Is matches any *InvalidMotionError with the same Reason, so
// errors.Is(err, ErrInvalidDuration) holds for both duration fields.
func (e *InvalidMotionError) Is(target error) bool {
	var t *InvalidMotionError
	if !errors.As(target, &t) {
		return false
	}
	return t.Reason == e.Reason
}

// Validate checks that d describes a sensible higher-to-lower arc. The first
// failing check determines the reported reason. Validate has no side effects.
func Validate(d MotionDescriptor) error {
	coords := [...]struct {
		name string
		v    float64
	}{
		{"startX", d.StartX}, {"startY", d.StartY}, {"peakY", d.PeakY},
		{"destX", d.DestX}, {"destY", d.DestY},
	}
	for _, c := range coords {
		if math.IsNaN(c.v) || math.IsInf(c.v, 0) {
			return &InvalidMotionError{Reason: ReasonNonFinite, Field: c.name}
		}
	}

	if d.DestY <= d.StartY {
		return &InvalidMotionError{Reason: ReasonNotHigherToLower}
	}
	if d.PeakY >= d.StartY || d.PeakY >= d.DestY {
		return &InvalidMotionError{Reason: ReasonInvalidPeak}
	}
	if d.FirstDuration <= 0 {
		return &InvalidMotionError{Reason: ReasonInvalidDuration, Field: "firstDuration"}
	}
	if d.SecondDuration <= 0 {
		return &InvalidMotionError{Reason: ReasonInvalidDuration, Field: "secondDuration"}
	}
	return nil
}

// Compose schedules the motion on s: an ascend to PeakY, a descend to DestY
// requested only once the ascend completes, and a linear slide to DestX over
// the total duration requested right away. Compose does not validate d; use
// TweenHigherToLower for the checked entry point.
//
// Errors from the two immediate requests are returned unchanged. A failure of
// the deferred descend request is reported as a MotionAborted event.
func Compose(s Scheduler, d MotionDescriptor) error {
	target := d.Target
	emit := func(typ MotionEventType, err error) {
		if d.OnEvent == nil {
			return
		}
		ev := MotionEvent{Type: typ, Err: err}
		if target != nil {
			ev.NodeID, ev.X, ev.Y = target.ID, target.X, target.Y
		}
		d.OnEvent(ev)
	}

	descend := func() {
		emit(MotionPeak, nil)
		err := s.Animate(TweenConfig{
			Target:   target,
			Property: PropertyY,
			To:       d.DestY,
			Duration: d.SecondDuration,
			Ease:     d.Easing.In,
			OnComplete: func() {
				emit(MotionLand, nil)
			},
		})
		if err != nil {
			debugf("descend aborted: %v", err)
			emit(MotionAborted, err)
		}
	}

	if err := s.Animate(TweenConfig{
		Target:     target,
		Property:   PropertyY,
		To:         d.PeakY,
		Duration:   d.FirstDuration,
		Ease:       d.Easing.Out,
		OnComplete: descend,
	}); err != nil {
		return err
	}

	if err := s.Animate(TweenConfig{
		Target:   target,
		Property: PropertyX,
		To:       d.DestX,
		Duration: d.TotalDuration(),
		OnComplete: func() {
			emit(MotionSlideEnd, nil)
		},
	}); err != nil {
		return err
	}

	emit(MotionAscend, nil)
	return nil
}

// TweenHigherToLower validates d and, if it is sound, composes it on s.
// Nothing is scheduled when validation fails.
func TweenHigherToLower(s Scheduler, d MotionDescriptor) error {
	if err := Validate(d); err != nil {
		return err
	}
	return Compose(s, d)
}
