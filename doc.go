// Package tweenjump animates a sprite along a higher-to-lower jump on a small
// retained-mode stage for [Ebitengine].
//
// The jump is described by a [MotionDescriptor]: the target rises from its
// start to a peak, then falls to a destination below the start, while it
// slides horizontally for the whole duration. [Validate] rejects descriptors
// that do not describe such an arc and [Compose] turns a valid one into three
// tween requests on a [Scheduler]:
//
//	d := tweenjump.MotionDescriptor{
//		Target: coin,
//		StartX: 100, StartY: 300,
//		PeakY:  80,
//		DestX:  500, DestY: 500,
//		FirstDuration:  750 * time.Millisecond,
//		SecondDuration: 750 * time.Millisecond,
//		Easing: tweenjump.Quadratic,
//	}
//	if err := stage.TweenHigherToLower(d); err != nil {
//		var ime *tweenjump.InvalidMotionError
//		if errors.As(err, &ime) {
//			log.Printf("rejected: %s", ime.Reason)
//		}
//	}
//
// The vertical legs run one after the other: the descend is requested from
// the ascend's completion callback. The slide is requested immediately and
// spans both legs.
//
// # Stage and scenes
//
// A [Scene] queues assets in OnLoad and builds nodes in OnCreate. [Run] hosts
// a scene in an Ebitengine window; the term package hosts the same scene in a
// terminal. Both tick the stage's [Animator], a frame-driven scheduler built
// on [gween].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package tweenjump
