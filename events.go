package tweenjump

// EntityStore is the interface for optional ECS integration.
// When set on a Stage, motion events are forwarded to the ECS.
type EntityStore interface {
	EmitMotionEvent(event MotionEvent)
}

// MotionEventType identifies a phase transition of a higher-to-lower motion.
type MotionEventType uint8

const (
	MotionAscend   MotionEventType = iota // fires when the ascend and slide are scheduled
	MotionPeak                            // fires when the ascend completes
	MotionLand                            // fires when the descend completes
	MotionSlideEnd                        // fires when the horizontal slide completes
	MotionAborted                         // fires when the descend could not be scheduled
)

var motionEventNames = [...]string{
	MotionAscend:   "ascend",
	MotionPeak:     "peak",
	MotionLand:     "land",
	MotionSlideEnd: "slide-end",
	MotionAborted:  "aborted",
}

func (t MotionEventType) String() string {
	if int(t) < len(motionEventNames) {
		return motionEventNames[t]
	}
	return "unknown"
}

// MotionEvent carries the target's position at the moment of the transition.
type MotionEvent struct {
	Type   MotionEventType
	NodeID uint32
	X, Y   float64
	// Err is set for MotionAborted only.
	Err error
}
