package ui

import (
	"time"

	"fyne.io/fyne/v2/driver/mobile"
)

// Gesture is a classified touch on a task row
type Gesture int

const (
	GestureNone Gesture = iota
	GestureTap
	GestureLongPress
	GestureSwipeLeft
	GestureSwipeRight
)

// Gesture thresholds
const (
	DefaultSwipeDistance     float32 = 50
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// ClassifyGesture turns the movement and duration of a touch into a gesture.
// Mostly vertical movement is scrolling and yields GestureNone.
func ClassifyGesture(dx, dy float32, held time.Duration) Gesture {
	absDx, absDy := abs32(dx), abs32(dy)

	switch {
	case absDx >= DefaultSwipeDistance && absDx > absDy:
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	case absDx >= DefaultSwipeDistance || absDy >= DefaultSwipeDistance:
		return GestureNone
	case held >= DefaultLongPressDuration:
		return GestureLongPress
	default:
		return GestureTap
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// GestureTracker follows one touch from down to up and reports the gesture
type GestureTracker struct {
	OnGesture func(Gesture)

	now     func() time.Time
	active  bool
	started time.Time
	startX  float32
	startY  float32
}

// NewGestureTracker creates a tracker reporting to onGesture
func NewGestureTracker(onGesture func(Gesture)) *GestureTracker {
	return &GestureTracker{OnGesture: onGesture, now: time.Now}
}

// TouchDown implements mobile.Touchable
func (g *GestureTracker) TouchDown(event *mobile.TouchEvent) {
	g.active = true
	g.started = g.now()
	g.startX, g.startY = event.Position.X, event.Position.Y
}

// TouchUp implements mobile.Touchable
func (g *GestureTracker) TouchUp(event *mobile.TouchEvent) {
	if !g.active {
		return
	}
	g.active = false

	gesture := ClassifyGesture(event.Position.X-g.startX, event.Position.Y-g.startY, g.now().Sub(g.started))
	if gesture != GestureNone && g.OnGesture != nil {
		g.OnGesture(gesture)
	}
}

// TouchCancel implements mobile.Touchable
func (g *GestureTracker) TouchCancel(*mobile.TouchEvent) {
	g.active = false
}
