package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/tasklist/internal/view"
)

func TestClassifyGesture(t *testing.T) {
	tests := []struct {
		name string
		dx   float32
		dy   float32
		held time.Duration
		want Gesture
	}{
		{"tap", 2, 1, 100 * time.Millisecond, GestureTap},
		{"long press", 3, -2, 600 * time.Millisecond, GestureLongPress},
		{"swipe right", 80, 10, 200 * time.Millisecond, GestureSwipeRight},
		{"swipe left", -80, 10, 200 * time.Millisecond, GestureSwipeLeft},
		{"slow swipe", 80, 0, time.Second, GestureSwipeRight},
		{"scroll", 10, 120, 200 * time.Millisecond, GestureNone},
	}

	for _, tc := range tests {
		if got := ClassifyGesture(tc.dx, tc.dy, tc.held); got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func touchAt(x, y float32) *mobile.TouchEvent {
	return &mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestGestureTracker(t *testing.T) {
	var got []Gesture
	tracker := NewGestureTracker(func(g Gesture) { got = append(got, g) })

	now := time.Unix(0, 0)
	tracker.now = func() time.Time { return now }

	tracker.TouchDown(touchAt(10, 10))
	now = now.Add(DefaultLongPressDuration)
	tracker.TouchUp(touchAt(12, 11))

	tracker.TouchDown(touchAt(10, 10))
	tracker.TouchCancel(touchAt(10, 10))
	tracker.TouchUp(touchAt(200, 10))

	if len(got) != 1 || got[0] != GestureLongPress {
		t.Errorf("Expected a single long press, got %v", got)
	}
}

func TestTaskRow_Gestures(t *testing.T) {
	test.NewApp()

	var toggled, edited []int64
	callbacks := RowCallbacks{
		OnToggle:    func(id int64) { toggled = append(toggled, id) },
		OnBeginEdit: func(id int64) { edited = append(edited, id) },
	}

	open := NewTaskRow(view.Row{ID: 1, Text: "open", Editable: true}, "", callbacks, nil)
	open.onGesture(GestureLongPress)
	open.onGesture(GestureSwipeRight)
	open.onGesture(GestureSwipeLeft)

	done := NewTaskRow(view.Row{ID: 2, Text: "done", Completed: true}, "", callbacks, nil)
	done.onGesture(GestureLongPress)
	done.onGesture(GestureSwipeRight)

	if len(edited) != 1 || edited[0] != 1 {
		t.Errorf("Expected only the open task to start editing, got %v", edited)
	}
	if len(toggled) != 2 || toggled[0] != 1 || toggled[1] != 2 {
		t.Errorf("Expected both rows to toggle on swipe, got %v", toggled)
	}
}
