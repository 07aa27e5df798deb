package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/tasklist/internal/view"
)

// RowCallbacks are the actions a TaskRow can trigger. All receive the task id.
type RowCallbacks struct {
	OnToggle    func(id int64)
	OnDelete    func(id int64)
	OnBeginEdit func(id int64)
}

// TaskLabel is a label that reports double taps and, on touch screens,
// long presses and swipes
type TaskLabel struct {
	widget.Label

	OnDoubleTapped func()
	OnGesture      func(Gesture)

	gestures *GestureTracker
}

// NewTaskLabel creates a label for task text
func NewTaskLabel(text string) *TaskLabel {
	l := &TaskLabel{}
	l.gestures = NewGestureTracker(func(g Gesture) {
		if l.OnGesture != nil {
			l.OnGesture(g)
		}
	})
	l.ExtendBaseWidget(l)
	l.SetText(text)
	return l
}

// DoubleTapped implements fyne.DoubleTappable
func (l *TaskLabel) DoubleTapped(*fyne.PointEvent) {
	if l.OnDoubleTapped != nil {
		l.OnDoubleTapped()
	}
}

// TouchDown implements mobile.Touchable
func (l *TaskLabel) TouchDown(event *mobile.TouchEvent) { l.gestures.TouchDown(event) }

// TouchUp implements mobile.Touchable
func (l *TaskLabel) TouchUp(event *mobile.TouchEvent) { l.gestures.TouchUp(event) }

// TouchCancel implements mobile.Touchable
func (l *TaskLabel) TouchCancel(event *mobile.TouchEvent) { l.gestures.TouchCancel(event) }

// TaskRow shows one task: completion check, text (or the inline editor),
// creation time and a delete button
type TaskRow struct {
	widget.BaseWidget

	row       view.Row
	callbacks RowCallbacks

	check     *widget.Check
	textLabel *TaskLabel
	dateLabel *widget.Label
	deleteBtn *widget.Button
	editEntry *EditEntry
}

// NewTaskRow creates a row for row. When editEntry is non-nil it replaces the
// text label.
func NewTaskRow(row view.Row, deleteLabel string, callbacks RowCallbacks, editEntry *EditEntry) *TaskRow {
	tr := &TaskRow{
		row:       row,
		callbacks: callbacks,
		editEntry: editEntry,
	}
	tr.ExtendBaseWidget(tr)
	tr.createUI(deleteLabel)
	return tr
}

// createUI creates the UI components
func (tr *TaskRow) createUI(deleteLabel string) {
	id := tr.row.ID

	tr.check = widget.NewCheck("", nil)
	// Set state before wiring so the initial value does not fire a toggle
	tr.check.SetChecked(tr.row.Completed)
	tr.check.OnChanged = func(bool) {
		if tr.callbacks.OnToggle != nil {
			tr.callbacks.OnToggle(id)
		}
	}

	tr.textLabel = NewTaskLabel(tr.row.Text)
	tr.textLabel.Wrapping = fyne.TextWrapWord
	if tr.row.Completed {
		tr.textLabel.Importance = widget.LowImportance
		tr.textLabel.TextStyle = fyne.TextStyle{Italic: true}
	}
	if tr.row.Editable {
		tr.textLabel.OnDoubleTapped = func() {
			if tr.callbacks.OnBeginEdit != nil {
				tr.callbacks.OnBeginEdit(id)
			}
		}
	}
	tr.textLabel.OnGesture = tr.onGesture

	tr.dateLabel = widget.NewLabel(tr.row.CreatedAt)
	tr.dateLabel.Importance = widget.LowImportance
	tr.dateLabel.SizeName = theme.SizeNameCaptionText

	tr.deleteBtn = widget.NewButton(IconDelete, func() {
		if tr.callbacks.OnDelete != nil {
			tr.callbacks.OnDelete(id)
		}
	})
	tr.deleteBtn.Importance = widget.LowImportance
	if deleteLabel != "" {
		tr.deleteBtn.SetText(IconDelete + " " + deleteLabel)
	}
}

// onGesture maps touch gestures: long press edits, swipe right toggles
func (tr *TaskRow) onGesture(g Gesture) {
	switch g {
	case GestureLongPress:
		if tr.row.Editable && tr.callbacks.OnBeginEdit != nil {
			tr.callbacks.OnBeginEdit(tr.row.ID)
		}
	case GestureSwipeRight:
		if tr.callbacks.OnToggle != nil {
			tr.callbacks.OnToggle(tr.row.ID)
		}
	}
}

// Row returns the rendered task
func (tr *TaskRow) Row() view.Row {
	return tr.row
}

// Completed reports whether the row carries the completed marker
func (tr *TaskRow) Completed() bool {
	return tr.check.Checked
}

// Editing reports whether the inline editor is shown
func (tr *TaskRow) Editing() bool {
	return tr.editEntry != nil
}

// CreateRenderer creates the widget renderer
func (tr *TaskRow) CreateRenderer() fyne.WidgetRenderer {
	var center fyne.CanvasObject = tr.textLabel
	if tr.editEntry != nil {
		center = tr.editEntry
	}

	right := container.NewHBox(tr.dateLabel, tr.deleteBtn)
	content := container.NewBorder(nil, nil, tr.check, right, center)
	return widget.NewSimpleRenderer(container.New(layout.NewCustomPaddedLayout(0, 0, 4, 4), content))
}

// MinSize keeps rows from collapsing in narrow windows
func (tr *TaskRow) MinSize() fyne.Size {
	min := tr.BaseWidget.MinSize()
	if min.Width < RowMinWidth {
		min.Width = RowMinWidth
	}
	return min
}
