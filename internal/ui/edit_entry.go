package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// EditEntry is the inline editor shown in place of a task's text. Return or
// focus loss commits, Escape cancels. Only the first of these takes effect.
type EditEntry struct {
	widget.Entry

	taskID   int64
	onCommit func(id int64, text string)
	onCancel func(id int64)
	finished bool
}

// NewEditEntry creates an editor for taskID prefilled with text
func NewEditEntry(taskID int64, text string, onCommit func(int64, string), onCancel func(int64)) *EditEntry {
	e := &EditEntry{
		taskID:   taskID,
		onCommit: onCommit,
		onCancel: onCancel,
	}
	e.ExtendBaseWidget(e)
	e.SetText(text)
	e.OnSubmitted = func(string) {
		e.finish(true)
	}
	return e
}

// TaskID returns the id of the task being edited
func (e *EditEntry) TaskID() int64 {
	return e.taskID
}

// TypedKey handles Escape and forwards everything else to the entry
func (e *EditEntry) TypedKey(key *fyne.KeyEvent) {
	if key.Name == fyne.KeyEscape {
		e.finish(false)
		return
	}
	e.Entry.TypedKey(key)
}

// FocusLost commits the edit
func (e *EditEntry) FocusLost() {
	e.Entry.FocusLost()
	e.finish(true)
}

func (e *EditEntry) finish(commit bool) {
	if e.finished {
		return
	}
	e.finished = true

	if commit {
		if e.onCommit != nil {
			e.onCommit(e.taskID, e.Text)
		}
		return
	}
	if e.onCancel != nil {
		e.onCancel(e.taskID)
	}
}
