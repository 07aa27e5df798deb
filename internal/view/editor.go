package view

import "github.com/ytget/tasklist/internal/model"

// TaskEditor is the part of the store the editor needs
type TaskEditor interface {
	Get(id int64) (model.Task, bool)
	Edit(id int64, newText string) bool
}

// Editor tracks which task, if any, is being edited. The edit target is
// remembered by id so re-renders between Begin and Commit do not lose it.
type Editor struct {
	tasks   TaskEditor
	editing bool
	id      int64
}

// NewEditor creates an idle editor over tasks
func NewEditor(tasks TaskEditor) *Editor {
	return &Editor{tasks: tasks}
}

// Begin enters edit mode for id and returns the text to prefill. It fails for
// unknown and completed tasks. A pending edit of another task is cancelled.
func (e *Editor) Begin(id int64) (string, bool) {
	task, ok := e.tasks.Get(id)
	if !ok || !task.IsEditable() {
		return "", false
	}
	e.editing = true
	e.id = id
	return task.Text, true
}

// Commit applies text to the task being edited and returns to idle. It
// reports whether the stored text changed. Calling it while idle does
// nothing, so a commit racing a cancel is harmless.
func (e *Editor) Commit(text string) bool {
	if !e.editing {
		return false
	}
	id := e.id
	e.reset()
	return e.tasks.Edit(id, text)
}

// Cancel leaves edit mode without touching the task
func (e *Editor) Cancel() {
	e.reset()
}

// Editing reports whether an edit is in progress
func (e *Editor) Editing() bool {
	return e.editing
}

// EditingID returns the id being edited
func (e *Editor) EditingID() (int64, bool) {
	return e.id, e.editing
}

// IsEditing reports whether id is the task being edited
func (e *Editor) IsEditing(id int64) bool {
	return e.editing && e.id == id
}

func (e *Editor) reset() {
	e.editing = false
	e.id = 0
}
