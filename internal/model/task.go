package model

import (
	"fmt"
	"strings"
	"time"
)

// Task represents a single user-entered item
type Task struct {
	ID        int64  `json:"id"`        // creation time in Unix milliseconds, unique within a collection
	Text      string `json:"text"`      // never blank once stored
	Completed bool   `json:"completed"` // completion flag
	CreatedAt string `json:"createdAt"` // display string, see FormatCreatedAt
}

// NewTask creates an incomplete task with trimmed text created at the given time.
func NewTask(id int64, text string, created time.Time) Task {
	return Task{
		ID:        id,
		Text:      strings.TrimSpace(text),
		Completed: false,
		CreatedAt: FormatCreatedAt(created),
	}
}

// IsEditable reports whether the text may be edited in place
func (t Task) IsEditable() bool {
	return !t.Completed
}

// FormatCreatedAt formats t the way ja-JP locale strings look:
// "2024/1/5 9:03:07". Month, day and hour are not zero padded.
func FormatCreatedAt(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d %d:%02d:%02d",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
}

// NormalizeText trims surrounding whitespace. It returns false when nothing is left.
func NormalizeText(text string) (string, bool) {
	text = strings.TrimSpace(text)
	return text, text != ""
}
