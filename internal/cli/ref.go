package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ytget/tasklist/internal/model"
	"github.com/ytget/tasklist/internal/store"
)

var (
	// ErrTaskRefRequired indicates no task reference was provided
	ErrTaskRefRequired = errors.New("task reference required")

	// ErrTaskNotFound indicates the reference matches no task
	ErrTaskNotFound = errors.New("task not found")
)

// taskRef identifies a task either by its position in the full list (as
// printed by "list") or by raw id
type taskRef struct {
	Position int
	ID       int64
}

// parseTaskRef reads a reference from args, or uses id when it is non-zero
func parseTaskRef(args []string, id int64) (taskRef, error) {
	if id != 0 {
		if len(args) > 0 {
			return taskRef{}, fmt.Errorf("cannot use both --id and a task number")
		}
		return taskRef{ID: id}, nil
	}
	if len(args) == 0 {
		return taskRef{}, ErrTaskRefRequired
	}

	raw := strings.TrimSpace(args[0])
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return taskRef{}, fmt.Errorf("invalid task reference: %s", args[0])
	}
	return taskRef{Position: n}, nil
}

// resolve finds the referenced task and its 1-based position
func (r taskRef) resolve(s *store.Store) (model.Task, int, error) {
	tasks := s.Tasks()

	if r.ID != 0 {
		for i, task := range tasks {
			if task.ID == r.ID {
				return task, i + 1, nil
			}
		}
		return model.Task{}, 0, fmt.Errorf("%w: id %d", ErrTaskNotFound, r.ID)
	}

	if r.Position < 1 || r.Position > len(tasks) {
		return model.Task{}, 0, fmt.Errorf("%w: task number out of range: %d", ErrTaskNotFound, r.Position)
	}
	return tasks[r.Position-1], r.Position, nil
}
