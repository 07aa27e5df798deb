package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ytget/tasklist/internal/model"
)

// Encode serializes tasks as a JSON array of {id, text, completed, createdAt} records.
// A nil or empty collection encodes as "[]".
func Encode(tasks []model.Task) (string, error) {
	if tasks == nil {
		tasks = []model.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return "", fmt.Errorf("encode tasks: %w", err)
	}
	return string(data), nil
}

// Decode parses a serialized collection. Records with blank text or a
// duplicate id are dropped; dropped reports how many.
func Decode(raw string) (tasks []model.Task, dropped int, err error) {
	if strings.TrimSpace(raw) == "" {
		return nil, 0, fmt.Errorf("decode tasks: empty payload")
	}

	var records []model.Task
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, 0, fmt.Errorf("decode tasks: %w", err)
	}

	seen := make(map[int64]struct{}, len(records))
	tasks = make([]model.Task, 0, len(records))
	for _, rec := range records {
		if strings.TrimSpace(rec.Text) == "" {
			dropped++
			continue
		}
		if _, dup := seen[rec.ID]; dup {
			dropped++
			continue
		}
		seen[rec.ID] = struct{}{}
		tasks = append(tasks, rec)
	}
	return tasks, dropped, nil
}
