package store

import (
	"io"
	"log/slog"
	"time"

	"github.com/ytget/tasklist/internal/model"
)

// Store holds the task collection and writes it through to Storage after
// every mutation. It is owned by a single goroutine (the UI event loop) and
// performs no locking.
type Store struct {
	storage   Storage
	key       string
	tasks     []model.Task
	now       func() time.Time
	logger    *slog.Logger
	listeners []func()
	saveErr   error
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the time source used for ids and createdAt
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithKey overrides the storage key (DefaultKey otherwise)
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// New creates a store and loads the collection from storage. Absent or
// unparsable data yields an empty collection.
func New(storage Storage, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		key:     DefaultKey,
		now:     time.Now,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s
}

func (s *Store) load() {
	s.tasks = []model.Task{}

	raw, ok, err := s.storage.Get(s.key)
	if err != nil {
		s.logger.Warn("failed to read tasks, starting empty", "key", s.key, "err", err)
		return
	}
	if !ok {
		s.logger.Debug("no stored tasks", "key", s.key)
		return
	}

	tasks, dropped, err := Decode(raw)
	if err != nil {
		s.logger.Warn("stored tasks are unreadable, starting empty", "key", s.key, "err", err)
		return
	}
	if dropped > 0 {
		s.logger.Warn("dropped invalid task records", "key", s.key, "dropped", dropped)
	}
	s.tasks = tasks
	s.logger.Debug("tasks loaded", "key", s.key, "count", len(tasks))
}

// Subscribe registers fn to be called after every operation
func (s *Store) Subscribe(fn func()) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

// SaveErr returns the error of the last write attempt, nil if it succeeded
func (s *Store) SaveErr() error {
	return s.saveErr
}

// Add appends a task with the given text. Blank text is ignored and
// reported with ok=false.
func (s *Store) Add(text string) (task model.Task, ok bool) {
	text, ok = model.NormalizeText(text)
	if !ok {
		return model.Task{}, false
	}

	created := s.now()
	task = model.NewTask(s.nextID(created), text, created)
	s.tasks = append(s.tasks, task)

	s.persist()
	s.notify()
	return task, true
}

// Delete removes the task with the given id. Unknown ids are ignored.
func (s *Store) Delete(id int64) bool {
	idx := s.indexOf(id)
	if idx >= 0 {
		s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
		s.persist()
	}
	s.notify()
	return idx >= 0
}

// Toggle flips the completed flag of the task with the given id
func (s *Store) Toggle(id int64) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.tasks[idx].Completed = !s.tasks[idx].Completed

	s.persist()
	s.notify()
	return true
}

// Edit replaces the text of the task with the given id. Blank or unchanged
// text leaves the task untouched; subscribers are notified either way so the
// view can be restored.
func (s *Store) Edit(id int64, newText string) bool {
	defer s.notify()

	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	text, ok := model.NormalizeText(newText)
	if !ok || text == s.tasks[idx].Text {
		return false
	}

	s.tasks[idx].Text = text
	s.persist()
	return true
}

// Get returns a copy of the task with the given id
func (s *Store) Get(id int64) (model.Task, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Task{}, false
	}
	return s.tasks[idx], true
}

// Tasks returns a copy of the full collection in insertion order
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks
func (s *Store) Len() int {
	return len(s.tasks)
}

// Filtered returns the tasks matching filter, preserving order
func (s *Store) Filtered(filter model.Filter) []model.Task {
	out := make([]model.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if filter.Matches(task) {
			out = append(out, task)
		}
	}
	return out
}

// Stats returns counters over the full collection
func (s *Store) Stats() model.Stats {
	stats := model.Stats{Total: len(s.tasks)}
	for _, task := range s.tasks {
		if task.Completed {
			stats.Completed++
		}
	}
	return stats
}

// View builds the view model for filter
func (s *Store) View(filter model.Filter) model.ViewModel {
	vm := model.ViewModel{
		Filter:  filter,
		Entries: make([]model.Entry, 0, len(s.tasks)),
		Stats:   s.Stats(),
	}
	for i, task := range s.tasks {
		if filter.Matches(task) {
			vm.Entries = append(vm.Entries, model.Entry{Position: i + 1, Task: task})
		}
	}
	return vm
}

// nextID derives an id from the creation time, bumped past the largest
// existing id so ids stay unique when the clock stalls or goes backwards.
func (s *Store) nextID(created time.Time) int64 {
	id := created.UnixMilli()
	for _, task := range s.tasks {
		if task.ID >= id {
			id = task.ID + 1
		}
	}
	return id
}

func (s *Store) indexOf(id int64) int {
	for i, task := range s.tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persist() {
	raw, err := Encode(s.tasks)
	if err == nil {
		err = s.storage.Set(s.key, raw)
	}
	s.saveErr = err
	if err != nil {
		s.logger.Error("failed to save tasks", "key", s.key, "count", len(s.tasks), "err", err)
		return
	}
	s.logger.Debug("tasks saved", "key", s.key, "count", len(s.tasks))
}

func (s *Store) notify() {
	for _, fn := range s.listeners {
		fn()
	}
}
