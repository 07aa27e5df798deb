package model

// Stats holds counters over the full, unfiltered collection
type Stats struct {
	Total     int
	Completed int
}

// Active returns the number of tasks that are not completed
func (s Stats) Active() int {
	return s.Total - s.Completed
}

// Entry is a task together with its 1-based position in the full collection
type Entry struct {
	Position int
	Task     Task
}

// ViewModel is what the store emits for renderers: the filtered entries in
// collection order plus stats over everything.
type ViewModel struct {
	Filter  Filter
	Entries []Entry
	Stats   Stats
}

// IsEmpty returns true if nothing matches the filter
func (vm ViewModel) IsEmpty() bool {
	return len(vm.Entries) == 0
}
