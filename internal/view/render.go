package view

import "github.com/ytget/tasklist/internal/model"

// Row is one rendered task
type Row struct {
	ID        int64
	Position  int // 1-based position in the full collection
	Text      string
	CreatedAt string
	Completed bool
	Editable  bool
}

// FilterTab is one filter control
type FilterTab struct {
	Filter   model.Filter
	Label    string
	Selected bool
}

// Display is everything a front-end needs to draw the list. Exactly one of
// Rows and EmptyMessage is populated.
type Display struct {
	Title          string
	Placeholder    string
	AddLabel       string
	DeleteLabel    string
	Filter         model.Filter
	Filters        []FilterTab
	Rows           []Row
	EmptyMessage   string
	TotalLabel     string
	CompletedLabel string
}

// IsEmpty returns true if no rows are shown
func (d Display) IsEmpty() bool {
	return len(d.Rows) == 0
}

// Render maps a view model to a Display. It has no side effects; a nil
// localization renders English.
func Render(vm model.ViewModel, loc *Localization) Display {
	if loc == nil {
		loc = NewLocalization()
	}

	d := Display{
		Title:          loc.GetText(KeyAppTitle),
		Placeholder:    loc.GetText(KeyAddPlaceholder),
		AddLabel:       loc.GetText(KeyAdd),
		DeleteLabel:    loc.GetText(KeyDelete),
		Filter:         vm.Filter,
		Filters:        make([]FilterTab, 0, len(model.Filters)),
		TotalLabel:     loc.Format(KeyTotalCount, vm.Stats.Total),
		CompletedLabel: loc.Format(KeyCompletedCount, vm.Stats.Completed),
	}

	for _, f := range model.Filters {
		d.Filters = append(d.Filters, FilterTab{
			Filter:   f,
			Label:    loc.GetText(FilterLabelKey(f)),
			Selected: f == vm.Filter,
		})
	}

	if vm.IsEmpty() {
		d.EmptyMessage = loc.GetText(EmptyMessageKey(vm.Filter))
		return d
	}

	d.Rows = make([]Row, 0, len(vm.Entries))
	for _, e := range vm.Entries {
		d.Rows = append(d.Rows, Row{
			ID:        e.Task.ID,
			Position:  e.Position,
			Text:      e.Task.Text,
			CreatedAt: e.Task.CreatedAt,
			Completed: e.Task.Completed,
			Editable:  e.Task.IsEditable(),
		})
	}
	return d
}

// FilterLabelKey returns the localization key of a filter's label
func FilterLabelKey(f model.Filter) string {
	switch f {
	case model.FilterActive:
		return KeyFilterActive
	case model.FilterCompleted:
		return KeyFilterCompleted
	default:
		return KeyFilterAll
	}
}

// EmptyMessageKey returns the localization key of the message shown when
// nothing matches f
func EmptyMessageKey(f model.Filter) string {
	switch f {
	case model.FilterActive:
		return KeyEmptyActive
	case model.FilterCompleted:
		return KeyEmptyCompleted
	default:
		return KeyEmptyAll
	}
}
