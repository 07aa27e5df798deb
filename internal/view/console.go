package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Console marks
const (
	MarkDone   = "[x]"
	MarkOpen   = "[ ]"
	CursorMark = ">"
)

// ConsoleRenderer draws a Display as styled terminal text
type ConsoleRenderer struct {
	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Row       lipgloss.Style
	Cursor    lipgloss.Style
	Done      lipgloss.Style
	Meta      lipgloss.Style
	Empty     lipgloss.Style
	Stats     lipgloss.Style

	// ShowIDs appends the raw task id to every row
	ShowIDs bool
}

// NewConsoleRenderer returns a renderer with the default palette
func NewConsoleRenderer() *ConsoleRenderer {
	return &ConsoleRenderer{
		Title:     lipgloss.NewStyle().Bold(true),
		Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ActiveTab: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("39")),
		Row:       lipgloss.NewStyle(),
		Cursor:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Done:      lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("241")),
		Meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Empty:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("244")),
		Stats:     lipgloss.NewStyle().Foreground(lipgloss.Color("70")),
	}
}

// Render draws the title, filter tabs, rows and stats. cursor is the index
// into d.Rows to highlight; pass -1 for none.
func (r *ConsoleRenderer) Render(d Display, cursor int) string {
	var b strings.Builder

	b.WriteString(r.Title.Render(d.Title))
	b.WriteString("\n")
	b.WriteString(r.Tabs(d))
	b.WriteString("\n\n")
	b.WriteString(r.List(d, cursor))
	b.WriteString("\n\n")
	b.WriteString(r.Footer(d))
	return b.String()
}

// Tabs draws the filter controls with the selected one highlighted
func (r *ConsoleRenderer) Tabs(d Display) string {
	tabs := make([]string, 0, len(d.Filters))
	for _, tab := range d.Filters {
		if tab.Selected {
			tabs = append(tabs, r.ActiveTab.Render("["+tab.Label+"]"))
			continue
		}
		tabs = append(tabs, r.Tab.Render(" "+tab.Label+" "))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// List draws the rows, or the empty-state message
func (r *ConsoleRenderer) List(d Display, cursor int) string {
	if d.IsEmpty() {
		return r.Empty.Render(d.EmptyMessage)
	}

	lines := make([]string, 0, len(d.Rows))
	for i, row := range d.Rows {
		lines = append(lines, r.row(row, i == cursor))
	}
	return strings.Join(lines, "\n")
}

// Footer draws the stats line
func (r *ConsoleRenderer) Footer(d Display) string {
	return r.Stats.Render(d.TotalLabel + "  " + d.CompletedLabel)
}

func (r *ConsoleRenderer) row(row Row, selected bool) string {
	pointer := " "
	if selected {
		pointer = CursorMark
	}

	mark := MarkOpen
	text := r.Row.Render(row.Text)
	if row.Completed {
		mark = MarkDone
		text = r.Done.Render(row.Text)
	}

	meta := row.CreatedAt
	if r.ShowIDs {
		meta = fmt.Sprintf("%s  id:%d", meta, row.ID)
	}

	line := fmt.Sprintf("%s %3d. %s %s  %s", pointer, row.Position, mark, text, r.Meta.Render(meta))
	if selected {
		return r.Cursor.Render(line)
	}
	return line
}
