package tui

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/tasklist/internal/model"
	"github.com/ytget/tasklist/internal/store"
	"github.com/ytget/tasklist/internal/view"
)

type inputMode int

const (
	modeNormal inputMode = iota
	modeAdd
	modeEdit
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().MarginTop(1)
)

// Options configures the terminal UI
type Options struct {
	Store        *store.Store
	Localization *view.Localization
	Logger       *slog.Logger
	Filter       model.Filter
}

// Model is the Bubble Tea model over a task store
type Model struct {
	store    *store.Store
	loc      *view.Localization
	renderer *view.ConsoleRenderer
	editor   *view.Editor
	logger   *slog.Logger

	keys  KeyMap
	help  help.Model
	input textinput.Model

	mode    inputMode
	filter  model.Filter
	cursor  int
	display view.Display
	width   int
}

// New creates the model and subscribes it to store changes
func New(opts Options) *Model {
	loc := opts.Localization
	if loc == nil {
		loc = view.NewLocalization()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	filter := opts.Filter
	if filter == "" {
		filter = model.FilterAll
	}

	ti := textinput.New()
	ti.CharLimit = 0
	ti.Prompt = "> "

	m := &Model{
		store:    opts.Store,
		loc:      loc,
		renderer: view.NewConsoleRenderer(),
		editor:   view.NewEditor(opts.Store),
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		input:    ti,
		filter:   filter,
	}
	m.store.Subscribe(m.refresh)
	m.refresh()
	return m
}

// Run starts the terminal UI and blocks until the user quits or ctx ends
func Run(ctx context.Context, m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 4
	case tea.KeyMsg:
		if m.mode != modeNormal {
			return m, m.updateInputMode(msg)
		}
		return m, m.updateNormalMode(msg)
	}
	return m, nil
}

func (m *Model) updateNormalMode(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Toggle):
		if row, ok := m.selected(); ok {
			m.store.Toggle(row.ID)
		}
	case key.Matches(msg, m.keys.Delete):
		if row, ok := m.selected(); ok {
			m.store.Delete(row.ID)
		}
	case key.Matches(msg, m.keys.Add):
		m.startInput(modeAdd, "", m.loc.GetText(view.KeyAddPlaceholder))
		return textinput.Blink
	case key.Matches(msg, m.keys.Edit):
		row, ok := m.selected()
		if !ok {
			return nil
		}
		text, ok := m.editor.Begin(row.ID)
		if !ok {
			return nil
		}
		m.startInput(modeEdit, text, "")
		return textinput.Blink
	case key.Matches(msg, m.keys.Filter):
		m.setFilter(m.filter.Next())
	case key.Matches(msg, m.keys.All):
		m.setFilter(model.FilterAll)
	case key.Matches(msg, m.keys.Active):
		m.setFilter(model.FilterActive)
	case key.Matches(msg, m.keys.Done):
		m.setFilter(model.FilterCompleted)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *Model) updateInputMode(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		if m.mode == modeEdit {
			m.editor.Cancel()
		}
		m.stopInput()
		return nil
	case key.Matches(msg, m.keys.Submit):
		text := m.input.Value()
		mode := m.mode
		m.stopInput()
		if mode == modeEdit {
			m.editor.Commit(text)
			return nil
		}
		if _, ok := m.store.Add(text); ok {
			m.selectLast()
		}
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) startInput(mode inputMode, value, placeholder string) {
	m.mode = mode
	m.input.SetValue(value)
	m.input.Placeholder = placeholder
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *Model) stopInput() {
	m.mode = modeNormal
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) setFilter(f model.Filter) {
	if f == m.filter {
		return
	}
	m.filter = f
	m.cursor = 0
	m.refresh()
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.display.Rows) {
		m.cursor = len(m.display.Rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selectLast moves the cursor to the newest visible task
func (m *Model) selectLast() {
	m.cursor = len(m.display.Rows) - 1
	m.clampCursor()
}

func (m *Model) selected() (view.Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.display.Rows) {
		return view.Row{}, false
	}
	return m.display.Rows[m.cursor], true
}

// refresh re-renders the display from the store
func (m *Model) refresh() {
	m.display = view.Render(m.store.View(m.filter), m.loc)
	m.clampCursor()
}

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder

	cursor := m.cursor
	if m.display.IsEmpty() {
		cursor = -1
	}
	b.WriteString(m.renderer.Render(m.display, cursor))

	switch m.mode {
	case modeAdd:
		b.WriteString("\n\n" + promptStyle.Render(m.loc.GetText(view.KeyAdd)) + "\n" + m.input.View())
	case modeEdit:
		b.WriteString("\n\n" + promptStyle.Render(m.loc.GetText(view.KeyEdit)) + "\n" + m.input.View())
	}

	if err := m.store.SaveErr(); err != nil {
		b.WriteString("\n\n" + errorStyle.Render(m.loc.GetText(view.KeyErrorSaving)+": "+err.Error()))
	}

	b.WriteString("\n" + helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Display returns the current display
func (m *Model) Display() view.Display {
	return m.display
}

// Cursor returns the index of the selected row
func (m *Model) Cursor() int {
	return m.cursor
}

// Filter returns the active filter
func (m *Model) Filter() model.Filter {
	return m.filter
}
