package ui

import (
	"io"
	"log/slog"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/tasklist/internal/config"
	"github.com/ytget/tasklist/internal/model"
	"github.com/ytget/tasklist/internal/platform"
	"github.com/ytget/tasklist/internal/store"
	"github.com/ytget/tasklist/internal/view"
)

// Options configures the root UI
type Options struct {
	Store    *store.Store
	Settings *config.Settings
	Logger   *slog.Logger

	// Language forces the language for this session when set
	Language string

	// FallbackLanguage is used while the language preference is "system"
	FallbackLanguage string

	// DataPath is the file tasks are stored in; empty hides "Show data file"
	DataPath string
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	store        *store.Store
	settings     *config.Settings
	localization *view.Localization
	editor       *view.Editor
	logger       *slog.Logger
	forcedLang   string
	fallbackLang string
	dataPath     string

	currentFilter model.Filter
	display       view.Display

	input          *widget.Entry
	addBtn         *widget.Button
	filterBtns     map[model.Filter]*widget.Button
	list           *fyne.Container
	rows           []*TaskRow
	emptyLabel     *widget.Label
	totalLabel     *widget.Label
	completedLabel *widget.Label
	errorLabel     *widget.Label
	editEntry      *EditEntry
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, opts Options) *RootUI {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	ui := &RootUI{
		window:        window,
		store:         opts.Store,
		settings:      opts.Settings,
		localization:  view.NewLocalization(),
		editor:        view.NewEditor(opts.Store),
		logger:        logger,
		forcedLang:    opts.Language,
		fallbackLang:  opts.FallbackLanguage,
		dataPath:      opts.DataPath,
		currentFilter: model.FilterAll,
	}
	ui.localization.SetLanguage(ui.resolveLanguage())

	ui.setupUI()
	ui.store.Subscribe(ui.render)
	ui.render()

	logger.Debug("root UI initialized", "language", ui.localization.GetCurrentLanguage(), "tasks", ui.store.Len())
	return ui
}

func (ui *RootUI) resolveLanguage() string {
	if ui.forcedLang != "" {
		return ui.forcedLang
	}
	if ui.settings == nil {
		return ui.fallbackLang
	}
	return ui.settings.ResolveLanguage(ui.fallbackLang)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.input = widget.NewEntry()
	// Add when user presses Enter in the input field
	ui.input.OnSubmitted = func(string) {
		ui.onAddClick()
	}
	ui.addBtn = widget.NewButton("", ui.onAddClick)
	ui.addBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	logo := canvas.NewImageFromResource(LoadLogoResource())
	logo.SetMinSize(fyne.NewSize(28, 28))
	logo.FillMode = canvas.ImageFillContain

	topPanel := container.NewBorder(nil, nil, container.NewHBox(logo, settingsBtn), ui.addBtn, ui.input)

	ui.filterBtns = make(map[model.Filter]*widget.Button, len(model.Filters))
	filterRow := container.NewHBox()
	for _, f := range model.Filters {
		filter := f // Capture for closure
		btn := widget.NewButton("", func() {
			ui.onFilterChanged(filter)
		})
		ui.filterBtns[filter] = btn
		filterRow.Add(btn)
	}

	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Hide()

	ui.emptyLabel = widget.NewLabel("")
	ui.emptyLabel.Alignment = fyne.TextAlignCenter
	ui.emptyLabel.Importance = widget.LowImportance

	ui.list = container.NewVBox()

	ui.totalLabel = widget.NewLabel("")
	ui.completedLabel = widget.NewLabel("")
	statsRow := container.NewHBox(ui.totalLabel, ui.completedLabel)

	top := container.NewVBox(topPanel, filterRow, ui.errorLabel)
	content := container.NewBorder(
		top,                           // top
		statsRow,                      // bottom
		nil,                           // left
		nil,                           // right
		container.NewVScroll(ui.list), // center
	)

	ui.window.SetContent(content)
	ui.window.Canvas().Focus(ui.input)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(view.KeySettings), ui.onShowSettings)
	fileMenu := fyne.NewMenu(ui.localization.GetText(view.KeyAppTitle), settingsItem)
	if ui.dataPath != "" {
		fileMenu.Items = append(fileMenu.Items,
			fyne.NewMenuItem(IconFolder+" "+ui.localization.GetText(view.KeyShowDataFile), ui.onRevealDataFile))
	}

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(view.KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, languageMenu))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.forcedLang = ""
	if ui.settings != nil {
		ui.settings.SetLanguage(langCode)
	}
	ui.localization.SetLanguage(ui.resolveLanguage())
	ui.logger.Info("language changed", "language", ui.localization.GetCurrentLanguage())

	ui.createMenu()
	ui.render()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	if ui.settings == nil {
		return
	}
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onLanguageChange).Show()
}

// onRevealDataFile opens the file manager at the data file
func (ui *RootUI) onRevealDataFile() {
	if err := platform.RevealInFileManager(ui.dataPath); err != nil {
		ui.logger.Error("reveal data file failed", "path", ui.dataPath, "err", err)
		dialog.ShowError(err, ui.window)
	}
}

// onAddClick adds the input text as a task and clears the input on success
func (ui *RootUI) onAddClick() {
	if _, ok := ui.store.Add(ui.input.Text); ok {
		ui.input.SetText("")
	}
}

// onFilterChanged handles filter changes from the filter buttons
func (ui *RootUI) onFilterChanged(filter model.Filter) {
	ui.currentFilter = filter
	ui.render()
}

func (ui *RootUI) onToggle(id int64) {
	ui.store.Toggle(id)
}

func (ui *RootUI) onDelete(id int64) {
	if ui.editor.IsEditing(id) {
		ui.editEntry = nil
		ui.editor.Cancel()
	}
	ui.store.Delete(id)
}

// onBeginEdit swaps the row's label for an editor
func (ui *RootUI) onBeginEdit(id int64) {
	text, ok := ui.editor.Begin(id)
	if !ok {
		return
	}
	ui.editEntry = NewEditEntry(id, text, ui.onCommitEdit, ui.onCancelEdit)
	ui.render()
	ui.window.Canvas().Focus(ui.editEntry)
}

// onCommitEdit ignores commits for anything but the current edit target
func (ui *RootUI) onCommitEdit(id int64, text string) {
	if !ui.editor.IsEditing(id) {
		return
	}
	ui.editEntry = nil
	ui.editor.Commit(text)
}

func (ui *RootUI) onCancelEdit(id int64) {
	if !ui.editor.IsEditing(id) {
		return
	}
	ui.editEntry = nil
	ui.editor.Cancel()
	ui.render()
}

// render rebuilds the visible list from the store
func (ui *RootUI) render() {
	d := view.Render(ui.store.View(ui.currentFilter), ui.localization)
	ui.display = d

	ui.window.SetTitle(d.Title)
	ui.input.SetPlaceHolder(d.Placeholder)
	ui.addBtn.SetText(d.AddLabel)

	for _, tab := range d.Filters {
		btn := ui.filterBtns[tab.Filter]
		btn.SetText(tab.Label)
		if tab.Selected {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}

	ui.rows = make([]*TaskRow, 0, len(d.Rows))
	objects := make([]fyne.CanvasObject, 0, len(d.Rows))
	if d.IsEmpty() {
		ui.emptyLabel.SetText(d.EmptyMessage)
		objects = append(objects, ui.emptyLabel)
	}
	callbacks := RowCallbacks{
		OnToggle:    ui.onToggle,
		OnDelete:    ui.onDelete,
		OnBeginEdit: ui.onBeginEdit,
	}
	for _, row := range d.Rows {
		var entry *EditEntry
		if ui.editEntry != nil && ui.editor.IsEditing(row.ID) {
			entry = ui.editEntry
		}
		tr := NewTaskRow(row, d.DeleteLabel, callbacks, entry)
		ui.rows = append(ui.rows, tr)
		objects = append(objects, tr)
	}
	ui.list.Objects = objects
	ui.list.Refresh()

	ui.totalLabel.SetText(d.TotalLabel)
	ui.completedLabel.SetText(d.CompletedLabel)

	if err := ui.store.SaveErr(); err != nil {
		ui.errorLabel.SetText(ui.localization.GetText(view.KeyErrorSaving) + ": " + err.Error())
		ui.errorLabel.Show()
	} else {
		ui.errorLabel.Hide()
	}
}

// Display returns what was last rendered
func (ui *RootUI) Display() view.Display {
	return ui.display
}

// Rows returns the currently shown task rows
func (ui *RootUI) Rows() []*TaskRow {
	return ui.rows
}
