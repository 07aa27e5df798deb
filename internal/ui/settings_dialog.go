package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/tasklist/internal/config"
	"github.com/ytget/tasklist/internal/view"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *view.Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(language string)

	// UI components
	languageSelect *widget.Select
	codes          map[string]string // display name -> language code
}

// NewSettingsDialog creates a new settings dialog. onSaved receives the
// selected language code.
func NewSettingsDialog(settings *config.Settings, localization *view.Localization, window fyne.Window, onSaved func(string)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
		codes:        make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	names := make([]string, 0, len(sd.settings.GetLanguageOptions()))
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.codes[name] = code
		names = append(names, name)
	}
	sort.Strings(names)

	sd.languageSelect = widget.NewSelect(names, nil)

	form := container.NewVBox(
		widget.NewLabel(IconLanguage+" "+sd.localization.GetText(view.KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(view.KeySettings),
		sd.localization.GetText(view.KeySave),
		sd.localization.GetText(view.KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	current := sd.settings.GetLanguage()
	if name, ok := sd.settings.GetLanguageOptions()[current]; ok {
		sd.languageSelect.SetSelected(name)
	}
}

// SelectedLanguage returns the language code currently selected
func (sd *SettingsDialog) SelectedLanguage() string {
	return sd.codes[sd.languageSelect.Selected]
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	lang := sd.SelectedLanguage()
	if lang == "" {
		return
	}
	sd.settings.SetLanguage(lang)

	if sd.onSaved != nil {
		sd.onSaved(lang)
	}
}
