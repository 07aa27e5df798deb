package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage     = "app_language"
	KeyWindowWidth  = "window_width"
	KeyWindowHeight = "window_height"
)

// Default values
const (
	DefaultLanguage     = "system"
	DefaultWindowWidth  = 640
	DefaultWindowHeight = 560
)

// Window size limits
const (
	MinWindowWidth  = 320
	MinWindowHeight = 240
)

// Settings manages desktop app preferences. "system" as language means the
// file config decides.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	if lang == "" {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// ResolveLanguage returns the preference language unless it is "system", in
// which case fallback (usually the file config language) wins.
func (s *Settings) ResolveLanguage(fallback string) string {
	lang := s.GetLanguage()
	if lang == DefaultLanguage {
		return fallback
	}
	return lang
}

// GetWindowSize returns the last saved window size
func (s *Settings) GetWindowSize() (width, height float32) {
	w := s.app.Preferences().IntWithFallback(KeyWindowWidth, DefaultWindowWidth)
	h := s.app.Preferences().IntWithFallback(KeyWindowHeight, DefaultWindowHeight)
	if w < MinWindowWidth {
		w = MinWindowWidth
	}
	if h < MinWindowHeight {
		h = MinWindowHeight
	}
	return float32(w), float32(h)
}

// SetWindowSize stores the window size
func (s *Settings) SetWindowSize(width, height float32) {
	s.app.Preferences().SetInt(KeyWindowWidth, int(width))
	s.app.Preferences().SetInt(KeyWindowHeight, int(height))
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ja":     "日本語",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
