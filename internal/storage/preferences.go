package storage

import (
	"fyne.io/fyne/v2"
)

// Preferences stores values in the Fyne app preferences. Like browser local
// storage it is scoped to the application ID and survives restarts.
type Preferences struct {
	prefs fyne.Preferences
}

// NewPreferences wraps the preferences of a Fyne app
func NewPreferences(prefs fyne.Preferences) *Preferences {
	return &Preferences{prefs: prefs}
}

// Get returns the value stored under key. Fyne preferences cannot tell an
// absent key from an empty string, so both report ok=false.
func (p *Preferences) Get(key string) (string, bool, error) {
	v := p.prefs.String(key)
	if v == "" {
		return "", false, nil
	}
	return v, true, nil
}

// Set stores value under key
func (p *Preferences) Set(key, value string) error {
	p.prefs.SetString(key, value)
	return nil
}

// Close is a no-op; Fyne writes preferences itself
func (p *Preferences) Close() error {
	return nil
}
