package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "tasklist.svg"
)

//go:embed assets/icon.svg
var iconSVG []byte

// LogoResource is the embedded application icon
var LogoResource = &fyne.StaticResource{
	StaticName:    AppIcon,
	StaticContent: iconSVG,
}

// LoadLogoResource returns the application icon
func LoadLogoResource() fyne.Resource {
	return LogoResource
}
