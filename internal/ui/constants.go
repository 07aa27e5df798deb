package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconDelete   = "×"
	IconFolder   = "📁"
	IconLanguage = "🌐"
)

// Application identity
const (
	AppID   = "com.ytget.tasklist"
	AppName = "Tasklist"
)

// Layout sizing (TaskRow / lists)
const (
	RowMinWidth float32 = 280
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 360
	SettingsDialogHeight float32 = 200
)
