package theme

import "github.com/charmbracelet/lipgloss"

// Brand palette for the console field-log UI.
var (
	TextPrimary   = lipgloss.Color("#E8E2D8")
	TextSecondary = lipgloss.Color("#A6ADB1")
	TextMuted     = lipgloss.Color("#7D858A")
	AccentEmber   = lipgloss.Color("#D46A1E")
	AccentForest  = lipgloss.Color("#2F5D42")
	WarningAmber  = lipgloss.Color("#C18B2F")
	Danger        = lipgloss.Color("#B84A3A")
)
