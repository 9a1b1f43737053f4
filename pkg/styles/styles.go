// Package styles defines the shared lipgloss color palette for console
// output. Colors are adaptive so output stays readable on both light and
// dark terminal backgrounds.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// ColorSuccess is used for valid verdicts and completed operations.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#1a7f37", Dark: "#3fb950"}

	// ColorWarning is used for valid-with-warnings verdicts and notices.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#9a6700", Dark: "#d29922"}

	// ColorError is used for invalid verdicts and failures.
	ColorError = lipgloss.AdaptiveColor{Light: "#cf222e", Dark: "#f85149"}

	// ColorInfo is used for neutral informational messages.
	ColorInfo = lipgloss.AdaptiveColor{Light: "#0969da", Dark: "#58a6ff"}

	// ColorMuted is used for verbose diagnostics.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#59636e", Dark: "#8b949e"}
)

var (
	Success = lipgloss.NewStyle().Foreground(ColorSuccess)
	Warning = lipgloss.NewStyle().Foreground(ColorWarning)
	Error   = lipgloss.NewStyle().Foreground(ColorError)
	Info    = lipgloss.NewStyle().Foreground(ColorInfo)
	Muted   = lipgloss.NewStyle().Foreground(ColorMuted)
)
