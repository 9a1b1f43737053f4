// Package console renders styled human-readable output for the CLI.
package console

import (
	"fmt"

	"github.com/gitlab-lint/gll/pkg/styles"
)

// FormatSuccessMessage formats a success message with a checkmark prefix.
func FormatSuccessMessage(message string) string {
	return styles.Success.Render("✓ " + message)
}

// FormatInfoMessage formats an informational message.
func FormatInfoMessage(message string) string {
	return styles.Info.Render("ℹ " + message)
}

// FormatWarningMessage formats a warning message.
func FormatWarningMessage(message string) string {
	return styles.Warning.Render("⚠ " + message)
}

// FormatErrorMessage formats an error message with a cross prefix.
func FormatErrorMessage(message string) string {
	return styles.Error.Render("✗ " + message)
}

// FormatVerboseMessage formats a low-importance diagnostic message.
func FormatVerboseMessage(message string) string {
	return styles.Muted.Render(message)
}

// FormatVerdictLine renders the per-file status line, e.g.
//
//	"ci/.gitlab-ci.yml" is valid
//
// colored by status. The path is double-quoted so whitespace in filenames
// stays visible.
func FormatVerdictLine(path, status string, ok, warned bool) string {
	line := fmt.Sprintf("%q is %s", path, status)
	switch {
	case !ok:
		return styles.Error.Render(line)
	case warned:
		return styles.Warning.Render(line)
	default:
		return styles.Success.Render(line)
	}
}

// FormatDetailLine renders a tab-indented error or warning detail under a
// verdict line.
func FormatDetailLine(message string, warning bool) string {
	if warning {
		return "\t" + styles.Warning.Render(message)
	}
	return "\t" + styles.Error.Render(message)
}
