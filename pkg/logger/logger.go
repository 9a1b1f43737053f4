// Package logger provides namespaced debug logging to stderr, gated by the
// DEBUG environment variable following https://www.npmjs.com/package/debug
// conventions:
//
//	DEBUG=*            - enables all loggers
//	DEBUG=lint:*       - enables all loggers under the lint namespace
//	DEBUG=ns1,ns2      - enables specific namespaces
//	DEBUG=*,-lint:http - enables everything except a namespace
package logger

import (
	"fmt"
	"hash/fnv"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

// Logger is a debug logger for a single namespace.
type Logger struct {
	namespace string
	enabled   bool
	lastLog   time.Time
	mu        sync.Mutex
	color     string
}

var (
	// DEBUG environment variable value, read once at initialization.
	debugEnv = os.Getenv("DEBUG")

	// DEBUG_COLORS=0 disables color output.
	debugColors = os.Getenv("DEBUG_COLORS") != "0"

	isTTY = term.IsTerminal(int(os.Stderr.Fd()))

	// ANSI 256-color codes readable on both light and dark backgrounds.
	colorPalette = []string{
		"\033[38;5;33m",  // Blue
		"\033[38;5;35m",  // Green
		"\033[38;5;166m", // Orange
		"\033[38;5;125m", // Purple
		"\033[38;5;37m",  // Cyan
		"\033[38;5;161m", // Magenta
		"\033[38;5;136m", // Yellow
		"\033[38;5;124m", // Red
	}

	colorReset = "\033[0m"
)

// New creates a Logger for the given namespace. The enabled state is computed
// once at construction from the DEBUG environment variable; a color is
// assigned per namespace when stderr is a TTY and DEBUG_COLORS != "0".
func New(namespace string) *Logger {
	return &Logger{
		namespace: namespace,
		enabled:   computeEnabled(namespace),
		lastLog:   time.Now(),
		color:     selectColor(namespace),
	}
}

// selectColor picks a stable palette color for the namespace.
func selectColor(namespace string) string {
	if !debugColors || !isTTY {
		return ""
	}
	h := fnv.New32a()
	if _, err := h.Write([]byte(namespace)); err != nil {
		return ""
	}
	return colorPalette[h.Sum32()%uint32(len(colorPalette))]
}

// Enabled returns whether this logger is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Printf prints a formatted message if the logger is enabled. A newline is
// always added, and the time since the previous message is appended.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprintf(format, args...))
}

// Print prints a message if the logger is enabled. A newline is always
// added, and the time since the previous message is appended.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprint(args...))
}

func (l *Logger) emit(message string) {
	l.mu.Lock()
	now := time.Now()
	diff := now.Sub(l.lastLog)
	l.lastLog = now
	l.mu.Unlock()

	if l.color != "" {
		fmt.Fprintf(os.Stderr, "%s%s%s %s +%s\n", l.color, l.namespace, colorReset, message, formatDuration(diff))
	} else {
		fmt.Fprintf(os.Stderr, "%s %s +%s\n", l.namespace, message, formatDuration(diff))
	}
}

// formatDuration renders a duration the way the debug npm package does:
// the largest single unit, rounded.
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()+0.5))
	case d >= time.Minute:
		return fmt.Sprintf("%dm", int(d.Minutes()+0.5))
	case d >= time.Second:
		return fmt.Sprintf("%ds", int(d.Seconds()+0.5))
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}

// computeEnabled reports whether a namespace matches the DEBUG patterns.
// Exclusion patterns (prefixed with -) take precedence over matches.
func computeEnabled(namespace string) bool {
	enabled := false
	for _, pattern := range strings.Split(debugEnv, ",") {
		pattern = strings.TrimSpace(pattern)
		if exclude, ok := strings.CutPrefix(pattern, "-"); ok {
			if matchPattern(namespace, exclude) {
				return false
			}
			continue
		}
		if matchPattern(namespace, pattern) {
			enabled = true
		}
	}
	return enabled
}

// matchPattern checks a namespace against a pattern with a single optional
// wildcard (*) at the start, end, or middle.
func matchPattern(namespace, pattern string) bool {
	if pattern == "*" || pattern == namespace {
		return true
	}
	if !strings.Contains(pattern, "*") {
		return false
	}
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(namespace, prefix)
	}
	if suffix, ok := strings.CutPrefix(pattern, "*"); ok {
		return strings.HasSuffix(namespace, suffix)
	}
	parts := strings.SplitN(pattern, "*", 2)
	return strings.HasPrefix(namespace, parts[0]) && strings.HasSuffix(namespace, parts[1])
}
