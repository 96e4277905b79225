package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/ObjectsCountries/KtaneSouvenir/internal/history"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	colorReset  = "\x1b[0m"
	colorRed    = "\x1b[31m"
	colorGreen  = "\x1b[32m"
	colorYellow = "\x1b[33m"
	colorBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 20
	statusIndent     = "  "
)

// statusKindStyle returns the bracketed tag and terminal color for a kind.
func statusKindStyle(kind statusKind) (tag, color string) {
	switch kind {
	case statusOK:
		return "OK", colorGreen
	case statusWarn:
		return "WARN", colorYellow
	case statusError:
		return "ERROR", colorRed
	default:
		return "INFO", colorBlue
	}
}

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	tag, color := statusKindStyle(kind)
	statusText := "[" + tag + "]"
	if message != "" {
		statusText += " " + message
	}
	line := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", statusText)
	if colorize {
		return color + line + colorReset
	}
	return line
}

// outcomeKind maps file outcomes onto status colors: skips warn, failures
// error.
func outcomeKind(status history.Outcome) statusKind {
	switch status {
	case history.OutcomeOK:
		return statusOK
	case history.OutcomeSkipped:
		return statusWarn
	case history.OutcomeFailed:
		return statusError
	default:
		return statusInfo
	}
}

// outcomeCell renders a table status cell, colorized on terminals.
func outcomeCell(status history.Outcome, colorize bool) string {
	if !colorize {
		return string(status)
	}
	_, color := statusKindStyle(outcomeKind(status))
	return color + string(status) + colorReset
}

func renderSectionHeader(title string, colorize bool) []string {
	heading := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(heading))
	if !colorize {
		return []string{heading, rule}
	}
	return []string{
		colorBlue + heading + colorReset,
		colorBlue + rule + colorReset,
	}
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
