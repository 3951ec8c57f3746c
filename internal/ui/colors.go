package ui

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ANSI color codes
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	Bold   = "\033[1m"
)

// isTTY checks if stdout is a terminal
func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Colorize applies color only if output is a TTY
func Colorize(color, msg string) string {
	if !isTTY() {
		return msg
	}
	return color + msg + Reset
}

// OK formats a success message with [OK] prefix in green
func OK(msg string) string {
	prefix := Colorize(Green, "[OK]")
	return fmt.Sprintf("%s %s", prefix, msg)
}

// Error formats an error message with [ERROR] prefix in red
func Error(msg string) string {
	prefix := Colorize(Red, "[ERROR]")
	return fmt.Sprintf("%s %s", prefix, msg)
}

// Warn formats a warning message with [WARN] prefix in yellow
func Warn(msg string) string {
	prefix := Colorize(Yellow, "[WARN]")
	return fmt.Sprintf("%s %s", prefix, msg)
}

// Intent formats a matched intent name in bold cyan
func Intent(name string) string {
	return Colorize(Bold+Cyan, name)
}

// NoMatch formats the "no intent matched" marker in yellow
func NoMatch() string {
	return Colorize(Yellow, "(no intent matched)")
}

// PrintOK prints a success message
func PrintOK(msg string) {
	fmt.Println(OK(msg))
}

// PrintError prints an error message
func PrintError(msg string) {
	fmt.Println(Error(msg))
}
