package logx

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

var enableColor = isatty.IsTerminal(os.Stdout.Fd()) && strings.TrimSpace(os.Getenv("NO_COLOR")) == ""

const (
	reset = "\x1b[0m"
	red   = "\x1b[31m"
	green = "\x1b[32m"
)

// Okf prints a `[OK] ...` line to stdout.
func Okf(format string, args ...any) {
	fmt.Fprintln(os.Stdout, FormatOK(fmt.Sprintf(format, args...)))
}

// Errorf prints a `[ERROR] ...` line to stderr.
func Errorf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, FormatError(fmt.Sprintf(format, args...)))
}

func FormatOK(msg string) string {
	return colorize("[OK]", green) + " " + msg
}

func FormatError(msg string) string {
	return colorize("[ERROR]", red) + " " + msg
}

func colorize(label, color string) string {
	if !enableColor {
		return label
	}
	return color + label + reset
}
