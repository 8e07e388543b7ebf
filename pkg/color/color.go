package color

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
)

const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"

	BrightRed = "\033[91m"
)

var colorEnabled = true

func init() {
	if os.Getenv("NO_COLOR") != "" || !isTerminal() {
		colorEnabled = false
	}
}

func isTerminal() bool {
	return term.IsTerminal(os.Stdout.Fd())
}

func EnableColor(enable bool) {
	colorEnabled = enable
}

func Colorize(color, text string) string {
	if !colorEnabled {
		return text
	}
	return color + text + Reset
}

func RedText(text string) string {
	return Colorize(Red, text)
}

func GreenText(text string) string {
	return Colorize(Green, text)
}

func YellowText(text string) string {
	return Colorize(Yellow, text)
}

func CyanText(text string) string {
	return Colorize(Cyan, text)
}

func BoldText(text string) string {
	return Colorize(Bold, text)
}

func Error(message string) string {
	if !colorEnabled {
		return message
	}
	return Colorize(BrightRed, BoldText("Error: ")) + message
}

func Warning(message string) string {
	if !colorEnabled {
		return message
	}
	return YellowText("Warning: ") + message
}

// Position renders where in the program a diagnostic points
func Position(line, token int) string {
	pos := fmt.Sprintf("Line: %d, Token %d", line, token)
	if !colorEnabled {
		return pos
	}
	return CyanText(pos)
}
