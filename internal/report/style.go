package report

import "github.com/fatih/color"

// Level is the semantic weight of a line of output.
type Level int

const (
	LevelPlain Level = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
)

// Colorize renders text in the color for level. Color output follows
// color.NoColor, which is set for non-terminals and --no-color.
func Colorize(level Level, text string) string {
	var attr color.Attribute
	switch level {
	case LevelInfo:
		attr = color.FgCyan
	case LevelSuccess:
		attr = color.FgGreen
	case LevelWarning:
		attr = color.FgYellow
	case LevelError:
		attr = color.FgRed
	default:
		return text
	}
	return color.New(attr).Sprint(text)
}
