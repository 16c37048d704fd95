package cmd

import (
	"strings"

	"github.com/khanhnv2901/sri-cli/internal/report"
)

func formatStatusWithColor(status string) string {
	switch strings.ToLower(status) {
	case "ok", "match", "pass":
		return report.Colorize(report.LevelSuccess, status)
	case "mismatch", "error", "invalid", "fail":
		return report.Colorize(report.LevelError, status)
	default:
		return status
	}
}
