package constants

import (
	"io/fs"
	"time"
)

const (
	// DefaultDirPerm is the default permission used when creating directories.
	DefaultDirPerm fs.FileMode = 0o755
	// DefaultFilePerm is the default permission used when creating files.
	DefaultFilePerm fs.FileMode = 0o644
)

const (
	// FetchTimeout bounds a single resource download, measured from request start.
	FetchTimeout = 30 * time.Second
	// SnippetLimit caps how many characters of a source tag are kept for display.
	SnippetLimit = 100
	// PlaceholderMarker flags an integrity value that was never replaced with a real digest.
	PlaceholderMarker = "PLACEHOLDER"
)

const (
	// DefaultMarkupPath is the project-relative markup document inspected by validate.
	DefaultMarkupPath = "index.html"
	// DefaultStylesheetPath is the project-relative stylesheet inspected by validate.
	DefaultStylesheetPath = "src/styles/global.scss"
	// DefaultCDNConfigPath is the project-relative CDN configuration file.
	DefaultCDNConfigPath = "cdn.yaml"
)
