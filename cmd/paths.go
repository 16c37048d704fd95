package cmd

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/khanhnv2901/sri-cli/internal/security"
)

const appName = "sri-cli"

// configFileCandidates lists where a config file is looked up when --config is
// not given, in priority order:
// $XDG_CONFIG_HOME/sri-cli/config.yaml, then $HOME/.sri-cli.yaml.
func configFileCandidates() []string {
	candidates := []string{filepath.Join(xdg.ConfigHome, appName, "config.yaml")}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, "."+appName+".yaml"))
	}
	return candidates
}

// findConfigFile returns the first existing candidate, or "" when none exists.
func findConfigFile() string {
	for _, path := range configFileCandidates() {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// resolveProjectPath resolves a user-supplied path. Absolute paths are used as
// given; relative paths must stay inside the project root.
func resolveProjectPath(root, path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	return security.ResolveWithin(root, filepath.FromSlash(path))
}

// readProjectDocument reads a document addressed relative to the project root
// and returns its content and resolved path.
func readProjectDocument(root, path string) (string, string, error) {
	resolved, err := resolveProjectPath(root, path)
	if err != nil {
		return "", "", err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return "", resolved, err
	}
	return string(data), resolved, nil
}
