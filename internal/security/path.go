// Package security keeps project input paths inside the project root.
package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrPathEscape indicates the resolved path would escape the project root.
	ErrPathEscape = errors.New("path escapes project root")
)

// ResolveWithin joins the provided path elements under root and ensures the
// result never traverses outside of it. The returned path is absolute.
func ResolveWithin(root string, elems ...string) (string, error) {
	if root == "" {
		return "", errors.New("project root is required")
	}

	cleanRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve project root: %w", err)
	}

	target, err := filepath.Abs(filepath.Join(append([]string{cleanRoot}, elems...)...))
	if err != nil {
		return "", fmt.Errorf("resolve input path: %w", err)
	}

	rel, err := filepath.Rel(cleanRoot, target)
	if err != nil {
		return "", fmt.Errorf("relativize path: %w", err)
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: %s", ErrPathEscape, target)
	}

	return target, nil
}
