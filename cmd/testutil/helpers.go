// Package testutil provides project fixtures and a fake CDN for command tests.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	consts "github.com/khanhnv2901/sri-cli/internal/shared/constants"
	"github.com/khanhnv2901/sri-cli/internal/security"
)

// TestEnv is a throwaway project root with helpers to populate it.
type TestEnv struct {
	Root         string
	cleanupFuncs []func()
	t            *testing.T
}

// NewTestEnv creates a new empty project root.
// Usage:
//
//	env := testutil.NewTestEnv(t)
//	defer env.Cleanup()
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	return &TestEnv{
		Root:         t.TempDir(),
		t:            t,
		cleanupFuncs: []func(){},
	}
}

// WithMarkup writes the default markup document.
func (e *TestEnv) WithMarkup(content string) *TestEnv {
	e.t.Helper()
	e.CreateFile(consts.DefaultMarkupPath, []byte(content))
	return e
}

// WithStylesheet writes the default stylesheet document.
func (e *TestEnv) WithStylesheet(content string) *TestEnv {
	e.t.Helper()
	e.CreateFile(consts.DefaultStylesheetPath, []byte(content))
	return e
}

// WithCDNConfig writes the default CDN configuration file.
func (e *TestEnv) WithCDNConfig(content string) *TestEnv {
	e.t.Helper()
	e.CreateFile(consts.DefaultCDNConfigPath, []byte(content))
	return e
}

// AddCleanup adds a cleanup function to be called when Cleanup() is called.
// Cleanup functions are called in reverse order (LIFO).
func (e *TestEnv) AddCleanup(fn func()) {
	e.cleanupFuncs = append([]func(){fn}, e.cleanupFuncs...)
}

// Cleanup runs all registered cleanup functions.
func (e *TestEnv) Cleanup() {
	for _, fn := range e.cleanupFuncs {
		fn()
	}
}

// CreateFile creates a file under the project root with the given content.
func (e *TestEnv) CreateFile(relativePath string, content []byte) string {
	e.t.Helper()

	fullPath := resolveRootPath(e.Root, relativePath, e.t)
	dir := filepath.Dir(fullPath)

	if err := os.MkdirAll(dir, consts.DefaultDirPerm); err != nil {
		e.t.Fatalf("Failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(fullPath, content, consts.DefaultFilePerm); err != nil {
		e.t.Fatalf("Failed to create file %s: %v", fullPath, err)
	}

	return fullPath
}

// FileExists checks if a file exists under the project root.
func (e *TestEnv) FileExists(relativePath string) bool {
	fullPath := resolveRootPath(e.Root, relativePath, e.t)
	_, err := os.Stat(fullPath)
	return err == nil
}

func resolveRootPath(root, relativePath string, t *testing.T) string {
	t.Helper()
	path, err := security.ResolveWithin(root, filepath.FromSlash(relativePath))
	if err != nil {
		t.Fatalf("invalid test path %s: %v", relativePath, err)
	}
	return path
}

// NewCDNServer serves each body at its path and answers 404 for anything else.
// The server is closed when the test finishes.
func NewCDNServer(t *testing.T, resources map[string]string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := resources[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}
