package testutil

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

func TestNewTestEnv(t *testing.T) {
	env := NewTestEnv(t)
	defer env.Cleanup()

	if env.Root == "" {
		t.Fatal("Root should not be empty")
	}
	if _, err := os.Stat(env.Root); err != nil {
		t.Fatalf("Root should exist: %v", err)
	}
}

func TestTestEnv_DefaultDocuments(t *testing.T) {
	env := NewTestEnv(t).
		WithMarkup("<html></html>").
		WithStylesheet("body{}").
		WithCDNConfig("resources: {}\n")
	defer env.Cleanup()

	for _, rel := range []string{"index.html", "src/styles/global.scss", "cdn.yaml"} {
		if !env.FileExists(rel) {
			t.Errorf("expected %s to exist", rel)
		}
	}

	data, err := os.ReadFile(filepath.Join(env.Root, "src", "styles", "global.scss"))
	if err != nil {
		t.Fatalf("read stylesheet: %v", err)
	}
	if string(data) != "body{}" {
		t.Errorf("unexpected stylesheet content %q", data)
	}
}

func TestTestEnv_Cleanup(t *testing.T) {
	env := NewTestEnv(t)

	var order []int
	env.AddCleanup(func() { order = append(order, 1) })
	env.AddCleanup(func() { order = append(order, 2) })
	env.Cleanup()

	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Errorf("expected LIFO cleanup order [2 1], got %v", order)
	}
}

func TestNewCDNServer(t *testing.T) {
	srv := NewCDNServer(t, map[string]string{"/lib.js": "console.log(1)"})

	resp, err := http.Get(srv.URL + "/lib.js")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != "console.log(1)" {
		t.Fatalf("unexpected response %d %q", resp.StatusCode, body)
	}

	resp, err = http.Get(srv.URL + "/missing.js")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}
