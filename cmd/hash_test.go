package cmd

import (
	"errors"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/khanhnv2901/sri-cli/cmd/testutil"
)

const (
	testBody       = "body{}"
	testBodySHA256 = "sha256-fJgEClQWV1hGkK4qHMO0KotTsVnMYMXTq7/suurGyUo="
	testBodySHA384 = "sha384-myyg/hQ74aSgjBBvVME/QXAXEkT4Y9dHbVQ5C0lIyGpldvNLJV2IWc5ElXbqLi06"
	testBodySHA512 = "sha512-RX+E71HnX1pcVahPcN1JJT8DtvWD7JkmmiFvLvCoYRohC7wU1R/5eCgzNUXDlnQ7LRMjO2VgEmsdRqeHPzrNCQ=="
)

func TestHashCommand(t *testing.T) {
	_, cleanup := setupTestAppContext(t, t.TempDir())
	defer cleanup()

	srv := testutil.NewCDNServer(t, map[string]string{"/lib.css": testBody})
	url := srv.URL + "/lib.css"

	stdout, stderr, err := runCommand(t, hashCmd, url)
	if err != nil {
		t.Fatalf("hash command failed: %v (stderr: %s)", err, stderr)
	}

	expected := []string{
		"Downloading resource from CDN...",
		"URL: " + url,
		"Downloaded successfully (6 bytes)",
		"SRI HASH RESULTS",
		"SHA-256 (not recommended):",
		`integrity="` + testBodySHA256 + `"`,
		"SHA-384 (RECOMMENDED):",
		`integrity="` + testBodySHA384 + `"`,
		"SHA-512 (strongest, but longest):",
		`integrity="` + testBodySHA512 + `"`,
		"Example usage in HTML:",
		`rel="stylesheet"`,
		`href="` + url + `"`,
		`crossorigin="anonymous"`,
		"Notes:",
	}
	for _, want := range expected {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, stdout)
		}
	}
}

func TestHashCommand_ScriptExample(t *testing.T) {
	_, cleanup := setupTestAppContext(t, t.TempDir())
	defer cleanup()

	srv := testutil.NewCDNServer(t, map[string]string{"/lib.js": testBody})

	stdout, _, err := runCommand(t, hashCmd, srv.URL+"/lib.js")
	if err != nil {
		t.Fatalf("hash command failed: %v", err)
	}
	if !strings.Contains(stdout, `<script`) || !strings.Contains(stdout, `src="`+srv.URL+`/lib.js"`) {
		t.Errorf("expected a script example, got:\n%s", stdout)
	}
}

func TestHashCommand_JSON(t *testing.T) {
	_, cleanup := setupTestAppContext(t, t.TempDir())
	defer cleanup()

	hashJSON = true
	t.Cleanup(func() { hashJSON = false })

	srv := testutil.NewCDNServer(t, map[string]string{"/lib.js": testBody})

	stdout, _, err := runCommand(t, hashCmd, srv.URL+"/lib.js")
	if err != nil {
		t.Fatalf("hash command failed: %v", err)
	}

	var payload struct {
		Result struct {
			URL        string `json:"url"`
			ByteLength int    `json:"byte_length"`
			SHA384     string `json:"sha384"`
			Tag        string `json:"tag"`
		} `json:"result"`
		Attributes []string `json:"attributes"`
		Example    string   `json:"example"`
	}
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		t.Fatalf("expected JSON output, got %v:\n%s", err, stdout)
	}
	if payload.Result.ByteLength != len(testBody) {
		t.Errorf("unexpected byte length %d", payload.Result.ByteLength)
	}
	if payload.Result.Tag != "script" {
		t.Errorf("expected script tag, got %s", payload.Result.Tag)
	}
	if len(payload.Attributes) != 3 {
		t.Errorf("expected three attributes, got %v", payload.Attributes)
	}
	if !strings.Contains(payload.Example, testBodySHA384) {
		t.Errorf("expected example pinned with SHA-384, got %s", payload.Example)
	}
}

func TestHashCommand_Failures(t *testing.T) {
	_, cleanup := setupTestAppContext(t, t.TempDir())
	defer cleanup()

	srv := testutil.NewCDNServer(t, map[string]string{"/empty.js": ""})

	tests := []struct {
		name   string
		args   []string
		stderr []string
	}{
		{name: "missing url", args: nil, stderr: []string{"Error: missing URL", "sri hash <URL>", "Example:"}},
		{name: "relative url", args: []string{"lib.js"}, stderr: []string{"Error: invalid URL"}},
		{name: "unsupported scheme", args: []string{"ftp://cdn.example.com/lib.js"}, stderr: []string{"Error: unsupported URL scheme"}},
		{name: "not found", args: []string{srv.URL + "/missing.js"}, stderr: []string{"Error: resource could not be downloaded", "HTTP 404", "Check:"}},
		{name: "empty body", args: []string{srv.URL + "/empty.js"}, stderr: []string{"Error: resource is empty"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := runCommand(t, hashCmd, tt.args...)

			var exitErr *ExitError
			if !errors.As(err, &exitErr) || exitErr.Code != 1 {
				t.Fatalf("expected exit status 1, got %v", err)
			}
			for _, want := range tt.stderr {
				if !strings.Contains(stderr, want) {
					t.Errorf("expected stderr to contain %q, got:\n%s", want, stderr)
				}
			}
			if strings.Contains(stdout, "SRI HASH RESULTS") {
				t.Errorf("no digest should be printed on failure, got:\n%s", stdout)
			}
		})
	}
}

func TestHashCommand_FailureIsNotLoggedAboveDebug(t *testing.T) {
	appCtx, cleanup := setupTestAppContext(t, t.TempDir())
	defer cleanup()

	core, logs := observer.New(zapcore.InfoLevel)
	appCtx.Logger = zap.New(core).Sugar()

	srv := testutil.NewCDNServer(t, map[string]string{})

	_, stderr, err := runCommand(t, hashCmd, srv.URL+"/missing.js")
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ExitError, got %v", err)
	}
	if !strings.Contains(stderr, "Error: resource could not be downloaded") {
		t.Fatalf("expected diagnostic on stderr, got:\n%s", stderr)
	}
	if logs.Len() != 0 {
		t.Fatalf("expected no log entries at info or above, got %d: %v", logs.Len(), logs.All())
	}
}

func TestDescribeFetchErrorDefault(t *testing.T) {
	if got := describeFetchError(errors.New("boom")); got != "failed to download resource" {
		t.Fatalf("unexpected description %q", got)
	}
}
