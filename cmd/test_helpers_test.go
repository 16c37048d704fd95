package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// setupTestAppContext installs an AppContext rooted at root with default
// config and colors disabled. The returned cleanup restores global state.
func setupTestAppContext(t *testing.T, root string) (*AppContext, func()) {
	t.Helper()

	original := globalAppContext
	originalNoColor := color.NoColor
	color.NoColor = true

	// drop contexts left behind by earlier Execute calls
	for _, c := range []*cobra.Command{hashCmd, validateCmd, cdnListCmd, cdnCheckCmd, cdnVerifyCmd, infoCmd} {
		c.SetContext(context.Background())
	}

	appCtx := &AppContext{
		Logger: nil,
		Root:   root,
		Config: newCLIConfig(),
	}
	globalAppContext = appCtx

	return appCtx, func() {
		globalAppContext = original
		color.NoColor = originalNoColor
	}
}

// runCommand invokes cmd.RunE with captured stdout and stderr.
func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	t.Cleanup(func() {
		cmd.SetOut(nil)
		cmd.SetErr(nil)
	})

	err := cmd.RunE(cmd, args)
	return stdout.String(), stderr.String(), err
}
