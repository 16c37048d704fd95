package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show resolved project paths and configuration",
	Long: `Display sri configuration information including:
  - Project root and the documents validate will read
  - CDN configuration file
  - Configuration file in use
  - Platform information`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appCtx := getAppContext(cmd)
		cfg := appCtx.Config
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "sri System Information")
		fmt.Fprintln(out, "======================")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Platform:          %s/%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(out, "Download Timeout:  %ds\n", cfg.Defaults.TimeoutSecs)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Project:")
		fmt.Fprintf(out, "  Root:        %s\n", appCtx.Root)
		printDocumentStatus(out, "Markup:", appCtx.Root, cfg.Validate.Markup)
		printDocumentStatus(out, "Stylesheet:", appCtx.Root, cfg.Validate.Stylesheet)
		printDocumentStatus(out, "CDN Config:", appCtx.Root, cfg.CDN.ConfigPath)
		fmt.Fprintln(out)

		configFile := viper.ConfigFileUsed()
		if configFile == "" {
			fmt.Fprintln(out, "Configuration File: ✗ (using defaults)")
			fmt.Fprintln(out, "  Searched:")
			for _, candidate := range configFileCandidates() {
				fmt.Fprintf(out, "    %s\n", candidate)
			}
		} else {
			fmt.Fprintf(out, "Configuration File: %s ✓\n", configFile)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Environment overrides use the SRI_ prefix, e.g. SRI_DEFAULTS_TIMEOUT_SECS=10")

		return nil
	},
}

func printDocumentStatus(out io.Writer, label, root, rel string) {
	path, err := resolveProjectPath(root, rel)
	if err != nil {
		fmt.Fprintf(out, "  %-12s %s ✗ (%v)\n", label, rel, err)
		return
	}
	status := "✗ (not found)"
	if _, err := os.Stat(path); err == nil {
		status = "✓ (exists)"
	}
	fmt.Fprintf(out, "  %-12s %s %s\n", label, path, status)
}
