package cmd

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khanhnv2901/sri-cli/internal/report"
	consts "github.com/khanhnv2901/sri-cli/internal/shared/constants"
	"github.com/khanhnv2901/sri-cli/internal/sri"
)

// Set at build time with -ldflags "-X github.com/khanhnv2901/sri-cli/cmd.Version=...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print the sri version. With -v, also list build details and the hashing defaults.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "sri version %s\n", Version)
		if verbose {
			writeBuildDetails(out)
		}
	},
}

func writeBuildDetails(out io.Writer) {
	algs := make([]string, 0, len(sri.Algorithms()))
	for _, alg := range sri.Algorithms() {
		algs = append(algs, string(alg))
	}
	formats := []string{string(report.FormatText), string(report.FormatJSON), string(report.FormatMarkdown)}

	fmt.Fprintf(out, "  Git Commit:      %s\n", GitCommit)
	fmt.Fprintf(out, "  Build Date:      %s\n", BuildDate)
	fmt.Fprintf(out, "  Go Version:      %s (%s/%s)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "  Algorithms:      %s (recommended: %s)\n", strings.Join(algs, ", "), sri.Recommended)
	fmt.Fprintf(out, "  Fetch Timeout:   %s\n", consts.FetchTimeout)
	fmt.Fprintf(out, "  Report Formats:  %s\n", strings.Join(formats, ", "))
	fmt.Fprintf(out, "  Parsers:         %s, html\n", defaultParser)
}

func init() {
	versionCmd.Flags().BoolP("verbose", "v", false, "also print build details and hashing defaults")
}
