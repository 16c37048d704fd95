package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/khanhnv2901/sri-cli/internal/fetch"
	"github.com/khanhnv2901/sri-cli/internal/report"
	sharederrors "github.com/khanhnv2901/sri-cli/internal/shared/errors"
	"github.com/khanhnv2901/sri-cli/internal/sri"
)

const hashExampleURL = "https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600&display=swap"

var hashJSON bool

var hashCmd = &cobra.Command{
	Use:   "hash <url>",
	Short: "Download a CDN resource and print its SRI hashes",
	Long: `Download a resource and compute its Subresource Integrity hashes.

Prints integrity attributes for SHA-256, SHA-384 and SHA-512 plus an example
<link> or <script> tag pinned with the recommended SHA-384 hash. The download
is aborted after the configured timeout (30 seconds by default).`,
	Example: fmt.Sprintf("  sri hash %q", hashExampleURL),
	Args:    cobra.MaximumNArgs(1),
	RunE:    runHash,
}

func init() {
	hashCmd.Flags().BoolVar(&hashJSON, "json", false, "print the digest result as JSON")
}

func runHash(cmd *cobra.Command, args []string) error {
	appCtx := getAppContext(cmd)
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if len(args) == 0 || args[0] == "" {
		printLine(errOut, report.LevelError, "Error: missing URL")
		fmt.Fprintln(errOut, "\nUsage:\n  sri hash <URL>")
		fmt.Fprintf(errOut, "\nExample:\n  sri hash %q\n", hashExampleURL)
		return &ExitError{Code: 1}
	}
	rawURL := args[0]

	if _, err := fetch.ParseURL(rawURL); err != nil {
		printFetchFailure(errOut, err)
		return &ExitError{Code: 1}
	}

	timeout := time.Duration(appCtx.Config.Defaults.TimeoutSecs) * time.Second
	calc := &sri.Calculator{Fetcher: &fetch.Fetcher{Timeout: timeout}}

	if !hashJSON {
		printLine(out, report.LevelInfo, "Downloading resource from CDN...")
		fmt.Fprintf(out, "URL: %s\n\n", rawURL)
	}

	start := time.Now()
	result, err := calc.Calculate(commandContext(cmd), rawURL)
	if err != nil {
		appCtx.log().Debugw("hash failed", "url", rawURL, "error", err)
		printFetchFailure(errOut, err)
		return &ExitError{Code: 1}
	}
	appCtx.log().Infow("computed digests", "url", rawURL, "bytes", result.ByteLength, "duration", time.Since(start))

	if hashJSON {
		return writeDigestJSON(out, result)
	}
	printDigest(out, result)
	return nil
}

func printDigest(out io.Writer, result *sri.Result) {
	printLine(out, report.LevelSuccess, fmt.Sprintf("Downloaded successfully (%d bytes)", result.ByteLength))
	fmt.Fprintln(out)

	printLine(out, report.LevelInfo, report.Rule)
	printLine(out, report.LevelInfo, "SRI HASH RESULTS")
	printLine(out, report.LevelInfo, report.Rule)
	fmt.Fprintln(out)

	labels := map[sri.Algorithm]string{
		sri.SHA256: "SHA-256 (not recommended):",
		sri.SHA384: "SHA-384 (RECOMMENDED):",
		sri.SHA512: "SHA-512 (strongest, but longest):",
	}
	for _, alg := range sri.Algorithms() {
		level := report.LevelPlain
		if alg == sri.Recommended {
			level = report.LevelSuccess
		}
		printLine(out, level, labels[alg])
		fmt.Fprintf(out, "%s\n\n", result.Attribute(alg))
	}

	printLine(out, report.LevelInfo, report.Rule)
	fmt.Fprintln(out)

	printLine(out, report.LevelInfo, "Example usage in HTML:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s\n\n", result.Example())

	printLine(out, report.LevelSuccess, "Done!")
	fmt.Fprintln(out)
	printLine(out, report.LevelWarning, "Notes:")
	fmt.Fprintln(out, "   - If the resource changes, its hash changes")
	fmt.Fprintln(out, "   - Recompute the hash whenever you update the resource")
	fmt.Fprintln(out, `   - Always use crossorigin="anonymous" with SRI`)
}

type digestOutput struct {
	Result     *sri.Result `json:"result"`
	Attributes []string    `json:"attributes"`
	Example    string      `json:"example"`
}

func writeDigestJSON(out io.Writer, result *sri.Result) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	payload := digestOutput{
		Result:     result,
		Attributes: result.Attributes(),
		Example:    result.Example(),
	}
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("encode digest: %w", err)
	}
	return nil
}

func printFetchFailure(errOut io.Writer, err error) {
	printLine(errOut, report.LevelError, "Error: "+describeFetchError(err))
	fmt.Fprintf(errOut, "   %v\n", err)

	if hints := fetch.Hints(err); len(hints) > 0 {
		fmt.Fprintln(errOut)
		printLine(errOut, report.LevelWarning, "Check:")
		for _, hint := range hints {
			fmt.Fprintf(errOut, "   - %s\n", hint)
		}
	}
}

func describeFetchError(err error) string {
	var timeoutErr *fetch.TimeoutError
	switch {
	case errors.Is(err, sharederrors.ErrInvalidURL):
		return "invalid URL"
	case errors.Is(err, sharederrors.ErrUnsupportedScheme):
		return "unsupported URL scheme"
	case errors.Is(err, sharederrors.ErrHTTPStatus):
		return "resource could not be downloaded"
	case errors.Is(err, sharederrors.ErrEmptyResource):
		return "resource is empty"
	case errors.As(err, &timeoutErr):
		return fmt.Sprintf("timed out downloading resource (over %s)", timeoutErr.Timeout)
	default:
		return "failed to download resource"
	}
}

func printLine(w io.Writer, level report.Level, text string) {
	fmt.Fprintln(w, report.Colorize(level, text))
}
