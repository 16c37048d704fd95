package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khanhnv2901/sri-cli/internal/report"
	"github.com/khanhnv2901/sri-cli/internal/scanner"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that every CDN reference in the project carries SRI",
	Long: `Scan the project's markup and stylesheet for externally hosted resources.

Every <link> and <script src> pointing at an http(s) URL must carry a real
integrity attribute and a crossorigin attribute. Stylesheet @import url(...)
directives that load CDN resources are reported as warnings because they
cannot carry SRI.

Exit codes:
  0 - no errors (warnings are allowed)
  1 - at least one CDN reference is unprotected, or the markup is unreadable`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&cliConfig.Validate.Markup, "markup", cliConfig.Validate.Markup, "markup document, relative to --root")
	validateCmd.Flags().StringVar(&cliConfig.Validate.Stylesheet, "stylesheet", cliConfig.Validate.Stylesheet, "stylesheet document, relative to --root")
	validateCmd.Flags().StringVar(&cliConfig.Validate.Parser, "parser", cliConfig.Validate.Parser, "markup extractor: regex or html")
	validateCmd.Flags().StringVarP(&cliConfig.Validate.Format, "format", "f", cliConfig.Validate.Format, "output format: text, json or markdown")
}

func runValidate(cmd *cobra.Command, args []string) error {
	appCtx := getAppContext(cmd)
	cfg := appCtx.Config.Validate
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	extractor, ok := scanner.ExtractorFor(cfg.Parser)
	if !ok {
		return fmt.Errorf("unsupported parser %q (use regex or html)", cfg.Parser)
	}

	markup, markupPath, err := readProjectDocument(appCtx.Root, cfg.Markup)
	if err != nil {
		return &InputFileError{Path: cfg.Markup, Err: err}
	}

	stylesheet, stylesheetPath, err := readProjectDocument(appCtx.Root, cfg.Stylesheet)
	if err != nil {
		printLine(errOut, report.LevelWarning, fmt.Sprintf("Cannot read %s (it may not exist); skipping @import checks", cfg.Stylesheet))
		appCtx.log().Debugw("stylesheet unavailable", "path", cfg.Stylesheet, "error", err)
		stylesheet = ""
	}

	if format == report.FormatText {
		fmt.Fprintln(out)
		printLine(out, report.LevelInfo, "Checking SRI for all CDN resources...")
		fmt.Fprintln(out)
	}

	rep := scanner.New(extractor).Scan(markup, stylesheet)
	appCtx.log().Infow("scan complete",
		"markup", markupPath,
		"stylesheet", stylesheetPath,
		"parser", cfg.Parser,
		"successes", len(rep.Successes),
		"errors", len(rep.Errors),
		"warnings", len(rep.Warnings),
	)

	if err := report.NewWriter(format, out).Write(rep); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if !rep.Passed() {
		return &ExitError{Code: rep.ExitCode()}
	}
	return nil
}
