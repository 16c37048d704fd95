package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/khanhnv2901/sri-cli/internal/cdn"
	"github.com/khanhnv2901/sri-cli/internal/fetch"
	"github.com/khanhnv2901/sri-cli/internal/report"
	"github.com/khanhnv2901/sri-cli/internal/sri"
)

var cdnCmd = &cobra.Command{
	Use:   "cdn",
	Short: "Inspect and verify the project's CDN configuration",
	Long: `Work with the CDN configuration file (cdn.yaml by default), which maps
logical resource names to a URL, integrity value and crossorigin mode:

  resources:
    googleFonts:
      url: https://fonts.googleapis.com/css2?family=Inter&display=swap
      integrity: sha384-...
      crossorigin: anonymous`,
}

var cdnListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the markup attributes for each configured resource",
	Args:  cobra.NoArgs,
	RunE:  runCDNList,
}

var cdnCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Apply the SRI policy to each configured resource (offline)",
	Args:  cobra.NoArgs,
	RunE:  runCDNCheck,
}

var cdnVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Download each configured resource and compare it with its integrity value",
	Args:  cobra.NoArgs,
	RunE:  runCDNVerify,
}

func init() {
	cdnCmd.PersistentFlags().StringVar(&cliConfig.CDN.ConfigPath, "cdn-config", cliConfig.CDN.ConfigPath, "CDN configuration file, relative to --root")
	cdnCmd.PersistentFlags().StringVarP(&cliConfig.CDN.Format, "format", "f", cliConfig.CDN.Format, "output format for check: text, json or markdown")

	cdnVerifyCmd.Flags().IntVar(&cliConfig.CDN.Concurrency, "concurrency", cliConfig.CDN.Concurrency, "maximum concurrent downloads")
	cdnVerifyCmd.Flags().IntVar(&cliConfig.CDN.RateLimit, "rate", cliConfig.CDN.RateLimit, "maximum downloads started per second")

	cdnCmd.AddCommand(cdnListCmd)
	cdnCmd.AddCommand(cdnCheckCmd)
	cdnCmd.AddCommand(cdnVerifyCmd)
}

func loadCDNConfig(appCtx *AppContext) (*cdn.Config, error) {
	path, err := resolveProjectPath(appCtx.Root, appCtx.Config.CDN.ConfigPath)
	if err != nil {
		return nil, err
	}
	cfg, err := cdn.Load(path)
	if err != nil {
		return nil, err
	}
	appCtx.log().Debugw("loaded CDN config", "path", path, "resources", len(cfg.Resources))
	return cfg, nil
}

func runCDNList(cmd *cobra.Command, args []string) error {
	appCtx := getAppContext(cmd)
	cfg, err := loadCDNConfig(appCtx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range cfg.Names() {
		res := cfg.Resources[name]
		printLine(out, report.LevelInfo, name)

		attrs := cdn.AttributesFor(res)
		if sri.InferTag(res.URL) == sri.TagStylesheet {
			fmt.Fprintf(out, "  <link %s>\n", attrs)
		} else {
			fmt.Fprintf(out, "  <script %s></script>\n", attrs)
		}
	}
	return nil
}

func runCDNCheck(cmd *cobra.Command, args []string) error {
	appCtx := getAppContext(cmd)

	format, err := report.ParseFormat(appCtx.Config.CDN.Format)
	if err != nil {
		return err
	}

	cfg, err := loadCDNConfig(appCtx)
	if err != nil {
		return err
	}

	rep := cdn.Check(cfg)
	appCtx.log().Infow("cdn check complete", "errors", len(rep.Errors), "warnings", len(rep.Warnings))

	if err := report.NewWriter(format, cmd.OutOrStdout()).Write(rep); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if !rep.Passed() {
		return &ExitError{Code: rep.ExitCode()}
	}
	return nil
}

func runCDNVerify(cmd *cobra.Command, args []string) error {
	appCtx := getAppContext(cmd)
	cfg, err := loadCDNConfig(appCtx)
	if err != nil {
		return err
	}

	progress := newProgressPrinter(cmd.ErrOrStderr(), len(cfg.Resources), "CDN")
	timeout := time.Duration(appCtx.Config.Defaults.TimeoutSecs) * time.Second
	verifier := &cdn.Verifier{
		Calculator:  &sri.Calculator{Fetcher: &fetch.Fetcher{Timeout: timeout}},
		Concurrency: appCtx.Config.CDN.Concurrency,
		RateLimit:   appCtx.Config.CDN.RateLimit,
		Logger:      appCtx.log(),
		OnResult: func(r cdn.VerifyResult, elapsed time.Duration) {
			progress.Increment(r.OK(), elapsed)
		},
	}

	progress.Start()
	results := verifier.Verify(commandContext(cmd), cfg)
	progress.Stop()

	out := cmd.OutOrStdout()
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTATUS\tURL")
	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, formatStatusWithColor(string(r.Status)), r.URL)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	for _, r := range results {
		switch r.Status {
		case cdn.StatusMismatch:
			fmt.Fprintln(out)
			printLine(out, report.LevelError, fmt.Sprintf("%s: integrity mismatch", r.Name))
			fmt.Fprintf(out, "   configured: %s\n", r.Expected)
			fmt.Fprintf(out, "   current:    %s\n", r.Actual)
		case cdn.StatusInvalid, cdn.StatusError:
			fmt.Fprintln(out)
			printLine(out, report.LevelError, fmt.Sprintf("%s: %v", r.Name, r.Err))
		}
	}

	fmt.Fprintln(out)
	summary := fmt.Sprintf("%d/%d resources match their configured integrity", len(results)-failed, len(results))
	if failed > 0 {
		printLine(out, report.LevelError, summary)
		printLine(out, report.LevelInfo, "Recompute stale hashes with: sri hash <URL>")
		return &ExitError{Code: 1}
	}
	printLine(out, report.LevelSuccess, summary)
	return nil
}
