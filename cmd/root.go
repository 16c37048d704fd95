package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/khanhnv2901/sri-cli/internal/report"
)

var cfgFile string
var projectRoot string
var debug bool
var noColor bool

// AppContext carries per-invocation dependencies to subcommands.
type AppContext struct {
	Logger *zap.SugaredLogger
	Root   string
	Config *CLIConfig
}

type appContextKey struct{}

var globalAppContext *AppContext

var rootCmd = &cobra.Command{
	Use:           "sri",
	Short:         "Compute and enforce Subresource Integrity for CDN resources",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if appCtx := getAppContext(cmd); appCtx.Logger != nil {
			_ = appCtx.Logger.Sync()
		}
	},
}

// rootPersistentPreRunE is assigned in init to avoid an initialization cycle
// between rootCmd and applyConfigDefaults.
func rootPersistentPreRunE(cmd *cobra.Command, args []string) error {
	if err := initConfig(); err != nil {
		return err
	}

	if noColor {
		color.NoColor = true
	}

	l, err := newLogger(debug)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	applyConfigDefaults()

	root, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}

	appCtx := &AppContext{
		Logger: l,
		Root:   root,
		Config: cliConfig,
	}
	storeAppContext(cmd, appCtx)

	l.Debugw("starting", "command", cmd.CommandPath(), "root", root, "config", viper.ConfigFileUsed())
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, report.Colorize(report.LevelError, "Error: "+err.Error()))
		os.Exit(1)
	}
}

func initConfig() error {
	viper.SetEnvPrefix("SRI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	path := cfgFile
	if path == "" {
		path = findConfigFile()
	}
	if path == "" {
		return nil
	}

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		// an explicitly requested file must exist
		if cfgFile != "" {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}
	return nil
}

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

func storeAppContext(cmd *cobra.Command, appCtx *AppContext) {
	globalAppContext = appCtx
	cmd.SetContext(context.WithValue(commandContext(cmd), appContextKey{}, appCtx))
}

func getAppContext(cmd *cobra.Command) *AppContext {
	if cmd != nil {
		if ctx := cmd.Context(); ctx != nil {
			if appCtx, ok := ctx.Value(appContextKey{}).(*AppContext); ok {
				return appCtx
			}
		}
	}
	if globalAppContext != nil {
		return globalAppContext
	}
	return &AppContext{
		Logger: zap.NewNop().Sugar(),
		Root:   ".",
		Config: newCLIConfig(),
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func init() {
	rootCmd.PersistentPreRunE = rootPersistentPreRunE

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/sri-cli/config.yaml or $HOME/.sri-cli.yaml)")
	rootCmd.PersistentFlags().StringVarP(&projectRoot, "root", "C", ".", "project root containing the documents to validate")
	rootCmd.PersistentFlags().IntVar(&cliConfig.Defaults.TimeoutSecs, "timeout", defaultFetchTimeoutSeconds, "download timeout in seconds")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(cdnCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(versionCmd)
}

func (a *AppContext) log() *zap.SugaredLogger {
	if a.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return a.Logger
}
