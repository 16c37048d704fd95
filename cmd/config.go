package cmd

import (
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	consts "github.com/khanhnv2901/sri-cli/internal/shared/constants"
)

const (
	defaultFetchTimeoutSeconds = int(consts.FetchTimeout / time.Second)
	defaultCDNConcurrency      = 4
	defaultCDNRateLimit        = 2
	defaultFormat              = "text"
	defaultParser              = "regex"
)

// CLIConfig captures runtime configuration shared across commands.
type CLIConfig struct {
	Defaults DefaultValues
	Validate ValidateConfig
	CDN      CDNConfig
}

// DefaultValues represent operator-level defaults, typically derived from env/config.
type DefaultValues struct {
	TimeoutSecs int
}

// ValidateConfig consolidates flag-driven settings for the validate command.
type ValidateConfig struct {
	Markup     string
	Stylesheet string
	Parser     string
	Format     string
}

// CDNConfig captures settings for the cdn subcommands.
type CDNConfig struct {
	ConfigPath  string
	Format      string
	Concurrency int
	RateLimit   int
}

type defaultOverrides struct {
	TimeoutSecs    *int
	Format         string
	Markup         string
	Stylesheet     string
	Parser         string
	CDNConfigPath  string
	CDNConcurrency *int
	CDNRateLimit   *int
}

var cliConfig = newCLIConfig()

func newCLIConfig() *CLIConfig {
	return &CLIConfig{
		Defaults: DefaultValues{
			TimeoutSecs: defaultFetchTimeoutSeconds,
		},
		Validate: ValidateConfig{
			Markup:     consts.DefaultMarkupPath,
			Stylesheet: consts.DefaultStylesheetPath,
			Parser:     defaultParser,
			Format:     defaultFormat,
		},
		CDN: CDNConfig{
			ConfigPath:  consts.DefaultCDNConfigPath,
			Format:      defaultFormat,
			Concurrency: defaultCDNConcurrency,
			RateLimit:   defaultCDNRateLimit,
		},
	}
}

func loadDefaultOverrides() defaultOverrides {
	overrides := defaultOverrides{}

	if viper.IsSet("defaults.timeout_secs") {
		val := viper.GetInt("defaults.timeout_secs")
		overrides.TimeoutSecs = &val
	}

	if viper.IsSet("defaults.format") {
		overrides.Format = viper.GetString("defaults.format")
	}

	if viper.IsSet("validate.markup") {
		overrides.Markup = viper.GetString("validate.markup")
	}

	if viper.IsSet("validate.stylesheet") {
		overrides.Stylesheet = viper.GetString("validate.stylesheet")
	}

	if viper.IsSet("validate.parser") {
		overrides.Parser = viper.GetString("validate.parser")
	}

	if viper.IsSet("cdn.config") {
		overrides.CDNConfigPath = viper.GetString("cdn.config")
	}

	if viper.IsSet("cdn.concurrency") {
		val := viper.GetInt("cdn.concurrency")
		overrides.CDNConcurrency = &val
	}

	if viper.IsSet("cdn.rate") {
		val := viper.GetInt("cdn.rate")
		overrides.CDNRateLimit = &val
	}

	return overrides
}

// applyConfigDefaults merges config file and SRI_* env defaults into the runtime
// config when the user did not explicitly override the corresponding flag.
func applyConfigDefaults() {
	overrides := loadDefaultOverrides()

	if overrides.TimeoutSecs != nil && *overrides.TimeoutSecs > 0 {
		applyIntDefault(rootCmd.PersistentFlags(), "timeout", *overrides.TimeoutSecs, func(v int) {
			cliConfig.Defaults.TimeoutSecs = v
		})
	}

	if overrides.Format != "" {
		applyStringDefault(validateCmd.Flags(), "format", overrides.Format, func(v string) {
			cliConfig.Validate.Format = v
		})
		applyStringDefault(cdnCmd.PersistentFlags(), "format", overrides.Format, func(v string) {
			cliConfig.CDN.Format = v
		})
	}

	if overrides.Markup != "" {
		applyStringDefault(validateCmd.Flags(), "markup", overrides.Markup, func(v string) {
			cliConfig.Validate.Markup = v
		})
	}

	if overrides.Stylesheet != "" {
		applyStringDefault(validateCmd.Flags(), "stylesheet", overrides.Stylesheet, func(v string) {
			cliConfig.Validate.Stylesheet = v
		})
	}

	if overrides.Parser != "" {
		applyStringDefault(validateCmd.Flags(), "parser", overrides.Parser, func(v string) {
			cliConfig.Validate.Parser = v
		})
	}

	if overrides.CDNConfigPath != "" {
		applyStringDefault(cdnCmd.PersistentFlags(), "cdn-config", overrides.CDNConfigPath, func(v string) {
			cliConfig.CDN.ConfigPath = v
		})
	}

	if overrides.CDNConcurrency != nil {
		applyIntDefault(cdnVerifyCmd.Flags(), "concurrency", *overrides.CDNConcurrency, func(v int) {
			cliConfig.CDN.Concurrency = v
		})
	}

	if overrides.CDNRateLimit != nil {
		applyIntDefault(cdnVerifyCmd.Flags(), "rate", *overrides.CDNRateLimit, func(v int) {
			cliConfig.CDN.RateLimit = v
		})
	}
}

func applyIntDefault(flags *pflag.FlagSet, name string, value int, setter func(int)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}

func applyStringDefault(flags *pflag.FlagSet, name, value string, setter func(string)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}
