package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MacroPower/filemonitor/pkg/paths"
)

const envPrefix = "FILEMONITOR"

const (
	flagBaseDir   = "base_dir"
	flagConfig    = "config"
	flagLogLevel  = "log_level"
	flagLogFormat = "log_format"
	flagOutput    = "output"
)

var ErrLoadConfig = errors.New("load config")

// Config holds the settings shared by all commands. Values come from flags,
// FILEMONITOR_* environment variables and an optional config file, in that
// order of precedence.
type Config struct {
	BaseDir   string `mapstructure:"base_dir"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	Output    string `mapstructure:"output"`
}

func addConfigFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String(flagBaseDir, "", "Base directory for relative paths (default: directory of the executable)")
	flags.String(flagConfig, "", "Path to a YAML config file")
	flags.String(flagLogLevel, "warn", "Set the log level (debug, info, warn, error)")
	flags.String(flagLogFormat, "text", "Set the log format (text, logfmt, json)")
	flags.StringP(flagOutput, "o", outputText, "Set the output format (text, json, yaml)")

	if err := cmd.MarkPersistentFlagFilename(flagConfig, "yaml", "yml"); err != nil {
		panic(err)
	}

	if err := cmd.MarkPersistentFlagDirname(flagBaseDir); err != nil {
		panic(err)
	}
}

// loadConfig reads the configuration for cc.
func loadConfig(cc *cobra.Command) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	flags := cc.Flags()

	var merr error

	for _, name := range []string{flagBaseDir, flagLogLevel, flagLogFormat, flagOutput} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	configFile, err := flags.GetString(flagConfig)
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		merr = multierror.Append(merr, err)
	}

	if merr != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, merr)
	}

	if cfg.BaseDir == "" {
		cfg.BaseDir, err = paths.BaseDir()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	return cfg, nil
}
