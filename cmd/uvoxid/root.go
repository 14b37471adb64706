package main

import (
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/arloliu/uvoxid/format"
	"github.com/arloliu/uvoxid/internal/config"
	"github.com/arloliu/uvoxid/internal/logging"
)

// app carries the state shared by every subcommand once the root command's
// pre-run has loaded the configuration.
type app struct {
	cfg    config.Config
	logger hclog.Logger

	envFile  string
	logLevel string
	jsonLog  bool
}

func newRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:           "uvoxid",
		Short:         "Encode and inspect 192-bit spatial codes",
		Long:          `Encode, decode, convert, compare and pack 192-bit spatial codes (radius in micrometers, latitude and longitude in micro-degrees).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", config.DefaultEnvFile, "Path to a .env file with UVOXID_* defaults")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&a.jsonLog, "json-log", false, "Write logs as JSON")

	rootCmd.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newConvertCmd(a),
		newSnapCmd(a),
		newCompareCmd(a),
		newScaleCmd(a),
		newPackCmd(a),
		newUnpackCmd(a),
	)

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("json-log") {
		cfg.JSONLog = a.jsonLog
	}

	a.cfg = cfg
	a.logger = logging.NewLogger("uvoxid", cfg.LogLevel, cfg.JSONLog, cmd.ErrOrStderr())
	a.logger.Debug("configuration loaded",
		"env_file", a.envFile,
		"format", cfg.Format.String(),
		"sig_chars", cfg.SigChars,
		"compression", cfg.Compression.String(),
	)

	return nil
}

// textFormat resolves a --format style flag, falling back to the configured
// default when the flag is empty.
func (a *app) textFormat(name string) (format.TextFormat, error) {
	if name == "" {
		return a.cfg.Format, nil
	}

	return format.ParseTextFormat(name)
}

// sigChars resolves a --sig flag, falling back to the configured default
// when the flag was not given.
func (a *app) sigChars(cmd *cobra.Command, n int) int {
	if cmd.Flags().Changed("sig") {
		return n
	}

	return a.cfg.SigChars
}
