package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/CNife/simple-utf8/config"
	"github.com/CNife/simple-utf8/fixture"
)

// skipConfigLoad marks commands that must run without reading the config file.
const skipConfigLoad = "skip-config-load"

// app carries state resolved once in the root command's pre-run hook.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	colored bool
}

// NewRootCmd builds the utf8 command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "utf8",
		Short: "utf8 - UTF-8 encoder and decoder",
		Long: `utf8 converts text to UTF-8 bytes and bytes back to Unicode scalar
values, reporting the exact position and kind of any malformed input.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().String("config", config.DefaultConfigPath(), "Path to the configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("byte-format", "", "Byte output format (hex, dec, bin)")
	rootCmd.PersistentFlags().String("scalar-format", "", "Scalar output format (codepoint, text)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newVerifyCmd(a),
		newInteractiveCmd(a),
		newConfigCmd(a),
	)
	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")

	cfg := config.DefaultConfig()
	if _, skip := cmd.Annotations[skipConfigLoad]; skip {
		configPath = ""
	} else if config.ConfigExists(configPath) {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	} else if flags.Changed("config") {
		return fmt.Errorf("config file does not exist: %s", configPath)
	}

	if v, _ := flags.GetString("log-level"); v != "" {
		cfg.Logging.Level = v
	}
	if v, _ := flags.GetString("byte-format"); v != "" {
		cfg.Output.ByteFormat = v
	}
	if v, _ := flags.GetString("scalar-format"); v != "" {
		cfg.Output.ScalarFormat = v
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		cfg.Output.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	fixture.SetLogger(logger)

	a.cfg = cfg
	a.logger = logger
	a.colored = cfg.Output.Color && isTerminal(cmd.OutOrStdout())
	a.logger.Debug("configuration resolved",
		zap.String("config", configPath),
		zap.String("byte_format", cfg.Output.ByteFormat),
		zap.String("scalar_format", cfg.Output.ScalarFormat),
		zap.Bool("colored", a.colored),
	)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
