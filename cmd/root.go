package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/antigravity/petit/internal/app"
	"github.com/antigravity/petit/internal/config"
	"github.com/antigravity/petit/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "petit",
	Short: "Petit - a terminal mini-game arcade",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, 0)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	addConfigFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(versionCmd)
}

// addConfigFlags registers the flags that override config values.
func addConfigFlags(f *pflag.FlagSet) {
	f.String("config", "", "Path to a YAML config file (default: $PETIT_CONFIG)")
	f.String("locale", "", "UI locale, e.g. en or ko")
	f.String("log-file", "", "Write logs to this file")
	f.String("log-level", "", "Log level: debug, info, warn or error")
	f.Bool("mute", false, "Disable audio cues")
	f.Int64("seed", 0, "Fix the random seed (0 picks one from the clock)")
}

// loadConfig layers the config file, the environment and then any flags the
// user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("PETIT_CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("locale") {
		cfg.Locale, _ = flags.GetString("locale")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("mute") {
		cfg.Mute, _ = flags.GetBool("mute")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openLogger builds the logger named by cfg. Callers close the returned closer.
func openLogger(cfg config.Config) (*slog.Logger, io.Closer, error) {
	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return logger, closer, nil
}

// runApp loads settings, builds the arcade and launches the TUI. A non-zero
// startGame skips the home screen.
func runApp(cmd *cobra.Command, startGame int) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closer, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	m, err := app.New(app.Options{
		Config:    cfg,
		Logger:    logger,
		StartGame: startGame,
	})
	if err != nil {
		return fmt.Errorf("build arcade: %w", err)
	}
	return app.Run(cmd.Context(), m)
}
