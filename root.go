package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/Cicchelli/portifoliowebstephan/internal/config"
	"github.com/Cicchelli/portifoliowebstephan/internal/reveal"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Stephan Cicchelli's portfolio on the web and in the terminal",
		Long: `portfolio renders a single-page résumé: hero, about, services,
experience, certifications and contact. Sections fade in the first time
they scroll into view and a toggle switches between light and dark mode.

Quick start:
  portfolio serve                  # Web server on $PORT (default 8080)
  portfolio serve --ssh-addr :2222 # Also serve the terminal version over SSH
  portfolio export --out dist      # Write a static copy of the site
  portfolio view                   # Browse the portfolio in this terminal`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Float64("reveal-threshold", 0, "visible fraction that reveals a section (overrides REVEAL_THRESHOLD)")
	cmd.PersistentFlags().Duration("reveal-duration", 0, "reveal transition duration (overrides REVEAL_DURATION)")

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(exportCmd())
	cmd.AddCommand(viewCmd())

	return cmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies any flags set on cmd.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("reveal-threshold") {
		v, _ := flags.GetFloat64("reveal-threshold")
		if v <= 0 || v > 1 {
			return config.Config{}, errInvalidThreshold
		}
		cfg.RevealThreshold = v
	}
	if flags.Changed("reveal-duration") {
		v, _ := flags.GetDuration("reveal-duration")
		if v <= 0 {
			return config.Config{}, errInvalidDuration
		}
		cfg.RevealDuration = v
	}
	if flags.Lookup("port") != nil && flags.Changed("port") {
		v, _ := flags.GetInt("port")
		if v < 1 || v > 65535 {
			return config.Config{}, errInvalidPort
		}
		cfg.Port = v
	}
	if flags.Lookup("ssh-addr") != nil && flags.Changed("ssh-addr") {
		cfg.SSHAddr, _ = flags.GetString("ssh-addr")
	}
	return cfg, nil
}

func revealOptions(cfg config.Config) reveal.Options {
	return reveal.Options{Threshold: cfg.RevealThreshold, Duration: cfg.RevealDuration}
}

var (
	errInvalidThreshold = errors.New("--reveal-threshold must be in (0, 1]")
	errInvalidDuration  = errors.New("--reveal-duration must be greater than 0")
	errInvalidPort      = errors.New("--port must be between 1 and 65535")
)
