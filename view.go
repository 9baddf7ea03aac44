package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Cicchelli/portifoliowebstephan/internal/content"
	"github.com/Cicchelli/portifoliowebstephan/internal/tui"
)

var errNotTerminal = errors.New("view needs an interactive terminal; try `portfolio export` or `portfolio serve` instead")

func viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Browse the portfolio in this terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errNotTerminal
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(tui.Options{Profile: content.Default(), Reveal: revealOptions(cfg)})
		},
	}
}
