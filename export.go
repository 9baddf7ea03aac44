package main

import (
	"log"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Cicchelli/portifoliowebstephan/internal/content"
	"github.com/Cicchelli/portifoliowebstephan/internal/page"
)

func exportCmd() *cobra.Command {
	var (
		out  string
		dark bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the portfolio as a static site",
		Long: `Write index.html and its static assets to a directory, ready to be
hosted by any static file server.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			tmpl, err := page.Parse()
			if err != nil {
				return err
			}

			view := page.NewView(content.Default(), revealOptions(cfg))
			if dark {
				view.Theme.Toggle()
			}

			n, err := page.Export(out, tmpl, view)
			if err != nil {
				return err
			}
			log.Printf("Exported portfolio to %s (%s)", out, humanize.Bytes(uint64(n)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	cmd.Flags().BoolVar(&dark, "dark", false, "start the exported page in dark mode")

	return cmd
}
