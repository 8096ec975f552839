package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/familykitchen/recipeshelf/embed"
	"github.com/familykitchen/recipeshelf/preview"
	"github.com/familykitchen/recipeshelf/view"
)

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	var localFlag bool

	cmd := &cobra.Command{
		Use:   "preview <url>",
		Short: "Show the preview a card would render for a link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawURL := args[0]

			if ref := embed.Resolve(rawURL); ref != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "동영상: %s\n", ref.URL)
				return nil
			}

			var src preview.Source
			if localFlag {
				src = preview.NewScraper()
			} else {
				client, err := ctx.ensureClient()
				if err != nil {
					return err
				}
				src = client
			}

			cache := preview.NewCache(src)
			defer cache.Close()
			meta := cache.Get(rawURL).Wait(cmd.Context())

			pv := view.BuildPreview(view.Card{Domain: view.Domain(rawURL)}, meta)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, colorize(pv.Title, ansiCyan, out))
			fmt.Fprintln(out, pv.Site)
			if pv.Description != "" {
				fmt.Fprintln(out, pv.Description)
			}
			if pv.Snippet != "" {
				fmt.Fprintln(out, colorize(pv.Snippet, ansiDim, out))
			}
			if pv.Image != "" {
				fmt.Fprintln(out, pv.Image)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&localFlag, "local", false, "Scrape the page directly instead of asking the collection store")
	return cmd
}
