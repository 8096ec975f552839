package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/familykitchen/recipeshelf/view"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var searchFlag string
	var sortFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes, optionally filtered and sorted",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch sortFlag {
			case string(view.SortNewest), string(view.SortOldest), string(view.SortTitle):
			default:
				return fmt.Errorf("unknown sort %q (newest, oldest, title)", sortFlag)
			}

			s, err := ctx.loadedStore(cmd.Context())
			if err != nil {
				return err
			}

			renderer := view.NewRenderer(nil)
			list := renderer.Render(s.Recipes(), view.Filter{
				Keyword: searchFlag,
				Sort:    view.SortKey(sortFlag),
			})
			if list.Empty {
				fmt.Fprintln(cmd.OutOrStdout(), colorize("저장된 레시피가 없습니다", ansiDim, cmd.OutOrStdout()))
				return nil
			}

			rows := make([][]string, 0, len(list.Cards))
			for _, c := range list.Cards {
				link := c.Domain
				if c.Embed != nil {
					link = c.Embed.URL
				}
				rows = append(rows, []string{
					c.Recipe.ID,
					c.Recipe.Title,
					c.SourceLabel,
					c.Tags,
					strings.Join(c.Ingredients, ", "),
					link,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "제목", "출처", "태그", "재료", "링크"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&searchFlag, "search", "s", "", "Keyword matched against title, notes, tags and ingredients")
	cmd.Flags().StringVar(&sortFlag, "sort", string(view.SortNewest), "Sort order: newest, oldest or title")
	return cmd
}
