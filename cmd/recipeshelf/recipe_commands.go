package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/familykitchen/recipeshelf/dialog"
	"github.com/familykitchen/recipeshelf/internal/types"
	"github.com/familykitchen/recipeshelf/view"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var (
		titleFlag       string
		urlFlag         string
		notesFlag       string
		tagsFlag        string
		sourceFlag      string
		ingredientFlags []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Catalogue a new recipe link",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.loadedStore(cmd.Context())
			if err != nil {
				return err
			}

			d := dialog.NewRecipeDialog(s)
			d.OpenCreate()
			for _, raw := range ingredientFlags {
				name, amount := splitIngredientFlag(raw)
				s.AddDraft(name, amount)
			}
			d.SetForm(dialog.RecipeForm{
				Title:   titleFlag,
				URL:     urlFlag,
				Notes:   notesFlag,
				TagsRaw: tagsFlag,
				Source:  types.Source(sourceFlag),
			})

			created, err := d.Submit(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "추가됨: %s (%s)\n", created.Title, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&titleFlag, "title", "", "Recipe title (required)")
	cmd.Flags().StringVar(&urlFlag, "url", "", "Recipe link (required)")
	cmd.Flags().StringVar(&notesFlag, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&tagsFlag, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVar(&sourceFlag, "source", string(types.SourceYouTube), "Link source: youtube, blog, instagram or other")
	cmd.Flags().StringArrayVarP(&ingredientFlags, "ingredient", "i", nil, "Draft ingredient as name:amount (repeatable)")
	return cmd
}

func newEditCommand(ctx *commandContext) *cobra.Command {
	var (
		titleFlag  string
		urlFlag    string
		notesFlag  string
		tagsFlag   string
		sourceFlag string
	)

	cmd := &cobra.Command{
		Use:   "edit <recipe-id>",
		Short: "Edit a recipe's fields (ingredients are managed separately)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.loadedStore(cmd.Context())
			if err != nil {
				return err
			}

			d := dialog.NewRecipeDialog(s)
			if !d.OpenEdit(args[0]) {
				return fmt.Errorf("recipe %s not found", args[0])
			}
			f := d.Form()
			if cmd.Flags().Changed("title") {
				f.Title = titleFlag
			}
			if cmd.Flags().Changed("url") {
				f.URL = urlFlag
			}
			if cmd.Flags().Changed("notes") {
				f.Notes = notesFlag
			}
			if cmd.Flags().Changed("tags") {
				f.TagsRaw = tagsFlag
			}
			if cmd.Flags().Changed("source") {
				f.Source = types.Source(sourceFlag)
			}
			d.SetForm(f)

			updated, err := d.Submit(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "수정됨: %s (%s)\n", updated.Title, updated.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&titleFlag, "title", "", "New title")
	cmd.Flags().StringVar(&urlFlag, "url", "", "New link")
	cmd.Flags().StringVar(&notesFlag, "notes", "", "New notes")
	cmd.Flags().StringVar(&tagsFlag, "tags", "", "New comma-separated tags")
	cmd.Flags().StringVar(&sourceFlag, "source", "", "New source")
	return cmd
}

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <recipe-id>",
		Short: "Delete a recipe and its ingredients",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.loadedStore(cmd.Context())
			if err != nil {
				return err
			}
			before := s.Len()
			if err := s.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			if s.Len() == before {
				fmt.Fprintln(cmd.OutOrStdout(), "취소됨")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "삭제됨")
			return nil
		},
	}
}

func newShareCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "share <recipe-id>",
		Short: "Print a recipe's share text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.loadedStore(cmd.Context())
			if err != nil {
				return err
			}
			r, ok := s.Recipe(args[0])
			if !ok {
				return fmt.Errorf("recipe %s not found", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), view.ShareText(*r))
			return nil
		},
	}
}

// splitIngredientFlag parses "name:amount"; a bare name gets an empty
// amount.
func splitIngredientFlag(raw string) (name, amount string) {
	if idx := strings.IndexByte(raw, ':'); idx >= 0 {
		return raw[:idx], raw[idx+1:]
	}
	return raw, ""
}
