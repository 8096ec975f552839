package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/familykitchen/recipeshelf/dialog"
)

func newIngredientCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingredient",
		Short: "Manage a recipe's ingredients",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newIngredientListCommand(ctx))
	cmd.AddCommand(newIngredientAddCommand(ctx))
	cmd.AddCommand(newIngredientEditCommand(ctx))
	cmd.AddCommand(newIngredientRemoveCommand(ctx))
	return cmd
}

func newIngredientListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list <recipe-id>",
		Short: "List one recipe's ingredients",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.ensureClient()
			if err != nil {
				return err
			}
			ings, err := client.ListIngredients(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(ings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), colorize("재료 없음", ansiDim, cmd.OutOrStdout()))
				return nil
			}
			rows := make([][]string, 0, len(ings))
			for _, ing := range ings {
				rows = append(rows, []string{ing.ID, ing.Name, ing.Amount})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "이름", "양"}, rows))
			return nil
		},
	}
}

func newIngredientAddCommand(ctx *commandContext) *cobra.Command {
	var amountFlag string

	cmd := &cobra.Command{
		Use:   "add <recipe-id> <name>",
		Short: "Add an ingredient to a recipe",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.loadedStore(cmd.Context())
			if err != nil {
				return err
			}
			d := dialog.NewIngredientDialog(s)
			d.OpenFor(args[0])
			d.SetForm(dialog.IngredientForm{Name: args[1], Amount: amountFlag})
			ing, err := d.Submit(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "추가됨: %s (%s)\n", ing.Name, ing.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&amountFlag, "amount", "a", "", "Quantity, free text")
	return cmd
}

func newIngredientEditCommand(ctx *commandContext) *cobra.Command {
	var (
		nameFlag   string
		amountFlag string
	)

	cmd := &cobra.Command{
		Use:   "edit <recipe-id> <ingredient-id>",
		Short: "Edit one ingredient",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.loadedStore(cmd.Context())
			if err != nil {
				return err
			}
			r, ok := s.Recipe(args[0])
			if !ok {
				return fmt.Errorf("recipe %s not found", args[0])
			}
			d := dialog.NewIngredientDialog(s)
			d.OpenFor(args[0])
			found := false
			for _, ing := range r.Ingredients {
				if ing.ID == args[1] {
					d.StartEdit(ing)
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("ingredient %s not found on recipe %s", args[1], args[0])
			}
			f := d.Form()
			if cmd.Flags().Changed("name") {
				f.Name = nameFlag
			}
			if cmd.Flags().Changed("amount") {
				f.Amount = amountFlag
			}
			d.SetForm(f)

			ing, err := d.Submit(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "수정됨: %s %s\n", ing.Name, ing.Amount)
			return nil
		},
	}

	cmd.Flags().StringVar(&nameFlag, "name", "", "New name")
	cmd.Flags().StringVar(&amountFlag, "amount", "", "New quantity")
	return cmd
}

func newIngredientRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <recipe-id> <ingredient-id>",
		Short: "Delete one ingredient",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := ctx.loadedStore(cmd.Context())
			if err != nil {
				return err
			}
			if err := s.RemoveIngredient(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "삭제됨")
			return nil
		},
	}
}
