package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFavoritesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Manage favorite recipes",
	}
	cmd.AddCommand(newFavoritesToggleCmd(a), newFavoritesListCmd(a))
	return cmd
}

type toggleResult struct {
	RecipeID string `json:"recipeId"`
	Favorite bool   `json:"favorite"`
}

func newFavoritesToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <recipe-id>",
		Short: "Star or unstar a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			repo, err := a.favorites(ctx)
			if err != nil {
				return err
			}
			on, err := repo.Toggle(ctx, args[0])
			if err != nil {
				return err
			}

			text := fmt.Sprintf("Removed %s from favorites", args[0])
			if on {
				text = fmt.Sprintf("Added %s to favorites", args[0])
			}
			return a.message(toggleResult{RecipeID: args[0], Favorite: on}, text)
		},
	}
}

func newFavoritesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List favorite recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			recipes, err := a.client().ListRecipes(ctx, "")
			if err != nil {
				return fmt.Errorf("failed to list recipes: %w", err)
			}
			favs, err := a.favoriteRecipes(cmd, recipes)
			if err != nil {
				return err
			}
			return a.render(favs, func() tabular { return recipesTable(favs) })
		},
	}
}
