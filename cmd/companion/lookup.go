package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/ValleyCompanion_Go/internal/client"
	"github.com/osse101/ValleyCompanion_Go/internal/domain"
	"github.com/osse101/ValleyCompanion_Go/internal/favorites"
)

func newCropsCmd(a *app) *cobra.Command {
	var season string
	cmd := &cobra.Command{
		Use:   "crops",
		Short: "List crops",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			crops, err := a.client().ListCrops(ctx, season)
			if err != nil {
				return fmt.Errorf("failed to list crops: %w", err)
			}
			return a.render(crops, func() tabular { return cropsTable(crops) })
		},
	}
	cmd.Flags().StringVar(&season, "season", "", "season substring, e.g. Spring")
	return cmd
}

func cropsTable(crops []domain.Crop) tabular {
	t := tabular{headers: []string{"ID", "Name", "Season", "Growth", "Regrowth", "Sell", "Seed"}}
	for _, c := range crops {
		t.rows = append(t.rows, []string{
			c.ID, c.Name, c.Season, strconv.Itoa(c.GrowthTime),
			intOrDash(c.RegrowthTime), intOrDash(c.SellPrice), intOrDash(c.SeedPrice),
		})
	}
	return t
}

func newCropCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "crop <id>",
		Short: "Show one crop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			crop, err := a.client().GetCrop(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get crop %q: %w", args[0], err)
			}
			return a.render(crop, func() tabular { return cropsTable([]domain.Crop{*crop}) })
		},
	}
}

func newFishCmd(a *app) *cobra.Command {
	var q client.FishQuery
	cmd := &cobra.Command{
		Use:   "fish",
		Short: "List fish",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			fish, err := a.client().ListFish(ctx, q)
			if err != nil {
				return fmt.Errorf("failed to list fish: %w", err)
			}
			return a.render(fish, func() tabular {
				t := tabular{headers: []string{"Name", "Season", "Weather", "Location", "Time", "Difficulty"}}
				for _, f := range fish {
					t.rows = append(t.rows, []string{
						f.Name, f.Season, f.Weather, f.Location, strOrDash(f.Time), intOrDash(f.Difficulty),
					})
				}
				return t
			})
		},
	}
	cmd.Flags().StringVar(&q.Season, "season", "", "season substring")
	cmd.Flags().StringVar(&q.Weather, "weather", "", "weather substring, e.g. Rain")
	cmd.Flags().StringVar(&q.Location, "location", "", "location substring, e.g. Ocean")
	return cmd
}

func newNPCsCmd(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "npcs",
		Short: "List villagers and their gift preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			var (
				npcs   []domain.NPC
				result any
			)
			if name != "" {
				npc, err := a.client().GetNPC(ctx, name)
				if err != nil {
					return fmt.Errorf("failed to get NPC %q: %w", name, err)
				}
				npcs, result = []domain.NPC{*npc}, npc
			} else {
				list, err := a.client().ListNPCs(ctx)
				if err != nil {
					return fmt.Errorf("failed to list NPCs: %w", err)
				}
				npcs, result = list, list
			}

			return a.render(result, func() tabular {
				t := tabular{headers: []string{"Name", "Birthday", "Loves", "Likes", "Hates"}}
				for _, n := range npcs {
					t.rows = append(t.rows, []string{
						n.Name, n.Birthday,
						strings.Join(n.Loves, ", "), strings.Join(n.Likes, ", "), strings.Join(n.Hates, ", "),
					})
				}
				return t
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "one villager, case-insensitive")
	return cmd
}

func newRecipesCmd(a *app) *cobra.Command {
	var (
		category      string
		onlyFavorites bool
	)
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "List cooking recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			recipes, err := a.client().ListRecipes(ctx, category)
			if err != nil {
				return fmt.Errorf("failed to list recipes: %w", err)
			}
			if onlyFavorites {
				recipes, err = a.favoriteRecipes(cmd, recipes)
				if err != nil {
					return err
				}
			}
			return a.render(recipes, func() tabular { return recipesTable(recipes) })
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "exact category, e.g. Dinner")
	cmd.Flags().BoolVar(&onlyFavorites, "favorites", false, "only favorite recipes")
	return cmd
}

func (a *app) favoriteRecipes(cmd *cobra.Command, recipes []domain.Recipe) ([]domain.Recipe, error) {
	ctx, cancel := a.context(cmd)
	defer cancel()

	repo, err := a.favorites(ctx)
	if err != nil {
		return nil, err
	}
	set, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return favorites.Filter(recipes, set), nil
}

func recipesTable(recipes []domain.Recipe) tabular {
	t := tabular{headers: []string{"ID", "Name", "Category", "Ingredients", "Source"}}
	for _, r := range recipes {
		parts := make([]string, 0, len(r.Ingredients))
		for _, ing := range r.Ingredients {
			parts = append(parts, fmt.Sprintf("%s x%d", ing.Item, ing.Quantity))
		}
		t.rows = append(t.rows, []string{r.ID, r.Name, strOrDash(r.Description), strings.Join(parts, ", "), r.Source})
	}
	return t
}

func newMiningCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mining",
		Short: "List mining locations and their sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			locations, err := a.client().ListMiningLocations(ctx)
			if err != nil {
				return fmt.Errorf("failed to list mining locations: %w", err)
			}
			return a.render(locations, func() tabular {
				t := tabular{headers: []string{"Location", "Section", "Floors", "Ores", "Gems"}}
				for _, l := range locations {
					for _, s := range l.Sections {
						t.rows = append(t.rows, []string{
							l.Location, s.Name, s.Floors, strings.Join(s.Ores, ", "), strings.Join(s.Gems, ", "),
						})
					}
				}
				return t
			})
		},
	}
}

func newBundlesCmd(a *app) *cobra.Command {
	var room string
	cmd := &cobra.Command{
		Use:   "bundles",
		Short: "List community center bundles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			bundles, err := a.client().ListBundles(ctx, room)
			if err != nil {
				return fmt.Errorf("failed to list bundles: %w", err)
			}
			return a.render(bundles, func() tabular {
				t := tabular{headers: []string{"Room", "Bundle", "Items", "Reward"}}
				for _, b := range bundles {
					t.rows = append(t.rows, []string{b.Room, b.Name, strings.Join(b.Items, ", "), b.Reward})
				}
				return t
			})
		},
	}
	cmd.Flags().StringVar(&room, "room", "", "exact room name, e.g. Pantry")
	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search recipes, fish and crops by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			results, err := a.client().Search(ctx, strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}
			return a.render(results, func() tabular {
				t := tabular{headers: []string{"Type", "ID", "Name", "Category"}}
				for _, r := range results {
					t.rows = append(t.rows, []string{r.Type, r.ID, r.Name, strOrDash(r.Category)})
				}
				return t
			})
		},
	}
}
