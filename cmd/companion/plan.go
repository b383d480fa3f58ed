package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/osse101/ValleyCompanion_Go/internal/handler"
	"github.com/osse101/ValleyCompanion_Go/internal/planner"
)

func newPlanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage the crop plan",
		Long: `Keep a list of crops to plant and see what the seeds cost and what the
harvest sells for. The plan is stored in the state backend.`,
	}
	cmd.AddCommand(
		newPlanAddCmd(a),
		newPlanRemoveCmd(a),
		newPlanSetCmd(a),
		newPlanShowCmd(a),
		newPlanClearCmd(a),
	)
	return cmd
}

func newPlanAddCmd(a *app) *cobra.Command {
	var qty int
	cmd := &cobra.Command{
		Use:   "add <crop-id>",
		Short: "Add a crop, or plant more of one already planned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if qty < 1 {
				return errors.New("--qty must be at least 1")
			}
			ctx, cancel := a.context(cmd)
			defer cancel()

			crop, err := a.client().GetCrop(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get crop %q: %w", args[0], err)
			}

			repo, err := a.plans(ctx)
			if err != nil {
				return err
			}
			p, err := repo.Load(ctx)
			if err != nil {
				return err
			}

			p.AddCrop(*crop)
			if qty > 1 {
				p.SetQuantity(crop.ID, p.Quantity(crop.ID)+qty-1)
			}
			if err := repo.Save(ctx, p); err != nil {
				return err
			}

			return a.message(p.Summary(), fmt.Sprintf("Planned %d x %s", p.Quantity(crop.ID), crop.Name))
		},
	}
	cmd.Flags().IntVar(&qty, "qty", 1, "seeds to add")
	return cmd
}

func newPlanRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <crop-id>",
		Aliases: []string{"rm"},
		Short:   "Remove a crop from the plan",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.updatePlan(cmd, func(p *planner.Planner) string {
				if p.Quantity(args[0]) == 0 {
					return fmt.Sprintf("%s is not in the plan", args[0])
				}
				p.RemoveCrop(args[0])
				return fmt.Sprintf("Removed %s", args[0])
			})
		},
	}
}

func newPlanSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <crop-id> <quantity>",
		Short: "Set how many of a planned crop to plant; 0 removes it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q: %w", args[1], err)
			}
			return a.updatePlan(cmd, func(p *planner.Planner) string {
				if p.Quantity(args[0]) == 0 {
					return fmt.Sprintf("%s is not in the plan; use plan add first", args[0])
				}
				p.SetQuantity(args[0], qty)
				if qty <= 0 {
					return fmt.Sprintf("Removed %s", args[0])
				}
				return fmt.Sprintf("Planned %d x %s", qty, args[0])
			})
		},
	}
}

// updatePlan loads the plan, applies change and saves it
func (a *app) updatePlan(cmd *cobra.Command, change func(*planner.Planner) string) error {
	ctx, cancel := a.context(cmd)
	defer cancel()

	repo, err := a.plans(ctx)
	if err != nil {
		return err
	}
	p, err := repo.Load(ctx)
	if err != nil {
		return err
	}
	text := change(p)
	if err := repo.Save(ctx, p); err != nil {
		return err
	}
	return a.message(p.Summary(), text)
}

func newPlanShowCmd(a *app) *cobra.Command {
	var remote bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the plan with costs and profit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			repo, err := a.plans(ctx)
			if err != nil {
				return err
			}
			p, err := repo.Load(ctx)
			if err != nil {
				return err
			}

			summary := p.Summary()
			if remote && p.Len() > 0 {
				// Prices the plan against the server's current crop data
				items := make([]handler.PlannerItemRequest, 0, p.Len())
				for _, e := range p.Entries() {
					items = append(items, handler.PlannerItemRequest{CropID: e.Crop.ID, Quantity: e.Quantity})
				}
				priced, err := a.client().PlannerSummary(ctx, items)
				if err != nil {
					return fmt.Errorf("failed to price plan: %w", err)
				}
				summary = *priced
			}

			return a.render(summary, func() tabular { return summaryTable(summary) })
		},
	}
	cmd.Flags().BoolVar(&remote, "remote", false, "price the plan with the API's current crop data")
	return cmd
}

func summaryTable(s planner.Summary) tabular {
	t := tabular{headers: []string{"Crop", "Qty", "Seed", "Sell", "Investment", "Revenue", "Profit"}}
	for _, item := range s.Items {
		t.rows = append(t.rows, []string{
			item.Name, strconv.Itoa(item.Quantity), intOrDash(item.SeedPrice), intOrDash(item.SellPrice),
			strconv.Itoa(item.Investment), strconv.Itoa(item.Revenue), strconv.Itoa(item.Profit),
		})
	}
	t.footer = fmt.Sprintf("Investment %dg · Revenue %dg · Net profit %dg",
		s.Totals.Investment, s.Totals.Revenue, s.Totals.NetProfit)
	return t
}

func newPlanClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			repo, err := a.plans(ctx)
			if err != nil {
				return err
			}
			if err := repo.Clear(ctx); err != nil {
				return err
			}
			return a.message(planner.New().Summary(), "Plan cleared")
		},
	}
}
