package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/auctionboard/internal/core"
)

// New builds the gridctl root command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gridctl",
		Short: "Sort, filter and print listing table views.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addRender(cmd)
	addViews(cmd)
	return cmd
}

// RenderOptions captures the flags of the render command.
type RenderOptions struct {
	View      string
	File      string
	Sort      string
	Direction string
	Statuses  []string
	Now       string
}

func addRender(topLevel *cobra.Command) {
	o := &RenderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a view's rows in display order.",
		Example: `
gridctl render --view my_auctions --file auctions.json
gridctl render --view my_bids --file bids.json --sort yourMax --dir desc
gridctl render --view my_auctions --file auctions.json --status active,sold --now 2026-03-01T12:00:00Z
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			now := time.Now
			if o.Now != "" {
				at, err := time.Parse(time.RFC3339, o.Now)
				if err != nil {
					return fmt.Errorf("invalid --now: %w", err)
				}
				now = func() time.Time { return at }
			}

			svc := core.NewService(&fileSource{path: o.File, now: now}, core.Options{Now: now})
			snap, err := svc.RenderView(context.Background(), o.View, 0, core.RenderRequest{
				Sort:      o.Sort,
				Direction: o.Direction,
				Statuses:  o.Statuses,
				FilterSet: cmd.Flags().Changed("status"),
			})
			if err != nil {
				return err
			}

			printSnapshot(cmd.OutOrStdout(), snap)
			return nil
		},
	}

	cmd.Flags().StringVar(&o.View, "view", "", "View key, see `gridctl views`.")
	cmd.Flags().StringVarP(&o.File, "file", "f", "", "JSON file holding the view's rows.")
	cmd.Flags().StringVar(&o.Sort, "sort", "", "Column to sort by; omit for the grouped order.")
	cmd.Flags().StringVar(&o.Direction, "dir", "asc", "Sort direction: asc or desc.")
	cmd.Flags().StringSliceVar(&o.Statuses, "status", nil, "Status values to show (comma separated).")
	cmd.Flags().StringVar(&o.Now, "now", "", "Render as of this RFC3339 instant.")
	_ = cmd.MarkFlagRequired("view")
	_ = cmd.MarkFlagRequired("file")

	topLevel.AddCommand(cmd)
}

func addViews(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "views",
		Short: "List the registered views and their columns.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			tbl := newViewsTable()
			for _, def := range core.All() {
				grid, err := def.New(core.Deps{})
				if err != nil {
					return fmt.Errorf("build view %s: %w", def.Info.Key, err)
				}
				addViewRow(tbl, def.Info, grid.Snapshot().Columns)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
