package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"unitshift/internal/history"
)

const defaultHistoryLimit = 20

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent conversions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var entries []history.Entry
			err := ctx.withHistory(func(store *history.Store) error {
				var err error
				entries, err = store.Recent(cmd.Context(), limit)
				return err
			})
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				if entries == nil {
					entries = []history.Entry{}
				}
				return writeJSON(cmd, entries)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No conversions recorded")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					e.CreatedAt.Local().Format(time.DateTime),
					e.Category,
					fmt.Sprintf("%s %s", e.Input, e.From),
					fmt.Sprintf("%s %s", e.Output, e.To),
				})
			}
			fmt.Fprintln(out, ctx.renderTable(out,
				[]string{"When", "Category", "Input", "Output"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}
	historyCmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryLimit, "Number of entries to show (0 for all)")

	historyCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded conversions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var removed int64
			err := ctx.withHistory(func(store *history.Store) error {
				var err error
				removed, err = store.Clear(cmd.Context())
				return err
			})
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, map[string]int64{"removed": removed})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d conversions\n", removed)
			return nil
		},
	})

	return historyCmd
}
