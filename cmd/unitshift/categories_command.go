package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"unitshift/internal/units"
)

type categoryView struct {
	Name  string   `json:"name"`
	Base  string   `json:"base"`
	Units []string `json:"units"`
}

func newCategoriesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cats"},
		Short:   "List unit categories",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := ctx.engine()
			views := make([]categoryView, 0, len(engine.Categories()))
			for _, c := range engine.Categories() {
				list, err := engine.UnitsOf(c)
				if err != nil {
					return err
				}
				base, err := units.BaseUnitOf(c)
				if err != nil {
					return err
				}
				symbols := make([]string, 0, len(list))
				for _, u := range list {
					symbols = append(symbols, u.Symbol())
				}
				views = append(views, categoryView{Name: c.String(), Base: base.Symbol(), Units: symbols})
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, views)
			}

			rows := make([][]string, 0, len(views))
			for _, v := range views {
				rows = append(rows, []string{v.Name, v.Base, strconv.Itoa(len(v.Units)), strings.Join(v.Units, ", ")})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ctx.renderTable(out,
				[]string{"Category", "Base", "Count", "Units"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}
}
