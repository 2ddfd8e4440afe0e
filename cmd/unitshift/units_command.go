package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"unitshift/internal/converter"
	"unitshift/internal/units"
)

type unitView struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Factor string `json:"factor,omitempty"`
	Base   bool   `json:"base,omitempty"`
}

func newUnitsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "units <category>",
		Short: "List the units of a category in display order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := units.ParseCategory(args[0])
			if err != nil {
				return err
			}
			engine := ctx.engine()
			list, err := engine.UnitsOf(category)
			if err != nil {
				return err
			}
			base, err := units.BaseUnitOf(category)
			if err != nil {
				return err
			}

			views := make([]unitView, 0, len(list))
			for _, u := range list {
				name, err := engine.DisplayNameOf(category, u)
				if err != nil {
					return err
				}
				spec, err := units.SpecOf(category, u)
				if err != nil {
					return err
				}
				view := unitView{Symbol: u.Symbol(), Name: name, Kind: spec.Kind().String(), Base: u == base}
				if factor, ok := spec.Factor(); ok {
					view.Factor = converter.FormatExact(factor)
				}
				views = append(views, view)
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, views)
			}

			rows := make([][]string, 0, len(views))
			for _, v := range views {
				rows = append(rows, []string{v.Symbol, v.Name, describeSpec(v, base)})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ctx.renderTable(out,
				[]string{"Symbol", "Name", "Definition"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}

func describeSpec(v unitView, base units.Unit) string {
	switch {
	case v.Base:
		return "base unit"
	case v.Factor != "":
		return fmt.Sprintf("1 %s = %s %s", v.Symbol, v.Factor, base.Symbol())
	default:
		return fmt.Sprintf("affine, via %s", base.Symbol())
	}
}
