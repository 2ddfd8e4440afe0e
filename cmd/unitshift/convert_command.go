package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"unitshift/internal/history"
)

type conversionView struct {
	Category string `json:"category"`
	From     string `json:"from"`
	To       string `json:"to"`
	Input    string `json:"input"`
	Output   string `json:"output"`
}

const negativeValueHint = "Prefix negative values with --, e.g. unitshift convert -- -40 C F"

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var categoryFlag string

	cmd := &cobra.Command{
		Use:     "convert <value> <from> <to>",
		Aliases: []string{"c"},
		Short:   "Convert a value from one unit to another",
		Long:    "Convert a value from one unit to another of the same category.\n\n" + negativeValueHint + ".",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, category, err := resolvePair(args[1], args[2], categoryFlag)
			if err != nil {
				return err
			}
			output, err := ctx.engine().Convert(args[0], from, to, category)
			if err != nil {
				return err
			}

			view := conversionView{
				Category: category.String(),
				From:     from.Symbol(),
				To:       to.Symbol(),
				Input:    strings.TrimSpace(args[0]),
				Output:   output,
			}
			if output != "" {
				ctx.recordConversion(cmd, history.Entry{
					Category: view.Category,
					From:     view.From,
					To:       view.To,
					Input:    view.Input,
					Output:   view.Output,
				})
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, view)
			}
			out := cmd.OutOrStdout()
			if output == "" {
				fmt.Fprintln(out, "No value to convert")
				return nil
			}
			fmt.Fprintf(out, "%s %s = %s %s\n", view.Input, view.From, view.Output, view.To)
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryFlag, "category", "", "Category both units must belong to (inferred from <from> when omitted)")
	return cmd
}

func newTableCommand(ctx *commandContext) *cobra.Command {
	var categoryFlag string

	cmd := &cobra.Command{
		Use:   "table <value> <unit>",
		Short: "Show a value in every unit of its category",
		Long:  "Show a value in every unit of its category.\n\n" + negativeValueHint + ".",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := resolveCategory(categoryFlag)
			if err != nil {
				return err
			}
			from, category, err := resolveUnit(args[1], category)
			if err != nil {
				return err
			}
			readings, err := ctx.engine().Siblings(args[0], from, category)
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, readings)
			}

			rows := make([][]string, 0, len(readings))
			source := -1
			for i, r := range readings {
				if r.Source {
					source = i
				}
				rows = append(rows, []string{r.Symbol, r.Name, r.Value})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ctx.renderTable(out,
				[]string{"Unit", "Name", category.String()},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight},
				highlightRow(source),
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryFlag, "category", "", "Category of <unit> (inferred when omitted)")
	return cmd
}
