package main

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

type tableSettings struct {
	highlight int
	colorize  bool
	width     int
}

type tableOption func(*tableSettings)

// highlightRow marks one row, typically the unit the value was typed in.
// Highlighting only shows when colour is enabled.
func highlightRow(index int) tableOption {
	return func(s *tableSettings) {
		s.highlight = index
	}
}

// renderTable renders rows for w, honouring the colour mode and the
// terminal width when w is a terminal.
func (c *commandContext) renderTable(w io.Writer, headers []string, rows [][]string, aligns []columnAlignment, opts ...tableOption) string {
	settings := tableSettings{
		highlight: -1,
		colorize:  c.colorize(w),
		width:     terminalWidth(w),
	}
	for _, opt := range opts {
		opt(&settings)
	}
	return renderTable(headers, rows, aligns, settings)
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment, settings tableSettings) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if settings.width > 0 {
		tw.SetAllowedRowLength(settings.width)
	}

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	highlight := text.Colors{text.Bold, text.FgCyan}
	for index, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if settings.colorize && index == settings.highlight {
				cell = highlight.Sprint(cell)
			}
			r[i] = cell
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	if settings.colorize {
		tw.Style().Color.Header = text.Colors{text.Bold}
	}

	return tw.Render()
}
