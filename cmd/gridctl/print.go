package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/JonMunkholm/auctionboard/internal/auction"
	"github.com/JonMunkholm/auctionboard/internal/core"
	"github.com/JonMunkholm/auctionboard/internal/smarttable"
)

var (
	headerColor = color.New(color.Bold)
	activeColor = color.New(color.Bold, color.FgCyan)
	urgentColor = color.New(color.FgRed)
)

// printSnapshot writes the view as an aligned table followed by a row count.
func printSnapshot(w io.Writer, snap core.Snapshot) {
	fmt.Fprintln(w, headerColor.Sprint(snap.View.Label))

	tbl := uitable.New()
	tbl.Separator = "  "

	header := make([]any, len(snap.Columns))
	for i, col := range snap.Columns {
		switch col.Direction {
		case string(smarttable.Asc):
			header[i] = activeColor.Sprint(col.Header + " ▲")
		case string(smarttable.Desc):
			header[i] = activeColor.Sprint(col.Header + " ▼")
		default:
			header[i] = headerColor.Sprint(col.Header)
		}
	}
	tbl.AddRow(header...)

	for _, row := range snap.Rows {
		cells := make([]any, len(row.Cells))
		for i, cell := range row.Cells {
			cells[i] = cellText(cell)
		}
		tbl.AddRow(cells...)
	}
	fmt.Fprintln(w, tbl)

	if snap.Empty != nil {
		fmt.Fprintln(w, snap.Empty.Title)
		fmt.Fprintln(w, snap.Empty.Hint)
	}
	fmt.Fprintf(w, "%d of %d rows\n", snap.Visible(), snap.Total)
}

func cellText(cell smarttable.Cell) string {
	if cell.Tone == auction.ToneUrgent {
		return urgentColor.Sprint(cell.Text)
	}
	return cell.Text
}

func newViewsTable() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(headerColor.Sprint("VIEW"), headerColor.Sprint("LABEL"), headerColor.Sprint("COLUMNS"))
	return tbl
}

// addViewRow lists a view's columns, starring the sortable ones.
func addViewRow(tbl *uitable.Table, info core.ViewInfo, cols []core.ColumnView) {
	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = col.Key
		if col.Sortable {
			names[i] += "*"
		}
	}
	tbl.AddRow(info.Key, info.Label, strings.Join(names, ", "))
}
