package templates

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/JonMunkholm/auctionboard/internal/core"
	"github.com/JonMunkholm/auctionboard/internal/smarttable"
)

// TableView renders a full HTML document around the view table.
func TableView(snap core.Snapshot, req core.RenderRequest) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="he" dir="rtl"><head><meta charset="utf-8"><title>`)
		h.text(snap.View.Label)
		h.raw(`</title></head><body><h1>`)
		h.text(snap.View.Label)
		h.raw(`</h1><div id="grid">`)
		if h.err == nil {
			h.err = TablePartial(snap, req).Render(ctx, w)
		}
		h.raw(`</div></body></html>`)
		return h.err
	})
}

// TablePartial renders the filter form, the table and the empty state. It is
// swapped into #grid by htmx.
func TablePartial(snap core.Snapshot, req core.RenderRequest) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		base := "/view/" + url.PathEscape(snap.View.Key)

		if len(snap.Filters) > 0 {
			writeFilterForm(h, base, snap)
		}

		h.raw(`<table class="grid"><thead><tr>`)
		for _, col := range snap.Columns {
			h.raw(`<th data-column="`, templ.EscapeString(col.Key), `">`)
			if col.Sortable {
				h.raw(`<a href="`, templ.EscapeString(sortURL(base, col, req)), `">`)
				h.text(col.Header)
				h.raw(sortArrow(col.Direction), `</a>`)
			} else {
				h.text(col.Header)
			}
			h.raw(`</th>`)
		}
		h.raw(`</tr></thead><tbody>`)

		for _, row := range snap.Rows {
			h.raw(`<tr>`)
			for _, cell := range row.Cells {
				writeCell(h, cell)
			}
			h.raw(`</tr>`)
		}
		h.raw(`</tbody></table>`)

		if snap.Empty != nil {
			h.raw(`<div class="empty"><p class="empty-title">`)
			h.text(snap.Empty.Title)
			h.raw(`</p><p class="empty-hint">`)
			h.text(snap.Empty.Hint)
			h.raw(`</p></div>`)
		}
		return h.err
	})
}

func writeFilterForm(h *htmlWriter, base string, snap core.Snapshot) {
	h.raw(`<form class="filters" method="get" action="`, templ.EscapeString(base),
		`" hx-get="`, templ.EscapeString(base), `" hx-target="#grid" hx-trigger="change">`)
	if !snap.Sort.Grouped {
		h.raw(`<input type="hidden" name="sort" value="`, templ.EscapeString(snap.Sort.Column), `">`)
		h.raw(`<input type="hidden" name="dir" value="`, templ.EscapeString(snap.Sort.Direction), `">`)
	}
	// Keeps the status key present when every box is unchecked.
	h.raw(`<input type="hidden" name="status" value="">`)
	for _, f := range snap.Filters {
		h.raw(`<label><input type="checkbox" name="status" value="`, templ.EscapeString(f.Value), `"`)
		if f.Checked {
			h.raw(` checked`)
		}
		h.raw(`> `)
		h.text(f.Label)
		h.raw(`</label>`)
	}
	h.raw(`</form>`)
}

func writeCell(h *htmlWriter, cell smarttable.Cell) {
	if cell.Tone != "" {
		h.raw(`<td class="tone-`, templ.EscapeString(cell.Tone), `">`)
	} else {
		h.raw(`<td>`)
	}
	if cell.Href != "" {
		h.raw(`<a href="`, templ.EscapeString(string(templ.URL(cell.Href))), `">`)
		h.text(cell.Text)
		h.raw(`</a>`)
	} else {
		h.text(cell.Text)
	}
	h.raw(`</td>`)
}

// sortURL cycles a column through ascending, descending and back to the
// grouped order, keeping the status filter.
func sortURL(base string, col core.ColumnView, req core.RenderRequest) string {
	q := url.Values{}
	switch col.Direction {
	case string(smarttable.Asc):
		q.Set("sort", col.Key)
		q.Set("dir", string(smarttable.Desc))
	case string(smarttable.Desc):
	default:
		q.Set("sort", col.Key)
		q.Set("dir", string(smarttable.Asc))
	}
	if req.FilterSet {
		q.Set("status", strings.Join(req.Statuses, ","))
	}
	if len(q) == 0 {
		return base
	}
	return base + "?" + q.Encode()
}

func sortArrow(direction string) string {
	switch direction {
	case string(smarttable.Asc):
		return " ▲"
	case string(smarttable.Desc):
		return " ▼"
	default:
		return ""
	}
}
