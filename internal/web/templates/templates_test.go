package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/JonMunkholm/auctionboard/internal/core"
	"github.com/JonMunkholm/auctionboard/internal/smarttable"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func sampleSnapshot() core.Snapshot {
	return core.Snapshot{
		View: core.ViewInfo{Key: "my_auctions", Label: "המכרזים שלי"},
		Sort: core.SortView{Column: "currentPrice", Direction: "asc"},
		Columns: []core.ColumnView{
			{Key: "title", Header: "שם המוצר", Sortable: true},
			{Key: "currentPrice", Header: "מחיר נוכחי", Sortable: true, Direction: "asc"},
			{Key: "auctionStatus", Header: "סטטוס", HasFilter: true},
		},
		Filters: []core.FilterView{
			{Label: "פעיל", Value: "active", Checked: true},
			{Label: "נמכר", Value: "sold"},
		},
		Rows: []core.RowView{
			{Cells: []smarttable.Cell{
				{Text: "<Lamp>", Href: "/auction/1"},
				{Text: "100 ₪"},
				{Text: "פעיל", Tone: "active"},
			}},
		},
		Total: 2,
	}
}

// ============================================================================
// Table Tests
// ============================================================================

func TestTableView_WrapsPartial(t *testing.T) {
	snap := sampleSnapshot()
	page := render(t, TableView(snap, core.RenderRequest{}))
	partial := render(t, TablePartial(snap, core.RenderRequest{}))

	if !strings.HasPrefix(page, "<!DOCTYPE html>") {
		t.Errorf("page does not start with a doctype: %q", page[:20])
	}
	if !strings.Contains(page, `<div id="grid">`+partial+`</div>`) {
		t.Error("page does not embed the partial inside #grid")
	}
	if strings.Contains(partial, "<html") {
		t.Error("partial renders a full document")
	}
}

func TestTablePartial_Content(t *testing.T) {
	out := render(t, TablePartial(sampleSnapshot(), core.RenderRequest{}))

	tests := []struct {
		name string
		want string
	}{
		{"escaped cell text", "&lt;Lamp&gt;"},
		{"cell link", `<a href="/auction/1">`},
		{"tone class", `<td class="tone-active">`},
		{"active sort arrow", "מחיר נוכחי ▲"},
		{"checked filter", `value="active" checked>`},
		{"blank status keeps key", `<input type="hidden" name="status" value="">`},
		{"sort kept in filter form", `<input type="hidden" name="sort" value="currentPrice">`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}

	if strings.Contains(out, "<Lamp>") {
		t.Error("cell text rendered unescaped")
	}
	if strings.Contains(out, `value="sold" checked`) {
		t.Error("unchecked filter rendered as checked")
	}
}

func TestTablePartial_EmptyState(t *testing.T) {
	snap := sampleSnapshot()
	snap.Rows = nil
	snap.Empty = &core.EmptyState{Title: "אין תוצאות", Hint: "שנה את הסינון"}

	out := render(t, TablePartial(snap, core.RenderRequest{}))
	if !strings.Contains(out, `<p class="empty-title">אין תוצאות</p>`) {
		t.Errorf("missing empty title:\n%s", out)
	}
	if !strings.Contains(out, `<p class="empty-hint">שנה את הסינון</p>`) {
		t.Errorf("missing empty hint:\n%s", out)
	}
}

// ============================================================================
// Sort Link Tests
// ============================================================================

func TestSortURL_Cycle(t *testing.T) {
	base := "/view/my_auctions"

	tests := []struct {
		name      string
		direction string
		req       core.RenderRequest
		want      string
	}{
		{"unsorted goes ascending", "", core.RenderRequest{}, base + "?dir=asc&sort=title"},
		{"ascending goes descending", "asc", core.RenderRequest{}, base + "?dir=desc&sort=title"},
		{"descending returns to grouped", "desc", core.RenderRequest{}, base},
		{
			"filter kept",
			"desc",
			core.RenderRequest{FilterSet: true, Statuses: []string{"active", "sold"}},
			base + "?status=active%2Csold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := core.ColumnView{Key: "title", Sortable: true, Direction: tt.direction}
			if got := sortURL(base, col, tt.req); got != tt.want {
				t.Errorf("sortURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSortArrow(t *testing.T) {
	tests := map[string]string{"asc": " ▲", "desc": " ▼", "": ""}
	for dir, want := range tests {
		if got := sortArrow(dir); got != want {
			t.Errorf("sortArrow(%q) = %q, want %q", dir, got, want)
		}
	}
}

// ============================================================================
// Alert Tests
// ============================================================================

func TestErrorAlert(t *testing.T) {
	out := render(t, ErrorAlert("Session <expired>", "Open the view again", "VIEW002"))

	for _, want := range []string{
		`role="alert"`,
		"Session &lt;expired&gt;",
		`<p class="alert-action">Open the view again</p>`,
		`<p class="alert-code">VIEW002</p>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestErrorAlert_NoAction(t *testing.T) {
	out := render(t, ErrorAlert("Oops", "", "ERR000"))
	if strings.Contains(out, "alert-action") {
		t.Errorf("empty action rendered:\n%s", out)
	}
}
