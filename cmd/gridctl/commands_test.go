package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

const auctionsJSON = `[
  {"id": 1, "title": "Alpha", "currentPrice": 100, "auctionStatus": "active", "bidsCount": 2, "endDate": "2026-03-02T12:00:00Z"},
  {"id": 2, "title": "Beta", "currentPrice": 300, "auctionStatus": "active", "bidsCount": 5, "endDate": "2026-03-05T12:00:00Z"},
  {"id": 3, "title": "Gamma", "currentPrice": 200, "auctionStatus": "sold", "bidsCount": 7, "endDate": "2026-02-20T12:00:00Z"}
]`

const bidsJSON = `[
  {"auctionId": 10, "auctionTitle": "Lamp", "currentPrice": 50, "yourMax": 60, "endDate": "2026-03-03T12:00:00Z", "leading": true},
  {"auctionId": 11, "auctionTitle": "Chair", "currentPrice": 80, "yourMax": 40, "endDate": "2026-02-01T12:00:00Z", "leading": false}
]`

const testNow = "2026-03-01T12:00:00Z"

func init() {
	color.NoColor = true
}

func writeRows(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rows.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write rows: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// assertOrder checks that each name appears in out after the previous one.
func assertOrder(t *testing.T, out string, names ...string) {
	t.Helper()
	last := -1
	for _, name := range names {
		idx := strings.Index(out, name)
		if idx < 0 {
			t.Fatalf("output missing %q:\n%s", name, out)
		}
		if idx < last {
			t.Fatalf("%q out of order:\n%s", name, out)
		}
		last = idx
	}
}

// =============================================================================
// render
// =============================================================================

func TestRender_GroupedOrder(t *testing.T) {
	path := writeRows(t, auctionsJSON)

	out, err := run(t, "render", "--view", "my_auctions", "--file", path, "--now", testNow)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	assertOrder(t, out, "Alpha", "Beta", "Gamma")
	if !strings.Contains(out, "3 of 3 rows") {
		t.Errorf("missing row count:\n%s", out)
	}
}

func TestRender_SortDescending(t *testing.T) {
	path := writeRows(t, auctionsJSON)

	out, err := run(t, "render", "--view", "my_auctions", "--file", path,
		"--sort", "currentPrice", "--dir", "desc", "--now", testNow)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	assertOrder(t, out, "Beta", "Alpha", "Gamma")
	if !strings.Contains(out, "▼") {
		t.Errorf("active sort header not marked:\n%s", out)
	}
}

func TestRender_StatusFilter(t *testing.T) {
	path := writeRows(t, auctionsJSON)

	out, err := run(t, "render", "--view", "my_auctions", "--file", path,
		"--status", "sold", "--now", testNow)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "Alpha") || strings.Contains(out, "Beta") {
		t.Errorf("active rows not filtered:\n%s", out)
	}
	if !strings.Contains(out, "Gamma") || !strings.Contains(out, "1 of 3 rows") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRender_Empty(t *testing.T) {
	path := writeRows(t, "[]")

	out, err := run(t, "render", "--view", "my_auctions", "--file", path, "--now", testNow)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "אין לך מכרזים פעילים כרגע") {
		t.Errorf("missing empty state:\n%s", out)
	}
	if !strings.Contains(out, "0 of 0 rows") {
		t.Errorf("missing row count:\n%s", out)
	}
}

func TestRender_BidsDerivePhase(t *testing.T) {
	path := writeRows(t, bidsJSON)

	out, err := run(t, "render", "--view", "my_bids", "--file", path, "--now", testNow)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	// Lamp is still running and leads; Chair ended last month.
	assertOrder(t, out, "Lamp", "Chair")
	if !strings.Contains(out, "מוביל") || !strings.Contains(out, "הפסדת") {
		t.Errorf("bid statuses not derived:\n%s", out)
	}
}

func TestRender_Errors(t *testing.T) {
	path := writeRows(t, auctionsJSON)

	tests := []struct {
		name string
		args []string
	}{
		{"missing flags", []string{"render"}},
		{"unknown view", []string{"render", "--view", "nope", "--file", path}},
		{"bad now", []string{"render", "--view", "my_auctions", "--file", path, "--now", "yesterday"}},
		{"bad direction", []string{"render", "--view", "my_auctions", "--file", path, "--sort", "title", "--dir", "up"}},
		{"unsortable column", []string{"render", "--view", "my_auctions", "--file", path, "--sort", "auctionStatus"}},
		{"missing file", []string{"render", "--view", "my_auctions", "--file", filepath.Join(t.TempDir(), "none.json")}},
		{"bad json", []string{"render", "--view", "my_auctions", "--file", writeRows(t, "{")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

// =============================================================================
// views
// =============================================================================

func TestViews(t *testing.T) {
	out, err := run(t, "views")
	if err != nil {
		t.Fatalf("views: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header and 2 views:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "VIEW") {
		t.Errorf("missing header row: %s", lines[0])
	}
	assertOrder(t, out, "my_auctions", "my_bids")
	if !strings.Contains(lines[1], "currentPrice*") || !strings.Contains(lines[1], "auctionStatus") {
		t.Errorf("unexpected columns: %s", lines[1])
	}
	if strings.Contains(lines[1], "auctionStatus*") {
		t.Errorf("status column marked sortable: %s", lines[1])
	}
}
