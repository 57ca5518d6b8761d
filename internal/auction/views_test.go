package auction

import (
	"slices"
	"testing"
	"time"

	"github.com/JonMunkholm/auctionboard/internal/smarttable"
)

var viewNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testOptions() ViewOptions {
	return ViewOptions{Now: func() time.Time { return viewNow }}
}

func sampleAuctions() []UserAuction {
	return []UserAuction{
		{ID: 1, Title: "מצלמה", CurrentPrice: ptr(800), Status: StatusSold, BidsCount: 4, EndDate: viewNow.Add(-2 * time.Hour)},
		{ID: 2, Title: "אופניים", CurrentPrice: ptr(1580), Status: StatusActive, BidsCount: 2, EndDate: viewNow.Add(5 * time.Hour)},
		{ID: 3, Title: "ספה", CurrentPrice: nil, Status: StatusUnsold, BidsCount: 0, EndDate: viewNow.Add(-time.Hour)},
		{ID: 4, Title: "גיטרה", CurrentPrice: ptr(300), Status: StatusActive, BidsCount: 9, EndDate: viewNow.Add(30 * time.Minute)},
		{ID: 5, Title: "בובה", CurrentPrice: ptr(50), Status: StatusSold, BidsCount: 1, EndDate: viewNow.Add(-24 * time.Hour)},
	}
}

func sampleBids() []BidSummary {
	return []BidSummary{
		{AuctionID: 10, AuctionTitle: "שעון", CurrentPrice: ptr(500), YourMax: ptr(450), EndDate: viewNow.Add(-3 * time.Hour), Leading: true, Phase: PhaseEnded},
		{AuctionID: 11, AuctionTitle: "מנורה", CurrentPrice: ptr(120), YourMax: ptr(200), EndDate: viewNow.Add(2 * time.Hour), Leading: true, Phase: PhaseActive},
		{AuctionID: 12, AuctionTitle: "כיסא", CurrentPrice: ptr(90), YourMax: ptr(80), EndDate: viewNow.Add(48 * time.Hour), Leading: false, Phase: PhaseActive},
		{AuctionID: 13, AuctionTitle: "אגרטל", CurrentPrice: ptr(60), YourMax: ptr(40), EndDate: viewNow.Add(-time.Hour), Leading: false, Phase: PhaseEnded},
	}
}

func auctionTitles(rows []UserAuction) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Title
	}
	return out
}

func bidTitles(rows []BidSummary) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.AuctionTitle
	}
	return out
}

func newAuctionsTable(t *testing.T) *smarttable.Table[UserAuction] {
	t.Helper()
	table, err := smarttable.NewTable(MyAuctionsConfig(testOptions()))
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	table.SetRows(sampleAuctions())
	return table
}

func newBidsTable(t *testing.T) *smarttable.Table[BidSummary] {
	t.Helper()
	table, err := smarttable.NewTable(MyBidsConfig(testOptions()))
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	table.SetRows(sampleBids())
	return table
}

// ============================================================================
// My Auctions Tests
// ============================================================================

func TestMyAuctions_Grouped(t *testing.T) {
	table := newAuctionsTable(t)

	// active by time left, sold most recently ended first, then unsold
	want := []string{"גיטרה", "אופניים", "מצלמה", "בובה", "ספה"}
	if got := auctionTitles(table.Rows()); !slices.Equal(got, want) {
		t.Errorf("Rows() = %v, want %v", got, want)
	}
}

func TestMyAuctions_ColumnSorts(t *testing.T) {
	tests := []struct {
		column string
		dir    smarttable.Direction
		want   []string
	}{
		{ColCurrentPrice, smarttable.Asc, []string{"גיטרה", "אופניים", "ספה", "בובה", "מצלמה"}},
		{ColCurrentPrice, smarttable.Desc, []string{"אופניים", "גיטרה", "מצלמה", "בובה", "ספה"}},
		{ColBidsCount, smarttable.Desc, []string{"גיטרה", "אופניים", "מצלמה", "בובה", "ספה"}},
		{ColTitle, smarttable.Asc, []string{"אופניים", "גיטרה", "בובה", "מצלמה", "ספה"}},
		{ColTitle, smarttable.Desc, []string{"גיטרה", "אופניים", "ספה", "מצלמה", "בובה"}},
		{ColTimeRemaining, smarttable.Asc, []string{"גיטרה", "אופניים", "ספה", "מצלמה", "בובה"}},
		{ColTimeRemaining, smarttable.Desc, []string{"אופניים", "גיטרה", "ספה", "מצלמה", "בובה"}},
	}

	for _, tt := range tests {
		t.Run(tt.column+" "+string(tt.dir), func(t *testing.T) {
			table := newAuctionsTable(t)
			if err := table.SetSort(tt.column, tt.dir); err != nil {
				t.Fatalf("SetSort failed: %v", err)
			}
			if got := auctionTitles(table.Rows()); !slices.Equal(got, tt.want) {
				t.Errorf("Rows() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMyAuctions_StatusNotSortable(t *testing.T) {
	table := newAuctionsTable(t)
	if err := table.SetSort(ColAuctionStatus, smarttable.Asc); err == nil {
		t.Error("expected status column to reject sorting")
	}
}

func TestMyAuctions_Filter(t *testing.T) {
	table := newAuctionsTable(t)
	table.SetAllowedFilterValues(string(StatusSold))

	want := []string{"מצלמה", "בובה"}
	if got := auctionTitles(table.Rows()); !slices.Equal(got, want) {
		t.Errorf("Rows() = %v, want %v", got, want)
	}
}

func TestMyAuctions_Display(t *testing.T) {
	cfg := MyAuctionsConfig(testOptions())
	row := sampleAuctions()[3]

	cells := map[string]smarttable.Cell{}
	for _, col := range cfg.Columns {
		cells[col.Key] = col.Display(row).(smarttable.Cell)
	}

	if cells[ColTitle].Href != "/auction/4" {
		t.Errorf("unexpected title link %q", cells[ColTitle].Href)
	}
	if cells[ColCurrentPrice].Text != "300 ₪" {
		t.Errorf("unexpected price %q", cells[ColCurrentPrice].Text)
	}
	if cells[ColTimeRemaining].Text != "30 דקות" || cells[ColTimeRemaining].Tone != ToneUrgent {
		t.Errorf("unexpected countdown %+v", cells[ColTimeRemaining])
	}
	if cells[ColAuctionStatus].Text != "פעיל" {
		t.Errorf("unexpected status %q", cells[ColAuctionStatus].Text)
	}

	ended := cfg.Columns[3].Display(sampleAuctions()[0]).(smarttable.Cell)
	if ended.Text != Ended || ended.Tone != "" {
		t.Errorf("ended countdown = %+v", ended)
	}
}

// ============================================================================
// My Bids Tests
// ============================================================================

func TestMyBids_Grouped(t *testing.T) {
	table := newBidsTable(t)

	want := []string{"מנורה", "כיסא", "אגרטל", "שעון"}
	if got := bidTitles(table.Rows()); !slices.Equal(got, want) {
		t.Errorf("Rows() = %v, want %v", got, want)
	}
}

func TestMyBids_YourMaxDescKeepsActiveFirst(t *testing.T) {
	table := newBidsTable(t)
	if err := table.SetSort(ColYourMax, smarttable.Desc); err != nil {
		t.Fatalf("SetSort failed: %v", err)
	}

	want := []string{"מנורה", "כיסא", "שעון", "אגרטל"}
	if got := bidTitles(table.Rows()); !slices.Equal(got, want) {
		t.Errorf("Rows() = %v, want %v", got, want)
	}
}

func TestMyBids_FilterByDerivedStatus(t *testing.T) {
	table := newBidsTable(t)
	table.SetAllowedFilterValues(string(BidWon), string(BidOutbidLow))

	want := []string{"כיסא", "שעון"}
	if got := bidTitles(table.Rows()); !slices.Equal(got, want) {
		t.Errorf("Rows() = %v, want %v", got, want)
	}
}

func TestMyBids_ActionCell(t *testing.T) {
	cfg := MyBidsConfig(testOptions())
	var action smarttable.Column[BidSummary]
	for _, col := range cfg.Columns {
		if col.Key == ColAction {
			action = col
		}
	}

	active := action.Display(sampleBids()[1]).(smarttable.Cell)
	if active.Href != "/auction/11" {
		t.Errorf("active action link = %q", active.Href)
	}
	ended := action.Display(sampleBids()[0]).(smarttable.Cell)
	if ended.Href != "/" {
		t.Errorf("ended action link = %q", ended.Href)
	}
	if action.IsSortable() {
		t.Error("action column should not be sortable")
	}
}
