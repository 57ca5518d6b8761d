package core

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/JonMunkholm/auctionboard/internal/auction"
	"github.com/JonMunkholm/auctionboard/internal/smarttable"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

const plainView = "plain"

func ptr(v float64) *float64 { return &v }

// testClock is a settable clock shared by sessions and comparators.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: testNow}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fakeSource serves rows per user from memory.
type fakeSource struct {
	mu       sync.Mutex
	auctions map[int64][]auction.UserAuction
	bids     map[int64][]auction.BidSummary
	err      error
	loads    int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		auctions: map[int64][]auction.UserAuction{1: sampleAuctions()},
		bids:     map[int64][]auction.BidSummary{1: sampleBids()},
	}
}

func (f *fakeSource) UserAuctions(ctx context.Context, userID int64) ([]auction.UserAuction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.err != nil {
		return nil, f.err
	}
	return f.auctions[userID], nil
}

func (f *fakeSource) UserBids(ctx context.Context, userID int64) ([]auction.BidSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.err != nil {
		return nil, f.err
	}
	return f.bids[userID], nil
}

func (f *fakeSource) setAuctions(userID int64, rows []auction.UserAuction) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.auctions[userID] = rows
}

func sampleAuctions() []auction.UserAuction {
	return []auction.UserAuction{
		{ID: 1, Title: "מצלמה", CurrentPrice: ptr(800), Status: auction.StatusSold, BidsCount: 4, EndDate: testNow.Add(-2 * time.Hour)},
		{ID: 2, Title: "אופניים", CurrentPrice: ptr(1580), Status: auction.StatusActive, BidsCount: 2, EndDate: testNow.Add(5 * time.Hour)},
		{ID: 3, Title: "ספה", CurrentPrice: nil, Status: auction.StatusUnsold, BidsCount: 0, EndDate: testNow.Add(-time.Hour)},
		{ID: 4, Title: "גיטרה", CurrentPrice: ptr(300), Status: auction.StatusActive, BidsCount: 9, EndDate: testNow.Add(30 * time.Minute)},
		{ID: 5, Title: "בובה", CurrentPrice: ptr(50), Status: auction.StatusSold, BidsCount: 1, EndDate: testNow.Add(-24 * time.Hour)},
	}
}

func sampleBids() []auction.BidSummary {
	return []auction.BidSummary{
		{AuctionID: 10, AuctionTitle: "שעון", CurrentPrice: ptr(500), YourMax: ptr(450), EndDate: testNow.Add(-3 * time.Hour), Leading: true, Phase: auction.PhaseEnded},
		{AuctionID: 11, AuctionTitle: "מנורה", CurrentPrice: ptr(120), YourMax: ptr(200), EndDate: testNow.Add(2 * time.Hour), Leading: true, Phase: auction.PhaseActive},
		{AuctionID: 12, AuctionTitle: "כיסא", CurrentPrice: ptr(90), YourMax: ptr(80), EndDate: testNow.Add(48 * time.Hour), Leading: false, Phase: auction.PhaseActive},
		{AuctionID: 13, AuctionTitle: "אגרטל", CurrentPrice: ptr(60), YourMax: ptr(40), EndDate: testNow.Add(-time.Hour), Leading: false, Phase: auction.PhaseEnded},
	}
}

var testAuctionsInfo = ViewInfo{
	Key:          auction.MyAuctionsView,
	Label:        "המכרזים שלי",
	FilterColumn: auction.ColAuctionStatus,
	EmptyTitle:   "אין לך מכרזים פעילים כרגע",
	EmptyHint:    "כשתוסיף מוצרים למכרז, הם יופיעו כאן",
}

var testBidsInfo = ViewInfo{
	Key:          auction.MyBidsView,
	Label:        "ההצעות שלי",
	FilterColumn: auction.ColBidStatus,
}

var testPlainInfo = ViewInfo{Key: plainView, Label: "plain"}

// registerTestViews replaces the registry with the listing views and a
// title-only view without a status filter.
func registerTestViews(t *testing.T) {
	t.Helper()
	Clear()
	t.Cleanup(Clear)

	Register(ViewDefinition{
		Info: testAuctionsInfo,
		New: func(deps Deps) (Grid, error) {
			cfg := auction.MyAuctionsConfig(auction.ViewOptions{Collation: deps.Collation, Now: deps.Now})
			var load LoadFunc[auction.UserAuction]
			if deps.Source != nil {
				load = deps.Source.UserAuctions
			}
			return NewGrid(testAuctionsInfo, cfg, load, deps.Now)
		},
	})
	Register(ViewDefinition{
		Info: testBidsInfo,
		New: func(deps Deps) (Grid, error) {
			cfg := auction.MyBidsConfig(auction.ViewOptions{Collation: deps.Collation, Now: deps.Now})
			var load LoadFunc[auction.BidSummary]
			if deps.Source != nil {
				load = deps.Source.UserBids
			}
			return NewGrid(testBidsInfo, cfg, load, deps.Now)
		},
	})
	Register(ViewDefinition{
		Info: testPlainInfo,
		New: func(deps Deps) (Grid, error) {
			return NewGrid(testPlainInfo, plainConfig(), deps.Source.UserAuctions, deps.Now)
		},
	})
}

func plainConfig() smarttable.Config[auction.UserAuction] {
	return smarttable.Config[auction.UserAuction]{
		Columns: []smarttable.Column[auction.UserAuction]{
			{
				Key:      "title",
				Header:   "Title",
				Display:  func(a auction.UserAuction) any { return a.Title },
				Order:    smarttable.ByComparator(smarttable.TextComparator(func(a auction.UserAuction) string { return a.Title })),
				Sortable: true,
			},
		},
	}
}

// snapshotTitles returns the first cell of every row.
func snapshotTitles(s Snapshot) []string {
	out := make([]string, len(s.Rows))
	for i, r := range s.Rows {
		out[i] = r.Cells[0].Text
	}
	return out
}
