package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/JonMunkholm/auctionboard/internal/auction"
	"github.com/JonMunkholm/auctionboard/internal/smarttable"
)

// fileSource reads a view's rows from a JSON array. The user id is ignored.
type fileSource struct {
	path string
	now  smarttable.Clock
}

func (f *fileSource) UserAuctions(ctx context.Context, _ int64) ([]auction.UserAuction, error) {
	var rows []auction.UserAuction
	if err := f.decode(&rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// UserBids fills in a missing auction phase from the end date.
func (f *fileSource) UserBids(ctx context.Context, _ int64) ([]auction.BidSummary, error) {
	var rows []auction.BidSummary
	if err := f.decode(&rows); err != nil {
		return nil, err
	}
	now := f.now()
	for i := range rows {
		if rows[i].Phase == "" {
			rows[i].Phase = auction.PhaseAt(rows[i].EndDate, now)
		}
	}
	return rows, nil
}

func (f *fileSource) decode(v any) error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", f.path, err)
	}
	return nil
}
