package store

import (
	"context"
	"fmt"

	"github.com/JonMunkholm/auctionboard/internal/auction"
)

// Store loads view rows for a user.
type Store struct {
	q *Queries
}

// NewStore creates a Store over db, typically a *pgxpool.Pool.
func NewStore(db DBTX) *Store {
	return &Store{q: New(db)}
}

// UserAuctions returns the auctions listed by userID.
func (s *Store) UserAuctions(ctx context.Context, userID int64) ([]auction.UserAuction, error) {
	rows, err := s.q.UserAuctions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query user auctions: %w", err)
	}

	result := make([]auction.UserAuction, len(rows))
	for i, r := range rows {
		result[i] = ToUserAuction(r)
	}
	return result, nil
}

// UserBids returns a bid summary for every auction userID has bid on.
func (s *Store) UserBids(ctx context.Context, userID int64) ([]auction.BidSummary, error) {
	rows, err := s.q.UserBidSummaries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query user bids: %w", err)
	}

	result := make([]auction.BidSummary, len(rows))
	for i, r := range rows {
		result[i] = ToBidSummary(r)
	}
	return result, nil
}

// UserExists reports whether userID refers to a known user.
func (s *Store) UserExists(ctx context.Context, userID int64) (bool, error) {
	exists, err := s.q.UserExists(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("check user: %w", err)
	}
	return exists, nil
}
