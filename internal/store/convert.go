package store

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/JonMunkholm/auctionboard/internal/auction"
)

// NumericToFloat converts a nullable numeric column into a *float64.
// NULL, NaN and infinite values become nil.
func NumericToFloat(n pgtype.Numeric) *float64 {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite {
		return nil
	}
	f, err := n.Float64Value()
	if err != nil || !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

// TimestamptzToTime converts a nullable timestamp; NULL becomes the zero time.
func TimestamptzToTime(ts pgtype.Timestamptz) time.Time {
	if !ts.Valid {
		return time.Time{}
	}
	return ts.Time
}

// ToUserAuction converts a query row into the view row type. Statuses the
// view does not know are kept verbatim.
func ToUserAuction(r UserAuctionRow) auction.UserAuction {
	status, err := auction.ParseAuctionStatus(r.Status)
	if err != nil {
		status = auction.AuctionStatus(r.Status)
	}
	return auction.UserAuction{
		ID:           r.ID,
		Title:        r.Title,
		CurrentPrice: NumericToFloat(r.CurrentPrice),
		Status:       status,
		BidsCount:    int(r.BidsCount),
		EndDate:      TimestamptzToTime(r.EndDate),
	}
}

// ToBidSummary converts a query row into the view row type.
func ToBidSummary(r UserBidSummaryRow) auction.BidSummary {
	phase := auction.PhaseEnded
	if r.Status == string(auction.PhaseActive) {
		phase = auction.PhaseActive
	}
	return auction.BidSummary{
		AuctionID:    r.AuctionID,
		AuctionTitle: r.AuctionTitle,
		CurrentPrice: NumericToFloat(r.CurrentPrice),
		YourMax:      NumericToFloat(r.YourMax),
		EndDate:      TimestamptzToTime(r.EndDate),
		Leading:      r.Leading,
		Phase:        phase,
	}
}
