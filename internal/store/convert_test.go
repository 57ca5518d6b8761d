package store

import (
	"math/big"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/JonMunkholm/auctionboard/internal/auction"
)

func TestNumericToFloat(t *testing.T) {
	tests := []struct {
		name  string
		input pgtype.Numeric
		want  *float64
	}{
		{name: "null", input: pgtype.Numeric{}, want: nil},
		{name: "NaN", input: pgtype.Numeric{NaN: true, Valid: true}, want: nil},
		{name: "infinity", input: pgtype.Numeric{InfinityModifier: pgtype.Infinity, Valid: true}, want: nil},
		{name: "integer", input: pgtype.Numeric{Int: big.NewInt(1580), Valid: true}, want: f64(1580)},
		{name: "decimal", input: pgtype.Numeric{Int: big.NewInt(123456), Exp: -2, Valid: true}, want: f64(1234.56)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NumericToFloat(tt.input)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("expected nil, got %v", *got)
			case tt.want != nil && got == nil:
				t.Errorf("expected %v, got nil", *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Errorf("expected %v, got %v", *tt.want, *got)
			}
		})
	}
}

func TestTimestamptzToTime(t *testing.T) {
	end := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if got := TimestamptzToTime(pgtype.Timestamptz{Time: end, Valid: true}); !got.Equal(end) {
		t.Errorf("expected %v, got %v", end, got)
	}
	if got := TimestamptzToTime(pgtype.Timestamptz{}); !got.IsZero() {
		t.Errorf("expected zero time for NULL, got %v", got)
	}
}

func TestToUserAuction(t *testing.T) {
	end := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	row := UserAuctionRow{
		ID:           9,
		Title:        "מחשב נייד",
		CurrentPrice: pgtype.Numeric{Int: big.NewInt(2500), Valid: true},
		Status:       "הסתיים בהצלחה",
		BidsCount:    6,
		EndDate:      pgtype.Timestamptz{Time: end, Valid: true},
	}

	got := ToUserAuction(row)
	if got.ID != 9 || got.Title != "מחשב נייד" || got.BidsCount != 6 {
		t.Errorf("unexpected row %+v", got)
	}
	if got.Status != auction.StatusSold {
		t.Errorf("expected sold, got %q", got.Status)
	}
	if got.CurrentPrice == nil || *got.CurrentPrice != 2500 {
		t.Errorf("unexpected price %v", got.CurrentPrice)
	}

	row.Status = "archived"
	if got := ToUserAuction(row); got.Status != "archived" {
		t.Errorf("expected unknown status to pass through, got %q", got.Status)
	}
}

func TestToBidSummary(t *testing.T) {
	row := UserBidSummaryRow{
		AuctionID:    3,
		AuctionTitle: "שעון",
		YourMax:      pgtype.Numeric{Int: big.NewInt(450), Valid: true},
		Leading:      true,
		Status:       "active",
	}

	got := ToBidSummary(row)
	if got.Phase != auction.PhaseActive {
		t.Errorf("expected active phase, got %q", got.Phase)
	}
	if got.CurrentPrice != nil {
		t.Error("expected nil current price for NULL numeric")
	}
	if got.Status() != auction.BidLeading {
		t.Errorf("expected leading, got %q", got.Status())
	}

	row.Status = "ended"
	if got := ToBidSummary(row); got.Status() != auction.BidWon {
		t.Errorf("expected won, got %q", got.Status())
	}
}

func f64(v float64) *float64 { return &v }
