// Package auction defines the listing rows shown to a signed-in user and
// the table views built over them: the auctions they sell and the auctions
// they have bid on.
package auction

import (
	"fmt"
	"strings"
	"time"
)

// AuctionStatus is the lifecycle state of a seller's auction.
type AuctionStatus string

const (
	StatusActive AuctionStatus = "active"
	StatusSold   AuctionStatus = "sold"
	StatusUnsold AuctionStatus = "unsold"
)

var auctionStatusLabels = map[AuctionStatus]string{
	StatusActive: "פעיל",
	StatusSold:   "הסתיים בהצלחה",
	StatusUnsold: "הסתיים ללא זכייה",
}

// Label returns the Hebrew display label.
func (s AuctionStatus) Label() string {
	if label, ok := auctionStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Valid reports whether s is a known status.
func (s AuctionStatus) Valid() bool {
	_, ok := auctionStatusLabels[s]
	return ok
}

// priority orders statuses for the grouped view: live auctions first, then
// sold, then unsold.
func (s AuctionStatus) priority() int {
	switch s {
	case StatusActive:
		return 1
	case StatusSold:
		return 2
	case StatusUnsold:
		return 3
	default:
		return 4
	}
}

// ParseAuctionStatus accepts either the status code or its Hebrew label.
func ParseAuctionStatus(s string) (AuctionStatus, error) {
	s = strings.TrimSpace(s)
	candidate := AuctionStatus(strings.ToLower(s))
	if candidate.Valid() {
		return candidate, nil
	}
	for status, label := range auctionStatusLabels {
		if label == s {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown auction status %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler so rows can be decoded
// from JSON using either codes or labels.
func (s *AuctionStatus) UnmarshalText(text []byte) error {
	status, err := ParseAuctionStatus(string(text))
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// UserAuction is one auction listed by the signed-in seller.
type UserAuction struct {
	ID           int64         `json:"id"`
	Title        string        `json:"title"`
	CurrentPrice *float64      `json:"currentPrice"`
	Status       AuctionStatus `json:"auctionStatus"`
	BidsCount    int           `json:"bidsCount"`
	EndDate      time.Time     `json:"endDate"`
}

// Active reports whether the auction is still open for bids.
func (a UserAuction) Active() bool {
	return a.Status == StatusActive
}

// FilterTag is the status tag used by the status filter. Unknown statuses
// are treated as active.
func (a UserAuction) FilterTag() string {
	if !a.Status.Valid() {
		return string(StatusActive)
	}
	return string(a.Status)
}

// BidPhase is whether the auction behind a bid is still running.
type BidPhase string

const (
	PhaseActive BidPhase = "active"
	PhaseEnded  BidPhase = "ended"
)

// BidStatus is the bidder's standing on one auction.
type BidStatus string

const (
	BidLeading   BidStatus = "leading"
	BidOutbidLow BidStatus = "outbid_low"
	BidWon       BidStatus = "won"
	BidLost      BidStatus = "lost"
)

var bidStatusLabels = map[BidStatus]string{
	BidLeading:   "מוביל",
	BidOutbidLow: "הוצע סכום נמוך מדי",
	BidWon:       "זכית",
	BidLost:      "הפסדת",
}

// Label returns the Hebrew status text shown in the bid status column.
func (s BidStatus) Label() string {
	if label, ok := bidStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// BidSummary aggregates a bidder's bids on one auction.
type BidSummary struct {
	AuctionID    int64     `json:"auctionId"`
	AuctionTitle string    `json:"auctionTitle"`
	CurrentPrice *float64  `json:"currentPrice"`
	YourMax      *float64  `json:"yourMax"`
	EndDate      time.Time `json:"endDate"`
	Leading      bool      `json:"leading"`
	Phase        BidPhase  `json:"status"`
}

// Active reports whether the auction is still running.
func (b BidSummary) Active() bool {
	return b.Phase == PhaseActive
}

// Status derives the bidder's standing from the auction phase and whether
// they hold the highest bid.
func (b BidSummary) Status() BidStatus {
	switch {
	case b.Active() && b.Leading:
		return BidLeading
	case b.Active():
		return BidOutbidLow
	case b.Leading:
		return BidWon
	default:
		return BidLost
	}
}
