package auction

import (
	"fmt"
	"time"

	"github.com/JonMunkholm/auctionboard/internal/smarttable"
)

// View keys.
const (
	MyAuctionsView = "my_auctions"
	MyBidsView     = "my_bids"
)

// Column keys shared by both views.
const (
	ColTitle         = "title"
	ColCurrentPrice  = "currentPrice"
	ColTimeRemaining = "timeRemaining"
	ColBidsCount     = "bidsCount"
	ColAuctionStatus = "auctionStatus"
	ColYourMax       = "yourMax"
	ColBidStatus     = "bidStatus"
	ColAction        = "action"
)

// Cell tones.
const (
	ToneUrgent = "urgent"
)

// ViewOptions carries the locale and clock a view is built with.
type ViewOptions struct {
	Collation *smarttable.Collation
	Now       smarttable.Clock
}

func (o ViewOptions) withDefaults() ViewOptions {
	if o.Collation == nil {
		o.Collation = smarttable.DefaultCollation
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// ============================================================================
// My auctions
// ============================================================================

// AuctionStatusOptions are the filter options of the my auctions view.
var AuctionStatusOptions = []smarttable.FilterOption{
	{Label: "פעיל", Value: string(StatusActive)},
	{Label: "הסתיים בהצלחה", Value: string(StatusSold)},
	{Label: "הסתיים ללא זכייה", Value: string(StatusUnsold)},
}

// MyAuctionsConfig builds the table configuration for a seller's auctions.
func MyAuctionsConfig(opts ViewOptions) smarttable.Config[UserAuction] {
	opts = opts.withDefaults()
	now := opts.Now

	endOf := func(a UserAuction) time.Time { return a.EndDate }
	isActive := UserAuction.Active
	byTitle := smarttable.CollatedComparator(opts.Collation, func(a UserAuction) string { return a.Title })
	byPrice := smarttable.NumericComparator(func(a UserAuction) any { return a.CurrentPrice })
	byBids := smarttable.NumericComparator(func(a UserAuction) any { return a.BidsCount })

	columns := []smarttable.Column[UserAuction]{
		{
			Key:    ColTitle,
			Header: "שם המוצר",
			Display: func(a UserAuction) any {
				return smarttable.Cell{Text: a.Title, Href: auctionLink(a.ID)}
			},
			Order:    smarttable.ByOverrideCompare(titleSort(isActive, byTitle), byTitle),
			Sortable: true,
		},
		{
			Key:    ColCurrentPrice,
			Header: "מחיר נוכחי",
			Display: func(a UserAuction) any {
				return smarttable.TextCell(FormatCurrency(a.CurrentPrice))
			},
			Order:    smarttable.ByOverride(smarttable.GroupedSort(isActive, byPrice, byTitle)),
			Sortable: true,
		},
		{
			Key:    ColBidsCount,
			Header: "מספר הצעות",
			Display: func(a UserAuction) any {
				return smarttable.TextCell(fmt.Sprint(a.BidsCount))
			},
			Order:    smarttable.ByOverride(smarttable.GroupedSort(isActive, byBids, byTitle)),
			Sortable: true,
		},
		{
			Key:    ColTimeRemaining,
			Header: "זמן שנותר",
			Display: func(a UserAuction) any {
				return countdownCell(a.EndDate, a.Active(), now())
			},
			Order:    smarttable.ByOverride(timeRemainingSort(isActive, endOf, byTitle, now)),
			Sortable: true,
		},
		{
			Key:    ColAuctionStatus,
			Header: "סטטוס מכרז",
			Display: func(a UserAuction) any {
				return smarttable.Cell{Text: a.Status.Label(), Tone: string(a.Status)}
			},
		},
	}

	remaining := smarttable.RemainingComparator(endOf, now)
	grouped := smarttable.Chain(
		func(a, b UserAuction) int { return a.Status.priority() - b.Status.priority() },
		func(a, b UserAuction) int {
			if a.Active() && b.Active() {
				return remaining(a, b)
			}
			return b.EndDate.Compare(a.EndDate)
		},
		byTitle,
	)

	return smarttable.Config[UserAuction]{
		Columns:       columns,
		FilterOptions: AuctionStatusOptions,
		StatusOf:      UserAuction.FilterTag,
		Grouped:       grouped,
		TitleKey:      ColTitle,
	}
}

// ============================================================================
// My bids
// ============================================================================

// BidStatusOptions are the filter options of the my bids view.
var BidStatusOptions = []smarttable.FilterOption{
	{Label: "הוצע סכום נמוך מידי", Value: string(BidOutbidLow)},
	{Label: "מוביל", Value: string(BidLeading)},
	{Label: "הפסדת", Value: string(BidLost)},
	{Label: "זכית", Value: string(BidWon)},
}

// MyBidsConfig builds the table configuration for a bidder's bid summaries.
func MyBidsConfig(opts ViewOptions) smarttable.Config[BidSummary] {
	opts = opts.withDefaults()
	now := opts.Now

	endOf := func(b BidSummary) time.Time { return b.EndDate }
	isActive := BidSummary.Active
	byTitle := smarttable.CollatedComparator(opts.Collation, func(b BidSummary) string { return b.AuctionTitle })
	byPrice := smarttable.NumericComparator(func(b BidSummary) any { return b.CurrentPrice })
	byMax := smarttable.NumericComparator(func(b BidSummary) any { return b.YourMax })

	columns := []smarttable.Column[BidSummary]{
		{
			Key:    ColTitle,
			Header: "מכרז",
			Display: func(b BidSummary) any {
				return smarttable.Cell{Text: b.AuctionTitle, Href: auctionLink(b.AuctionID)}
			},
			Order:    smarttable.ByOverrideCompare(titleSort(isActive, byTitle), byTitle),
			Sortable: true,
		},
		{
			Key:    ColCurrentPrice,
			Header: "מחיר נוכחי",
			Display: func(b BidSummary) any {
				return smarttable.TextCell(FormatCurrency(b.CurrentPrice))
			},
			Order:    smarttable.ByOverride(smarttable.GroupedSort(isActive, byPrice, byTitle)),
			Sortable: true,
		},
		{
			Key:    ColYourMax,
			Header: "הסכום המרבי שלך",
			Display: func(b BidSummary) any {
				return smarttable.TextCell(FormatCurrency(b.YourMax))
			},
			Order:    smarttable.ByOverride(smarttable.GroupedSort(isActive, byMax, byTitle)),
			Sortable: true,
		},
		{
			Key:    ColTimeRemaining,
			Header: "זמן שנותר",
			Display: func(b BidSummary) any {
				return countdownCell(b.EndDate, b.Active(), now())
			},
			Order:    smarttable.ByOverride(timeRemainingSort(isActive, endOf, byTitle, now)),
			Sortable: true,
		},
		{
			Key:    ColBidStatus,
			Header: "סטטוס הצעה",
			Display: func(b BidSummary) any {
				status := b.Status()
				return smarttable.Cell{Text: status.Label(), Tone: string(status)}
			},
		},
		{
			Key:    ColAction,
			Header: "פעולה",
			Display: func(b BidSummary) any {
				if b.Active() {
					return smarttable.Cell{Text: "פתח פרטי המכרז", Href: auctionLink(b.AuctionID)}
				}
				return smarttable.Cell{Text: "לדף הבית", Href: "/"}
			},
		},
	}

	return smarttable.Config[BidSummary]{
		Columns:       columns,
		FilterOptions: BidStatusOptions,
		StatusOf:      func(b BidSummary) string { return string(b.Status()) },
		Grouped:       smarttable.Chain(smarttable.TimeRemainingComparator(endOf, isActive, now), byTitle),
		TitleKey:      ColTitle,
	}
}

// ============================================================================
// Shared column behavior
// ============================================================================

// titleSort partitions by phase and orders each bucket by title in the
// requested direction.
func titleSort[T any](active func(T) bool, byTitle smarttable.Comparator[T]) smarttable.OverrideFunc[T] {
	return smarttable.Partition[T]{
		Active:      active,
		ActiveOrder: byTitle,
		EndedOrder:  byTitle,
	}.Sort
}

// timeRemainingSort orders live rows by countdown in the requested direction
// and always lists ended rows most recently ended first.
func timeRemainingSort[T any](active func(T) bool, end func(T) time.Time, byTitle smarttable.Comparator[T], now smarttable.Clock) smarttable.OverrideFunc[T] {
	return smarttable.Partition[T]{
		Active:      active,
		ActiveOrder: smarttable.RemainingComparator(end, now),
		EndedOrder:  smarttable.Reverse(smarttable.TimeComparator(end)),
		FixedEnded:  true,
		Title:       byTitle,
	}.Sort
}

func countdownCell(end time.Time, active bool, now time.Time) smarttable.Cell {
	if !active {
		return smarttable.TextCell(Ended)
	}
	cell := smarttable.TextCell(FormatTimeRemaining(end, now))
	if IsUrgent(end, now) {
		cell.Tone = ToneUrgent
	}
	return cell
}

func auctionLink(id int64) string {
	return fmt.Sprintf("/auction/%d", id)
}
