package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const userAuctions = `-- name: UserAuctions :many
SELECT
    id,
    title,
    COALESCE(current_bid_amount, min_price) AS current_price,
    status::text AS status,
    COALESCE(bids_count, 0) AS bids_count,
    end_date
FROM public.auctions
WHERE seller_id = $1
ORDER BY created_at DESC
`

// UserAuctionRow is one row of the UserAuctions query.
type UserAuctionRow struct {
	ID           int64              `db:"id"`
	Title        string             `db:"title"`
	CurrentPrice pgtype.Numeric     `db:"current_price"`
	Status       string             `db:"status"`
	BidsCount    int32              `db:"bids_count"`
	EndDate      pgtype.Timestamptz `db:"end_date"`
}

// UserAuctions lists the auctions created by a seller, newest first.
func (q *Queries) UserAuctions(ctx context.Context, sellerID int64) ([]UserAuctionRow, error) {
	rows, err := q.db.Query(ctx, userAuctions, sellerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[UserAuctionRow])
}

const userBidSummaries = `-- name: UserBidSummaries :many
SELECT DISTINCT
    a.id AS auction_id,
    a.title AS auction_title,
    a.current_bid_amount AS current_price,
    MAX(b.max_bid) AS your_max,
    a.end_date,
    COALESCE(a.highest_user_id = $1, false) AS leading,
    CASE WHEN a.end_date > NOW() THEN 'active' ELSE 'ended' END AS status
FROM public.bids b
JOIN public.auctions a ON b.auction_id = a.id
WHERE b.bidder_id = $1
GROUP BY a.id, a.title, a.current_bid_amount, a.end_date, a.highest_user_id
ORDER BY a.end_date DESC
`

// UserBidSummaryRow is one row of the UserBidSummaries query.
type UserBidSummaryRow struct {
	AuctionID    int64              `db:"auction_id"`
	AuctionTitle string             `db:"auction_title"`
	CurrentPrice pgtype.Numeric     `db:"current_price"`
	YourMax      pgtype.Numeric     `db:"your_max"`
	EndDate      pgtype.Timestamptz `db:"end_date"`
	Leading      bool               `db:"leading"`
	Status       string             `db:"status"`
}

// UserBidSummaries lists every auction a bidder has bid on with their
// highest bid and whether they currently lead.
func (q *Queries) UserBidSummaries(ctx context.Context, bidderID int64) ([]UserBidSummaryRow, error) {
	rows, err := q.db.Query(ctx, userBidSummaries, bidderID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[UserBidSummaryRow])
}

const userExists = `-- name: UserExists :one
SELECT EXISTS (SELECT 1 FROM public.users WHERE id = $1)
`

// UserExists reports whether a user id is known.
func (q *Queries) UserExists(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, userExists, userID).Scan(&exists)
	return exists, err
}
