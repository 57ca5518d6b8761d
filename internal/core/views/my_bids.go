package views

import (
	"github.com/JonMunkholm/auctionboard/internal/auction"
	"github.com/JonMunkholm/auctionboard/internal/core"
)

func init() {
	registerMyBids()
}

var myBidsInfo = core.ViewInfo{
	Key:          auction.MyBidsView,
	Label:        "ההצעות שלי",
	FilterColumn: auction.ColBidStatus,
	EmptyTitle:   "אין לך הצעות פעילות כרגע",
	EmptyHint:    "כשתגיש הצעות למכרזים, הן יופיעו כאן",
}

func registerMyBids() {
	core.Register(core.ViewDefinition{
		Info: myBidsInfo,
		New: func(deps core.Deps) (core.Grid, error) {
			cfg := auction.MyBidsConfig(viewOptions(deps))

			var load core.LoadFunc[auction.BidSummary]
			if deps.Source != nil {
				load = deps.Source.UserBids
			}
			return core.NewGrid(myBidsInfo, cfg, load, deps.Now)
		},
	})
}
