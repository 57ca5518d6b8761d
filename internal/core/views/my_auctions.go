package views

import (
	"github.com/JonMunkholm/auctionboard/internal/auction"
	"github.com/JonMunkholm/auctionboard/internal/core"
)

func init() {
	registerMyAuctions()
}

var myAuctionsInfo = core.ViewInfo{
	Key:          auction.MyAuctionsView,
	Label:        "המכרזים שלי",
	FilterColumn: auction.ColAuctionStatus,
	EmptyTitle:   "אין לך מכרזים פעילים כרגע",
	EmptyHint:    "כשתוסיף מוצרים למכרז, הם יופיעו כאן",
}

func registerMyAuctions() {
	core.Register(core.ViewDefinition{
		Info: myAuctionsInfo,
		New: func(deps core.Deps) (core.Grid, error) {
			cfg := auction.MyAuctionsConfig(viewOptions(deps))

			var load core.LoadFunc[auction.UserAuction]
			if deps.Source != nil {
				load = deps.Source.UserAuctions
			}
			return core.NewGrid(myAuctionsInfo, cfg, load, deps.Now)
		},
	})
}

func viewOptions(deps core.Deps) auction.ViewOptions {
	return auction.ViewOptions{Collation: deps.Collation, Now: deps.Now}
}
