// Package core serves the listing table views.
//
// This package holds the service logic independent of any transport. It can
// be used by web handlers, the CLI, or tests without modification.
//
// # View Registry
//
// Views are registered at init time using [Register]. Each [ViewDefinition]
// builds a [Grid]: a table configuration bound to a row loader.
//
//	core.Register(core.ViewDefinition{
//	    Info: core.ViewInfo{Key: "my_bids", Label: "ההצעות שלי", FilterColumn: "bidStatus"},
//	    New: func(deps core.Deps) (core.Grid, error) {
//	        cfg := auction.MyBidsConfig(auction.ViewOptions{Collation: deps.Collation, Now: deps.Now})
//	        return core.NewGrid(info, cfg, deps.Source.UserBids, deps.Now)
//	    },
//	})
//
// Import internal/core/views to register the built-in views.
//
// # Sessions
//
// [Service.OpenView] loads the user's rows and stores the grid in a session
// keyed by UUID. Later requests change its sort or filter state, or reload the
// rows wholesale with [Service.RefreshSession]; every call returns a freshly
// computed [Snapshot]. Sessions expire after an idle TTL and are removed by
// [Service.StartSessionSweeper]. [Service.RenderView] renders once without a
// session.
//
// # Error Handling
//
// Technical errors are mapped to user-friendly messages using [MapError].
// Each category has a code prefix: DB, VIEW, SORT and REQ, with ERR000 as the
// fallback.
package core
