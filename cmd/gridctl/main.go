// Command gridctl renders a listing table view from a JSON file of rows.
package main

import (
	"os"

	_ "github.com/JonMunkholm/auctionboard/internal/core/views" // Register all views
)

func main() {
	if err := New().Execute(); err != nil {
		os.Exit(1)
	}
}
