// Package entity contains the core business objects of the project.
package entity

import "strings"

// Distributor is a storefront that lists games and registers players.
type Distributor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DistributedGame is a distributor's listing of a publisher game.
// (DistributorID, GameID) is unique.
type DistributedGame struct {
	ID            int64    `json:"id"`
	DistributorID int64    `json:"distributor_id"`
	GameID        int64    `json:"game_id"` // publisher-side game id
	GameName      string   `json:"game_name"`
	Version       string   `json:"version"`
	Price         float64  `json:"price"`
	Sale          *float64 `json:"sale,omitempty"` // fraction in [0,1], nil when not on sale
	Platforms     []string `json:"platforms"`      // as announced by the publisher
}

// SalePrice returns the price after the current sale, or the list price.
func (g *DistributedGame) SalePrice() float64 {
	if g.Sale == nil {
		return g.Price
	}

	return g.Price * (1 - *g.Sale)
}

// AvailableOn reports whether the listing targets platform. Listings without
// platform information are offered everywhere.
func (g *DistributedGame) AvailableOn(platform string) bool {
	if len(g.Platforms) == 0 {
		return true
	}
	for _, p := range g.Platforms {
		if strings.EqualFold(p, platform) {
			return true
		}
	}

	return false
}
