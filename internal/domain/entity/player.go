package entity

import (
	"slices"
	"time"
)

// Player is registered with exactly one distributor.
type Player struct {
	ID               int64     `json:"id"`
	DistributorID    int64     `json:"distributor_id"`
	Pseudo           string    `json:"pseudo"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	BirthDate        time.Time `json:"birth_date"`
	RegistrationDate time.Time `json:"registration_date"`
	WishedGames      []int64   `json:"wished_games"` // ordered set of game ids
}

// AddWishedGame appends gameID unless it is already wished. It reports whether the list changed.
func (p *Player) AddWishedGame(gameID int64) bool {
	if slices.Contains(p.WishedGames, gameID) {
		return false
	}
	p.WishedGames = append(p.WishedGames, gameID)

	return true
}

// RemoveWishedGame removes gameID if present. It reports whether the list changed.
func (p *Player) RemoveWishedGame(gameID int64) bool {
	idx := slices.Index(p.WishedGames, gameID)
	if idx < 0 {
		return false
	}
	p.WishedGames = slices.Delete(p.WishedGames, idx, idx+1)

	return true
}

// OwnedGame records a purchase. (PlayerID, GameID) is unique.
type OwnedGame struct {
	ID           int64     `json:"id"`
	PlayerID     int64     `json:"player_id"`
	GameID       int64     `json:"game_id"`
	PurchaseDate time.Time `json:"purchase_date"`
	PlayTime     int       `json:"play_time"` // minutes
}

// AddPlayTime adds whole minutes from a millisecond duration; fractions are dropped.
func (o *OwnedGame) AddPlayTime(millis int64) int {
	minutes := int(millis / 60000)
	o.PlayTime += minutes

	return minutes
}
