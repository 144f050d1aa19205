package impl

import (
	"testing"

	"gamehub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestRenderPlayerPage(t *testing.T) {
	player := &entity.Player{
		ID:               42,
		Pseudo:           "neo",
		FirstName:        "Thomas",
		LastName:         "Anderson",
		RegistrationDate: fixedNow,
		WishedGames:      []int64{7},
	}

	expected := "=================================\n" +
		"      PLAYERS DIRECTORY\n" +
		"=================================\n" +
		"\n" +
		"Player ID: 42\n" +
		"Name: Thomas Anderson\n" +
		"Pseudo: neo\n" +
		"Registration Date: 2026-03-14T09:30:00Z\n" +
		"Owned Games: 3\n" +
		"Total Playtime: 120 minutes\n" +
		"Wishlist: 1 games\n" +
		"---------------------------------\n"

	assert.Equal(t, expected, renderPlayerPage([]playerSummary{{player: player, ownedGames: 3, totalPlayTime: 120}}))
	assert.Equal(t, "No players registered with this distributor.", renderPlayerPage(nil))
}

func TestRenderGamesPage(t *testing.T) {
	sale := 0.5
	distributor := &entity.Distributor{ID: 1, Name: "Steam"}
	games := []*entity.DistributedGame{
		{GameID: 7, GameName: "Hades", Version: "1.0.1", Price: 20, Sale: &sale},
	}

	page := renderGamesPage(distributor, "WINDOWS", games)
	assert.Contains(t, page, "   AVAILABLE GAMES - WINDOWS\n   Distributor: Steam\n")
	assert.Contains(t, page, "Price: $20.00\n")
	assert.Contains(t, page, "SALE! 50% OFF - Now: $10.00\n")

	empty := renderGamesPage(distributor, "WINDOWS", nil)
	assert.Contains(t, empty, "No games available for this platform.")
}

func TestRenderReviewsPage(t *testing.T) {
	distributor := &entity.Distributor{ID: 1, Name: "Steam"}
	game := &entity.DistributedGame{GameID: 7, GameName: "Hades"}
	reviews := []*entity.Review{
		{ID: 1, Rating: 9, Comment: "great", PublicationDate: fixedNow, PositiveReactions: []int64{2, 3}},
		{ID: 2, Rating: 6, Comment: "ok", PublicationDate: fixedNow, NegativeReactions: []int64{4}},
	}

	page := renderReviewsPage(distributor, game, reviews)
	assert.Contains(t, page, "   Game: Hades\n")
	assert.Contains(t, page, "Total Reviews: 2\n")
	assert.Contains(t, page, "Average Rating: 7.5/10\n")
	assert.Contains(t, page, "Reactions: 👍 2 | 👎 0\n")
	assert.Contains(t, page, "Reactions: 👍 0 | 👎 1\n")

	assert.Contains(t, renderReviewsPage(distributor, game, nil), "No reviews yet for this game.")
}
