package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_WishedGames(t *testing.T) {
	player := &Player{WishedGames: []int64{}}

	assert.True(t, player.AddWishedGame(7))
	assert.True(t, player.AddWishedGame(3))
	assert.False(t, player.AddWishedGame(7))
	assert.Equal(t, []int64{7, 3}, player.WishedGames)

	assert.False(t, player.RemoveWishedGame(42))
	assert.True(t, player.RemoveWishedGame(7))
	assert.Equal(t, []int64{3}, player.WishedGames)
}

func TestOwnedGame_AddPlayTime(t *testing.T) {
	owned := &OwnedGame{PlayTime: 10}

	assert.Equal(t, 0, owned.AddPlayTime(59_999))
	assert.Equal(t, 10, owned.PlayTime)

	assert.Equal(t, 2, owned.AddPlayTime(150_000))
	assert.Equal(t, 12, owned.PlayTime)
}

func TestDistributedGame_SalePrice(t *testing.T) {
	game := &DistributedGame{Price: 60}
	assert.InDelta(t, 60.0, game.SalePrice(), 0.0001)

	sale := 0.25
	game.Sale = &sale
	assert.InDelta(t, 45.0, game.SalePrice(), 0.0001)
}

func TestDistributedGame_AvailableOn(t *testing.T) {
	game := &DistributedGame{}
	assert.True(t, game.AvailableOn("PS4"))

	game.Platforms = []string{"WINDOWS", "PS4"}
	assert.True(t, game.AvailableOn("ps4"))
	assert.False(t, game.AvailableOn("WII"))
}
