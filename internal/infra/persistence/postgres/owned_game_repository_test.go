package postgres

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"gamehub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnedGameRepository_CreateIfAbsent(t *testing.T) {
	db, conn := newScriptedDB(t,
		scriptedRows{columns: []string{"id"}, values: [][]driver.Value{{int64(11)}}},
		scriptedRows{columns: []string{"id"}},
	)
	repo := NewOwnedGameRepository(db)
	ctx := context.Background()
	bought := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	first := &entity.OwnedGame{PlayerID: 42, GameID: 7, PurchaseDate: bought}
	inserted, err := repo.CreateIfAbsent(ctx, first)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, int64(11), first.ID)

	// the replayed purchase hits the (player_id, game_id) key and leaves the row alone
	replay := &entity.OwnedGame{PlayerID: 42, GameID: 7, PurchaseDate: bought.Add(time.Hour)}
	inserted, err = repo.CreateIfAbsent(ctx, replay)
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.Zero(t, replay.ID)

	sent := conn.sent()
	require.Len(t, sent, 2)
	for _, query := range sent {
		assert.Contains(t, query, `INSERT INTO "owned_games"`)
		assert.Contains(t, query, `ON CONFLICT ("player_id","game_id") DO NOTHING`)
	}
}
