package postgres

import (
	"context"
	"database/sql/driver"
	"testing"

	"gamehub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistributedGameRepository_CreateIfAbsent(t *testing.T) {
	db, conn := newScriptedDB(t,
		scriptedRows{columns: []string{"id"}, values: [][]driver.Value{{int64(5)}}},
		scriptedRows{columns: []string{"id"}},
	)
	repo := NewDistributedGameRepository(db)
	ctx := context.Background()

	listing := &entity.DistributedGame{DistributorID: 1, GameID: 7, GameName: "Hades", Version: "1.0.0", Price: 5}
	inserted, err := repo.CreateIfAbsent(ctx, listing)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, int64(5), listing.ID)

	again := &entity.DistributedGame{DistributorID: 1, GameID: 7, GameName: "Hades", Version: "1.0.0", Price: 5}
	inserted, err = repo.CreateIfAbsent(ctx, again)
	require.NoError(t, err)
	assert.False(t, inserted)

	sent := conn.sent()
	require.Len(t, sent, 2)
	assert.Contains(t, sent[1], `INSERT INTO "distributed_games"`)
	assert.Contains(t, sent[1], `ON CONFLICT ("distributor_id","game_id") DO NOTHING`)
}
