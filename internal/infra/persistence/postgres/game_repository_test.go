package postgres

import (
	"context"
	"database/sql/driver"
	"testing"

	"gamehub/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameRepository_FindByIDForUpdate(t *testing.T) {
	db, conn := newScriptedDB(t,
		scriptedRows{
			columns: []string{"id", "publisher_id", "name", "version"},
			values:  [][]driver.Value{{int64(7), int64(3), "Hades", "1.0.0"}},
		},
		scriptedRows{columns: []string{"id"}},
	)
	repo := NewGameRepository(db)
	ctx := context.Background()

	game, err := repo.FindByIDForUpdate(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", game.Version)
	assert.Equal(t, int64(3), game.PublisherID)

	_, err = repo.FindByIDForUpdate(ctx, 8)
	assert.ErrorIs(t, err, repository.ErrGameNotFound)

	sent := conn.sent()
	require.Len(t, sent, 2)
	// the version bump that follows must see the row no concurrent handler can change
	assert.Contains(t, sent[0], `FROM "games" WHERE id = $1`)
	assert.Contains(t, sent[0], "FOR UPDATE")
}

func TestGameRepository_FindByIDDoesNotLock(t *testing.T) {
	db, conn := newScriptedDB(t, scriptedRows{
		columns: []string{"id", "version"},
		values:  [][]driver.Value{{int64(7), "1.0.0"}},
	})

	_, err := NewGameRepository(db).FindByID(context.Background(), 7)
	require.NoError(t, err)

	sent := conn.sent()
	require.Len(t, sent, 1)
	assert.NotContains(t, sent[0], "FOR UPDATE")
}
