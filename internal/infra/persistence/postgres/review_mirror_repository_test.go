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

func TestReviewMirrorRepository_CreateIfAbsent(t *testing.T) {
	// one affected row, then none once the review id is already mirrored
	db, conn := newScriptedDB(t,
		scriptedRows{columns: []string{"id"}, values: [][]driver.Value{{int64(99)}}},
		scriptedRows{columns: []string{"id"}},
	)
	repo := NewReviewMirrorRepository(db)
	ctx := context.Background()

	review := &entity.ReviewMirror{ID: 99, GameID: 7, Rating: 2, PublicationDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
	inserted, err := repo.CreateIfAbsent(ctx, review)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.CreateIfAbsent(ctx, review)
	require.NoError(t, err)
	assert.False(t, inserted)

	sent := conn.sent()
	require.Len(t, sent, 2)
	assert.Contains(t, sent[0], `INSERT INTO "review_mirrors"`)
	assert.Contains(t, sent[0], `ON CONFLICT ("id") DO NOTHING`)
}
