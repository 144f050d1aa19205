package postgres

import (
	"testing"
	"time"

	"gamehub/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB renders statements without a server.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=localhost user=gamehub dbname=gamehub sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	return db
}

func TestPendingQuery(t *testing.T) {
	db := newDryRunDB(t)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var rows []*model.OutboxMessageModel

		return pendingQuery(tx, now, 10).Find(&rows)
	})

	assert.Contains(t, sql, `FROM "outbox_messages"`)
	assert.Contains(t, sql, "status = 'pending' AND next_attempt_at <=")
	// an older pending row of the same key holds the row back, even when it is not due
	assert.Contains(t, sql, "NOT EXISTS (SELECT 1 FROM outbox_messages AS earlier")
	assert.Contains(t, sql, "earlier.message_key = outbox_messages.message_key")
	assert.Contains(t, sql, "earlier.status = 'pending' AND earlier.id < outbox_messages.id")
	assert.NotContains(t, sql, "earlier.next_attempt_at")
	assert.Contains(t, sql, "ORDER BY id LIMIT 10 FOR UPDATE SKIP LOCKED")
}
