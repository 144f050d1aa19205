package metrics

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gamehub/internal/domain/entity"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Counters(t *testing.T) {
	c := NewCollector()

	c.RecordConsumed("distributorServicePurchaseGameConsumer", OutcomeHandled, 20*time.Millisecond)
	c.RecordConsumed("distributorServicePurchaseGameConsumer", OutcomeHandled, 10*time.Millisecond)
	c.RecordProduced("game-distributed", OutcomeSent)
	c.SetOutboxPending(7)
	c.AutoPatchStaged(entity.PatchReasonCrash)

	assert.InDelta(t, 2, testutil.ToFloat64(c.consumedRecords.WithLabelValues("distributorServicePurchaseGameConsumer", OutcomeHandled)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.producedRecords.WithLabelValues("game-distributed", OutcomeSent)), 0)
	assert.InDelta(t, 7, testutil.ToFloat64(c.outboxPending), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.autoPatches.WithLabelValues("CRASH")), 0)
}

func TestCollector_NilIsNoop(t *testing.T) {
	var c *Collector

	assert.NotPanics(t, func() {
		c.RecordConsumed("x", OutcomeFailed, time.Second)
		c.RecordProduced("x", OutcomeFailed)
		c.SetOutboxPending(1)
		c.AutoPatchStaged(entity.PatchReasonNegativeFeedback)
		c.RecordSlowQuery()
		assert.NoError(t, c.WatchDB(nil, "x"))
	})
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector()
	c.RecordProduced("patch-published", OutcomeSent)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `gamehub_produced_records_total{outcome="sent",topic="patch-published"} 1`)
}

func TestCollector_WatchDB(t *testing.T) {
	// sql.Open does not connect; the pool stats are readable without a server
	db, err := sql.Open("postgres", "postgres://localhost/distributor?sslmode=disable")
	require.NoError(t, err)
	defer db.Close()

	c := NewCollector()
	require.NoError(t, c.WatchDB(db, "distributor"))
	require.Error(t, c.WatchDB(db, "distributor"), "registering the same database twice")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `go_sql_open_connections{db_name="distributor"} 0`)
}
