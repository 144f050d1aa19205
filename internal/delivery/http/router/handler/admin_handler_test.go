package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gamehub/internal/delivery/consumer"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/entity"
	"gamehub/internal/domain/event"
	"gamehub/internal/infra/bus"
	mockService "gamehub/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminFixtures struct {
	runtime *consumer.Runtime
	emitter *mockService.MockEventEmitter
	handler *AdminHandler
}

func createAdminFixtures(t *testing.T) adminFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	msgBus := bus.NewMemoryBus(1, logger)
	runtime := consumer.New(msgBus, consumer.Options{GroupID: "distributor", ConsumeLogSize: 10}, nil, nil, logger)
	require.NoError(t, runtime.Register(consumer.Bind(
		"distributorServiceExampleEventConsumer",
		event.TopicExampleEvent,
		func(context.Context, *event.ExampleEvent) error { return nil },
	)))

	t.Cleanup(func() {
		runtime.StopAll()
		_ = msgBus.Close()
	})

	emitter := mockService.NewMockEventEmitter(t)

	return adminFixtures{
		runtime: runtime,
		emitter: emitter,
		handler: New(runtime, emitter, logger),
	}
}

func adminContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Data
}

func TestAdminHandler_ListListeners(t *testing.T) {
	fx := createAdminFixtures(t)

	c, rec := adminContext(http.MethodGet, "/admin/listeners", "")
	require.NoError(t, fx.handler.ListListeners(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	listeners := decodeData[[]consumer.ListenerInfo](t, rec)
	require.Len(t, listeners, 1)
	assert.Equal(t, "distributorServiceExampleEventConsumer", listeners[0].ID)
	assert.Equal(t, "distributor", listeners[0].GroupID)
	assert.False(t, listeners[0].Running)
	assert.Contains(t, rec.Body.String(), `"count":1`)
}

func TestAdminHandler_StartAndStopListener(t *testing.T) {
	fx := createAdminFixtures(t)

	c, rec := adminContext(http.MethodPost, "/admin/listeners/x/start", "")
	c.SetParamNames("id")
	c.SetParamValues("distributorServiceExampleEventConsumer")
	require.NoError(t, fx.handler.StartListener(c))
	assert.True(t, decodeData[consumer.ListenerInfo](t, rec).Running)

	c, rec = adminContext(http.MethodPost, "/admin/listeners/x/stop", "")
	c.SetParamNames("id")
	c.SetParamValues("distributorServiceExampleEventConsumer")
	require.NoError(t, fx.handler.StopListener(c))
	assert.False(t, decodeData[consumer.ListenerInfo](t, rec).Running)
}

func TestAdminHandler_StartUnknownListener(t *testing.T) {
	fx := createAdminFixtures(t)

	c, _ := adminContext(http.MethodPost, "/admin/listeners/nope/start", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")
	err := fx.handler.StartListener(c)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAdminHandler_ConsumeLogs(t *testing.T) {
	fx := createAdminFixtures(t)
	for i := range 3 {
		fx.runtime.Logs().Append(entity.ConsumeLog{
			ConsumerID:  "distributorServiceExampleEventConsumer",
			ConsumeDate: time.Date(2024, 3, 1, 12, i, 0, 0, time.UTC),
			Topic:       event.TopicExampleEvent,
			Outcome:     "handled",
		})
	}

	c, rec := adminContext(http.MethodGet, "/admin/consume-logs?limit=2", "")
	require.NoError(t, fx.handler.ConsumeLogs(c))

	logs := decodeData[[]entity.ConsumeLog](t, rec)
	require.Len(t, logs, 2)
	assert.Equal(t, 1, logs[0].ConsumeDate.Minute())
	assert.Equal(t, 2, logs[1].ConsumeDate.Minute())
}

func TestAdminHandler_ConsumeLogs_InvalidLimit(t *testing.T) {
	fx := createAdminFixtures(t)

	for _, limit := range []string{"abc", "0", "-3"} {
		c, _ := adminContext(http.MethodGet, "/admin/consume-logs?limit="+limit, "")
		err := fx.handler.ConsumeLogs(c)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, limit)
	}
}

func TestAdminHandler_InjectEvent(t *testing.T) {
	fx := createAdminFixtures(t)
	fx.emitter.EXPECT().
		Emit(mock.Anything, "player-1", &event.ExampleEvent{Payload: "hello"}).
		Return(nil)

	c, rec := adminContext(http.MethodPost, "/admin/events/example-event?key=player-1", `{"payload":"hello"}`)
	c.SetParamNames("topic")
	c.SetParamValues(event.TopicExampleEvent)
	require.NoError(t, fx.handler.InjectEvent(c))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	injected := decodeData[InjectedEvent](t, rec)
	assert.Equal(t, InjectedEvent{Topic: event.TopicExampleEvent, Key: "player-1"}, injected)
}

func TestAdminHandler_InjectEvent_KeyFromAggregate(t *testing.T) {
	fx := createAdminFixtures(t)
	fx.emitter.EXPECT().
		Emit(mock.Anything, "review-9", &event.ReactReview{ReviewID: 9, PlayerID: 42, ReactType: 2}).
		Return(nil)

	c, rec := adminContext(http.MethodPost, "/admin/events/react-review", `{"reviewId":9,"playerId":42,"reactType":2}`)
	c.SetParamNames("topic")
	c.SetParamValues(event.TopicReactReview)
	require.NoError(t, fx.handler.InjectEvent(c))

	assert.Equal(t, InjectedEvent{Topic: event.TopicReactReview, Key: "review-9"}, decodeData[InjectedEvent](t, rec))
}

func TestAdminHandler_InjectEvent_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		topic   string
		body    string
		wantErr error
	}{
		{name: "unknown topic", topic: "no-such-topic", body: `{}`, wantErr: domainerrors.ErrUnknownTopic},
		{name: "malformed json", topic: event.TopicExampleEvent, body: `{"payload":`, wantErr: domainerrors.ErrParse},
		{name: "missing field", topic: event.TopicExampleEvent, body: `{}`, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createAdminFixtures(t)

			c, _ := adminContext(http.MethodPost, "/admin/events/"+tt.topic, tt.body)
			c.SetParamNames("topic")
			c.SetParamValues(tt.topic)
			err := fx.handler.InjectEvent(c)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAdminHandler_InjectEvent_EmitFails(t *testing.T) {
	fx := createAdminFixtures(t)
	fx.emitter.EXPECT().
		Emit(mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(errors.New("encode failed"))

	c, _ := adminContext(http.MethodPost, "/admin/events/example-event", `{"payload":"hello"}`)
	c.SetParamNames("topic")
	c.SetParamValues(event.TopicExampleEvent)
	err := fx.handler.InjectEvent(c)
	assert.ErrorIs(t, err, domainerrors.ErrTransportFailed)
}
