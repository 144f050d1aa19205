package http

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

	"gamehub/config"
	"gamehub/internal/delivery/consumer"
	"gamehub/internal/delivery/http/middleware"
	"gamehub/internal/delivery/http/router"
	"gamehub/internal/delivery/http/router/handler"
	"gamehub/internal/delivery/http/response"
	"gamehub/internal/domain/event"
	"gamehub/internal/infra/auth"
	"gamehub/internal/infra/bus"
	"gamehub/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type serverFixtures struct {
	echo    *echo.Echo
	runtime *consumer.Runtime
	// correlation IDs seen by the example listener
	correlations chan string
}

func createServerFixtures(t *testing.T) serverFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Env.ServiceName = "distributor"
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Admin = &config.AdminConfig{
		Username:    "admin",
		TokenSecret: "test-secret",
		TokenTTL:    time.Hour,
		BcryptCost:  bcrypt.MinCost,
	}

	hasher := auth.NewBcryptHasher(cfg)
	hash, err := hasher.Hash("secret")
	require.NoError(t, err)
	cfg.Admin.PasswordHash = hash

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	msgBus := bus.NewMemoryBus(1, logger)
	collector := metrics.NewCollector()
	runtime := consumer.New(msgBus, consumer.Options{GroupID: "distributor"}, collector, nil, logger)
	correlations := make(chan string, 10)
	require.NoError(t, runtime.Register(consumer.Bind(
		"distributorServiceExampleEventConsumer",
		event.TopicExampleEvent,
		func(ctx context.Context, _ *event.ExampleEvent) error {
			correlations <- event.CorrelationID(ctx)

			return nil
		},
	)))
	emitter := bus.NewAsyncEmitter(msgBus, "distributor", collector, logger)

	t.Cleanup(func() {
		runtime.StopAll()
		emitter.Wait()
		_ = msgBus.Close()
	})

	r := router.NewRouter(router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			Config:   cfg,
			Hasher:   hasher,
			TokenSvc: tokenSvc,
			Logger:   logger,
		}),
		AdminHandler:   handler.New(runtime, emitter, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc),
		Metrics:        collector,
	})

	return serverFixtures{echo: NewEcho(cfg, logger, r), runtime: runtime, correlations: correlations}
}

func (fx serverFixtures) do(t *testing.T, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	return fx.doRequest(t, httptest.NewRequest(method, target, strings.NewReader(body)), token)
}

func (fx serverFixtures) doRequest(t *testing.T, req *http.Request, token string) *httptest.ResponseRecorder {
	t.Helper()

	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func (fx serverFixtures) login(t *testing.T) string {
	t.Helper()

	rec := fx.do(t, http.MethodPost, "/auth/login", "", `{"username":"admin","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body response.Body
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	token, ok := data["access_token"].(string)
	require.True(t, ok)

	return token
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.Body
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func TestServer_Health(t *testing.T) {
	fx := createServerFixtures(t)

	rec := fx.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestServer_Metrics(t *testing.T) {
	fx := createServerFixtures(t)

	rec := fx.do(t, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gamehub_outbox_pending")
}

func TestServer_LoginRefused(t *testing.T) {
	fx := createServerFixtures(t)

	rec := fx.do(t, http.MethodPost, "/auth/login", "", `{"username":"admin","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, rec))
}

func TestServer_AdminRequiresToken(t *testing.T) {
	fx := createServerFixtures(t)

	rec := fx.do(t, http.MethodGet, "/admin/listeners", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))

	rec = fx.do(t, http.MethodGet, "/admin/listeners", "not-a-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_ListenerLifecycle(t *testing.T) {
	fx := createServerFixtures(t)
	token := fx.login(t)

	rec := fx.do(t, http.MethodGet, "/admin/listeners", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "distributorServiceExampleEventConsumer")

	rec = fx.do(t, http.MethodPost, "/admin/listeners/distributorServiceExampleEventConsumer/start", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, fx.runtime.Listeners()[0].Running)

	rec = fx.do(t, http.MethodPost, "/admin/listeners/distributorServiceExampleEventConsumer/stop", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, fx.runtime.Listeners()[0].Running)

	rec = fx.do(t, http.MethodPost, "/admin/listeners/missing/start", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, rec))
}

func TestServer_InjectedEventIsConsumed(t *testing.T) {
	fx := createServerFixtures(t)
	token := fx.login(t)

	rec := fx.do(t, http.MethodPost, "/admin/listeners/distributorServiceExampleEventConsumer/start", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(t, http.MethodPost, "/admin/events/example-event?key=k1", token, `{"payload":"ping"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)

	require.Eventually(t, func() bool {
		return fx.runtime.Logs().Len() == 1
	}, 2*time.Second, 5*time.Millisecond)

	rec = fx.do(t, http.MethodGet, "/admin/consume-logs?limit=5", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"key":"k1"`)
}

func TestServer_InjectInvalidEvent(t *testing.T) {
	fx := createServerFixtures(t)
	token := fx.login(t)

	rec := fx.do(t, http.MethodPost, "/admin/events/example-event", token, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
}

func TestServer_InjectedEventCarriesRequestID(t *testing.T) {
	fx := createServerFixtures(t)
	token := fx.login(t)

	rec := fx.do(t, http.MethodPost, "/admin/listeners/distributorServiceExampleEventConsumer/start", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/admin/events/example-event", strings.NewReader(`{"payload":"ping"}`))
	req.Header.Set("X-Request-Id", "req-42")
	rec = fx.doRequest(t, req, token)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))

	select {
	case id := <-fx.correlations:
		assert.Equal(t, "req-42", id)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not consumed")
	}
}
