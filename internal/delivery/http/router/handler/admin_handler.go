package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"gamehub/internal/delivery/consumer"
	deliverycontext "gamehub/internal/delivery/context"
	"gamehub/internal/delivery/http/response"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/event"
	"gamehub/internal/domain/service"
	"gamehub/internal/infra/bus"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultLogLimit = 20

// ListenerControl is the part of the consumer runtime the admin API drives.
type ListenerControl interface {
	Listeners() []consumer.ListenerInfo
	Start(ctx context.Context, id string) error
	Stop(id string) error
	Logs() *consumer.ConsumeLogStore
}

// InjectedEvent acknowledges an event appended through the admin API.
type InjectedEvent struct {
	Topic string `json:"topic"`
	Key   string `json:"key"`
}

// AdminHandler exposes listener control, consume logs and raw event injection.
type AdminHandler struct {
	control ListenerControl
	emitter service.EventEmitter
	logger  *slog.Logger
}

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	Runtime *consumer.Runtime
	Emitter *bus.AsyncEmitter
	Logger  *slog.Logger
}

func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return New(params.Runtime, params.Emitter, params.Logger)
}

// New builds an AdminHandler; emitter appends injected events straight to the bus.
func New(control ListenerControl, emitter service.EventEmitter, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		control: control,
		emitter: emitter,
		logger:  logger,
	}
}

func (h *AdminHandler) ListListeners(c echo.Context) error {
	return response.List(c, h.control.Listeners())
}

func (h *AdminHandler) StartListener(c echo.Context) error {
	id := c.Param("id")
	if err := h.control.Start(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.listener(id))
}

func (h *AdminHandler) StopListener(c echo.Context) error {
	id := c.Param("id")
	if err := h.control.Stop(id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.listener(id))
}

// ConsumeLogs returns the most recent consume logs, oldest first.
func (h *AdminHandler) ConsumeLogs(c echo.Context) error {
	limit := defaultLogLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return domainerrors.ErrValidationFailed.WithDetails("limit must be a positive integer")
		}
		limit = n
	}

	return response.List(c, h.control.Logs().Recent(limit))
}

// InjectEvent validates the body as the payload of :topic and appends it to the bus.
// The key query parameter picks the partition. Without it the payload's aggregate does.
func (h *AdminHandler) InjectEvent(c echo.Context) error {
	topic := c.Param("topic")
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errors.Wrap(domainerrors.ErrParse, err.Error())
	}

	evt, err := event.Decode(topic, body)
	if err != nil {
		return err
	}

	key := c.QueryParam("key")
	if key == "" {
		key = event.KeyOf(evt)
	}

	if err := h.emitter.Emit(c.Request().Context(), key, evt); err != nil {
		return errors.Wrap(domainerrors.ErrTransportFailed, err.Error())
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("[Admin] Event injected",
		slog.String("topic", topic),
		slog.String("key", key),
	)

	return response.Success(c, http.StatusAccepted, InjectedEvent{Topic: topic, Key: key})
}

func (h *AdminHandler) listener(id string) *consumer.ListenerInfo {
	for _, info := range h.control.Listeners() {
		if info.ID == id {
			return &info
		}
	}

	return nil
}
