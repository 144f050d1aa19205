package handler

import (
	"log/slog"

	"gamehub/internal/delivery/consumer"
	"gamehub/internal/domain/constants"
	"gamehub/internal/domain/event"
	"gamehub/internal/usecase"

	"go.uber.org/fx"
)

// PublisherListenersParams holds dependencies for the publisher listeners, injected by Fx
type PublisherListenersParams struct {
	fx.In

	Usecase usecase.PublisherUsecase
	Logger  *slog.Logger
}

// NewPublisherListeners returns the feedback listeners of the publisher.
func NewPublisherListeners(params PublisherListenersParams) []consumer.Listener {
	id := func(name string) string { return consumer.ListenerID(constants.ServicePublisher, name) }

	return []consumer.Listener{
		consumer.Bind(id("GameReviewed"), event.TopicGameReviewed, params.Usecase.HandleGameReviewed),
		consumer.Bind(id("CrashReported"), event.TopicCrashReported, params.Usecase.HandleCrashReported),
		exampleListener(constants.ServicePublisher, params.Logger),
	}
}
