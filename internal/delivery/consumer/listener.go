// Package consumer runs the bus listeners of a service.
package consumer

import (
	"context"
	"fmt"

	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/event"

	"github.com/pkg/errors"
)

// HandlerFunc handles one decoded and validated event.
type HandlerFunc func(ctx context.Context, e event.Event) error

// Listener binds a handler to a topic.
// GroupID and Concurrency fall back to the runtime defaults when zero.
type Listener struct {
	ID          string
	Topic       string
	GroupID     string
	Concurrency int
	AutoStartup bool
	Handle      HandlerFunc
}

// ListenerInfo is the public view of a registered listener.
type ListenerInfo struct {
	ID          string `json:"id"`
	Topic       string `json:"topic"`
	GroupID     string `json:"group_id"`
	Concurrency int    `json:"concurrency"`
	Running     bool   `json:"running"`
}

// ListenerID builds the conventional id, e.g. distributorServiceReviewGameConsumer.
func ListenerID(service, eventName string) string {
	return fmt.Sprintf("%sService%sConsumer", service, eventName)
}

// Bind adapts a typed handler to a Listener. The payload type registered for topic must be E.
func Bind[E event.Event](id, topic string, handle func(ctx context.Context, e E) error) Listener {
	return Listener{
		ID:          id,
		Topic:       topic,
		AutoStartup: true,
		Handle: func(ctx context.Context, e event.Event) error {
			typed, ok := e.(E)
			if !ok {
				return errors.Wrap(domainerrors.ErrParse, fmt.Sprintf("listener %s cannot handle %T", id, e))
			}

			return handle(ctx, typed)
		},
	}
}
