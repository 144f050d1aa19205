package producer

import (
	"context"
	"log/slog"

	"gamehub/internal/domain/entity"
	"gamehub/internal/domain/event"
	"gamehub/internal/domain/service"
)

// Publisher sends the catalog events the publisher service produces.
type Publisher struct {
	base
}

// NewPublisher binds the senders to emitter.
func NewPublisher(emitter service.EventEmitter, logger *slog.Logger) *Publisher {
	return &Publisher{base{emitter: emitter, logger: logger}}
}

func (p *Publisher) SendGamePublished(ctx context.Context, game *entity.Game) error {
	platforms := make([]string, 0, len(game.Platforms))
	for _, platform := range game.Platforms {
		platforms = append(platforms, string(platform))
	}
	genres := make([]string, 0, len(game.Genres))
	for _, genre := range game.Genres {
		genres = append(genres, string(genre))
	}

	return p.send(ctx, event.GameKey(game.ID), &event.GamePublished{
		GameID:      game.ID,
		GameName:    game.Name,
		Version:     game.Version,
		PublisherID: game.PublisherID,
		Platforms:   platforms,
		Genres:      genres,
	})
}

func (p *Publisher) SendPatchPublished(ctx context.Context, gameID int64, version string) error {
	return p.send(ctx, event.GameKey(gameID), &event.PatchPublished{
		GameID:  gameID,
		Version: version,
	})
}
