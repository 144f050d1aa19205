package usecase

import (
	"context"

	"gamehub/internal/domain/entity"
	"gamehub/internal/domain/event"
)

// PublisherUsecase handles the feedback events consumed by the publisher service.
type PublisherUsecase interface {
	// HandleGameReviewed mirrors the review once and may trigger a NEGATIVE_FEEDBACK patch.
	HandleGameReviewed(ctx context.Context, e *event.GameReviewed) error

	// HandleCrashReported stores the crash and may trigger a CRASH patch.
	HandleCrashReported(ctx context.Context, e *event.CrashReported) error
}

// CatalogUsecase holds the operator actions of the publisher service.
type CatalogUsecase interface {
	AddPublisher(ctx context.Context, name string, isCompany bool) (*entity.Publisher, error)

	// RemovePublisher deletes by numeric id, or by the first publisher with that name.
	RemovePublisher(ctx context.Context, ref string) (*entity.Publisher, error)

	ListPublishers(ctx context.Context) ([]*entity.Publisher, error)
	ListGames(ctx context.Context) ([]*entity.Game, error)

	// PublishGame announces a stored game to the distributors.
	PublishGame(ctx context.Context, gameID int64) (*entity.Game, error)

	// PublishPatch records a patch, moves the game to version and announces it.
	PublishPatch(ctx context.Context, gameID int64, version string) (*entity.Patch, error)

	// LoadCatalog imports games from the catalog source and returns how many were created.
	LoadCatalog(ctx context.Context, maxLines int) (int, error)
}
