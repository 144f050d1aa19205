package repository

import (
	"context"

	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
)

// Domain-specific errors for publisher persistence.
var (
	// ErrPublisherNotFound is returned when a publisher is not found.
	ErrPublisherNotFound = domainerrors.ErrNotFound.WrapMessage("publisher not found")
	// ErrPublisherInUse is returned when deleting a publisher that still has games.
	ErrPublisherInUse = domainerrors.ErrConflict.WrapMessage("publisher still has games")
	// ErrGameNotFound is returned when a game is not found.
	ErrGameNotFound = domainerrors.ErrNotFound.WrapMessage("game not found")
)

// PublisherRepository defines persistence for publishers.
type PublisherRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Publisher, error)
	FindAll(ctx context.Context) ([]*entity.Publisher, error)
	FindFirstByName(ctx context.Context, name string) (*entity.Publisher, error)
	Save(ctx context.Context, publisher *entity.Publisher) error
	Delete(ctx context.Context, id int64) error
}

// GameRepository defines persistence for the publisher catalog.
type GameRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Game, error)
	// FindByIDForUpdate loads the game and locks its row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Game, error)
	FindAll(ctx context.Context) ([]*entity.Game, error)
	FindByPublisherID(ctx context.Context, publisherID int64) ([]*entity.Game, error)
	Save(ctx context.Context, game *entity.Game) error
	Delete(ctx context.Context, id int64) error
}

// PatchRepository defines persistence for published patches.
type PatchRepository interface {
	Save(ctx context.Context, patch *entity.Patch) error
	FindByGameID(ctx context.Context, gameID int64) ([]*entity.Patch, error)
}

// ReviewMirrorRepository defines persistence for mirrored distributor reviews.
type ReviewMirrorRepository interface {
	// CreateIfAbsent inserts the mirror keyed by the distributor review id.
	// It reports whether a row was inserted; false means the review was already mirrored.
	CreateIfAbsent(ctx context.Context, review *entity.ReviewMirror) (bool, error)
	// CountByGameIDAndMaxRating counts mirrors of a game with rating at most maxRating.
	CountByGameIDAndMaxRating(ctx context.Context, gameID int64, maxRating int) (int64, error)
	FindByGameID(ctx context.Context, gameID int64) ([]*entity.ReviewMirror, error)
}

// CrashReportRepository defines persistence for crash reports.
type CrashReportRepository interface {
	Create(ctx context.Context, report *entity.CrashReport) error
	CountByGameID(ctx context.Context, gameID int64) (int64, error)
	FindByGameID(ctx context.Context, gameID int64) ([]*entity.CrashReport, error)
}
