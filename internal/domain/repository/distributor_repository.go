package repository

import (
	"context"

	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
)

// Domain-specific errors for distributor persistence.
var (
	// ErrDistributorNotFound is returned when a distributor is not found.
	ErrDistributorNotFound = domainerrors.ErrNotFound.WrapMessage("distributor not found")
	// ErrDistributedGameNotFound is returned when a distributor does not list the game.
	ErrDistributedGameNotFound = domainerrors.ErrNotFound.WrapMessage("distributed game not found")
	// ErrPlayerNotFound is returned when a player is not found.
	ErrPlayerNotFound = domainerrors.ErrNotFound.WrapMessage("player not found")
	// ErrOwnedGameNotFound is returned when the player does not own the game.
	ErrOwnedGameNotFound = domainerrors.ErrNotFound.WrapMessage("owned game not found")
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = domainerrors.ErrNotFound.WrapMessage("review not found")
)

// DistributorRepository defines persistence for distributors.
type DistributorRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Distributor, error)
	FindAll(ctx context.Context) ([]*entity.Distributor, error)
	// FindFirstByName returns the lowest-id distributor with this name.
	FindFirstByName(ctx context.Context, name string) (*entity.Distributor, error)
	// Save inserts when ID is zero and updates otherwise. The generated ID is written back.
	Save(ctx context.Context, distributor *entity.Distributor) error
	Delete(ctx context.Context, id int64) error
}

// DistributedGameRepository defines persistence for distributor listings.
type DistributedGameRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.DistributedGame, error)
	FindAll(ctx context.Context) ([]*entity.DistributedGame, error)
	FindByDistributorID(ctx context.Context, distributorID int64) ([]*entity.DistributedGame, error)
	FindByDistributorIDAndGameID(ctx context.Context, distributorID, gameID int64) (*entity.DistributedGame, error)
	FindByGameID(ctx context.Context, gameID int64) ([]*entity.DistributedGame, error)
	// CreateIfAbsent inserts the listing unless (distributor, game) already exists.
	// It reports whether a row was inserted.
	CreateIfAbsent(ctx context.Context, game *entity.DistributedGame) (bool, error)
	Save(ctx context.Context, game *entity.DistributedGame) error
	Delete(ctx context.Context, id int64) error
}

// PlayerRepository defines persistence for players.
type PlayerRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Player, error)
	FindAll(ctx context.Context) ([]*entity.Player, error)
	FindByDistributorID(ctx context.Context, distributorID int64) ([]*entity.Player, error)
	Save(ctx context.Context, player *entity.Player) error
	Delete(ctx context.Context, id int64) error
}

// OwnedGameRepository defines persistence for purchases.
type OwnedGameRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.OwnedGame, error)
	FindAll(ctx context.Context) ([]*entity.OwnedGame, error)
	FindByPlayerID(ctx context.Context, playerID int64) ([]*entity.OwnedGame, error)
	FindByPlayerIDAndGameID(ctx context.Context, playerID, gameID int64) (*entity.OwnedGame, error)
	// CreateIfAbsent inserts the purchase unless (player, game) already exists.
	// It reports whether a row was inserted.
	CreateIfAbsent(ctx context.Context, owned *entity.OwnedGame) (bool, error)
	Save(ctx context.Context, owned *entity.OwnedGame) error
	Delete(ctx context.Context, id int64) error
}

// ReviewRepository defines persistence for distributor reviews and their reactions.
type ReviewRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Review, error)
	FindAll(ctx context.Context) ([]*entity.Review, error)
	FindByGameID(ctx context.Context, gameID int64) ([]*entity.Review, error)
	// Save persists the review and replaces its reaction sets.
	Save(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id int64) error
}
