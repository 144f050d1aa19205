// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"gamehub/internal/domain/entity"
	"gamehub/internal/domain/event"
)

// DistributorUsecase handles the events consumed by the distributor service.
// Each call runs in one transaction; follow-on events are staged in the outbox.
type DistributorUsecase interface {
	// HandleGamePublished lists the game at every distributor that does not list it yet.
	HandleGamePublished(ctx context.Context, e *event.GamePublished) error

	// HandlePatchPublished moves every listing of the game to the new version.
	HandlePatchPublished(ctx context.Context, e *event.PatchPublished) error

	RegisterPlayer(ctx context.Context, e *event.RegisterPlayer) (*entity.Player, error)

	// PurchaseGame records ownership; buying an owned game again is a no-op.
	PurchaseGame(ctx context.Context, e *event.PurchaseGame) error

	AddPlayTime(ctx context.Context, e *event.AddPlayTime) error

	// ReviewGame accepts the review when the player owns the game and played long enough,
	// otherwise emits ReviewRefused.
	ReviewGame(ctx context.Context, e *event.ReviewGame) error

	ReactReview(ctx context.Context, e *event.ReactReview) error

	AddWishedGame(ctx context.Context, e *event.AddWishedGame) error
	RemoveWishedGame(ctx context.Context, e *event.RemoveWishedGame) error

	InstallGame(ctx context.Context, e *event.InstallGame) error
	UpdateGame(ctx context.Context, e *event.UpdateGame) error
	UninstallGame(ctx context.Context, e *event.UninstallGame) error

	// ReportCrash forwards the crash to the publisher with the player's distributor id.
	ReportCrash(ctx context.Context, e *event.ReportCrash) error

	AskPlayerPage(ctx context.Context, e *event.AskPlayerPage) error
	AskGamesPage(ctx context.Context, e *event.AskGamesPage) error
	AskGameReviews(ctx context.Context, e *event.AskGameReviews) error
}

// DistributorAdminUsecase holds the operator actions of the distributor service.
type DistributorAdminUsecase interface {
	AddDistributor(ctx context.Context, name string) (*entity.Distributor, error)

	// RemoveDistributor deletes by numeric id, or by the first distributor with that name.
	RemoveDistributor(ctx context.Context, ref string) (*entity.Distributor, error)

	ListDistributors(ctx context.Context) ([]*entity.Distributor, error)

	// ListDistributedGames lists one distributor's games, or all listings when distributorID is 0.
	ListDistributedGames(ctx context.Context, distributorID int64) ([]*entity.DistributedGame, error)

	// ListPlayers lists one distributor's players, or all players when distributorID is 0.
	ListPlayers(ctx context.Context, distributorID int64) ([]*entity.Player, error)

	// ListOwnedGames lists one player's games, or all purchases when playerID is 0.
	ListOwnedGames(ctx context.Context, playerID int64) ([]*entity.OwnedGame, error)

	// ListReviews lists one game's reviews, or all reviews when gameID is 0.
	ListReviews(ctx context.Context, gameID int64) ([]*entity.Review, error)

	// StartSale sets the sale fraction of a listing and announces it.
	StartSale(ctx context.Context, distributorID, gameID int64, percentage float64) error
}
