// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"gamehub/config"
	deliverycontext "gamehub/internal/delivery/context"
	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/event"
	"gamehub/internal/domain/repository"
	"gamehub/internal/producer"
	"gamehub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const unknownGameName = "Unknown game"

// distributorService implements the DistributorUsecase interface.
type distributorService struct {
	txManager         repository.DistributorTransactionManager
	reviewMinPlayTime float64
	defaultPrice      float64
	logger            *slog.Logger
	now               func() time.Time
}

// DistributorServiceParams holds dependencies for DistributorService, injected by Fx.
type DistributorServiceParams struct {
	fx.In

	TxManager repository.DistributorTransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewDistributorService is the constructor for distributorService.
func NewDistributorService(params DistributorServiceParams) usecase.DistributorUsecase {
	return newDistributorService(params)
}

func newDistributorService(params DistributorServiceParams) *distributorService {
	srv := &distributorService{
		txManager: params.TxManager,
		logger:    params.Logger,
		now:       time.Now,
	}
	if params.Config != nil && params.Config.Distributor != nil {
		srv.reviewMinPlayTime = params.Config.Distributor.ReviewMinPlayTimeMinutes
		srv.defaultPrice = params.Config.Distributor.DefaultPrice
	}

	return srv
}

// log returns a record-scoped logger if available, otherwise falls back to the service's logger.
func (srv *distributorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *distributorService) HandleGamePublished(ctx context.Context, e *event.GamePublished) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.DistributorRepositoryFactory) error {
		distributors, err := repoFactory.NewDistributorRepository().FindAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list distributors")
		}
		if len(distributors) == 0 {
			return errors.Wrapf(repository.ErrDistributorNotFound, "no distributor can list game %d", e.GameID)
		}

		gameRepo := repoFactory.NewDistributedGameRepository()
		sender := producer.NewDistributor(repoFactory.NewEventEmitter(), srv.log(ctx))

		for _, distributor := range distributors {
			game := &entity.DistributedGame{
				DistributorID: distributor.ID,
				GameID:        e.GameID,
				GameName:      e.GameName,
				Version:       e.Version,
				Price:         srv.defaultPrice,
				Platforms:     slices.Clone(e.Platforms),
			}

			inserted, err := gameRepo.CreateIfAbsent(ctx, game)
			if err != nil {
				return errors.Wrapf(err, "failed to list game %d at distributor %d", e.GameID, distributor.ID)
			}
			if !inserted {
				srv.log(ctx).Debug("Game already distributed, skipping",
					slog.Int64("distributor_id", distributor.ID),
					slog.Int64("game_id", e.GameID),
				)

				continue
			}

			if err := sender.SendGameDistributed(ctx, game); err != nil {
				return errors.Wrap(err, "failed to stage GameDistributed")
			}
		}

		return nil
	})
}

func (srv *distributorService) HandlePatchPublished(ctx context.Context, e *event.PatchPublished) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.DistributorRepositoryFactory) error {
		gameRepo := repoFactory.NewDistributedGameRepository()

		games, err := gameRepo.FindByGameID(ctx, e.GameID)
		if err != nil {
			return errors.Wrap(err, "failed to find distributed games")
		}
		if len(games) == 0 {
			srv.log(ctx).Info("Patch for a game no distributor lists", slog.Int64("game_id", e.GameID))

			return nil
		}

		sender := producer.NewDistributor(repoFactory.NewEventEmitter(), srv.log(ctx))
		for _, game := range games {
			if game.Version == e.Version {
				continue
			}
			game.Version = e.Version
			if err := gameRepo.Save(ctx, game); err != nil {
				return errors.Wrapf(err, "failed to update game %d at distributor %d", game.GameID, game.DistributorID)
			}
			if err := sender.SendPatchDistributed(ctx, game); err != nil {
				return errors.Wrap(err, "failed to stage PatchDistributed")
			}
		}

		return nil
	})
}

func (srv *distributorService) RegisterPlayer(ctx context.Context, e *event.RegisterPlayer) (*entity.Player, error) {
	var player *entity.Player
	err := srv.txManager.Execute(ctx, func(repoFactory repository.DistributorRepositoryFactory) error {
		if _, err := repoFactory.NewDistributorRepository().FindByID(ctx, e.DistributorID); err != nil {
			return errors.Wrapf(err, "failed to find distributor %d", e.DistributorID)
		}

		player = &entity.Player{
			DistributorID:    e.DistributorID,
			Pseudo:           e.Pseudo,
			FirstName:        e.FirstName,
			LastName:         e.LastName,
			BirthDate:        e.BirthDate,
			RegistrationDate: srv.now(),
			WishedGames:      []int64{},
		}
		if err := repoFactory.NewPlayerRepository().Save(ctx, player); err != nil {
			return errors.Wrap(err, "failed to save player")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Player registered",
		slog.Int64("player_id", player.ID),
		slog.Int64("distributor_id", player.DistributorID),
	)

	return player, nil
}

func (srv *distributorService) PurchaseGame(ctx context.Context, e *event.PurchaseGame) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.DistributorRepositoryFactory) error {
		if _, err := repoFactory.NewPlayerRepository().FindByID(ctx, e.PlayerID); err != nil {
			return errors.Wrapf(err, "failed to find player %d", e.PlayerID)
		}

		owned := &entity.OwnedGame{
			PlayerID:     e.PlayerID,
			GameID:       e.GameID,
			PurchaseDate: srv.now(),
		}
		inserted, err := repoFactory.NewOwnedGameRepository().CreateIfAbsent(ctx, owned)
		if err != nil {
			return errors.Wrap(err, "failed to record purchase")
		}
		if !inserted {
			srv.log(ctx).Debug("Game already owned", slog.Int64("player_id", e.PlayerID), slog.Int64("game_id", e.GameID))
		}

		return nil
	})
}

func (srv *distributorService) AddPlayTime(ctx context.Context, e *event.AddPlayTime) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.DistributorRepositoryFactory) error {
		ownedRepo := repoFactory.NewOwnedGameRepository()

		owned, err := ownedRepo.FindByPlayerIDAndGameID(ctx, e.PlayerID, e.GameID)
		if err != nil {
			return errors.Wrapf(err, "failed to find game %d owned by player %d", e.GameID, e.PlayerID)
		}

		if added := owned.AddPlayTime(e.Time); added == 0 {
			return nil
		}

		return errors.Wrap(ownedRepo.Save(ctx, owned), "failed to save play time")
	})
}

func (srv *distributorService) ReviewGame(ctx context.Context, e *event.ReviewGame) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.DistributorRepositoryFactory) error {
		player, err := repoFactory.NewPlayerRepository().FindByID(ctx, e.PlayerID)
		if err != nil {
			return errors.Wrapf(err, "failed to find player %d", e.PlayerID)
		}

		sender := producer.NewDistributor(repoFactory.NewEventEmitter(), srv.log(ctx))

		owned, err := repoFactory.NewOwnedGameRepository().FindByPlayerIDAndGameID(ctx, e.PlayerID, e.GameID)
		switch {
		case errors.Is(err, repository.ErrOwnedGameNotFound):
			return srv.refuseReview(ctx, repoFactory, sender, player, e.GameID, "game not owned")
		case err != nil:
			return errors.Wrap(err, "failed to find owned game")
		case float64(owned.PlayTime) < srv.reviewMinPlayTime:
			return srv.refuseReview(ctx, repoFactory, sender, player, e.GameID,
				fmt.Sprintf("played %d of %.2f minutes", owned.PlayTime, srv.reviewMinPlayTime))
		}

		review := &entity.Review{
			PlayerID:          e.PlayerID,
			GameID:            e.GameID,
			Rating:            e.Rating,
			Comment:           e.Comment,
			PublicationDate:   srv.now(),
			PositiveReactions: []int64{},
			NegativeReactions: []int64{},
		}
		if err := repoFactory.NewReviewRepository().Save(ctx, review); err != nil {
			return errors.Wrap(err, "failed to save review")
		}

		return errors.Wrap(sender.SendGameReviewed(ctx, player.DistributorID, review), "failed to stage GameReviewed")
	})
}

// refuseReview stages ReviewRefused. Nothing else is written.
func (srv *distributorService) refuseReview(
	ctx context.Context,
	repoFactory repository.DistributorRepositoryFactory,
	sender *producer.Distributor,
	player *entity.Player,
	gameID int64,
	reason string,
) error {
	srv.log(ctx).Info("Review refused",
		slog.Int64("player_id", player.ID),
		slog.Int64("game_id", gameID),
		slog.String("reason", reason),
	)

	gameName, err := srv.resolveGameName(ctx, repoFactory.NewDistributedGameRepository(), player.DistributorID, gameID)
	if err != nil {
		return err
	}

	return errors.Wrap(sender.SendReviewRefused(ctx, player, gameName), "failed to stage ReviewRefused")
}

// resolveGameName prefers the player's distributor listing, then any listing of the game.
func (srv *distributorService) resolveGameName(
	ctx context.Context,
	gameRepo repository.DistributedGameRepository,
	distributorID, gameID int64,
) (string, error) {
	game, err := gameRepo.FindByDistributorIDAndGameID(ctx, distributorID, gameID)
	if err == nil {
		return game.GameName, nil
	}
	if !errors.Is(err, repository.ErrDistributedGameNotFound) {
		return "", errors.Wrap(err, "failed to find distributed game")
	}

	listings, err := gameRepo.FindByGameID(ctx, gameID)
	if err != nil {
		return "", errors.Wrap(err, "failed to find distributed games")
	}
	if len(listings) == 0 {
		return unknownGameName, nil
	}

	return listings[0].GameName, nil
}

func (srv *distributorService) ReactReview(ctx context.Context, e *event.ReactReview) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.DistributorRepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		review, err := reviewRepo.FindByID(ctx, e.ReviewID)
		if err != nil {
			return errors.Wrapf(err, "failed to find review %d", e.ReviewID)
		}
		if _, err := repoFactory.NewPlayerRepository().FindByID(ctx, e.PlayerID); err != nil {
			return errors.Wrapf(err, "failed to find player %d", e.PlayerID)
		}

		review.ApplyReaction(e.PlayerID, entity.ReactionType(e.ReactType))

		return errors.Wrap(reviewRepo.Save(ctx, review), "failed to save reaction")
	})
}

func (srv *distributorService) AddWishedGame(ctx context.Context, e *event.AddWishedGame) error {
	return srv.updateWishlist(ctx, e.PlayerID, func(player *entity.Player) bool {
		return player.AddWishedGame(e.GameID)
	})
}

func (srv *distributorService) RemoveWishedGame(ctx context.Context, e *event.RemoveWishedGame) error {
	return srv.updateWishlist(ctx, e.PlayerID, func(player *entity.Player) bool {
		return player.RemoveWishedGame(e.GameID)
	})
}

func (srv *distributorService) updateWishlist(ctx context.Context, playerID int64, change func(*entity.Player) bool) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.DistributorRepositoryFactory) error {
		playerRepo := repoFactory.NewPlayerRepository()

		player, err := playerRepo.FindByID(ctx, playerID)
		if err != nil {
			return errors.Wrapf(err, "failed to find player %d", playerID)
		}
		if !change(player) {
			return nil
		}

		return errors.Wrap(playerRepo.Save(ctx, player), "failed to save wishlist")
	})
}

func (srv *distributorService) InstallGame(ctx context.Context, e *event.InstallGame) error {
	return srv.sendGameFile(ctx, e.PlayerID, e.GameID, e.Platform, nil)
}

func (srv *distributorService) UpdateGame(ctx context.Context, e *event.UpdateGame) error {
	return srv.sendGameFile(ctx, e.PlayerID, e.GameID, e.Platform, func(game *entity.DistributedGame) error {
		if e.InstalledVersion == game.Version {
			return domainerrors.ErrAlreadyUpToDate.WrapMessage(
				fmt.Sprintf("game %d is already at version %s", game.GameID, game.Version))
		}

		return nil
	})
}

// sendGameFile checks ownership, runs the optional extra check, then stages SendGameFile.
func (srv *distributorService) sendGameFile(
	ctx context.Context,
	playerID, gameID int64,
	platform string,
	check func(*entity.DistributedGame) error,
) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.DistributorRepositoryFactory) error {
		_, err := repoFactory.NewOwnedGameRepository().FindByPlayerIDAndGameID(ctx, playerID, gameID)
		if errors.Is(err, repository.ErrOwnedGameNotFound) {
			return domainerrors.ErrNotOwned.WrapMessage(fmt.Sprintf("player %d does not own game %d", playerID, gameID))
		}
		if err != nil {
			return errors.Wrap(err, "failed to find owned game")
		}

		player, err := repoFactory.NewPlayerRepository().FindByID(ctx, playerID)
		if err != nil {
			return errors.Wrapf(err, "failed to find player %d", playerID)
		}

		game, err := repoFactory.NewDistributedGameRepository().FindByDistributorIDAndGameID(ctx, player.DistributorID, gameID)
		if err != nil {
			return errors.Wrapf(err, "failed to find game %d at distributor %d", gameID, player.DistributorID)
		}

		if check != nil {
			if err := check(game); err != nil {
				return err
			}
		}

		sender := producer.NewDistributor(repoFactory.NewEventEmitter(), srv.log(ctx))

		return errors.Wrap(sender.SendGameFile(ctx, player, game, platform), "failed to stage SendGameFile")
	})
}

func (srv *distributorService) UninstallGame(ctx context.Context, e *event.UninstallGame) error {
	srv.log(ctx).Info("Game uninstalled",
		slog.Int64("player_id", e.PlayerID),
		slog.Int64("game_id", e.GameID),
		slog.String("platform", e.Platform),
		slog.String("comment", e.Comment),
	)

	return nil
}

func (srv *distributorService) ReportCrash(ctx context.Context, e *event.ReportCrash) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.DistributorRepositoryFactory) error {
		player, err := repoFactory.NewPlayerRepository().FindByID(ctx, e.PlayerID)
		if err != nil {
			return errors.Wrapf(err, "failed to find player %d", e.PlayerID)
		}

		sender := producer.NewDistributor(repoFactory.NewEventEmitter(), srv.log(ctx))

		return errors.Wrap(sender.SendCrashReported(ctx, player.DistributorID, e), "failed to stage CrashReported")
	})
}

func (srv *distributorService) AskPlayerPage(ctx context.Context, e *event.AskPlayerPage) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.DistributorRepositoryFactory) error {
		players, err := repoFactory.NewPlayerRepository().FindByDistributorID(ctx, e.DistributorID)
		if err != nil {
			return errors.Wrap(err, "failed to find players")
		}

		ownedRepo := repoFactory.NewOwnedGameRepository()
		summaries := make([]playerSummary, 0, len(players))
		for _, player := range players {
			owned, err := ownedRepo.FindByPlayerID(ctx, player.ID)
			if err != nil {
				return errors.Wrapf(err, "failed to find games of player %d", player.ID)
			}

			summary := playerSummary{player: player, ownedGames: len(owned)}
			for _, game := range owned {
				summary.totalPlayTime += game.PlayTime
			}
			summaries = append(summaries, summary)
		}

		sender := producer.NewDistributor(repoFactory.NewEventEmitter(), srv.log(ctx))

		return errors.Wrap(sender.SendPlayerPage(ctx, e.DistributorID, renderPlayerPage(summaries)),
			"failed to stage SendPlayerPage")
	})
}

func (srv *distributorService) AskGamesPage(ctx context.Context, e *event.AskGamesPage) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.DistributorRepositoryFactory) error {
		distributor, err := repoFactory.NewDistributorRepository().FindByID(ctx, e.DistributorID)
		if err != nil {
			return errors.Wrapf(err, "failed to find distributor %d", e.DistributorID)
		}

		listings, err := repoFactory.NewDistributedGameRepository().FindByDistributorID(ctx, e.DistributorID)
		if err != nil {
			return errors.Wrap(err, "failed to find distributed games")
		}
		games := slices.DeleteFunc(listings, func(game *entity.DistributedGame) bool {
			return !game.AvailableOn(e.Platform)
		})

		sender := producer.NewDistributor(repoFactory.NewEventEmitter(), srv.log(ctx))

		return errors.Wrap(sender.SendGamesPage(ctx, e.DistributorID, e.Platform, renderGamesPage(distributor, e.Platform, games)),
			"failed to stage SendGamesPage")
	})
}

func (srv *distributorService) AskGameReviews(ctx context.Context, e *event.AskGameReviews) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.DistributorRepositoryFactory) error {
		distributor, err := repoFactory.NewDistributorRepository().FindByID(ctx, e.DistributorID)
		if err != nil {
			return errors.Wrapf(err, "failed to find distributor %d", e.DistributorID)
		}

		game, err := repoFactory.NewDistributedGameRepository().FindByDistributorIDAndGameID(ctx, e.DistributorID, e.GameID)
		if err != nil {
			return errors.Wrapf(err, "failed to find game %d at distributor %d", e.GameID, e.DistributorID)
		}

		reviews, err := repoFactory.NewReviewRepository().FindByGameID(ctx, e.GameID)
		if err != nil {
			return errors.Wrap(err, "failed to find reviews")
		}

		sender := producer.NewDistributor(repoFactory.NewEventEmitter(), srv.log(ctx))

		return errors.Wrap(sender.SendGameReviews(ctx, e.DistributorID, e.GameID, renderReviewsPage(distributor, game, reviews)),
			"failed to stage SendGameReviews")
	})
}
