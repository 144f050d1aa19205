package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "gamehub/internal/delivery/context"
	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/repository"
	"gamehub/internal/producer"
	"gamehub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// distributorAdminService implements the DistributorAdminUsecase interface.
type distributorAdminService struct {
	txManager repository.DistributorTransactionManager
	logger    *slog.Logger
}

// DistributorAdminServiceParams holds dependencies for DistributorAdminService, injected by Fx.
type DistributorAdminServiceParams struct {
	fx.In

	TxManager repository.DistributorTransactionManager
	Logger    *slog.Logger
}

// NewDistributorAdminService is the constructor for distributorAdminService.
func NewDistributorAdminService(params DistributorAdminServiceParams) usecase.DistributorAdminUsecase {
	return &distributorAdminService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *distributorAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *distributorAdminService) AddDistributor(ctx context.Context, name string) (*entity.Distributor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("distributor name is required")
	}

	distributor := &entity.Distributor{Name: name}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.DistributorRepositoryFactory) error {
		return errors.Wrap(repoFactory.NewDistributorRepository().Save(ctx, distributor), "failed to save distributor")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Distributor added", slog.Int64("distributor_id", distributor.ID), slog.String("name", name))

	return distributor, nil
}

func (srv *distributorAdminService) RemoveDistributor(ctx context.Context, ref string) (*entity.Distributor, error) {
	var removed *entity.Distributor
	err := srv.txManager.Execute(ctx, func(repoFactory repository.DistributorRepositoryFactory) error {
		repo := repoFactory.NewDistributorRepository()

		distributor, err := findDistributorByRef(ctx, repo, ref)
		if err != nil {
			return err
		}
		if err := repo.Delete(ctx, distributor.ID); err != nil {
			return errors.Wrapf(err, "failed to delete distributor %d", distributor.ID)
		}
		removed = distributor

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Distributor removed", slog.Int64("distributor_id", removed.ID))

	return removed, nil
}

// findDistributorByRef treats a numeric ref as an id and anything else as a name.
func findDistributorByRef(ctx context.Context, repo repository.DistributorRepository, ref string) (*entity.Distributor, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		distributor, err := repo.FindByID(ctx, id)

		return distributor, errors.Wrapf(err, "failed to find distributor %d", id)
	}

	distributor, err := repo.FindFirstByName(ctx, ref)

	return distributor, errors.Wrapf(err, "failed to find distributor %q", ref)
}

func (srv *distributorAdminService) ListDistributors(ctx context.Context) ([]*entity.Distributor, error) {
	var distributors []*entity.Distributor
	err := srv.txManager.Execute(ctx, func(repoFactory repository.DistributorRepositoryFactory) error {
		var err error
		distributors, err = repoFactory.NewDistributorRepository().FindAll(ctx)

		return errors.Wrap(err, "failed to list distributors")
	})

	return distributors, err
}

func (srv *distributorAdminService) ListDistributedGames(ctx context.Context, distributorID int64) ([]*entity.DistributedGame, error) {
	var games []*entity.DistributedGame
	err := srv.txManager.Execute(ctx, func(repoFactory repository.DistributorRepositoryFactory) error {
		repo := repoFactory.NewDistributedGameRepository()

		var err error
		if distributorID == 0 {
			games, err = repo.FindAll(ctx)
		} else {
			games, err = repo.FindByDistributorID(ctx, distributorID)
		}

		return errors.Wrap(err, "failed to list distributed games")
	})

	return games, err
}

func (srv *distributorAdminService) ListPlayers(ctx context.Context, distributorID int64) ([]*entity.Player, error) {
	var players []*entity.Player
	err := srv.txManager.Execute(ctx, func(repoFactory repository.DistributorRepositoryFactory) error {
		repo := repoFactory.NewPlayerRepository()

		var err error
		if distributorID == 0 {
			players, err = repo.FindAll(ctx)
		} else {
			players, err = repo.FindByDistributorID(ctx, distributorID)
		}

		return errors.Wrap(err, "failed to list players")
	})

	return players, err
}

func (srv *distributorAdminService) ListOwnedGames(ctx context.Context, playerID int64) ([]*entity.OwnedGame, error) {
	var owned []*entity.OwnedGame
	err := srv.txManager.Execute(ctx, func(repoFactory repository.DistributorRepositoryFactory) error {
		repo := repoFactory.NewOwnedGameRepository()

		var err error
		if playerID == 0 {
			owned, err = repo.FindAll(ctx)
		} else {
			owned, err = repo.FindByPlayerID(ctx, playerID)
		}

		return errors.Wrap(err, "failed to list owned games")
	})

	return owned, err
}

func (srv *distributorAdminService) ListReviews(ctx context.Context, gameID int64) ([]*entity.Review, error) {
	var reviews []*entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.DistributorRepositoryFactory) error {
		repo := repoFactory.NewReviewRepository()

		var err error
		if gameID == 0 {
			reviews, err = repo.FindAll(ctx)
		} else {
			reviews, err = repo.FindByGameID(ctx, gameID)
		}

		return errors.Wrap(err, "failed to list reviews")
	})

	return reviews, err
}

func (srv *distributorAdminService) StartSale(ctx context.Context, distributorID, gameID int64, percentage float64) error {
	if percentage < 0 || percentage > 1 {
		return domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("sale percentage %v is outside [0, 1]", percentage))
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.DistributorRepositoryFactory) error {
		repo := repoFactory.NewDistributedGameRepository()

		game, err := repo.FindByDistributorIDAndGameID(ctx, distributorID, gameID)
		if err != nil {
			return errors.Wrapf(err, "failed to find game %d at distributor %d", gameID, distributorID)
		}

		sale := percentage
		game.Sale = &sale
		if err := repo.Save(ctx, game); err != nil {
			return errors.Wrap(err, "failed to save sale")
		}

		sender := producer.NewDistributor(repoFactory.NewEventEmitter(), srv.log(ctx))

		return errors.Wrap(sender.SendSaleStarted(ctx, game), "failed to stage SaleStarted")
	})
}
